package service

import "errors"

var (
	// ErrAuthorizationDenied caller lacks the required authority.
	ErrAuthorizationDenied = errors.New("authorization denied")
	// ErrPaymentFailed the treasury transfer did not succeed.
	ErrPaymentFailed = errors.New("payment failed")
	// ErrConversionUndefined the rate feed returned a non-positive value.
	ErrConversionUndefined = errors.New("conversion undefined: non-positive rate")
	// ErrInvalidTier tier index outside {0,1,2}.
	ErrInvalidTier = errors.New("invalid price tier")
	// ErrReentrantCall the caller already has a mutating operation in flight.
	ErrReentrantCall = errors.New("reentrant call")
	// ErrTokenNotFound the identifier does not exist or was burned.
	ErrTokenNotFound = errors.New("token does not exist")
	// ErrInvalidAddress the address is not a well formed EVM address.
	ErrInvalidAddress = errors.New("invalid address")
)
