package ratefeed

import "math/big"

// RateFeed supplies the current native-per-USD exchange rate as an
// 18-decimal fixed point value. Implementations do not cache; every call
// reflects the rate at that moment.
type RateFeed interface {
	LatestRate() (*big.Int, error)
}
