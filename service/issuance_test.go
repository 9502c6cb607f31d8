package service

import (
	"strings"
	"testing"

	"github.com/EccoMoonProject/ERC721Base/config"
	"github.com/EccoMoonProject/ERC721Base/dao"
	basetypes "github.com/EccoMoonProject/ERC721Base/pkg/types"
	"github.com/stretchr/testify/assert"
)

const (
	testAuthority = "0x36b9db829e5d49a599bb97b5a14ba2cbba6d9de8"
	testCaller    = "0x72b61c6014342d914470ec7ac2975be345796c2b"
	testRecipient = "0x3a72b18f943835de26b975f087c27ffa5ba5e50c"

	rateOneToOne = "1000000000000000000"
)

func wlRow(address string) *dao.WhitelistModel {
	return &dao.WhitelistModel{Address: address, Authorized: 1}
}

func TestBatchMintConsumesWhitelist(t *testing.T) {
	s, f := newTestIssuance(t, rateOneToOne, testAuthority)
	assert.NoError(t, f.wl.Create(nil, wlRow(testCaller)))
	f.balances.set(testCaller, "100000000000")

	rsp, err := s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   testCaller,
		To:       testRecipient,
		Quantity: 3,
		BaseUri:  "ipfs://batch/",
		Tier:     0,
	})
	assert.NoError(t, err)
	assert.True(t, rsp.Minted)

	// tier 0 at 1:1 keeps the 1e9 scaling offset, times quantity
	assert.Equal(t, "3000000000", rsp.Amount)
	assert.Equal(t, uint64(1), rsp.StartId)
	assert.Equal(t, uint64(4), rsp.EndId)

	// the identifiers exist and belong to the recipient
	for id := uint64(1); id < 4; id++ {
		token, err := f.tokens.SelectById(nil, id)
		assert.NoError(t, err)
		assert.Equal(t, testRecipient, token.Owner)
	}

	// authorization is consumed exactly once
	wl, err := f.wl.SelectByAddress(nil, testCaller)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), wl.Authorized)

	// funds landed on the treasury
	treasury := strings.ToLower(config.GetConfig().Chain.Treasury)
	assert.Equal(t, "3000000000", f.balances.get(treasury))
	assert.Equal(t, "97000000000", f.balances.get(testCaller))

	// notification recorded
	assert.Equal(t, 1, len(f.events.rows))
	assert.Equal(t, uint64(3), f.events.rows[0].Quantity)
	assert.Equal(t, testCaller, f.events.rows[0].Caller)

	// a second attempt is a no-op: the flag is gone
	rsp, err = s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   testCaller,
		To:       testRecipient,
		Quantity: 3,
		BaseUri:  "ipfs://batch/",
		Tier:     0,
	})
	assert.NoError(t, err)
	assert.False(t, rsp.Minted)
	count, _ := f.tokens.Count(nil)
	assert.Equal(t, int64(3), count)
}

func TestBatchMintNotWhitelistedStillNotifies(t *testing.T) {
	s, f := newTestIssuance(t, rateOneToOne, testAuthority)
	f.balances.set(testCaller, "100000000000")

	rsp, err := s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   testCaller,
		To:       testRecipient,
		Quantity: 5,
		BaseUri:  "ipfs://batch/",
		Tier:     0,
	})
	assert.NoError(t, err)
	assert.False(t, rsp.Minted)

	// nothing minted, nothing paid
	count, _ := f.tokens.Count(nil)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, "100000000000", f.balances.get(testCaller))

	// the notification still carries the requested quantity
	assert.Equal(t, 1, len(f.events.rows))
	assert.Equal(t, uint64(5), f.events.rows[0].Quantity)
}

func TestListEvents(t *testing.T) {
	s, f := newTestIssuance(t, rateOneToOne, testAuthority)
	assert.NoError(t, f.wl.Create(nil, wlRow(testCaller)))
	f.balances.set(testCaller, "100000000000")

	_, err := s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   testCaller,
		To:       testRecipient,
		Quantity: 2,
		BaseUri:  "ipfs://batch/",
		Tier:     0,
	})
	assert.NoError(t, err)

	// re-grant and mint again so there is an older and a newer notification
	assert.NoError(t, f.wl.Update(nil, 1, map[string]interface{}{"authorized": 1}))
	_, err = s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   testCaller,
		To:       testRecipient,
		Quantity: 4,
		BaseUri:  "ipfs://batch/",
		Tier:     0,
	})
	assert.NoError(t, err)

	// non-positive limit falls back to the default window
	events, err := s.ListEvents(0)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(events))
	assert.Equal(t, uint64(4), events[0].Quantity)
	assert.Equal(t, uint64(2), events[1].Quantity)
	assert.Equal(t, testCaller, events[0].Caller)

	events, err = s.ListEvents(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, uint64(4), events[0].Quantity)
}

func TestBatchMintPaymentFailureLeavesNoTrace(t *testing.T) {
	s, f := newTestIssuance(t, rateOneToOne, testAuthority)
	assert.NoError(t, f.wl.Create(nil, wlRow(testCaller)))
	f.balances.set(testCaller, "1")

	_, err := s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   testCaller,
		To:       testRecipient,
		Quantity: 3,
		BaseUri:  "ipfs://batch/",
		Tier:     0,
	})
	assert.ErrorIs(t, err, ErrPaymentFailed)

	// no identifiers, untouched whitelist, no notification
	count, _ := f.tokens.Count(nil)
	assert.Equal(t, int64(0), count)
	wl, _ := f.wl.SelectByAddress(nil, testCaller)
	assert.Equal(t, uint8(1), wl.Authorized)
	assert.Equal(t, "1", f.balances.get(testCaller))
	assert.Equal(t, 0, len(f.events.rows))
}

func TestBatchMintInvalidTier(t *testing.T) {
	s, f := newTestIssuance(t, rateOneToOne, testAuthority)
	assert.NoError(t, f.wl.Create(nil, wlRow(testCaller)))
	f.balances.set(testCaller, "100000000000")

	_, err := s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   testCaller,
		To:       testRecipient,
		Quantity: 1,
		BaseUri:  "ipfs://batch/",
		Tier:     3,
	})
	assert.ErrorIs(t, err, ErrInvalidTier)

	count, _ := f.tokens.Count(nil)
	assert.Equal(t, int64(0), count)
}

func TestBatchMintNonPositiveRate(t *testing.T) {
	s, f := newTestIssuance(t, rateOneToOne, testAuthority)
	s.Oracle = NewOracleService(&errFeed{rate: mustBig("0")})
	assert.NoError(t, f.wl.Create(nil, wlRow(testCaller)))
	f.balances.set(testCaller, "100000000000")

	_, err := s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   testCaller,
		To:       testRecipient,
		Quantity: 1,
		Tier:     0,
	})
	assert.ErrorIs(t, err, ErrConversionUndefined)
}

func TestMintToAuthorityOnly(t *testing.T) {
	s, _ := newTestIssuance(t, rateOneToOne, testAuthority)

	_, err := s.MintTo(basetypes.MintReq{
		Caller: testCaller,
		To:     testRecipient,
		Uri:    "ipfs://one",
	})
	assert.ErrorIs(t, err, ErrAuthorizationDenied)
}

func TestMintToRecordsOverride(t *testing.T) {
	s, f := newTestIssuance(t, rateOneToOne, testAuthority)

	rsp, err := s.MintTo(basetypes.MintReq{
		Caller: testAuthority,
		To:     testRecipient,
		Uri:    "ipfs://one",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), rsp.TokenId)

	token, err := f.tokens.SelectById(nil, 1)
	assert.NoError(t, err)
	assert.Equal(t, testRecipient, token.Owner)

	override, err := f.uris.SelectByTokenId(nil, 1)
	assert.NoError(t, err)
	assert.Equal(t, "ipfs://one", override.Uri)

	// identifiers keep advancing across mint paths
	rsp, err = s.MintTo(basetypes.MintReq{
		Caller: testAuthority,
		To:     testRecipient,
		Uri:    "ipfs://two",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), rsp.TokenId)
}

func TestBurn(t *testing.T) {
	s, f := newTestIssuance(t, rateOneToOne, testAuthority)

	_, err := s.MintTo(basetypes.MintReq{
		Caller: testAuthority,
		To:     testRecipient,
		Uri:    "ipfs://one",
	})
	assert.NoError(t, err)

	// not the owner
	err = s.Burn(basetypes.BurnReq{Caller: testCaller, TokenId: 1})
	assert.ErrorIs(t, err, ErrAuthorizationDenied)

	err = s.Burn(basetypes.BurnReq{Caller: testRecipient, TokenId: 1})
	assert.NoError(t, err)

	_, err = f.tokens.SelectById(nil, 1)
	assert.Error(t, err)

	// burned identifiers stay dead
	err = s.Burn(basetypes.BurnReq{Caller: testRecipient, TokenId: 1})
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// and are never reassigned
	rsp, err := s.MintTo(basetypes.MintReq{
		Caller: testAuthority,
		To:     testRecipient,
		Uri:    "ipfs://two",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), rsp.TokenId)
}

func TestWithdraw(t *testing.T) {
	s, f := newTestIssuance(t, rateOneToOne, testAuthority)
	contract := strings.ToLower(config.GetConfig().Chain.Contract)
	f.balances.set(contract, "12345")

	_, err := s.Withdraw(basetypes.WithdrawReq{Caller: testCaller, To: testCaller})
	assert.ErrorIs(t, err, ErrAuthorizationDenied)

	rsp, err := s.Withdraw(basetypes.WithdrawReq{Caller: testAuthority, To: testRecipient})
	assert.NoError(t, err)
	assert.Equal(t, "12345", rsp.Amount)
	assert.Equal(t, "0", f.balances.get(contract))
	assert.Equal(t, "12345", f.balances.get(testRecipient))
}

func TestTransferAuthority(t *testing.T) {
	s, _ := newTestIssuance(t, rateOneToOne, testAuthority)

	var saved string
	s.saveAuthority = func(authority string) error {
		saved = authority
		return nil
	}

	err := s.TransferAuthority(basetypes.TransferAuthorityReq{
		Caller: testCaller,
		To:     testRecipient,
	})
	assert.ErrorIs(t, err, ErrAuthorizationDenied)
	assert.Equal(t, "", saved)

	err = s.TransferAuthority(basetypes.TransferAuthorityReq{
		Caller: testAuthority,
		To:     testRecipient,
	})
	assert.NoError(t, err)
	assert.Equal(t, testRecipient, saved)
}

func TestReentrantCallRejected(t *testing.T) {
	s, _ := newTestIssuance(t, rateOneToOne, testAuthority)
	s.inflight.Add(testCaller)

	_, err := s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   testCaller,
		To:       testRecipient,
		Quantity: 1,
		Tier:     0,
	})
	assert.ErrorIs(t, err, ErrReentrantCall)
}

func TestInvalidAddressRejected(t *testing.T) {
	s, _ := newTestIssuance(t, rateOneToOne, testAuthority)

	_, err := s.BatchMintTo(basetypes.BatchMintReq{
		Caller:   "0x72b61c6014342d914470eC7aC2975bE345796c2b+",
		To:       testRecipient,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
