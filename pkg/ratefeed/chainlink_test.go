package ratefeed

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/status-im/keycard-go/hexutils"
	"github.com/stretchr/testify/assert"
)

type stubCaller struct {
	ret []byte
	msg ethereum.CallMsg
}

func (c *stubCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	c.msg = msg
	return c.ret, nil
}

func TestChainlinkFeedLatestRate(t *testing.T) {
	caller := &stubCaller{
		// int256 1e18
		ret: hexutils.HexToBytes("0000000000000000000000000000000000000000000000000de0b6b3a7640000"),
	}
	feed := NewChainlinkFeed(caller, "0x0567f2323251f0aab15c8dfb1967e4e8a7d42aee")

	rate, err := feed.LatestRate()
	assert.NoError(t, err)
	assert.Equal(t, "1000000000000000000", rate.String())

	// latestAnswer() selector
	assert.Equal(t, hexutils.HexToBytes("50d25bcd"), caller.msg.Data)
	assert.Equal(t, "0x0567F2323251f0Aab15c8dFb1967E4e8A7D42aeE", caller.msg.To.Hex())
}

func TestFixedFeedCopies(t *testing.T) {
	rate := big.NewInt(42)
	feed := NewFixedFeed(rate)

	got, err := feed.LatestRate()
	assert.NoError(t, err)

	got.SetInt64(7)
	again, err := feed.LatestRate()
	assert.NoError(t, err)
	assert.Equal(t, "42", again.String())
}
