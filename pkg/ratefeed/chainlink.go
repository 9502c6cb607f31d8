package ratefeed

import (
	"context"
	"fmt"
	"math/big"

	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ContractCaller is the slice of the eth client used by the feed. ethclient.Client
// satisfies it.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

var latestAnswerSelector = crypto.Keccak256([]byte("latestAnswer()"))[:4]

// ChainlinkFeed reads the rate from an on-chain aggregator via latestAnswer().
type ChainlinkFeed struct {
	client ContractCaller
	addr   common.Address
}

func NewChainlinkFeed(client ContractCaller, addr string) *ChainlinkFeed {
	return &ChainlinkFeed{
		client: client,
		addr:   common.HexToAddress(addr),
	}
}

func (f *ChainlinkFeed) LatestRate() (*big.Int, error) {
	ret, err := f.client.CallContract(context.Background(), ethereum.CallMsg{
		To:   &f.addr,
		Data: latestAnswerSelector,
	}, nil)
	if err != nil {
		return nil, err
	}

	res, err := utils.Unpack([]string{"int256"}, ret)
	if err != nil {
		return nil, err
	}

	rate, ok := res[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected answer type: %T", res[0])
	}

	return rate, nil
}
