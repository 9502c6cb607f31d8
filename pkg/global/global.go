package global

import (
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	// EthClient is the shared RPC connection used by the on-chain rate feed.
	// Nil until Init is called; deployments without an RPC endpoint run on
	// the fixed rate from config instead.
	EthClient *ethclient.Client
)

func Init(rpcUrl string) error {
	if rpcUrl == "" {
		return nil
	}

	client, err := ethclient.Dial(rpcUrl)
	if err != nil {
		return err
	}

	EthClient = client
	return nil
}
