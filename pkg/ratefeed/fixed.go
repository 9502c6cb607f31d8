package ratefeed

import "math/big"

// FixedFeed returns a constant rate. Used when no RPC endpoint is configured.
type FixedFeed struct {
	rate *big.Int
}

func NewFixedFeed(rate *big.Int) *FixedFeed {
	return &FixedFeed{rate: new(big.Int).Set(rate)}
}

func (f *FixedFeed) LatestRate() (*big.Int, error) {
	return new(big.Int).Set(f.rate), nil
}
