package service

import (
	"math/big"

	"github.com/EccoMoonProject/ERC721Base/pkg/ratefeed"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
)

// Tier prices in USD, pre-scaled by 1e27: 9 decimal places above the
// 18-decimal native scale, so dividing by an 18-decimal rate keeps precision
// through integer division and yields an 18-decimal native amount.
var tierPrices = []*big.Int{
	utils.MustStringToBigint("1000000000000000000000000000"),  // 10 USD
	utils.MustStringToBigint("7500000000000000000000000000"),  // 75 USD
	utils.MustStringToBigint("20000000000000000000000000000"), // 200 USD
}

type OracleService struct {
	Feed ratefeed.RateFeed
}

func NewOracleService(feed ratefeed.RateFeed) *OracleService {
	return &OracleService{Feed: feed}
}

// UnitPrice converts the tier's USD price into native currency at the feed's
// current rate. Division truncates toward zero.
func (s *OracleService) UnitPrice(tier uint8) (*big.Int, error) {
	if int(tier) >= len(tierPrices) {
		return nil, ErrInvalidTier
	}

	rate, err := s.Feed.LatestRate()
	if err != nil {
		return nil, err
	}

	if rate.Sign() <= 0 {
		return nil, ErrConversionUndefined
	}

	return new(big.Int).Quo(tierPrices[tier], rate), nil
}
