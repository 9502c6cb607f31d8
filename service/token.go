package service

import (
	"errors"
	"strconv"

	"github.com/EccoMoonProject/ERC721Base/dao"
	"github.com/EccoMoonProject/ERC721Base/pkg/database"
	basetypes "github.com/EccoMoonProject/ERC721Base/pkg/types"
	"gorm.io/gorm"
)

// TokenService answers the read side: metadata resolution and the next
// identifier the ledger will assign.
type TokenService struct {
	db          *gorm.DB
	Tokens      dao.IToken
	Counter     dao.ICounter
	TokenUris   dao.ITokenUri
	BatchRanges dao.IBatchRange
}

func NewTokenService(db *gorm.DB) *TokenService {
	if db == nil {
		db = database.Mysql()
	}

	return &TokenService{
		db:          db,
		Tokens:      &dao.TokenHandler{},
		Counter:     &dao.CounterHandler{},
		TokenUris:   &dao.TokenUriHandler{},
		BatchRanges: &dao.BatchRangeHandler{},
	}
}

// Uri resolves a token to its metadata URI: the per-token override if one
// was recorded at mint time, otherwise the batch base URI concatenated with
// the decimal identifier.
func (s *TokenService) Uri(req basetypes.TokenUriReq) (*basetypes.TokenUriRsp, error) {
	if _, err := s.Tokens.SelectById(s.db, req.TokenId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}

	uri, err := s.resolve(s.db, req.TokenId)
	if err != nil {
		return nil, err
	}

	return &basetypes.TokenUriRsp{
		TokenId: req.TokenId,
		Uri:     uri,
	}, nil
}

func (s *TokenService) resolve(db *gorm.DB, tokenId uint64) (string, error) {
	override, err := s.TokenUris.SelectByTokenId(db, tokenId)
	if err == nil && override.Uri != "" {
		return override.Uri, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	batch, err := s.BatchRanges.SelectByTokenId(db, tokenId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrTokenNotFound
		}
		return "", err
	}

	return batch.BaseUri + strconv.FormatUint(tokenId, 10), nil
}

// Supply counts live tokens: minted minus burned.
func (s *TokenService) Supply() (*basetypes.SupplyRsp, error) {
	count, err := s.Tokens.Count(s.db)
	if err != nil {
		return nil, err
	}

	return &basetypes.SupplyRsp{Supply: count}, nil
}

func (s *TokenService) NextId() (*basetypes.NextIdRsp, error) {
	counter, err := s.Counter.Select(s.db)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &basetypes.NextIdRsp{NextId: dao.FirstTokenId}, nil
		}
		return nil, err
	}

	return &basetypes.NextIdRsp{NextId: counter.NextId}, nil
}
