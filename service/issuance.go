package service

import (
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/EccoMoonProject/ERC721Base/config"
	"github.com/EccoMoonProject/ERC721Base/dao"
	"github.com/EccoMoonProject/ERC721Base/pkg/database"
	"github.com/EccoMoonProject/ERC721Base/pkg/log"
	basetypes "github.com/EccoMoonProject/ERC721Base/pkg/types"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"

	mapset "github.com/deckarep/golang-set/v2"
	"gorm.io/gorm"
)

// IssuanceService orchestrates mints: authorization, price conversion,
// treasury settlement, metadata bookkeeping and whitelist consumption run as
// one transaction. A mutex serializes mutating operations and an in-flight
// set rejects a caller re-entering before its own operation finished.
type IssuanceService struct {
	db       *gorm.DB
	mu       sync.Mutex
	inflight mapset.Set[string]

	Tokens      dao.IToken
	Counter     dao.ICounter
	TokenUris   dao.ITokenUri
	BatchRanges dao.IBatchRange
	Whitelists  dao.IWhitelist
	Events      dao.IIssuanceEvent

	Oracle   *OracleService
	Treasury *TreasuryService
	Guard    AccessGuard

	saveAuthority func(string) error
}

func NewIssuanceService(db *gorm.DB, oracle *OracleService) *IssuanceService {
	if db == nil {
		db = database.Mysql()
	}

	return &IssuanceService{
		db:            db,
		inflight:      mapset.NewSet[string](),
		Tokens:        &dao.TokenHandler{},
		Counter:       &dao.CounterHandler{},
		TokenUris:     &dao.TokenUriHandler{},
		BatchRanges:   &dao.BatchRangeHandler{},
		Whitelists:    &dao.WhitelistHandler{},
		Events:        &dao.IssuanceEventHandler{},
		Oracle:        oracle,
		Treasury:      NewTreasuryService(),
		Guard:         &ConfigGuard{},
		saveAuthority: config.SaveChainConfig,
	}
}

// enter marks caller's operation in flight, then serializes it.
func (s *IssuanceService) enter(caller string) error {
	if !s.inflight.Add(caller) {
		return ErrReentrantCall
	}

	s.mu.Lock()
	return nil
}

func (s *IssuanceService) exit(caller string) {
	s.mu.Unlock()
	s.inflight.Remove(caller)
}

// MintTo issues one certificate to recipient with an explicit metadata URI.
// Authority only.
func (s *IssuanceService) MintTo(req basetypes.MintReq) (*basetypes.MintRsp, error) {
	caller, ok := utils.IsValidERCAddress(req.Caller)
	if !ok {
		return nil, ErrInvalidAddress
	}

	to, ok := utils.IsValidERCAddress(req.To)
	if !ok {
		return nil, ErrInvalidAddress
	}

	if err := requireAuthority(s.Guard, caller); err != nil {
		return nil, err
	}

	if err := s.enter(caller); err != nil {
		return nil, err
	}
	defer s.exit(caller)

	var rsp basetypes.MintRsp

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		counter, startId, err := s.nextId(tx)
		if err != nil {
			return err
		}

		// the override must exist before the identifier does
		if err = s.TokenUris.Create(tx, &dao.TokenUriModel{
			TokenId: startId,
			Uri:     req.Uri,
		}); err != nil {
			return err
		}

		if err = s.Tokens.CreateBatch(tx, []*dao.TokenModel{{
			Id:    startId,
			Owner: to,
		}}); err != nil {
			return err
		}

		if err = s.Counter.Advance(tx, counter.Id, startId+1); err != nil {
			return err
		}

		rsp.TokenId = startId
		return nil
	}); err != nil {
		return nil, err
	}

	log.Sugar.Infof("minted token %d to %s", rsp.TokenId, to)

	return &rsp, nil
}

// BatchMintTo issues quantity certificates to recipient against the caller's
// single-use whitelist authorization, paying unit price times quantity to the
// treasury at the feed's current rate.
//
// A caller that is not whitelisted gets a completed no-op: nothing is minted
// and nothing is paid, but the issuance notification is still recorded with
// the requested quantity.
func (s *IssuanceService) BatchMintTo(req basetypes.BatchMintReq) (*basetypes.BatchMintRsp, error) {
	caller, ok := utils.IsValidERCAddress(req.Caller)
	if !ok {
		return nil, ErrInvalidAddress
	}

	to, ok := utils.IsValidERCAddress(req.To)
	if !ok {
		return nil, ErrInvalidAddress
	}

	if err := s.enter(caller); err != nil {
		return nil, err
	}
	defer s.exit(caller)

	var rsp basetypes.BatchMintRsp

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		wl, err := s.Whitelists.SelectByAddress(tx, caller)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if wl == nil || wl.Authorized != 1 {
			rsp.Amount = "0"
			return s.notify(tx, caller, req.Quantity)
		}

		unit, err := s.Oracle.UnitPrice(req.Tier)
		if err != nil {
			return err
		}

		amount := new(big.Int).Mul(unit, new(big.Int).SetUint64(req.Quantity))

		if err = s.Treasury.Pay(tx, caller, amount); err != nil {
			return err
		}

		counter, startId, err := s.nextId(tx)
		if err != nil {
			return err
		}

		// range first: the ledger's current index is read before minting
		// advances it
		if err = s.BatchRanges.Create(tx, &dao.BatchRangeModel{
			StartId:  startId,
			Quantity: req.Quantity,
			BaseUri:  req.BaseUri,
		}); err != nil {
			return err
		}

		models := make([]*dao.TokenModel, 0, req.Quantity)
		for i := uint64(0); i < req.Quantity; i++ {
			models = append(models, &dao.TokenModel{
				Id:    startId + i,
				Owner: to,
				Data:  req.Data,
			})
		}

		if err = s.Tokens.CreateBatch(tx, models); err != nil {
			return err
		}

		if err = s.Counter.Advance(tx, counter.Id, startId+req.Quantity); err != nil {
			return err
		}

		// consume the authorization in the same transaction as the mint
		updates := map[string]interface{}{
			"authorized": 0,
		}
		if err = s.Whitelists.Update(tx, wl.Id, updates); err != nil {
			return err
		}

		if err = s.notify(tx, caller, req.Quantity); err != nil {
			return err
		}

		rsp.Minted = true
		rsp.StartId = startId
		rsp.EndId = startId + req.Quantity
		rsp.Amount = amount.String()
		return nil
	}); err != nil {
		return nil, err
	}

	if rsp.Minted {
		log.Sugar.Infof("batch minted [%d, %d) to %s for %s", rsp.StartId, rsp.EndId, to, rsp.Amount)
	} else {
		log.Sugar.Infof("batch mint no-op: %s not whitelisted, quantity %d", caller, req.Quantity)
	}

	return &rsp, nil
}

// Burn destroys a token the caller owns. The identifier is never reassigned.
func (s *IssuanceService) Burn(req basetypes.BurnReq) error {
	caller, ok := utils.IsValidERCAddress(req.Caller)
	if !ok {
		return ErrInvalidAddress
	}

	if err := s.enter(caller); err != nil {
		return err
	}
	defer s.exit(caller)

	return s.db.Transaction(func(tx *gorm.DB) error {
		token, err := s.Tokens.SelectById(tx, req.TokenId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenNotFound
			}
			return err
		}

		if token.Owner != caller {
			return ErrAuthorizationDenied
		}

		return s.Tokens.Burn(tx, req.TokenId)
	})
}

// Withdraw moves the service account's entire native balance to recipient.
// Authority only, no partial withdraw.
func (s *IssuanceService) Withdraw(req basetypes.WithdrawReq) (*basetypes.WithdrawRsp, error) {
	caller, ok := utils.IsValidERCAddress(req.Caller)
	if !ok {
		return nil, ErrInvalidAddress
	}

	to, ok := utils.IsValidERCAddress(req.To)
	if !ok {
		return nil, ErrInvalidAddress
	}

	if err := requireAuthority(s.Guard, caller); err != nil {
		return nil, err
	}

	if err := s.enter(caller); err != nil {
		return nil, err
	}
	defer s.exit(caller)

	var rsp basetypes.WithdrawRsp

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		amount, err := s.Treasury.WithdrawAll(tx, to)
		if err != nil {
			return err
		}

		rsp.Amount = amount.String()
		return nil
	}); err != nil {
		return nil, err
	}

	return &rsp, nil
}

// TransferAuthority hands the privileged role to a new address and persists
// it, so the guard answers with the new authority from the next call on.
func (s *IssuanceService) TransferAuthority(req basetypes.TransferAuthorityReq) error {
	caller, ok := utils.IsValidERCAddress(req.Caller)
	if !ok {
		return ErrInvalidAddress
	}

	to, ok := utils.IsValidERCAddress(req.To)
	if !ok {
		return ErrInvalidAddress
	}

	if err := requireAuthority(s.Guard, caller); err != nil {
		return err
	}

	return s.saveAuthority(to)
}

// ListEvents lists the most recent issuance notifications.
func (s *IssuanceService) ListEvents(limit int) ([]dao.IssuanceEventModel, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	return s.Events.List(s.db, limit)
}

func (s *IssuanceService) nextId(tx *gorm.DB) (*dao.CounterModel, uint64, error) {
	counter, err := s.Counter.Select(tx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, err
		}

		counter = &dao.CounterModel{NextId: dao.FirstTokenId}
		if err = s.Counter.Create(tx, counter); err != nil {
			return nil, 0, err
		}
	}

	return counter, counter.NextId, nil
}

func (s *IssuanceService) notify(tx *gorm.DB, caller string, quantity uint64) error {
	return s.Events.Create(tx, &dao.IssuanceEventModel{
		Quantity:  quantity,
		Caller:    caller,
		Timestamp: time.Now().Unix(),
	})
}
