package service

import (
	"errors"

	"github.com/EccoMoonProject/ERC721Base/dao"
	"github.com/EccoMoonProject/ERC721Base/pkg/database"
	basetypes "github.com/EccoMoonProject/ERC721Base/pkg/types"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"gorm.io/gorm"
)

type WhitelistService struct {
	db         *gorm.DB
	Whitelists dao.IWhitelist
	Guard      AccessGuard
}

func NewWhitelistService(db *gorm.DB) *WhitelistService {
	if db == nil {
		db = database.Mysql()
	}

	return &WhitelistService{
		db:         db,
		Whitelists: &dao.WhitelistHandler{},
		Guard:      &ConfigGuard{},
	}
}

// Grant hands address a single-use batch-mint authorization. Authority only:
// a self-granted flag would make the gate meaningless.
func (s *WhitelistService) Grant(req basetypes.GrantWhitelistReq) error {
	caller, ok := utils.IsValidERCAddress(req.Caller)
	if !ok {
		return ErrInvalidAddress
	}

	address, ok := utils.IsValidERCAddress(req.Address)
	if !ok {
		return ErrInvalidAddress
	}

	if err := requireAuthority(s.Guard, caller); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		model, err := s.Whitelists.SelectByAddress(tx, address)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.Whitelists.Create(tx, &dao.WhitelistModel{
					Address:    address,
					Authorized: 1,
				})
			}
			return err
		}

		updates := map[string]interface{}{
			"authorized": 1,
		}

		return s.Whitelists.Update(tx, model.Id, updates)
	})
}

func (s *WhitelistService) Status(req basetypes.WhitelistStatusReq) (*basetypes.WhitelistStatusRsp, error) {
	address, ok := utils.IsValidERCAddress(req.Address)
	if !ok {
		return nil, ErrInvalidAddress
	}

	rsp := &basetypes.WhitelistStatusRsp{Address: address}

	model, err := s.Whitelists.SelectByAddress(s.db, address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rsp, nil
		}
		return nil, err
	}

	rsp.Authorized = model.Authorized == 1

	return rsp, nil
}
