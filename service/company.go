package service

import (
	"errors"

	"github.com/EccoMoonProject/ERC721Base/dao"
	"github.com/EccoMoonProject/ERC721Base/pkg/database"
	basetypes "github.com/EccoMoonProject/ERC721Base/pkg/types"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"gorm.io/gorm"
)

type CompanyService struct {
	db        *gorm.DB
	Companies dao.ICompany
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	if db == nil {
		db = database.Mysql()
	}

	return &CompanyService{
		db:        db,
		Companies: &dao.CompanyHandler{},
	}
}

// Bind records a display name for the caller. Last write wins.
func (s *CompanyService) Bind(req basetypes.BindCompanyReq) error {
	caller, ok := utils.IsValidERCAddress(req.Caller)
	if !ok {
		return ErrInvalidAddress
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		model, err := s.Companies.SelectByAddress(tx, caller)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.Companies.Create(tx, &dao.CompanyModel{
					Address: caller,
					Name:    req.Name,
				})
			}
			return err
		}

		updates := map[string]interface{}{
			"name": req.Name,
		}

		return s.Companies.Update(tx, model.Id, updates)
	})
}

func (s *CompanyService) Get(req basetypes.CompanyReq) (*basetypes.CompanyRsp, error) {
	address, ok := utils.IsValidERCAddress(req.Address)
	if !ok {
		return nil, ErrInvalidAddress
	}

	rsp := &basetypes.CompanyRsp{Address: address}

	model, err := s.Companies.SelectByAddress(s.db, address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rsp, nil
		}
		return nil, err
	}

	rsp.Name = model.Name

	return rsp, nil
}
