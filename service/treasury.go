package service

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/EccoMoonProject/ERC721Base/config"
	"github.com/EccoMoonProject/ERC721Base/dao"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"gorm.io/gorm"
)

// TreasuryService moves native currency between balance rows. All methods
// run inside the caller's transaction so a failed transfer aborts the whole
// operation.
type TreasuryService struct {
	Balances dao.IBalance
}

func NewTreasuryService() *TreasuryService {
	return &TreasuryService{
		Balances: &dao.BalanceHandler{},
	}
}

// Pay transfers exactly amount from payer to the fixed treasury address.
func (s *TreasuryService) Pay(tx *gorm.DB, payer string, amount *big.Int) error {
	treasury := strings.ToLower(config.GetConfig().Chain.Treasury)

	if err := s.transfer(tx, payer, treasury, amount); err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	return nil
}

// WithdrawAll moves the service account's entire balance to recipient and
// returns the amount moved.
func (s *TreasuryService) WithdrawAll(tx *gorm.DB, recipient string) (*big.Int, error) {
	contract := strings.ToLower(config.GetConfig().Chain.Contract)

	model, err := s.Balances.SelectByAddress(tx, contract)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return new(big.Int), nil
		}
		return nil, err
	}

	amount, err := utils.StringToBigint(model.Balance)
	if err != nil {
		return nil, err
	}

	if amount.Sign() == 0 {
		return amount, nil
	}

	if err = s.transfer(tx, contract, recipient, amount); err != nil {
		return nil, err
	}

	return amount, nil
}

func (s *TreasuryService) transfer(tx *gorm.DB, from, to string, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}

	// s1: debit from
	fromModel, err := s.Balances.SelectByAddress(tx, from)
	if err != nil {
		return err
	}

	fromBalance, err := utils.StringToBigint(fromModel.Balance)
	if err != nil {
		return err
	}

	if fromBalance.Cmp(amount) < 0 {
		return errors.New("insufficient balance")
	}

	fromUpdates := map[string]interface{}{
		"balance": new(big.Int).Sub(fromBalance, amount).String(),
	}

	if err = s.Balances.UpdateBalance(tx, fromModel.Id, fromUpdates); err != nil {
		return err
	}

	// s2: credit to
	toModel, err := s.Balances.SelectByAddress(tx, to)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			toModel = &dao.BalanceModel{Address: to}
			if err = s.Balances.Create(tx, toModel); err != nil {
				return err
			}
		} else {
			return err
		}
	}

	toBalance, err := utils.StringToBigint(toModel.Balance)
	if err != nil {
		return err
	}

	toUpdates := map[string]interface{}{
		"balance": new(big.Int).Add(toBalance, amount).String(),
	}

	return s.Balances.UpdateBalance(tx, toModel.Id, toUpdates)
}
