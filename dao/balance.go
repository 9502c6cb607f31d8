package dao

import (
	"time"

	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"gorm.io/gorm"
)

type IBalance interface {
	TableName() string
	Create(db *gorm.DB, model *BalanceModel) error
	UpdateBalance(db *gorm.DB, id uint64, data map[string]interface{}) error
	SelectByAddress(db *gorm.DB, address string) (*BalanceModel, error)
}

// BalanceModel holds an address's native-currency balance as a decimal
// string, same as on-chain wei amounts.
type BalanceModel struct {
	Id       uint64 `json:"id,string" gorm:"primaryKey"`
	Address  string `json:"address"`
	Balance  string `json:"balance"`
	CreateAt int64  `json:"create_at"`
	UpdateAt int64  `json:"update_at"`
}

type BalanceHandler struct {
}

func (h *BalanceHandler) TableName() string {
	return "balance"
}

func (h *BalanceHandler) Create(db *gorm.DB, model *BalanceModel) error {
	var err error

	// init
	if model.Id == 0 {
		if model.Id, err = utils.GenSnowflakeID(); err != nil {
			return err
		}
	}

	if model.Balance == "" {
		model.Balance = "0"
	}

	model.CreateAt = time.Now().Unix()
	model.UpdateAt = model.CreateAt

	return db.Table(h.TableName()).Create(model).Error
}

func (h *BalanceHandler) UpdateBalance(db *gorm.DB, id uint64, data map[string]interface{}) error {
	data["update_at"] = time.Now().Unix()

	return db.Table(h.TableName()).Where("id = ?", id).UpdateColumns(data).Error
}

func (h *BalanceHandler) SelectByAddress(db *gorm.DB, address string) (*BalanceModel, error) {
	var model BalanceModel

	if err := db.Table(h.TableName()).Where("address = ?", address).First(&model).Error; err != nil {
		return nil, err
	}

	return &model, nil
}
