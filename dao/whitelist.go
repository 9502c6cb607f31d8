package dao

import (
	"time"

	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"gorm.io/gorm"
)

type IWhitelist interface {
	TableName() string
	Create(db *gorm.DB, model *WhitelistModel) error
	Update(db *gorm.DB, id uint64, data map[string]interface{}) error
	SelectByAddress(db *gorm.DB, address string) (*WhitelistModel, error)
}

// WhitelistModel is the single-use batch-mint authorization for one address.
// Authorized flips back to 0 in the same transaction as the consuming mint.
type WhitelistModel struct {
	Id         uint64 `json:"id,string" gorm:"primaryKey"`
	Address    string `json:"address"`
	Authorized uint8  `json:"authorized"`
	CreateAt   int64  `json:"create_at"`
	UpdateAt   int64  `json:"update_at"`
}

type WhitelistHandler struct {
}

func (h *WhitelistHandler) TableName() string {
	return "whitelist"
}

func (h *WhitelistHandler) Create(db *gorm.DB, model *WhitelistModel) error {
	var err error

	// init
	if model.Id == 0 {
		if model.Id, err = utils.GenSnowflakeID(); err != nil {
			return err
		}
	}

	model.CreateAt = time.Now().Unix()
	model.UpdateAt = model.CreateAt

	return db.Table(h.TableName()).Create(model).Error
}

func (h *WhitelistHandler) Update(db *gorm.DB, id uint64, data map[string]interface{}) error {
	data["update_at"] = time.Now().Unix()

	return db.Table(h.TableName()).Where("id = ?", id).UpdateColumns(data).Error
}

func (h *WhitelistHandler) SelectByAddress(db *gorm.DB, address string) (*WhitelistModel, error) {
	var model WhitelistModel

	if err := db.Table(h.TableName()).Where("address = ?", address).First(&model).Error; err != nil {
		return nil, err
	}

	return &model, nil
}
