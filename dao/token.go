package dao

import (
	"time"

	"gorm.io/gorm"
)

type IToken interface {
	TableName() string
	CreateBatch(db *gorm.DB, models []*TokenModel) error
	SelectById(db *gorm.DB, tokenId uint64) (*TokenModel, error)
	Burn(db *gorm.DB, tokenId uint64) error
	Count(db *gorm.DB) (int64, error)
}

// TokenModel is one minted certificate. Id is the ledger-assigned sequential
// token identifier, not a snowflake. Burned tokens keep their row so the
// identifier is never reassigned.
type TokenModel struct {
	Id       uint64 `json:"id,string" gorm:"primaryKey"`
	Owner    string `json:"owner"`
	Data     string `json:"data"`
	CreateAt int64  `json:"create_at"`
	UpdateAt int64  `json:"update_at"`
	DeleteAt int64  `json:"delete_at"`
}

type TokenHandler struct {
}

func (h *TokenHandler) TableName() string {
	return "token"
}

func (h *TokenHandler) CreateBatch(db *gorm.DB, models []*TokenModel) error {
	now := time.Now().Unix()
	for _, model := range models {
		model.CreateAt = now
		model.UpdateAt = now
	}

	return db.Table(h.TableName()).Create(models).Error
}

func (h *TokenHandler) SelectById(db *gorm.DB, tokenId uint64) (*TokenModel, error) {
	var model TokenModel

	if err := db.Table(h.TableName()).Where("id = ? and delete_at = 0", tokenId).First(&model).Error; err != nil {
		return nil, err
	}

	return &model, nil
}

func (h *TokenHandler) Burn(db *gorm.DB, tokenId uint64) error {
	updates := map[string]interface{}{
		"update_at": time.Now().Unix(),
		"delete_at": time.Now().Unix(),
	}

	return db.Table(h.TableName()).Where("id = ?", tokenId).UpdateColumns(updates).Error
}

func (h *TokenHandler) Count(db *gorm.DB) (int64, error) {
	var count int64

	tx := db.Table(h.TableName()).Where("delete_at = 0").Count(&count)

	return count, tx.Error
}
