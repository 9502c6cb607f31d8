package dao

import (
	"time"

	"gorm.io/gorm"
)

type ITokenUri interface {
	TableName() string
	Create(db *gorm.DB, model *TokenUriModel) error
	SelectByTokenId(db *gorm.DB, tokenId uint64) (*TokenUriModel, error)
}

// TokenUriModel is the full-URI override written by single-item mints.
// Immutable once set; batch-minted tokens have no row here.
type TokenUriModel struct {
	TokenId  uint64 `json:"token_id,string" gorm:"primaryKey"`
	Uri      string `json:"uri"`
	CreateAt int64  `json:"create_at"`
}

type TokenUriHandler struct {
}

func (h *TokenUriHandler) TableName() string {
	return "token_uri"
}

func (h *TokenUriHandler) Create(db *gorm.DB, model *TokenUriModel) error {
	model.CreateAt = time.Now().Unix()

	return db.Table(h.TableName()).Create(model).Error
}

func (h *TokenUriHandler) SelectByTokenId(db *gorm.DB, tokenId uint64) (*TokenUriModel, error) {
	var model TokenUriModel

	if err := db.Table(h.TableName()).Where("token_id = ?", tokenId).First(&model).Error; err != nil {
		return nil, err
	}

	return &model, nil
}
