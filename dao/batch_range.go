package dao

import (
	"time"

	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"gorm.io/gorm"
)

type IBatchRange interface {
	TableName() string
	Create(db *gorm.DB, model *BatchRangeModel) error
	SelectByTokenId(db *gorm.DB, tokenId uint64) (*BatchRangeModel, error)
}

// BatchRangeModel maps the half-open identifier range [StartId, StartId+Quantity)
// created by one batch mint to its base URI.
type BatchRangeModel struct {
	Id       uint64 `json:"id,string" gorm:"primaryKey"`
	StartId  uint64 `json:"start_id,string"`
	Quantity uint64 `json:"quantity"`
	BaseUri  string `json:"base_uri"`
	CreateAt int64  `json:"create_at"`
	UpdateAt int64  `json:"update_at"`
}

type BatchRangeHandler struct {
}

func (h *BatchRangeHandler) TableName() string {
	return "batch_range"
}

func (h *BatchRangeHandler) Create(db *gorm.DB, model *BatchRangeModel) error {
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

func (h *BatchRangeHandler) SelectByTokenId(db *gorm.DB, tokenId uint64) (*BatchRangeModel, error) {
	var model BatchRangeModel

	if err := db.Table(h.TableName()).
		Where("start_id <= ? and start_id + quantity > ?", tokenId, tokenId).
		First(&model).Error; err != nil {
		return nil, err
	}

	return &model, nil
}
