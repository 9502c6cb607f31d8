package dao

import (
	"time"

	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"gorm.io/gorm"
)

// FirstTokenId is the base the ledger starts assigning identifiers at.
const FirstTokenId uint64 = 1

type ICounter interface {
	TableName() string
	Select(db *gorm.DB) (*CounterModel, error)
	Create(db *gorm.DB, model *CounterModel) error
	Advance(db *gorm.DB, id uint64, nextId uint64) error
}

// CounterModel holds the single next-token-id row. Identifiers only ever move
// forward, burns included.
type CounterModel struct {
	Id       uint64 `json:"id,string" gorm:"primaryKey"`
	NextId   uint64 `json:"next_id,string"`
	CreateAt int64  `json:"create_at"`
	UpdateAt int64  `json:"update_at"`
}

type CounterHandler struct {
}

func (h *CounterHandler) TableName() string {
	return "counter"
}

func (h *CounterHandler) Select(db *gorm.DB) (*CounterModel, error) {
	var model CounterModel

	if err := db.Table(h.TableName()).First(&model).Error; err != nil {
		return nil, err
	}

	return &model, nil
}

func (h *CounterHandler) Create(db *gorm.DB, model *CounterModel) error {
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

func (h *CounterHandler) Advance(db *gorm.DB, id uint64, nextId uint64) error {
	updates := map[string]interface{}{
		"next_id":   nextId,
		"update_at": time.Now().Unix(),
	}

	return db.Table(h.TableName()).Where("id = ?", id).UpdateColumns(updates).Error
}
