package dao

import (
	"time"

	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"gorm.io/gorm"
)

type IIssuanceEvent interface {
	TableName() string
	Create(db *gorm.DB, model *IssuanceEventModel) error
	List(db *gorm.DB, limit int) ([]IssuanceEventModel, error)
}

// IssuanceEventModel is the issuance-notification log. A row is written for
// every batch-mint call that runs to completion, including the no-op for a
// caller that is not whitelisted.
type IssuanceEventModel struct {
	Id        uint64 `json:"id,string" gorm:"primaryKey"`
	Quantity  uint64 `json:"quantity"`
	Caller    string `json:"caller"`
	Timestamp int64  `json:"timestamp"`
	CreateAt  int64  `json:"create_at"`
}

type IssuanceEventHandler struct {
}

func (h *IssuanceEventHandler) TableName() string {
	return "issuance_event"
}

func (h *IssuanceEventHandler) Create(db *gorm.DB, model *IssuanceEventModel) error {
	var err error

	// init
	if model.Id == 0 {
		if model.Id, err = utils.GenSnowflakeID(); err != nil {
			return err
		}
	}

	model.CreateAt = time.Now().Unix()

	return db.Table(h.TableName()).Create(model).Error
}

func (h *IssuanceEventHandler) List(db *gorm.DB, limit int) ([]IssuanceEventModel, error) {
	var datas []IssuanceEventModel

	tx := db.Table(h.TableName()).Order("create_at desc").Limit(limit).Find(&datas)

	return datas, tx.Error
}
