package dao

import (
	"time"

	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"gorm.io/gorm"
)

type ICompany interface {
	TableName() string
	Create(db *gorm.DB, model *CompanyModel) error
	Update(db *gorm.DB, id uint64, data map[string]interface{}) error
	SelectByAddress(db *gorm.DB, address string) (*CompanyModel, error)
}

// CompanyModel binds a display name to an address. Informational only,
// last write wins.
type CompanyModel struct {
	Id       uint64 `json:"id,string" gorm:"primaryKey"`
	Address  string `json:"address"`
	Name     string `json:"name"`
	CreateAt int64  `json:"create_at"`
	UpdateAt int64  `json:"update_at"`
}

type CompanyHandler struct {
}

func (h *CompanyHandler) TableName() string {
	return "company"
}

func (h *CompanyHandler) Create(db *gorm.DB, model *CompanyModel) error {
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

func (h *CompanyHandler) Update(db *gorm.DB, id uint64, data map[string]interface{}) error {
	data["update_at"] = time.Now().Unix()

	return db.Table(h.TableName()).Where("id = ?", id).UpdateColumns(data).Error
}

func (h *CompanyHandler) SelectByAddress(db *gorm.DB, address string) (*CompanyModel, error) {
	var model CompanyModel

	if err := db.Table(h.TableName()).Where("address = ?", address).First(&model).Error; err != nil {
		return nil, err
	}

	return &model, nil
}
