package companystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Company) (id string, err error)
	GetByUserID(userID string) (rec *dbmodels.Company, err error)
	ListByUserIDs(userIDs []string) (list []dbmodels.Company, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Company) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByUserID(userID string) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
	err := i.db.
		Model(&dbmodels.Company{}).
		Where("user_id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByUserIDs(userIDs []string) (list []dbmodels.Company, err error) {
	list = []dbmodels.Company{}
	if len(userIDs) == 0 {
		return list, nil
	}
	err = i.db.
		Model(&dbmodels.Company{}).
		Where("user_id in (?)", userIDs).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
