package systemlogstore

import (
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.SystemLog) (id string, err error)
	ListRecent(limit int) (list []dbmodels.SystemLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SystemLog) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListRecent(limit int) (list []dbmodels.SystemLog, err error) {
	list = []dbmodels.SystemLog{}
	err = i.db.
		Model(&dbmodels.SystemLog{}).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
