package notificationstore

import (
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (*dbmodels.Notification, error)
	ListLast(userID string, limit int) (list []dbmodels.Notification, err error)
	List(userID string, page, limit int) (list []dbmodels.Notification, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (*dbmodels.Notification, error) {
	err := i.db.Create(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListLast(userID string, limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List(userID string, page, limit int) (list []dbmodels.Notification, rowCount int64, err error) {
	err = i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, err
	}
	list = []dbmodels.Notification{}
	err = i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
