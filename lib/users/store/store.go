package userstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-board-backend/models"
	dashboardapimodels "job-board-backend/models/api/dashboard"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	FindByPhone(phone string) (rec *dbmodels.User, err error)
	Count(role models.UserRole, since *time.Time) (count int64, err error)
	List(filter dashboardapimodels.UsersFilter) (list []dbmodels.User, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
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

func (i impl) FindByPhone(phone string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("phone = ?", strings.TrimSpace(phone)).
		Order("created_at asc").
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

func (i impl) Count(role models.UserRole, since *time.Time) (count int64, err error) {
	tx := i.db.Model(&dbmodels.User{})
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	if since != nil {
		tx = tx.Where("created_at >= ?", *since)
	}
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(filter dashboardapimodels.UsersFilter) (list []dbmodels.User, rowCount int64, err error) {
	err = i.filtered(filter).Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list = []dbmodels.User{}
	err = i.filtered(filter).
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

func (i impl) filtered(filter dashboardapimodels.UsersFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.User{})
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if filter.Query != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(filter.Query)) + "%"
		tx = tx.Where("(LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)", pattern, pattern, pattern)
	}
	return tx
}
