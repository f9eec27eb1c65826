package vacancystore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	Update(employerID, id string, updMap map[string]interface{}) error
	LatestActive(employerID string) (rec *dbmodels.Vacancy, err error)
	ListByEmployer(employerID string, limit int) (list []dbmodels.Vacancy, err error)
	Search(filter vacancyapimodels.SearchFilter, limit int) (list []dbmodels.Vacancy, err error)
	DistinctValues(column string) (values []string, err error)
	CountActive() (count int64, err error)
	GroupCount(column string) (list []dbmodels.CountByKey, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Preload("Company").
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

func (i impl) Update(employerID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Where("employer_id = ?", employerID).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) LatestActive(employerID string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("employer_id = ?", employerID).
		Where("is_active = ?", true).
		Order("created_at desc").
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

func (i impl) ListByEmployer(employerID string, limit int) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("employer_id = ?", employerID).
		Preload("Company").
		Order("created_at desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Search(filter vacancyapimodels.SearchFilter, limit int) (list []dbmodels.Vacancy, err error) {
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("is_active = ?", true)
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		pattern := "%" + q + "%"
		tx = tx.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(requirements) LIKE ?)", pattern, pattern, pattern)
	}
	if filter.City != "" {
		tx = tx.Where("city = ?", filter.City)
	}
	if filter.Specialization != "" {
		tx = tx.Where("specialization = ?", filter.Specialization)
	}
	if filter.EmploymentType != "" {
		tx = tx.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.Schedule != "" {
		tx = tx.Where("schedule = ?", filter.Schedule)
	}
	if filter.SalaryFrom > 0 {
		tx = tx.Where("salary_from >= ?", filter.SalaryFrom)
	}
	list = []dbmodels.Vacancy{}
	err = tx.
		Preload("Company").
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DistinctValues(column string) (values []string, err error) {
	values = []string{}
	err = i.db.
		Model(&dbmodels.Vacancy{}).
		Where(column+" <> ''").
		Distinct().
		Order(column+" asc").
		Pluck(column, &values).
		Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (i impl) CountActive() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Vacancy{}).
		Where("is_active = ?", true).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GroupCount количество вакансий по значениям колонки, по убыванию
func (i impl) GroupCount(column string) (list []dbmodels.CountByKey, err error) {
	list = []dbmodels.CountByKey{}
	err = i.db.
		Model(&dbmodels.Vacancy{}).
		Select("COALESCE(" + column + ", '') as group_key, count(id) as cnt").
		Group("COALESCE(" + column + ", '')").
		Order("cnt desc").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
