package applicationstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	FindByVacancyResume(vacancyID, resumeID string) (rec *dbmodels.Application, err error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	// UpdateStatusFrom меняет статус только если текущий равен from, false - статус уже другой
	UpdateStatusFrom(id string, from, to models.ApplicationStatus) (ok bool, err error)
	ListByApplicant(applicantID string, limit int) (list []dbmodels.Application, err error)
	ListByEmployer(employerID string, limit int) (list []dbmodels.Application, err error)
	VacancyIDsByApplicant(applicantID string) (ids []string, err error)
	Count(status models.ApplicationStatus) (count int64, err error)
	CountUpdatedBetween(status models.ApplicationStatus, from, to time.Time) (count int64, err error)
	UpdatedDates(status models.ApplicationStatus) (dates []time.Time, err error)
	Popular(limit int) (list []dbmodels.VacancyPopularity, err error)
	CountByVacancy(vacancyIDs []string) (list []dbmodels.CountByKey, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload("Vacancy").
		Preload("Applicant").
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

func (i impl) FindByVacancyResume(vacancyID, resumeID string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("vacancy_id = ?", vacancyID).
		Where("resume_id = ?", resumeID).
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

func (i impl) UpdateStatus(id string, status models.ApplicationStatus) error {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) UpdateStatusFrom(id string, from, to models.ApplicationStatus) (ok bool, err error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Where("status = ?", from).
		Update("status", to)
	if err = tx.Error; err != nil {
		return false, err
	}
	return tx.RowsAffected == 1, nil
}

func (i impl) ListByApplicant(applicantID string, limit int) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("applicant_id = ?", applicantID).
		Preload("Vacancy.Company").
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByEmployer(employerID string, limit int) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Joins("join vacancies v on v.id = applications.vacancy_id").
		Where("v.employer_id = ?", employerID).
		Preload("Vacancy").
		Preload("Resume").
		Preload("Applicant").
		Order("applications.created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) VacancyIDsByApplicant(applicantID string) (ids []string, err error) {
	ids = []string{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("applicant_id = ?", applicantID).
		Pluck("vacancy_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) Count(status models.ApplicationStatus) (count int64, err error) {
	tx := i.db.Model(&dbmodels.Application{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) CountUpdatedBetween(status models.ApplicationStatus, from, to time.Time) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("status = ?", status).
		Where("updated_at >= ? AND updated_at <= ?", from, to).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) UpdatedDates(status models.ApplicationStatus) (dates []time.Time, err error) {
	list := []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Select("updated_at").
		Where("status = ?", status).
		Order("updated_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	dates = make([]time.Time, 0, len(list))
	for _, item := range list {
		dates = append(dates, item.UpdatedAt)
	}
	return dates, nil
}

func (i impl) Popular(limit int) (list []dbmodels.VacancyPopularity, err error) {
	list = []dbmodels.VacancyPopularity{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Select("v.id as vacancy_id, v.title as title, v.specialization as specialization, count(applications.id) as cnt").
		Joins("join vacancies v on v.id = applications.vacancy_id").
		Group("v.id, v.title, v.specialization").
		Order("cnt desc").
		Limit(limit).
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByVacancy(vacancyIDs []string) (list []dbmodels.CountByKey, err error) {
	list = []dbmodels.CountByKey{}
	if len(vacancyIDs) == 0 {
		return list, nil
	}
	err = i.db.
		Model(&dbmodels.Application{}).
		Select("vacancy_id as group_key, count(id) as cnt").
		Where("vacancy_id in (?)", vacancyIDs).
		Group("vacancy_id").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
