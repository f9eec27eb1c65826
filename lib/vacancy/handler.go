package vacancyhandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-board-backend/db"
	applicationstore "job-board-backend/lib/application/store"
	companystore "job-board-backend/lib/company/store"
	systemloghandler "job-board-backend/lib/system-log"
	userstore "job-board-backend/lib/users/store"
	initchecker "job-board-backend/lib/utils/init-checker"
	vacancystore "job-board-backend/lib/vacancy/store"
	viewrefresh "job-board-backend/lib/view-refresh"
	"job-board-backend/models"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

const searchLimit = 30

var ErrVacancyNotFound = models.NewNotFoundError("Вакансия не найдена")

type Provider interface {
	Create(employerID string, data vacancyapimodels.VacancyData) (id string, err error)
	Get(id string) (item vacancyapimodels.VacancyView, err error)
	SetActive(employerID, id string, isActive bool) error
	ListOwn(employerID string) (list []vacancyapimodels.VacancyView, err error)
	// Search активные вакансии и фильтры по всем вакансиям, applicantID пустой для гостя
	Search(applicantID string, filter vacancyapimodels.SearchFilter) (result vacancyapimodels.SearchResult, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"systemloghandler", systemloghandler.Instance,
		"viewrefresh", viewrefresh.Instance,
	)
	Instance = NewInstance(db.DB, systemloghandler.Instance, viewrefresh.Instance)
}

func NewInstance(DB *gorm.DB, auditor systemloghandler.Provider, refresher viewrefresh.Provider) Provider {
	return impl{
		db:               DB,
		store:            vacancystore.NewInstance(DB),
		applicationStore: applicationstore.NewInstance(DB),
		auditor:          auditor,
		refresher:        refresher,
	}
}

type impl struct {
	db               *gorm.DB
	store            vacancystore.Provider
	applicationStore applicationstore.Provider
	auditor          systemloghandler.Provider
	refresher        viewrefresh.Provider
}

func (i impl) Create(employerID string, data vacancyapimodels.VacancyData) (id string, err error) {
	logger := log.WithField("employer_id", employerID)
	err = i.db.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.Vacancy{
			EmployerID:     employerID,
			Title:          data.Title,
			Description:    data.Description,
			Requirements:   data.Requirements,
			Conditions:     data.Conditions,
			City:           data.City,
			Specialization: data.Specialization,
			EmploymentType: data.EmploymentType,
			Schedule:       data.Schedule,
			SalaryFrom:     data.SalaryFrom,
			SalaryTo:       data.SalaryTo,
			IsActive:       true,
		}
		company, err := companystore.NewInstance(tx).GetByUserID(employerID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения компании")
		}
		if company != nil {
			rec.CompanyID = &company.ID
		}
		id, err = vacancystore.NewInstance(tx).Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания вакансии")
		}
		employer, err := userstore.NewInstance(tx).GetByID(employerID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения работодателя")
		}
		email := ""
		if employer != nil {
			email = employer.Email
		}
		return i.auditor.Write(tx, fmt.Sprintf("Создана вакансия %v", data.Title), email)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания вакансии")
		return "", errors.New("ошибка создания вакансии")
	}
	logger.WithField("vacancy_id", id).Info("создана вакансия")
	i.refresher.Refresh([]models.ViewName{models.EmployerDashboardView, models.EmployerVacanciesView, models.JobSearchView},
		employerID)
	return id, nil
}

func (i impl) Get(id string) (vacancyapimodels.VacancyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("vacancy_id", id).Error("ошибка получения вакансии")
		return vacancyapimodels.VacancyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, ErrVacancyNotFound
	}
	return vacancyapimodels.VacancyConvert(*rec), nil
}

func (i impl) SetActive(employerID, id string, isActive bool) error {
	logger := log.
		WithField("employer_id", employerID).
		WithField("vacancy_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии")
		return err
	}
	if rec == nil || rec.EmployerID != employerID {
		return ErrVacancyNotFound
	}
	err = i.store.Update(employerID, id, map[string]interface{}{"is_active": isActive})
	if err != nil {
		logger.WithError(err).Error("ошибка изменения активности вакансии")
		return err
	}
	logger.WithField("is_active", isActive).Info("изменена активность вакансии")
	i.refresher.Refresh([]models.ViewName{models.EmployerDashboardView, models.EmployerVacanciesView, models.JobSearchView},
		employerID)
	return nil
}

func (i impl) ListOwn(employerID string) ([]vacancyapimodels.VacancyView, error) {
	if cached, ok := i.refresher.Get(models.EmployerVacanciesView, employerID); ok {
		if list, ok := cached.([]vacancyapimodels.VacancyView); ok {
			return list, nil
		}
	}
	recList, err := i.store.ListByEmployer(employerID, 0)
	if err != nil {
		log.WithError(err).WithField("employer_id", employerID).Error("ошибка получения вакансий работодателя")
		return nil, errors.New("ошибка получения вакансий")
	}
	list := convertList(recList)
	i.refresher.Set(models.EmployerVacanciesView, employerID, list)
	return list, nil
}

func (i impl) Search(applicantID string, filter vacancyapimodels.SearchFilter) (result vacancyapimodels.SearchResult, err error) {
	logger := log.WithField("filter", filter)
	recList, err := i.store.Search(filter, searchLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска вакансий")
		return result, errors.New("ошибка поиска вакансий")
	}
	result.Items = convertList(recList)
	result.Cities, err = i.store.DistinctValues("city")
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка городов")
		return result, errors.New("ошибка поиска вакансий")
	}
	result.Specializations, err = i.store.DistinctValues("specialization")
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка специализаций")
		return result, errors.New("ошибка поиска вакансий")
	}
	result.AppliedIDs = []string{}
	if applicantID != "" {
		result.AppliedIDs, err = i.applicationStore.VacancyIDsByApplicant(applicantID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения откликов соискателя")
			return result, errors.New("ошибка поиска вакансий")
		}
	}
	return result, nil
}

func convertList(recList []dbmodels.Vacancy) []vacancyapimodels.VacancyView {
	result := make([]vacancyapimodels.VacancyView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, vacancyapimodels.VacancyConvert(rec))
	}
	return result
}
