package dashboardhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-board-backend/db"
	applicationstore "job-board-backend/lib/application/store"
	companystore "job-board-backend/lib/company/store"
	notificationhandler "job-board-backend/lib/notification"
	resumestore "job-board-backend/lib/resume/store"
	systemloghandler "job-board-backend/lib/system-log"
	userstore "job-board-backend/lib/users/store"
	initchecker "job-board-backend/lib/utils/init-checker"
	vacancystore "job-board-backend/lib/vacancy/store"
	viewrefresh "job-board-backend/lib/view-refresh"
	"job-board-backend/models"
	applicationapimodels "job-board-backend/models/api/application"
	dashboardapimodels "job-board-backend/models/api/dashboard"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

const (
	applicationsLimit  = 8
	notificationsLimit = 6
	vacanciesLimit     = 6
	logsLimit          = 20
	// ключ кэша общей для всех администраторов сводки
	adminCacheKey = "all"
)

type Provider interface {
	Applicant(userID string) (dashboard dashboardapimodels.ApplicantDashboard, err error)
	Employer(userID string) (dashboard dashboardapimodels.EmployerDashboard, err error)
	Admin() (dashboard dashboardapimodels.AdminDashboard, err error)
	Users(filter dashboardapimodels.UsersFilter) (list []dashboardapimodels.UserView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"notificationhandler", notificationhandler.Instance,
		"systemloghandler", systemloghandler.Instance,
		"viewrefresh", viewrefresh.Instance,
	)
	Instance = NewInstance(db.DB, notificationhandler.Instance, systemloghandler.Instance, viewrefresh.Instance)
}

func NewInstance(DB *gorm.DB, notifier notificationhandler.Provider, auditor systemloghandler.Provider, cache viewrefresh.Provider) Provider {
	return impl{
		applicationStore: applicationstore.NewInstance(DB),
		vacancyStore:     vacancystore.NewInstance(DB),
		resumeStore:      resumestore.NewInstance(DB),
		userStore:        userstore.NewInstance(DB),
		companyStore:     companystore.NewInstance(DB),
		notifier:         notifier,
		auditor:          auditor,
		cache:            cache,
	}
}

type impl struct {
	applicationStore applicationstore.Provider
	vacancyStore     vacancystore.Provider
	resumeStore      resumestore.Provider
	userStore        userstore.Provider
	companyStore     companystore.Provider
	notifier         notificationhandler.Provider
	auditor          systemloghandler.Provider
	cache            viewrefresh.Provider
}

func (i impl) Applicant(userID string) (result dashboardapimodels.ApplicantDashboard, err error) {
	if cached, ok := i.cache.Get(models.ApplicantDashboardView, userID); ok {
		if result, ok = cached.(dashboardapimodels.ApplicantDashboard); ok {
			return result, nil
		}
	}
	logger := log.WithField("user_id", userID)
	appList, err := i.applicationStore.ListByApplicant(userID, applicationsLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения откликов соискателя")
		return result, errors.New("ошибка получения данных кабинета")
	}
	result.Applications = convertApplications(appList)
	result.StatusCounts = map[models.ApplicationStatus]int{}
	for _, item := range appList {
		result.StatusCounts[item.Status]++
	}
	result.Notifications, err = i.notifier.ListLast(userID, notificationsLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения уведомлений")
		return result, errors.New("ошибка получения данных кабинета")
	}
	resume, err := i.resumeStore.GetByUserID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения резюме")
		return result, errors.New("ошибка получения данных кабинета")
	}
	if resume != nil {
		result.Resume = &dashboardapimodels.ResumeSummary{
			ID:              resume.ID,
			DesiredPosition: resume.DesiredPosition,
			Salary:          resume.Salary,
		}
	}
	i.cache.Set(models.ApplicantDashboardView, userID, result)
	return result, nil
}

func (i impl) Employer(userID string) (result dashboardapimodels.EmployerDashboard, err error) {
	if cached, ok := i.cache.Get(models.EmployerDashboardView, userID); ok {
		if result, ok = cached.(dashboardapimodels.EmployerDashboard); ok {
			return result, nil
		}
	}
	logger := log.WithField("user_id", userID)
	vacancyList, err := i.vacancyStore.ListByEmployer(userID, vacanciesLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансий работодателя")
		return result, errors.New("ошибка получения данных кабинета")
	}
	vacancyIDs := make([]string, 0, len(vacancyList))
	for _, item := range vacancyList {
		vacancyIDs = append(vacancyIDs, item.ID)
	}
	counts, err := i.applicationStore.CountByVacancy(vacancyIDs)
	if err != nil {
		logger.WithError(err).Error("ошибка подсчёта откликов по вакансиям")
		return result, errors.New("ошибка получения данных кабинета")
	}
	countMap := make(map[string]int, len(counts))
	for _, item := range counts {
		countMap[item.Key] = int(item.Count)
	}
	result.Vacancies = make([]dashboardapimodels.EmployerVacancy, 0, len(vacancyList))
	for _, item := range vacancyList {
		result.Vacancies = append(result.Vacancies, dashboardapimodels.EmployerVacancy{
			VacancyView:       vacancyapimodels.VacancyConvert(item),
			ApplicationsCount: countMap[item.ID],
		})
	}
	appList, err := i.applicationStore.ListByEmployer(userID, applicationsLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения откликов на вакансии")
		return result, errors.New("ошибка получения данных кабинета")
	}
	result.Applications = convertApplications(appList)
	result.Notifications, err = i.notifier.ListLast(userID, notificationsLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения уведомлений")
		return result, errors.New("ошибка получения данных кабинета")
	}
	i.cache.Set(models.EmployerDashboardView, userID, result)
	return result, nil
}

func (i impl) Admin() (result dashboardapimodels.AdminDashboard, err error) {
	if cached, ok := i.cache.Get(models.AdminDashboardView, adminCacheKey); ok {
		if result, ok = cached.(dashboardapimodels.AdminDashboard); ok {
			return result, nil
		}
	}
	result.UsersCount, err = i.userStore.Count("", nil)
	if err != nil {
		log.WithError(err).Error("ошибка подсчёта пользователей")
		return result, errors.New("ошибка получения сводки")
	}
	result.ActiveVacanciesCount, err = i.vacancyStore.CountActive()
	if err != nil {
		log.WithError(err).Error("ошибка подсчёта активных вакансий")
		return result, errors.New("ошибка получения сводки")
	}
	result.HiredCount, err = i.applicationStore.Count(models.ApplicationStatusHired)
	if err != nil {
		log.WithError(err).Error("ошибка подсчёта трудоустроенных")
		return result, errors.New("ошибка получения сводки")
	}
	result.Logs, err = i.auditor.ListRecent(logsLimit)
	if err != nil {
		log.WithError(err).Error("ошибка получения журнала")
		return result, errors.New("ошибка получения сводки")
	}
	i.cache.Set(models.AdminDashboardView, adminCacheKey, result)
	return result, nil
}

func (i impl) Users(filter dashboardapimodels.UsersFilter) (list []dashboardapimodels.UserView, rowCount int64, err error) {
	logger := log.WithField("filter", filter)
	recList, rowCount, err := i.userStore.List(filter)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка пользователей")
		return nil, 0, errors.New("ошибка получения списка пользователей")
	}
	employerIDs := []string{}
	applicantIDs := []string{}
	for _, rec := range recList {
		switch rec.Role {
		case models.EmployerRole:
			employerIDs = append(employerIDs, rec.ID)
		case models.ApplicantRole:
			applicantIDs = append(applicantIDs, rec.ID)
		}
	}
	companies, err := i.companyStore.ListByUserIDs(employerIDs)
	if err != nil {
		logger.WithError(err).Error("ошибка получения компаний")
		return nil, 0, errors.New("ошибка получения списка пользователей")
	}
	companyMap := make(map[string]string, len(companies))
	for _, item := range companies {
		companyMap[item.UserID] = item.Name
	}
	resumes, err := i.resumeStore.ListByUserIDs(applicantIDs)
	if err != nil {
		logger.WithError(err).Error("ошибка получения резюме")
		return nil, 0, errors.New("ошибка получения списка пользователей")
	}
	positionMap := make(map[string]string, len(resumes))
	for _, item := range resumes {
		positionMap[item.UserID] = item.DesiredPosition
	}
	list = make([]dashboardapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		item := dashboardapimodels.UserConvert(rec)
		item.CompanyName = companyMap[rec.ID]
		item.DesiredPosition = positionMap[rec.ID]
		list = append(list, item)
	}
	return list, rowCount, nil
}

func convertApplications(recList []dbmodels.Application) []applicationapimodels.ApplicationView {
	result := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result
}
