package vacancyhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	systemloghandler "job-board-backend/lib/system-log"
	testdb "job-board-backend/lib/utils/test-db"
	viewrefresh "job-board-backend/lib/view-refresh"
	"job-board-backend/models"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

func newHandler(t *testing.T) (Provider, *gorm.DB) {
	db := testdb.New(t)
	return NewInstance(db, systemloghandler.NewInstance(db), viewrefresh.NewInstance(time.Minute, nil)), db
}

func createEmployer(t *testing.T, db *gorm.DB, email, companyName string) dbmodels.User {
	rec := dbmodels.User{
		Email:     email,
		FirstName: companyName,
		Role:      models.EmployerRole,
	}
	require.NoError(t, db.Create(&rec).Error)
	require.NoError(t, db.Create(&dbmodels.Company{UserID: rec.ID, Name: companyName}).Error)
	return rec
}

func vacancyData(title, city, specialization string, salaryFrom int) vacancyapimodels.VacancyData {
	return vacancyapimodels.VacancyData{
		Title:          title,
		Description:    "Описание вакансии",
		Requirements:   "Требования к кандидату",
		Conditions:     "Условия работы",
		City:           city,
		Specialization: specialization,
		EmploymentType: models.EmploymentFullTime,
		Schedule:       models.ScheduleOffice,
		SalaryFrom:     &salaryFrom,
	}
}

func TestCreate(t *testing.T) {
	handler, db := newHandler(t)
	employer := createEmployer(t, db, "hr@romashka.ru", "Ромашка")

	id, err := handler.Create(employer.ID, vacancyData("Бухгалтер", "Казань", "Финансы", 60000))
	require.NoError(t, err)

	view, err := handler.Get(id)
	require.NoError(t, err)
	require.True(t, view.IsActive)
	require.Equal(t, "Ромашка", view.CompanyName)

	logs := []dbmodels.SystemLog{}
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	require.Equal(t, "Создана вакансия Бухгалтер", logs[0].Action)
	require.Equal(t, "hr@romashka.ru", logs[0].UserEmail)

	_, err = handler.Get("missing")
	require.ErrorIs(t, err, ErrVacancyNotFound)
}

func TestSetActive(t *testing.T) {
	handler, db := newHandler(t)
	employer := createEmployer(t, db, "hr@romashka.ru", "Ромашка")
	other := createEmployer(t, db, "hr@lutik.ru", "Лютик")
	id, err := handler.Create(employer.ID, vacancyData("Бухгалтер", "Казань", "Финансы", 60000))
	require.NoError(t, err)

	t.Run(`owner closes vacancy`, func(t *testing.T) {
		list, err := handler.ListOwn(employer.ID)
		require.NoError(t, err)
		require.True(t, list[0].IsActive)

		require.NoError(t, handler.SetActive(employer.ID, id, false))
		list, err = handler.ListOwn(employer.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.False(t, list[0].IsActive)
	})

	t.Run(`foreign vacancy`, func(t *testing.T) {
		require.ErrorIs(t, handler.SetActive(other.ID, id, true), ErrVacancyNotFound)
	})
}

func TestSearch(t *testing.T) {
	handler, db := newHandler(t)
	employer := createEmployer(t, db, "hr@romashka.ru", "Ромашка")
	devID, err := handler.Create(employer.ID, vacancyData("Go developer", "Москва", "IT", 200000))
	require.NoError(t, err)
	_, err = handler.Create(employer.ID, vacancyData("Бухгалтер", "Казань", "Финансы", 60000))
	require.NoError(t, err)
	closedID, err := handler.Create(employer.ID, vacancyData("Архивариус", "Тверь", "Архив", 30000))
	require.NoError(t, err)
	require.NoError(t, handler.SetActive(employer.ID, closedID, false))

	t.Run(`only active vacancies, facets over all`, func(t *testing.T) {
		result, err := handler.Search("", vacancyapimodels.SearchFilter{})
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		require.ElementsMatch(t, []string{"Москва", "Казань", "Тверь"}, result.Cities)
		require.ElementsMatch(t, []string{"IT", "Финансы", "Архив"}, result.Specializations)
		require.Empty(t, result.AppliedIDs)
	})

	t.Run(`query and filters`, func(t *testing.T) {
		result, err := handler.Search("", vacancyapimodels.SearchFilter{Query: "GO"})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		require.Equal(t, devID, result.Items[0].ID)

		result, err = handler.Search("", vacancyapimodels.SearchFilter{SalaryFrom: 100000})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)

		result, err = handler.Search("", vacancyapimodels.SearchFilter{City: "Казань", Schedule: models.ScheduleOffice})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		require.Equal(t, "Бухгалтер", result.Items[0].Title)
	})

	t.Run(`applied ids for applicant`, func(t *testing.T) {
		applicant := dbmodels.User{Email: "ivanov@mail.ru", Role: models.ApplicantRole}
		require.NoError(t, db.Create(&applicant).Error)
		resume := dbmodels.Resume{UserID: applicant.ID}
		require.NoError(t, db.Omit("User", "Education", "Experience").Create(&resume).Error)
		require.NoError(t, db.Omit("Applicant", "Vacancy", "Resume").Create(&dbmodels.Application{
			ApplicantID: applicant.ID,
			VacancyID:   devID,
			ResumeID:    resume.ID,
			Status:      models.ApplicationStatusPending,
		}).Error)

		result, err := handler.Search(applicant.ID, vacancyapimodels.SearchFilter{})
		require.NoError(t, err)
		require.Equal(t, []string{devID}, result.AppliedIDs)
	})
}
