package dashboardhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	notificationhandler "job-board-backend/lib/notification"
	systemloghandler "job-board-backend/lib/system-log"
	testdb "job-board-backend/lib/utils/test-db"
	viewrefresh "job-board-backend/lib/view-refresh"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
	dashboardapimodels "job-board-backend/models/api/dashboard"
	dbmodels "job-board-backend/models/db"
)

type fixture struct {
	db        *gorm.DB
	cache     viewrefresh.Provider
	handler   Provider
	applicant dbmodels.User
	employer  dbmodels.User
	resume    dbmodels.Resume
	vacancy   dbmodels.Vacancy
}

func newFixture(t *testing.T) *fixture {
	db := testdb.New(t)
	cache := viewrefresh.NewInstance(time.Minute, nil)
	f := &fixture{
		db:      db,
		cache:   cache,
		handler: NewInstance(db, notificationhandler.NewInstance(db, nil, nil), systemloghandler.NewInstance(db), cache),
	}
	salary := 120000
	f.applicant = dbmodels.User{Email: "ivanov@mail.ru", FirstName: "Иван", LastName: "Иванов", Role: models.ApplicantRole}
	require.NoError(t, db.Create(&f.applicant).Error)
	f.employer = dbmodels.User{Email: "hr@romashka.ru", FirstName: "Ромашка", Role: models.EmployerRole}
	require.NoError(t, db.Create(&f.employer).Error)
	require.NoError(t, db.Create(&dbmodels.Company{UserID: f.employer.ID, Name: "Ромашка"}).Error)
	f.resume = dbmodels.Resume{UserID: f.applicant.ID, DesiredPosition: "Аналитик", Salary: &salary}
	require.NoError(t, db.Omit("User", "Education", "Experience").Create(&f.resume).Error)
	f.vacancy = dbmodels.Vacancy{EmployerID: f.employer.ID, Title: "Аналитик данных", City: "Москва", IsActive: true}
	require.NoError(t, db.Omit("Company").Create(&f.vacancy).Error)
	require.NoError(t, db.Omit("Applicant", "Vacancy", "Resume").Create(&dbmodels.Application{
		ApplicantID: f.applicant.ID,
		VacancyID:   f.vacancy.ID,
		ResumeID:    f.resume.ID,
		Status:      models.ApplicationStatusHired,
	}).Error)
	require.NoError(t, db.Create(&dbmodels.Notification{UserID: f.applicant.ID, Title: "Привет", Message: "Сообщение"}).Error)
	require.NoError(t, db.Create(&dbmodels.SystemLog{Action: "Создан отклик", UserEmail: f.applicant.Email}).Error)
	return f
}

func TestApplicant(t *testing.T) {
	f := newFixture(t)
	dashboard, err := f.handler.Applicant(f.applicant.ID)
	require.NoError(t, err)
	require.Len(t, dashboard.Applications, 1)
	require.Equal(t, "Аналитик данных", dashboard.Applications[0].VacancyTitle)
	require.Equal(t, 1, dashboard.StatusCounts[models.ApplicationStatusHired])
	require.Len(t, dashboard.Notifications, 1)
	require.NotNil(t, dashboard.Resume)
	require.Equal(t, 120000, *dashboard.Resume.Salary)

	t.Run(`cached until refresh`, func(t *testing.T) {
		require.NoError(t, f.db.Create(&dbmodels.Notification{UserID: f.applicant.ID, Title: "Ещё", Message: "Сообщение"}).Error)
		dashboard, err := f.handler.Applicant(f.applicant.ID)
		require.NoError(t, err)
		require.Len(t, dashboard.Notifications, 1)

		f.cache.Refresh([]models.ViewName{models.ApplicantDashboardView}, f.applicant.ID)
		dashboard, err = f.handler.Applicant(f.applicant.ID)
		require.NoError(t, err)
		require.Len(t, dashboard.Notifications, 2)
	})
}

func TestEmployer(t *testing.T) {
	f := newFixture(t)
	dashboard, err := f.handler.Employer(f.employer.ID)
	require.NoError(t, err)
	require.Len(t, dashboard.Vacancies, 1)
	require.Equal(t, 1, dashboard.Vacancies[0].ApplicationsCount)
	require.Len(t, dashboard.Applications, 1)
	require.Equal(t, "Иванов Иван", dashboard.Applications[0].ApplicantName)
	require.Equal(t, "Аналитик", dashboard.Applications[0].DesiredPosition)
	require.Empty(t, dashboard.Notifications)
}

func TestAdmin(t *testing.T) {
	f := newFixture(t)
	dashboard, err := f.handler.Admin()
	require.NoError(t, err)
	require.Equal(t, int64(2), dashboard.UsersCount)
	require.Equal(t, int64(1), dashboard.ActiveVacanciesCount)
	require.Equal(t, int64(1), dashboard.HiredCount)
	require.Len(t, dashboard.Logs, 1)
}

func TestUsers(t *testing.T) {
	f := newFixture(t)
	pagination := apimodels.Pagination{Page: 1, Limit: 10}

	t.Run(`all users with role details`, func(t *testing.T) {
		list, rowCount, err := f.handler.Users(dashboardapimodels.UsersFilter{Pagination: pagination})
		require.NoError(t, err)
		require.Equal(t, int64(2), rowCount)
		for _, item := range list {
			switch item.Role {
			case models.EmployerRole:
				require.Equal(t, "Ромашка", item.CompanyName)
			case models.ApplicantRole:
				require.Equal(t, "Аналитик", item.DesiredPosition)
			}
		}
	})

	t.Run(`filter by role and query`, func(t *testing.T) {
		list, rowCount, err := f.handler.Users(dashboardapimodels.UsersFilter{Pagination: pagination, Role: models.EmployerRole})
		require.NoError(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Equal(t, f.employer.ID, list[0].ID)

		list, _, err = f.handler.Users(dashboardapimodels.UsersFilter{Pagination: pagination, Query: "IVANOV"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, f.applicant.ID, list[0].ID)
	})
}
