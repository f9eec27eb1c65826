package applicationhandler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	notificationhandler "job-board-backend/lib/notification"
	systemloghandler "job-board-backend/lib/system-log"
	testdb "job-board-backend/lib/utils/test-db"
	"job-board-backend/models"
	applicationapimodels "job-board-backend/models/api/application"
	dbmodels "job-board-backend/models/db"
)

type refreshCall struct {
	views   []models.ViewName
	userIDs []string
}

type refresherMock struct {
	mu    sync.Mutex
	calls []refreshCall
}

func (r *refresherMock) Get(view models.ViewName, userID string) (interface{}, bool) {
	return nil, false
}

func (r *refresherMock) Set(view models.ViewName, userID string, value interface{}) {}

func (r *refresherMock) Refresh(views []models.ViewName, userIDs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, refreshCall{views: views, userIDs: userIDs})
}

type fixture struct {
	db        *gorm.DB
	handler   Provider
	refresher *refresherMock
	applicant dbmodels.User
	employer  dbmodels.User
	resume    dbmodels.Resume
	vacancy   dbmodels.Vacancy
}

func newFixture(t *testing.T) *fixture {
	db := testdb.New(t)
	f := &fixture{
		db:        db,
		refresher: &refresherMock{},
	}
	f.handler = NewInstance(db, notificationhandler.NewInstance(db, nil, nil), systemloghandler.NewInstance(db), f.refresher)
	f.applicant = createUser(t, db, "ivanov@mail.ru", "Иван", "Иванов", models.ApplicantRole)
	f.employer = createUser(t, db, "hr@romashka.ru", "Мария", "Петрова", models.EmployerRole)
	f.resume = createResume(t, db, f.applicant.ID)
	f.vacancy = createVacancy(t, db, f.employer.ID, "Go разработчик", true)
	return f
}

func createUser(t *testing.T, db *gorm.DB, email, firstName, lastName string, role models.UserRole) dbmodels.User {
	rec := dbmodels.User{
		Email:     email,
		Password:  "hash",
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
	}
	require.NoError(t, db.Create(&rec).Error)
	return rec
}

func createResume(t *testing.T, db *gorm.DB, userID string) dbmodels.Resume {
	rec := dbmodels.Resume{
		UserID:          userID,
		DesiredPosition: "Разработчик",
	}
	require.NoError(t, db.Omit("User", "Education", "Experience").Create(&rec).Error)
	return rec
}

func createVacancy(t *testing.T, db *gorm.DB, employerID, title string, active bool) dbmodels.Vacancy {
	rec := dbmodels.Vacancy{
		EmployerID:     employerID,
		Title:          title,
		City:           "Москва",
		Specialization: "IT",
		EmploymentType: models.EmploymentFullTime,
		Schedule:       models.ScheduleRemote,
		IsActive:       true,
	}
	require.NoError(t, db.Omit("Company").Create(&rec).Error)
	if !active {
		require.NoError(t, db.Model(&dbmodels.Vacancy{}).Where("id = ?", rec.ID).Update("is_active", false).Error)
		rec.IsActive = false
	}
	return rec
}

func (f *fixture) status(t *testing.T, id string) models.ApplicationStatus {
	rec := dbmodels.Application{}
	require.NoError(t, f.db.Where("id = ?", id).First(&rec).Error)
	return rec.Status
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	var cnt int64
	require.NoError(t, f.db.Model(model).Count(&cnt).Error)
	return cnt
}

func (f *fixture) notifications(t *testing.T, userID string) []dbmodels.Notification {
	list := []dbmodels.Notification{}
	require.NoError(t, f.db.Where("user_id = ?", userID).Order("created_at asc").Find(&list).Error)
	return list
}

func (f *fixture) logs(t *testing.T) []dbmodels.SystemLog {
	list := []dbmodels.SystemLog{}
	require.NoError(t, f.db.Order("created_at asc").Find(&list).Error)
	return list
}

func (f *fixture) apply(t *testing.T) string {
	id, err := f.handler.Create(f.applicant.ID, applicationapimodels.CreateRequest{VacancyID: f.vacancy.ID})
	require.NoError(t, err)
	return id
}

func TestCreate(t *testing.T) {
	t.Run(`create pending application`, func(t *testing.T) {
		f := newFixture(t)
		id := f.apply(t)
		require.NotEmpty(t, id)
		require.Equal(t, models.ApplicationStatusPending, f.status(t, id))

		logs := f.logs(t)
		require.Len(t, logs, 1)
		require.Equal(t, "Создан отклик", logs[0].Action)
		require.Equal(t, f.applicant.Email, logs[0].UserEmail)
		require.Empty(t, f.notifications(t, f.employer.ID))

		require.Len(t, f.refresher.calls, 1)
		require.Contains(t, f.refresher.calls[0].views, models.ApplicantDashboardView)
		require.Contains(t, f.refresher.calls[0].views, models.EmployerDashboardView)
		require.ElementsMatch(t, []string{f.applicant.ID, f.employer.ID}, f.refresher.calls[0].userIDs)
	})

	t.Run(`duplicate application rejected`, func(t *testing.T) {
		f := newFixture(t)
		f.apply(t)
		_, err := f.handler.Create(f.applicant.ID, applicationapimodels.CreateRequest{VacancyID: f.vacancy.ID, ResumeID: f.resume.ID})
		require.ErrorIs(t, err, ErrDuplicateApplication)
		require.Equal(t, int64(1), f.count(t, &dbmodels.Application{}))
		require.Len(t, f.logs(t), 1)
	})

	t.Run(`unknown vacancy`, func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.Create(f.applicant.ID, applicationapimodels.CreateRequest{VacancyID: "missing"})
		require.ErrorIs(t, err, ErrVacancyNotFound)
		require.Zero(t, f.count(t, &dbmodels.Application{}))
		require.Empty(t, f.refresher.calls)
	})

	t.Run(`closed vacancy`, func(t *testing.T) {
		f := newFixture(t)
		closed := createVacancy(t, f.db, f.employer.ID, "Архивная", false)
		_, err := f.handler.Create(f.applicant.ID, applicationapimodels.CreateRequest{VacancyID: closed.ID})
		require.ErrorIs(t, err, ErrVacancyClosed)
	})

	t.Run(`applicant without resume`, func(t *testing.T) {
		f := newFixture(t)
		other := createUser(t, f.db, "noresume@mail.ru", "Пётр", "Сидоров", models.ApplicantRole)
		_, err := f.handler.Create(other.ID, applicationapimodels.CreateRequest{VacancyID: f.vacancy.ID})
		require.ErrorIs(t, err, ErrResumeNotFound)
	})

	t.Run(`foreign resume forbidden`, func(t *testing.T) {
		f := newFixture(t)
		other := createUser(t, f.db, "other@mail.ru", "Пётр", "Сидоров", models.ApplicantRole)
		_, err := f.handler.Create(other.ID, applicationapimodels.CreateRequest{VacancyID: f.vacancy.ID, ResumeID: f.resume.ID})
		require.ErrorIs(t, err, ErrForbidden)
		require.Zero(t, f.count(t, &dbmodels.Application{}))
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run(`employer changes status`, func(t *testing.T) {
		f := newFixture(t)
		id := f.apply(t)
		require.NoError(t, f.handler.UpdateStatus(f.employer.ID, id, models.ApplicationStatusRejected))
		require.Equal(t, models.ApplicationStatusRejected, f.status(t, id))

		list := f.notifications(t, f.applicant.ID)
		require.Len(t, list, 1)
		require.Equal(t, "Изменение статуса отклика", list[0].Title)
		require.Contains(t, list[0].Message, f.vacancy.ID)
		require.Contains(t, list[0].Message, "отклонён")

		logs := f.logs(t)
		require.Len(t, logs, 2)
		require.Equal(t, "Статус отклика изменён на rejected", logs[1].Action)
		require.Equal(t, f.applicant.Email, logs[1].UserEmail)
	})

	t.Run(`any transition allowed for employer`, func(t *testing.T) {
		f := newFixture(t)
		id := f.apply(t)
		require.NoError(t, f.handler.UpdateStatus(f.employer.ID, id, models.ApplicationStatusHired))
		require.NoError(t, f.handler.UpdateStatus(f.employer.ID, id, models.ApplicationStatusPending))
		require.Equal(t, models.ApplicationStatusPending, f.status(t, id))
		require.Len(t, f.notifications(t, f.applicant.ID), 2)
	})

	t.Run(`admin changes any application`, func(t *testing.T) {
		f := newFixture(t)
		id := f.apply(t)
		require.NoError(t, f.handler.UpdateStatus("", id, models.ApplicationStatusHired))
		require.Equal(t, models.ApplicationStatusHired, f.status(t, id))
		last := f.refresher.calls[len(f.refresher.calls)-1]
		require.Contains(t, last.views, models.AdminDashboardView)
	})

	t.Run(`foreign employer forbidden`, func(t *testing.T) {
		f := newFixture(t)
		id := f.apply(t)
		other := createUser(t, f.db, "hr@other.ru", "Олег", "Смирнов", models.EmployerRole)
		err := f.handler.UpdateStatus(other.ID, id, models.ApplicationStatusHired)
		require.ErrorIs(t, err, ErrForbidden)
		require.Equal(t, models.ApplicationStatusPending, f.status(t, id))
		require.Empty(t, f.notifications(t, f.applicant.ID))
	})

	t.Run(`unknown application`, func(t *testing.T) {
		f := newFixture(t)
		err := f.handler.UpdateStatus(f.employer.ID, "missing", models.ApplicationStatusHired)
		require.ErrorIs(t, err, ErrApplicationNotFound)
		require.Empty(t, f.logs(t))
		require.Zero(t, f.count(t, &dbmodels.Notification{}))
	})

	t.Run(`unknown status`, func(t *testing.T) {
		f := newFixture(t)
		id := f.apply(t)
		err := f.handler.UpdateStatus(f.employer.ID, id, "archived")
		require.ErrorIs(t, err, ErrInvalidStatus)
		require.Equal(t, models.ApplicationStatusPending, f.status(t, id))
	})
}

func TestInvite(t *testing.T) {
	t.Run(`invite creates application`, func(t *testing.T) {
		f := newFixture(t)
		id, err := f.handler.Invite(f.employer.ID, f.resume.ID)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusInvited, f.status(t, id))

		rec := dbmodels.Application{}
		require.NoError(t, f.db.Where("id = ?", id).First(&rec).Error)
		require.Equal(t, f.vacancy.ID, rec.VacancyID)
		require.Equal(t, f.applicant.ID, rec.ApplicantID)

		list := f.notifications(t, f.applicant.ID)
		require.Len(t, list, 1)
		require.Equal(t, "Приглашение на собеседование", list[0].Title)
		require.Contains(t, list[0].Message, f.vacancy.Title)

		logs := f.logs(t)
		require.Len(t, logs, 1)
		require.Equal(t, "Отправлено приглашение на собеседование", logs[0].Action)
		require.Equal(t, f.applicant.Email, logs[0].UserEmail)
	})

	t.Run(`invite upgrades existing application`, func(t *testing.T) {
		f := newFixture(t)
		appID := f.apply(t)
		id, err := f.handler.Invite(f.employer.ID, f.resume.ID)
		require.NoError(t, err)
		require.Equal(t, appID, id)
		require.Equal(t, models.ApplicationStatusInvited, f.status(t, id))
		require.Equal(t, int64(1), f.count(t, &dbmodels.Application{}))
	})

	t.Run(`invite uses latest active vacancy`, func(t *testing.T) {
		f := newFixture(t)
		latest := createVacancy(t, f.db, f.employer.ID, "Тимлид", true)
		require.NoError(t, f.db.Model(&dbmodels.Vacancy{}).Where("id = ?", latest.ID).
			Update("created_at", f.vacancy.CreatedAt.Add(time.Hour)).Error)
		createVacancy(t, f.db, f.employer.ID, "Закрытая", false)
		id, err := f.handler.Invite(f.employer.ID, f.resume.ID)
		require.NoError(t, err)
		rec := dbmodels.Application{}
		require.NoError(t, f.db.Where("id = ?", id).First(&rec).Error)
		require.Equal(t, latest.ID, rec.VacancyID)
	})

	t.Run(`no active vacancy`, func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.db.Model(&dbmodels.Vacancy{}).Where("id = ?", f.vacancy.ID).Update("is_active", false).Error)
		_, err := f.handler.Invite(f.employer.ID, f.resume.ID)
		require.ErrorIs(t, err, ErrNoActiveVacancy)
		require.Zero(t, f.count(t, &dbmodels.Application{}))
		require.Zero(t, f.count(t, &dbmodels.Notification{}))
		require.Empty(t, f.logs(t))
		require.Empty(t, f.refresher.calls)
	})

	t.Run(`unknown resume`, func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.Invite(f.employer.ID, "missing")
		require.ErrorIs(t, err, ErrResumeNotFound)
		require.Zero(t, f.count(t, &dbmodels.Application{}))
	})
}

func TestRespond(t *testing.T) {
	t.Run(`accept invitation`, func(t *testing.T) {
		f := newFixture(t)
		id, err := f.handler.Invite(f.employer.ID, f.resume.ID)
		require.NoError(t, err)

		status, err := f.handler.Respond(f.applicant.ID, id, models.InviteAccept)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusHired, status)
		require.Equal(t, models.ApplicationStatusHired, f.status(t, id))

		list := f.notifications(t, f.employer.ID)
		require.Len(t, list, 1)
		require.Equal(t, "Кандидат принял приглашение", list[0].Title)
		require.Contains(t, list[0].Message, "Иванов Иван")
		require.Contains(t, list[0].Message, f.vacancy.Title)

		logs := f.logs(t)
		require.Equal(t, "Приглашение принято кандидатом", logs[len(logs)-1].Action)
	})

	t.Run(`decline invitation`, func(t *testing.T) {
		f := newFixture(t)
		id, err := f.handler.Invite(f.employer.ID, f.resume.ID)
		require.NoError(t, err)

		status, err := f.handler.Respond(f.applicant.ID, id, models.InviteDecline)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusRejected, status)

		list := f.notifications(t, f.employer.ID)
		require.Len(t, list, 1)
		require.Equal(t, "Кандидат отказался от приглашения", list[0].Title)
		logs := f.logs(t)
		require.Equal(t, "Приглашение отклонено кандидатом", logs[len(logs)-1].Action)
	})

	t.Run(`second answer rejected`, func(t *testing.T) {
		f := newFixture(t)
		id, err := f.handler.Invite(f.employer.ID, f.resume.ID)
		require.NoError(t, err)
		_, err = f.handler.Respond(f.applicant.ID, id, models.InviteAccept)
		require.NoError(t, err)

		_, err = f.handler.Respond(f.applicant.ID, id, models.InviteDecline)
		require.ErrorIs(t, err, ErrInvalidTransition)
		require.Equal(t, models.ApplicationStatusHired, f.status(t, id))
		require.Len(t, f.notifications(t, f.employer.ID), 1)
	})

	t.Run(`pending application cannot be answered`, func(t *testing.T) {
		f := newFixture(t)
		id := f.apply(t)
		_, err := f.handler.Respond(f.applicant.ID, id, models.InviteAccept)
		require.ErrorIs(t, err, ErrInvalidTransition)
		require.Equal(t, models.ApplicationStatusPending, f.status(t, id))
	})

	t.Run(`foreign application forbidden`, func(t *testing.T) {
		f := newFixture(t)
		id, err := f.handler.Invite(f.employer.ID, f.resume.ID)
		require.NoError(t, err)
		other := createUser(t, f.db, "other@mail.ru", "Пётр", "Сидоров", models.ApplicantRole)
		_, err = f.handler.Respond(other.ID, id, models.InviteAccept)
		require.ErrorIs(t, err, ErrForbidden)
		require.Equal(t, models.ApplicationStatusInvited, f.status(t, id))
	})

	t.Run(`unknown application`, func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.Respond(f.applicant.ID, "missing", models.InviteAccept)
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run(`unknown decision`, func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.Respond(f.applicant.ID, "missing", "maybe")
		require.Error(t, err)
		var domainErr *models.DomainError
		require.ErrorAs(t, err, &domainErr)
		require.Equal(t, models.ErrorKindInvalid, domainErr.Kind)
	})
}

func TestLifecycle(t *testing.T) {
	t.Run(`apply then invite then accept`, func(t *testing.T) {
		f := newFixture(t)
		id := f.apply(t)
		require.NoError(t, f.handler.UpdateStatus(f.employer.ID, id, models.ApplicationStatusInvited))
		_, err := f.handler.Respond(f.applicant.ID, id, models.InviteAccept)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusHired, f.status(t, id))

		actions := []string{}
		for _, rec := range f.logs(t) {
			actions = append(actions, rec.Action)
		}
		require.Equal(t, []string{
			"Создан отклик",
			"Статус отклика изменён на invited",
			"Приглашение принято кандидатом",
		}, actions)
		require.Len(t, f.notifications(t, f.applicant.ID), 1)
		require.Len(t, f.notifications(t, f.employer.ID), 1)
		require.Len(t, f.refresher.calls, 3)
	})
}
