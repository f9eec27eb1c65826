package applicationhandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-board-backend/db"
	applicationstore "job-board-backend/lib/application/store"
	notificationhandler "job-board-backend/lib/notification"
	resumestore "job-board-backend/lib/resume/store"
	systemloghandler "job-board-backend/lib/system-log"
	userstore "job-board-backend/lib/users/store"
	initchecker "job-board-backend/lib/utils/init-checker"
	vacancystore "job-board-backend/lib/vacancy/store"
	viewrefresh "job-board-backend/lib/view-refresh"
	"job-board-backend/models"
	applicationapimodels "job-board-backend/models/api/application"
	dbmodels "job-board-backend/models/db"
)

// Provider жизненный цикл откликов. Каждая операция выполняется в одной транзакции:
// статус, уведомление и запись журнала сохраняются вместе или не сохраняются совсем.
type Provider interface {
	Create(applicantID string, data applicationapimodels.CreateRequest) (id string, err error)
	// UpdateStatus смена статуса работодателем, employerID пустой для администратора
	UpdateStatus(employerID, applicationID string, status models.ApplicationStatus) error
	Invite(employerID, resumeID string) (id string, err error)
	Respond(applicantID, applicationID string, decision models.InviteDecision) (status models.ApplicationStatus, err error)
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

func NewInstance(DB *gorm.DB, notifier notificationhandler.Provider, auditor systemloghandler.Provider, refresher viewrefresh.Provider) Provider {
	return impl{
		db:        DB,
		notifier:  notifier,
		auditor:   auditor,
		refresher: refresher,
	}
}

type impl struct {
	db        *gorm.DB
	notifier  notificationhandler.Provider
	auditor   systemloghandler.Provider
	refresher viewrefresh.Provider
}

func (i impl) Create(applicantID string, data applicationapimodels.CreateRequest) (id string, err error) {
	logger := log.
		WithField("applicant_id", applicantID).
		WithField("vacancy_id", data.VacancyID)
	var employerID string
	err = i.db.Transaction(func(tx *gorm.DB) error {
		resume, err := i.applicantResume(tx, applicantID, data.ResumeID)
		if err != nil {
			return err
		}
		vacancy, err := vacancystore.NewInstance(tx).GetByID(data.VacancyID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения вакансии")
		}
		if vacancy == nil {
			return ErrVacancyNotFound
		}
		if !vacancy.IsActive {
			return ErrVacancyClosed
		}
		store := applicationstore.NewInstance(tx)
		existed, err := store.FindByVacancyResume(vacancy.ID, resume.ID)
		if err != nil {
			return errors.Wrap(err, "ошибка проверки существующего отклика")
		}
		if existed != nil {
			return ErrDuplicateApplication
		}
		id, err = store.Create(dbmodels.Application{
			ApplicantID: applicantID,
			VacancyID:   vacancy.ID,
			ResumeID:    resume.ID,
			Status:      models.ApplicationStatusPending,
		})
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateApplication
			}
			return errors.Wrap(err, "ошибка сохранения отклика")
		}
		applicant, err := userstore.NewInstance(tx).GetByID(applicantID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения соискателя")
		}
		err = i.auditor.Write(tx, "Создан отклик", userEmail(applicant))
		if err != nil {
			return err
		}
		employerID = vacancy.EmployerID
		return nil
	})
	if err != nil {
		return "", handleError(logger, err, "ошибка создания отклика")
	}
	logger.WithField("application_id", id).Info("создан отклик")
	i.refresher.Refresh([]models.ViewName{models.ApplicantDashboardView, models.EmployerDashboardView, models.JobSearchView},
		applicantID, employerID)
	return id, nil
}

func (i impl) UpdateStatus(employerID, applicationID string, status models.ApplicationStatus) error {
	logger := log.
		WithField("employer_id", employerID).
		WithField("application_id", applicationID).
		WithField("status", status)
	role := models.EmployerRole
	if employerID == "" {
		role = models.AdminRole
	}
	var notification *dbmodels.Notification
	var app *dbmodels.Application
	err := i.db.Transaction(func(tx *gorm.DB) (err error) {
		store := applicationstore.NewInstance(tx)
		app, err = store.GetByID(applicationID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения отклика")
		}
		if app == nil {
			return ErrApplicationNotFound
		}
		if role == models.EmployerRole && (app.Vacancy == nil || app.Vacancy.EmployerID != employerID) {
			return ErrForbidden
		}
		err = CheckTransition(role, app.Status, status)
		if err != nil {
			return err
		}
		err = store.UpdateStatus(app.ID, status)
		if err != nil {
			return errors.Wrap(err, "ошибка обновления статуса отклика")
		}
		notification, err = i.notifier.Emit(tx, app.ApplicantID, models.NotifyStatusChanged, app.VacancyID, status.ToHuman())
		if err != nil {
			return err
		}
		return i.auditor.Write(tx, fmt.Sprintf("Статус отклика изменён на %v", status), userEmail(app.Applicant))
	})
	if err != nil {
		return handleError(logger, err, "ошибка изменения статуса отклика")
	}
	logger.Info("изменён статус отклика")
	i.notifier.Deliver(*notification)
	vacancyOwner := ""
	if app.Vacancy != nil {
		vacancyOwner = app.Vacancy.EmployerID
	}
	i.refresher.Refresh([]models.ViewName{models.EmployerDashboardView, models.AdminDashboardView, models.ApplicantDashboardView},
		app.ApplicantID, vacancyOwner)
	return nil
}

func (i impl) Invite(employerID, resumeID string) (id string, err error) {
	logger := log.
		WithField("employer_id", employerID).
		WithField("resume_id", resumeID)
	var notification *dbmodels.Notification
	var candidateID string
	err = i.db.Transaction(func(tx *gorm.DB) error {
		vacancy, err := vacancystore.NewInstance(tx).LatestActive(employerID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения активной вакансии")
		}
		if vacancy == nil {
			return ErrNoActiveVacancy
		}
		resume, err := resumestore.NewInstance(tx).GetByID(resumeID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения резюме")
		}
		if resume == nil {
			return ErrResumeNotFound
		}
		candidateID = resume.UserID
		store := applicationstore.NewInstance(tx)
		existed, err := store.FindByVacancyResume(vacancy.ID, resume.ID)
		if err != nil {
			return errors.Wrap(err, "ошибка проверки существующего отклика")
		}
		if existed != nil {
			id = existed.ID
			err = store.UpdateStatus(existed.ID, models.ApplicationStatusInvited)
		} else {
			id, err = store.Create(dbmodels.Application{
				ApplicantID: resume.UserID,
				VacancyID:   vacancy.ID,
				ResumeID:    resume.ID,
				Status:      models.ApplicationStatusInvited,
			})
		}
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения приглашения")
		}
		notification, err = i.notifier.Emit(tx, resume.UserID, models.NotifyInvitation, vacancy.Title)
		if err != nil {
			return err
		}
		candidate, err := userstore.NewInstance(tx).GetByID(resume.UserID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения кандидата")
		}
		return i.auditor.Write(tx, "Отправлено приглашение на собеседование", userEmail(candidate))
	})
	if err != nil {
		return "", handleError(logger, err, "ошибка отправки приглашения")
	}
	logger.WithField("application_id", id).Info("отправлено приглашение")
	i.notifier.Deliver(*notification)
	i.refresher.Refresh([]models.ViewName{models.EmployerDashboardView, models.ApplicantDashboardView},
		employerID, candidateID)
	return id, nil
}

func (i impl) Respond(applicantID, applicationID string, decision models.InviteDecision) (status models.ApplicationStatus, err error) {
	logger := log.
		WithField("applicant_id", applicantID).
		WithField("application_id", applicationID).
		WithField("decision", decision)
	if !decision.IsValid() {
		return "", models.NewInvalidError("неизвестное решение, допустимо accept или decline")
	}
	status = decision.ToStatus()
	var notification *dbmodels.Notification
	var employerID string
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := applicationstore.NewInstance(tx)
		app, err := store.GetByID(applicationID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения отклика")
		}
		if app == nil {
			return ErrApplicationNotFound
		}
		if app.ApplicantID != applicantID {
			return ErrForbidden
		}
		err = CheckTransition(models.ApplicantRole, app.Status, status)
		if err != nil {
			return err
		}
		ok, err := store.UpdateStatusFrom(app.ID, models.ApplicationStatusInvited, status)
		if err != nil {
			return errors.Wrap(err, "ошибка обновления статуса отклика")
		}
		if !ok {
			return ErrInvalidTransition
		}
		vacancyTitle := ""
		if app.Vacancy != nil {
			employerID = app.Vacancy.EmployerID
			vacancyTitle = app.Vacancy.Title
		}
		applicantName := ""
		if app.Applicant != nil {
			applicantName = app.Applicant.GetFullName()
		}
		code := models.NotifyInviteDeclined
		action := "Приглашение отклонено кандидатом"
		if decision == models.InviteAccept {
			code = models.NotifyInviteAccepted
			action = "Приглашение принято кандидатом"
		}
		notification, err = i.notifier.Emit(tx, employerID, code, applicantName, vacancyTitle)
		if err != nil {
			return err
		}
		return i.auditor.Write(tx, action, userEmail(app.Applicant))
	})
	if err != nil {
		return "", handleError(logger, err, "ошибка ответа на приглашение")
	}
	logger.WithField("status", status).Info("кандидат ответил на приглашение")
	i.notifier.Deliver(*notification)
	i.refresher.Refresh([]models.ViewName{models.ApplicantDashboardView, models.EmployerDashboardView},
		applicantID, employerID)
	return status, nil
}

// applicantResume резюме, от имени которого создаётся отклик
func (i impl) applicantResume(tx *gorm.DB, applicantID, resumeID string) (*dbmodels.Resume, error) {
	store := resumestore.NewInstance(tx)
	if resumeID == "" {
		rec, err := store.GetByUserID(applicantID)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка получения резюме")
		}
		if rec == nil {
			return nil, ErrResumeNotFound
		}
		return rec, nil
	}
	rec, err := store.GetByID(resumeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения резюме")
	}
	if rec == nil {
		return nil, ErrResumeNotFound
	}
	if rec.UserID != applicantID {
		return nil, ErrForbidden
	}
	return rec, nil
}

func userEmail(rec *dbmodels.User) string {
	if rec == nil {
		return ""
	}
	return rec.Email
}

// handleError ошибки бизнес-логики возвращаются как есть, остальные логируются
func handleError(logger *log.Entry, err error, msg string) error {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		logger.WithError(err).Warn(msg)
		return domainErr
	}
	logger.WithError(err).Error(msg)
	return errors.Wrap(err, msg)
}
