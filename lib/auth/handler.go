package authhandler

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-board-backend/config"
	"job-board-backend/db"
	companystore "job-board-backend/lib/company/store"
	notificationhandler "job-board-backend/lib/notification"
	resumestore "job-board-backend/lib/resume/store"
	systemloghandler "job-board-backend/lib/system-log"
	userstore "job-board-backend/lib/users/store"
	authutils "job-board-backend/lib/utils/auth-utils"
	initchecker "job-board-backend/lib/utils/init-checker"
	viewrefresh "job-board-backend/lib/view-refresh"
	"job-board-backend/models"
	authapimodels "job-board-backend/models/api/auth"
	dbmodels "job-board-backend/models/db"
)

var (
	ErrEmailTaken     = models.NewConflictError("Пользователь с такой почтой уже зарегистрирован")
	ErrBadCredentials = models.NewUnauthorizedError("Неправильный логин или пароль")
	ErrUserNotFound   = models.NewUnauthorizedError("Пользователь не найден")
	ErrRegistration   = errors.New("Ошибка при регистрации")
)

type Provider interface {
	RegisterApplicant(data authapimodels.ApplicantRegister) (id string, err error)
	RegisterEmployer(data authapimodels.EmployerRegister) (id string, err error)
	Login(login, password string) (response authapimodels.JWTResponse, err error)
	Me(userID string) (user authapimodels.MeView, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"notificationhandler", notificationhandler.Instance,
		"systemloghandler", systemloghandler.Instance,
		"viewrefresh", viewrefresh.Instance,
	)
	Instance = NewInstance(db.DB, notificationhandler.Instance, systemloghandler.Instance, viewrefresh.Instance,
		config.Conf.Auth.JWTSecret, time.Second*time.Duration(config.Conf.Auth.JWTExpireInSec))
}

func NewInstance(DB *gorm.DB, notifier notificationhandler.Provider, auditor systemloghandler.Provider,
	refresher viewrefresh.Provider, jwtSecret string, jwtTTL time.Duration) Provider {
	return impl{
		db:        DB,
		userStore: userstore.NewInstance(DB),
		notifier:  notifier,
		auditor:   auditor,
		refresher: refresher,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

type impl struct {
	db        *gorm.DB
	userStore userstore.Provider
	notifier  notificationhandler.Provider
	auditor   systemloghandler.Provider
	refresher viewrefresh.Provider
	jwtSecret string
	jwtTTL    time.Duration
}

func (i impl) RegisterApplicant(data authapimodels.ApplicantRegister) (id string, err error) {
	logger := log.WithField("email", data.Email)
	user := dbmodels.User{
		Email:      data.Email,
		FirstName:  strings.TrimSpace(data.FirstName),
		LastName:   strings.TrimSpace(data.LastName),
		Patronymic: strings.TrimSpace(data.Patronymic),
		Phone:      strings.TrimSpace(data.Phone),
		Role:       models.ApplicantRole,
	}
	id, notification, err := i.register(user, data.Password, "Регистрация соискателя", models.NotifyApplicantWelcome,
		func(tx *gorm.DB, userID string) error {
			_, err := resumestore.NewInstance(tx).Create(dbmodels.Resume{
				UserID:          userID,
				DesiredPosition: strings.TrimSpace(data.DesiredPosition),
			})
			return errors.Wrap(err, "ошибка создания резюме")
		})
	if err != nil {
		return "", handleError(logger, err, "ошибка регистрации соискателя")
	}
	logger.WithField("user_id", id).Info("зарегистрирован соискатель")
	i.notifier.Deliver(*notification)
	i.refresher.Refresh([]models.ViewName{models.AdminDashboardView})
	return id, nil
}

func (i impl) RegisterEmployer(data authapimodels.EmployerRegister) (id string, err error) {
	logger := log.WithField("email", data.Email)
	companyName := strings.TrimSpace(data.CompanyName)
	user := dbmodels.User{
		Email:     data.Email,
		FirstName: companyName,
		Phone:     strings.TrimSpace(data.Phone),
		Role:      models.EmployerRole,
	}
	id, notification, err := i.register(user, data.Password, "Регистрация работодателя", models.NotifyEmployerWelcome,
		func(tx *gorm.DB, userID string) error {
			_, err := companystore.NewInstance(tx).Create(dbmodels.Company{
				UserID: userID,
				Name:   companyName,
				Inn:    data.Inn,
				Email:  data.Email,
				Phone:  strings.TrimSpace(data.Phone),
			})
			return errors.Wrap(err, "ошибка создания компании")
		})
	if err != nil {
		return "", handleError(logger, err, "ошибка регистрации работодателя")
	}
	logger.WithField("user_id", id).Info("зарегистрирован работодатель")
	i.notifier.Deliver(*notification)
	i.refresher.Refresh([]models.ViewName{models.AdminDashboardView})
	return id, nil
}

// register пользователь, профиль роли, приветствие и запись журнала в одной транзакции
func (i impl) register(user dbmodels.User, password, action string, welcome models.NotificationCode,
	createProfile func(tx *gorm.DB, userID string) error) (id string, notification *dbmodels.Notification, err error) {
	user.Password, err = authutils.HashPassword(password)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка хеширования пароля")
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := userstore.NewInstance(tx)
		existed, err := store.FindByEmail(user.Email)
		if err != nil {
			return errors.Wrap(err, "ошибка поиска пользователя по почте")
		}
		if existed != nil {
			return ErrEmailTaken
		}
		id, err = store.Create(user)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return errors.Wrap(err, "ошибка создания пользователя")
		}
		err = createProfile(tx, id)
		if err != nil {
			return err
		}
		notification, err = i.notifier.Emit(tx, id, welcome)
		if err != nil {
			return err
		}
		return i.auditor.Write(tx, action, user.Email)
	})
	if err != nil {
		return "", nil, err
	}
	return id, notification, nil
}

func (i impl) Login(login, password string) (response authapimodels.JWTResponse, err error) {
	login = strings.TrimSpace(login)
	logger := log.WithField("login", login)
	var user *dbmodels.User
	if strings.Contains(login, "@") {
		user, err = i.userStore.FindByEmail(login)
	} else {
		user, err = i.userStore.FindByPhone(login)
	}
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь не найден")
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	if !authutils.CheckPasswordHash(password, user.Password) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	token, err := authutils.SignToken(user.ID, user.GetFullName(), user.Role, i.jwtSecret, i.jwtTTL)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token: token,
		User:  meConvert(*user),
	}, nil
}

func (i impl) Me(userID string) (authapimodels.MeView, error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("ошибка получения пользователя")
		return authapimodels.MeView{}, err
	}
	if user == nil {
		return authapimodels.MeView{}, ErrUserNotFound
	}
	return meConvert(*user), nil
}

func meConvert(rec dbmodels.User) authapimodels.MeView {
	return authapimodels.MeView{
		ID:       rec.ID,
		Email:    rec.Email,
		FullName: rec.GetFullName(),
		Role:     rec.Role,
	}
}

func handleError(logger *log.Entry, err error, msg string) error {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		logger.WithError(err).Warn(msg)
		return domainErr
	}
	logger.WithError(err).Error(msg)
	return ErrRegistration
}
