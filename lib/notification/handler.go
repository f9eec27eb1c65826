package notificationhandler

import (
	"job-board-backend/db"
	notificationstore "job-board-backend/lib/notification/store"
	"job-board-backend/lib/smtp"
	userstore "job-board-backend/lib/users/store"
	connectionhub "job-board-backend/lib/ws/hub/connection-hub"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
	notificationapimodels "job-board-backend/models/api/notification"
	dbmodels "job-board-backend/models/db"
	wsmodels "job-board-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Emit сохраняет уведомление в рамках переданной транзакции
	Emit(tx *gorm.DB, userID string, code models.NotificationCode, args ...any) (*dbmodels.Notification, error)
	// Deliver отправляет сохранённые уведомления по websocket и почте, вызывается после commit
	Deliver(list ...dbmodels.Notification)
	List(userID string, pagination apimodels.Pagination) (list []notificationapimodels.NotificationView, rowCount int64, err error)
	ListLast(userID string, limit int) (list []notificationapimodels.NotificationView, err error)
}

var Instance Provider

func NewHandler(notifyByEmail bool) {
	var mailer smtp.Provider
	if notifyByEmail {
		mailer = smtp.Instance
	}
	Instance = NewInstance(db.DB, connectionhub.Instance, mailer)
}

func NewInstance(DB *gorm.DB, hub connectionhub.Provider, mailer smtp.Provider) Provider {
	return impl{
		store:     notificationstore.NewInstance(DB),
		userStore: userstore.NewInstance(DB),
		hub:       hub,
		mailer:    mailer,
	}
}

type impl struct {
	store     notificationstore.Provider
	userStore userstore.Provider
	hub       connectionhub.Provider
	mailer    smtp.Provider
}

func (i impl) Emit(tx *gorm.DB, userID string, code models.NotificationCode, args ...any) (*dbmodels.Notification, error) {
	title, msg := code.Render(args...)
	rec, err := notificationstore.NewInstance(tx).Create(dbmodels.Notification{
		UserID:  userID,
		Title:   title,
		Message: msg,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения уведомления")
	}
	return rec, nil
}

func (i impl) Deliver(list ...dbmodels.Notification) {
	for _, rec := range list {
		if i.hub != nil {
			i.hub.SendMessage(wsmodels.ServerMessage{
				ToUserID: rec.UserID,
				Time:     rec.CreatedAt.Format("02.01.2006 15:04:05"),
				Code:     wsmodels.NotificationCode,
				Title:    rec.Title,
				Msg:      rec.Message,
			})
		}
		if i.mailer != nil && i.mailer.IsConfigured() {
			go i.sendEmail(rec)
		}
	}
}

func (i impl) sendEmail(rec dbmodels.Notification) {
	logger := log.
		WithField("user_id", rec.UserID).
		WithField("notification_id", rec.ID)
	user, err := i.userStore.GetByID(rec.UserID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя для отправки уведомления")
		return
	}
	if user == nil || user.Email == "" {
		return
	}
	err = i.mailer.SendEMail(user.Email, rec.Title, rec.Message)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления на почту")
	}
}

func (i impl) List(userID string, pagination apimodels.Pagination) (list []notificationapimodels.NotificationView, rowCount int64, err error) {
	page, limit := pagination.GetPage()
	recList, rowCount, err := i.store.List(userID, page, limit)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("ошибка получения списка уведомлений")
		return nil, 0, errors.New("ошибка получения списка уведомлений")
	}
	return convertList(recList), rowCount, nil
}

func (i impl) ListLast(userID string, limit int) (list []notificationapimodels.NotificationView, err error) {
	recList, err := i.store.ListLast(userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения последних уведомлений")
	}
	return convertList(recList), nil
}

func convertList(recList []dbmodels.Notification) []notificationapimodels.NotificationView {
	result := make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result
}

