package systemloghandler

import (
	"job-board-backend/db"
	systemlogstore "job-board-backend/lib/system-log/store"
	dashboardapimodels "job-board-backend/models/api/dashboard"
	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Provider журнал действий пользователей
type Provider interface {
	// Write запись в журнал в рамках транзакции, userEmail - почта затронутого пользователя
	Write(tx *gorm.DB, action, userEmail string) error
	ListRecent(limit int) (list []dashboardapimodels.SystemLogView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		store: systemlogstore.NewInstance(DB),
	}
}

type impl struct {
	store systemlogstore.Provider
}

func (i impl) Write(tx *gorm.DB, action, userEmail string) error {
	_, err := systemlogstore.NewInstance(tx).Create(dbmodels.SystemLog{
		Action:    action,
		UserEmail: userEmail,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка записи в журнал")
	}
	return nil
}

func (i impl) ListRecent(limit int) (list []dashboardapimodels.SystemLogView, err error) {
	recList, err := i.store.ListRecent(limit)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения журнала")
	}
	list = make([]dashboardapimodels.SystemLogView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dashboardapimodels.SystemLogConvert(rec))
	}
	return list, nil
}
