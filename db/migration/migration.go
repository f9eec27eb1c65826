package migration

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

// Migrate создаёт структуру БД, используется и для тестовых баз
func Migrate(tx *gorm.DB) error {
	if err := tx.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := tx.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Company")
	}
	if err := tx.AutoMigrate(&dbmodels.Resume{}, &dbmodels.Education{}, &dbmodels.Experience{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Resume")
	}
	if err := tx.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	if err := tx.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := tx.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := tx.AutoMigrate(&dbmodels.SystemLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SystemLog")
	}
	return nil
}
