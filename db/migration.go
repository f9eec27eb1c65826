package db

import (
	"job-board-backend/db/migration"

	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := migration.Migrate(DB); err != nil {
		return err
	}
	log.Info("Миграция прошла успешно")
	return nil
}
