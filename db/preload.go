package db

import (
	"job-board-backend/config"
	userstore "job-board-backend/lib/users/store"
	authutils "job-board-backend/lib/utils/auth-utils"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" || config.Conf.Admin.Password == "" {
		log.Warn("администратор не добавлен, отсутвует настройка ADMIN_EMAIL/ADMIN_PASSWORD")
		return
	}
	store := userstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	rec := dbmodels.User{
		Role:      models.AdminRole,
		Password:  hash,
		FirstName: config.Conf.Admin.FirstName,
		LastName:  config.Conf.Admin.LastName,
		Email:     config.Conf.Admin.Email,
		Phone:     config.Conf.Admin.Phone,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	log.WithField("email", rec.Email).Info("администратор добавлен")
}
