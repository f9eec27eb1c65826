package initializers

import (
	log "github.com/sirupsen/logrus"
	"job-board-backend/config"
	"job-board-backend/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.Sender, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
	if *config.Conf.Smtp.NotifyByEmail && !smtp.Instance.IsConfigured() {
		log.Warn("копии уведомлений на почту включены, но SMTP не настроен")
	}
}
