package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMb int    `default:"10" env:"APP_BODY_LIMIT_MB"`
		// webhook для уведомлений об ошибках 5xx, пусто - отключено
		ErrNotifyAddr string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"job-board" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	Admin struct {
		Email     string `default:"" env:"ADMIN_EMAIL"`
		Password  string `default:"" env:"ADMIN_PASSWORD"`
		FirstName string `default:"Администратор" env:"ADMIN_FIRST_NAME"`
		LastName  string `default:"" env:"ADMIN_LAST_NAME"`
		Phone     string `default:"" env:"ADMIN_PHONE"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		Sender     string `default:"Кадровый портал" env:"SMTP_SENDER"`
		// копии уведомлений на почту
		NotifyByEmail *bool `default:"false" env:"SMTP_NOTIFY_BY_EMAIL"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"job-board" env:"S3_BUCKET_NAME"`
	}
	Cache struct {
		DashboardTTLSec int `default:"60" env:"CACHE_DASHBOARD_TTL_SEC"`
	}
	Reports struct {
		ArchiveEnabled      *bool  `default:"false" env:"REPORTS_ARCHIVE_ENABLED"`
		ArchiveIntervalHour int    `default:"24" env:"REPORTS_ARCHIVE_INTERVAL_HOUR"`
		MovementStartDate   string `default:"2025-01-01" env:"REPORTS_MOVEMENT_START_DATE"`
		PdfFontPath         string `default:"static/font/DejaVuSans.ttf" env:"REPORTS_PDF_FONT_PATH"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
