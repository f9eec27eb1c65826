package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"job-board-backend/config"
	s3client "job-board-backend/s3"
)

func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 не настроен")
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, ListBuckets вернул ошибку")
	}

	s3client.Client = minioClient
	log.Info("S3 клиент успешно инициализирован")
}
