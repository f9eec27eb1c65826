package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-board-backend/models"
)

// Provider архив выгруженных отчётов в S3
type Provider interface {
	UploadReport(ctx context.Context, reportType models.ReportType, format models.ReportFormat, body []byte) (objectName string, err error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler(s3client *minio.Client, bucketName string) {
	if s3client == nil {
		log.Info("S3 не настроен, архив отчётов отключен")
		return
	}
	Instance = NewInstance(s3client, bucketName)
}

func NewInstance(s3client *minio.Client, bucketName string) Provider {
	return &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func (i impl) UploadReport(ctx context.Context, reportType models.ReportType, format models.ReportFormat, body []byte) (string, error) {
	objectName := ReportObjectName(reportType, format, time.Now())
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectName, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: format.ContentType()})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки отчёта в хранилище")
	}
	return objectName, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
}

// ReportObjectName reports/<тип>/<время>.<формат>
func ReportObjectName(reportType models.ReportType, format models.ReportFormat, at time.Time) string {
	return fmt.Sprintf("reports/%v/%v.%v", reportType, at.UTC().Format("20060102-150405"), format)
}
