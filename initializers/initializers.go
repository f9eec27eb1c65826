package initializers

import (
	"context"
	"time"

	"job-board-backend/config"
	"job-board-backend/fiberlog"
	applicationhandler "job-board-backend/lib/application"
	authhandler "job-board-backend/lib/auth"
	dashboardhandler "job-board-backend/lib/dashboard"
	pdfexport "job-board-backend/lib/export/pdf"
	xlsexport "job-board-backend/lib/export/xls"
	filestorage "job-board-backend/lib/file-storage"
	notificationhandler "job-board-backend/lib/notification"
	"job-board-backend/lib/rbac"
	reportshandler "job-board-backend/lib/reports"
	archiveworker "job-board-backend/lib/reports/archive-worker"
	resumehandler "job-board-backend/lib/resume"
	systemloghandler "job-board-backend/lib/system-log"
	vacancyhandler "job-board-backend/lib/vacancy"
	viewrefresh "job-board-backend/lib/view-refresh"
	connectionhub "job-board-backend/lib/ws/hub/connection-hub"
	s3client "job-board-backend/s3"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler(s3client.Client, config.Conf.S3.BucketName)
	viewrefresh.NewHandler(time.Duration(config.Conf.Cache.DashboardTTLSec)*time.Second, connectionhub.Instance)
	systemloghandler.NewHandler()
	notificationhandler.NewHandler(*config.Conf.Smtp.NotifyByEmail)
	authhandler.NewHandler()
	vacancyhandler.NewHandler()
	resumehandler.NewHandler()
	applicationhandler.NewHandler()
	dashboardhandler.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler(config.Conf.Reports.PdfFontPath)
	reportshandler.NewHandler()
	rbac.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача архивации отчётов в S3
	if !*config.Conf.Reports.ArchiveEnabled {
		return
	}
	if filestorage.Instance == nil {
		log.Warn("архив отчётов включен, но S3 не настроен")
		return
	}
	if err := filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("ошибка создания бакета для архива отчётов")
		return
	}
	archiveworker.StartWorker(ctx, time.Duration(config.Conf.Reports.ArchiveIntervalHour)*time.Hour)
}
