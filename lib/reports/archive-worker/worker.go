package archiveworker

import (
	"context"
	"time"

	reportshandler "job-board-backend/lib/reports"
	baseworker "job-board-backend/lib/utils/base-worker"
	"job-board-backend/lib/utils/helpers"
	"job-board-backend/models"
	reportapimodels "job-board-backend/models/api/report"
)

func StartWorker(ctx context.Context, interval time.Duration) {
	i := newInstance(reportshandler.Instance, time.Minute, interval)
	go i.Run(ctx, i.handle)
}

func newInstance(reports reportshandler.Provider, firstRunDelay, interval time.Duration) *impl {
	return &impl{
		BaseImpl: *baseworker.NewInstance("ReportArchiveWorker", firstRunDelay, interval),
		reports:  reports,
	}
}

type impl struct {
	baseworker.BaseImpl
	reports reportshandler.Provider
}

// handle выгружает все отчёты в xlsx с сохранением в архив
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	for _, reportType := range models.AllReportTypes {
		if helpers.IsContextDone(ctx) {
			break
		}
		_, _, err := i.reports.Export(ctx, reportType, reportapimodels.ExportRequest{
			Format:  models.ReportFormatXlsx,
			Period:  models.ReportPeriodMonth,
			Archive: true,
		})
		if err != nil {
			logger.
				WithError(err).
				WithField("report_type", reportType).
				Error("Ошибка выгрузки отчёта в архив")
			continue
		}
	}
}
