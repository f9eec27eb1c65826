package reportapimodels

import (
	"github.com/pkg/errors"
	"job-board-backend/models"
)

// Report табличный отчёт, один лист xlsx или один раздел pdf на каждую таблицу
type Report struct {
	Type   models.ReportType `json:"type"`
	Title  string            `json:"title"`
	Tables []Table           `json:"tables"`
}

type Table struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	Rows    [][]interface{} `json:"rows"`
}

func (r Report) FileName(format models.ReportFormat) string {
	return string(r.Type) + "." + string(format)
}

type ExportRequest struct {
	Format  models.ReportFormat `query:"format"`
	Period  models.ReportPeriod `query:"period"`  // для отчёта dynamics
	Archive bool                `query:"archive"` // сохранить копию в хранилище
}

func (r *ExportRequest) Validate() error {
	if r.Format == "" {
		r.Format = models.ReportFormatXlsx
	}
	if r.Format != models.ReportFormatXlsx && r.Format != models.ReportFormatPdf {
		return errors.New("неизвестный формат отчёта")
	}
	switch r.Period {
	case "", models.ReportPeriodDay, models.ReportPeriodMonth, models.ReportPeriodYear:
	default:
		return errors.New("неизвестный период группировки")
	}
	return nil
}
