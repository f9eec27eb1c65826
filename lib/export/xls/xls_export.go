package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	reportapimodels "job-board-backend/models/api/report"
)

type Provider interface {
	// ExportReport каждая таблица отчёта выгружается на отдельный лист
	ExportReport(report reportapimodels.Report) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance()
}

func NewInstance() Provider {
	return impl{}
}

type impl struct{}

const maxSheetNameLen = 31

func (i impl) ExportReport(report reportapimodels.Report) (*bytes.Buffer, error) {
	if len(report.Tables) == 0 {
		return nil, errors.New("отчёт не содержит данных")
	}
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	defaultSheet := f.GetSheetName(0)
	for idx, table := range report.Tables {
		sheet := sheetName(table.Name, idx)
		if idx == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, errors.Wrap(err, "ошибка создания листа xlsx")
		}
		row, err := writeHeader(f, sheet, 0, table.Headers)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
		}
		if len(table.Rows) != 0 {
			_, err = writeTableData(f, sheet, table, row)
			if err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	f.SetActiveSheet(0)
	return f.WriteToBuffer()
}

func writeTableData(f *excelize.File, sheet string, table reportapimodels.Table, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(table.Headers), row+len(table.Rows)); err != nil {
		return row, err
	}
	for _, values := range table.Rows {
		row++
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func sheetName(name string, idx int) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return fmt.Sprintf("Лист%d", idx+1)
	}
	if len(runes) > maxSheetNameLen {
		runes = runes[:maxSheetNameLen]
	}
	return string(runes)
}
