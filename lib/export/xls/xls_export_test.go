package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"job-board-backend/models"
	reportapimodels "job-board-backend/models/api/report"
)

func TestExportReport(t *testing.T) {
	handler := impl{}

	t.Run(`one sheet per table`, func(t *testing.T) {
		report := reportapimodels.Report{
			Type:  models.ReportForecast,
			Title: "Прогноз потребности",
			Tables: []reportapimodels.Table{
				{
					Name:    "Регионы",
					Headers: []string{"Регион", "Количество вакансий"},
					Rows:    [][]interface{}{{"Москва", 3}, {"Казань", 1}},
				},
				{
					Name:    "Профессии",
					Headers: []string{"Профессия", "Количество вакансий"},
					Rows:    [][]interface{}{{"Бухгалтер", 2}},
				},
			},
		}
		buf, err := handler.ExportReport(report)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, []string{"Регионы", "Профессии"}, f.GetSheetList())

		value, err := f.GetCellValue("Регионы", "A1")
		require.NoError(t, err)
		require.Equal(t, "Регион", value)
		value, err = f.GetCellValue("Регионы", "A3")
		require.NoError(t, err)
		require.Equal(t, "Казань", value)
		value, err = f.GetCellValue("Профессии", "B2")
		require.NoError(t, err)
		require.Equal(t, "2", value)
	})

	t.Run(`empty table keeps header`, func(t *testing.T) {
		buf, err := handler.ExportReport(reportapimodels.Report{
			Tables: []reportapimodels.Table{{Name: "Рейтинг профессий", Headers: []string{"Место", "Профессия"}}},
		})
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Рейтинг профессий")
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})

	t.Run(`report without tables`, func(t *testing.T) {
		_, err := handler.ExportReport(reportapimodels.Report{})
		require.Error(t, err)
	})

	t.Run(`sheet name`, func(t *testing.T) {
		require.Equal(t, "Лист2", sheetName("", 1))
		require.Len(t, []rune(sheetName("Очень длинное название листа для отчёта", 0)), maxSheetNameLen)
	})
}
