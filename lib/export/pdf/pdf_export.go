package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"job-board-backend/models"
	reportapimodels "job-board-backend/models/api/report"
)

const (
	fontFamily = "DejaVu"
	pageWidth  = 190.0
	lineHeight = 7.0
)

var ErrFontNotFound = models.NewUnprocessableError("шрифт для pdf не найден")

type Provider interface {
	ExportReport(report reportapimodels.Report) ([]byte, error)
}

var Instance Provider

func NewHandler(fontPath string) {
	Instance = NewInstance(fontPath)
}

func NewInstance(fontPath string) Provider {
	return impl{
		fontPath: fontPath,
	}
}

type impl struct {
	fontPath string
}

func (i impl) ExportReport(report reportapimodels.Report) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportReport panic recover: %v", r)
		}
	}()
	if _, err = os.Stat(i.fontPath); err != nil {
		return nil, ErrFontNotFound
	}
	pdf := fpdf.New("P", "mm", "A4", filepath.Dir(i.fontPath))
	pdf.AddUTF8Font(fontFamily, "", filepath.Base(i.fontPath))
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(pageWidth, 10, report.Title, "", 1, "C", false, 0, "")
	for _, table := range report.Tables {
		writeTable(pdf, table)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *fpdf.Fpdf, table reportapimodels.Table) {
	pdf.Ln(4)
	pdf.SetFont(fontFamily, "", 13)
	pdf.CellFormat(pageWidth, 8, table.Name, "", 1, "L", false, 0, "")
	if len(table.Headers) == 0 {
		return
	}
	colWidth := pageWidth / float64(len(table.Headers))
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, header := range table.Headers {
		pdf.CellFormat(colWidth, lineHeight, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	for _, values := range table.Rows {
		for col := range table.Headers {
			text := ""
			if col < len(values) {
				text = CellText(values[col])
			}
			pdf.CellFormat(colWidth, lineHeight, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// CellText значение ячейки для вывода в pdf
func CellText(value interface{}) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}
