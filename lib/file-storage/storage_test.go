package filestorage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"job-board-backend/models"
)

func TestReportObjectName(t *testing.T) {
	at := time.Date(2025, 3, 7, 15, 4, 5, 0, time.UTC)
	require.Equal(t, "reports/popular/20250307-150405.xlsx", ReportObjectName(models.ReportPopular, models.ReportFormatXlsx, at))
	require.Equal(t, "reports/users/20250307-150405.pdf", ReportObjectName(models.ReportUsers, models.ReportFormatPdf, at))
}
