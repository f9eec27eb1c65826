package reportshandler

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	pdfexport "job-board-backend/lib/export/pdf"
	xlsexport "job-board-backend/lib/export/xls"
	filestorage "job-board-backend/lib/file-storage"
	testdb "job-board-backend/lib/utils/test-db"
	"job-board-backend/models"
	reportapimodels "job-board-backend/models/api/report"
	dbmodels "job-board-backend/models/db"
)

type storageMock struct {
	mu      sync.Mutex
	uploads []string
	err     error
}

func (s *storageMock) UploadReport(ctx context.Context, reportType models.ReportType, format models.ReportFormat, body []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	name := "reports/" + string(reportType) + "/test." + string(format)
	s.uploads = append(s.uploads, name)
	return name, nil
}

func (s *storageMock) MakeBucket(ctx context.Context) error {
	return nil
}

func seed(t *testing.T, db *gorm.DB) {
	applicants := []dbmodels.User{
		{Email: "ivanov@mail.ru", FirstName: "Иван", LastName: "Иванов", Role: models.ApplicantRole},
		{Email: "petrov@mail.ru", FirstName: "Пётр", LastName: "Петров", Role: models.ApplicantRole},
	}
	for idx := range applicants {
		require.NoError(t, db.Create(&applicants[idx]).Error)
	}
	employer := dbmodels.User{Email: "hr@romashka.ru", FirstName: "Ромашка", Role: models.EmployerRole}
	require.NoError(t, db.Create(&employer).Error)

	vacancies := []dbmodels.Vacancy{
		{EmployerID: employer.ID, Title: "Бухгалтер", City: "Москва", Specialization: "Финансы", EmploymentType: models.EmploymentFullTime, IsActive: true},
		{EmployerID: employer.ID, Title: "Аналитик", City: "Москва", Specialization: "IT", EmploymentType: models.EmploymentFullTime, IsActive: true},
		{EmployerID: employer.ID, Title: "Курьер", City: "", EmploymentType: models.EmploymentPartTime, IsActive: true},
	}
	for idx := range vacancies {
		require.NoError(t, db.Omit("Company").Create(&vacancies[idx]).Error)
	}

	hiredAt := []time.Time{
		time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	for idx, applicant := range applicants {
		resume := dbmodels.Resume{UserID: applicant.ID}
		require.NoError(t, db.Omit("User", "Education", "Experience").Create(&resume).Error)
		require.NoError(t, db.Omit("Applicant", "Vacancy", "Resume").Create(&dbmodels.Application{
			BaseModel:   dbmodels.BaseModel{UpdatedAt: hiredAt[idx]},
			ApplicantID: applicant.ID,
			VacancyID:   vacancies[0].ID,
			ResumeID:    resume.ID,
			Status:      models.ApplicationStatusHired,
		}).Error)
		require.NoError(t, db.Omit("Applicant", "Vacancy", "Resume").Create(&dbmodels.Application{
			BaseModel:   dbmodels.BaseModel{UpdatedAt: hiredAt[idx+1]},
			ApplicantID: applicant.ID,
			VacancyID:   vacancies[1].ID,
			ResumeID:    resume.ID,
			Status:      []models.ApplicationStatus{models.ApplicationStatusRejected, models.ApplicationStatusHired}[idx],
		}).Error)
	}
}

func newHandler(t *testing.T, storage filestorage.Provider) Provider {
	db := testdb.New(t)
	seed(t, db)
	return NewInstance(db, xlsexport.NewInstance(), pdfexport.NewInstance("missing/font.ttf"), storage,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestBuild(t *testing.T) {
	handler := newHandler(t, nil)

	t.Run(`users`, func(t *testing.T) {
		report, err := handler.Build(models.ReportUsers, "")
		require.NoError(t, err)
		require.Equal(t, models.ReportUsers, report.Type)
		require.Len(t, report.Tables, 1)
		require.Equal(t, []interface{}{int64(2), int64(1), int64(2), int64(1)}, report.Tables[0].Rows[0])
	})

	t.Run(`movement`, func(t *testing.T) {
		report, err := handler.Build(models.ReportMovement, "")
		require.NoError(t, err)
		require.Equal(t, []interface{}{int64(3), int64(1), int64(0)}, report.Tables[0].Rows[0])
	})

	t.Run(`structure`, func(t *testing.T) {
		report, err := handler.Build(models.ReportStructure, "")
		require.NoError(t, err)
		require.Len(t, report.Tables, 3)
		require.Equal(t, []interface{}{"Москва", int64(2)}, report.Tables[0].Rows[0])
		require.Contains(t, report.Tables[0].Rows, []interface{}{"Не указан", int64(1)})
		require.Contains(t, report.Tables[1].Rows, []interface{}{"Не указана", int64(1)})
		require.Equal(t, []interface{}{models.EmploymentFullTime.ToHuman(), int64(2)}, report.Tables[2].Rows[0])
	})

	t.Run(`dynamics by month`, func(t *testing.T) {
		report, err := handler.Build(models.ReportDynamics, models.ReportPeriodMonth)
		require.NoError(t, err)
		require.Equal(t, [][]interface{}{{"2025-03", 2}, {"2025-05", 1}}, report.Tables[0].Rows)
	})

	t.Run(`forecast`, func(t *testing.T) {
		report, err := handler.Build(models.ReportForecast, "")
		require.NoError(t, err)
		require.Len(t, report.Tables, 2)
		require.Len(t, report.Tables[1].Rows, 3)
	})

	t.Run(`popular`, func(t *testing.T) {
		report, err := handler.Build(models.ReportPopular, "")
		require.NoError(t, err)
		rows := report.Tables[0].Rows
		require.Len(t, rows, 2)
		require.Equal(t, 1, rows[0][0])
		require.Equal(t, 2, rows[1][0])
		require.Equal(t, int64(2), rows[0][3])
		titles := []interface{}{rows[0][1], rows[1][1]}
		require.ElementsMatch(t, []interface{}{"Бухгалтер", "Аналитик"}, titles)
	})

	t.Run(`unknown type`, func(t *testing.T) {
		_, err := handler.Build("salary", "")
		require.ErrorIs(t, err, ErrUnknownReport)
	})
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run(`xlsx with archive`, func(t *testing.T) {
		storage := &storageMock{}
		handler := newHandler(t, storage)
		body, fileName, err := handler.Export(ctx, models.ReportForecast, reportapimodels.ExportRequest{
			Format:  models.ReportFormatXlsx,
			Archive: true,
		})
		require.NoError(t, err)
		require.Equal(t, "forecast.xlsx", fileName)
		f, err := excelize.OpenReader(bytes.NewReader(body))
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, []string{"Регионы", "Профессии"}, f.GetSheetList())
		require.Equal(t, []string{"reports/forecast/test.xlsx"}, storage.uploads)
	})

	t.Run(`archive errors do not fail export`, func(t *testing.T) {
		handler := newHandler(t, &storageMock{err: errors.New("недоступно")})
		body, _, err := handler.Export(ctx, models.ReportUsers, reportapimodels.ExportRequest{Archive: true})
		require.NoError(t, err)
		require.NotEmpty(t, body)
	})

	t.Run(`archive without storage`, func(t *testing.T) {
		handler := newHandler(t, nil)
		_, fileName, err := handler.Export(ctx, models.ReportUsers, reportapimodels.ExportRequest{Archive: true})
		require.NoError(t, err)
		require.Equal(t, "users.xlsx", fileName)
	})

	t.Run(`pdf without font`, func(t *testing.T) {
		handler := newHandler(t, nil)
		_, _, err := handler.Export(ctx, models.ReportUsers, reportapimodels.ExportRequest{Format: models.ReportFormatPdf})
		require.ErrorIs(t, err, pdfexport.ErrFontNotFound)
	})
}

func TestGroupByPeriod(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC),
	}
	require.Equal(t, [][]interface{}{{"2024-12-31", 1}, {"2025-01-01", 2}}, GroupByPeriod(dates, models.ReportPeriodDay))
	require.Equal(t, [][]interface{}{{"2024", 1}, {"2025", 2}}, GroupByPeriod(dates, models.ReportPeriodYear))
	require.Empty(t, GroupByPeriod(nil, models.ReportPeriodMonth))
}
