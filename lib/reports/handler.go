package reportshandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-board-backend/config"
	"job-board-backend/db"
	applicationstore "job-board-backend/lib/application/store"
	pdfexport "job-board-backend/lib/export/pdf"
	xlsexport "job-board-backend/lib/export/xls"
	filestorage "job-board-backend/lib/file-storage"
	userstore "job-board-backend/lib/users/store"
	"job-board-backend/lib/utils/helpers"
	initchecker "job-board-backend/lib/utils/init-checker"
	vacancystore "job-board-backend/lib/vacancy/store"
	"job-board-backend/models"
	reportapimodels "job-board-backend/models/api/report"
	dbmodels "job-board-backend/models/db"
)

const (
	popularLimit  = 10
	newUsersDays  = 30
	notSpecifiedM = "Не указан"
	notSpecifiedF = "Не указана"
)

var ErrUnknownReport = models.NewInvalidError("Неизвестный тип отчёта")

type Provider interface {
	Build(reportType models.ReportType, period models.ReportPeriod) (report reportapimodels.Report, err error)
	// Export отчёт в выбранном формате, при archive копия сохраняется в хранилище
	Export(ctx context.Context, reportType models.ReportType, request reportapimodels.ExportRequest) (body []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"xlsexport", xlsexport.Instance,
		"pdfexport", pdfexport.Instance,
	)
	movementStart, err := time.Parse("2006-01-02", config.Conf.Reports.MovementStartDate)
	if err != nil {
		log.WithError(err).Warn("неверная дата начала отчёта о движении кадров, используется 2025-01-01")
		movementStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	Instance = NewInstance(db.DB, xlsexport.Instance, pdfexport.Instance, filestorage.Instance, movementStart)
}

func NewInstance(DB *gorm.DB, xls xlsexport.Provider, pdf pdfexport.Provider, storage filestorage.Provider, movementStart time.Time) Provider {
	return impl{
		userStore:        userstore.NewInstance(DB),
		vacancyStore:     vacancystore.NewInstance(DB),
		applicationStore: applicationstore.NewInstance(DB),
		xls:              xls,
		pdf:              pdf,
		storage:          storage,
		movementStart:    movementStart,
		now:              time.Now,
	}
}

type impl struct {
	userStore        userstore.Provider
	vacancyStore     vacancystore.Provider
	applicationStore applicationstore.Provider
	xls              xlsexport.Provider
	pdf              pdfexport.Provider
	storage          filestorage.Provider
	movementStart    time.Time
	now              func() time.Time
}

func (i impl) Build(reportType models.ReportType, period models.ReportPeriod) (reportapimodels.Report, error) {
	logger := log.WithField("report_type", reportType)
	var report reportapimodels.Report
	var err error
	switch reportType {
	case models.ReportUsers:
		report, err = i.usersReport()
	case models.ReportMovement:
		report, err = i.movementReport()
	case models.ReportStructure:
		report, err = i.structureReport()
	case models.ReportDynamics:
		report, err = i.dynamicsReport(period)
	case models.ReportForecast:
		report, err = i.forecastReport()
	case models.ReportPopular:
		report, err = i.popularReport()
	default:
		return reportapimodels.Report{}, ErrUnknownReport
	}
	if err != nil {
		logger.WithError(err).Error("ошибка формирования отчёта")
		return reportapimodels.Report{}, errors.New("ошибка формирования отчёта")
	}
	report.Type = reportType
	return report, nil
}

func (i impl) Export(ctx context.Context, reportType models.ReportType, request reportapimodels.ExportRequest) ([]byte, string, error) {
	logger := log.
		WithField("report_type", reportType).
		WithField("format", request.Format)
	report, err := i.Build(reportType, request.Period)
	if err != nil {
		return nil, "", err
	}
	var body []byte
	switch request.Format {
	case models.ReportFormatPdf:
		body, err = i.pdf.ExportReport(report)
	default:
		request.Format = models.ReportFormatXlsx
		buf, xlsErr := i.xls.ExportReport(report)
		if xlsErr == nil {
			body = buf.Bytes()
		}
		err = xlsErr
	}
	if err != nil {
		logger.WithError(err).Error("ошибка выгрузки отчёта")
		if errors.Is(err, pdfexport.ErrFontNotFound) {
			return nil, "", err
		}
		return nil, "", errors.New("ошибка выгрузки отчёта")
	}
	if request.Archive {
		i.archive(ctx, reportType, request.Format, body)
	}
	return body, report.FileName(request.Format), nil
}

// archive ошибки хранилища только логируются
func (i impl) archive(ctx context.Context, reportType models.ReportType, format models.ReportFormat, body []byte) {
	logger := log.WithField("report_type", reportType)
	if i.storage == nil {
		logger.Warn("хранилище не настроено, отчёт не сохранён в архив")
		return
	}
	objectName, err := i.storage.UploadReport(ctx, reportType, format, body)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения отчёта в архив")
		return
	}
	logger.WithField("object", objectName).Info("отчёт сохранён в архив")
}

func (i impl) usersReport() (reportapimodels.Report, error) {
	since := i.now().AddDate(0, 0, -newUsersDays)
	totalApplicants, err := i.userStore.Count(models.ApplicantRole, nil)
	if err != nil {
		return reportapimodels.Report{}, err
	}
	totalEmployers, err := i.userStore.Count(models.EmployerRole, nil)
	if err != nil {
		return reportapimodels.Report{}, err
	}
	newApplicants, err := i.userStore.Count(models.ApplicantRole, &since)
	if err != nil {
		return reportapimodels.Report{}, err
	}
	newEmployers, err := i.userStore.Count(models.EmployerRole, &since)
	if err != nil {
		return reportapimodels.Report{}, err
	}
	title := "Соискатели и работодатели"
	return reportapimodels.Report{
		Title: title,
		Tables: []reportapimodels.Table{{
			Name:    title,
			Headers: []string{"Всего соискателей", "Всего работодателей", "Новых соискателей за 30 дней", "Новых работодателей за 30 дней"},
			Rows:    [][]interface{}{{totalApplicants, totalEmployers, newApplicants, newEmployers}},
		}},
	}, nil
}

func (i impl) movementReport() (reportapimodels.Report, error) {
	end := i.now()
	row := make([]interface{}, 0, 3)
	for _, status := range []models.ApplicationStatus{models.ApplicationStatusHired, models.ApplicationStatusRejected, models.ApplicationStatusPending} {
		count, err := i.applicationStore.CountUpdatedBetween(status, i.movementStart, end)
		if err != nil {
			return reportapimodels.Report{}, err
		}
		row = append(row, count)
	}
	title := "Движение кадров"
	return reportapimodels.Report{
		Title: title,
		Tables: []reportapimodels.Table{{
			Name:    title,
			Headers: []string{"Принятые", "Отклонённые", "В ожидании"},
			Rows:    [][]interface{}{row},
		}},
	}, nil
}

func (i impl) structureReport() (reportapimodels.Report, error) {
	byCity, err := i.vacancyStore.GroupCount("city")
	if err != nil {
		return reportapimodels.Report{}, err
	}
	bySpecialization, err := i.vacancyStore.GroupCount("specialization")
	if err != nil {
		return reportapimodels.Report{}, err
	}
	byEmploymentType, err := i.vacancyStore.GroupCount("employment_type")
	if err != nil {
		return reportapimodels.Report{}, err
	}
	employmentRows := make([][]interface{}, 0, len(byEmploymentType))
	for _, item := range byEmploymentType {
		label := notSpecifiedM
		if item.Key != "" {
			label = models.EmploymentType(item.Key).ToHuman()
		}
		employmentRows = append(employmentRows, []interface{}{label, item.Count})
	}
	return reportapimodels.Report{
		Title: "Структура занятости",
		Tables: []reportapimodels.Table{
			{
				Name:    "Города",
				Headers: []string{"Город", "Количество вакансий"},
				Rows:    countRows(byCity, notSpecifiedM),
			},
			{
				Name:    "Специализации",
				Headers: []string{"Специализация", "Количество вакансий"},
				Rows:    countRows(bySpecialization, notSpecifiedF),
			},
			{
				Name:    "Типы занятости",
				Headers: []string{"Тип занятости", "Количество вакансий"},
				Rows:    employmentRows,
			},
		},
	}, nil
}

func (i impl) dynamicsReport(period models.ReportPeriod) (reportapimodels.Report, error) {
	dates, err := i.applicationStore.UpdatedDates(models.ApplicationStatusHired)
	if err != nil {
		return reportapimodels.Report{}, err
	}
	title := "Динамика трудоустройства"
	return reportapimodels.Report{
		Title: title,
		Tables: []reportapimodels.Table{{
			Name:    title,
			Headers: []string{"Период", "Количество трудоустроенных"},
			Rows:    GroupByPeriod(dates, period),
		}},
	}, nil
}

func (i impl) forecastReport() (reportapimodels.Report, error) {
	byCity, err := i.vacancyStore.GroupCount("city")
	if err != nil {
		return reportapimodels.Report{}, err
	}
	byTitle, err := i.vacancyStore.GroupCount("title")
	if err != nil {
		return reportapimodels.Report{}, err
	}
	return reportapimodels.Report{
		Title: "Прогноз потребности",
		Tables: []reportapimodels.Table{
			{
				Name:    "Регионы",
				Headers: []string{"Регион", "Количество вакансий"},
				Rows:    countRows(byCity, notSpecifiedM),
			},
			{
				Name:    "Профессии",
				Headers: []string{"Профессия", "Количество вакансий"},
				Rows:    countRows(byTitle, notSpecifiedF),
			},
		},
	}, nil
}

func (i impl) popularReport() (reportapimodels.Report, error) {
	list, err := i.applicationStore.Popular(popularLimit)
	if err != nil {
		return reportapimodels.Report{}, err
	}
	rows := make([][]interface{}, 0, len(list))
	for idx, item := range list {
		rows = append(rows, []interface{}{idx + 1, item.Title, helpers.DefaultIfEmpty(item.Specialization, notSpecifiedF), item.Count})
	}
	title := "Рейтинг профессий"
	return reportapimodels.Report{
		Title: title,
		Tables: []reportapimodels.Table{{
			Name:    title,
			Headers: []string{"Место", "Профессия", "Отрасль", "Количество заявок"},
			Rows:    rows,
		}},
	}, nil
}

func countRows(list []dbmodels.CountByKey, emptyLabel string) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{helpers.DefaultIfEmpty(item.Key, emptyLabel), item.Count})
	}
	return rows
}

// GroupByPeriod количество дат по периодам в порядке возрастания, даты сгруппированы в UTC
func GroupByPeriod(dates []time.Time, period models.ReportPeriod) [][]interface{} {
	layout := period.Layout()
	rows := [][]interface{}{}
	index := map[string]int{}
	for _, date := range dates {
		key := date.UTC().Format(layout)
		if idx, ok := index[key]; ok {
			rows[idx][1] = rows[idx][1].(int) + 1
			continue
		}
		index[key] = len(rows)
		rows = append(rows, []interface{}{key, 1})
	}
	return rows
}
