package models

type ReportType string

const (
	ReportUsers     ReportType = "users"
	ReportMovement  ReportType = "movement"
	ReportStructure ReportType = "structure"
	ReportDynamics  ReportType = "dynamics"
	ReportForecast  ReportType = "forecast"
	ReportPopular   ReportType = "popular"
)

var AllReportTypes = []ReportType{ReportUsers, ReportMovement, ReportStructure, ReportDynamics, ReportForecast, ReportPopular}

func (r ReportType) IsValid() bool {
	for _, item := range AllReportTypes {
		if item == r {
			return true
		}
	}
	return false
}

type ReportFormat string

const (
	ReportFormatXlsx ReportFormat = "xlsx"
	ReportFormatPdf  ReportFormat = "pdf"
)

func (f ReportFormat) ContentType() string {
	if f == ReportFormatPdf {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

type ReportPeriod string

const (
	ReportPeriodDay   ReportPeriod = "day"
	ReportPeriodMonth ReportPeriod = "month"
	ReportPeriodYear  ReportPeriod = "year"
)

func (p ReportPeriod) Layout() string {
	switch p {
	case ReportPeriodDay:
		return "2006-01-02"
	case ReportPeriodYear:
		return "2006"
	default:
		return "2006-01"
	}
}
