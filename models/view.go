package models

// ViewName экран клиента, данные которого нужно перечитать после изменения
type ViewName string

const (
	ApplicantDashboardView ViewName = "applicant_dashboard"
	EmployerDashboardView  ViewName = "employer_dashboard"
	AdminDashboardView     ViewName = "admin_dashboard"
	EmployerVacanciesView  ViewName = "employer_vacancies"
	JobSearchView          ViewName = "job_search"
	ResumeView             ViewName = "resume"
)
