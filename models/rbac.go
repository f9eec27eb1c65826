package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	ProfileModule      Module = "PROFILE"
	ResumeModule       Module = "RESUME"
	VacancyModule      Module = "VACANCY"
	ApplicationModule  Module = "APPLICATION"
	DashboardModule    Module = "DASHBOARD"
	NotificationModule Module = "NOTIFICATION"
	UsersModule        Module = "USERS"
	ReportModule       Module = "REPORT"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
)
