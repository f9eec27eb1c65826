package rbac

import (
	"job-board-backend/models"
)

var (
	ApplicantRoleSet = []models.UserRole{models.ApplicantRole}
	EmployerRoleSet  = []models.UserRole{models.EmployerRole}
	AdminRoleSet     = []models.UserRole{models.AdminRole}
	AllRoles         = []models.UserRole{models.ApplicantRole, models.EmployerRole, models.AdminRole}
)

func (i *impl) initRules() {
	i.profile()
	i.applicantRbac()
	i.employerRbac()
	i.adminRbac()
}

func (i *impl) profile() {
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/auth/me [get]", nil)
	i.RegisterRule(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notification/list [get]", nil)
}

func (i *impl) applicantRbac() {
	// VIEW
	i.RegisterRule(models.DashboardModule, models.ViewPermission, ApplicantRoleSet, "/api/v1/applicant/dashboard [get]", nil)
	i.RegisterRule(models.ResumeModule, models.ViewPermission, ApplicantRoleSet, "/api/v1/applicant/resume [get]", nil)
	// EDIT
	i.RegisterRule(models.ResumeModule, models.EditPermission, ApplicantRoleSet, "/api/v1/applicant/resume [put]", nil)
	// CREATE
	i.RegisterRule(models.ApplicationModule, models.CreatePermission, ApplicantRoleSet, "/api/v1/applicant/application [post]", nil)
	// FLOW
	i.RegisterRule(models.ApplicationModule, models.FlowPermission, ApplicantRoleSet, "/api/v1/applicant/application/{id}/respond [put]", nil)
}

func (i *impl) employerRbac() {
	// VIEW
	i.RegisterRule(models.DashboardModule, models.ViewPermission, EmployerRoleSet, "/api/v1/employer/dashboard [get]", nil)
	i.RegisterRule(models.VacancyModule, models.ViewPermission, EmployerRoleSet, "/api/v1/employer/vacancy [get]", nil)
	i.RegisterRule(models.ResumeModule, models.ViewPermission, EmployerRoleSet, "/api/v1/employer/resume/search [get]", nil)
	// CREATE/EDIT
	i.RegisterRule(models.VacancyModule, models.CreatePermission, EmployerRoleSet, "/api/v1/employer/vacancy [post]", nil)
	i.RegisterRule(models.VacancyModule, models.EditPermission, EmployerRoleSet, "/api/v1/employer/vacancy/{id}/active [put]", nil)
	// FLOW
	i.RegisterRule(models.ApplicationModule, models.FlowPermission, EmployerRoleSet, "/api/v1/employer/application/{id}/status [put]", nil)
	i.RegisterRule(models.ApplicationModule, models.CreatePermission, EmployerRoleSet, "/api/v1/employer/invite [post]", nil)
}

func (i *impl) adminRbac() {
	// VIEW
	i.RegisterRule(models.DashboardModule, models.ViewPermission, AdminRoleSet, "/api/v1/admin/dashboard [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/v1/admin/users/list [post]", nil)
	i.RegisterRule(models.ReportModule, models.ViewPermission, AdminRoleSet, "/api/v1/admin/report/{type} [get]", nil)
	// MANAGE
	i.RegisterRule(models.ApplicationModule, models.ManagePermission, AdminRoleSet, "/api/v1/admin/application/{id}/status [put]", nil)
}
