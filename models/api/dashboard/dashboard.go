package dashboardapimodels

import (
	"time"

	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
	applicationapimodels "job-board-backend/models/api/application"
	notificationapimodels "job-board-backend/models/api/notification"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

type ResumeSummary struct {
	ID              string `json:"id"`
	DesiredPosition string `json:"desired_position"`
	Salary          *int   `json:"salary"`
}

type ApplicantDashboard struct {
	Applications  []applicationapimodels.ApplicationView   `json:"applications"`
	StatusCounts  map[models.ApplicationStatus]int         `json:"status_counts"`
	Notifications []notificationapimodels.NotificationView `json:"notifications"`
	Resume        *ResumeSummary                           `json:"resume"`
}

type EmployerVacancy struct {
	vacancyapimodels.VacancyView
	ApplicationsCount int `json:"applications_count"`
}

type EmployerDashboard struct {
	Vacancies     []EmployerVacancy                        `json:"vacancies"`
	Applications  []applicationapimodels.ApplicationView   `json:"applications"`
	Notifications []notificationapimodels.NotificationView `json:"notifications"`
}

type AdminDashboard struct {
	UsersCount           int64           `json:"users_count"`
	ActiveVacanciesCount int64           `json:"active_vacancies_count"`
	HiredCount           int64           `json:"hired_count"`
	Logs                 []SystemLogView `json:"logs"`
}

type SystemLogView struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}

func SystemLogConvert(rec dbmodels.SystemLog) SystemLogView {
	return SystemLogView{
		ID:        rec.ID,
		Action:    rec.Action,
		UserEmail: rec.UserEmail,
		CreatedAt: rec.CreatedAt,
	}
}

type UsersFilter struct {
	apimodels.Pagination
	Query string          `json:"q"`
	Role  models.UserRole `json:"role"`
}

func (f UsersFilter) Validate() error {
	if f.Role != "" && !f.Role.IsValid() {
		return errInvalidRole
	}
	return nil
}

type UserView struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	FullName        string          `json:"full_name"`
	Phone           string          `json:"phone"`
	Role            models.UserRole `json:"role"`
	RoleName        string          `json:"role_name"`
	CompanyName     string          `json:"company_name,omitempty"`
	DesiredPosition string          `json:"desired_position,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:        rec.ID,
		Email:     rec.Email,
		FullName:  rec.GetFIO(),
		Phone:     rec.Phone,
		Role:      rec.Role,
		RoleName:  rec.Role.ToHuman(),
		CreatedAt: rec.CreatedAt,
	}
}
