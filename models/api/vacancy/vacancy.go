package vacancyapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-board-backend/lib/validator"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

type VacancyData struct {
	Title          string                `json:"title" validate:"required,min=3"`
	Description    string                `json:"description" validate:"required,min=10"`
	Requirements   string                `json:"requirements" validate:"required,min=10"`
	Conditions     string                `json:"conditions" validate:"required,min=10"`
	City           string                `json:"city" validate:"required,min=2"`
	Specialization string                `json:"specialization"`
	EmploymentType models.EmploymentType `json:"employment_type" validate:"employment_type"`
	Schedule       models.ScheduleType   `json:"schedule" validate:"schedule_type"`
	SalaryFrom     *int                  `json:"salary_from" validate:"omitempty,gte=0"`
	SalaryTo       *int                  `json:"salary_to" validate:"omitempty,gte=0"`
}

func (v *VacancyData) Validate() error {
	v.Title = strings.TrimSpace(v.Title)
	v.City = strings.TrimSpace(v.City)
	v.Specialization = strings.TrimSpace(v.Specialization)
	if err := validator.Struct(v); err != nil {
		return err
	}
	if v.SalaryFrom != nil && v.SalaryTo != nil && *v.SalaryFrom > *v.SalaryTo {
		return errors.New("зарплата \"от\" больше зарплаты \"до\"")
	}
	return nil
}

type ActiveChange struct {
	IsActive bool `json:"is_active"`
}

type VacancyView struct {
	ID string `json:"id"`
	VacancyData
	CompanyName string    `json:"company_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func VacancyConvert(rec dbmodels.Vacancy) VacancyView {
	result := VacancyView{
		ID: rec.ID,
		VacancyData: VacancyData{
			Title:          rec.Title,
			Description:    rec.Description,
			Requirements:   rec.Requirements,
			Conditions:     rec.Conditions,
			City:           rec.City,
			Specialization: rec.Specialization,
			EmploymentType: rec.EmploymentType,
			Schedule:       rec.Schedule,
			SalaryFrom:     rec.SalaryFrom,
			SalaryTo:       rec.SalaryTo,
		},
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
	}
	if rec.Company != nil {
		result.CompanyName = rec.Company.Name
	}
	return result
}

type SearchFilter struct {
	Query          string                `query:"q"`
	City           string                `query:"city"`
	Specialization string                `query:"specialization"`
	EmploymentType models.EmploymentType `query:"employment_type"`
	Schedule       models.ScheduleType   `query:"schedule"`
	SalaryFrom     int                   `query:"salary_from"`
}

func (f SearchFilter) Validate() error {
	if f.EmploymentType != "" && !f.EmploymentType.IsValid() {
		return errors.New("неизвестный тип занятости")
	}
	if f.Schedule != "" && !f.Schedule.IsValid() {
		return errors.New("неизвестный график работы")
	}
	if f.SalaryFrom < 0 {
		return errors.New("зарплата не может быть отрицательной")
	}
	return nil
}

type SearchResult struct {
	Items           []VacancyView `json:"items"`
	Cities          []string      `json:"cities"`
	Specializations []string      `json:"specializations"`
	AppliedIDs      []string      `json:"applied_ids"` // вакансии, на которые соискатель уже откликнулся
}
