package dbmodels

import "job-board-backend/models"

type Vacancy struct {
	BaseModel
	EmployerID     string                `gorm:"type:varchar(36);index"`
	CompanyID      *string               `gorm:"type:varchar(36);index"`
	Company        *Company              `gorm:"foreignKey:CompanyID"`
	Title          string                `gorm:"type:varchar(255)"`
	Description    string
	Requirements   string
	Conditions     string
	City           string                `gorm:"type:varchar(255);index"`
	Specialization string                `gorm:"type:varchar(255)"`
	EmploymentType models.EmploymentType `gorm:"type:varchar(50)"`
	Schedule       models.ScheduleType   `gorm:"type:varchar(50)"`
	SalaryFrom     *int
	SalaryTo       *int
	IsActive       bool `gorm:"index"`
}
