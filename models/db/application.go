package dbmodels

import "job-board-backend/models"

type Application struct {
	BaseModel
	ApplicantID string                   `gorm:"type:varchar(36);index"`
	Applicant   *User                    `gorm:"foreignKey:ApplicantID"`
	VacancyID   string                   `gorm:"type:varchar(36);uniqueIndex:idx_application_vacancy_resume"`
	Vacancy     *Vacancy                 `gorm:"foreignKey:VacancyID"`
	ResumeID    string                   `gorm:"type:varchar(36);uniqueIndex:idx_application_vacancy_resume"`
	Resume      *Resume                  `gorm:"foreignKey:ResumeID"`
	Status      models.ApplicationStatus `gorm:"type:varchar(50);index"`
}
