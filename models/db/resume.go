package dbmodels

import (
	"math"
	"time"

	"gorm.io/datatypes"
	"job-board-backend/models"
)

type Resume struct {
	BaseModel
	UserID          string `gorm:"type:varchar(36);uniqueIndex"`
	User            *User  `gorm:"foreignKey:UserID"`
	DesiredPosition string `gorm:"type:varchar(255)"`
	City            string `gorm:"type:varchar(255)"`
	Summary         string
	Salary          *int
	EmploymentType  models.EmploymentType       `gorm:"type:varchar(50)"`
	Skills          datatypes.JSONSlice[string] `gorm:"type:json"`
	Education       []Education                 `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE"`
	Experience      []Experience                `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE"`
}

type Education struct {
	BaseModel
	ResumeID    string `gorm:"type:varchar(36);index"`
	Institution string `gorm:"type:varchar(255)"`
	Degree      string `gorm:"type:varchar(255)"`
	Field       string `gorm:"type:varchar(255)"`
	StartYear   *int
	EndYear     *int
}

type Experience struct {
	BaseModel
	ResumeID    string `gorm:"type:varchar(36);index"`
	Company     string `gorm:"type:varchar(255)"`
	Position    string `gorm:"type:varchar(255)"`
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
}

// ExperienceYears суммарный опыт в годах, незавершённое место работы считается до now
func (r Resume) ExperienceYears(now time.Time) int {
	months := 0
	for _, item := range r.Experience {
		if item.StartDate == nil {
			continue
		}
		end := now
		if item.EndDate != nil {
			end = *item.EndDate
		}
		diff := (end.Year()-item.StartDate.Year())*12 + int(end.Month()) - int(item.StartDate.Month())
		if diff > 0 {
			months += diff
		}
	}
	return int(math.Round(float64(months) / 12))
}
