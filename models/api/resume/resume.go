package resumeapimodels

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-board-backend/lib/validator"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

const DateLayout = "2006-01-02"

type ResumeData struct {
	DesiredPosition string                `json:"desired_position" validate:"required,min=2"`
	City            string                `json:"city" validate:"required,min=2"`
	Summary         string                `json:"summary"`
	Salary          *int                  `json:"salary" validate:"omitempty,gte=10000,lte=1000000"`
	EmploymentType  models.EmploymentType `json:"employment_type" validate:"employment_type"`
	Skills          []string              `json:"skills" validate:"dive,required"`
	Education       []EducationData       `json:"education" validate:"dive"`
	Experience      []ExperienceData      `json:"experience" validate:"dive"`
}

type EducationData struct {
	Institution string `json:"institution" validate:"required,min=2"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   *int   `json:"start_year"`
	EndYear     *int   `json:"end_year"`
}

type ExperienceData struct {
	Company     string `json:"company" validate:"required,min=2"`
	Position    string `json:"position" validate:"required,min=2"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD, пусто - по настоящее время
	Description string `json:"description"`
}

func (r *ResumeData) Validate() error {
	cleanSkills := make([]string, 0, len(r.Skills))
	for _, skill := range r.Skills {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			cleanSkills = append(cleanSkills, skill)
		}
	}
	r.Skills = cleanSkills
	if err := validator.Struct(r); err != nil {
		return err
	}
	maxYear := time.Now().Year() + 1
	for idx, item := range r.Education {
		if !yearInRange(item.StartYear, maxYear) || !yearInRange(item.EndYear, maxYear) {
			return errors.Errorf("education[%v]: год должен быть в диапазоне 1900-%v", idx, maxYear)
		}
		if item.StartYear != nil && item.EndYear != nil && *item.EndYear < *item.StartYear {
			return errors.Errorf("education[%v]: год окончания раньше года начала", idx)
		}
	}
	for idx, item := range r.Experience {
		start, err := ParseDate(item.StartDate)
		if err != nil {
			return errors.Errorf("experience[%v]: дата начала должна быть в формате ГГГГ-ММ-ДД", idx)
		}
		end, err := ParseDate(item.EndDate)
		if err != nil {
			return errors.Errorf("experience[%v]: дата окончания должна быть в формате ГГГГ-ММ-ДД", idx)
		}
		if start != nil && end != nil && end.Before(*start) {
			return errors.Errorf("experience[%v]: дата окончания раньше даты начала", idx)
		}
	}
	return nil
}

func yearInRange(year *int, maxYear int) bool {
	if year == nil {
		return true
	}
	return *year >= 1900 && *year <= maxYear
}

func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

type ResumeView struct {
	ID string `json:"id"`
	ResumeData
	FullName        string    `json:"full_name,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ResumeConvert(rec dbmodels.Resume) ResumeView {
	result := ResumeView{
		ID: rec.ID,
		ResumeData: ResumeData{
			DesiredPosition: rec.DesiredPosition,
			City:            rec.City,
			Summary:         rec.Summary,
			Salary:          rec.Salary,
			EmploymentType:  rec.EmploymentType,
			Skills:          rec.Skills,
			Education:       make([]EducationData, 0, len(rec.Education)),
			Experience:      make([]ExperienceData, 0, len(rec.Experience)),
		},
		ExperienceYears: rec.ExperienceYears(time.Now()),
		UpdatedAt:       rec.UpdatedAt,
	}
	if result.Skills == nil {
		result.Skills = []string{}
	}
	if rec.User != nil {
		result.FullName = rec.User.GetFIO()
	}
	for _, item := range rec.Education {
		result.Education = append(result.Education, EducationData{
			Institution: item.Institution,
			Degree:      item.Degree,
			Field:       item.Field,
			StartYear:   item.StartYear,
			EndYear:     item.EndYear,
		})
	}
	for _, item := range rec.Experience {
		result.Experience = append(result.Experience, ExperienceData{
			Company:     item.Company,
			Position:    item.Position,
			StartDate:   formatDate(item.StartDate),
			EndDate:     formatDate(item.EndDate),
			Description: item.Description,
		})
	}
	return result
}

// ExperienceFilter диапазон опыта в годах: 0-1, 1-3, 3-5, 5+
type ExperienceFilter string

const (
	Experience0to1  ExperienceFilter = "0-1"
	Experience1to3  ExperienceFilter = "1-3"
	Experience3to5  ExperienceFilter = "3-5"
	Experience5plus ExperienceFilter = "5+"
)

func (e ExperienceFilter) Match(years int) bool {
	switch e {
	case Experience0to1:
		return years < 1
	case Experience1to3:
		return years >= 1 && years < 3
	case Experience3to5:
		return years >= 3 && years < 5
	case Experience5plus:
		return years >= 5
	}
	return true
}

type SearchFilter struct {
	Query      string             `query:"q"`
	Profession string             `query:"profession"`
	Experience []ExperienceFilter `query:"experience"`
}

func (f SearchFilter) Validate() error {
	for _, item := range f.Experience {
		switch item {
		case Experience0to1, Experience1to3, Experience3to5, Experience5plus:
		default:
			return errors.New(fmt.Sprintf("неизвестный фильтр опыта: %v", item))
		}
	}
	return nil
}

// MatchExperience резюме подходит, если попадает хотя бы в один из диапазонов
func (f SearchFilter) MatchExperience(years int) bool {
	if len(f.Experience) == 0 {
		return true
	}
	for _, item := range f.Experience {
		if item.Match(years) {
			return true
		}
	}
	return false
}
