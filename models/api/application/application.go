package applicationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

type CreateRequest struct {
	VacancyID string `json:"vacancy_id"`
	ResumeID  string `json:"resume_id"` // необязательный, по умолчанию резюме соискателя
}

func (r CreateRequest) Validate() error {
	if r.VacancyID == "" {
		return errors.New("не указана вакансия")
	}
	return nil
}

type StatusChange struct {
	Status models.ApplicationStatus `json:"status"`
}

func (r StatusChange) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("неизвестный статус отклика")
	}
	return nil
}

type InviteRequest struct {
	ResumeID string `json:"resume_id"`
}

func (r InviteRequest) Validate() error {
	if r.ResumeID == "" {
		return errors.New("не указано резюме")
	}
	return nil
}

type RespondRequest struct {
	Decision models.InviteDecision `json:"decision"` // accept/decline
}

func (r RespondRequest) Validate() error {
	if !r.Decision.IsValid() {
		return errors.New("неизвестное решение, допустимо accept или decline")
	}
	return nil
}

type ApplicationView struct {
	ID              string                   `json:"id"`
	Status          models.ApplicationStatus `json:"status"`
	StatusName      string                   `json:"status_name"`
	VacancyID       string                   `json:"vacancy_id"`
	VacancyTitle    string                   `json:"vacancy_title,omitempty"`
	CompanyName     string                   `json:"company_name,omitempty"`
	ResumeID        string                   `json:"resume_id"`
	DesiredPosition string                   `json:"desired_position,omitempty"`
	ApplicantID     string                   `json:"applicant_id"`
	ApplicantName   string                   `json:"applicant_name,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ID:          rec.ID,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		VacancyID:   rec.VacancyID,
		ResumeID:    rec.ResumeID,
		ApplicantID: rec.ApplicantID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.Vacancy != nil {
		result.VacancyTitle = rec.Vacancy.Title
		if rec.Vacancy.Company != nil {
			result.CompanyName = rec.Vacancy.Company.Name
		}
	}
	if rec.Resume != nil {
		result.DesiredPosition = rec.Resume.DesiredPosition
	}
	if rec.Applicant != nil {
		result.ApplicantName = rec.Applicant.GetFullName()
	}
	return result
}
