package authapimodels

import (
	"strings"

	"job-board-backend/lib/validator"
)

type ApplicantRegister struct {
	LastName        string `json:"last_name" validate:"required,min=2"`
	FirstName       string `json:"first_name" validate:"required,min=2"`
	Patronymic      string `json:"patronymic"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=10"`
	Password        string `json:"password" validate:"required,min=6"`
	DesiredPosition string `json:"desired_position" validate:"required,min=2"`
}

func (r *ApplicantRegister) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return validator.Struct(r)
}

type EmployerRegister struct {
	CompanyName string `json:"company_name" validate:"required,min=2"`
	Inn         string `json:"inn" validate:"required,min=10,max=12,numeric"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	Password    string `json:"password" validate:"required,min=6"`
}

func (r *EmployerRegister) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return validator.Struct(r)
}
