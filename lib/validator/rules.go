package validator

import (
	"job-board-backend/models"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.WithError(err).Fatalf("ошибка регистрации правила валидации %s", tag)
		}
	}
	mustRegister("employment_type", validateEmploymentType)
	mustRegister("schedule_type", validateScheduleType)
	mustRegister("application_status", validateApplicationStatus)
}

// пустые значения проверяет required

func validateEmploymentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.EmploymentType(value).IsValid()
}

func validateScheduleType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ScheduleType(value).IsValid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ApplicationStatus(value).IsValid()
}
