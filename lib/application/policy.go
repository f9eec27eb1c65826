package applicationhandler

import "job-board-backend/models"

// CheckTransition единственное место проверки переходов статуса отклика.
// Работодатель и администратор меняют статус без ограничений,
// соискатель только отвечает на приглашение.
func CheckTransition(role models.UserRole, from, to models.ApplicationStatus) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	switch role {
	case models.EmployerRole, models.AdminRole:
		return nil
	case models.ApplicantRole:
		if from != models.ApplicationStatusInvited {
			return ErrInvalidTransition
		}
		if to != models.ApplicationStatusHired && to != models.ApplicationStatusRejected {
			return ErrInvalidTransition
		}
		return nil
	}
	return ErrForbidden
}
