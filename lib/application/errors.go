package applicationhandler

import "job-board-backend/models"

var (
	ErrResumeNotFound       = models.NewNotFoundError("Резюме не найдено")
	ErrApplicationNotFound  = models.NewNotFoundError("Отклик не найден")
	ErrVacancyNotFound      = models.NewNotFoundError("Вакансия не найдена")
	ErrVacancyClosed        = models.NewUnprocessableError("Вакансия закрыта для откликов")
	ErrDuplicateApplication = models.NewConflictError("Отклик на эту вакансию уже существует")
	ErrNoActiveVacancy      = models.NewUnprocessableError("Сначала создайте активную вакансию")
	ErrForbidden            = models.NewForbiddenError("Недостаточно прав для работы с откликом")
	ErrInvalidTransition    = models.NewConflictError("Нельзя ответить на приглашение для данного статуса")
	ErrInvalidStatus        = models.NewInvalidError("Неизвестный статус отклика")
)
