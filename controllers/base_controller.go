package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-board-backend/lib/validator"
	"job-board-backend/middleware"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания параметров запроса")
		return errors.New("не удалось получить параметры запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if value == "" {
		return "", errors.Errorf("не указан параметр %v", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path()).
		WithField("user_id", middleware.GetUserID(ctx))
}

// SendError ответ по типу ошибки: ошибки бизнес-логики и валидации отдаются как есть, остальные под общим сообщением
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return c.SendValidationError(ctx, err)
	}
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		return ctx.Status(StatusByKind(domainErr.Kind)).JSON(apimodels.NewError(domainErr.Msg))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

func (c *BaseAPIController) SendValidationError(ctx *fiber.Ctx, err error) error {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.Response{
			Status:  "fail",
			Message: validationErr.Error(),
			Data:    validationErr.Errors,
		})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}

func StatusByKind(kind models.ErrorKind) int {
	switch kind {
	case models.ErrorKindNotFound:
		return fiber.StatusNotFound
	case models.ErrorKindForbidden:
		return fiber.StatusForbidden
	case models.ErrorKindConflict:
		return fiber.StatusConflict
	case models.ErrorKindUnprocessable:
		return fiber.StatusUnprocessableEntity
	case models.ErrorKindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusBadRequest
	}
}
