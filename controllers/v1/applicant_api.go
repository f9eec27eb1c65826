package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	dashboardhandler "job-board-backend/lib/dashboard"
	resumehandler "job-board-backend/lib/resume"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	applicationapimodels "job-board-backend/models/api/application"
	resumeapimodels "job-board-backend/models/api/resume"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	app.Get("dashboard", controller.dashboard)
	app.Route("resume", func(router fiber.Router) {
		router.Get("", controller.getResume)
		router.Put("", controller.saveResume)
	})
	app.Route("application", func(router fiber.Router) {
		router.Post("", controller.apply)
		router.Put(":id/respond", controller.respond)
	})
}

// @Summary Кабинет соискателя
// @Tags Соискатель
// @Description Последние отклики, уведомления и краткие данные резюме
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.ApplicantDashboard}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/dashboard [get]
func (c *applicantApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Applicant(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных кабинета")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Резюме соискателя
// @Tags Соискатель
// @Description Резюме текущего соискателя, создаётся при первом обращении
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=resumeapimodels.ResumeView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/resume [get]
func (c *applicantApiController) getResume(ctx *fiber.Ctx) error {
	resp, err := resumehandler.Instance.GetOrCreate(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение резюме
// @Tags Соискатель
// @Description Сохранение резюме, образование и опыт заменяются целиком
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 resumeapimodels.ResumeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=resumeapimodels.ResumeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/resume [put]
func (c *applicantApiController) saveResume(ctx *fiber.Ctx) error {
	var payload resumeapimodels.ResumeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := resumehandler.Instance.Save(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклик на вакансию
// @Tags Соискатель
// @Description Создание отклика в статусе pending
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/application [post]
func (c *applicantApiController) apply(ctx *fiber.Ctx) error {
	var payload applicationapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicationhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Ответ на приглашение
// @Tags Соискатель
// @Description Принять (hired) или отклонить (rejected) приглашение на собеседование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.RespondRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/application/{id}/respond [put]
func (c *applicantApiController) respond(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload applicationapimodels.RespondRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	status, err := applicationhandler.Instance.Respond(middleware.GetUserID(ctx), id, payload.Decision)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка ответа на приглашение")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(status))
}
