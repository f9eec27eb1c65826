package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	dashboardhandler "job-board-backend/lib/dashboard"
	resumehandler "job-board-backend/lib/resume"
	vacancyhandler "job-board-backend/lib/vacancy"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	applicationapimodels "job-board-backend/models/api/application"
	resumeapimodels "job-board-backend/models/api/resume"
	vacancyapimodels "job-board-backend/models/api/vacancy"
)

type employerApiController struct {
	controllers.BaseAPIController
}

func InitEmployerApiRouters(app *fiber.App) {
	controller := employerApiController{}
	app.Get("dashboard", controller.dashboard)
	app.Route("vacancy", func(router fiber.Router) {
		router.Get("", controller.vacancyList)
		router.Post("", controller.vacancyCreate)
		router.Put(":id/active", controller.vacancySetActive)
	})
	app.Get("resume/search", controller.resumeSearch)
	app.Put("application/:id/status", controller.changeStatus)
	app.Post("invite", controller.invite)
}

// @Summary Кабинет работодателя
// @Tags Работодатель
// @Description Последние вакансии с количеством откликов, отклики и уведомления
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.EmployerDashboard}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/dashboard [get]
func (c *employerApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Employer(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных кабинета")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список вакансий работодателя
// @Tags Работодатель
// @Description Все вакансии работодателя, новые первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/vacancy [get]
func (c *employerApiController) vacancyList(ctx *fiber.Ctx) error {
	resp, err := vacancyhandler.Instance.ListOwn(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание вакансии
// @Tags Работодатель
// @Description Создание активной вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/vacancy [post]
func (c *employerApiController) vacancyCreate(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	id, err := vacancyhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Открыть/закрыть вакансию
// @Tags Работодатель
// @Description Изменение активности вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	set					query 	bool							true		 "активна/закрыта"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/vacancy/{id}/active [put]
func (c *employerApiController) vacancySetActive(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	isActive := ctx.QueryBool("set", false)
	err = vacancyhandler.Instance.SetActive(middleware.GetUserID(ctx), id, isActive)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Поиск резюме
// @Tags Работодатель
// @Description Поиск резюме по должности, описанию, навыкам и опыту
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   q					query		string	false	"должность, описание или навык"
// @Param   profession			query		string	false	"желаемая должность"
// @Param   experience			query		[]string	false	"опыт: 0-1, 1-3, 3-5, 5+"
// @Success 200 {object} apimodels.Response{data=[]resumeapimodels.ResumeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/resume/search [get]
func (c *employerApiController) resumeSearch(ctx *fiber.Ctx) error {
	var filter resumeapimodels.SearchFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := resumehandler.Instance.Search(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка поиска резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена статуса отклика
// @Tags Работодатель
// @Description Смена статуса отклика на вакансию работодателя, кандидат получает уведомление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.StatusChange	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/application/{id}/status [put]
func (c *employerApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload applicationapimodels.StatusChange
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicationhandler.Instance.UpdateStatus(middleware.GetUserID(ctx), id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Приглашение на собеседование
// @Tags Работодатель
// @Description Приглашение кандидата на последнюю активную вакансию работодателя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.InviteRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/invite [post]
func (c *employerApiController) invite(ctx *fiber.Ctx) error {
	var payload applicationapimodels.InviteRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicationhandler.Instance.Invite(middleware.GetUserID(ctx), payload.ResumeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки приглашения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
