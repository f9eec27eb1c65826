package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	vacancyhandler "job-board-backend/lib/vacancy"
	"job-board-backend/middleware"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
	vacancyapimodels "job-board-backend/models/api/vacancy"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancy", func(router fiber.Router) {
		router.Get("search", middleware.AuthorizationOptional(), controller.search)
		router.Get(":id", controller.get)
	})
}

// @Summary Поиск вакансий
// @Tags Вакансия
// @Description Активные вакансии с фильтрами, для авторизованного соискателя отмечаются вакансии с откликом
// @Param   Authorization		header		string	false	"Authorization token"
// @Param   q					query		string	false	"поиск по названию, описанию и требованиям"
// @Param   city				query		string	false	"город"
// @Param   specialization		query		string	false	"специализация"
// @Param   employment_type		query		string	false	"тип занятости"
// @Param   schedule			query		string	false	"график работы"
// @Param   salary_from			query		int		false	"зарплата от"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.SearchResult}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/search [get]
func (c *vacancyApiController) search(ctx *fiber.Ctx) error {
	var filter vacancyapimodels.SearchFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applicantID := ""
	if middleware.GetUserRole(ctx) == models.ApplicantRole {
		applicantID = middleware.GetUserID(ctx)
	}
	resp, err := vacancyhandler.Instance.Search(applicantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка поиска вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение по ИД
// @Tags Вакансия
// @Description Получение по ИД
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := vacancyhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
