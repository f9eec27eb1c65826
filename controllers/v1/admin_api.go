package apiv1

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	dashboardhandler "job-board-backend/lib/dashboard"
	reportshandler "job-board-backend/lib/reports"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
	applicationapimodels "job-board-backend/models/api/application"
	dashboardapimodels "job-board-backend/models/api/dashboard"
	reportapimodels "job-board-backend/models/api/report"
)

const archiveTimeout = 30 * time.Second

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Get("dashboard", controller.dashboard)
	app.Post("users/list", controller.usersList)
	app.Get("report/:type", controller.report)
	app.Put("application/:id/status", controller.changeStatus)
}

// @Summary Сводка администратора
// @Tags Администратор
// @Description Количество пользователей, активных вакансий, трудоустроенных и журнал действий
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.AdminDashboard}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/dashboard [get]
func (c *adminApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Admin()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список пользователей
// @Tags Администратор
// @Description Список пользователей с фильтром по роли и строке поиска
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dashboardapimodels.UsersFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]dashboardapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users/list [post]
func (c *adminApiController) usersList(ctx *fiber.Ctx) error {
	var payload dashboardapimodels.UsersFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := dashboardhandler.Instance.Users(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Выгрузка отчёта
// @Tags Администратор
// @Description Отчёт users, movement, structure, dynamics, forecast или popular в xlsx или pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   type          		path    string  				    	true         "тип отчёта"
// @Param   format				query	string	false	"xlsx (по умолчанию) или pdf"
// @Param   period				query	string	false	"day, month (по умолчанию) или year, для dynamics"
// @Param   archive				query	bool	false	"сохранить копию в архив"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/report/{type} [get]
func (c *adminApiController) report(ctx *fiber.Ctx) error {
	reportType, err := c.GetParam(ctx, "type")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload reportapimodels.ExportRequest
	if err = c.QueryParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	exportCtx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()
	body, fileName, err := reportshandler.Instance.Export(exportCtx, models.ReportType(reportType), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("report_type", reportType), err, "Ошибка выгрузки отчёта")
	}
	ctx.Set(fiber.HeaderContentType, payload.Format.ContentType())
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Смена статуса отклика
// @Tags Администратор
// @Description Смена статуса любого отклика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.StatusChange	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/application/{id}/status [put]
func (c *adminApiController) changeStatus(ctx *fiber.Ctx) error {
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
	err = applicationhandler.Instance.UpdateStatus("", id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
