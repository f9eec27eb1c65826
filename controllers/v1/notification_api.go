package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	notificationhandler "job-board-backend/lib/notification"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Get("list", controller.list)
}

// @Summary Уведомления
// @Tags Уведомления
// @Description Уведомления текущего пользователя, новые первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page				query	int		false	"страница"
// @Param   limit				query	int		false	"записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/list [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var pagination apimodels.Pagination
	if err := c.QueryParser(ctx, &pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := notificationhandler.Instance.List(middleware.GetUserID(ctx), pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
