package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	authhandler "job-board-backend/lib/auth"
	"job-board-backend/lib/rbac"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	authapimodels "job-board-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register/applicant", controller.registerApplicant)
		router.Post("register/employer", controller.registerEmployer)
		router.Post("login", controller.login)
		router.Get("me", middleware.AuthorizationRequired(), controller.me)
	})
}

// @Summary Регистрация соискателя
// @Tags Аутентификация пользователей
// @Description Регистрация соискателя, создаёт пользователя и резюме
// @Param	body				body		authapimodels.ApplicantRegister	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register/applicant [post]
func (c *authApiController) registerApplicant(ctx *fiber.Ctx) error {
	var payload authapimodels.ApplicantRegister
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	id, err := authhandler.Instance.RegisterApplicant(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при регистрации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Регистрация работодателя
// @Tags Аутентификация пользователей
// @Description Регистрация работодателя, создаёт пользователя и компанию
// @Param	body				body		authapimodels.EmployerRegister	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register/employer [post]
func (c *authApiController) registerEmployer(ctx *fiber.Ctx) error {
	var payload authapimodels.EmployerRegister
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	id, err := authhandler.Instance.RegisterEmployer(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при регистрации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация пользователей
// @Description Вход по почте или телефону
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка входа")
	}
	resp.User.Permissions = rbac.Instance.GetPermissions(resp.User.Role)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получить информацию о текущем пользователе
// @Tags Аутентификация пользователей
// @Description Получить информацию о текущем пользователе
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.MeView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения пользователя")
	}
	resp.Permissions = rbac.Instance.GetPermissions(resp.Role)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
