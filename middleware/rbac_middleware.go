package middleware

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/lib/rbac"
	apimodels "job-board-backend/models/api"
)

func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		userRole := GetUserRole(ctx)
		if userID == "" || userRole == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("RBAC_FORBIDDEN"))
		}

		// Ищем обработчик
		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}

		if !handler(userID, userRole, ctx.Path()) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("RBAC_FORBIDDEN"))
		}

		return ctx.Next()
	}
}
