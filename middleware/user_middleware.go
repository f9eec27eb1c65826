package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	authutils "job-board-backend/lib/utils/auth-utils"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, ok := claims["role"].(string); ok {
		return models.UserRole(role)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, ok := claims["name"].(string); ok {
		return name
	}
	return ""
}

// RoleRequired группа маршрутов доступна только перечисленным ролям
func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !slices.Contains(roles, GetUserRole(ctx)) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
