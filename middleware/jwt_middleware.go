package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"job-board-backend/config"
	apimodels "job-board-backend/models/api"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtConfig("header:Authorization", "Bearer"))
}

// AuthorizationOptional разбирает токен только если он передан, гость проходит без него
func AuthorizationOptional() fiber.Handler {
	cfg := jwtConfig("header:Authorization", "Bearer")
	cfg.Filter = func(ctx *fiber.Ctx) bool {
		return ctx.Get(fiber.HeaderAuthorization) == ""
	}
	return jwtware.New(cfg)
}

// WsAuthorizationRequired браузер не передаёт заголовки при подключении websocket, токен берётся из query
func WsAuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtConfig("query:token", ""))
}

func jwtConfig(tokenLookup, authScheme string) jwtware.Config {
	return jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		TokenLookup: tokenLookup,
		AuthScheme:  authScheme,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		},
	}
}
