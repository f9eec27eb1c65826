package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"job-board-backend/config"
	"job-board-backend/models"
)

func GetToken(userID, name string, role models.UserRole) (tokenString string, err error) {
	return SignToken(userID, name, role, config.Conf.Auth.JWTSecret, time.Second*time.Duration(config.Conf.Auth.JWTExpireInSec))
}

func SignToken(userID, name string, role models.UserRole, secret string, ttl time.Duration) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}
