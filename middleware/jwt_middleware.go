package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"hiring-hare-backend/config"
	authutils "hiring-hare-backend/lib/utils/auth-utils"
	apimodels "hiring-hare-backend/models/api"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
}

// AccessTokenRequired rejects refresh tokens presented on API routes.
func AccessTokenRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims := authutils.GetClaims(ctx)
		if tokenType, _ := claims["type"].(string); tokenType != authutils.TokenTypeAccess {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("access token required"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}
