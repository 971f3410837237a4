package middleware

import (
	"github.com/gofiber/fiber/v2"

	"hiring-hare-backend/lib/rbac"
	apimodels "hiring-hare-backend/models/api"
)

func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		actor := GetActor(ctx)
		if actor == nil {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}

		permission, found := rbac.Instance.RequiredPermission(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}

		if !rbac.Instance.Guard().HasPermission(*actor, permission) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}
