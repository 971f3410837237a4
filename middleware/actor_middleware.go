package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"hiring-hare-backend/db"
	usersstore "hiring-hare-backend/lib/users/store"
	apimodels "hiring-hare-backend/models/api"
	dbmodels "hiring-hare-backend/models/db"
)

const actorKey = "actor"

// ActorLoader resolves the token subject into a full user record with roles
// and permissions, once per request. Inactive and vanished users are cut off
// here even when their token is still valid.
func ActorLoader() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("authorization required"))
		}
		user, err := usersstore.NewInstance(db.DB).GetByID(userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("actor lookup failed")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
		}
		if user == nil || !user.IsActive {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("authorization required"))
		}
		ctx.Locals(actorKey, user)
		return ctx.Next()
	}
}

func GetActor(ctx *fiber.Ctx) *dbmodels.User {
	if user, ok := ctx.Locals(actorKey).(*dbmodels.User); ok {
		return user
	}
	return nil
}
