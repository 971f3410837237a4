package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-hare-backend/controllers"
	authhandler "hiring-hare-backend/lib/auth"
	"hiring-hare-backend/middleware"
	apimodels "hiring-hare-backend/models/api"
	authapimodels "hiring-hare-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

// InitAuthPublicApiRouters mounts login and refresh, no token required.
func InitAuthPublicApiRouters(router fiber.Router) {
	controller := authApiController{}
	router.Route("auth", func(authRoute fiber.Router) {
		authRoute.Post("login", controller.login)
		authRoute.Post("refresh", controller.refresh)
	})
}

// InitAuthApiRouters mounts the authenticated profile endpoint.
func InitAuthApiRouters(router fiber.Router) {
	controller := authApiController{}
	router.Route("auth", func(authRoute fiber.Router) {
		authRoute.Get("profile", controller.profile)
	})
}

// @Summary Login
// @Tags Auth
// @Description Exchanges credentials for an access/refresh token pair
// @Param	body body	 authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
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
	resp, err := authhandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "login error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Refresh
// @Tags Auth
// @Description Issues a fresh token pair for a valid refresh token
// @Param	body body	 authapimodels.RefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authApiController) refresh(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Refresh(payload.RefreshToken)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "token refresh error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Profile
// @Tags Auth
// @Description Returns the authenticated user's profile with roles and permissions
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.ProfileView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/profile [get]
func (c *authApiController) profile(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Profile(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "profile read error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
