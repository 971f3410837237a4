package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-hare-backend/controllers"
	postinghandler "hiring-hare-backend/lib/posting"
	apimodels "hiring-hare-backend/models/api"
	reqapimodels "hiring-hare-backend/models/api/requirement"
)

type postingApiController struct {
	controllers.BaseAPIController
}

func InitPostingApiRouters(router fiber.Router) {
	controller := postingApiController{}
	router.Post("requirement/:id/publish", controller.publish)
	router.Put("requirement/:id/posting_status", controller.setStatus)
	router.Post("postings/list", controller.list)
}

// @Summary Publish
// @Tags Posting
// @Description Publishes an approved or active requirement as a job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=reqapimodels.RequirementView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirement/{id}/publish [post]
func (c *postingApiController) publish(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := postinghandler.Instance.Publish(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "posting publish error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Posting status
// @Tags Posting
// @Description Pauses, resumes or closes a published posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.PostingStatusData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirement/{id}/posting_status [put]
func (c *postingApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload reqapimodels.PostingStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = postinghandler.Instance.SetStatus(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "posting status error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List postings
// @Tags Posting
// @Description Published postings with pagination
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reqapimodels.PostingFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]reqapimodels.RequirementView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/postings/list [post]
func (c *postingApiController) list(ctx *fiber.Ctx) error {
	var payload reqapimodels.PostingFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := postinghandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "posting list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
