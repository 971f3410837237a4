package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-hare-backend/controllers"
	approvalhandler "hiring-hare-backend/lib/approval"
	"hiring-hare-backend/middleware"
	apimodels "hiring-hare-backend/models/api"
)

type approvalsApiController struct {
	controllers.BaseAPIController
}

func InitApprovalsApiRouters(router fiber.Router) {
	controller := approvalsApiController{}
	router.Get("requirement/:id/approvals", controller.history)
	router.Get("approvals/pending", controller.pending)
}

// @Summary Approval history
// @Tags Approval
// @Description Full approval ledger of a requirement, oldest entry first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]reqapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requirement/{id}/approvals [get]
func (c *approvalsApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := approvalhandler.Instance.History(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "approval history error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Pending approvals
// @Tags Approval
// @Description The caller's unresolved approval tasks, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reqapimodels.PendingApprovalView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approvals/pending [get]
func (c *approvalsApiController) pending(ctx *fiber.Ctx) error {
	resp, err := approvalhandler.Instance.Inbox(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "pending approvals error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
