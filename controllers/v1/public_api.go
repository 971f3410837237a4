package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hiring-hare-backend/controllers"
	postinghandler "hiring-hare-backend/lib/posting"
	apimodels "hiring-hare-backend/models/api"
	reqapimodels "hiring-hare-backend/models/api/requirement"
)

type publicApiController struct {
	controllers.BaseAPIController
}

// InitPublicApiRouters registers the careers page endpoints. Mount them
// before the auth middleware, they serve anonymous visitors.
func InitPublicApiRouters(router fiber.Router) {
	controller := publicApiController{}
	publicRoute := router.Group("public")
	{
		publicRoute.Get("jobs", controller.jobs)
		publicRoute.Get("jobs/:slug", controller.job)
	}
}

// @Summary Open jobs
// @Tags Public
// @Description Live job postings for the careers page, no authentication
// @Param   department      	query   string  false   "department name"
// @Param   location        	query   string  false   "location name"
// @Param   employment_type 	query   string  false   "employment type"
// @Param   work_mode       	query   string  false   "work mode"
// @Param   page            	query   int     false   "page number"
// @Param   limit           	query   int     false   "rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]reqapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/jobs [get]
func (c *publicApiController) jobs(ctx *fiber.Ctx) error {
	var filter reqapimodels.JobFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unable to read query parameters"))
	}
	list, rowCount, err := postinghandler.Instance.Jobs(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "public jobs list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Job detail
// @Tags Public
// @Description One live job posting by its slug, no authentication
// @Param   slug          		path    string  				    	true         "job slug, the requirement number"
// @Success 200 {object} apimodels.Response{data=reqapimodels.JobView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/jobs/{slug} [get]
func (c *publicApiController) job(ctx *fiber.Ctx) error {
	slug, err := c.GetIDByKey(ctx, "slug")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := postinghandler.Instance.JobBySlug(slug)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "public job detail error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
