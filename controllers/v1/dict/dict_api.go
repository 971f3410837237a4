package dict

import (
	"github.com/gofiber/fiber/v2"

	"hiring-hare-backend/controllers"
	dictshandler "hiring-hare-backend/lib/dicts"
	apimodels "hiring-hare-backend/models/api"
	dictapimodels "hiring-hare-backend/models/api/dict"
)

type dictApiController struct {
	controllers.BaseAPIController
}

func InitDictApiRouters(router fiber.Router) {
	controller := dictApiController{}
	router.Route("dict", func(dictRoute fiber.Router) {
		dictRoute.Get("departments", controller.listDepartments)
		dictRoute.Post("departments", controller.createDepartment)
		dictRoute.Get("job_levels", controller.listJobLevels)
		dictRoute.Post("job_levels", controller.createJobLevel)
		dictRoute.Get("locations", controller.listLocations)
		dictRoute.Post("locations", controller.createLocation)
	})
}

// @Summary Departments
// @Tags Dictionary
// @Description All departments sorted by name
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DepartmentView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/departments [get]
func (c *dictApiController) listDepartments(ctx *fiber.Ctx) error {
	resp, err := dictshandler.Instance.ListDepartments()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "department list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create department
// @Tags Dictionary
// @Description Adds a department
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/departments [post]
func (c *dictApiController) createDepartment(ctx *fiber.Ctx) error {
	var payload dictapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := dictshandler.Instance.CreateDepartment(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "department create error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Job levels
// @Tags Dictionary
// @Description All job levels sorted by grade
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.JobLevelView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/job_levels [get]
func (c *dictApiController) listJobLevels(ctx *fiber.Ctx) error {
	resp, err := dictshandler.Instance.ListJobLevels()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "job level list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create job level
// @Tags Dictionary
// @Description Adds a job level
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.JobLevelData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/job_levels [post]
func (c *dictApiController) createJobLevel(ctx *fiber.Ctx) error {
	var payload dictapimodels.JobLevelData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := dictshandler.Instance.CreateJobLevel(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "job level create error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Locations
// @Tags Dictionary
// @Description All locations sorted by name
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.LocationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/locations [get]
func (c *dictApiController) listLocations(ctx *fiber.Ctx) error {
	resp, err := dictshandler.Instance.ListLocations()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "location list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create location
// @Tags Dictionary
// @Description Adds a location
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.LocationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/locations [post]
func (c *dictApiController) createLocation(ctx *fiber.Ctx) error {
	var payload dictapimodels.LocationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := dictshandler.Instance.CreateLocation(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "location create error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
