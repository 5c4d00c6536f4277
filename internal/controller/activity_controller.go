package controller

import (
	"github.com/gofiber/fiber/v2"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/pkg/serverutils"
	"sales-crm-be/internal/service"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
}

func NewActivityController(service service.IActivityService) IActivityController {
	return &activityController{service: service}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activity/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
}

func (c *activityController) List(ctx *fiber.Ctx) error {
	_, role := callerIdentity(ctx)

	var q dto.ListActivityLogsQuery
	if err := ctx.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.service.List(ctx.Context(), role, &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list activity logs", res))
}
