package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/pkg/serverutils"
	"sales-crm-be/internal/service"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	UpdateStage(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type leadController struct {
	service service.ILeadService
}

func NewLeadController(service service.ILeadService) ILeadController {
	return &leadController{service: service}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lead/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/stage", c.UpdateStage)
	h.Delete(":id", c.Delete)
}

func (c *leadController) Create(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	var req dto.CreateLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create lead", res))
}

func (c *leadController) Show(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid lead id")
	}

	res, err := c.service.Show(ctx.Context(), userId, role, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show lead", res))
}

func (c *leadController) List(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)

	var q dto.ListLeadsQuery
	if err := ctx.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.service.List(ctx.Context(), userId, role, &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list leads", res))
}

func (c *leadController) UpdateStage(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid lead id")
	}

	var req dto.UpdateLeadStageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStage(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update lead stage", res))
}

func (c *leadController) Delete(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid lead id")
	}

	if err := c.service.Delete(ctx.Context(), userId, role, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete lead", nil))
}
