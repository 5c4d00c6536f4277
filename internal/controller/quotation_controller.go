package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/pkg/serverutils"
	"sales-crm-be/internal/service"
)

type IQuotationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type quotationController struct {
	service service.IQuotationService
}

func NewQuotationController(service service.IQuotationService) IQuotationController {
	return &quotationController{service: service}
}

func (c *quotationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quotation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Post(":id/send", c.Send)
	h.Delete(":id", c.Delete)
}

func (c *quotationController) Create(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	var req dto.CreateQuotationRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success create quotation", res))
}

func (c *quotationController) Show(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quotation id")
	}

	res, err := c.service.Show(ctx.Context(), userId, role, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show quotation", res))
}

func (c *quotationController) List(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)

	var q dto.ListQuotationsQuery
	if err := ctx.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.service.List(ctx.Context(), userId, role, &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list quotations", res))
}

func (c *quotationController) Send(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quotation id")
	}

	var req dto.SendQuotationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send quotation", res))
}

func (c *quotationController) Delete(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quotation id")
	}

	if err := c.service.Delete(ctx.Context(), userId, role, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete quotation", nil))
}
