package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/pkg/serverutils"
	"sales-crm-be/internal/service"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type contactController struct {
	service service.IContactService
}

func NewContactController(service service.IContactService) IContactController {
	return &contactController{service: service}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/contact/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *contactController) Create(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	var req dto.CreateContactRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success create contact", res))
}

func (c *contactController) Show(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid contact id")
	}

	res, err := c.service.Show(ctx.Context(), userId, role, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show contact", res))
}

func (c *contactController) List(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)

	var q dto.ListContactsQuery
	if err := ctx.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.service.List(ctx.Context(), userId, role, &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list contacts", res))
}

func (c *contactController) Update(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid contact id")
	}

	var req dto.UpdateContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update contact", res))
}

func (c *contactController) Delete(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid contact id")
	}

	if err := c.service.Delete(ctx.Context(), userId, role, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete contact", nil))
}
