package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/pkg/serverutils"
	"sales-crm-be/internal/service"
)

type IAccountController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type accountController struct {
	service service.IAccountService
}

func NewAccountController(service service.IAccountService) IAccountController {
	return &accountController{service: service}
}

func (c *accountController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/account/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *accountController) Create(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	var req dto.CreateAccountRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success create account", res))
}

func (c *accountController) Show(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid account id")
	}

	res, err := c.service.Show(ctx.Context(), userId, role, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show account", res))
}

func (c *accountController) List(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)

	var q dto.ListAccountsQuery
	if err := ctx.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.service.List(ctx.Context(), userId, role, &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list accounts", res))
}

func (c *accountController) Update(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid account id")
	}

	var req dto.UpdateAccountRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success update account", res))
}

func (c *accountController) Delete(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid account id")
	}

	if err := c.service.Delete(ctx.Context(), userId, role, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete account", nil))
}
