package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/pkg/serverutils"
	"sales-crm-be/internal/service"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	QueryExplain(ctx *fiber.Ctx) error
	IntentPreview(ctx *fiber.Ctx) error
}

type insightController struct {
	service     service.IInsightService
	rateLimiter fiber.Handler
}

func NewInsightController(service service.IInsightService, rateLimiter fiber.Handler) IInsightController {
	return &insightController{service: service, rateLimiter: rateLimiter}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insight/v1")
	// query-explain exposes generated SQL with row-level scoping baked in,
	// so it requires a verified identity. intent-preview returns only the
	// structured intent and works for anonymous callers too.
	h.Post("query-explain", serverutils.JwtMiddleware, c.rateLimiter, c.QueryExplain)
	h.Post("intent-preview", serverutils.OptionalJwtMiddleware, c.rateLimiter, c.IntentPreview)
}

func (c *insightController) QueryExplain(ctx *fiber.Ctx) error {
	var req dto.QueryExplainRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return fiber.NewError(fiber.StatusBadRequest, "question must not be empty")
	}

	userCtx := userContextFromLocals(ctx)

	res, err := c.service.QueryExplain(ctx.Context(), userCtx, question)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success explain query", res))
}

func (c *insightController) IntentPreview(ctx *fiber.Ctx) error {
	var req dto.IntentPreviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return fiber.NewError(fiber.StatusBadRequest, "question must not be empty")
	}

	userCtx := userContextFromLocals(ctx)

	res, err := c.service.IntentPreview(ctx.Context(), userCtx, question)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success preview intent", res))
}
