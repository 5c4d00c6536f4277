package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sales-crm-be/internal/pkg/logger"
	"sales-crm-be/pkg/nlquery"
)

// ErrorHandlerMiddleware catches errors returned by handlers, logs them
// with request context and converts them into structured JSON responses.
//
// Mapping: fiber errors keep their status code; classification and query
// build failures surface as 500 (they indicate a pipeline defect, not bad
// caller input); everything else is a generic 500.
func ErrorHandlerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		details := map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code >= fiber.StatusInternalServerError {
				sysLogger.Error("http", "request failed", details)
			} else {
				sysLogger.Warn("http", "request rejected", details)
			}
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message, nil))
		}

		if be, ok := nlquery.AsBuildError(err); ok {
			// Include the offending intent so the defect can be diagnosed
			sysLogger.Error("insight", "query build failed", details)
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(be.Error(), fiber.Map{"intent": be.Intent}))
		}

		if nlquery.IsClassificationError(err) {
			sysLogger.Error("insight", "intent classification failed", details)
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(err.Error(), nil))
		}

		sysLogger.Error("http", "unhandled error", details)
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error", nil))
	}
}
