package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sales-crm-be/pkg/nlquery"
)

// callerIdentity pulls the authenticated identity out of fiber locals set
// by the JWT middleware.
func callerIdentity(ctx *fiber.Ctx) (uuid.UUID, string) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)
	return userId, role
}

// userContextFromLocals builds the pipeline caller context. Requests that
// carried no (or an invalid) token resolve to the anonymous unprivileged
// context.
func userContextFromLocals(ctx *fiber.Ctx) *nlquery.UserContext {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil || userId == uuid.Nil {
		return nlquery.AnonymousContext()
	}

	role, _ := ctx.Locals("role").(string)
	if role == "" {
		role = "user"
	}

	var employeeId *uuid.UUID
	if employeeIdStr, ok := ctx.Locals("employee_id").(string); ok && employeeIdStr != "" {
		if parsed, err := uuid.Parse(employeeIdStr); err == nil {
			employeeId = &parsed
		}
	}

	return nlquery.NewUserContext(userId, employeeId, role)
}
