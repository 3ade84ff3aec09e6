package api

import (
	"hrms-console/internal/common/errs"
	"hrms-console/internal/upstream"

	"github.com/gofiber/fiber/v2"
)

// RespondError maps the console's error taxonomy onto HTTP. Validation
// failures are the operator's to fix; upstream errors keep their status; the
// rest is a bad gateway, since the console itself holds no entity state that
// could be corrupt.
func RespondError(ctx *fiber.Ctx, err error) error {
	if errs.IsValidation(err) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if apiErr, ok := upstream.AsAPIError(err); ok {
		return ctx.Status(apiErr.Status).JSON(fiber.Map{
			"error": apiErr.Message,
		})
	}
	return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": err.Error(),
	})
}
