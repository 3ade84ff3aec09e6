package middleware

import (
	"context"

	common_models "hrms-console/internal/common/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDMiddleware accepts an X-Request-ID header or mints one, and adds
// it to the request context so the upstream client can forward it.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := context.WithValue(c.UserContext(), common_models.RequestIDKey, reqID)
		c.SetUserContext(ctx)
		c.Set("X-Request-ID", reqID)

		return c.Next()
	}
}
