package middleware

import (
	"slices"

	"hrms-console/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// TenantModules resolves which registry modules a tenant has enabled.
// Implemented by the reference cache; declared here to avoid a dependency
// on the cache package.
type TenantModules interface {
	EnabledModules(tenantID string) ([]string, bool)
}

// RequireModule gates a screen behind the acting tenant's enabled modules.
// Platform operators (no tenant in claims) pass through; so does a tenant
// whose record carries no module restriction.
func RequireModule(resolver TenantModules, moduleKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.OperatorClaimsKey).(*utils.OperatorClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if claims.TenantID == "" {
			return c.Next()
		}

		enabled, restricted := resolver.EnabledModules(claims.TenantID)
		if !restricted {
			return c.Next()
		}

		if !slices.Contains(enabled, moduleKey) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied: module not enabled for this tenant",
			})
		}

		return c.Next()
	}
}
