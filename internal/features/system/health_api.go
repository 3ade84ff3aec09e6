package system

import (
	"time"

	"hrms-console/internal/refcache"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	Cache *refcache.RefCache
}

func NewHealthApi(cache *refcache.RefCache) *HealthApi {
	return &HealthApi{Cache: cache}
}

func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":       "ok",
			"refreshed_at": h.Cache.RefreshedAt().Format(time.RFC3339),
		})
	})
}
