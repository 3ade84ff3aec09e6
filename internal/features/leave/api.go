package leave

import (
	"hrms-console/internal/config"
	"hrms-console/internal/middleware"
	"hrms-console/internal/refcache"

	"github.com/gofiber/fiber/v2"
)

type LeaveApi struct {
	controller *LeaveController
	config     *config.Config
	cache      *refcache.RefCache
}

func NewLeaveApi(controller *LeaveController, cfg *config.Config, cache *refcache.RefCache) *LeaveApi {
	return &LeaveApi{
		controller: controller,
		config:     cfg,
		cache:      cache,
	}
}

// Setup registers leave routes
func (h *LeaveApi) Setup(app *fiber.App) {
	leave := app.Group("/api/leave",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireModule(h.cache, "leave"),
	)

	leave.Get("/", h.controller.ListRequests)
	leave.Post("/", h.controller.CreateRequest)
	leave.Patch("/:id/status", h.controller.ReviewRequest)
}
