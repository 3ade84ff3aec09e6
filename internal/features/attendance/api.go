package attendance

import (
	"hrms-console/internal/config"
	"hrms-console/internal/middleware"
	"hrms-console/internal/refcache"

	"github.com/gofiber/fiber/v2"
)

type AttendanceApi struct {
	controller *AttendanceController
	config     *config.Config
	cache      *refcache.RefCache
}

func NewAttendanceApi(controller *AttendanceController, cfg *config.Config, cache *refcache.RefCache) *AttendanceApi {
	return &AttendanceApi{
		controller: controller,
		config:     cfg,
		cache:      cache,
	}
}

// Setup registers attendance routes
func (h *AttendanceApi) Setup(app *fiber.App) {
	attendance := app.Group("/api/attendance",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireModule(h.cache, "attendance"),
	)

	attendance.Get("/status", h.controller.GetStatus)
	attendance.Post("/clock-in", h.controller.ClockIn)
	attendance.Post("/clock-out", h.controller.ClockOut)
	attendance.Get("/", h.controller.ListRecords)
	attendance.Get("/export", h.controller.ExportRecords)
}
