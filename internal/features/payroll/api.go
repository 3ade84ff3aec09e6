package payroll

import (
	"hrms-console/internal/config"
	"hrms-console/internal/middleware"
	"hrms-console/internal/refcache"

	"github.com/gofiber/fiber/v2"
)

type PayrollApi struct {
	controller *PayrollController
	config     *config.Config
	cache      *refcache.RefCache
}

func NewPayrollApi(controller *PayrollController, cfg *config.Config, cache *refcache.RefCache) *PayrollApi {
	return &PayrollApi{
		controller: controller,
		config:     cfg,
		cache:      cache,
	}
}

// Setup registers payroll routes
func (h *PayrollApi) Setup(app *fiber.App) {
	payroll := app.Group("/api/payroll",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireModule(h.cache, "payroll"),
	)

	payroll.Get("/", h.controller.ListRecords)
	payroll.Get("/export", h.controller.ExportRecords)
}
