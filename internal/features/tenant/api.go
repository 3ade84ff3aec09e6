package tenant

import (
	"hrms-console/internal/config"
	"hrms-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TenantApi struct {
	controller *TenantController
	config     *config.Config
}

func NewTenantApi(controller *TenantController, cfg *config.Config) *TenantApi {
	return &TenantApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers tenant routes
func (h *TenantApi) Setup(app *fiber.App) {
	tenants := app.Group("/api/tenants", middleware.AuthMiddleware(h.config.SkipAuth))

	tenants.Get("/", h.controller.ListTenants)
	tenants.Post("/", h.controller.CreateTenant)
	tenants.Put("/:id", h.controller.UpdateTenant)
	tenants.Patch("/:id/status", h.controller.ToggleStatus)
	tenants.Delete("/:id", h.controller.DeleteTenant)
}
