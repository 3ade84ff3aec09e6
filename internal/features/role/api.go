package role

import (
	"hrms-console/internal/config"
	"hrms-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RoleApi struct {
	controller *RoleController
	config     *config.Config
}

func NewRoleApi(controller *RoleController, cfg *config.Config) *RoleApi {
	return &RoleApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers role routes
func (h *RoleApi) Setup(app *fiber.App) {
	roles := app.Group("/api/roles", middleware.AuthMiddleware(h.config.SkipAuth))

	roles.Get("/", h.controller.ListRoles)
	roles.Get("/reference", h.controller.GetReference)
	roles.Post("/", h.controller.CreateRole)
	roles.Put("/:id", h.controller.UpdateRole)
	roles.Delete("/:id", h.controller.DeleteRole)
}
