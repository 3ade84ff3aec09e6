package employee

import (
	"hrms-console/internal/config"
	"hrms-console/internal/middleware"
	"hrms-console/internal/refcache"

	"github.com/gofiber/fiber/v2"
)

type EmployeeApi struct {
	controller *EmployeeController
	config     *config.Config
	cache      *refcache.RefCache
}

func NewEmployeeApi(controller *EmployeeController, cfg *config.Config, cache *refcache.RefCache) *EmployeeApi {
	return &EmployeeApi{
		controller: controller,
		config:     cfg,
		cache:      cache,
	}
}

// Setup registers employee routes
func (h *EmployeeApi) Setup(app *fiber.App) {
	employees := app.Group("/api/employees",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireModule(h.cache, "employees"),
	)

	employees.Get("/", h.controller.ListEmployees)
	employees.Post("/", h.controller.CreateEmployee)
	employees.Put("/:id", h.controller.UpdateEmployee)
	employees.Delete("/:id", h.controller.DeleteEmployee)
}
