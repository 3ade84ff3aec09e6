package asset

import (
	"hrms-console/internal/config"
	"hrms-console/internal/middleware"
	"hrms-console/internal/refcache"

	"github.com/gofiber/fiber/v2"
)

type AssetApi struct {
	controller *AssetController
	config     *config.Config
	cache      *refcache.RefCache
}

func NewAssetApi(controller *AssetController, cfg *config.Config, cache *refcache.RefCache) *AssetApi {
	return &AssetApi{
		controller: controller,
		config:     cfg,
		cache:      cache,
	}
}

// Setup registers asset routes
func (h *AssetApi) Setup(app *fiber.App) {
	categories := app.Group("/api/asset-categories",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireModule(h.cache, "assets"),
	)

	categories.Get("/", h.controller.ListCategories)
	categories.Post("/", h.controller.CreateCategory)
	categories.Put("/:id", h.controller.UpdateCategory)
	categories.Delete("/:id", h.controller.DeleteCategory)
}
