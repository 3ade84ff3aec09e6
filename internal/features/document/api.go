package document

import (
	"hrms-console/internal/config"
	"hrms-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DocumentApi struct {
	controller *DocumentController
	config     *config.Config
}

func NewDocumentApi(controller *DocumentController, cfg *config.Config) *DocumentApi {
	return &DocumentApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers document routes
func (h *DocumentApi) Setup(app *fiber.App) {
	types := app.Group("/api/document-types", middleware.AuthMiddleware(h.config.SkipAuth))
	types.Get("/", h.controller.ListDocumentTypes)
	types.Post("/", h.controller.CreateDocumentType)
	types.Put("/:id", h.controller.UpdateDocumentType)
	types.Delete("/:id", h.controller.DeleteDocumentType)

	docs := app.Group("/api/documents", middleware.AuthMiddleware(h.config.SkipAuth))
	docs.Post("/bulk", h.controller.BulkUpload)
}
