package document

import (
	"context"
	"io"
	"strings"
	"time"

	common_api "hrms-console/internal/common/api"
	common_models "hrms-console/internal/common/models"
	"hrms-console/internal/common/errs"
	"hrms-console/internal/features/audit"
	"hrms-console/internal/features/system"
	"hrms-console/internal/refcache"
	"hrms-console/internal/upstream"

	"github.com/gofiber/fiber/v2"
)

type DocumentController struct {
	Api          upstream.API
	Cache        *refcache.RefCache
	AuditService audit.AuditService
	Hub          system.Broadcaster
}

func NewDocumentController(api upstream.API, cache *refcache.RefCache, auditService audit.AuditService, hub *system.Hub) *DocumentController {
	return &DocumentController{
		Api:          api,
		Cache:        cache,
		AuditService: auditService,
		Hub:          hub,
	}
}

// ListDocumentTypes returns the document type catalog, always fresh.
func (c *DocumentController) ListDocumentTypes(ctx *fiber.Ctx) error {
	types, err := c.Api.GetDocumentTypes(ctx.UserContext())
	if err != nil {
		return common_api.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"data": types})
}

// CreateDocumentType adds one catalog entry.
func (c *DocumentController) CreateDocumentType(ctx *fiber.Ctx) error {
	var dt upstream.DocumentType
	if err := ctx.BodyParser(&dt); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(dt.Name) == "" {
		return common_api.RespondError(ctx, errs.NewValidation("name", "Document type name is required"))
	}

	created, err := c.Api.CreateDocumentType(ctx.UserContext(), dt)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionCreate, "document-types", created.ID, map[string]common_models.Change{
		"name": {New: created.Name},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "document-types", Action: "create", ID: created.ID})
	c.refreshCache()

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

// UpdateDocumentType renames or re-flags one catalog entry.
func (c *DocumentController) UpdateDocumentType(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var dt upstream.DocumentType
	if err := ctx.BodyParser(&dt); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(dt.Name) == "" {
		return common_api.RespondError(ctx, errs.NewValidation("name", "Document type name is required"))
	}

	updated, err := c.Api.UpdateDocumentType(ctx.UserContext(), id, dt)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionUpdate, "document-types", id, map[string]common_models.Change{
		"name": {New: updated.Name},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "document-types", Action: "update", ID: id})
	c.refreshCache()

	return ctx.JSON(updated)
}

// DeleteDocumentType removes one catalog entry.
func (c *DocumentController) DeleteDocumentType(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.Api.DeleteDocumentType(ctx.UserContext(), id); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionDelete, "document-types", id, nil)
	c.Hub.Broadcast(system.ChangeEvent{Entity: "document-types", Action: "delete", ID: id})
	c.refreshCache()

	return ctx.JSON(fiber.Map{"deleted": id})
}

// refreshCache reloads reference data after a catalog write so module gates
// and role modals see the change without waiting for the cron tick.
func (c *DocumentController) refreshCache() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = c.Cache.Refresh(ctx)
	}()
}

// BulkUpload receives a multipart batch of employee documents and pushes
// them upstream one at a time. The response reports per-file outcomes; a
// partial batch is a normal result, not an error.
func (c *DocumentController) BulkUpload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid multipart body",
		})
	}

	employeeID := ctx.FormValue("employeeId")
	documentTypeID := ctx.FormValue("documentTypeId")
	if employeeID == "" || documentTypeID == "" {
		return common_api.RespondError(ctx, errs.NewValidation("employeeId", "Employee and document type are required"))
	}

	files := form.File["files"]
	if len(files) == 0 {
		return common_api.RespondError(ctx, errs.NewValidation("files", "No files selected"))
	}

	uploader := NewBulkUploader(c.Api)
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return common_api.RespondError(ctx, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return common_api.RespondError(ctx, err)
		}

		uploader.Add(upstream.DocumentUpload{
			EmployeeID:     employeeID,
			DocumentTypeID: documentTypeID,
			File: upstream.FilePart{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			},
		})
	}

	items := uploader.Run(ctx.UserContext())

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionUpload, "documents", uploader.BatchID(), map[string]common_models.Change{
		"employeeId": {New: employeeID},
		"files":      {New: len(items)},
		"failed":     {New: uploader.Failed()},
	})
	if uploader.Succeeded() > 0 {
		c.Hub.Broadcast(system.ChangeEvent{Entity: "documents", Action: "upload", ID: employeeID})
	}

	return ctx.JSON(fiber.Map{
		"batchId":   uploader.BatchID(),
		"files":     items,
		"succeeded": uploader.Succeeded(),
		"failed":    uploader.Failed(),
	})
}
