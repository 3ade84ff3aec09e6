package asset

import (
	"context"
	"strings"
	"time"

	common_api "hrms-console/internal/common/api"
	"hrms-console/internal/common/errs"
	common_models "hrms-console/internal/common/models"
	"hrms-console/internal/features/audit"
	"hrms-console/internal/features/system"
	"hrms-console/internal/refcache"
	"hrms-console/internal/upstream"

	"github.com/gofiber/fiber/v2"
)

// AssetController manages the asset category catalog. Categories are pure
// pass-through entities; the console adds validation, auditing and change
// broadcasts on top of the upstream CRUD.
type AssetController struct {
	Api          upstream.API
	Cache        *refcache.RefCache
	AuditService audit.AuditService
	Hub          system.Broadcaster
}

func NewAssetController(api upstream.API, cache *refcache.RefCache, auditService audit.AuditService, hub *system.Hub) *AssetController {
	return &AssetController{
		Api:          api,
		Cache:        cache,
		AuditService: auditService,
		Hub:          hub,
	}
}

// refreshCache reloads reference data after a catalog write so role modals
// see the change without waiting for the cron tick.
func (c *AssetController) refreshCache() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = c.Cache.Refresh(ctx)
	}()
}

func (c *AssetController) ListCategories(ctx *fiber.Ctx) error {
	categories, err := c.Api.GetAssetCategories(ctx.UserContext())
	if err != nil {
		return common_api.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"data": categories})
}

func (c *AssetController) CreateCategory(ctx *fiber.Ctx) error {
	var cat upstream.AssetCategory
	if err := ctx.BodyParser(&cat); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(cat.Name) == "" {
		return common_api.RespondError(ctx, errs.NewValidation("name", "Category name is required"))
	}

	created, err := c.Api.CreateAssetCategory(ctx.UserContext(), cat)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionCreate, "asset-categories", created.ID, map[string]common_models.Change{
		"name": {New: created.Name},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "asset-categories", Action: "create", ID: created.ID})
	c.refreshCache()

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *AssetController) UpdateCategory(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var cat upstream.AssetCategory
	if err := ctx.BodyParser(&cat); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(cat.Name) == "" {
		return common_api.RespondError(ctx, errs.NewValidation("name", "Category name is required"))
	}

	updated, err := c.Api.UpdateAssetCategory(ctx.UserContext(), id, cat)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionUpdate, "asset-categories", id, map[string]common_models.Change{
		"name": {New: updated.Name},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "asset-categories", Action: "update", ID: id})
	c.refreshCache()

	return ctx.JSON(updated)
}

func (c *AssetController) DeleteCategory(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.Api.DeleteAssetCategory(ctx.UserContext(), id); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionDelete, "asset-categories", id, nil)
	c.Hub.Broadcast(system.ChangeEvent{Entity: "asset-categories", Action: "delete", ID: id})
	c.refreshCache()

	return ctx.JSON(fiber.Map{"deleted": id})
}
