package role

import (
	common_api "hrms-console/internal/common/api"
	common_models "hrms-console/internal/common/models"
	"hrms-console/internal/features/audit"
	"hrms-console/internal/features/system"
	"hrms-console/internal/middleware"
	"hrms-console/internal/refcache"
	"hrms-console/internal/upstream"

	"github.com/gofiber/fiber/v2"
)

type RoleController struct {
	Api          upstream.API
	Cache        *refcache.RefCache
	AuditService audit.AuditService
	Hub          system.Broadcaster
}

func NewRoleController(api upstream.API, cache *refcache.RefCache, auditService audit.AuditService, hub *system.Hub) *RoleController {
	return &RoleController{
		Api:          api,
		Cache:        cache,
		AuditService: auditService,
		Hub:          hub,
	}
}

// restriction resolves the acting tenant's enabled modules. Platform
// operators and unrestricted tenants get nil: the full registry.
func (c *RoleController) restriction(ctx *fiber.Ctx) []string {
	claims := middleware.Claims(ctx)
	if claims == nil || claims.TenantID == "" {
		return nil
	}
	modules, restricted := c.Cache.EnabledModules(claims.TenantID)
	if !restricted {
		return nil
	}
	return modules
}

// ListRoles returns the role list, always fresh from upstream.
func (c *RoleController) ListRoles(ctx *fiber.Ctx) error {
	roles, err := c.Api.GetRoles(ctx.UserContext())
	if err != nil {
		return common_api.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"data": roles})
}

// GetReference returns everything the role modal needs to render: grouped
// permissions, document types, and the module keys offered to this tenant.
func (c *RoleController) GetReference(ctx *fiber.Ctx) error {
	editor := NewEditor(c.Api, c.restriction(ctx))
	return ctx.JSON(fiber.Map{
		"permissionGroups": GroupPermissions(c.Cache.Permissions()),
		"documentTypes":    c.Cache.DocumentTypes(),
		"modules":          editor.modules.Offered(),
	})
}

// CreateRole submits a new role draft.
func (c *RoleController) CreateRole(ctx *fiber.Ctx) error {
	var req RoleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	editor := NewEditor(c.Api, c.restriction(ctx))
	editor.OpenForCreate()
	seedEditor(editor, req)

	saved, err := editor.Submit(ctx.UserContext())
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionCreate, "roles", saved.ID, map[string]common_models.Change{
		"name": {New: saved.Name},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "roles", Action: "create", ID: saved.ID})

	return ctx.Status(fiber.StatusCreated).JSON(saved)
}

// UpdateRole submits an edited role draft.
func (c *RoleController) UpdateRole(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var req RoleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	editor := NewEditor(c.Api, c.restriction(ctx))
	editor.OpenForEdit(upstream.Role{ID: id})
	seedEditor(editor, req)

	saved, err := editor.Submit(ctx.UserContext())
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionUpdate, "roles", id, map[string]common_models.Change{
		"name": {New: saved.Name},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "roles", Action: "update", ID: id})

	return ctx.JSON(saved)
}

// DeleteRole removes a role upstream.
func (c *RoleController) DeleteRole(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.Api.DeleteRole(ctx.UserContext(), id); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionDelete, "roles", id, nil)
	c.Hub.Broadcast(system.ChangeEvent{Entity: "roles", Action: "delete", ID: id})

	return ctx.JSON(fiber.Map{"deleted": id})
}

func seedEditor(editor *Editor, req RoleRequest) {
	editor.SetName(req.Name)
	for _, id := range req.Permissions {
		editor.TogglePermission(id)
	}
	for _, key := range req.AccessibleModules {
		editor.ToggleModule(key)
	}
	for _, id := range req.MandatoryDocuments {
		editor.ToggleDocument(id)
	}
}
