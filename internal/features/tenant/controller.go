package tenant

import (
	"context"
	"io"
	"mime/multipart"
	"strconv"
	"time"

	common_api "hrms-console/internal/common/api"
	common_models "hrms-console/internal/common/models"
	"hrms-console/internal/features/audit"
	"hrms-console/internal/features/system"
	"hrms-console/internal/refcache"
	"hrms-console/internal/upstream"

	"github.com/gofiber/fiber/v2"
)

type TenantController struct {
	Api          upstream.API
	Cache        *refcache.RefCache
	AuditService audit.AuditService
	Hub          system.Broadcaster
}

func NewTenantController(api upstream.API, cache *refcache.RefCache, auditService audit.AuditService, hub *system.Hub) *TenantController {
	return &TenantController{
		Api:          api,
		Cache:        cache,
		AuditService: auditService,
		Hub:          hub,
	}
}

// ListTenants returns the tenant list, always fresh from upstream.
func (c *TenantController) ListTenants(ctx *fiber.Ctx) error {
	tenants, err := c.Api.GetAllTenants(ctx.UserContext())
	if err != nil {
		return common_api.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"data": tenants})
}

// CreateTenant provisions a tenant from a multipart form. The response
// carries the one-time admin credentials; they exist nowhere else and are
// gone after this response is consumed.
func (c *TenantController) CreateTenant(ctx *fiber.Ctx) error {
	form := NewForm(c.Api)
	form.OpenForCreate()

	form.SetCompanyName(ctx.FormValue("companyName"))
	form.SetOwnerEmail(ctx.FormValue("ownerEmail"))
	if plan := ctx.FormValue("plan"); plan != "" {
		form.SetPlan(plan)
	}
	form.SetSubdomain(ctx.FormValue("subdomain"))
	applyLimits(ctx, form)
	applyModules(ctx, form)
	if err := attachBranding(ctx, form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	creds, err := form.Submit(ctx.UserContext())
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	// The password never reaches the audit trail or the logs.
	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionProvision, "tenants", "", map[string]common_models.Change{
		"companyName": {New: ctx.FormValue("companyName")},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "tenants", Action: "create"})
	c.refreshCache()

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"admin": creds})
}

// UpdateTenant edits a tenant. The owner email is immutable and ignored if
// sent.
func (c *TenantController) UpdateTenant(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	form := NewForm(c.Api)
	form.OpenForEdit(upstream.Tenant{ID: id})

	form.SetCompanyName(ctx.FormValue("companyName"))
	if plan := ctx.FormValue("plan"); plan != "" {
		form.SetPlan(plan)
	}
	form.SetSubdomain(ctx.FormValue("subdomain"))
	applyLimits(ctx, form)
	applyModules(ctx, form)
	if err := attachBranding(ctx, form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := form.Submit(ctx.UserContext()); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionUpdate, "tenants", id, map[string]common_models.Change{
		"companyName": {New: ctx.FormValue("companyName")},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "tenants", Action: "update", ID: id})
	c.refreshCache()

	return ctx.JSON(fiber.Map{"updated": id})
}

// ToggleStatus flips a tenant between active and suspended. Trial and
// expired tenants are left to the upstream lifecycle.
func (c *TenantController) ToggleStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	current, err := c.Api.GetTenant(ctx.UserContext(), id)
	if err != nil {
		return common_api.RespondError(ctx, err)
	}

	next, ok := ToggledStatus(current.Status)
	if !ok {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "status '" + string(current.Status) + "' cannot be toggled",
		})
	}

	if err := c.Api.UpdateTenantStatus(ctx.UserContext(), id, next); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionStatusToggle, "tenants", id, map[string]common_models.Change{
		"status": {Old: current.Status, New: next},
	})
	c.Hub.Broadcast(system.ChangeEvent{Entity: "tenants", Action: "status", ID: id})

	return ctx.JSON(fiber.Map{"status": next})
}

// DeleteTenant removes a tenant and everything it owns upstream. The
// cascade is irreversible, so the request must carry confirm=true.
func (c *TenantController) DeleteTenant(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if ctx.Query("confirm") != "true" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "deleting a tenant cascades all of its data; pass confirm=true to proceed",
		})
	}

	if err := c.Api.DeleteTenant(ctx.UserContext(), id); err != nil {
		return common_api.RespondError(ctx, err)
	}

	_ = c.AuditService.LogChange(ctx.UserContext(), common_models.AuditActionDelete, "tenants", id, nil)
	c.Hub.Broadcast(system.ChangeEvent{Entity: "tenants", Action: "delete", ID: id})
	c.refreshCache()

	return ctx.JSON(fiber.Map{"deleted": id})
}

// refreshCache reloads reference data in the background after a write that
// may have changed tenant module limits.
func (c *TenantController) refreshCache() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = c.Cache.Refresh(ctx)
	}()
}

func applyLimits(ctx *fiber.Ctx, form *Form) {
	maxEmployees, _ := strconv.Atoi(ctx.FormValue("maxEmployees", "0"))
	maxStorage, _ := strconv.ParseInt(ctx.FormValue("maxStorage", "0"), 10, 64)
	form.SetLimits(maxEmployees, maxStorage)
}

// applyModules narrows the default full-registry selection when the form
// carries explicit module choices.
func applyModules(ctx *fiber.Ctx, form *Form) {
	if mf, err := ctx.MultipartForm(); err == nil {
		if keys, ok := mf.Value["enabledModules"]; ok {
			form.DeselectAllModules()
			for _, k := range keys {
				form.ToggleModule(k)
			}
		}
	}
}

func attachBranding(ctx *fiber.Ctx, form *Form) error {
	if logo, err := ctx.FormFile("logo"); err == nil {
		data, contentType, err := readUpload(logo)
		if err != nil {
			return err
		}
		form.AttachLogo(logo.Filename, contentType, data)
	}
	if favicon, err := ctx.FormFile("favicon"); err == nil {
		data, contentType, err := readUpload(favicon)
		if err != nil {
			return err
		}
		form.AttachFavicon(favicon.Filename, contentType, data)
	}
	return nil
}

func readUpload(header *multipart.FileHeader) ([]byte, string, error) {
	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Header.Get("Content-Type"), nil
}
