package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *Client) GetAllTenants(ctx context.Context) ([]Tenant, error) {
	return getList[Tenant](c, ctx, "/tenants")
}

func (c *Client) GetTenant(ctx context.Context, id string) (*Tenant, error) {
	var tenant Tenant
	if err := c.doJSON(ctx, http.MethodGet, "/tenants/"+id, nil, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// CreateTenant provisions a tenant and returns the generated admin
// credentials. This is the only time the API ever discloses them.
func (c *Client) CreateTenant(ctx context.Context, upload TenantUpload) (*AdminCredentials, error) {
	fields, files, err := tenantParts(upload, true)
	if err != nil {
		return nil, err
	}

	var created struct {
		Admin AdminCredentials `json:"admin"`
	}
	if err := c.doMultipart(ctx, http.MethodPost, "/tenants", fields, files, &created); err != nil {
		return nil, err
	}
	return &created.Admin, nil
}

// UpdateTenant sends the same multipart shape minus ownerEmail, which is
// immutable after creation.
func (c *Client) UpdateTenant(ctx context.Context, id string, upload TenantUpload) (*Tenant, error) {
	fields, files, err := tenantParts(upload, false)
	if err != nil {
		return nil, err
	}

	var tenant Tenant
	if err := c.doMultipart(ctx, http.MethodPut, "/tenants/"+id, fields, files, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (c *Client) UpdateTenantStatus(ctx context.Context, id string, status TenantStatus) error {
	body := map[string]string{"status": string(status)}
	return c.doJSON(ctx, http.MethodPatch, "/tenants/"+id+"/status", body, nil)
}

func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/tenants/"+id, nil, nil)
}

func tenantParts(upload TenantUpload, includeEmail bool) (map[string]string, map[string]*FilePart, error) {
	limits, err := json.Marshal(upload.Limits)
	if err != nil {
		return nil, nil, fmt.Errorf("encode limits: %w", err)
	}

	fields := map[string]string{
		"companyName": upload.CompanyName,
		"plan":        string(upload.Plan),
		"subdomain":   upload.Subdomain,
		"limits":      string(limits),
	}
	if includeEmail {
		fields["ownerEmail"] = upload.OwnerEmail
	}

	files := map[string]*FilePart{
		"logo":    upload.Logo,
		"favicon": upload.Favicon,
	}
	return fields, files, nil
}
