package upstream

import (
	"context"
	"net/http"
)

func (c *Client) GetRoles(ctx context.Context) ([]Role, error) {
	return getList[Role](c, ctx, "/roles")
}

func (c *Client) CreateRole(ctx context.Context, payload RolePayload) (*Role, error) {
	var role Role
	if err := c.doJSON(ctx, http.MethodPost, "/roles", payload, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) UpdateRole(ctx context.Context, id string, payload RolePayload) (*Role, error) {
	var role Role
	if err := c.doJSON(ctx, http.MethodPut, "/roles/"+id, payload, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) DeleteRole(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/roles/"+id, nil, nil)
}

func (c *Client) GetPermissions(ctx context.Context) ([]Permission, error) {
	return getList[Permission](c, ctx, "/permissions")
}
