package client

import (
	"context"
	"fmt"
	"net/http"
)

// Permission is the wire representation of a permission.
type Permission struct {
	ID          int    `json:"id"`
	TableName   string `json:"table_name"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// PermissionInput is the create payload.
type PermissionInput struct {
	TableName   string  `json:"table_name"`
	Method      string  `json:"method"`
	Description *string `json:"description,omitempty"`
}

// PermissionsClient covers the /role-permissions/permissions endpoints.
type PermissionsClient struct {
	c *Client
}

// CreatePermission adds a permission.
func (p *PermissionsClient) CreatePermission(ctx context.Context, in PermissionInput) (*Permission, error) {
	var out Permission
	if err := p.c.do(ctx, http.MethodPost, "/role-permissions/permissions/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPermissions lists all permissions.
func (p *PermissionsClient) ListPermissions(ctx context.Context) ([]Permission, error) {
	var out []Permission
	err := p.c.do(ctx, http.MethodGet, "/role-permissions/permissions/", nil, &out)
	return out, err
}

// AssignPermission links a permission to a role.
func (p *PermissionsClient) AssignPermission(ctx context.Context, roleID, permissionID int) error {
	body := map[string]int{"role_id": roleID, "permission_id": permissionID}
	return p.c.do(ctx, http.MethodPost, "/role-permissions/permissions/assign", body, nil)
}

// RemovePermission unlinks a permission from a role.
func (p *PermissionsClient) RemovePermission(ctx context.Context, roleID, permissionID int) error {
	path := fmt.Sprintf("/role-permissions/permissions/remove/%d/%d", roleID, permissionID)
	return p.c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListRolePermissions lists the permissions assigned to a role.
func (p *PermissionsClient) ListRolePermissions(ctx context.Context, roleID int) ([]Permission, error) {
	var out []Permission
	err := p.c.do(ctx, http.MethodGet, fmt.Sprintf("/role-permissions/permissions/role/%d", roleID), nil, &out)
	return out, err
}
