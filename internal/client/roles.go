package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Role is the wire representation of a role.
type Role struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	RegistrationAllowed bool      `json:"registration_allowed"`
	RegistrationByRoles []int     `json:"registration_by_roles"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// RoleInput is the create/update payload.
type RoleInput struct {
	Name                string  `json:"name"`
	Description         *string `json:"description,omitempty"`
	RegistrationAllowed *bool   `json:"registration_allowed,omitempty"`
	RegistrationByRoles []int   `json:"registration_by_roles,omitempty"`
}

// RolesClient covers the /roles endpoints.
type RolesClient struct {
	c *Client
}

// ListRoles lists all roles.
func (r *RolesClient) ListRoles(ctx context.Context) ([]Role, error) {
	var out []Role
	err := r.c.do(ctx, http.MethodGet, "/roles/", nil, &out)
	return out, err
}

// GetRole fetches one role by id.
func (r *RolesClient) GetRole(ctx context.Context, roleID int) (*Role, error) {
	var out Role
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/roles/%d", roleID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRoleByName fetches one role by name.
func (r *RolesClient) GetRoleByName(ctx context.Context, name string) (*Role, error) {
	var out Role
	if err := r.c.do(ctx, http.MethodGet, "/roles/by-name/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRole adds a role.
func (r *RolesClient) CreateRole(ctx context.Context, in RoleInput) (*Role, error) {
	var out Role
	if err := r.c.do(ctx, http.MethodPost, "/roles/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRole updates a role.
func (r *RolesClient) UpdateRole(ctx context.Context, roleID int, in RoleInput) (*Role, error) {
	var out Role
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("/roles/%d", roleID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRole removes a role; the server refuses while users hold it.
func (r *RolesClient) DeleteRole(ctx context.Context, roleID int) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/roles/%d", roleID), nil, nil)
}

// ListSignupRoles lists roles open for self-registration. Works
// unauthenticated.
func (r *RolesClient) ListSignupRoles(ctx context.Context) ([]Role, error) {
	var out []Role
	err := r.c.do(ctx, http.MethodGet, "/roles/signup-roles", nil, &out)
	return out, err
}

// ListCreatableRoles lists roles the authenticated actor may create
// users for.
func (r *RolesClient) ListCreatableRoles(ctx context.Context) ([]Role, error) {
	var out []Role
	err := r.c.do(ctx, http.MethodGet, "/roles/creatable", nil, &out)
	return out, err
}
