package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"etree.io/etree/internal/registry"
)

// Field is the wire representation of a field definition.
type Field struct {
	ID               int               `json:"id"`
	RoleID           int               `json:"role_id"`
	FieldName        string            `json:"field_name"`
	FieldType        string            `json:"field_type"`
	IsRequired       bool              `json:"is_required"`
	FilledByRoleID   int               `json:"filled_by_role_id"`
	EditableByRoleID *int              `json:"editable_by_role_id"`
	Options          []registry.Option `json:"options"`
	Validation       map[string]any    `json:"validation"`
	DisplayOrder     int               `json:"display_order"`
	IsActive         bool              `json:"is_active"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// FieldsClient covers the /user-required-fields endpoints.
type FieldsClient struct {
	c *Client

	// validators-by-type is static server-side; cache per session.
	mu         sync.Mutex
	validators map[string]map[string]string
}

// GetFieldsByRole lists all definitions of a role, active or not.
func (f *FieldsClient) GetFieldsByRole(ctx context.Context, roleID int) ([]Field, error) {
	var out []Field
	err := f.c.do(ctx, http.MethodGet, fmt.Sprintf("/user-required-fields/role/%d", roleID), nil, &out)
	return out, err
}

// GetActiveFields lists active definitions, optionally scoped to a role.
func (f *FieldsClient) GetActiveFields(ctx context.Context, roleID *int) ([]Field, error) {
	path := "/user-required-fields/active"
	if roleID != nil {
		path += "?role_id=" + url.QueryEscape(fmt.Sprint(*roleID))
	}
	var out []Field
	err := f.c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// CreateField submits a new definition payload (see fieldform).
func (f *FieldsClient) CreateField(ctx context.Context, payload map[string]any) (*Field, error) {
	var out Field
	if err := f.c.do(ctx, http.MethodPost, "/user-required-fields/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateField submits a partial update; keys absent from payload stay
// untouched server-side.
func (f *FieldsClient) UpdateField(ctx context.Context, fieldID int, payload map[string]any) (*Field, error) {
	var out Field
	if err := f.c.do(ctx, http.MethodPut, fmt.Sprintf("/user-required-fields/%d", fieldID), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteField removes a definition.
func (f *FieldsClient) DeleteField(ctx context.Context, fieldID int) error {
	return f.c.do(ctx, http.MethodDelete, fmt.Sprintf("/user-required-fields/%d", fieldID), nil, nil)
}

// ActivateField re-enables a definition.
func (f *FieldsClient) ActivateField(ctx context.Context, fieldID int) error {
	return f.c.do(ctx, http.MethodPatch, fmt.Sprintf("/user-required-fields/%d/activate", fieldID), nil, nil)
}

// DeactivateField hides a definition from active forms.
func (f *FieldsClient) DeactivateField(ctx context.Context, fieldID int) error {
	return f.c.do(ctx, http.MethodPatch, fmt.Sprintf("/user-required-fields/%d/deactivate", fieldID), nil, nil)
}

// GetFieldByName fetches one definition by role and name.
func (f *FieldsClient) GetFieldByName(ctx context.Context, roleID int, fieldName string) (*Field, error) {
	var out Field
	path := fmt.Sprintf("/user-required-fields/role/%d/name/%s", roleID, url.PathEscape(fieldName))
	if err := f.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFieldTypes lists the supported field types.
func (f *FieldsClient) GetFieldTypes(ctx context.Context) ([]string, error) {
	var out []string
	err := f.c.do(ctx, http.MethodGet, "/user-required-fields/field-types", nil, &out)
	return out, err
}

// GetValidatorsByType returns validator name → value kind for a field
// type, cached for the life of the client.
func (f *FieldsClient) GetValidatorsByType(ctx context.Context, fieldType string) (map[string]string, error) {
	f.mu.Lock()
	if cached, ok := f.validators[fieldType]; ok {
		f.mu.Unlock()
		return cached, nil
	}
	f.mu.Unlock()

	var out map[string]string
	path := "/user-required-fields/validators-by-type/" + url.PathEscape(fieldType)
	if err := f.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.validators[fieldType] = out
	f.mu.Unlock()
	return out, nil
}
