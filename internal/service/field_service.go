// Package service implements the business logic of the Etree admin
// service on top of the Ent client.
package service

import (
	"context"
	"fmt"
	"strings"

	"etree.io/etree/ent"
	entrequiredfield "etree.io/etree/ent/requiredfield"
	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/registry"
)

// FieldService manages per-role required field definitions.
type FieldService struct {
	client *ent.Client
}

// NewFieldService creates a new FieldService.
func NewFieldService(client *ent.Client) *FieldService {
	return &FieldService{client: client}
}

// FieldCreateInput is the payload for creating a field definition.
type FieldCreateInput struct {
	RoleID           int               `json:"role_id" binding:"required"`
	FieldName        string            `json:"field_name" binding:"required"`
	FieldType        string            `json:"field_type" binding:"required"`
	IsRequired       *bool             `json:"is_required"`
	FilledByRoleID   *int              `json:"filled_by_role_id"`
	EditableByRoleID *int              `json:"editable_by_role_id"`
	Options          []registry.Option `json:"options"`
	Validation       map[string]any    `json:"validation"`
	DisplayOrder     *int              `json:"display_order"`
	IsActive         *bool             `json:"is_active"`
}

// FieldUpdateInput is the payload for partially updating a field
// definition. Absent keys leave the stored value untouched.
type FieldUpdateInput struct {
	FieldName        *string           `json:"field_name"`
	FieldType        *string           `json:"field_type"`
	IsRequired       *bool             `json:"is_required"`
	FilledByRoleID   *int              `json:"filled_by_role_id"`
	EditableByRoleID *int              `json:"editable_by_role_id"`
	Options          []registry.Option `json:"options"`
	Validation       map[string]any    `json:"validation"`
	DisplayOrder     *int              `json:"display_order"`
	IsActive         *bool             `json:"is_active"`
}

// Create adds a field definition for a role. The field name must be
// unique within the role; filled-by and editable-by default to the
// owning role.
func (s *FieldService) Create(ctx context.Context, in FieldCreateInput) (*ent.RequiredField, error) {
	name := strings.TrimSpace(in.FieldName)
	if name == "" {
		return nil, apperrors.ErrInvalidFieldDef.WithMessage("field name cannot be empty")
	}
	fieldType := strings.TrimSpace(in.FieldType)
	if fieldType == "" {
		return nil, apperrors.ErrInvalidFieldDef.WithMessage("field type cannot be empty")
	}
	if err := ValidateFieldDefinition(fieldType, in.Validation, in.Options); err != nil {
		return nil, err
	}

	exists, err := s.client.RequiredField.Query().
		Where(
			entrequiredfield.RoleIDEQ(in.RoleID),
			entrequiredfield.FieldNameEQ(name),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check field name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrFieldNameTaken.WithMessagef(
			"field %q already exists for role %d", name, in.RoleID)
	}

	filledBy := in.RoleID
	if in.FilledByRoleID != nil {
		filledBy = *in.FilledByRoleID
	}
	editableBy := in.RoleID
	if in.EditableByRoleID != nil {
		editableBy = *in.EditableByRoleID
	}

	create := s.client.RequiredField.Create().
		SetRoleID(in.RoleID).
		SetFieldName(name).
		SetFieldType(fieldType).
		SetFilledByRoleID(filledBy).
		SetEditableByRoleID(editableBy).
		SetNillableIsRequired(in.IsRequired).
		SetNillableDisplayOrder(in.DisplayOrder).
		SetNillableIsActive(in.IsActive)
	if in.Options != nil {
		create.SetOptions(in.Options)
	}
	if in.Validation != nil {
		create.SetValidation(in.Validation)
	}

	field, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.ErrFieldNameTaken.WithMessagef(
				"field %q already exists for role %d", name, in.RoleID)
		}
		return nil, fmt.Errorf("create field: %w", err)
	}
	return field, nil
}

// Update applies a partial update to a field definition. Keys absent
// from the input stay unchanged; validation runs against the merged
// definition.
func (s *FieldService) Update(ctx context.Context, fieldID int, in FieldUpdateInput) (*ent.RequiredField, error) {
	field, err := s.Get(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	fieldType := field.FieldType
	if in.FieldType != nil && strings.TrimSpace(*in.FieldType) != "" {
		fieldType = strings.TrimSpace(*in.FieldType)
	}
	validation := field.Validation
	if in.Validation != nil {
		validation = in.Validation
	}
	options := field.Options
	if in.Options != nil {
		options = in.Options
	}
	if err := ValidateFieldDefinition(fieldType, validation, options); err != nil {
		return nil, err
	}

	update := s.client.RequiredField.UpdateOneID(fieldID).
		SetFieldType(fieldType).
		SetNillableIsRequired(in.IsRequired).
		SetNillableFilledByRoleID(in.FilledByRoleID).
		SetNillableEditableByRoleID(in.EditableByRoleID).
		SetNillableDisplayOrder(in.DisplayOrder).
		SetNillableIsActive(in.IsActive)
	if in.FieldName != nil && strings.TrimSpace(*in.FieldName) != "" {
		update.SetFieldName(strings.TrimSpace(*in.FieldName))
	}
	if in.Options != nil {
		update.SetOptions(in.Options)
	}
	if in.Validation != nil {
		update.SetValidation(in.Validation)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.ErrFieldNameTaken.WithErr(err)
		}
		return nil, fmt.Errorf("update field %d: %w", fieldID, err)
	}
	return updated, nil
}

// Get fetches a field definition by id.
func (s *FieldService) Get(ctx context.Context, fieldID int) (*ent.RequiredField, error) {
	field, err := s.client.RequiredField.Get(ctx, fieldID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrFieldNotFound.WithMessagef("required field with id %d not found", fieldID)
		}
		return nil, fmt.Errorf("get field %d: %w", fieldID, err)
	}
	return field, nil
}

// Delete removes a field definition and its stored values.
func (s *FieldService) Delete(ctx context.Context, fieldID int) error {
	err := s.client.RequiredField.DeleteOneID(fieldID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrFieldNotFound.WithMessagef("required field with id %d not found", fieldID)
		}
		return fmt.Errorf("delete field %d: %w", fieldID, err)
	}
	return nil
}

// SetActive flips the is_active flag.
func (s *FieldService) SetActive(ctx context.Context, fieldID int, active bool) error {
	err := s.client.RequiredField.UpdateOneID(fieldID).
		SetIsActive(active).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrFieldNotFound.WithMessagef("required field with id %d not found", fieldID)
		}
		return fmt.Errorf("set field %d active=%t: %w", fieldID, active, err)
	}
	return nil
}

// ListByRole returns every field definition of a role, active or not.
func (s *FieldService) ListByRole(ctx context.Context, roleID int) ([]*ent.RequiredField, error) {
	return s.client.RequiredField.Query().
		Where(entrequiredfield.RoleIDEQ(roleID)).
		Order(ent.Asc(entrequiredfield.FieldDisplayOrder), ent.Asc(entrequiredfield.FieldID)).
		All(ctx)
}

// ListActive returns active field definitions, optionally narrowed to
// one role. Deactivated definitions never appear here.
func (s *FieldService) ListActive(ctx context.Context, roleID *int) ([]*ent.RequiredField, error) {
	q := s.client.RequiredField.Query().
		Where(entrequiredfield.IsActiveEQ(true))
	if roleID != nil {
		q = q.Where(entrequiredfield.RoleIDEQ(*roleID))
	}
	return q.
		Order(ent.Asc(entrequiredfield.FieldDisplayOrder), ent.Asc(entrequiredfield.FieldID)).
		All(ctx)
}

// GetByName fetches a role's field definition by name.
func (s *FieldService) GetByName(ctx context.Context, roleID int, fieldName string) (*ent.RequiredField, error) {
	field, err := s.client.RequiredField.Query().
		Where(
			entrequiredfield.RoleIDEQ(roleID),
			entrequiredfield.FieldNameEQ(fieldName),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrFieldNotFound.WithMessagef(
				"field %q not found for role %d", fieldName, roleID)
		}
		return nil, fmt.Errorf("get field %q for role %d: %w", fieldName, roleID, err)
	}
	return field, nil
}
