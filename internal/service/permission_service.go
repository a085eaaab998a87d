package service

import (
	"context"
	"fmt"
	"strings"

	"etree.io/etree/ent"
	entpermission "etree.io/etree/ent/permission"
	entrole "etree.io/etree/ent/role"
	apperrors "etree.io/etree/internal/pkg/errors"
)

// PermissionService manages table/method permissions and their role
// assignments.
type PermissionService struct {
	client *ent.Client
}

// NewPermissionService creates a new PermissionService.
func NewPermissionService(client *ent.Client) *PermissionService {
	return &PermissionService{client: client}
}

// PermissionInput is the payload for creating a permission.
type PermissionInput struct {
	TableName   string  `json:"table_name" binding:"required"`
	Method      string  `json:"method" binding:"required"`
	Description *string `json:"description"`
}

// Create adds a permission.
func (s *PermissionService) Create(ctx context.Context, in PermissionInput) (*ent.Permission, error) {
	tableName := strings.TrimSpace(in.TableName)
	method := strings.ToUpper(strings.TrimSpace(in.Method))
	if tableName == "" || method == "" {
		return nil, apperrors.ErrBadRequest.WithMessage("table name and method are required")
	}

	perm, err := s.client.Permission.Create().
		SetTableName(tableName).
		SetMethod(method).
		SetNillableDescription(in.Description).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.ErrConflict.WithMessagef(
				"permission %s %s already exists", method, tableName)
		}
		return nil, fmt.Errorf("create permission: %w", err)
	}
	return perm, nil
}

// List returns all permissions.
func (s *PermissionService) List(ctx context.Context) ([]*ent.Permission, error) {
	return s.client.Permission.Query().
		Order(ent.Asc(entpermission.FieldID)).
		All(ctx)
}

// Assign grants a permission to a role. Granting twice is a no-op.
func (s *PermissionService) Assign(ctx context.Context, roleID, permissionID int) error {
	if _, err := s.client.Permission.Get(ctx, permissionID); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrPermissionNotFound.WithMessagef("permission with id %d not found", permissionID)
		}
		return fmt.Errorf("get permission %d: %w", permissionID, err)
	}

	err := s.client.Role.UpdateOneID(roleID).
		AddPermissionIDs(permissionID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrRoleNotFound.WithMessagef("role with id %d not found", roleID)
		}
		if ent.IsConstraintError(err) {
			// already assigned
			return nil
		}
		return fmt.Errorf("assign permission %d to role %d: %w", permissionID, roleID, err)
	}
	return nil
}

// Remove revokes a permission from a role.
func (s *PermissionService) Remove(ctx context.Context, roleID, permissionID int) error {
	err := s.client.Role.UpdateOneID(roleID).
		RemovePermissionIDs(permissionID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrRoleNotFound.WithMessagef("role with id %d not found", roleID)
		}
		return fmt.Errorf("remove permission %d from role %d: %w", permissionID, roleID, err)
	}
	return nil
}

// ListForRole returns the permissions granted to a role.
func (s *PermissionService) ListForRole(ctx context.Context, roleID int) ([]*ent.Permission, error) {
	perms, err := s.client.Role.Query().
		Where(entrole.IDEQ(roleID)).
		QueryPermissions().
		Order(ent.Asc(entpermission.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list permissions for role %d: %w", roleID, err)
	}
	return perms, nil
}
