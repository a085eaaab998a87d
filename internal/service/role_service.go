package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"etree.io/etree/ent"
	entrole "etree.io/etree/ent/role"
	entuser "etree.io/etree/ent/user"
	"etree.io/etree/internal/domain"
	apperrors "etree.io/etree/internal/pkg/errors"
)

// RoleService manages roles and their registration rules.
type RoleService struct {
	client *ent.Client
}

// NewRoleService creates a new RoleService.
func NewRoleService(client *ent.Client) *RoleService {
	return &RoleService{client: client}
}

// RoleInput is the payload for creating or updating a role.
type RoleInput struct {
	Name                string  `json:"name"`
	Description         *string `json:"description"`
	RegistrationAllowed *bool   `json:"registration_allowed"`
	RegistrationByRoles []int   `json:"registration_by_roles"`
}

// Create adds a role. Role names are unique.
func (s *RoleService) Create(ctx context.Context, in RoleInput) (*ent.Role, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.ErrBadRequest.WithMessage("role name cannot be empty")
	}

	create := s.client.Role.Create().
		SetName(name).
		SetNillableDescription(in.Description).
		SetNillableRegistrationAllowed(in.RegistrationAllowed)
	if in.RegistrationByRoles != nil {
		create.SetRegistrationByRoles(in.RegistrationByRoles)
	}

	role, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.ErrRoleNameTaken.WithMessagef("role %q already exists", name)
		}
		return nil, fmt.Errorf("create role %q: %w", name, err)
	}
	return role, nil
}

// Get fetches a role by id.
func (s *RoleService) Get(ctx context.Context, roleID int) (*ent.Role, error) {
	role, err := s.client.Role.Get(ctx, roleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrRoleNotFound.WithMessagef("role with id %d not found", roleID)
		}
		return nil, fmt.Errorf("get role %d: %w", roleID, err)
	}
	return role, nil
}

// GetByName fetches a role by its unique name.
func (s *RoleService) GetByName(ctx context.Context, name string) (*ent.Role, error) {
	role, err := s.client.Role.Query().
		Where(entrole.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrRoleNotFound.WithMessagef("role %q not found", name)
		}
		return nil, fmt.Errorf("get role %q: %w", name, err)
	}
	return role, nil
}

// List returns all roles.
func (s *RoleService) List(ctx context.Context) ([]*ent.Role, error) {
	return s.client.Role.Query().
		Order(ent.Asc(entrole.FieldID)).
		All(ctx)
}

// Update applies a partial update to a role.
func (s *RoleService) Update(ctx context.Context, roleID int, in RoleInput) (*ent.Role, error) {
	update := s.client.Role.UpdateOneID(roleID).
		SetNillableDescription(in.Description).
		SetNillableRegistrationAllowed(in.RegistrationAllowed)
	if name := strings.TrimSpace(in.Name); name != "" {
		update.SetName(name)
	}
	if in.RegistrationByRoles != nil {
		update.SetRegistrationByRoles(in.RegistrationByRoles)
	}

	role, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrRoleNotFound.WithMessagef("role with id %d not found", roleID)
		}
		if ent.IsConstraintError(err) {
			return nil, apperrors.ErrRoleNameTaken.WithErr(err)
		}
		return nil, fmt.Errorf("update role %d: %w", roleID, err)
	}
	return role, nil
}

// Delete removes a role. Refused while users hold it.
func (s *RoleService) Delete(ctx context.Context, roleID int) error {
	inUse, err := s.client.User.Query().
		Where(entuser.RoleIDEQ(roleID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check role %d users: %w", roleID, err)
	}
	if inUse {
		return apperrors.ErrConflict.WithMessage(
			"cannot delete role because it either has users assigned or does not exist")
	}

	if err := s.client.Role.DeleteOneID(roleID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrRoleNotFound.WithMessagef("role with id %d not found", roleID)
		}
		return fmt.Errorf("delete role %d: %w", roleID, err)
	}
	return nil
}

// SignupRoles returns roles open for self-registration.
func (s *RoleService) SignupRoles(ctx context.Context) ([]*ent.Role, error) {
	return s.client.Role.Query().
		Where(entrole.RegistrationAllowedEQ(true)).
		Order(ent.Asc(entrole.FieldID)).
		All(ctx)
}

// CreatableRoles returns the roles the actor may create users for.
// Super User may create any role; Admin any role except Super User and
// their own; everyone else only roles whose registration_by_roles list
// contains the actor's role, never Admin and never their own role.
func (s *RoleService) CreatableRoles(ctx context.Context, actorRoleID int, actorRoleName string) ([]*ent.Role, error) {
	roles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*ent.Role, 0, len(roles))
	for _, role := range roles {
		switch actorRoleName {
		case domain.RoleSuperUser:
			out = append(out, role)
		case domain.RoleAdmin:
			if role.Name != domain.RoleSuperUser && role.ID != actorRoleID {
				out = append(out, role)
			}
		default:
			if role.Name == domain.RoleAdmin || role.ID == actorRoleID {
				continue
			}
			if slices.Contains(role.RegistrationByRoles, actorRoleID) {
				out = append(out, role)
			}
		}
	}
	return out, nil
}
