package handlers

import (
	"time"

	"etree.io/etree/ent"
	"etree.io/etree/internal/registry"
)

// RoleDTO is the wire representation of a role.
type RoleDTO struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	RegistrationAllowed bool      `json:"registration_allowed"`
	RegistrationByRoles []int     `json:"registration_by_roles"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func roleToDTO(r *ent.Role) RoleDTO {
	byRoles := r.RegistrationByRoles
	if byRoles == nil {
		byRoles = []int{}
	}
	return RoleDTO{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		RegistrationAllowed: r.RegistrationAllowed,
		RegistrationByRoles: byRoles,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func rolesToDTO(roles []*ent.Role) []RoleDTO {
	out := make([]RoleDTO, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleToDTO(r))
	}
	return out
}

// PermissionDTO is the wire representation of a permission.
type PermissionDTO struct {
	ID          int    `json:"id"`
	TableName   string `json:"table_name"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

func permissionToDTO(p *ent.Permission) PermissionDTO {
	return PermissionDTO{
		ID:          p.ID,
		TableName:   p.TableName,
		Method:      p.Method,
		Description: p.Description,
	}
}

func permissionsToDTO(perms []*ent.Permission) []PermissionDTO {
	out := make([]PermissionDTO, 0, len(perms))
	for _, p := range perms {
		out = append(out, permissionToDTO(p))
	}
	return out
}

// FieldDTO is the wire representation of a required-field definition.
type FieldDTO struct {
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

func fieldToDTO(f *ent.RequiredField) FieldDTO {
	options := f.Options
	if options == nil {
		options = []registry.Option{}
	}
	validation := f.Validation
	if validation == nil {
		validation = map[string]any{}
	}
	return FieldDTO{
		ID:               f.ID,
		RoleID:           f.RoleID,
		FieldName:        f.FieldName,
		FieldType:        f.FieldType,
		IsRequired:       f.IsRequired,
		FilledByRoleID:   f.FilledByRoleID,
		EditableByRoleID: f.EditableByRoleID,
		Options:          options,
		Validation:       validation,
		DisplayOrder:     f.DisplayOrder,
		IsActive:         f.IsActive,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}

func fieldsToDTO(fields []*ent.RequiredField) []FieldDTO {
	out := make([]FieldDTO, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldToDTO(f))
	}
	return out
}

// UserDTO is the wire representation of a user account. The password
// hash never leaves the service.
type UserDTO struct {
	UserID         string    `json:"user_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	RoleID         int       `json:"role_id"`
	Role           string    `json:"role,omitempty"`
	ProfilePicture string    `json:"profile_picture"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func userToDTO(u *ent.User) UserDTO {
	dto := UserDTO{
		UserID:         u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		RoleID:         u.RoleID,
		ProfilePicture: u.ProfilePicture,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
	if u.Edges.Role != nil {
		dto.Role = u.Edges.Role.Name
	}
	return dto
}

func usersToDTO(users []*ent.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, userToDTO(u))
	}
	return out
}
