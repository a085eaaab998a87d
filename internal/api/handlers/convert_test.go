package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/ent"
	"etree.io/etree/internal/registry"
)

func TestRoleToDTO_NilRegistrationByRoles(t *testing.T) {
	dto := roleToDTO(&ent.Role{ID: 1, Name: "Student"})

	// empty list, not null, on the wire
	assert.NotNil(t, dto.RegistrationByRoles)
	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"registration_by_roles":[]`)
}

func TestFieldToDTO(t *testing.T) {
	editableBy := 4
	isCorrect := true
	field := &ent.RequiredField{
		ID:               7,
		RoleID:           3,
		FieldName:        "Enrolled",
		FieldType:        "mcq",
		IsRequired:       true,
		FilledByRoleID:   3,
		EditableByRoleID: &editableBy,
		Options: []registry.Option{
			{Label: "Yes", IsCorrect: &isCorrect},
		},
		Validation:   map[string]any{},
		DisplayOrder: 2,
		IsActive:     true,
	}

	dto := fieldToDTO(field)
	assert.Equal(t, 7, dto.ID)
	require.NotNil(t, dto.EditableByRoleID)
	assert.Equal(t, 4, *dto.EditableByRoleID)
	assert.Len(t, dto.Options, 1)
}

func TestFieldToDTO_NilCollections(t *testing.T) {
	dto := fieldToDTO(&ent.RequiredField{ID: 1, FieldType: "text"})

	assert.NotNil(t, dto.Options)
	assert.NotNil(t, dto.Validation)
	assert.Nil(t, dto.EditableByRoleID)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"options":[]`)
	assert.Contains(t, string(raw), `"validation":{}`)
	assert.Contains(t, string(raw), `"editable_by_role_id":null`)
}

func TestUserToDTO(t *testing.T) {
	user := &ent.User{
		ID:           "u1",
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "$2a$12$hash",
		RoleID:       3,
		IsActive:     true,
	}

	dto := userToDTO(user)
	assert.Equal(t, "u1", dto.UserID)
	assert.Empty(t, dto.Role) // role edge not loaded

	// the hash must never appear on the wire
	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "password")
}

func TestUserToDTO_WithRoleEdge(t *testing.T) {
	user := &ent.User{ID: "u1", RoleID: 3}
	user.Edges.Role = &ent.Role{ID: 3, Name: "Student"}

	dto := userToDTO(user)
	assert.Equal(t, "Student", dto.Role)
}

func TestListConverters_EmptyInput(t *testing.T) {
	assert.Empty(t, rolesToDTO(nil))
	assert.Empty(t, usersToDTO(nil))
	assert.Empty(t, fieldsToDTO(nil))
	assert.Empty(t, permissionsToDTO(nil))

	// empty slices marshal as [], never null
	raw, err := json.Marshal(rolesToDTO(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
