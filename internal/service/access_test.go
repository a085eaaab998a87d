package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"etree.io/etree/ent"
	"etree.io/etree/internal/domain"
	apperrors "etree.io/etree/internal/pkg/errors"
)

func intPtr(n int) *int { return &n }

func TestActor_IsAdmin(t *testing.T) {
	assert.True(t, Actor{RoleName: domain.RoleSuperUser}.IsAdmin())
	assert.True(t, Actor{RoleName: domain.RoleAdmin}.IsAdmin())
	assert.False(t, Actor{RoleName: "Student"}.IsAdmin())
	assert.False(t, Actor{RoleName: ""}.IsAdmin())
}

func TestCheckValueAccess(t *testing.T) {
	const (
		studentRole = 3
		mentorRole  = 4
	)
	field := func(editableBy *int) *ent.RequiredField {
		return &ent.RequiredField{FilledByRoleID: studentRole, EditableByRoleID: editableBy}
	}

	student := Actor{UserID: "u1", RoleID: studentRole, RoleName: "Student"}
	mentor := Actor{UserID: "u2", RoleID: mentorRole, RoleName: "Mentor"}
	admin := Actor{UserID: "u9", RoleID: 1, RoleName: domain.RoleAdmin}

	tests := []struct {
		name     string
		actor    Actor
		target   string
		field    *ent.RequiredField
		exists   bool
		wantCode string
	}{
		{
			name:  "admin bypasses on any target",
			actor: admin, target: "u1", field: field(nil), exists: true,
		},
		{
			name:  "owner first fill with filled-by role",
			actor: student, target: "u1", field: field(nil), exists: false,
		},
		{
			name:  "owner first fill with wrong role",
			actor: mentor, target: "u2", field: field(nil), exists: false,
			wantCode: apperrors.ErrValueNotAllowed.Code,
		},
		{
			name:  "non-admin cannot touch another user",
			actor: student, target: "u2", field: field(intPtr(studentRole)), exists: false,
			wantCode: apperrors.ErrForbidden.Code,
		},
		{
			name:  "edit locked when editable-by unset",
			actor: student, target: "u1", field: field(nil), exists: true,
			wantCode: apperrors.ErrValueLocked.Code,
		},
		{
			name:  "edit allowed for editable-by role",
			actor: student, target: "u1", field: field(intPtr(studentRole)), exists: true,
		},
		{
			name:  "edit denied for other role",
			actor: student, target: "u1", field: field(intPtr(mentorRole)), exists: true,
			wantCode: apperrors.ErrValueLocked.Code,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkValueAccess(tt.actor, tt.target, tt.field, tt.exists)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assertAppErrorCode(t, err, tt.wantCode)
			}
		})
	}
}

func TestCheckDocumentAccess(t *testing.T) {
	field := &ent.RequiredField{FilledByRoleID: 3, EditableByRoleID: intPtr(4)}
	locked := &ent.RequiredField{FilledByRoleID: 3}

	tests := []struct {
		name    string
		actor   Actor
		field   *ent.RequiredField
		allowed bool
	}{
		{"super user", Actor{RoleName: domain.RoleSuperUser}, locked, true},
		{"admin", Actor{RoleName: domain.RoleAdmin}, locked, true},
		{"filled-by role", Actor{RoleID: 3, RoleName: "Student"}, field, true},
		{"editable-by role", Actor{RoleID: 4, RoleName: "Mentor"}, field, true},
		{"unrelated role", Actor{RoleID: 5, RoleName: "Guest"}, field, false},
		{"editable-by unset, other role", Actor{RoleID: 4, RoleName: "Mentor"}, locked, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkDocumentAccess(tt.actor, tt.field)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assertAppErrorCode(t, err, apperrors.ErrForbidden.Code)
			}
		})
	}
}

func TestStoredDocumentName(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]any
		want   string
	}{
		{
			name:   "wrapped document",
			stored: WrapValue(map[string]any{"name": "a1b2.pdf", "size_mb": 1.5}),
			want:   "a1b2.pdf",
		},
		{
			name:   "unwrapped legacy row",
			stored: map[string]any{"name": "old.png"},
			want:   "old.png",
		},
		{
			name:   "non-document value",
			stored: WrapValue("just text"),
			want:   "",
		},
		{
			name:   "missing name",
			stored: WrapValue(map[string]any{"size_mb": 2.0}),
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storedDocumentName(tt.stored))
		})
	}
}
