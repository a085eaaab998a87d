package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/ent"
	"etree.io/etree/internal/domain"
	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/service"
	"etree.io/etree/internal/testutil"
)

func strPtr(s string) *string { return &s }
func truePtr() *bool          { b := true; return &b }

func TestRoleService_CreateAndGet(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "role_service_create")
	svc := service.NewRoleService(client)
	ctx := context.Background()

	role, err := svc.Create(ctx, service.RoleInput{
		Name:                "  Student  ",
		Description:         strPtr("Enrolled learners"),
		RegistrationAllowed: truePtr(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Student", role.Name)
	assert.True(t, role.RegistrationAllowed)

	got, err := svc.Get(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, role.ID, got.ID)

	byName, err := svc.GetByName(ctx, "Student")
	require.NoError(t, err)
	assert.Equal(t, role.ID, byName.ID)

	_, err = svc.Create(ctx, service.RoleInput{Name: "Student"})
	requireAppCode(t, err, apperrors.ErrRoleNameTaken.Code)

	_, err = svc.Create(ctx, service.RoleInput{Name: "   "})
	requireAppCode(t, err, apperrors.ErrBadRequest.Code)

	_, err = svc.Get(ctx, 999999)
	requireAppCode(t, err, apperrors.ErrRoleNotFound.Code)
}

func TestRoleService_Update(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "role_service_update")
	svc := service.NewRoleService(client)
	ctx := context.Background()

	role, err := svc.Create(ctx, service.RoleInput{Name: "Mentor"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, role.ID, service.RoleInput{
		Description:         strPtr("Guides students"),
		RegistrationByRoles: []int{role.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mentor", updated.Name)
	assert.Equal(t, "Guides students", updated.Description)
	assert.Equal(t, []int{role.ID}, updated.RegistrationByRoles)

	// blank name leaves the existing name untouched
	updated, err = svc.Update(ctx, role.ID, service.RoleInput{Name: "  "})
	require.NoError(t, err)
	assert.Equal(t, "Mentor", updated.Name)

	_, err = svc.Update(ctx, 999999, service.RoleInput{Name: "X"})
	requireAppCode(t, err, apperrors.ErrRoleNotFound.Code)
}

func TestRoleService_Delete(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "role_service_delete")
	svc := service.NewRoleService(client)
	ctx := context.Background()

	role, err := svc.Create(ctx, service.RoleInput{Name: "Temp"})
	require.NoError(t, err)

	occupied, err := svc.Create(ctx, service.RoleInput{Name: "Occupied"})
	require.NoError(t, err)
	_, err = client.User.Create().
		SetID("01890000-0000-7000-8000-000000000001").
		SetFullName("Holder").
		SetEmail("holder@example.com").
		SetPasswordHash("x").
		SetRoleID(occupied.ID).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, role.ID))
	_, err = svc.Get(ctx, role.ID)
	requireAppCode(t, err, apperrors.ErrRoleNotFound.Code)

	err = svc.Delete(ctx, occupied.ID)
	requireAppCode(t, err, apperrors.ErrConflict.Code)

	err = svc.Delete(ctx, 999999)
	requireAppCode(t, err, apperrors.ErrRoleNotFound.Code)
}

func TestRoleService_SignupRoles(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "role_service_signup")
	svc := service.NewRoleService(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, service.RoleInput{Name: "Student", RegistrationAllowed: truePtr()})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.RoleInput{Name: "Staff"})
	require.NoError(t, err)

	open, err := svc.SignupRoles(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Student", open[0].Name)
}

func TestRoleService_CreatableRoles(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "role_service_creatable")
	svc := service.NewRoleService(client)
	ctx := context.Background()

	super, err := svc.Create(ctx, service.RoleInput{Name: domain.RoleSuperUser})
	require.NoError(t, err)
	admin, err := svc.Create(ctx, service.RoleInput{Name: domain.RoleAdmin})
	require.NoError(t, err)
	mentor, err := svc.Create(ctx, service.RoleInput{Name: "Mentor"})
	require.NoError(t, err)
	student, err := svc.Create(ctx, service.RoleInput{
		Name:                "Student",
		RegistrationByRoles: []int{mentor.ID},
	})
	require.NoError(t, err)

	names := func(roles []*ent.Role) []string {
		out := make([]string, len(roles))
		for i, r := range roles {
			out[i] = r.Name
		}
		return out
	}

	t.Run("super user creates anyone", func(t *testing.T) {
		got, err := svc.CreatableRoles(ctx, super.ID, domain.RoleSuperUser)
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]string{domain.RoleSuperUser, domain.RoleAdmin, "Mentor", "Student"},
			names(got))
	})

	t.Run("admin excludes super user and itself", func(t *testing.T) {
		got, err := svc.CreatableRoles(ctx, admin.ID, domain.RoleAdmin)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Mentor", "Student"}, names(got))
	})

	t.Run("mentor creates only delegated roles", func(t *testing.T) {
		got, err := svc.CreatableRoles(ctx, mentor.ID, "Mentor")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Student"}, names(got))
	})

	t.Run("student with no delegation creates nothing", func(t *testing.T) {
		got, err := svc.CreatableRoles(ctx, student.ID, "Student")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
