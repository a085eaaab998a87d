package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/service"
)

// CreatePermission handles POST /role-permissions/permissions/.
func (s *Server) CreatePermission(c *gin.Context) {
	var req service.PermissionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	perm, err := s.permissions.Create(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, "Permission created successfully", permissionToDTO(perm))
}

// ListPermissions handles GET /role-permissions/permissions/.
func (s *Server) ListPermissions(c *gin.Context) {
	perms, err := s.permissions.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Permissions fetched successfully", permissionsToDTO(perms))
}

// AssignPermissionRequest links a permission to a role.
type AssignPermissionRequest struct {
	RoleID       int `json:"role_id" binding:"required"`
	PermissionID int `json:"permission_id" binding:"required"`
}

// AssignPermission handles POST /role-permissions/permissions/assign.
func (s *Server) AssignPermission(c *gin.Context) {
	var req AssignPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	if err := s.permissions.Assign(c.Request.Context(), req.RoleID, req.PermissionID); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Permission assigned successfully", nil)
}

// RemovePermission handles
// DELETE /role-permissions/permissions/remove/{roleId}/{permissionId}.
func (s *Server) RemovePermission(c *gin.Context) {
	roleID, err := pathInt(c, "roleId")
	if err != nil {
		Fail(c, err)
		return
	}
	permissionID, err := pathInt(c, "permissionId")
	if err != nil {
		Fail(c, err)
		return
	}

	if err := s.permissions.Remove(c.Request.Context(), roleID, permissionID); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Permission removed successfully", nil)
}

// ListRolePermissions handles
// GET /role-permissions/permissions/role/{roleId}.
func (s *Server) ListRolePermissions(c *gin.Context) {
	roleID, err := pathInt(c, "roleId")
	if err != nil {
		Fail(c, err)
		return
	}

	perms, err := s.permissions.ListForRole(c.Request.Context(), roleID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Role permissions fetched successfully", permissionsToDTO(perms))
}
