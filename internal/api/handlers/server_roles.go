package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/service"
)

// CreateRole handles POST /roles/.
func (s *Server) CreateRole(c *gin.Context) {
	var req service.RoleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	role, err := s.roles.Create(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, "Role created successfully", roleToDTO(role))
}

// ListRoles handles GET /roles/.
func (s *Server) ListRoles(c *gin.Context) {
	roles, err := s.roles.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Roles fetched successfully", rolesToDTO(roles))
}

// GetRole handles GET /roles/{roleId}.
func (s *Server) GetRole(c *gin.Context) {
	roleID, err := pathInt(c, "roleId")
	if err != nil {
		Fail(c, err)
		return
	}

	role, err := s.roles.Get(c.Request.Context(), roleID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Role fetched successfully", roleToDTO(role))
}

// GetRoleByName handles GET /roles/by-name/{name}.
func (s *Server) GetRoleByName(c *gin.Context) {
	role, err := s.roles.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Role fetched successfully", roleToDTO(role))
}

// UpdateRole handles PUT /roles/{roleId}.
func (s *Server) UpdateRole(c *gin.Context) {
	roleID, err := pathInt(c, "roleId")
	if err != nil {
		Fail(c, err)
		return
	}

	var req service.RoleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	role, err := s.roles.Update(c.Request.Context(), roleID, req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Role updated successfully", roleToDTO(role))
}

// DeleteRole handles DELETE /roles/{roleId}. Deletion is refused while
// users still hold the role.
func (s *Server) DeleteRole(c *gin.Context) {
	roleID, err := pathInt(c, "roleId")
	if err != nil {
		Fail(c, err)
		return
	}

	if err := s.roles.Delete(c.Request.Context(), roleID); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Role deleted successfully", nil)
}

// ListSignupRoles handles GET /roles/signup-roles. Public: the signup
// page needs it before authentication.
func (s *Server) ListSignupRoles(c *gin.Context) {
	roles, err := s.roles.SignupRoles(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Signup roles fetched successfully", rolesToDTO(roles))
}

// ListCreatableRoles handles GET /roles/creatable: the roles the
// authenticated actor may create users for.
func (s *Server) ListCreatableRoles(c *gin.Context) {
	actor := actorFromCtx(c)
	roles, err := s.roles.CreatableRoles(c.Request.Context(), actor.RoleID, actor.RoleName)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Creatable roles fetched successfully", rolesToDTO(roles))
}

// pathInt parses an integer path parameter.
func pathInt(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperrors.ErrBadRequest.WithMessagef("invalid %s", name)
	}
	return v, nil
}
