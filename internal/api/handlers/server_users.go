package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/service"
)

// CreateUser handles POST /users/. The actor may only create users of
// roles returned by /roles/creatable.
func (s *Server) CreateUser(c *gin.Context) {
	var req service.CreateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	actor := actorFromCtx(c)
	creatable, err := s.roles.CreatableRoles(c.Request.Context(), actor.RoleID, actor.RoleName)
	if err != nil {
		Fail(c, err)
		return
	}
	allowed := false
	for _, r := range creatable {
		if r.ID == req.RoleID {
			allowed = true
			break
		}
	}
	if !allowed {
		Fail(c, apperrors.ErrForbidden.WithMessage("not allowed to create users for this role"))
		return
	}

	user, err := s.users.Create(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, "User created successfully", userToDTO(user))
}

// ListUsersByRole handles GET /users/role/{roleId}?active_only=.
func (s *Server) ListUsersByRole(c *gin.Context) {
	roleID, err := pathInt(c, "roleId")
	if err != nil {
		Fail(c, err)
		return
	}

	activeOnly := false
	if raw := c.Query("active_only"); raw != "" {
		activeOnly, err = strconv.ParseBool(raw)
		if err != nil {
			Fail(c, apperrors.ErrBadRequest.WithMessage("invalid active_only"))
			return
		}
	}

	users, err := s.users.ListByRole(c.Request.Context(), roleID, activeOnly)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Users fetched successfully", usersToDTO(users))
}

// GetUser handles GET /users/{userId}.
func (s *Server) GetUser(c *gin.Context) {
	user, err := s.users.GetWithRole(c.Request.Context(), c.Param("userId"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "User fetched successfully", userToDTO(user))
}

// UpdateUser handles PUT /users/{userId}. Only keys present in the
// body are applied.
func (s *Server) UpdateUser(c *gin.Context) {
	var req service.UpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	user, err := s.users.Update(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "User updated successfully", userToDTO(user))
}

// DeactivateUser handles PATCH /users/{userId}/deactivate.
func (s *Server) DeactivateUser(c *gin.Context) {
	user, err := s.users.Deactivate(c.Request.Context(), c.Param("userId"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "User deactivated successfully", userToDTO(user))
}
