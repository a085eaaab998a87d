package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/registry"
	"etree.io/etree/internal/service"
)

// CreateField handles POST /user-required-fields/.
func (s *Server) CreateField(c *gin.Context) {
	var req service.FieldCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	field, err := s.fields.Create(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, "Field created successfully", fieldToDTO(field))
}

// UpdateField handles PUT /user-required-fields/{fieldId}. Only keys
// present in the body are applied.
func (s *Server) UpdateField(c *gin.Context) {
	fieldID, err := pathInt(c, "fieldId")
	if err != nil {
		Fail(c, err)
		return
	}

	var req service.FieldUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	field, err := s.fields.Update(c.Request.Context(), fieldID, req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Field updated successfully", fieldToDTO(field))
}

// GetField handles GET /user-required-fields/{fieldId}.
func (s *Server) GetField(c *gin.Context) {
	fieldID, err := pathInt(c, "fieldId")
	if err != nil {
		Fail(c, err)
		return
	}

	field, err := s.fields.Get(c.Request.Context(), fieldID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Field fetched successfully", fieldToDTO(field))
}

// DeleteField handles DELETE /user-required-fields/{fieldId}.
func (s *Server) DeleteField(c *gin.Context) {
	fieldID, err := pathInt(c, "fieldId")
	if err != nil {
		Fail(c, err)
		return
	}

	if err := s.fields.Delete(c.Request.Context(), fieldID); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Field deleted successfully", nil)
}

// ActivateField handles PATCH /user-required-fields/{fieldId}/activate.
func (s *Server) ActivateField(c *gin.Context) {
	s.setFieldActive(c, true, "Field activated successfully")
}

// DeactivateField handles PATCH /user-required-fields/{fieldId}/deactivate.
func (s *Server) DeactivateField(c *gin.Context) {
	s.setFieldActive(c, false, "Field deactivated successfully")
}

func (s *Server) setFieldActive(c *gin.Context, active bool, message string) {
	fieldID, err := pathInt(c, "fieldId")
	if err != nil {
		Fail(c, err)
		return
	}

	if err := s.fields.SetActive(c.Request.Context(), fieldID, active); err != nil {
		Fail(c, err)
		return
	}
	OK(c, message, nil)
}

// ListFieldsByRole handles GET /user-required-fields/role/{roleId}.
func (s *Server) ListFieldsByRole(c *gin.Context) {
	roleID, err := pathInt(c, "roleId")
	if err != nil {
		Fail(c, err)
		return
	}

	fields, err := s.fields.ListByRole(c.Request.Context(), roleID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Fields fetched successfully", fieldsToDTO(fields))
}

// ListActiveFields handles GET /user-required-fields/active?role_id=.
func (s *Server) ListActiveFields(c *gin.Context) {
	var roleID *int
	if raw := c.Query("role_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			Fail(c, apperrors.ErrBadRequest.WithMessage("invalid role_id"))
			return
		}
		roleID = &v
	}

	fields, err := s.fields.ListActive(c.Request.Context(), roleID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Active fields fetched successfully", fieldsToDTO(fields))
}

// GetFieldByName handles
// GET /user-required-fields/role/{roleId}/name/{fieldName}.
func (s *Server) GetFieldByName(c *gin.Context) {
	roleID, err := pathInt(c, "roleId")
	if err != nil {
		Fail(c, err)
		return
	}

	field, err := s.fields.GetByName(c.Request.Context(), roleID, c.Param("fieldName"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Field fetched successfully", fieldToDTO(field))
}

// ListFieldTypes handles GET /user-required-fields/field-types.
func (s *Server) ListFieldTypes(c *gin.Context) {
	OK(c, "Field types fetched successfully", registry.TypeStrings())
}

// ListValidatorsByType handles
// GET /user-required-fields/validators-by-type/{type}. The response
// maps each validator name to its expected value kind.
func (s *Server) ListValidatorsByType(c *gin.Context) {
	fieldType := registry.FieldType(c.Param("type"))
	if !registry.Valid(fieldType) {
		Fail(c, apperrors.ErrBadRequest.WithMessagef("unknown field type %q", c.Param("type")))
		return
	}
	OK(c, "Validators fetched successfully", registry.ValidatorsFor(fieldType))
}
