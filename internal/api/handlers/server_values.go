package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"etree.io/etree/internal/api/middleware"
	apperrors "etree.io/etree/internal/pkg/errors"
)

// GetUserFields handles GET /users/me/fields?target_user_id=. Without
// target_user_id the actor's own form is returned; field-level
// permissions are enforced on mutation, not on read.
func (s *Server) GetUserFields(c *gin.Context) {
	targetUserID := c.Query("target_user_id")
	if targetUserID == "" {
		targetUserID = middleware.GetUserID(c.Request.Context())
	}

	entries, err := s.values.GetUserFields(c.Request.Context(), targetUserID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "User fields fetched successfully", entries)
}

// SetFieldValueRequest wraps the submitted value.
type SetFieldValueRequest struct {
	Value any `json:"value"`
}

// SetFieldValue handles POST /users/me/fields/{fieldId}.
func (s *Server) SetFieldValue(c *gin.Context) {
	fieldID, err := pathInt(c, "fieldId")
	if err != nil {
		Fail(c, err)
		return
	}

	var req SetFieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	actor := actorFromCtx(c)
	targetUserID := c.Query("target_user_id")
	if targetUserID == "" {
		targetUserID = actor.UserID
	}

	if _, err := s.values.SetValue(c.Request.Context(), actor, targetUserID, fieldID, req.Value); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Field value saved successfully", nil)
}

// UploadFieldDocument handles POST /users/me/fields/{fieldId}/upload.
func (s *Server) UploadFieldDocument(c *gin.Context) {
	fieldID, err := pathInt(c, "fieldId")
	if err != nil {
		Fail(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		Fail(c, apperrors.ErrBadRequest.WithMessage("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}
	defer file.Close()

	actor := actorFromCtx(c)
	targetUserID := c.Query("target_user_id")
	if targetUserID == "" {
		targetUserID = actor.UserID
	}

	if _, err := s.values.UploadDocument(
		c.Request.Context(),
		actor,
		targetUserID,
		fieldID,
		fileHeader.Filename,
		fileHeader.Size,
		file,
	); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Document uploaded successfully", nil)
}

// DownloadFieldDocument handles GET /users/me/fields/{fieldId}/download.
// The stored file streams back as an attachment.
func (s *Server) DownloadFieldDocument(c *gin.Context) {
	fieldID, err := pathInt(c, "fieldId")
	if err != nil {
		Fail(c, err)
		return
	}

	actor := actorFromCtx(c)
	targetUserID := c.Query("target_user_id")
	if targetUserID == "" {
		targetUserID = actor.UserID
	}

	doc, err := s.values.OpenDocument(c.Request.Context(), actor, targetUserID, fieldID)
	if err != nil {
		Fail(c, err)
		return
	}
	defer doc.File.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.StoredName))
	c.Header("Content-Type", doc.MIMEType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, doc.File)
}

// DeleteFieldDocument handles DELETE /users/me/fields/{fieldId}/file.
func (s *Server) DeleteFieldDocument(c *gin.Context) {
	fieldID, err := pathInt(c, "fieldId")
	if err != nil {
		Fail(c, err)
		return
	}

	actor := actorFromCtx(c)
	targetUserID := c.Query("target_user_id")
	if targetUserID == "" {
		targetUserID = actor.UserID
	}

	if err := s.values.DeleteDocument(c.Request.Context(), actor, targetUserID, fieldID); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Document deleted successfully", nil)
}
