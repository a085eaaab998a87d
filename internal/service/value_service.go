package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"mime"
	"path/filepath"

	"go.uber.org/zap"

	"etree.io/etree/ent"
	entfieldvalue "etree.io/etree/ent/fieldvalue"
	"etree.io/etree/internal/domain"
	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/pkg/logger"
	"etree.io/etree/internal/registry"
	"etree.io/etree/internal/storage"
)

// Actor identifies the authenticated user performing an operation.
type Actor struct {
	UserID   string
	RoleID   int
	RoleName string
}

// IsAdmin reports whether the actor holds a built-in administrative role.
func (a Actor) IsAdmin() bool {
	return domain.IsAdminRole(a.RoleName)
}

// UserFieldEntry is one row of a user's rendered field form: the active
// definition merged with the stored value, if any.
type UserFieldEntry struct {
	FieldID    int               `json:"field_id"`
	FieldName  string            `json:"field_name"`
	FieldType  string            `json:"field_type"`
	IsRequired bool              `json:"is_required"`
	Filled     bool              `json:"filled"`
	Value      any               `json:"value"`
	Options    []registry.Option `json:"options"`
	Validation map[string]any    `json:"validation"`
}

// ValueService manages per-user field values.
type ValueService struct {
	client     *ent.Client
	users      *UserService
	fields     *FieldService
	media      *storage.MediaStore
	dispatcher *domain.EventDispatcher
}

// NewValueService creates a new ValueService.
func NewValueService(client *ent.Client, users *UserService, fields *FieldService, media *storage.MediaStore, dispatcher *domain.EventDispatcher) *ValueService {
	return &ValueService{
		client:     client,
		users:      users,
		fields:     fields,
		media:      media,
		dispatcher: dispatcher,
	}
}

// GetUserFields returns the target user's active field definitions
// merged with any stored values, in display order.
func (s *ValueService) GetUserFields(ctx context.Context, targetUserID string) ([]UserFieldEntry, error) {
	target, err := s.users.Get(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	roleID := target.RoleID
	fields, err := s.fields.ListActive(ctx, &roleID)
	if err != nil {
		return nil, fmt.Errorf("list active fields: %w", err)
	}

	values, err := s.client.FieldValue.Query().
		Where(entfieldvalue.UserIDEQ(targetUserID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list field values: %w", err)
	}
	valueByField := make(map[int]*ent.FieldValue, len(values))
	for _, v := range values {
		valueByField[v.FieldID] = v
	}

	entries := make([]UserFieldEntry, 0, len(fields))
	for _, f := range fields {
		entry := UserFieldEntry{
			FieldID:    f.ID,
			FieldName:  f.FieldName,
			FieldType:  f.FieldType,
			IsRequired: f.IsRequired,
			Options:    f.Options,
			Validation: f.Validation,
		}
		if stored, ok := valueByField[f.ID]; ok {
			entry.Filled = true
			entry.Value = UnwrapValue(stored.Value)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// SetValue validates and stores a value for the target user's field,
// enforcing fill and edit ownership.
func (s *ValueService) SetValue(ctx context.Context, actor Actor, targetUserID string, fieldID int, value any) (*ent.FieldValue, error) {
	field, err := s.fields.Get(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.getValue(ctx, targetUserID, fieldID)
	if err != nil {
		return nil, err
	}

	if err := checkValueAccess(actor, targetUserID, field, existing != nil); err != nil {
		return nil, err
	}

	normalized, err := ValidateValue(FieldSpec{
		Type:       registry.FieldType(field.FieldType),
		Validation: field.Validation,
		Options:    field.Options,
	}, value)
	if err != nil {
		return nil, err
	}

	saved, err := s.upsertValue(ctx, targetUserID, fieldID, existing, WrapValue(normalized))
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, domain.EventFieldValueSet, actor, targetUserID, field)
	return saved, nil
}

// UploadDocument validates an uploaded file against a document field's
// constraints, stores it in the protected area and records
// {name, size_mb} as the field value. A previously stored file is
// removed after the new value is saved.
func (s *ValueService) UploadDocument(ctx context.Context, actor Actor, targetUserID string, fieldID int, fileName string, sizeBytes int64, r io.Reader) (*ent.FieldValue, error) {
	field, err := s.fields.Get(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if field.FieldType != string(registry.TypeDocument) {
		return nil, apperrors.ErrBadRequest.WithMessage("field is not a document type")
	}
	if _, err := s.users.Get(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.getValue(ctx, targetUserID, fieldID)
	if err != nil {
		return nil, err
	}
	if err := checkValueAccess(actor, targetUserID, field, existing != nil); err != nil {
		return nil, err
	}

	sizeMB := float64(sizeBytes) / (1024 * 1024)
	if err := ValidateDocument(field.Validation, fileName, sizeMB); err != nil {
		return nil, err
	}

	storedName, err := s.media.SaveProtected(fileName, r)
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	value := WrapValue(map[string]any{
		"name":    storedName,
		"size_mb": math.Round(sizeMB*10000) / 10000,
	})
	saved, err := s.upsertValue(ctx, targetUserID, fieldID, existing, value)
	if err != nil {
		if cleanupErr := s.media.DeleteProtected(storedName); cleanupErr != nil {
			logger.Warn("Failed to remove orphaned document",
				zap.String("stored_name", storedName), zap.Error(cleanupErr))
		}
		return nil, err
	}

	if existing != nil {
		if oldName := storedDocumentName(existing.Value); oldName != "" && oldName != storedName {
			if err := s.media.DeleteProtected(oldName); err != nil {
				logger.Warn("Failed to remove replaced document",
					zap.String("stored_name", oldName), zap.Error(err))
			}
		}
	}

	s.dispatch(ctx, domain.EventDocumentUploaded, actor, targetUserID, field)
	return saved, nil
}

// Document is an opened stored document ready for streaming.
type Document struct {
	File       io.ReadCloser
	StoredName string
	MIMEType   string
}

// OpenDocument checks download permission and opens the stored file for
// the target user's field.
func (s *ValueService) OpenDocument(ctx context.Context, actor Actor, targetUserID string, fieldID int) (*Document, error) {
	field, err := s.fields.Get(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	existing, err := s.getValue(ctx, targetUserID, fieldID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrNotFound.WithMessage("no file uploaded for this field")
	}
	storedName := storedDocumentName(existing.Value)
	if storedName == "" {
		return nil, apperrors.ErrNotFound.WithMessage("stored file not found in record")
	}

	if err := checkDocumentAccess(actor, field); err != nil {
		return nil, err
	}

	f, err := s.media.OpenProtected(storedName)
	if err != nil {
		return nil, apperrors.ErrMediaNotFound.WithErr(err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(storedName))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &Document{File: f, StoredName: storedName, MIMEType: mimeType}, nil
}

// DeleteDocument removes the stored file and the field value record.
func (s *ValueService) DeleteDocument(ctx context.Context, actor Actor, targetUserID string, fieldID int) error {
	field, err := s.fields.Get(ctx, fieldID)
	if err != nil {
		return err
	}
	existing, err := s.getValue(ctx, targetUserID, fieldID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrNotFound.WithMessage("no file uploaded for this field")
	}
	storedName := storedDocumentName(existing.Value)
	if storedName == "" {
		return apperrors.ErrNotFound.WithMessage("stored file not found in record")
	}

	if err := checkDocumentAccess(actor, field); err != nil {
		return err
	}

	if err := s.media.DeleteProtected(storedName); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if err := s.client.FieldValue.DeleteOneID(existing.ID).Exec(ctx); err != nil {
		return fmt.Errorf("delete field value: %w", err)
	}

	s.dispatch(ctx, domain.EventDocumentDeleted, actor, targetUserID, field)
	return nil
}

func (s *ValueService) getValue(ctx context.Context, userID string, fieldID int) (*ent.FieldValue, error) {
	v, err := s.client.FieldValue.Query().
		Where(
			entfieldvalue.UserIDEQ(userID),
			entfieldvalue.FieldIDEQ(fieldID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get field value: %w", err)
	}
	return v, nil
}

func (s *ValueService) upsertValue(ctx context.Context, userID string, fieldID int, existing *ent.FieldValue, value map[string]any) (*ent.FieldValue, error) {
	if existing != nil {
		updated, err := s.client.FieldValue.UpdateOneID(existing.ID).
			SetValue(value).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update field value: %w", err)
		}
		return updated, nil
	}
	created, err := s.client.FieldValue.Create().
		SetUserID(userID).
		SetFieldID(fieldID).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create field value: %w", err)
	}
	return created, nil
}

func (s *ValueService) dispatch(ctx context.Context, eventType domain.EventType, actor Actor, targetUserID string, field *ent.RequiredField) {
	if s.dispatcher == nil {
		return
	}
	payload, err := domain.FieldValuePayload{
		TargetUserID: targetUserID,
		FieldID:      field.ID,
		FieldName:    field.FieldName,
		FieldType:    field.FieldType,
	}.ToJSON()
	if err != nil {
		return
	}
	event := domain.NewEvent(eventType, "field_value", fmt.Sprintf("%s/%d", targetUserID, field.ID), actor.UserID, payload)
	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		logger.Warn("Field value event dispatch failed",
			zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

// checkValueAccess enforces the fill/edit ownership rules. Admin roles
// bypass every check; everyone else may only touch their own record,
// first fills require the filled-by role, and edits require the
// editable-by role (a nil editable-by locks the field).
func checkValueAccess(actor Actor, targetUserID string, field *ent.RequiredField, exists bool) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.UserID != targetUserID {
		return apperrors.ErrForbidden.WithMessage("you are not allowed to modify this user's data")
	}
	if !exists {
		if field.FilledByRoleID != actor.RoleID {
			return apperrors.ErrValueNotAllowed.WithMessage("you cannot fill this field")
		}
		return nil
	}
	if field.EditableByRoleID == nil {
		return apperrors.ErrValueLocked.WithMessage("this field cannot be edited")
	}
	if *field.EditableByRoleID != actor.RoleID {
		return apperrors.ErrValueLocked.WithMessage("you do not have permission to edit this field")
	}
	return nil
}

// checkDocumentAccess mirrors the download/delete rule: field ownership
// through either role reference, or an admin role.
func checkDocumentAccess(actor Actor, field *ent.RequiredField) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.RoleID == field.FilledByRoleID {
		return nil
	}
	if field.EditableByRoleID != nil && actor.RoleID == *field.EditableByRoleID {
		return nil
	}
	return apperrors.ErrForbidden.WithMessage("you do not have permission to access this file")
}

// storedDocumentName digs the stored filename out of a document value.
func storedDocumentName(stored map[string]any) string {
	value := UnwrapValue(stored)
	doc, ok := value.(map[string]any)
	if !ok {
		return ""
	}
	name, _ := doc["name"].(string)
	return name
}
