package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/registry"
)

func boolPtr(b bool) *bool { return &b }

func TestValidateFieldDefinition(t *testing.T) {
	tests := []struct {
		name       string
		fieldType  string
		validation map[string]any
		options    []registry.Option
		wantCode   string
	}{
		{
			name:      "plain text field",
			fieldType: "text",
		},
		{
			name:       "text with length validators",
			fieldType:  "text",
			validation: map[string]any{"min_length": 2, "max_length": float64(64)},
		},
		{
			name:       "number with bounds",
			fieldType:  "number",
			validation: map[string]any{"min_value": 0, "max_value": 100.5},
		},
		{
			name:       "date with range",
			fieldType:  "date",
			validation: map[string]any{"min_date": "2020-01-01", "max_date": "2030-12-31"},
		},
		{
			name:      "document with extensions and size",
			fieldType: "document",
			validation: map[string]any{
				"allowed_extensions": []any{".pdf", ".png"},
				"max_size_mb":        5,
			},
		},
		{
			name:      "mcq with options",
			fieldType: "mcq",
			options: []registry.Option{
				{Label: "Yes", IsCorrect: boolPtr(true)},
				{Label: "No", IsCorrect: boolPtr(false)},
			},
		},
		{
			name:      "unknown type",
			fieldType: "dropdown",
			wantCode:  apperrors.ErrInvalidFieldDef.Code,
		},
		{
			name:       "validator not declared for type",
			fieldType:  "text",
			validation: map[string]any{"min_value": 1},
			wantCode:   apperrors.ErrInvalidFieldDef.Code,
		},
		{
			name:       "number validator with string value",
			fieldType:  "text",
			validation: map[string]any{"min_length": "two"},
			wantCode:   apperrors.ErrInvalidFieldDef.Code,
		},
		{
			name:       "date validator with bad format",
			fieldType:  "date",
			validation: map[string]any{"min_date": "01/02/2020"},
			wantCode:   apperrors.ErrInvalidFieldDef.Code,
		},
		{
			name:       "date validator with non-string",
			fieldType:  "date",
			validation: map[string]any{"min_date": 20200101},
			wantCode:   apperrors.ErrInvalidFieldDef.Code,
		},
		{
			name:       "extension list with non-string element",
			fieldType:  "document",
			validation: map[string]any{"allowed_extensions": []any{".pdf", 7}},
			wantCode:   apperrors.ErrInvalidFieldDef.Code,
		},
		{
			name:       "extension list as []string is accepted",
			fieldType:  "document",
			validation: map[string]any{"allowed_extensions": []string{".pdf"}},
		},
		{
			name:      "options on non-choice type",
			fieldType: "text",
			options:   []registry.Option{{Label: "A"}},
			wantCode:  apperrors.ErrInvalidFieldDef.Code,
		},
		{
			name:      "empty option label",
			fieldType: "msq",
			options:   []registry.Option{{Label: "  "}},
			wantCode:  apperrors.ErrInvalidFieldDef.Code,
		},
		{
			name:      "duplicate option label",
			fieldType: "mcq",
			options:   []registry.Option{{Label: "Yes"}, {Label: "Yes"}},
			wantCode:  apperrors.ErrInvalidFieldDef.Code,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldDefinition(tt.fieldType, tt.validation, tt.options)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", ".pdf", []string{".pdf"}},
		{"trims whitespace", " .pdf , .png ", []string{".pdf", ".png"}},
		{"drops empty segments", ".pdf,,,.png,", []string{".pdf", ".png"}},
		{"dedupes first occurrence", ".pdf,.png,.pdf", []string{".pdf", ".png"}},
		{"keeps entries verbatim", "pdf,.pdf,PDF", []string{"pdf", ".pdf", "PDF"}},
		{"only commas", ",,,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExtensions(tt.raw))
		})
	}
}

func TestNumberFromAny(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"float64", float64(3.5), 3.5, true},
		{"float32", float32(2), 2, true},
		{"int", 7, 7, true},
		{"int64", int64(9), 9, true},
		{"string", "5", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := numberFromAny(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
