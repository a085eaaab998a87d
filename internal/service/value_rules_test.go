package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/registry"
)

func TestValidateValue_Text(t *testing.T) {
	spec := FieldSpec{
		Type:       registry.TypeText,
		Validation: map[string]any{"min_length": 3, "max_length": 5},
	}

	tests := []struct {
		name     string
		value    any
		want     any
		wantCode string
	}{
		{"within bounds", "abcd", "abcd", ""},
		{"at min", "abc", "abc", ""},
		{"at max", "abcde", "abcde", ""},
		{"too short", "ab", nil, apperrors.ErrInvalidValue.Code},
		{"too long", "abcdef", nil, apperrors.ErrInvalidValue.Code},
		{"not a string", 42, nil, apperrors.ErrInvalidValue.Code},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateValue(spec, tt.value)
			assertValueResult(t, got, err, tt.want, tt.wantCode)
		})
	}
}

func TestValidateValue_Number(t *testing.T) {
	spec := FieldSpec{
		Type:       registry.TypeNumber,
		Validation: map[string]any{"min_value": float64(0), "max_value": float64(100)},
	}

	tests := []struct {
		name     string
		value    any
		want     any
		wantCode string
	}{
		{"in range", float64(50), float64(50), ""},
		{"int coerced", 25, float64(25), ""},
		{"below min", float64(-1), nil, apperrors.ErrInvalidValue.Code},
		{"above max", float64(101), nil, apperrors.ErrInvalidValue.Code},
		{"string rejected", "50", nil, apperrors.ErrInvalidValue.Code},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateValue(spec, tt.value)
			assertValueResult(t, got, err, tt.want, tt.wantCode)
		})
	}
}

func TestValidateValue_Date(t *testing.T) {
	spec := FieldSpec{
		Type:       registry.TypeDate,
		Validation: map[string]any{"min_date": "2020-01-01", "max_date": "2025-12-31"},
	}

	tests := []struct {
		name     string
		value    any
		want     any
		wantCode string
	}{
		{"plain date", "2023-06-15", "2023-06-15", ""},
		{"rfc3339 normalized", "2023-06-15T10:30:00Z", "2023-06-15", ""},
		{"before min", "2019-12-31", nil, apperrors.ErrInvalidValue.Code},
		{"after max", "2026-01-01", nil, apperrors.ErrInvalidValue.Code},
		{"garbage", "not-a-date", nil, apperrors.ErrInvalidValue.Code},
		{"not a string", 20230615, nil, apperrors.ErrInvalidValue.Code},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateValue(spec, tt.value)
			assertValueResult(t, got, err, tt.want, tt.wantCode)
		})
	}
}

func TestValidateValue_MCQ(t *testing.T) {
	spec := FieldSpec{
		Type: registry.TypeMCQ,
		Options: []registry.Option{
			{Label: "Red", IsCorrect: boolPtr(true)},
			{Label: "Blue", IsCorrect: boolPtr(false)},
		},
	}

	got, err := ValidateValue(spec, "Red")
	require.NoError(t, err)
	assert.Equal(t, "Red", got)

	_, err = ValidateValue(spec, "Green")
	assertAppErrorCode(t, err, apperrors.ErrInvalidValue.Code)

	_, err = ValidateValue(spec, []string{"Red"})
	assertAppErrorCode(t, err, apperrors.ErrInvalidValue.Code)
}

func TestValidateValue_MSQ(t *testing.T) {
	spec := FieldSpec{
		Type: registry.TypeMSQ,
		Options: []registry.Option{
			{Label: "Go", IsCorrect: boolPtr(true)},
			{Label: "Rust", IsCorrect: nil},
			{Label: "Zig", IsCorrect: nil},
		},
	}

	t.Run("valid subset", func(t *testing.T) {
		got, err := ValidateValue(spec, []any{"Go", "Zig"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "Zig"}, got)
	})

	t.Run("empty selection allowed", func(t *testing.T) {
		got, err := ValidateValue(spec, []any{})
		require.NoError(t, err)
		assert.Equal(t, []string{}, got)
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := ValidateValue(spec, []any{"Go", "Python"})
		assertAppErrorCode(t, err, apperrors.ErrInvalidValue.Code)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := ValidateValue(spec, "Go")
		assertAppErrorCode(t, err, apperrors.ErrInvalidValue.Code)
	})
}

func TestValidateValue_Document(t *testing.T) {
	spec := FieldSpec{
		Type: registry.TypeDocument,
		Validation: map[string]any{
			"allowed_extensions": []any{".pdf", ".png"},
			"max_size_mb":        float64(5),
		},
	}

	t.Run("accepted", func(t *testing.T) {
		got, err := ValidateValue(spec, map[string]any{"name": "cv.pdf", "size_mb": 1.5})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "cv.pdf", "size_mb": 1.5}, got)
	})

	t.Run("typed struct accepted", func(t *testing.T) {
		got, err := ValidateValue(spec, DocumentValue{Name: "shot.png", SizeMB: 2})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "shot.png", "size_mb": float64(2)}, got)
	})

	t.Run("bad extension", func(t *testing.T) {
		_, err := ValidateValue(spec, map[string]any{"name": "cv.docx", "size_mb": 1.0})
		assertAppErrorCode(t, err, apperrors.ErrBadFileType.Code)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := ValidateValue(spec, map[string]any{"name": "cv.pdf", "size_mb": 6.0})
		assertAppErrorCode(t, err, apperrors.ErrFileTooLarge.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := ValidateValue(spec, map[string]any{"size_mb": 1.0})
		assertAppErrorCode(t, err, apperrors.ErrInvalidValue.Code)
	})
}

func TestValidateValue_UnknownType(t *testing.T) {
	_, err := ValidateValue(FieldSpec{Type: "mystery"}, "x")
	assertAppErrorCode(t, err, apperrors.ErrInvalidValue.Code)
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name       string
		validation map[string]any
		fileName   string
		sizeMB     float64
		wantCode   string
	}{
		{
			name:       "no constraints admits anything",
			validation: map[string]any{},
			fileName:   "anything.exe",
			sizeMB:     500,
		},
		{
			name:       "suffix match",
			validation: map[string]any{"allowed_extensions": []string{".tar.gz"}},
			fileName:   "backup.tar.gz",
			sizeMB:     1,
		},
		{
			name:       "extension without dot matches suffix",
			validation: map[string]any{"allowed_extensions": []string{"pdf"}},
			fileName:   "report.pdf",
			sizeMB:     1,
		},
		{
			name:       "no matching extension",
			validation: map[string]any{"allowed_extensions": []string{".pdf", ".png"}},
			fileName:   "notes.txt",
			sizeMB:     1,
			wantCode:   apperrors.ErrBadFileType.Code,
		},
		{
			name:       "size at limit passes",
			validation: map[string]any{"max_size_mb": float64(5)},
			fileName:   "a.pdf",
			sizeMB:     5,
		},
		{
			name:       "size over limit",
			validation: map[string]any{"max_size_mb": float64(5)},
			fileName:   "a.pdf",
			sizeMB:     5.01,
			wantCode:   apperrors.ErrFileTooLarge.Code,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.validation, tt.fileName, tt.sizeMB)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assertAppErrorCode(t, err, tt.wantCode)
			}
		})
	}
}

func TestWrapUnwrapValue(t *testing.T) {
	wrapped := WrapValue("hello")
	assert.Equal(t, map[string]any{"data": "hello"}, wrapped)
	assert.Equal(t, "hello", UnwrapValue(wrapped))

	// legacy rows without the envelope come back as-is
	legacy := map[string]any{"name": "cv.pdf"}
	assert.Equal(t, legacy, UnwrapValue(legacy))
}

func assertValueResult(t *testing.T, got any, err error, want any, wantCode string) {
	t.Helper()
	if wantCode == "" {
		require.NoError(t, err)
		assert.Equal(t, want, got)
		return
	}
	assertAppErrorCode(t, err, wantCode)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}
