package fieldform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/internal/registry"
)

func TestCreatePayload_Text(t *testing.T) {
	ed, err := NewEditor(registry.TypeText)
	require.NoError(t, err)
	ed.SetName("  Full Address  ")
	ed.SetDisplayOrder(2)
	ed.SetFilledBy(intPtr(3))
	require.NoError(t, ed.SetValidatorValue(registry.ValidatorMaxLength, "120"))

	payload, err := ed.CreatePayload(3)
	require.NoError(t, err)

	assert.Equal(t, 3, payload["role_id"])
	assert.Equal(t, "Full Address", payload["field_name"])
	assert.Equal(t, "text", payload["field_type"])
	assert.Equal(t, true, payload["is_required"])
	assert.Equal(t, true, payload["is_active"])
	assert.Equal(t, 2, payload["display_order"])
	assert.Equal(t, 3, payload["filled_by_role_id"])
	assert.Equal(t, map[string]any{"max_length": float64(120)}, payload["validation"])

	// scalar types submit no options key and no editable_by when unset
	assert.NotContains(t, payload, "options")
	assert.NotContains(t, payload, "editable_by_role_id")
}

func TestCreatePayload_RequiresName(t *testing.T) {
	ed, err := NewEditor(registry.TypeText)
	require.NoError(t, err)
	_, err = ed.CreatePayload(1)
	assert.Error(t, err)

	ed.SetName("   ")
	_, err = ed.CreatePayload(1)
	assert.Error(t, err)
}

func TestCreatePayload_MCQOptions(t *testing.T) {
	ed, err := NewEditor(registry.TypeMCQ)
	require.NoError(t, err)
	ed.SetName("Enrolled")
	yes, err := ed.AddOption("Yes")
	require.NoError(t, err)
	_, err = ed.AddOption("No")
	require.NoError(t, err)
	require.NoError(t, ed.SetAnswer(yes))

	payload, err := ed.CreatePayload(1)
	require.NoError(t, err)

	opts, ok := payload["options"].([]registry.Option)
	require.True(t, ok)
	require.Len(t, opts, 2)

	// mcq: the answer is true, every other option explicitly false
	require.NotNil(t, opts[0].IsCorrect)
	assert.True(t, *opts[0].IsCorrect)
	require.NotNil(t, opts[1].IsCorrect)
	assert.False(t, *opts[1].IsCorrect)
}

func TestCreatePayload_MSQOptions(t *testing.T) {
	ed, err := NewEditor(registry.TypeMSQ)
	require.NoError(t, err)
	ed.SetName("Languages")
	gopt, err := ed.AddOption("Go")
	require.NoError(t, err)
	_, err = ed.AddOption("Rust")
	require.NoError(t, err)
	require.NoError(t, ed.ToggleSelected(gopt))

	payload, err := ed.CreatePayload(1)
	require.NoError(t, err)

	opts, ok := payload["options"].([]registry.Option)
	require.True(t, ok)
	require.Len(t, opts, 2)

	// msq: selected options carry true, the rest carry null
	require.NotNil(t, opts[0].IsCorrect)
	assert.True(t, *opts[0].IsCorrect)
	assert.Nil(t, opts[1].IsCorrect)
}

func TestCreatePayload_DocumentValidatorCoercion(t *testing.T) {
	ed, err := NewEditor(registry.TypeDocument)
	require.NoError(t, err)
	ed.SetName("Resume")
	require.NoError(t, ed.SetValidatorValue(registry.ValidatorExtensions, " .pdf, .docx , .pdf ,"))
	require.NoError(t, ed.SetValidatorValue(registry.ValidatorMaxSizeMB, "5"))

	payload, err := ed.CreatePayload(1)
	require.NoError(t, err)

	validation, ok := payload["validation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{".pdf", ".docx"}, validation["allowed_extensions"])
	assert.Equal(t, 5, validation["max_size_mb"])
}

func TestCreatePayload_BadValidatorValues(t *testing.T) {
	tests := []struct {
		name      string
		fieldType registry.FieldType
		validator string
		raw       string
	}{
		{"non-numeric min_length", registry.TypeText, registry.ValidatorMinLength, "two"},
		{"fractional max_size_mb", registry.TypeDocument, registry.ValidatorMaxSizeMB, "2.5"},
		{"empty max_value", registry.TypeNumber, registry.ValidatorMaxValue, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed, err := NewEditor(tt.fieldType)
			require.NoError(t, err)
			ed.SetName("X")
			require.NoError(t, ed.SetValidatorValue(tt.validator, tt.raw))
			_, err = ed.CreatePayload(1)
			assert.Error(t, err)
		})
	}
}

func TestUpdatePayload_OnlyTouchedKeys(t *testing.T) {
	ed, err := FromDefinition(Definition{
		FieldName:    "Enrolled",
		FieldType:    "mcq",
		IsRequired:   true,
		IsActive:     true,
		DisplayOrder: 1,
		Options: []registry.Option{
			{Label: "Yes", IsCorrect: boolPtr(true)},
			{Label: "No", IsCorrect: boolPtr(false)},
		},
	})
	require.NoError(t, err)

	// an untouched editor submits nothing
	payload, err := ed.UpdatePayload()
	require.NoError(t, err)
	assert.Empty(t, payload)

	ed.SetRequired(false)
	payload, err = ed.UpdatePayload()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"is_required": false}, payload)

	// touching options adds the full option serialization
	opts := ed.Options()
	require.NoError(t, ed.SetAnswer(opts[1].Key))
	payload, err = ed.UpdatePayload()
	require.NoError(t, err)
	assert.Contains(t, payload, "options")
	assert.NotContains(t, payload, "field_name")
}

func TestUpdatePayload_NameCleared(t *testing.T) {
	ed, err := FromDefinition(Definition{FieldName: "Phone", FieldType: "text"})
	require.NoError(t, err)
	ed.SetName("")
	_, err = ed.UpdatePayload()
	assert.Error(t, err)
}

func TestRawValidatorValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string passthrough", "2024-01-01", "2024-01-01"},
		{"string list", []string{".pdf", ".png"}, ".pdf, .png"},
		{"any list", []any{".pdf", ".png"}, ".pdf, .png"},
		{"whole float renders as integer", float64(5), "5"},
		{"fractional float", 2.5, "2.5"},
		{"int fallback", 7, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rawValidatorValue("x", tt.value))
		})
	}
}
