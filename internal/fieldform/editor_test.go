package fieldform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/internal/registry"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestNewEditor(t *testing.T) {
	ed, err := NewEditor(registry.TypeText)
	require.NoError(t, err)
	assert.Equal(t, registry.TypeText, ed.FieldType())
	assert.Empty(t, ed.Name())

	_, err = NewEditor("dropdown")
	assert.Error(t, err)
}

func TestEditor_SetType_ClearsState(t *testing.T) {
	ed, err := NewEditor(registry.TypeMCQ)
	require.NoError(t, err)

	a, err := ed.AddOption("Yes")
	require.NoError(t, err)
	_, err = ed.AddOption("No")
	require.NoError(t, err)
	require.NoError(t, ed.SetAnswer(a))

	require.NoError(t, ed.SetType(registry.TypeText))

	assert.Empty(t, ed.Options())
	_, hasAnswer := ed.Answer()
	assert.False(t, hasAnswer)
	assert.Empty(t, ed.Validators())

	require.NoError(t, ed.SetValidatorValue(registry.ValidatorMinLength, "3"))
	assert.Equal(t, map[string]string{"min_length": "3"}, ed.Validators())

	// switching again drops the text validators too
	require.NoError(t, ed.SetType(registry.TypeNumber))
	assert.Empty(t, ed.Validators())
}

func TestEditor_SetType_SameTypeIsNoop(t *testing.T) {
	ed, err := NewEditor(registry.TypeMCQ)
	require.NoError(t, err)
	key, err := ed.AddOption("Keep")
	require.NoError(t, err)

	require.NoError(t, ed.SetType(registry.TypeMCQ))
	opts := ed.Options()
	require.Len(t, opts, 1)
	assert.Equal(t, key, opts[0].Key)
}

func TestEditor_Validators(t *testing.T) {
	ed, err := NewEditor(registry.TypeText)
	require.NoError(t, err)

	require.NoError(t, ed.EnableValidator(registry.ValidatorMinLength))
	assert.Equal(t, map[string]string{"min_length": ""}, ed.Validators())

	require.NoError(t, ed.SetValidatorValue(registry.ValidatorMinLength, "2"))
	assert.Equal(t, "2", ed.Validators()["min_length"])

	// setting a value on an unchecked validator checks it first
	require.NoError(t, ed.SetValidatorValue(registry.ValidatorMaxLength, "10"))
	assert.Len(t, ed.Validators(), 2)

	ed.DisableValidator(registry.ValidatorMinLength)
	assert.Equal(t, map[string]string{"max_length": "10"}, ed.Validators())

	// min_value belongs to number fields
	assert.Error(t, ed.EnableValidator(registry.ValidatorMinValue))
}

func TestEditor_OptionKeysNeverReused(t *testing.T) {
	ed, err := NewEditor(registry.TypeMSQ)
	require.NoError(t, err)

	first, err := ed.AddOption("A")
	require.NoError(t, err)
	second, err := ed.AddOption("B")
	require.NoError(t, err)

	ed.RemoveOption(first)
	ed.RemoveOption(second)

	third, err := ed.AddOption("C")
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
	assert.NotEqual(t, second, third)
	assert.Greater(t, third, second)
}

func TestEditor_OptionsRejectedForScalarTypes(t *testing.T) {
	ed, err := NewEditor(registry.TypeDate)
	require.NoError(t, err)
	_, err = ed.AddOption("nope")
	assert.Error(t, err)
}

func TestEditor_MCQAnswer(t *testing.T) {
	ed, err := NewEditor(registry.TypeMCQ)
	require.NoError(t, err)
	yes, err := ed.AddOption("Yes")
	require.NoError(t, err)
	no, err := ed.AddOption("No")
	require.NoError(t, err)

	_, hasAnswer := ed.Answer()
	assert.False(t, hasAnswer)

	require.NoError(t, ed.SetAnswer(yes))
	got, ok := ed.Answer()
	require.True(t, ok)
	assert.Equal(t, yes, got)

	// answer must reference a live option
	assert.Error(t, ed.SetAnswer(999))

	// removing the answer option clears the answer
	ed.RemoveOption(yes)
	_, hasAnswer = ed.Answer()
	assert.False(t, hasAnswer)

	require.NoError(t, ed.SetAnswer(no))
}

func TestEditor_MSQSelection(t *testing.T) {
	ed, err := NewEditor(registry.TypeMSQ)
	require.NoError(t, err)
	a, err := ed.AddOption("A")
	require.NoError(t, err)
	b, err := ed.AddOption("B")
	require.NoError(t, err)

	require.NoError(t, ed.ToggleSelected(a))
	require.NoError(t, ed.ToggleSelected(b))
	assert.True(t, ed.Selected(a))
	assert.True(t, ed.Selected(b))

	// toggling again deselects
	require.NoError(t, ed.ToggleSelected(b))
	assert.False(t, ed.Selected(b))

	// removing a selected option drops it from the selection
	ed.RemoveOption(a)
	assert.False(t, ed.Selected(a))

	assert.Error(t, ed.ToggleSelected(999))

	scalar, err := NewEditor(registry.TypeText)
	require.NoError(t, err)
	assert.Error(t, scalar.ToggleSelected(0))
}

func TestEditor_SetOptionLabel(t *testing.T) {
	ed, err := NewEditor(registry.TypeMCQ)
	require.NoError(t, err)
	key, err := ed.AddOption("Tyop")
	require.NoError(t, err)

	ed.SetOptionLabel(key, "Typo")
	opts := ed.Options()
	require.Len(t, opts, 1)
	assert.Equal(t, "Typo", opts[0].Label)
}

func TestFromDefinition(t *testing.T) {
	def := Definition{
		FieldName:        "Preferred Languages",
		FieldType:        "msq",
		IsRequired:       true,
		IsActive:         true,
		DisplayOrder:     3,
		FilledByRoleID:   intPtr(4),
		EditableByRoleID: intPtr(5),
		Options: []registry.Option{
			{Label: "Go", IsCorrect: boolPtr(true)},
			{Label: "Rust", IsCorrect: nil},
			{Label: "Zig", IsCorrect: boolPtr(true)},
		},
	}

	ed, err := FromDefinition(def)
	require.NoError(t, err)

	assert.Equal(t, "Preferred Languages", ed.Name())
	opts := ed.Options()
	require.Len(t, opts, 3)
	assert.True(t, ed.Selected(opts[0].Key))
	assert.False(t, ed.Selected(opts[1].Key))
	assert.True(t, ed.Selected(opts[2].Key))
}

func TestFromDefinition_MCQAnswer(t *testing.T) {
	ed, err := FromDefinition(Definition{
		FieldName: "Enrolled",
		FieldType: "mcq",
		Options: []registry.Option{
			{Label: "Yes", IsCorrect: boolPtr(false)},
			{Label: "No", IsCorrect: boolPtr(true)},
		},
	})
	require.NoError(t, err)

	opts := ed.Options()
	require.Len(t, opts, 2)
	answer, ok := ed.Answer()
	require.True(t, ok)
	assert.Equal(t, opts[1].Key, answer)
}

func TestFromDefinition_ValidatorText(t *testing.T) {
	ed, err := FromDefinition(Definition{
		FieldName: "Resume",
		FieldType: "document",
		Validation: map[string]any{
			"allowed_extensions": []any{".pdf", ".docx"},
			"max_size_mb":        float64(5),
		},
	})
	require.NoError(t, err)

	got := ed.Validators()
	assert.Equal(t, ".pdf, .docx", got["allowed_extensions"])
	assert.Equal(t, "5", got["max_size_mb"])
}
