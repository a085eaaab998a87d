package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	want := []FieldType{TypeText, TypeMCQ, TypeMSQ, TypeDate, TypeNumber, TypeDocument}
	assert.Equal(t, want, Types())

	// callers must not be able to mutate the registry
	got := Types()
	got[0] = "mutated"
	assert.Equal(t, want, Types())
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, []string{"text", "mcq", "msq", "date", "number", "document"}, TypeStrings())
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   FieldType
		want bool
	}{
		{TypeText, true},
		{TypeMCQ, true},
		{TypeMSQ, true},
		{TypeDate, true},
		{TypeNumber, true},
		{TypeDocument, true},
		{"", false},
		{"TEXT", false},
		{"dropdown", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.in))
		})
	}
}

func TestValidatorsFor(t *testing.T) {
	tests := []struct {
		typ  FieldType
		want map[string]ValueKind
	}{
		{TypeText, map[string]ValueKind{
			ValidatorMinLength: KindNumber,
			ValidatorMaxLength: KindNumber,
		}},
		{TypeNumber, map[string]ValueKind{
			ValidatorMinValue: KindNumber,
			ValidatorMaxValue: KindNumber,
		}},
		{TypeDate, map[string]ValueKind{
			ValidatorMinDate: KindDate,
			ValidatorMaxDate: KindDate,
		}},
		{TypeDocument, map[string]ValueKind{
			ValidatorExtensions: KindStringList,
			ValidatorMaxSizeMB:  KindNumber,
		}},
		// choice types have no validators
		{TypeMCQ, map[string]ValueKind{}},
		{TypeMSQ, map[string]ValueKind{}},
		// unknown types degrade to an empty map
		{"bogus", map[string]ValueKind{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatorsFor(tt.typ))
		})
	}
}

func TestValidatorsFor_ReturnsCopy(t *testing.T) {
	got := ValidatorsFor(TypeText)
	got["injected"] = KindNumber
	assert.NotContains(t, ValidatorsFor(TypeText), "injected")
}

func TestHasOptions(t *testing.T) {
	assert.True(t, HasOptions(TypeMCQ))
	assert.True(t, HasOptions(TypeMSQ))
	assert.False(t, HasOptions(TypeText))
	assert.False(t, HasOptions(TypeNumber))
	assert.False(t, HasOptions(TypeDate))
	assert.False(t, HasOptions(TypeDocument))
}
