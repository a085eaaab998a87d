package fieldform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/internal/registry"
)

func TestBuildForm(t *testing.T) {
	entries := []Entry{
		{
			FieldID:    1,
			FieldName:  "Full Address",
			FieldType:  "text",
			IsRequired: true,
			Filled:     true,
			Value:      "221B Baker Street",
			Validation: map[string]any{"max_length": float64(120)},
		},
		{
			FieldID:   2,
			FieldName: "Enrolled",
			FieldType: "mcq",
			Options: []registry.Option{
				{Label: "Yes", IsCorrect: boolPtr(true)},
				{Label: "No", IsCorrect: boolPtr(false)},
			},
		},
		{
			FieldID:   3,
			FieldName: "Languages",
			FieldType: "msq",
			Options: []registry.Option{
				{Label: "Go"},
				{Label: "Rust"},
			},
		},
		{
			FieldID:   4,
			FieldName: "Resume",
			FieldType: "document",
			Filled:    true,
			Value:     map[string]any{"name": "cv.pdf", "size_mb": 1.2},
		},
		{
			FieldID:   5,
			FieldName: "Transcript",
			FieldType: "document",
			Filled:    false,
		},
		{
			FieldID:   6,
			FieldName: "Birthday",
			FieldType: "date",
		},
	}

	form := BuildForm(entries)
	require.Len(t, form, 6)

	address := form[0]
	assert.Equal(t, WidgetInput, address.Widget)
	assert.True(t, address.Filled)
	assert.Equal(t, "221B Baker Street", address.Value)
	assert.Nil(t, address.OptionLabels)

	enrolled := form[1]
	assert.Equal(t, WidgetSingleSelect, enrolled.Widget)
	assert.Equal(t, []string{"Yes", "No"}, enrolled.OptionLabels)

	languages := form[2]
	assert.Equal(t, WidgetCheckboxGroup, languages.Widget)
	assert.Equal(t, []string{"Go", "Rust"}, languages.OptionLabels)

	resume := form[3]
	assert.Equal(t, WidgetFilePicker, resume.Widget)
	assert.True(t, resume.CanDownload)
	assert.True(t, resume.CanDelete)

	// an unfilled document field exposes no download/delete controls
	transcript := form[4]
	assert.Equal(t, WidgetFilePicker, transcript.Widget)
	assert.False(t, transcript.CanDownload)
	assert.False(t, transcript.CanDelete)

	birthday := form[5]
	assert.Equal(t, WidgetInput, birthday.Widget)
}

func TestBuildForm_Empty(t *testing.T) {
	assert.Empty(t, BuildForm(nil))
}

func TestWidgetFor(t *testing.T) {
	tests := []struct {
		typ  registry.FieldType
		want WidgetKind
	}{
		{registry.TypeText, WidgetInput},
		{registry.TypeNumber, WidgetInput},
		{registry.TypeDate, WidgetInput},
		{registry.TypeMCQ, WidgetSingleSelect},
		{registry.TypeMSQ, WidgetCheckboxGroup},
		{registry.TypeDocument, WidgetFilePicker},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, widgetFor(tt.typ))
		})
	}
}
