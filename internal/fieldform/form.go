package fieldform

import (
	"etree.io/etree/internal/registry"
)

// WidgetKind selects the input widget a field renders as.
type WidgetKind string

// Widget kinds by field type.
const (
	WidgetInput         WidgetKind = "input"          // text, number, date
	WidgetSingleSelect  WidgetKind = "single_select"  // mcq
	WidgetCheckboxGroup WidgetKind = "checkbox_group" // msq
	WidgetFilePicker    WidgetKind = "file_picker"    // document
)

// Entry is one row of the server's merged field/value response
// (GET /users/me/fields).
type Entry struct {
	FieldID    int               `json:"field_id"`
	FieldName  string            `json:"field_name"`
	FieldType  string            `json:"field_type"`
	IsRequired bool              `json:"is_required"`
	Filled     bool              `json:"filled"`
	Value      any               `json:"value"`
	Options    []registry.Option `json:"options"`
	Validation map[string]any    `json:"validation"`
}

// FormField is a renderable field: the definition, the widget to draw,
// and the current value. Document download/delete controls exist only
// once a file is filled in.
type FormField struct {
	FieldID      int
	Name         string
	Type         registry.FieldType
	Widget       WidgetKind
	Required     bool
	Filled       bool
	Value        any
	OptionLabels []string
	Validation   map[string]any
	CanDownload  bool
	CanDelete    bool
}

// BuildForm converts server entries into renderable form fields,
// preserving server order.
func BuildForm(entries []Entry) []FormField {
	out := make([]FormField, 0, len(entries))
	for _, entry := range entries {
		fieldType := registry.FieldType(entry.FieldType)
		field := FormField{
			FieldID:    entry.FieldID,
			Name:       entry.FieldName,
			Type:       fieldType,
			Widget:     widgetFor(fieldType),
			Required:   entry.IsRequired,
			Filled:     entry.Filled,
			Value:      entry.Value,
			Validation: entry.Validation,
		}
		if registry.HasOptions(fieldType) {
			field.OptionLabels = make([]string, 0, len(entry.Options))
			for _, opt := range entry.Options {
				field.OptionLabels = append(field.OptionLabels, opt.Label)
			}
		}
		if fieldType == registry.TypeDocument && entry.Filled {
			field.CanDownload = true
			field.CanDelete = true
		}
		out = append(out, field)
	}
	return out
}

func widgetFor(t registry.FieldType) WidgetKind {
	switch t {
	case registry.TypeMCQ:
		return WidgetSingleSelect
	case registry.TypeMSQ:
		return WidgetCheckboxGroup
	case registry.TypeDocument:
		return WidgetFilePicker
	default:
		return WidgetInput
	}
}
