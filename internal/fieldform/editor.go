// Package fieldform models the field-definition editor and the
// rendered per-user field form on the client side. The Editor is a
// plain state machine; payload building and coercion live in
// payload.go, the renderer model in form.go.
package fieldform

import (
	"strings"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/registry"
)

// Option is an editable choice row. Keys are synthetic monotonic
// identifiers assigned at creation and never reused, so deleting and
// re-adding options cannot alias answers or selections.
type Option struct {
	Key   int
	Label string
}

// noAnswer marks an mcq editor with no correct option chosen.
const noAnswer = -1

// Editor holds the in-progress state of a field definition. A zero
// Editor is not usable; construct with NewEditor or FromDefinition.
type Editor struct {
	fieldType    registry.FieldType
	name         string
	isRequired   bool
	isActive     bool
	displayOrder int
	filledBy     *int
	editableBy   *int

	// validators maps enabled validator names to their raw text value.
	// Checking a validator adds it with an empty value; unchecking
	// removes it entirely.
	validators map[string]string

	options  []Option
	nextKey  int
	answer   int          // mcq: key of the correct option
	selected map[int]bool // msq: keys currently selected

	touched map[string]bool
}

// NewEditor starts a blank editor for the given field type.
func NewEditor(fieldType registry.FieldType) (*Editor, error) {
	if !registry.Valid(fieldType) {
		return nil, apperrors.ErrInvalidFieldDef.WithMessagef("unknown field type %q", fieldType)
	}
	return &Editor{
		fieldType:  fieldType,
		isRequired: true,
		isActive:   true,
		validators: make(map[string]string),
		answer:     noAnswer,
		selected:   make(map[int]bool),
		touched:    make(map[string]bool),
	}, nil
}

// Definition is an existing field definition loaded for editing.
type Definition struct {
	FieldName        string
	FieldType        string
	IsRequired       bool
	IsActive         bool
	DisplayOrder     int
	FilledByRoleID   *int
	EditableByRoleID *int
	Options          []registry.Option
	Validation       map[string]any
}

// FromDefinition pre-fills an editor from a stored definition. Option
// keys are freshly assigned; mcq answer and msq selection are derived
// from the stored is_correct markers.
func FromDefinition(def Definition) (*Editor, error) {
	ed, err := NewEditor(registry.FieldType(def.FieldType))
	if err != nil {
		return nil, err
	}
	ed.name = def.FieldName
	ed.isRequired = def.IsRequired
	ed.isActive = def.IsActive
	ed.displayOrder = def.DisplayOrder
	ed.filledBy = def.FilledByRoleID
	ed.editableBy = def.EditableByRoleID

	for name, value := range def.Validation {
		ed.validators[name] = rawValidatorValue(name, value)
	}
	for _, opt := range def.Options {
		key := ed.addOption(opt.Label)
		if opt.IsCorrect != nil && *opt.IsCorrect {
			switch ed.fieldType {
			case registry.TypeMCQ:
				ed.answer = key
			case registry.TypeMSQ:
				ed.selected[key] = true
			}
		}
	}
	return ed, nil
}

// FieldType returns the current field type.
func (e *Editor) FieldType() registry.FieldType { return e.fieldType }

// Name returns the current field name.
func (e *Editor) Name() string { return e.name }

// SetName updates the field name.
func (e *Editor) SetName(name string) {
	e.name = strings.TrimSpace(name)
	e.touch("field_name")
}

// SetType switches the field type. Validators, options, the mcq
// answer, and the msq selection are all cleared: none of them carry
// meaning across types.
func (e *Editor) SetType(fieldType registry.FieldType) error {
	if !registry.Valid(fieldType) {
		return apperrors.ErrInvalidFieldDef.WithMessagef("unknown field type %q", fieldType)
	}
	if fieldType == e.fieldType {
		return nil
	}
	e.fieldType = fieldType
	e.validators = make(map[string]string)
	e.options = nil
	e.answer = noAnswer
	e.selected = make(map[int]bool)
	e.touch("field_type", "validation", "options")
	return nil
}

// SetRequired toggles the required flag.
func (e *Editor) SetRequired(required bool) {
	e.isRequired = required
	e.touch("is_required")
}

// SetActive toggles the active flag.
func (e *Editor) SetActive(active bool) {
	e.isActive = active
	e.touch("is_active")
}

// SetDisplayOrder updates the form position.
func (e *Editor) SetDisplayOrder(order int) {
	e.displayOrder = order
	e.touch("display_order")
}

// SetFilledBy assigns the role allowed to fill the field first.
func (e *Editor) SetFilledBy(roleID *int) {
	e.filledBy = roleID
	e.touch("filled_by_role_id")
}

// SetEditableBy assigns the role allowed to edit a filled value. Nil
// locks the field to administrators.
func (e *Editor) SetEditableBy(roleID *int) {
	e.editableBy = roleID
	e.touch("editable_by_role_id")
}

// EnableValidator checks a validator box, adding it with an empty
// value. Unknown validators for the current type are rejected.
func (e *Editor) EnableValidator(name string) error {
	if _, ok := registry.ValidatorsFor(e.fieldType)[name]; !ok {
		return apperrors.ErrInvalidFieldDef.WithMessagef("validator %q does not apply to type %q", name, e.fieldType)
	}
	if _, on := e.validators[name]; !on {
		e.validators[name] = ""
	}
	e.touch("validation")
	return nil
}

// DisableValidator unchecks a validator box, removing it entirely.
func (e *Editor) DisableValidator(name string) {
	delete(e.validators, name)
	e.touch("validation")
}

// SetValidatorValue updates the raw text of an enabled validator.
func (e *Editor) SetValidatorValue(name, raw string) error {
	if _, on := e.validators[name]; !on {
		if err := e.EnableValidator(name); err != nil {
			return err
		}
	}
	e.validators[name] = raw
	e.touch("validation")
	return nil
}

// Validators returns the enabled validator names and raw values.
func (e *Editor) Validators() map[string]string {
	out := make(map[string]string, len(e.validators))
	for k, v := range e.validators {
		out[k] = v
	}
	return out
}

// AddOption appends a choice and returns its key.
func (e *Editor) AddOption(label string) (int, error) {
	if !registry.HasOptions(e.fieldType) {
		return 0, apperrors.ErrInvalidFieldDef.WithMessagef("type %q does not take options", e.fieldType)
	}
	return e.addOption(label), nil
}

func (e *Editor) addOption(label string) int {
	key := e.nextKey
	e.nextKey++
	e.options = append(e.options, Option{Key: key, Label: label})
	e.touch("options")
	return key
}

// SetOptionLabel renames an option in place.
func (e *Editor) SetOptionLabel(key int, label string) {
	for i := range e.options {
		if e.options[i].Key == key {
			e.options[i].Label = label
			e.touch("options")
			return
		}
	}
}

// RemoveOption deletes an option. The key is retired, never reused.
// Deleting the mcq answer clears the answer; deleting a selected msq
// option removes it from the selection.
func (e *Editor) RemoveOption(key int) {
	for i := range e.options {
		if e.options[i].Key == key {
			e.options = append(e.options[:i], e.options[i+1:]...)
			break
		}
	}
	if e.answer == key {
		e.answer = noAnswer
	}
	delete(e.selected, key)
	e.touch("options")
}

// Options returns the current option rows in display order.
func (e *Editor) Options() []Option {
	out := make([]Option, len(e.options))
	copy(out, e.options)
	return out
}

// SetAnswer marks the mcq correct option.
func (e *Editor) SetAnswer(key int) error {
	if e.fieldType != registry.TypeMCQ {
		return apperrors.ErrInvalidFieldDef.WithMessage("answers apply to mcq fields only")
	}
	if !e.hasOption(key) {
		return apperrors.ErrInvalidFieldDef.WithMessage("answer must reference an existing option")
	}
	e.answer = key
	e.touch("options")
	return nil
}

// Answer returns the mcq answer key, or false when none is set.
func (e *Editor) Answer() (int, bool) {
	if e.answer == noAnswer {
		return 0, false
	}
	return e.answer, true
}

// ToggleSelected flips an msq option in or out of the selection.
func (e *Editor) ToggleSelected(key int) error {
	if e.fieldType != registry.TypeMSQ {
		return apperrors.ErrInvalidFieldDef.WithMessage("selection applies to msq fields only")
	}
	if !e.hasOption(key) {
		return apperrors.ErrInvalidFieldDef.WithMessage("selection must reference an existing option")
	}
	if e.selected[key] {
		delete(e.selected, key)
	} else {
		e.selected[key] = true
	}
	e.touch("options")
	return nil
}

// Selected reports whether an msq option key is selected.
func (e *Editor) Selected(key int) bool { return e.selected[key] }

func (e *Editor) hasOption(key int) bool {
	for _, opt := range e.options {
		if opt.Key == key {
			return true
		}
	}
	return false
}

func (e *Editor) touch(keys ...string) {
	for _, k := range keys {
		e.touched[k] = true
	}
}
