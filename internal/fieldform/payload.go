package fieldform

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/registry"
)

// CreatePayload serializes the full editor state for
// POST /user-required-fields/. Validator values are coerced per the
// registry kinds; types without options submit no options key at all.
func (e *Editor) CreatePayload(roleID int) (map[string]any, error) {
	if strings.TrimSpace(e.name) == "" {
		return nil, apperrors.ErrInvalidFieldDef.WithMessage("field name cannot be empty")
	}
	validation, err := e.coerceValidators()
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"role_id":       roleID,
		"field_name":    e.name,
		"field_type":    string(e.fieldType),
		"is_required":   e.isRequired,
		"is_active":     e.isActive,
		"display_order": e.displayOrder,
		"validation":    validation,
	}
	if e.filledBy != nil {
		payload["filled_by_role_id"] = *e.filledBy
	}
	if e.editableBy != nil {
		payload["editable_by_role_id"] = *e.editableBy
	}
	if registry.HasOptions(e.fieldType) {
		payload["options"] = e.serializeOptions()
	}
	return payload, nil
}

// UpdatePayload serializes only the keys touched since the editor was
// constructed, for PUT /user-required-fields/{id}. Unset keys are
// absent from the payload so the server leaves them untouched.
func (e *Editor) UpdatePayload() (map[string]any, error) {
	payload := map[string]any{}
	if e.touched["field_name"] {
		if strings.TrimSpace(e.name) == "" {
			return nil, apperrors.ErrInvalidFieldDef.WithMessage("field name cannot be empty")
		}
		payload["field_name"] = e.name
	}
	if e.touched["field_type"] {
		payload["field_type"] = string(e.fieldType)
	}
	if e.touched["is_required"] {
		payload["is_required"] = e.isRequired
	}
	if e.touched["is_active"] {
		payload["is_active"] = e.isActive
	}
	if e.touched["display_order"] {
		payload["display_order"] = e.displayOrder
	}
	if e.touched["filled_by_role_id"] && e.filledBy != nil {
		payload["filled_by_role_id"] = *e.filledBy
	}
	if e.touched["editable_by_role_id"] && e.editableBy != nil {
		payload["editable_by_role_id"] = *e.editableBy
	}
	if e.touched["validation"] {
		validation, err := e.coerceValidators()
		if err != nil {
			return nil, err
		}
		payload["validation"] = validation
	}
	if e.touched["options"] && registry.HasOptions(e.fieldType) {
		payload["options"] = e.serializeOptions()
	}
	return payload, nil
}

// serializeOptions renders the option rows with answer markers: mcq
// options carry is_correct true for the answer and false for the rest;
// msq options carry true for selected ones and null for the rest.
func (e *Editor) serializeOptions() []registry.Option {
	out := make([]registry.Option, 0, len(e.options))
	for _, opt := range e.options {
		var isCorrect *bool
		switch e.fieldType {
		case registry.TypeMCQ:
			v := opt.Key == e.answer
			isCorrect = &v
		case registry.TypeMSQ:
			if e.selected[opt.Key] {
				v := true
				isCorrect = &v
			}
		}
		out = append(out, registry.Option{Label: opt.Label, IsCorrect: isCorrect})
	}
	return out
}

// coerceValidators converts raw text validator values to their wire
// kinds: numeric validators to numbers (max_size_mb to an integer),
// allowed_extensions to a normalized list, dates pass through.
func (e *Editor) coerceValidators() (map[string]any, error) {
	kinds := registry.ValidatorsFor(e.fieldType)
	out := make(map[string]any, len(e.validators))
	for name, raw := range e.validators {
		kind, ok := kinds[name]
		if !ok {
			return nil, apperrors.ErrInvalidFieldDef.WithMessagef("validator %q does not apply to type %q", name, e.fieldType)
		}
		raw = strings.TrimSpace(raw)
		switch {
		case name == registry.ValidatorMaxSizeMB:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, apperrors.ErrInvalidFieldDef.WithMessagef("validator %q requires an integer value", name)
			}
			out[name] = n
		case kind == registry.KindNumber:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, apperrors.ErrInvalidFieldDef.WithMessagef("validator %q requires a numeric value", name)
			}
			out[name] = n
		case kind == registry.KindStringList:
			out[name] = normalizeExtensions(raw)
		default:
			out[name] = raw
		}
	}
	return out, nil
}

// normalizeExtensions splits a comma-separated extension list, trims
// whitespace, drops empty tokens, and deduplicates keeping the first
// occurrence. Entries are kept verbatim otherwise.
func normalizeExtensions(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// rawValidatorValue renders a stored validator value back to editor
// text for pre-filling.
func rawValidatorValue(name string, value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
