package service

import (
	"fmt"
	"strings"
	"time"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/registry"
)

// dateLayout is the wire format for date-typed values and validators.
const dateLayout = "2006-01-02"

// ValidateFieldDefinition checks a field definition payload against the
// type registry: the type must be known, every validator key must be
// declared for that type, and each validator value must match its
// declared kind. Options are only meaningful for choice types.
func ValidateFieldDefinition(fieldType string, validation map[string]any, options []registry.Option) error {
	ft := registry.FieldType(fieldType)
	if !registry.Valid(ft) {
		return apperrors.ErrInvalidFieldDef.WithMessagef("unknown field type %q", fieldType)
	}

	allowed := registry.ValidatorsFor(ft)
	for name, value := range validation {
		kind, ok := allowed[name]
		if !ok {
			return apperrors.ErrInvalidFieldDef.WithMessagef(
				"validator %q is not supported for field type %q", name, fieldType)
		}
		if err := checkValidatorKind(name, kind, value); err != nil {
			return err
		}
	}

	if len(options) > 0 && !registry.HasOptions(ft) {
		return apperrors.ErrInvalidFieldDef.WithMessagef(
			"options are not allowed for field type %q", fieldType)
	}
	if registry.HasOptions(ft) {
		seen := make(map[string]struct{}, len(options))
		for _, opt := range options {
			label := strings.TrimSpace(opt.Label)
			if label == "" {
				return apperrors.ErrInvalidFieldDef.WithMessage("option labels must not be empty")
			}
			if _, dup := seen[label]; dup {
				return apperrors.ErrInvalidFieldDef.WithMessagef("duplicate option label %q", label)
			}
			seen[label] = struct{}{}
		}
	}

	return nil
}

func checkValidatorKind(name string, kind registry.ValueKind, value any) error {
	switch kind {
	case registry.KindNumber:
		if _, ok := numberFromAny(value); !ok {
			return apperrors.ErrInvalidFieldDef.WithMessagef("validator %q must be a number", name)
		}
	case registry.KindDate:
		s, ok := value.(string)
		if !ok {
			return apperrors.ErrInvalidFieldDef.WithMessagef("validator %q must be a date string", name)
		}
		if _, err := time.Parse(dateLayout, s); err != nil {
			return apperrors.ErrInvalidFieldDef.WithMessagef(
				"validator %q must be a date in %s format", name, dateLayout)
		}
	case registry.KindStringList:
		items, ok := value.([]any)
		if !ok {
			if _, ok := value.([]string); ok {
				return nil
			}
			return apperrors.ErrInvalidFieldDef.WithMessagef("validator %q must be a list of strings", name)
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return apperrors.ErrInvalidFieldDef.WithMessagef("validator %q must be a list of strings", name)
			}
		}
	}
	return nil
}

// NormalizeExtensions splits a comma-separated extension string into a
// trimmed list with duplicates removed in first-occurrence order.
// Empty segments are dropped. Entries are kept verbatim otherwise, so
// ".pdf" and "pdf" remain distinct.
func NormalizeExtensions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		ext := strings.TrimSpace(p)
		if ext == "" {
			continue
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

// numberFromAny coerces JSON-decoded numeric representations to float64.
func numberFromAny(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case fmt.Stringer:
		return 0, false
	default:
		return 0, false
	}
}
