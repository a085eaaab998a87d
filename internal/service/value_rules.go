package service

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/registry"
)

// FieldSpec is the subset of a field definition the value rules need.
// Plain data so the rules stay independent of the persistence layer.
type FieldSpec struct {
	Type       registry.FieldType
	Validation map[string]any
	Options    []registry.Option
}

// DocumentValue is the stored shape of a document-typed value.
type DocumentValue struct {
	Name   string  `json:"name"`
	SizeMB float64 `json:"size_mb"`
}

// ValidateValue checks a candidate value against the field's type and
// validation map and returns the normalized form to store. Dates are
// normalized to the wire format; everything else is stored as given.
func ValidateValue(spec FieldSpec, value any) (any, error) {
	validation := spec.Validation
	if validation == nil {
		validation = map[string]any{}
	}

	switch spec.Type {
	case registry.TypeText:
		s, ok := value.(string)
		if !ok {
			return nil, apperrors.ErrInvalidValue.WithMessage("expected string for text field")
		}
		if minLen, ok := numberFromAny(validation[registry.ValidatorMinLength]); ok && float64(len(s)) < minLen {
			return nil, apperrors.ErrInvalidValue.WithMessagef("text too short, min length %v", minLen)
		}
		if maxLen, ok := numberFromAny(validation[registry.ValidatorMaxLength]); ok && float64(len(s)) > maxLen {
			return nil, apperrors.ErrInvalidValue.WithMessagef("text too long, max length %v", maxLen)
		}
		return s, nil

	case registry.TypeNumber:
		n, ok := numberFromAny(value)
		if !ok {
			return nil, apperrors.ErrInvalidValue.WithMessage("expected number for number field")
		}
		if minVal, ok := numberFromAny(validation[registry.ValidatorMinValue]); ok && n < minVal {
			return nil, apperrors.ErrInvalidValue.WithMessagef("number too small, min %v", minVal)
		}
		if maxVal, ok := numberFromAny(validation[registry.ValidatorMaxValue]); ok && n > maxVal {
			return nil, apperrors.ErrInvalidValue.WithMessagef("number too large, max %v", maxVal)
		}
		return n, nil

	case registry.TypeDate:
		s, ok := value.(string)
		if !ok {
			return nil, apperrors.ErrInvalidValue.WithMessage("expected date string for date field")
		}
		d, err := parseDate(s)
		if err != nil {
			return nil, apperrors.ErrInvalidValue.WithMessage("invalid date string")
		}
		if raw, present := validation[registry.ValidatorMinDate]; present {
			if minDate, err := parseDate(fmt.Sprint(raw)); err == nil && d.Before(minDate) {
				return nil, apperrors.ErrInvalidValue.WithMessagef("date too early, min %v", raw)
			}
		}
		if raw, present := validation[registry.ValidatorMaxDate]; present {
			if maxDate, err := parseDate(fmt.Sprint(raw)); err == nil && d.After(maxDate) {
				return nil, apperrors.ErrInvalidValue.WithMessagef("date too late, max %v", raw)
			}
		}
		return d.Format(dateLayout), nil

	case registry.TypeMCQ:
		s, ok := value.(string)
		if !ok || !slices.Contains(optionLabels(spec.Options), s) {
			return nil, apperrors.ErrInvalidValue.WithMessagef("invalid option chosen: %v", value)
		}
		return s, nil

	case registry.TypeMSQ:
		selected, err := stringList(value)
		if err != nil {
			return nil, apperrors.ErrInvalidValue.WithMessage("expected list of options")
		}
		labels := optionLabels(spec.Options)
		for _, v := range selected {
			if !slices.Contains(labels, v) {
				return nil, apperrors.ErrInvalidValue.WithMessagef("invalid option: %v", v)
			}
		}
		return selected, nil

	case registry.TypeDocument:
		doc, ok := documentFromAny(value)
		if !ok {
			return nil, apperrors.ErrInvalidValue.WithMessage("document must have 'name' and 'size_mb'")
		}
		if err := ValidateDocument(validation, doc.Name, doc.SizeMB); err != nil {
			return nil, err
		}
		return map[string]any{"name": doc.Name, "size_mb": doc.SizeMB}, nil

	default:
		return nil, apperrors.ErrInvalidValue.WithMessagef("unknown field type: %s", spec.Type)
	}
}

// ValidateDocument checks a file name and size against a document
// field's validation map. An empty allowed-extensions list admits every
// extension; matching is a suffix check on the file name.
func ValidateDocument(validation map[string]any, fileName string, sizeMB float64) error {
	allowed := extensionList(validation[registry.ValidatorExtensions])
	if len(allowed) > 0 {
		ok := false
		for _, ext := range allowed {
			if strings.HasSuffix(fileName, ext) {
				ok = true
				break
			}
		}
		if !ok {
			return apperrors.ErrBadFileType.WithMessagef(
				"file extension not allowed, allowed: %v", allowed)
		}
	}
	if maxSize, ok := numberFromAny(validation[registry.ValidatorMaxSizeMB]); ok && sizeMB > maxSize {
		return apperrors.ErrFileTooLarge.WithMessagef("file size exceeds max %v MB", maxSize)
	}
	return nil
}

// WrapValue wraps a normalized value into its storage envelope.
func WrapValue(v any) map[string]any {
	return map[string]any{"data": v}
}

// UnwrapValue extracts the stored value from its envelope. Values
// written without the envelope are returned as-is.
func UnwrapValue(stored map[string]any) any {
	if v, ok := stored["data"]; ok {
		return v
	}
	return stored
}

// parseDate accepts the wire format plus full timestamps.
func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse(dateLayout, s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

func optionLabels(options []registry.Option) []string {
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	return labels
}

func stringList(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is not a string", i)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("not a list")
	}
}

func extensionList(v any) []string {
	list, err := stringList(v)
	if err != nil {
		return nil
	}
	return list
}

func documentFromAny(v any) (DocumentValue, bool) {
	switch doc := v.(type) {
	case DocumentValue:
		return doc, doc.Name != ""
	case map[string]any:
		name, nameOK := doc["name"].(string)
		size, sizeOK := numberFromAny(doc["size_mb"])
		if !nameOK || !sizeOK {
			return DocumentValue{}, false
		}
		return DocumentValue{Name: name, SizeMB: size}, true
	default:
		return DocumentValue{}, false
	}
}
