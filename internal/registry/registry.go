// Package registry enumerates the supported user-field types and the
// validators applicable to each type.
//
// The registry is the single source of truth for what a field definition
// may contain: the field-type enum served by GET /user-required-fields/
// field-types and the per-type validator sets served by
// GET /user-required-fields/validators-by-type/{type}. Lookups are pure
// and side-effect free.
package registry

// FieldType identifies the kind of input a required field renders as.
type FieldType string

// Supported field types.
const (
	TypeText     FieldType = "text"
	TypeMCQ      FieldType = "mcq"
	TypeMSQ      FieldType = "msq"
	TypeDate     FieldType = "date"
	TypeNumber   FieldType = "number"
	TypeDocument FieldType = "document"
)

// ValueKind is the primitive kind a validator value must carry.
type ValueKind string

// Validator value kinds.
const (
	KindNumber     ValueKind = "number"
	KindDate       ValueKind = "date"
	KindStringList ValueKind = "list[str]"
)

// Validator names.
const (
	ValidatorMinLength  = "min_length"
	ValidatorMaxLength  = "max_length"
	ValidatorMinValue   = "min_value"
	ValidatorMaxValue   = "max_value"
	ValidatorMinDate    = "min_date"
	ValidatorMaxDate    = "max_date"
	ValidatorExtensions = "allowed_extensions"
	ValidatorMaxSizeMB  = "max_size_mb"
)

// Option is one selectable choice of an mcq/msq field.
//
// IsCorrect is deliberately a tri-state: for mcq options it is always
// true or false, while msq options carry true for designated answers
// and null for the rest. Consumers distinguish "explicitly wrong" from
// "not an answer", so the null must survive serialization round-trips.
type Option struct {
	Label     string `json:"label"`
	IsCorrect *bool  `json:"is_correct"`
}

// fieldTypes is ordered; the order is part of the API response.
var fieldTypes = []FieldType{
	TypeText, TypeMCQ, TypeMSQ, TypeDate, TypeNumber, TypeDocument,
}

var validatorsByType = map[FieldType]map[string]ValueKind{
	TypeText: {
		ValidatorMinLength: KindNumber,
		ValidatorMaxLength: KindNumber,
	},
	TypeNumber: {
		ValidatorMinValue: KindNumber,
		ValidatorMaxValue: KindNumber,
	},
	TypeDate: {
		ValidatorMinDate: KindDate,
		ValidatorMaxDate: KindDate,
	},
	TypeDocument: {
		ValidatorExtensions: KindStringList,
		ValidatorMaxSizeMB:  KindNumber,
	},
}

// Types returns the fixed list of supported field types.
func Types() []FieldType {
	out := make([]FieldType, len(fieldTypes))
	copy(out, fieldTypes)
	return out
}

// TypeStrings returns the supported field types as plain strings.
func TypeStrings() []string {
	out := make([]string, len(fieldTypes))
	for i, t := range fieldTypes {
		out[i] = string(t)
	}
	return out
}

// Valid reports whether t is a supported field type.
func Valid(t FieldType) bool {
	for _, ft := range fieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// ValidatorsFor returns the validators applicable to the given field
// type, keyed by validator name. Unknown types yield an empty map so
// callers can degrade gracefully instead of failing.
func ValidatorsFor(t FieldType) map[string]ValueKind {
	src, ok := validatorsByType[t]
	if !ok {
		return map[string]ValueKind{}
	}
	out := make(map[string]ValueKind, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// HasOptions reports whether the field type carries an option list.
func HasOptions(t FieldType) bool {
	return t == TypeMCQ || t == TypeMSQ
}
