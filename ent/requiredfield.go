// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"etree.io/etree/ent/requiredfield"
	"etree.io/etree/ent/role"
	"etree.io/etree/internal/registry"
)

// RequiredField is the model entity for the RequiredField schema.
type RequiredField struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// RoleID holds the value of the "role_id" field.
	RoleID int `json:"role_id,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// FieldType holds the value of the "field_type" field.
	FieldType string `json:"field_type,omitempty"`
	// IsRequired holds the value of the "is_required" field.
	IsRequired bool `json:"is_required,omitempty"`
	// FilledByRoleID holds the value of the "filled_by_role_id" field.
	FilledByRoleID int `json:"filled_by_role_id,omitempty"`
	// EditableByRoleID holds the value of the "editable_by_role_id" field.
	EditableByRoleID *int `json:"editable_by_role_id,omitempty"`
	// Options holds the value of the "options" field.
	Options []registry.Option `json:"options,omitempty"`
	// Validation holds the value of the "validation" field.
	Validation map[string]interface{} `json:"validation,omitempty"`
	// DisplayOrder holds the value of the "display_order" field.
	DisplayOrder int `json:"display_order,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequiredFieldQuery when eager-loading is set.
	Edges        RequiredFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequiredFieldEdges holds the relations/edges for other nodes in the graph.
type RequiredFieldEdges struct {
	// Role holds the value of the role edge.
	Role *Role `json:"role,omitempty"`
	// Values holds the value of the values edge.
	Values []*FieldValue `json:"values,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RoleOrErr returns the Role value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequiredFieldEdges) RoleOrErr() (*Role, error) {
	if e.Role != nil {
		return e.Role, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: role.Label}
	}
	return nil, &NotLoadedError{edge: "role"}
}

// ValuesOrErr returns the Values value or an error if the edge
// was not loaded in eager-loading.
func (e RequiredFieldEdges) ValuesOrErr() ([]*FieldValue, error) {
	if e.loadedTypes[1] {
		return e.Values, nil
	}
	return nil, &NotLoadedError{edge: "values"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RequiredField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case requiredfield.FieldOptions, requiredfield.FieldValidation:
			values[i] = new([]byte)
		case requiredfield.FieldIsRequired, requiredfield.FieldIsActive:
			values[i] = new(sql.NullBool)
		case requiredfield.FieldID, requiredfield.FieldRoleID, requiredfield.FieldFilledByRoleID, requiredfield.FieldEditableByRoleID, requiredfield.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case requiredfield.FieldFieldName, requiredfield.FieldFieldType:
			values[i] = new(sql.NullString)
		case requiredfield.FieldCreatedAt, requiredfield.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RequiredField fields.
func (_m *RequiredField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case requiredfield.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case requiredfield.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case requiredfield.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case requiredfield.FieldRoleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field role_id", values[i])
			} else if value.Valid {
				_m.RoleID = int(value.Int64)
			}
		case requiredfield.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case requiredfield.FieldFieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_type", values[i])
			} else if value.Valid {
				_m.FieldType = value.String
			}
		case requiredfield.FieldIsRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_required", values[i])
			} else if value.Valid {
				_m.IsRequired = value.Bool
			}
		case requiredfield.FieldFilledByRoleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field filled_by_role_id", values[i])
			} else if value.Valid {
				_m.FilledByRoleID = int(value.Int64)
			}
		case requiredfield.FieldEditableByRoleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field editable_by_role_id", values[i])
			} else if value.Valid {
				_m.EditableByRoleID = new(int)
				*_m.EditableByRoleID = int(value.Int64)
			}
		case requiredfield.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case requiredfield.FieldValidation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Validation); err != nil {
					return fmt.Errorf("unmarshal field validation: %w", err)
				}
			}
		case requiredfield.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case requiredfield.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RequiredField.
// This includes values selected through modifiers, order, etc.
func (_m *RequiredField) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRole queries the "role" edge of the RequiredField entity.
func (_m *RequiredField) QueryRole() *RoleQuery {
	return NewRequiredFieldClient(_m.config).QueryRole(_m)
}

// QueryValues queries the "values" edge of the RequiredField entity.
func (_m *RequiredField) QueryValues() *FieldValueQuery {
	return NewRequiredFieldClient(_m.config).QueryValues(_m)
}

// Update returns a builder for updating this RequiredField.
// Note that you need to call RequiredField.Unwrap() before calling this method if this RequiredField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RequiredField) Update() *RequiredFieldUpdateOne {
	return NewRequiredFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RequiredField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RequiredField) Unwrap() *RequiredField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RequiredField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RequiredField) String() string {
	var builder strings.Builder
	builder.WriteString("RequiredField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("role_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoleID))
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("field_type=")
	builder.WriteString(_m.FieldType)
	builder.WriteString(", ")
	builder.WriteString("is_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRequired))
	builder.WriteString(", ")
	builder.WriteString("filled_by_role_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilledByRoleID))
	builder.WriteString(", ")
	if v := _m.EditableByRoleID; v != nil {
		builder.WriteString("editable_by_role_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("validation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Validation))
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// RequiredFields is a parsable slice of RequiredField.
type RequiredFields []*RequiredField
