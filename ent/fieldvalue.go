// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"etree.io/etree/ent/fieldvalue"
	"etree.io/etree/ent/requiredfield"
	"etree.io/etree/ent/user"
)

// FieldValue is the model entity for the FieldValue schema.
type FieldValue struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// FieldID holds the value of the "field_id" field.
	FieldID int `json:"field_id,omitempty"`
	// Value holds the value of the "value" field.
	Value map[string]interface{} `json:"value,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FieldValueQuery when eager-loading is set.
	Edges        FieldValueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FieldValueEdges holds the relations/edges for other nodes in the graph.
type FieldValueEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Field holds the value of the field edge.
	Field *RequiredField `json:"field,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldValueEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// FieldOrErr returns the Field value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldValueEdges) FieldOrErr() (*RequiredField, error) {
	if e.Field != nil {
		return e.Field, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: requiredfield.Label}
	}
	return nil, &NotLoadedError{edge: "field"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FieldValue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fieldvalue.FieldValue:
			values[i] = new([]byte)
		case fieldvalue.FieldID, fieldvalue.FieldFieldID:
			values[i] = new(sql.NullInt64)
		case fieldvalue.FieldUserID:
			values[i] = new(sql.NullString)
		case fieldvalue.FieldCreatedAt, fieldvalue.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FieldValue fields.
func (_m *FieldValue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fieldvalue.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case fieldvalue.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fieldvalue.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case fieldvalue.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case fieldvalue.FieldFieldID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field field_id", values[i])
			} else if value.Valid {
				_m.FieldID = int(value.Int64)
			}
		case fieldvalue.FieldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Value); err != nil {
					return fmt.Errorf("unmarshal field value: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the FieldValue.
// This includes values selected through modifiers, order, etc.
func (_m *FieldValue) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the FieldValue entity.
func (_m *FieldValue) QueryUser() *UserQuery {
	return NewFieldValueClient(_m.config).QueryUser(_m)
}

// QueryField queries the "field" edge of the FieldValue entity.
func (_m *FieldValue) QueryField() *RequiredFieldQuery {
	return NewFieldValueClient(_m.config).QueryField(_m)
}

// Update returns a builder for updating this FieldValue.
// Note that you need to call FieldValue.Unwrap() before calling this method if this FieldValue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FieldValue) Update() *FieldValueUpdateOne {
	return NewFieldValueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FieldValue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FieldValue) Unwrap() *FieldValue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FieldValue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FieldValue) String() string {
	var builder strings.Builder
	builder.WriteString("FieldValue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("field_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldID))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteByte(')')
	return builder.String()
}

// FieldValues is a parsable slice of FieldValue.
type FieldValues []*FieldValue
