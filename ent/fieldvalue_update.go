// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"etree.io/etree/ent/fieldvalue"
	"etree.io/etree/ent/predicate"
	"etree.io/etree/ent/requiredfield"
	"etree.io/etree/ent/user"
)

// FieldValueUpdate is the builder for updating FieldValue entities.
type FieldValueUpdate struct {
	config
	hooks    []Hook
	mutation *FieldValueMutation
}

// Where appends a list predicates to the FieldValueUpdate builder.
func (_u *FieldValueUpdate) Where(ps ...predicate.FieldValue) *FieldValueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldValueUpdate) SetUpdatedAt(v time.Time) *FieldValueUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FieldValueUpdate) SetUserID(v string) *FieldValueUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FieldValueUpdate) SetNillableUserID(v *string) *FieldValueUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFieldID sets the "field_id" field.
func (_u *FieldValueUpdate) SetFieldID(v int) *FieldValueUpdate {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *FieldValueUpdate) SetNillableFieldID(v *int) *FieldValueUpdate {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FieldValueUpdate) SetValue(v map[string]interface{}) *FieldValueUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *FieldValueUpdate) SetUser(v *User) *FieldValueUpdate {
	return _u.SetUserID(v.ID)
}

// SetField sets the "field" edge to the RequiredField entity.
func (_u *FieldValueUpdate) SetField(v *RequiredField) *FieldValueUpdate {
	return _u.SetFieldID(v.ID)
}

// Mutation returns the FieldValueMutation object of the builder.
func (_u *FieldValueUpdate) Mutation() *FieldValueMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *FieldValueUpdate) ClearUser() *FieldValueUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearFieldEdge clears the "field" edge to the RequiredField entity.
func (_u *FieldValueUpdate) ClearFieldEdge() *FieldValueUpdate {
	_u.mutation.ClearFieldEdge()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldValueUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldValueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldValueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldValueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldValueUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldvalue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldValueUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldValue.user"`)
	}
	if _u.mutation.FieldEdgeCleared() && len(_u.mutation.FieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldValue.field"`)
	}
	return nil
}

func (_u *FieldValueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldvalue.Table, fieldvalue.Columns, sqlgraph.NewFieldSpec(fieldvalue.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldvalue.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(fieldvalue.FieldValue, field.TypeJSON, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldvalue.UserTable,
			Columns: []string{fieldvalue.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldvalue.UserTable,
			Columns: []string{fieldvalue.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldEdgeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldvalue.FieldTable,
			Columns: []string{fieldvalue.FieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requiredfield.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldvalue.FieldTable,
			Columns: []string{fieldvalue.FieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requiredfield.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldValueUpdateOne is the builder for updating a single FieldValue entity.
type FieldValueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldValueMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldValueUpdateOne) SetUpdatedAt(v time.Time) *FieldValueUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FieldValueUpdateOne) SetUserID(v string) *FieldValueUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FieldValueUpdateOne) SetNillableUserID(v *string) *FieldValueUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFieldID sets the "field_id" field.
func (_u *FieldValueUpdateOne) SetFieldID(v int) *FieldValueUpdateOne {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *FieldValueUpdateOne) SetNillableFieldID(v *int) *FieldValueUpdateOne {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FieldValueUpdateOne) SetValue(v map[string]interface{}) *FieldValueUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *FieldValueUpdateOne) SetUser(v *User) *FieldValueUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetField sets the "field" edge to the RequiredField entity.
func (_u *FieldValueUpdateOne) SetField(v *RequiredField) *FieldValueUpdateOne {
	return _u.SetFieldID(v.ID)
}

// Mutation returns the FieldValueMutation object of the builder.
func (_u *FieldValueUpdateOne) Mutation() *FieldValueMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *FieldValueUpdateOne) ClearUser() *FieldValueUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearFieldEdge clears the "field" edge to the RequiredField entity.
func (_u *FieldValueUpdateOne) ClearFieldEdge() *FieldValueUpdateOne {
	_u.mutation.ClearFieldEdge()
	return _u
}

// Where appends a list predicates to the FieldValueUpdate builder.
func (_u *FieldValueUpdateOne) Where(ps ...predicate.FieldValue) *FieldValueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldValueUpdateOne) Select(field string, fields ...string) *FieldValueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldValue entity.
func (_u *FieldValueUpdateOne) Save(ctx context.Context) (*FieldValue, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldValueUpdateOne) SaveX(ctx context.Context) *FieldValue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldValueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldValueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldValueUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldvalue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldValueUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldValue.user"`)
	}
	if _u.mutation.FieldEdgeCleared() && len(_u.mutation.FieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldValue.field"`)
	}
	return nil
}

func (_u *FieldValueUpdateOne) sqlSave(ctx context.Context) (_node *FieldValue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldvalue.Table, fieldvalue.Columns, sqlgraph.NewFieldSpec(fieldvalue.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldValue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldvalue.FieldID)
		for _, f := range fields {
			if !fieldvalue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldvalue.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldvalue.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(fieldvalue.FieldValue, field.TypeJSON, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldvalue.UserTable,
			Columns: []string{fieldvalue.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldvalue.UserTable,
			Columns: []string{fieldvalue.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldEdgeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldvalue.FieldTable,
			Columns: []string{fieldvalue.FieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requiredfield.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldvalue.FieldTable,
			Columns: []string{fieldvalue.FieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requiredfield.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FieldValue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
