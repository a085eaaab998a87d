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
	"etree.io/etree/ent/otp"
	"etree.io/etree/ent/predicate"
	"etree.io/etree/ent/user"
)

// OtpUpdate is the builder for updating Otp entities.
type OtpUpdate struct {
	config
	hooks    []Hook
	mutation *OtpMutation
}

// Where appends a list predicates to the OtpUpdate builder.
func (_u *OtpUpdate) Where(ps ...predicate.Otp) *OtpUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OtpUpdate) SetUserID(v string) *OtpUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OtpUpdate) SetNillableUserID(v *string) *OtpUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *OtpUpdate) SetCode(v string) *OtpUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *OtpUpdate) SetNillableCode(v *string) *OtpUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetIsUsed sets the "is_used" field.
func (_u *OtpUpdate) SetIsUsed(v bool) *OtpUpdate {
	_u.mutation.SetIsUsed(v)
	return _u
}

// SetNillableIsUsed sets the "is_used" field if the given value is not nil.
func (_u *OtpUpdate) SetNillableIsUsed(v *bool) *OtpUpdate {
	if v != nil {
		_u.SetIsUsed(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *OtpUpdate) SetExpiresAt(v time.Time) *OtpUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *OtpUpdate) SetNillableExpiresAt(v *time.Time) *OtpUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *OtpUpdate) SetUser(v *User) *OtpUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the OtpMutation object of the builder.
func (_u *OtpUpdate) Mutation() *OtpMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OtpUpdate) ClearUser() *OtpUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OtpUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OtpUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OtpUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OtpUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OtpUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := otp.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Otp.code": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Otp.user"`)
	}
	return nil
}

func (_u *OtpUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(otp.Table, otp.Columns, sqlgraph.NewFieldSpec(otp.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(otp.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsUsed(); ok {
		_spec.SetField(otp.FieldIsUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(otp.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   otp.UserTable,
			Columns: []string{otp.UserColumn},
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
			Table:   otp.UserTable,
			Columns: []string{otp.UserColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{otp.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OtpUpdateOne is the builder for updating a single Otp entity.
type OtpUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OtpMutation
}

// SetUserID sets the "user_id" field.
func (_u *OtpUpdateOne) SetUserID(v string) *OtpUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OtpUpdateOne) SetNillableUserID(v *string) *OtpUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *OtpUpdateOne) SetCode(v string) *OtpUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *OtpUpdateOne) SetNillableCode(v *string) *OtpUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetIsUsed sets the "is_used" field.
func (_u *OtpUpdateOne) SetIsUsed(v bool) *OtpUpdateOne {
	_u.mutation.SetIsUsed(v)
	return _u
}

// SetNillableIsUsed sets the "is_used" field if the given value is not nil.
func (_u *OtpUpdateOne) SetNillableIsUsed(v *bool) *OtpUpdateOne {
	if v != nil {
		_u.SetIsUsed(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *OtpUpdateOne) SetExpiresAt(v time.Time) *OtpUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *OtpUpdateOne) SetNillableExpiresAt(v *time.Time) *OtpUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *OtpUpdateOne) SetUser(v *User) *OtpUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the OtpMutation object of the builder.
func (_u *OtpUpdateOne) Mutation() *OtpMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OtpUpdateOne) ClearUser() *OtpUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the OtpUpdate builder.
func (_u *OtpUpdateOne) Where(ps ...predicate.Otp) *OtpUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OtpUpdateOne) Select(field string, fields ...string) *OtpUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Otp entity.
func (_u *OtpUpdateOne) Save(ctx context.Context) (*Otp, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OtpUpdateOne) SaveX(ctx context.Context) *Otp {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OtpUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OtpUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OtpUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := otp.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Otp.code": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Otp.user"`)
	}
	return nil
}

func (_u *OtpUpdateOne) sqlSave(ctx context.Context) (_node *Otp, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(otp.Table, otp.Columns, sqlgraph.NewFieldSpec(otp.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Otp.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, otp.FieldID)
		for _, f := range fields {
			if !otp.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != otp.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(otp.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsUsed(); ok {
		_spec.SetField(otp.FieldIsUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(otp.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   otp.UserTable,
			Columns: []string{otp.UserColumn},
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
			Table:   otp.UserTable,
			Columns: []string{otp.UserColumn},
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
	_node = &Otp{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{otp.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
