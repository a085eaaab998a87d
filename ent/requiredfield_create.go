// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"etree.io/etree/ent/fieldvalue"
	"etree.io/etree/ent/requiredfield"
	"etree.io/etree/ent/role"
	"etree.io/etree/internal/registry"
)

// RequiredFieldCreate is the builder for creating a RequiredField entity.
type RequiredFieldCreate struct {
	config
	mutation *RequiredFieldMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequiredFieldCreate) SetCreatedAt(v time.Time) *RequiredFieldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequiredFieldCreate) SetNillableCreatedAt(v *time.Time) *RequiredFieldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequiredFieldCreate) SetUpdatedAt(v time.Time) *RequiredFieldCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequiredFieldCreate) SetNillableUpdatedAt(v *time.Time) *RequiredFieldCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRoleID sets the "role_id" field.
func (_c *RequiredFieldCreate) SetRoleID(v int) *RequiredFieldCreate {
	_c.mutation.SetRoleID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *RequiredFieldCreate) SetFieldName(v string) *RequiredFieldCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetFieldType sets the "field_type" field.
func (_c *RequiredFieldCreate) SetFieldType(v string) *RequiredFieldCreate {
	_c.mutation.SetFieldType(v)
	return _c
}

// SetIsRequired sets the "is_required" field.
func (_c *RequiredFieldCreate) SetIsRequired(v bool) *RequiredFieldCreate {
	_c.mutation.SetIsRequired(v)
	return _c
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_c *RequiredFieldCreate) SetNillableIsRequired(v *bool) *RequiredFieldCreate {
	if v != nil {
		_c.SetIsRequired(*v)
	}
	return _c
}

// SetFilledByRoleID sets the "filled_by_role_id" field.
func (_c *RequiredFieldCreate) SetFilledByRoleID(v int) *RequiredFieldCreate {
	_c.mutation.SetFilledByRoleID(v)
	return _c
}

// SetEditableByRoleID sets the "editable_by_role_id" field.
func (_c *RequiredFieldCreate) SetEditableByRoleID(v int) *RequiredFieldCreate {
	_c.mutation.SetEditableByRoleID(v)
	return _c
}

// SetNillableEditableByRoleID sets the "editable_by_role_id" field if the given value is not nil.
func (_c *RequiredFieldCreate) SetNillableEditableByRoleID(v *int) *RequiredFieldCreate {
	if v != nil {
		_c.SetEditableByRoleID(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *RequiredFieldCreate) SetOptions(v []registry.Option) *RequiredFieldCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetValidation sets the "validation" field.
func (_c *RequiredFieldCreate) SetValidation(v map[string]interface{}) *RequiredFieldCreate {
	_c.mutation.SetValidation(v)
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *RequiredFieldCreate) SetDisplayOrder(v int) *RequiredFieldCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *RequiredFieldCreate) SetNillableDisplayOrder(v *int) *RequiredFieldCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *RequiredFieldCreate) SetIsActive(v bool) *RequiredFieldCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *RequiredFieldCreate) SetNillableIsActive(v *bool) *RequiredFieldCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetRole sets the "role" edge to the Role entity.
func (_c *RequiredFieldCreate) SetRole(v *Role) *RequiredFieldCreate {
	return _c.SetRoleID(v.ID)
}

// AddValueIDs adds the "values" edge to the FieldValue entity by IDs.
func (_c *RequiredFieldCreate) AddValueIDs(ids ...int) *RequiredFieldCreate {
	_c.mutation.AddValueIDs(ids...)
	return _c
}

// AddValues adds the "values" edges to the FieldValue entity.
func (_c *RequiredFieldCreate) AddValues(v ...*FieldValue) *RequiredFieldCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValueIDs(ids...)
}

// Mutation returns the RequiredFieldMutation object of the builder.
func (_c *RequiredFieldCreate) Mutation() *RequiredFieldMutation {
	return _c.mutation
}

// Save creates the RequiredField in the database.
func (_c *RequiredFieldCreate) Save(ctx context.Context) (*RequiredField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequiredFieldCreate) SaveX(ctx context.Context) *RequiredField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequiredFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequiredFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequiredFieldCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requiredfield.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := requiredfield.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		v := requiredfield.DefaultIsRequired
		_c.mutation.SetIsRequired(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := requiredfield.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequiredFieldCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RequiredField.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RequiredField.updated_at"`)}
	}
	if _, ok := _c.mutation.RoleID(); !ok {
		return &ValidationError{Name: "role_id", err: errors.New(`ent: missing required field "RequiredField.role_id"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "RequiredField.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := requiredfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "RequiredField.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldType(); !ok {
		return &ValidationError{Name: "field_type", err: errors.New(`ent: missing required field "RequiredField.field_type"`)}
	}
	if v, ok := _c.mutation.FieldType(); ok {
		if err := requiredfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "RequiredField.field_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		return &ValidationError{Name: "is_required", err: errors.New(`ent: missing required field "RequiredField.is_required"`)}
	}
	if _, ok := _c.mutation.FilledByRoleID(); !ok {
		return &ValidationError{Name: "filled_by_role_id", err: errors.New(`ent: missing required field "RequiredField.filled_by_role_id"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "RequiredField.is_active"`)}
	}
	if len(_c.mutation.RoleIDs()) == 0 {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required edge "RequiredField.role"`)}
	}
	return nil
}

func (_c *RequiredFieldCreate) sqlSave(ctx context.Context) (*RequiredField, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RequiredFieldCreate) createSpec() (*RequiredField, *sqlgraph.CreateSpec) {
	var (
		_node = &RequiredField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requiredfield.Table, sqlgraph.NewFieldSpec(requiredfield.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requiredfield.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(requiredfield.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(requiredfield.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.FieldType(); ok {
		_spec.SetField(requiredfield.FieldFieldType, field.TypeString, value)
		_node.FieldType = value
	}
	if value, ok := _c.mutation.IsRequired(); ok {
		_spec.SetField(requiredfield.FieldIsRequired, field.TypeBool, value)
		_node.IsRequired = value
	}
	if value, ok := _c.mutation.FilledByRoleID(); ok {
		_spec.SetField(requiredfield.FieldFilledByRoleID, field.TypeInt, value)
		_node.FilledByRoleID = value
	}
	if value, ok := _c.mutation.EditableByRoleID(); ok {
		_spec.SetField(requiredfield.FieldEditableByRoleID, field.TypeInt, value)
		_node.EditableByRoleID = &value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(requiredfield.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Validation(); ok {
		_spec.SetField(requiredfield.FieldValidation, field.TypeJSON, value)
		_node.Validation = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(requiredfield.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(requiredfield.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.RoleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requiredfield.RoleTable,
			Columns: []string{requiredfield.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RoleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   requiredfield.ValuesTable,
			Columns: []string{requiredfield.ValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldvalue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequiredFieldCreateBulk is the builder for creating many RequiredField entities in bulk.
type RequiredFieldCreateBulk struct {
	config
	err      error
	builders []*RequiredFieldCreate
}

// Save creates the RequiredField entities in the database.
func (_c *RequiredFieldCreateBulk) Save(ctx context.Context) ([]*RequiredField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequiredField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequiredFieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RequiredFieldCreateBulk) SaveX(ctx context.Context) []*RequiredField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequiredFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequiredFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
