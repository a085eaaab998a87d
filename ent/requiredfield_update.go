// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"etree.io/etree/ent/fieldvalue"
	"etree.io/etree/ent/predicate"
	"etree.io/etree/ent/requiredfield"
	"etree.io/etree/ent/role"
	"etree.io/etree/internal/registry"
)

// RequiredFieldUpdate is the builder for updating RequiredField entities.
type RequiredFieldUpdate struct {
	config
	hooks    []Hook
	mutation *RequiredFieldMutation
}

// Where appends a list predicates to the RequiredFieldUpdate builder.
func (_u *RequiredFieldUpdate) Where(ps ...predicate.RequiredField) *RequiredFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequiredFieldUpdate) SetUpdatedAt(v time.Time) *RequiredFieldUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRoleID sets the "role_id" field.
func (_u *RequiredFieldUpdate) SetRoleID(v int) *RequiredFieldUpdate {
	_u.mutation.SetRoleID(v)
	return _u
}

// SetNillableRoleID sets the "role_id" field if the given value is not nil.
func (_u *RequiredFieldUpdate) SetNillableRoleID(v *int) *RequiredFieldUpdate {
	if v != nil {
		_u.SetRoleID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *RequiredFieldUpdate) SetFieldName(v string) *RequiredFieldUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *RequiredFieldUpdate) SetNillableFieldName(v *string) *RequiredFieldUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *RequiredFieldUpdate) SetFieldType(v string) *RequiredFieldUpdate {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *RequiredFieldUpdate) SetNillableFieldType(v *string) *RequiredFieldUpdate {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *RequiredFieldUpdate) SetIsRequired(v bool) *RequiredFieldUpdate {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *RequiredFieldUpdate) SetNillableIsRequired(v *bool) *RequiredFieldUpdate {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// SetFilledByRoleID sets the "filled_by_role_id" field.
func (_u *RequiredFieldUpdate) SetFilledByRoleID(v int) *RequiredFieldUpdate {
	_u.mutation.ResetFilledByRoleID()
	_u.mutation.SetFilledByRoleID(v)
	return _u
}

// SetNillableFilledByRoleID sets the "filled_by_role_id" field if the given value is not nil.
func (_u *RequiredFieldUpdate) SetNillableFilledByRoleID(v *int) *RequiredFieldUpdate {
	if v != nil {
		_u.SetFilledByRoleID(*v)
	}
	return _u
}

// AddFilledByRoleID adds value to the "filled_by_role_id" field.
func (_u *RequiredFieldUpdate) AddFilledByRoleID(v int) *RequiredFieldUpdate {
	_u.mutation.AddFilledByRoleID(v)
	return _u
}

// SetEditableByRoleID sets the "editable_by_role_id" field.
func (_u *RequiredFieldUpdate) SetEditableByRoleID(v int) *RequiredFieldUpdate {
	_u.mutation.ResetEditableByRoleID()
	_u.mutation.SetEditableByRoleID(v)
	return _u
}

// SetNillableEditableByRoleID sets the "editable_by_role_id" field if the given value is not nil.
func (_u *RequiredFieldUpdate) SetNillableEditableByRoleID(v *int) *RequiredFieldUpdate {
	if v != nil {
		_u.SetEditableByRoleID(*v)
	}
	return _u
}

// AddEditableByRoleID adds value to the "editable_by_role_id" field.
func (_u *RequiredFieldUpdate) AddEditableByRoleID(v int) *RequiredFieldUpdate {
	_u.mutation.AddEditableByRoleID(v)
	return _u
}

// ClearEditableByRoleID clears the value of the "editable_by_role_id" field.
func (_u *RequiredFieldUpdate) ClearEditableByRoleID() *RequiredFieldUpdate {
	_u.mutation.ClearEditableByRoleID()
	return _u
}

// SetOptions sets the "options" field.
func (_u *RequiredFieldUpdate) SetOptions(v []registry.Option) *RequiredFieldUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *RequiredFieldUpdate) AppendOptions(v []registry.Option) *RequiredFieldUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *RequiredFieldUpdate) ClearOptions() *RequiredFieldUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetValidation sets the "validation" field.
func (_u *RequiredFieldUpdate) SetValidation(v map[string]interface{}) *RequiredFieldUpdate {
	_u.mutation.SetValidation(v)
	return _u
}

// ClearValidation clears the value of the "validation" field.
func (_u *RequiredFieldUpdate) ClearValidation() *RequiredFieldUpdate {
	_u.mutation.ClearValidation()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *RequiredFieldUpdate) SetDisplayOrder(v int) *RequiredFieldUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *RequiredFieldUpdate) SetNillableDisplayOrder(v *int) *RequiredFieldUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *RequiredFieldUpdate) AddDisplayOrder(v int) *RequiredFieldUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// ClearDisplayOrder clears the value of the "display_order" field.
func (_u *RequiredFieldUpdate) ClearDisplayOrder() *RequiredFieldUpdate {
	_u.mutation.ClearDisplayOrder()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RequiredFieldUpdate) SetIsActive(v bool) *RequiredFieldUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RequiredFieldUpdate) SetNillableIsActive(v *bool) *RequiredFieldUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetRole sets the "role" edge to the Role entity.
func (_u *RequiredFieldUpdate) SetRole(v *Role) *RequiredFieldUpdate {
	return _u.SetRoleID(v.ID)
}

// AddValueIDs adds the "values" edge to the FieldValue entity by IDs.
func (_u *RequiredFieldUpdate) AddValueIDs(ids ...int) *RequiredFieldUpdate {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the FieldValue entity.
func (_u *RequiredFieldUpdate) AddValues(v ...*FieldValue) *RequiredFieldUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the RequiredFieldMutation object of the builder.
func (_u *RequiredFieldUpdate) Mutation() *RequiredFieldMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the Role entity.
func (_u *RequiredFieldUpdate) ClearRole() *RequiredFieldUpdate {
	_u.mutation.ClearRole()
	return _u
}

// ClearValues clears all "values" edges to the FieldValue entity.
func (_u *RequiredFieldUpdate) ClearValues() *RequiredFieldUpdate {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to FieldValue entities by IDs.
func (_u *RequiredFieldUpdate) RemoveValueIDs(ids ...int) *RequiredFieldUpdate {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to FieldValue entities.
func (_u *RequiredFieldUpdate) RemoveValues(v ...*FieldValue) *RequiredFieldUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequiredFieldUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequiredFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequiredFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequiredFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequiredFieldUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requiredfield.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequiredFieldUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := requiredfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "RequiredField.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := requiredfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "RequiredField.field_type": %w`, err)}
		}
	}
	if _u.mutation.RoleCleared() && len(_u.mutation.RoleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequiredField.role"`)
	}
	return nil
}

func (_u *RequiredFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requiredfield.Table, requiredfield.Columns, sqlgraph.NewFieldSpec(requiredfield.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requiredfield.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(requiredfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(requiredfield.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(requiredfield.FieldIsRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FilledByRoleID(); ok {
		_spec.SetField(requiredfield.FieldFilledByRoleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilledByRoleID(); ok {
		_spec.AddField(requiredfield.FieldFilledByRoleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EditableByRoleID(); ok {
		_spec.SetField(requiredfield.FieldEditableByRoleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEditableByRoleID(); ok {
		_spec.AddField(requiredfield.FieldEditableByRoleID, field.TypeInt, value)
	}
	if _u.mutation.EditableByRoleIDCleared() {
		_spec.ClearField(requiredfield.FieldEditableByRoleID, field.TypeInt)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(requiredfield.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, requiredfield.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(requiredfield.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validation(); ok {
		_spec.SetField(requiredfield.FieldValidation, field.TypeJSON, value)
	}
	if _u.mutation.ValidationCleared() {
		_spec.ClearField(requiredfield.FieldValidation, field.TypeJSON)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(requiredfield.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(requiredfield.FieldDisplayOrder, field.TypeInt, value)
	}
	if _u.mutation.DisplayOrderCleared() {
		_spec.ClearField(requiredfield.FieldDisplayOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(requiredfield.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.RoleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requiredfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequiredFieldUpdateOne is the builder for updating a single RequiredField entity.
type RequiredFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequiredFieldMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequiredFieldUpdateOne) SetUpdatedAt(v time.Time) *RequiredFieldUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRoleID sets the "role_id" field.
func (_u *RequiredFieldUpdateOne) SetRoleID(v int) *RequiredFieldUpdateOne {
	_u.mutation.SetRoleID(v)
	return _u
}

// SetNillableRoleID sets the "role_id" field if the given value is not nil.
func (_u *RequiredFieldUpdateOne) SetNillableRoleID(v *int) *RequiredFieldUpdateOne {
	if v != nil {
		_u.SetRoleID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *RequiredFieldUpdateOne) SetFieldName(v string) *RequiredFieldUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *RequiredFieldUpdateOne) SetNillableFieldName(v *string) *RequiredFieldUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *RequiredFieldUpdateOne) SetFieldType(v string) *RequiredFieldUpdateOne {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *RequiredFieldUpdateOne) SetNillableFieldType(v *string) *RequiredFieldUpdateOne {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *RequiredFieldUpdateOne) SetIsRequired(v bool) *RequiredFieldUpdateOne {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *RequiredFieldUpdateOne) SetNillableIsRequired(v *bool) *RequiredFieldUpdateOne {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// SetFilledByRoleID sets the "filled_by_role_id" field.
func (_u *RequiredFieldUpdateOne) SetFilledByRoleID(v int) *RequiredFieldUpdateOne {
	_u.mutation.ResetFilledByRoleID()
	_u.mutation.SetFilledByRoleID(v)
	return _u
}

// SetNillableFilledByRoleID sets the "filled_by_role_id" field if the given value is not nil.
func (_u *RequiredFieldUpdateOne) SetNillableFilledByRoleID(v *int) *RequiredFieldUpdateOne {
	if v != nil {
		_u.SetFilledByRoleID(*v)
	}
	return _u
}

// AddFilledByRoleID adds value to the "filled_by_role_id" field.
func (_u *RequiredFieldUpdateOne) AddFilledByRoleID(v int) *RequiredFieldUpdateOne {
	_u.mutation.AddFilledByRoleID(v)
	return _u
}

// SetEditableByRoleID sets the "editable_by_role_id" field.
func (_u *RequiredFieldUpdateOne) SetEditableByRoleID(v int) *RequiredFieldUpdateOne {
	_u.mutation.ResetEditableByRoleID()
	_u.mutation.SetEditableByRoleID(v)
	return _u
}

// SetNillableEditableByRoleID sets the "editable_by_role_id" field if the given value is not nil.
func (_u *RequiredFieldUpdateOne) SetNillableEditableByRoleID(v *int) *RequiredFieldUpdateOne {
	if v != nil {
		_u.SetEditableByRoleID(*v)
	}
	return _u
}

// AddEditableByRoleID adds value to the "editable_by_role_id" field.
func (_u *RequiredFieldUpdateOne) AddEditableByRoleID(v int) *RequiredFieldUpdateOne {
	_u.mutation.AddEditableByRoleID(v)
	return _u
}

// ClearEditableByRoleID clears the value of the "editable_by_role_id" field.
func (_u *RequiredFieldUpdateOne) ClearEditableByRoleID() *RequiredFieldUpdateOne {
	_u.mutation.ClearEditableByRoleID()
	return _u
}

// SetOptions sets the "options" field.
func (_u *RequiredFieldUpdateOne) SetOptions(v []registry.Option) *RequiredFieldUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *RequiredFieldUpdateOne) AppendOptions(v []registry.Option) *RequiredFieldUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *RequiredFieldUpdateOne) ClearOptions() *RequiredFieldUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetValidation sets the "validation" field.
func (_u *RequiredFieldUpdateOne) SetValidation(v map[string]interface{}) *RequiredFieldUpdateOne {
	_u.mutation.SetValidation(v)
	return _u
}

// ClearValidation clears the value of the "validation" field.
func (_u *RequiredFieldUpdateOne) ClearValidation() *RequiredFieldUpdateOne {
	_u.mutation.ClearValidation()
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *RequiredFieldUpdateOne) SetDisplayOrder(v int) *RequiredFieldUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *RequiredFieldUpdateOne) SetNillableDisplayOrder(v *int) *RequiredFieldUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *RequiredFieldUpdateOne) AddDisplayOrder(v int) *RequiredFieldUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// ClearDisplayOrder clears the value of the "display_order" field.
func (_u *RequiredFieldUpdateOne) ClearDisplayOrder() *RequiredFieldUpdateOne {
	_u.mutation.ClearDisplayOrder()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RequiredFieldUpdateOne) SetIsActive(v bool) *RequiredFieldUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RequiredFieldUpdateOne) SetNillableIsActive(v *bool) *RequiredFieldUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetRole sets the "role" edge to the Role entity.
func (_u *RequiredFieldUpdateOne) SetRole(v *Role) *RequiredFieldUpdateOne {
	return _u.SetRoleID(v.ID)
}

// AddValueIDs adds the "values" edge to the FieldValue entity by IDs.
func (_u *RequiredFieldUpdateOne) AddValueIDs(ids ...int) *RequiredFieldUpdateOne {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the FieldValue entity.
func (_u *RequiredFieldUpdateOne) AddValues(v ...*FieldValue) *RequiredFieldUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the RequiredFieldMutation object of the builder.
func (_u *RequiredFieldUpdateOne) Mutation() *RequiredFieldMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the Role entity.
func (_u *RequiredFieldUpdateOne) ClearRole() *RequiredFieldUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// ClearValues clears all "values" edges to the FieldValue entity.
func (_u *RequiredFieldUpdateOne) ClearValues() *RequiredFieldUpdateOne {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to FieldValue entities by IDs.
func (_u *RequiredFieldUpdateOne) RemoveValueIDs(ids ...int) *RequiredFieldUpdateOne {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to FieldValue entities.
func (_u *RequiredFieldUpdateOne) RemoveValues(v ...*FieldValue) *RequiredFieldUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Where appends a list predicates to the RequiredFieldUpdate builder.
func (_u *RequiredFieldUpdateOne) Where(ps ...predicate.RequiredField) *RequiredFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequiredFieldUpdateOne) Select(field string, fields ...string) *RequiredFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequiredField entity.
func (_u *RequiredFieldUpdateOne) Save(ctx context.Context) (*RequiredField, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequiredFieldUpdateOne) SaveX(ctx context.Context) *RequiredField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequiredFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequiredFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequiredFieldUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requiredfield.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequiredFieldUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := requiredfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "RequiredField.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := requiredfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "RequiredField.field_type": %w`, err)}
		}
	}
	if _u.mutation.RoleCleared() && len(_u.mutation.RoleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequiredField.role"`)
	}
	return nil
}

func (_u *RequiredFieldUpdateOne) sqlSave(ctx context.Context) (_node *RequiredField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requiredfield.Table, requiredfield.Columns, sqlgraph.NewFieldSpec(requiredfield.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequiredField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requiredfield.FieldID)
		for _, f := range fields {
			if !requiredfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requiredfield.FieldID {
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
		_spec.SetField(requiredfield.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(requiredfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(requiredfield.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(requiredfield.FieldIsRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FilledByRoleID(); ok {
		_spec.SetField(requiredfield.FieldFilledByRoleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilledByRoleID(); ok {
		_spec.AddField(requiredfield.FieldFilledByRoleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EditableByRoleID(); ok {
		_spec.SetField(requiredfield.FieldEditableByRoleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEditableByRoleID(); ok {
		_spec.AddField(requiredfield.FieldEditableByRoleID, field.TypeInt, value)
	}
	if _u.mutation.EditableByRoleIDCleared() {
		_spec.ClearField(requiredfield.FieldEditableByRoleID, field.TypeInt)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(requiredfield.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, requiredfield.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(requiredfield.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validation(); ok {
		_spec.SetField(requiredfield.FieldValidation, field.TypeJSON, value)
	}
	if _u.mutation.ValidationCleared() {
		_spec.ClearField(requiredfield.FieldValidation, field.TypeJSON)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(requiredfield.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(requiredfield.FieldDisplayOrder, field.TypeInt, value)
	}
	if _u.mutation.DisplayOrderCleared() {
		_spec.ClearField(requiredfield.FieldDisplayOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(requiredfield.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.RoleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RequiredField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requiredfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
