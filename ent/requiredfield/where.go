// Code generated by ent, DO NOT EDIT.

package requiredfield

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"etree.io/etree/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldUpdatedAt, v))
}

// RoleID applies equality check predicate on the "role_id" field. It's identical to RoleIDEQ.
func RoleID(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldRoleID, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldFieldName, v))
}

// FieldType applies equality check predicate on the "field_type" field. It's identical to FieldTypeEQ.
func FieldType(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldFieldType, v))
}

// IsRequired applies equality check predicate on the "is_required" field. It's identical to IsRequiredEQ.
func IsRequired(v bool) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldIsRequired, v))
}

// FilledByRoleID applies equality check predicate on the "filled_by_role_id" field. It's identical to FilledByRoleIDEQ.
func FilledByRoleID(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldFilledByRoleID, v))
}

// EditableByRoleID applies equality check predicate on the "editable_by_role_id" field. It's identical to EditableByRoleIDEQ.
func EditableByRoleID(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldEditableByRoleID, v))
}

// DisplayOrder applies equality check predicate on the "display_order" field. It's identical to DisplayOrderEQ.
func DisplayOrder(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldDisplayOrder, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLTE(FieldUpdatedAt, v))
}

// RoleIDEQ applies the EQ predicate on the "role_id" field.
func RoleIDEQ(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldRoleID, v))
}

// RoleIDNEQ applies the NEQ predicate on the "role_id" field.
func RoleIDNEQ(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldRoleID, v))
}

// RoleIDIn applies the In predicate on the "role_id" field.
func RoleIDIn(vs ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIn(FieldRoleID, vs...))
}

// RoleIDNotIn applies the NotIn predicate on the "role_id" field.
func RoleIDNotIn(vs ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotIn(FieldRoleID, vs...))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldContainsFold(FieldFieldName, v))
}

// FieldTypeEQ applies the EQ predicate on the "field_type" field.
func FieldTypeEQ(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldFieldType, v))
}

// FieldTypeNEQ applies the NEQ predicate on the "field_type" field.
func FieldTypeNEQ(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldFieldType, v))
}

// FieldTypeIn applies the In predicate on the "field_type" field.
func FieldTypeIn(vs ...string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIn(FieldFieldType, vs...))
}

// FieldTypeNotIn applies the NotIn predicate on the "field_type" field.
func FieldTypeNotIn(vs ...string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotIn(FieldFieldType, vs...))
}

// FieldTypeGT applies the GT predicate on the "field_type" field.
func FieldTypeGT(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGT(FieldFieldType, v))
}

// FieldTypeGTE applies the GTE predicate on the "field_type" field.
func FieldTypeGTE(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGTE(FieldFieldType, v))
}

// FieldTypeLT applies the LT predicate on the "field_type" field.
func FieldTypeLT(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLT(FieldFieldType, v))
}

// FieldTypeLTE applies the LTE predicate on the "field_type" field.
func FieldTypeLTE(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLTE(FieldFieldType, v))
}

// FieldTypeContains applies the Contains predicate on the "field_type" field.
func FieldTypeContains(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldContains(FieldFieldType, v))
}

// FieldTypeHasPrefix applies the HasPrefix predicate on the "field_type" field.
func FieldTypeHasPrefix(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldHasPrefix(FieldFieldType, v))
}

// FieldTypeHasSuffix applies the HasSuffix predicate on the "field_type" field.
func FieldTypeHasSuffix(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldHasSuffix(FieldFieldType, v))
}

// FieldTypeEqualFold applies the EqualFold predicate on the "field_type" field.
func FieldTypeEqualFold(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEqualFold(FieldFieldType, v))
}

// FieldTypeContainsFold applies the ContainsFold predicate on the "field_type" field.
func FieldTypeContainsFold(v string) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldContainsFold(FieldFieldType, v))
}

// IsRequiredEQ applies the EQ predicate on the "is_required" field.
func IsRequiredEQ(v bool) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldIsRequired, v))
}

// IsRequiredNEQ applies the NEQ predicate on the "is_required" field.
func IsRequiredNEQ(v bool) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldIsRequired, v))
}

// FilledByRoleIDEQ applies the EQ predicate on the "filled_by_role_id" field.
func FilledByRoleIDEQ(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldFilledByRoleID, v))
}

// FilledByRoleIDNEQ applies the NEQ predicate on the "filled_by_role_id" field.
func FilledByRoleIDNEQ(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldFilledByRoleID, v))
}

// FilledByRoleIDIn applies the In predicate on the "filled_by_role_id" field.
func FilledByRoleIDIn(vs ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIn(FieldFilledByRoleID, vs...))
}

// FilledByRoleIDNotIn applies the NotIn predicate on the "filled_by_role_id" field.
func FilledByRoleIDNotIn(vs ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotIn(FieldFilledByRoleID, vs...))
}

// FilledByRoleIDGT applies the GT predicate on the "filled_by_role_id" field.
func FilledByRoleIDGT(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGT(FieldFilledByRoleID, v))
}

// FilledByRoleIDGTE applies the GTE predicate on the "filled_by_role_id" field.
func FilledByRoleIDGTE(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGTE(FieldFilledByRoleID, v))
}

// FilledByRoleIDLT applies the LT predicate on the "filled_by_role_id" field.
func FilledByRoleIDLT(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLT(FieldFilledByRoleID, v))
}

// FilledByRoleIDLTE applies the LTE predicate on the "filled_by_role_id" field.
func FilledByRoleIDLTE(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLTE(FieldFilledByRoleID, v))
}

// EditableByRoleIDEQ applies the EQ predicate on the "editable_by_role_id" field.
func EditableByRoleIDEQ(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldEditableByRoleID, v))
}

// EditableByRoleIDNEQ applies the NEQ predicate on the "editable_by_role_id" field.
func EditableByRoleIDNEQ(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldEditableByRoleID, v))
}

// EditableByRoleIDIn applies the In predicate on the "editable_by_role_id" field.
func EditableByRoleIDIn(vs ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIn(FieldEditableByRoleID, vs...))
}

// EditableByRoleIDNotIn applies the NotIn predicate on the "editable_by_role_id" field.
func EditableByRoleIDNotIn(vs ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotIn(FieldEditableByRoleID, vs...))
}

// EditableByRoleIDGT applies the GT predicate on the "editable_by_role_id" field.
func EditableByRoleIDGT(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGT(FieldEditableByRoleID, v))
}

// EditableByRoleIDGTE applies the GTE predicate on the "editable_by_role_id" field.
func EditableByRoleIDGTE(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGTE(FieldEditableByRoleID, v))
}

// EditableByRoleIDLT applies the LT predicate on the "editable_by_role_id" field.
func EditableByRoleIDLT(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLT(FieldEditableByRoleID, v))
}

// EditableByRoleIDLTE applies the LTE predicate on the "editable_by_role_id" field.
func EditableByRoleIDLTE(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLTE(FieldEditableByRoleID, v))
}

// EditableByRoleIDIsNil applies the IsNil predicate on the "editable_by_role_id" field.
func EditableByRoleIDIsNil() predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIsNull(FieldEditableByRoleID))
}

// EditableByRoleIDNotNil applies the NotNil predicate on the "editable_by_role_id" field.
func EditableByRoleIDNotNil() predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotNull(FieldEditableByRoleID))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotNull(FieldOptions))
}

// ValidationIsNil applies the IsNil predicate on the "validation" field.
func ValidationIsNil() predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIsNull(FieldValidation))
}

// ValidationNotNil applies the NotNil predicate on the "validation" field.
func ValidationNotNil() predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotNull(FieldValidation))
}

// DisplayOrderEQ applies the EQ predicate on the "display_order" field.
func DisplayOrderEQ(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldDisplayOrder, v))
}

// DisplayOrderNEQ applies the NEQ predicate on the "display_order" field.
func DisplayOrderNEQ(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldDisplayOrder, v))
}

// DisplayOrderIn applies the In predicate on the "display_order" field.
func DisplayOrderIn(vs ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIn(FieldDisplayOrder, vs...))
}

// DisplayOrderNotIn applies the NotIn predicate on the "display_order" field.
func DisplayOrderNotIn(vs ...int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotIn(FieldDisplayOrder, vs...))
}

// DisplayOrderGT applies the GT predicate on the "display_order" field.
func DisplayOrderGT(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGT(FieldDisplayOrder, v))
}

// DisplayOrderGTE applies the GTE predicate on the "display_order" field.
func DisplayOrderGTE(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldGTE(FieldDisplayOrder, v))
}

// DisplayOrderLT applies the LT predicate on the "display_order" field.
func DisplayOrderLT(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLT(FieldDisplayOrder, v))
}

// DisplayOrderLTE applies the LTE predicate on the "display_order" field.
func DisplayOrderLTE(v int) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldLTE(FieldDisplayOrder, v))
}

// DisplayOrderIsNil applies the IsNil predicate on the "display_order" field.
func DisplayOrderIsNil() predicate.RequiredField {
	return predicate.RequiredField(sql.FieldIsNull(FieldDisplayOrder))
}

// DisplayOrderNotNil applies the NotNil predicate on the "display_order" field.
func DisplayOrderNotNil() predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNotNull(FieldDisplayOrder))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.RequiredField {
	return predicate.RequiredField(sql.FieldNEQ(FieldIsActive, v))
}

// HasRole applies the HasEdge predicate on the "role" edge.
func HasRole() predicate.RequiredField {
	return predicate.RequiredField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoleTable, RoleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoleWith applies the HasEdge predicate on the "role" edge with a given conditions (other predicates).
func HasRoleWith(preds ...predicate.Role) predicate.RequiredField {
	return predicate.RequiredField(func(s *sql.Selector) {
		step := newRoleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasValues applies the HasEdge predicate on the "values" edge.
func HasValues() predicate.RequiredField {
	return predicate.RequiredField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValuesTable, ValuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValuesWith applies the HasEdge predicate on the "values" edge with a given conditions (other predicates).
func HasValuesWith(preds ...predicate.FieldValue) predicate.RequiredField {
	return predicate.RequiredField(func(s *sql.Selector) {
		step := newValuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RequiredField) predicate.RequiredField {
	return predicate.RequiredField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RequiredField) predicate.RequiredField {
	return predicate.RequiredField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RequiredField) predicate.RequiredField {
	return predicate.RequiredField(sql.NotPredicates(p))
}
