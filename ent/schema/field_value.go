package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FieldValue holds the schema definition for the FieldValue entity:
// the value a specific user supplied for a RequiredField. The value is
// stored as JSON because its shape depends on the field type (scalar,
// list of selected labels, or a document descriptor).
type FieldValue struct {
	ent.Schema
}

// Mixin of the FieldValue.
func (FieldValue) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the FieldValue.
func (FieldValue) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.Int("field_id"),
		field.JSON("value", map[string]any{}), // wrapped as {"data": <value>}
	}
}

// Edges of the FieldValue.
func (FieldValue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("field_values").
			Field("user_id").
			Unique().
			Required(),
		edge.From("field", RequiredField.Type).
			Ref("values").
			Field("field_id").
			Unique().
			Required(),
	}
}

// Indexes of the FieldValue.
func (FieldValue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "field_id").Unique(),
	}
}
