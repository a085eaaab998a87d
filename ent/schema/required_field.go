package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"etree.io/etree/internal/registry"
)

// RequiredField holds the schema definition for the RequiredField entity:
// one administrator-configured data point users of a role must or may
// supply. Options are meaningful only for mcq/msq types; validation keys
// are constrained to the registry's validator set for the field type
// (enforced in the service layer, not by the database).
type RequiredField struct {
	ent.Schema
}

// Mixin of the RequiredField.
func (RequiredField) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the RequiredField.
func (RequiredField) Fields() []ent.Field {
	return []ent.Field{
		field.Int("role_id"),
		field.String("field_name").
			NotEmpty().
			MaxLen(100),
		field.String("field_type").
			NotEmpty().
			MaxLen(50),
		field.Bool("is_required").
			Default(true),
		field.Int("filled_by_role_id"),
		field.Int("editable_by_role_id").
			Optional().
			Nillable(),
		field.JSON("options", []registry.Option{}).
			Optional(),
		field.JSON("validation", map[string]any{}).
			Optional(),
		field.Int("display_order").
			Optional(),
		field.Bool("is_active").
			Default(true),
	}
}

// Edges of the RequiredField.
func (RequiredField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("role", Role.Type).
			Ref("required_fields").
			Field("role_id").
			Unique().
			Required(),
		edge.To("values", FieldValue.Type),
	}
}

// Indexes of the RequiredField.
func (RequiredField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role_id"),
		index.Fields("is_active"),
		index.Fields("role_id", "field_name").Unique(),
	}
}
