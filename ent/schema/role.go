package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Role holds the schema definition for the Role entity.
// A role groups users, owns required-field definitions, and carries the
// self-registration policy (who may sign up or create users of this role).
type Role struct {
	ent.Schema
}

// Mixin of the Role.
func (Role) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Role.
func (Role) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(), // e.g. "Super User", "Admin", "Teacher"
		field.String("description").
			Optional(),
		field.Bool("registration_allowed").
			Default(false),
		field.JSON("registration_by_roles", []int{}).
			Optional(), // role ids permitted to create users of this role
	}
}

// Edges of the Role.
func (Role) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type),
		edge.To("required_fields", RequiredField.Type),
		edge.To("permissions", Permission.Type),
	}
}

// Indexes of the Role.
func (Role) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
