package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(), // uuid, assigned at creation
		field.String("full_name").
			NotEmpty().
			MaxLen(200),
		field.String("email").
			NotEmpty().
			MaxLen(255),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.Int("role_id"),
		field.String("profile_picture").
			Optional(), // relative /media/... URL
		field.Bool("is_active").
			Default(true),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("role", Role.Type).
			Ref("users").
			Field("role_id").
			Unique().
			Required(),
		edge.To("field_values", FieldValue.Type),
		edge.To("otps", Otp.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
