package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Otp holds the schema definition for the Otp entity: a short-lived
// one-time code mailed to a user for password recovery. Codes are
// single-use; consumed and expired rows are purged by a periodic job.
type Otp struct {
	ent.Schema
}

// Fields of the Otp.
func (Otp) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(), // uuid, assigned at creation
		field.String("user_id"),
		field.String("code").
			NotEmpty().
			MaxLen(10),
		field.Bool("is_used").
			Default(false),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Otp.
func (Otp) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("otps").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the Otp.
func (Otp) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "code"),
	}
}
