package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StatusTransition is the append-only audit log of customer status changes.
type StatusTransition struct {
	ent.Schema
}

// Fields of the StatusTransition.
func (StatusTransition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Int64("user_id"),
		field.String("from_status"),
		field.String("to_status"),
		field.Float("delta_ltv_usd").
			Default(0),
		field.String("reason").
			Optional(),
		field.String("performer").
			Comment("Reviewer credential or system actor"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the StatusTransition.
func (StatusTransition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
