package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// UserCurrentStatus holds the authoritative per-user customer state.
// History lives in status_transitions; this row is always the latest view.
type UserCurrentStatus struct {
	ent.Schema
}

// Annotations of the UserCurrentStatus.
func (UserCurrentStatus) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "user_current_status"},
	}
}

// Fields of the UserCurrentStatus.
func (UserCurrentStatus) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.Enum("customer_status").
			Values("PROSPECT", "LEAD_QUALIFIED", "CUSTOMER", "CHURNED", "LEAD_EXHAUSTED").
			Default("PROSPECT"),
		field.Float("ltv_total_usd").
			Default(0),
		field.String("nickname").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
