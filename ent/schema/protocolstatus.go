package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ProtocolStatus is the per-user silence-protocol switch. While active,
// inbound messages are diverted to quarantine instead of the pipeline.
type ProtocolStatus struct {
	ent.Schema
}

// Annotations of the ProtocolStatus.
func (ProtocolStatus) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "protocol_status"},
	}
}

// Fields of the ProtocolStatus.
func (ProtocolStatus) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.Bool("active").
			Default(false),
		field.Time("since").
			Optional().
			Nillable(),
		field.String("reason").
			Optional().
			Nillable(),
		field.String("performer").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
