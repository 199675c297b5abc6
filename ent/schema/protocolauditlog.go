package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProtocolAuditLog records every silence-protocol activation, deactivation,
// release, and expiry with the actor who performed it.
type ProtocolAuditLog struct {
	ent.Schema
}

// Annotations of the ProtocolAuditLog.
func (ProtocolAuditLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "protocol_audit_log"},
	}
}

// Fields of the ProtocolAuditLog.
func (ProtocolAuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Int64("user_id"),
		field.String("action").
			Comment("activated, deactivated, released, expired"),
		field.String("reason").
			Optional(),
		field.String("performer"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProtocolAuditLog.
func (ProtocolAuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
