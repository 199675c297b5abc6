package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuarantineMessage is an inbound message diverted away from the pipeline
// while its user is under the silence protocol. Entries expire after
// QUARANTINE_TTL and can be released back into the activity tracker.
type QuarantineMessage struct {
	ent.Schema
}

// Fields of the QuarantineMessage.
func (QuarantineMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("q_id").
			Unique().
			Immutable(),
		field.Int64("user_id"),
		field.Int64("chat_id"),
		field.Int64("message_id").
			Optional().
			Comment("Transport message id when known; zero for synthetic entries"),
		field.Text("text"),
		field.Time("received_at"),
		field.Time("expires_at"),
		field.Time("released_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the QuarantineMessage.
func (QuarantineMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "received_at"),
		index.Fields("expires_at").
			Annotations(entsql.IndexWhere("released_at IS NULL")),
	}
}
