package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// MessageCursor tracks the last transport message id known to have been
// fully processed for a user. The recovery agent scans history past it.
type MessageCursor struct {
	ent.Schema
}

// Fields of the MessageCursor.
func (MessageCursor) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.Int64("chat_id"),
		field.Int64("last_processed_message_id"),
		field.Time("last_processed_at"),
	}
}
