package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecoveryOperation is the durable audit row of one recovery sweep.
type RecoveryOperation struct {
	ent.Schema
}

// Fields of the RecoveryOperation.
func (RecoveryOperation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("op_id").
			Unique().
			Immutable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Int("users_scanned").
			Default(0),
		field.Int("messages_recovered").
			Default(0),
		field.Int("errors").
			Default(0),
		field.Enum("status").
			Values("running", "completed", "halted").
			Default("running"),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Indexes of the RecoveryOperation.
func (RecoveryOperation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
	}
}
