package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// Interaction holds the schema definition for the Interaction entity —
// one row per review item, retained forever (terminal statuses included).
type Interaction struct {
	ent.Schema
}

// Fields of the Interaction.
func (Interaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.Int64("user_id").
			Comment("Tombstoned (set to 0) on GDPR erasure"),
		field.Int64("chat_id"),
		field.Text("inbound_text").
			Comment("Coalesced user message"),
		field.Int64("last_message_id").
			Default(0).
			Comment("Highest transport message id in the originating job"),
		field.Text("draft_text").
			Optional().
			Comment("Stage-1 output; empty when the router had no budget"),
		field.JSON("refined_bubbles", []string{}).
			Optional(),
		field.JSON("final_bubbles", []string{}).
			Optional().
			Comment("Populated on approval; may equal refined_bubbles"),
		field.JSON("safety", models.SafetyReport{}).
			Optional(),
		field.JSON("llm1", models.LLMCallRecord{}).
			Optional(),
		field.JSON("llm2", models.LLMCallRecord{}).
			Optional(),
		field.Float("priority_score").
			Default(0),
		field.Enum("status").
			Values("pending", "reviewing", "approved", "rejected", "cancelled").
			Default("pending"),
		field.String("reviewer_id").
			Optional().
			Nillable(),
		field.Time("review_started_at").
			Optional().
			Nillable(),
		field.Time("review_completed_at").
			Optional().
			Nillable(),
		field.JSON("edit_tags", []string{}).
			Optional(),
		field.Int("quality_score").
			Optional().
			Nillable().
			Comment("1..5 reviewer rating"),
		field.JSON("cta", models.CTAMetadata{}).
			Optional().
			Comment("Stored verbatim from the approval body"),
		field.String("customer_status").
			Optional().
			Nillable().
			Comment("Snapshot at approval time; user_current_status stays authoritative"),
		field.Text("reviewer_notes").
			Optional().
			Nillable(),
		field.String("processing_error").
			Optional().
			Nillable().
			Comment("llm_unavailable, shutdown, or a pipeline error summary"),
		field.Bool("recovered").
			Default(false),
		field.String("recovery_tier").
			Optional().
			Nillable(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.String("delivery_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Interaction.
func (Interaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "priority_score"),
		index.Fields("delivered_at").
			Annotations(entsql.IndexWhere("delivered_at IS NOT NULL")),
	}
}
