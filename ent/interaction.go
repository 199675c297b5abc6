// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// Interaction is the model entity for the Interaction schema.
type Interaction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tombstoned (set to 0) on GDPR erasure
	UserID int64 `json:"user_id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID int64 `json:"chat_id,omitempty"`
	// Coalesced user message
	InboundText string `json:"inbound_text,omitempty"`
	// Highest transport message id in the originating job
	LastMessageID int64 `json:"last_message_id,omitempty"`
	// Stage-1 output; empty when the router had no budget
	DraftText string `json:"draft_text,omitempty"`
	// RefinedBubbles holds the value of the "refined_bubbles" field.
	RefinedBubbles []string `json:"refined_bubbles,omitempty"`
	// Populated on approval; may equal refined_bubbles
	FinalBubbles []string `json:"final_bubbles,omitempty"`
	// Safety holds the value of the "safety" field.
	Safety models.SafetyReport `json:"safety,omitempty"`
	// Llm1 holds the value of the "llm1" field.
	Llm1 models.LLMCallRecord `json:"llm1,omitempty"`
	// Llm2 holds the value of the "llm2" field.
	Llm2 models.LLMCallRecord `json:"llm2,omitempty"`
	// PriorityScore holds the value of the "priority_score" field.
	PriorityScore float64 `json:"priority_score,omitempty"`
	// Status holds the value of the "status" field.
	Status interaction.Status `json:"status,omitempty"`
	// ReviewerID holds the value of the "reviewer_id" field.
	ReviewerID *string `json:"reviewer_id,omitempty"`
	// ReviewStartedAt holds the value of the "review_started_at" field.
	ReviewStartedAt *time.Time `json:"review_started_at,omitempty"`
	// ReviewCompletedAt holds the value of the "review_completed_at" field.
	ReviewCompletedAt *time.Time `json:"review_completed_at,omitempty"`
	// EditTags holds the value of the "edit_tags" field.
	EditTags []string `json:"edit_tags,omitempty"`
	// 1..5 reviewer rating
	QualityScore *int `json:"quality_score,omitempty"`
	// Stored verbatim from the approval body
	Cta models.CTAMetadata `json:"cta,omitempty"`
	// Snapshot at approval time; user_current_status stays authoritative
	CustomerStatus *string `json:"customer_status,omitempty"`
	// ReviewerNotes holds the value of the "reviewer_notes" field.
	ReviewerNotes *string `json:"reviewer_notes,omitempty"`
	// llm_unavailable, shutdown, or a pipeline error summary
	ProcessingError *string `json:"processing_error,omitempty"`
	// Recovered holds the value of the "recovered" field.
	Recovered bool `json:"recovered,omitempty"`
	// RecoveryTier holds the value of the "recovery_tier" field.
	RecoveryTier *string `json:"recovery_tier,omitempty"`
	// DeliveredAt holds the value of the "delivered_at" field.
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	// DeliveryError holds the value of the "delivery_error" field.
	DeliveryError *string `json:"delivery_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Interaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interaction.FieldRefinedBubbles, interaction.FieldFinalBubbles, interaction.FieldSafety, interaction.FieldLlm1, interaction.FieldLlm2, interaction.FieldEditTags, interaction.FieldCta:
			values[i] = new([]byte)
		case interaction.FieldRecovered:
			values[i] = new(sql.NullBool)
		case interaction.FieldPriorityScore:
			values[i] = new(sql.NullFloat64)
		case interaction.FieldUserID, interaction.FieldChatID, interaction.FieldLastMessageID, interaction.FieldQualityScore:
			values[i] = new(sql.NullInt64)
		case interaction.FieldID, interaction.FieldInboundText, interaction.FieldDraftText, interaction.FieldStatus, interaction.FieldReviewerID, interaction.FieldCustomerStatus, interaction.FieldReviewerNotes, interaction.FieldProcessingError, interaction.FieldRecoveryTier, interaction.FieldDeliveryError:
			values[i] = new(sql.NullString)
		case interaction.FieldReviewStartedAt, interaction.FieldReviewCompletedAt, interaction.FieldDeliveredAt, interaction.FieldCreatedAt, interaction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Interaction fields.
func (_m *Interaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case interaction.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case interaction.FieldChatID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.Int64
			}
		case interaction.FieldInboundText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inbound_text", values[i])
			} else if value.Valid {
				_m.InboundText = value.String
			}
		case interaction.FieldLastMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_message_id", values[i])
			} else if value.Valid {
				_m.LastMessageID = value.Int64
			}
		case interaction.FieldDraftText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field draft_text", values[i])
			} else if value.Valid {
				_m.DraftText = value.String
			}
		case interaction.FieldRefinedBubbles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field refined_bubbles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RefinedBubbles); err != nil {
					return fmt.Errorf("unmarshal field refined_bubbles: %w", err)
				}
			}
		case interaction.FieldFinalBubbles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field final_bubbles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FinalBubbles); err != nil {
					return fmt.Errorf("unmarshal field final_bubbles: %w", err)
				}
			}
		case interaction.FieldSafety:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field safety", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Safety); err != nil {
					return fmt.Errorf("unmarshal field safety: %w", err)
				}
			}
		case interaction.FieldLlm1:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm1", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Llm1); err != nil {
					return fmt.Errorf("unmarshal field llm1: %w", err)
				}
			}
		case interaction.FieldLlm2:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm2", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Llm2); err != nil {
					return fmt.Errorf("unmarshal field llm2: %w", err)
				}
			}
		case interaction.FieldPriorityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_score", values[i])
			} else if value.Valid {
				_m.PriorityScore = value.Float64
			}
		case interaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = interaction.Status(value.String)
			}
		case interaction.FieldReviewerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_id", values[i])
			} else if value.Valid {
				_m.ReviewerID = new(string)
				*_m.ReviewerID = value.String
			}
		case interaction.FieldReviewStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field review_started_at", values[i])
			} else if value.Valid {
				_m.ReviewStartedAt = new(time.Time)
				*_m.ReviewStartedAt = value.Time
			}
		case interaction.FieldReviewCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field review_completed_at", values[i])
			} else if value.Valid {
				_m.ReviewCompletedAt = new(time.Time)
				*_m.ReviewCompletedAt = value.Time
			}
		case interaction.FieldEditTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field edit_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EditTags); err != nil {
					return fmt.Errorf("unmarshal field edit_tags: %w", err)
				}
			}
		case interaction.FieldQualityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = new(int)
				*_m.QualityScore = int(value.Int64)
			}
		case interaction.FieldCta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Cta); err != nil {
					return fmt.Errorf("unmarshal field cta: %w", err)
				}
			}
		case interaction.FieldCustomerStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_status", values[i])
			} else if value.Valid {
				_m.CustomerStatus = new(string)
				*_m.CustomerStatus = value.String
			}
		case interaction.FieldReviewerNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_notes", values[i])
			} else if value.Valid {
				_m.ReviewerNotes = new(string)
				*_m.ReviewerNotes = value.String
			}
		case interaction.FieldProcessingError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_error", values[i])
			} else if value.Valid {
				_m.ProcessingError = new(string)
				*_m.ProcessingError = value.String
			}
		case interaction.FieldRecovered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field recovered", values[i])
			} else if value.Valid {
				_m.Recovered = value.Bool
			}
		case interaction.FieldRecoveryTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_tier", values[i])
			} else if value.Valid {
				_m.RecoveryTier = new(string)
				*_m.RecoveryTier = value.String
			}
		case interaction.FieldDeliveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_at", values[i])
			} else if value.Valid {
				_m.DeliveredAt = new(time.Time)
				*_m.DeliveredAt = value.Time
			}
		case interaction.FieldDeliveryError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_error", values[i])
			} else if value.Valid {
				_m.DeliveryError = new(string)
				*_m.DeliveryError = value.String
			}
		case interaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case interaction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Interaction.
// This includes values selected through modifiers, order, etc.
func (_m *Interaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Interaction.
// Note that you need to call Interaction.Unwrap() before calling this method if this Interaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Interaction) Update() *InteractionUpdateOne {
	return NewInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Interaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Interaction) Unwrap() *Interaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Interaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Interaction) String() string {
	var builder strings.Builder
	builder.WriteString("Interaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChatID))
	builder.WriteString(", ")
	builder.WriteString("inbound_text=")
	builder.WriteString(_m.InboundText)
	builder.WriteString(", ")
	builder.WriteString("last_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastMessageID))
	builder.WriteString(", ")
	builder.WriteString("draft_text=")
	builder.WriteString(_m.DraftText)
	builder.WriteString(", ")
	builder.WriteString("refined_bubbles=")
	builder.WriteString(fmt.Sprintf("%v", _m.RefinedBubbles))
	builder.WriteString(", ")
	builder.WriteString("final_bubbles=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalBubbles))
	builder.WriteString(", ")
	builder.WriteString("safety=")
	builder.WriteString(fmt.Sprintf("%v", _m.Safety))
	builder.WriteString(", ")
	builder.WriteString("llm1=")
	builder.WriteString(fmt.Sprintf("%v", _m.Llm1))
	builder.WriteString(", ")
	builder.WriteString("llm2=")
	builder.WriteString(fmt.Sprintf("%v", _m.Llm2))
	builder.WriteString(", ")
	builder.WriteString("priority_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ReviewerID; v != nil {
		builder.WriteString("reviewer_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReviewStartedAt; v != nil {
		builder.WriteString("review_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewCompletedAt; v != nil {
		builder.WriteString("review_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("edit_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.EditTags))
	builder.WriteString(", ")
	if v := _m.QualityScore; v != nil {
		builder.WriteString("quality_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("cta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cta))
	builder.WriteString(", ")
	if v := _m.CustomerStatus; v != nil {
		builder.WriteString("customer_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReviewerNotes; v != nil {
		builder.WriteString("reviewer_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProcessingError; v != nil {
		builder.WriteString("processing_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("recovered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recovered))
	builder.WriteString(", ")
	if v := _m.RecoveryTier; v != nil {
		builder.WriteString("recovery_tier=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeliveredAt; v != nil {
		builder.WriteString("delivered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeliveryError; v != nil {
		builder.WriteString("delivery_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Interactions is a parsable slice of Interaction.
type Interactions []*Interaction
