// Code generated by ent, DO NOT EDIT.

package interaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interaction type in the database.
	Label = "interaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "review_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldInboundText holds the string denoting the inbound_text field in the database.
	FieldInboundText = "inbound_text"
	// FieldLastMessageID holds the string denoting the last_message_id field in the database.
	FieldLastMessageID = "last_message_id"
	// FieldDraftText holds the string denoting the draft_text field in the database.
	FieldDraftText = "draft_text"
	// FieldRefinedBubbles holds the string denoting the refined_bubbles field in the database.
	FieldRefinedBubbles = "refined_bubbles"
	// FieldFinalBubbles holds the string denoting the final_bubbles field in the database.
	FieldFinalBubbles = "final_bubbles"
	// FieldSafety holds the string denoting the safety field in the database.
	FieldSafety = "safety"
	// FieldLlm1 holds the string denoting the llm1 field in the database.
	FieldLlm1 = "llm1"
	// FieldLlm2 holds the string denoting the llm2 field in the database.
	FieldLlm2 = "llm2"
	// FieldPriorityScore holds the string denoting the priority_score field in the database.
	FieldPriorityScore = "priority_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReviewerID holds the string denoting the reviewer_id field in the database.
	FieldReviewerID = "reviewer_id"
	// FieldReviewStartedAt holds the string denoting the review_started_at field in the database.
	FieldReviewStartedAt = "review_started_at"
	// FieldReviewCompletedAt holds the string denoting the review_completed_at field in the database.
	FieldReviewCompletedAt = "review_completed_at"
	// FieldEditTags holds the string denoting the edit_tags field in the database.
	FieldEditTags = "edit_tags"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldCta holds the string denoting the cta field in the database.
	FieldCta = "cta"
	// FieldCustomerStatus holds the string denoting the customer_status field in the database.
	FieldCustomerStatus = "customer_status"
	// FieldReviewerNotes holds the string denoting the reviewer_notes field in the database.
	FieldReviewerNotes = "reviewer_notes"
	// FieldProcessingError holds the string denoting the processing_error field in the database.
	FieldProcessingError = "processing_error"
	// FieldRecovered holds the string denoting the recovered field in the database.
	FieldRecovered = "recovered"
	// FieldRecoveryTier holds the string denoting the recovery_tier field in the database.
	FieldRecoveryTier = "recovery_tier"
	// FieldDeliveredAt holds the string denoting the delivered_at field in the database.
	FieldDeliveredAt = "delivered_at"
	// FieldDeliveryError holds the string denoting the delivery_error field in the database.
	FieldDeliveryError = "delivery_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the interaction in the database.
	Table = "interactions"
)

// Columns holds all SQL columns for interaction fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldChatID,
	FieldInboundText,
	FieldLastMessageID,
	FieldDraftText,
	FieldRefinedBubbles,
	FieldFinalBubbles,
	FieldSafety,
	FieldLlm1,
	FieldLlm2,
	FieldPriorityScore,
	FieldStatus,
	FieldReviewerID,
	FieldReviewStartedAt,
	FieldReviewCompletedAt,
	FieldEditTags,
	FieldQualityScore,
	FieldCta,
	FieldCustomerStatus,
	FieldReviewerNotes,
	FieldProcessingError,
	FieldRecovered,
	FieldRecoveryTier,
	FieldDeliveredAt,
	FieldDeliveryError,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLastMessageID holds the default value on creation for the "last_message_id" field.
	DefaultLastMessageID int64
	// DefaultPriorityScore holds the default value on creation for the "priority_score" field.
	DefaultPriorityScore float64
	// DefaultRecovered holds the default value on creation for the "recovered" field.
	DefaultRecovered bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusReviewing, StatusApproved, StatusRejected, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("interaction: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Interaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByInboundText orders the results by the inbound_text field.
func ByInboundText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInboundText, opts...).ToFunc()
}

// ByLastMessageID orders the results by the last_message_id field.
func ByLastMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessageID, opts...).ToFunc()
}

// ByDraftText orders the results by the draft_text field.
func ByDraftText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDraftText, opts...).ToFunc()
}

// ByPriorityScore orders the results by the priority_score field.
func ByPriorityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReviewerID orders the results by the reviewer_id field.
func ByReviewerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewerID, opts...).ToFunc()
}

// ByReviewStartedAt orders the results by the review_started_at field.
func ByReviewStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStartedAt, opts...).ToFunc()
}

// ByReviewCompletedAt orders the results by the review_completed_at field.
func ByReviewCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCompletedAt, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByCustomerStatus orders the results by the customer_status field.
func ByCustomerStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerStatus, opts...).ToFunc()
}

// ByReviewerNotes orders the results by the reviewer_notes field.
func ByReviewerNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewerNotes, opts...).ToFunc()
}

// ByProcessingError orders the results by the processing_error field.
func ByProcessingError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingError, opts...).ToFunc()
}

// ByRecovered orders the results by the recovered field.
func ByRecovered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecovered, opts...).ToFunc()
}

// ByRecoveryTier orders the results by the recovery_tier field.
func ByRecoveryTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryTier, opts...).ToFunc()
}

// ByDeliveredAt orders the results by the delivered_at field.
func ByDeliveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredAt, opts...).ToFunc()
}

// ByDeliveryError orders the results by the delivery_error field.
func ByDeliveryError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
