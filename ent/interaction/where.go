// Code generated by ent, DO NOT EDIT.

package interaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUserID, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldChatID, v))
}

// InboundText applies equality check predicate on the "inbound_text" field. It's identical to InboundTextEQ.
func InboundText(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldInboundText, v))
}

// LastMessageID applies equality check predicate on the "last_message_id" field. It's identical to LastMessageIDEQ.
func LastMessageID(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldLastMessageID, v))
}

// DraftText applies equality check predicate on the "draft_text" field. It's identical to DraftTextEQ.
func DraftText(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDraftText, v))
}

// PriorityScore applies equality check predicate on the "priority_score" field. It's identical to PriorityScoreEQ.
func PriorityScore(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldPriorityScore, v))
}

// ReviewerID applies equality check predicate on the "reviewer_id" field. It's identical to ReviewerIDEQ.
func ReviewerID(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldReviewerID, v))
}

// ReviewStartedAt applies equality check predicate on the "review_started_at" field. It's identical to ReviewStartedAtEQ.
func ReviewStartedAt(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldReviewStartedAt, v))
}

// ReviewCompletedAt applies equality check predicate on the "review_completed_at" field. It's identical to ReviewCompletedAtEQ.
func ReviewCompletedAt(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldReviewCompletedAt, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldQualityScore, v))
}

// CustomerStatus applies equality check predicate on the "customer_status" field. It's identical to CustomerStatusEQ.
func CustomerStatus(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldCustomerStatus, v))
}

// ReviewerNotes applies equality check predicate on the "reviewer_notes" field. It's identical to ReviewerNotesEQ.
func ReviewerNotes(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldReviewerNotes, v))
}

// ProcessingError applies equality check predicate on the "processing_error" field. It's identical to ProcessingErrorEQ.
func ProcessingError(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldProcessingError, v))
}

// Recovered applies equality check predicate on the "recovered" field. It's identical to RecoveredEQ.
func Recovered(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldRecovered, v))
}

// RecoveryTier applies equality check predicate on the "recovery_tier" field. It's identical to RecoveryTierEQ.
func RecoveryTier(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldRecoveryTier, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveryError applies equality check predicate on the "delivery_error" field. It's identical to DeliveryErrorEQ.
func DeliveryError(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDeliveryError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldUserID, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldChatID, v))
}

// InboundTextEQ applies the EQ predicate on the "inbound_text" field.
func InboundTextEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldInboundText, v))
}

// InboundTextNEQ applies the NEQ predicate on the "inbound_text" field.
func InboundTextNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldInboundText, v))
}

// InboundTextIn applies the In predicate on the "inbound_text" field.
func InboundTextIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldInboundText, vs...))
}

// InboundTextNotIn applies the NotIn predicate on the "inbound_text" field.
func InboundTextNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldInboundText, vs...))
}

// InboundTextGT applies the GT predicate on the "inbound_text" field.
func InboundTextGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldInboundText, v))
}

// InboundTextGTE applies the GTE predicate on the "inbound_text" field.
func InboundTextGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldInboundText, v))
}

// InboundTextLT applies the LT predicate on the "inbound_text" field.
func InboundTextLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldInboundText, v))
}

// InboundTextLTE applies the LTE predicate on the "inbound_text" field.
func InboundTextLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldInboundText, v))
}

// InboundTextContains applies the Contains predicate on the "inbound_text" field.
func InboundTextContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldInboundText, v))
}

// InboundTextHasPrefix applies the HasPrefix predicate on the "inbound_text" field.
func InboundTextHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldInboundText, v))
}

// InboundTextHasSuffix applies the HasSuffix predicate on the "inbound_text" field.
func InboundTextHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldInboundText, v))
}

// InboundTextEqualFold applies the EqualFold predicate on the "inbound_text" field.
func InboundTextEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldInboundText, v))
}

// InboundTextContainsFold applies the ContainsFold predicate on the "inbound_text" field.
func InboundTextContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldInboundText, v))
}

// LastMessageIDEQ applies the EQ predicate on the "last_message_id" field.
func LastMessageIDEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldLastMessageID, v))
}

// LastMessageIDNEQ applies the NEQ predicate on the "last_message_id" field.
func LastMessageIDNEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldLastMessageID, v))
}

// LastMessageIDIn applies the In predicate on the "last_message_id" field.
func LastMessageIDIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldLastMessageID, vs...))
}

// LastMessageIDNotIn applies the NotIn predicate on the "last_message_id" field.
func LastMessageIDNotIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldLastMessageID, vs...))
}

// LastMessageIDGT applies the GT predicate on the "last_message_id" field.
func LastMessageIDGT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldLastMessageID, v))
}

// LastMessageIDGTE applies the GTE predicate on the "last_message_id" field.
func LastMessageIDGTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldLastMessageID, v))
}

// LastMessageIDLT applies the LT predicate on the "last_message_id" field.
func LastMessageIDLT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldLastMessageID, v))
}

// LastMessageIDLTE applies the LTE predicate on the "last_message_id" field.
func LastMessageIDLTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldLastMessageID, v))
}

// DraftTextEQ applies the EQ predicate on the "draft_text" field.
func DraftTextEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDraftText, v))
}

// DraftTextNEQ applies the NEQ predicate on the "draft_text" field.
func DraftTextNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldDraftText, v))
}

// DraftTextIn applies the In predicate on the "draft_text" field.
func DraftTextIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldDraftText, vs...))
}

// DraftTextNotIn applies the NotIn predicate on the "draft_text" field.
func DraftTextNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldDraftText, vs...))
}

// DraftTextGT applies the GT predicate on the "draft_text" field.
func DraftTextGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldDraftText, v))
}

// DraftTextGTE applies the GTE predicate on the "draft_text" field.
func DraftTextGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldDraftText, v))
}

// DraftTextLT applies the LT predicate on the "draft_text" field.
func DraftTextLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldDraftText, v))
}

// DraftTextLTE applies the LTE predicate on the "draft_text" field.
func DraftTextLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldDraftText, v))
}

// DraftTextContains applies the Contains predicate on the "draft_text" field.
func DraftTextContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldDraftText, v))
}

// DraftTextHasPrefix applies the HasPrefix predicate on the "draft_text" field.
func DraftTextHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldDraftText, v))
}

// DraftTextHasSuffix applies the HasSuffix predicate on the "draft_text" field.
func DraftTextHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldDraftText, v))
}

// DraftTextIsNil applies the IsNil predicate on the "draft_text" field.
func DraftTextIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldDraftText))
}

// DraftTextNotNil applies the NotNil predicate on the "draft_text" field.
func DraftTextNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldDraftText))
}

// DraftTextEqualFold applies the EqualFold predicate on the "draft_text" field.
func DraftTextEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldDraftText, v))
}

// DraftTextContainsFold applies the ContainsFold predicate on the "draft_text" field.
func DraftTextContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldDraftText, v))
}

// RefinedBubblesIsNil applies the IsNil predicate on the "refined_bubbles" field.
func RefinedBubblesIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldRefinedBubbles))
}

// RefinedBubblesNotNil applies the NotNil predicate on the "refined_bubbles" field.
func RefinedBubblesNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldRefinedBubbles))
}

// FinalBubblesIsNil applies the IsNil predicate on the "final_bubbles" field.
func FinalBubblesIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldFinalBubbles))
}

// FinalBubblesNotNil applies the NotNil predicate on the "final_bubbles" field.
func FinalBubblesNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldFinalBubbles))
}

// SafetyIsNil applies the IsNil predicate on the "safety" field.
func SafetyIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldSafety))
}

// SafetyNotNil applies the NotNil predicate on the "safety" field.
func SafetyNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldSafety))
}

// Llm1IsNil applies the IsNil predicate on the "llm1" field.
func Llm1IsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldLlm1))
}

// Llm1NotNil applies the NotNil predicate on the "llm1" field.
func Llm1NotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldLlm1))
}

// Llm2IsNil applies the IsNil predicate on the "llm2" field.
func Llm2IsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldLlm2))
}

// Llm2NotNil applies the NotNil predicate on the "llm2" field.
func Llm2NotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldLlm2))
}

// PriorityScoreEQ applies the EQ predicate on the "priority_score" field.
func PriorityScoreEQ(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldPriorityScore, v))
}

// PriorityScoreNEQ applies the NEQ predicate on the "priority_score" field.
func PriorityScoreNEQ(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldPriorityScore, v))
}

// PriorityScoreIn applies the In predicate on the "priority_score" field.
func PriorityScoreIn(vs ...float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldPriorityScore, vs...))
}

// PriorityScoreNotIn applies the NotIn predicate on the "priority_score" field.
func PriorityScoreNotIn(vs ...float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldPriorityScore, vs...))
}

// PriorityScoreGT applies the GT predicate on the "priority_score" field.
func PriorityScoreGT(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldPriorityScore, v))
}

// PriorityScoreGTE applies the GTE predicate on the "priority_score" field.
func PriorityScoreGTE(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldPriorityScore, v))
}

// PriorityScoreLT applies the LT predicate on the "priority_score" field.
func PriorityScoreLT(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldPriorityScore, v))
}

// PriorityScoreLTE applies the LTE predicate on the "priority_score" field.
func PriorityScoreLTE(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldPriorityScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldStatus, vs...))
}

// ReviewerIDEQ applies the EQ predicate on the "reviewer_id" field.
func ReviewerIDEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldReviewerID, v))
}

// ReviewerIDNEQ applies the NEQ predicate on the "reviewer_id" field.
func ReviewerIDNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldReviewerID, v))
}

// ReviewerIDIn applies the In predicate on the "reviewer_id" field.
func ReviewerIDIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldReviewerID, vs...))
}

// ReviewerIDNotIn applies the NotIn predicate on the "reviewer_id" field.
func ReviewerIDNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldReviewerID, vs...))
}

// ReviewerIDGT applies the GT predicate on the "reviewer_id" field.
func ReviewerIDGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldReviewerID, v))
}

// ReviewerIDGTE applies the GTE predicate on the "reviewer_id" field.
func ReviewerIDGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldReviewerID, v))
}

// ReviewerIDLT applies the LT predicate on the "reviewer_id" field.
func ReviewerIDLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldReviewerID, v))
}

// ReviewerIDLTE applies the LTE predicate on the "reviewer_id" field.
func ReviewerIDLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldReviewerID, v))
}

// ReviewerIDContains applies the Contains predicate on the "reviewer_id" field.
func ReviewerIDContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldReviewerID, v))
}

// ReviewerIDHasPrefix applies the HasPrefix predicate on the "reviewer_id" field.
func ReviewerIDHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldReviewerID, v))
}

// ReviewerIDHasSuffix applies the HasSuffix predicate on the "reviewer_id" field.
func ReviewerIDHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldReviewerID, v))
}

// ReviewerIDIsNil applies the IsNil predicate on the "reviewer_id" field.
func ReviewerIDIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldReviewerID))
}

// ReviewerIDNotNil applies the NotNil predicate on the "reviewer_id" field.
func ReviewerIDNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldReviewerID))
}

// ReviewerIDEqualFold applies the EqualFold predicate on the "reviewer_id" field.
func ReviewerIDEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldReviewerID, v))
}

// ReviewerIDContainsFold applies the ContainsFold predicate on the "reviewer_id" field.
func ReviewerIDContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldReviewerID, v))
}

// ReviewStartedAtEQ applies the EQ predicate on the "review_started_at" field.
func ReviewStartedAtEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldReviewStartedAt, v))
}

// ReviewStartedAtNEQ applies the NEQ predicate on the "review_started_at" field.
func ReviewStartedAtNEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldReviewStartedAt, v))
}

// ReviewStartedAtIn applies the In predicate on the "review_started_at" field.
func ReviewStartedAtIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldReviewStartedAt, vs...))
}

// ReviewStartedAtNotIn applies the NotIn predicate on the "review_started_at" field.
func ReviewStartedAtNotIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldReviewStartedAt, vs...))
}

// ReviewStartedAtGT applies the GT predicate on the "review_started_at" field.
func ReviewStartedAtGT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldReviewStartedAt, v))
}

// ReviewStartedAtGTE applies the GTE predicate on the "review_started_at" field.
func ReviewStartedAtGTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldReviewStartedAt, v))
}

// ReviewStartedAtLT applies the LT predicate on the "review_started_at" field.
func ReviewStartedAtLT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldReviewStartedAt, v))
}

// ReviewStartedAtLTE applies the LTE predicate on the "review_started_at" field.
func ReviewStartedAtLTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldReviewStartedAt, v))
}

// ReviewStartedAtIsNil applies the IsNil predicate on the "review_started_at" field.
func ReviewStartedAtIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldReviewStartedAt))
}

// ReviewStartedAtNotNil applies the NotNil predicate on the "review_started_at" field.
func ReviewStartedAtNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldReviewStartedAt))
}

// ReviewCompletedAtEQ applies the EQ predicate on the "review_completed_at" field.
func ReviewCompletedAtEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtNEQ applies the NEQ predicate on the "review_completed_at" field.
func ReviewCompletedAtNEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtIn applies the In predicate on the "review_completed_at" field.
func ReviewCompletedAtIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldReviewCompletedAt, vs...))
}

// ReviewCompletedAtNotIn applies the NotIn predicate on the "review_completed_at" field.
func ReviewCompletedAtNotIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldReviewCompletedAt, vs...))
}

// ReviewCompletedAtGT applies the GT predicate on the "review_completed_at" field.
func ReviewCompletedAtGT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtGTE applies the GTE predicate on the "review_completed_at" field.
func ReviewCompletedAtGTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtLT applies the LT predicate on the "review_completed_at" field.
func ReviewCompletedAtLT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtLTE applies the LTE predicate on the "review_completed_at" field.
func ReviewCompletedAtLTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtIsNil applies the IsNil predicate on the "review_completed_at" field.
func ReviewCompletedAtIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldReviewCompletedAt))
}

// ReviewCompletedAtNotNil applies the NotNil predicate on the "review_completed_at" field.
func ReviewCompletedAtNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldReviewCompletedAt))
}

// EditTagsIsNil applies the IsNil predicate on the "edit_tags" field.
func EditTagsIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldEditTags))
}

// EditTagsNotNil applies the NotNil predicate on the "edit_tags" field.
func EditTagsNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldEditTags))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldQualityScore, v))
}

// QualityScoreIsNil applies the IsNil predicate on the "quality_score" field.
func QualityScoreIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldQualityScore))
}

// QualityScoreNotNil applies the NotNil predicate on the "quality_score" field.
func QualityScoreNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldQualityScore))
}

// CtaIsNil applies the IsNil predicate on the "cta" field.
func CtaIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldCta))
}

// CtaNotNil applies the NotNil predicate on the "cta" field.
func CtaNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldCta))
}

// CustomerStatusEQ applies the EQ predicate on the "customer_status" field.
func CustomerStatusEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldCustomerStatus, v))
}

// CustomerStatusNEQ applies the NEQ predicate on the "customer_status" field.
func CustomerStatusNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldCustomerStatus, v))
}

// CustomerStatusIn applies the In predicate on the "customer_status" field.
func CustomerStatusIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldCustomerStatus, vs...))
}

// CustomerStatusNotIn applies the NotIn predicate on the "customer_status" field.
func CustomerStatusNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldCustomerStatus, vs...))
}

// CustomerStatusGT applies the GT predicate on the "customer_status" field.
func CustomerStatusGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldCustomerStatus, v))
}

// CustomerStatusGTE applies the GTE predicate on the "customer_status" field.
func CustomerStatusGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldCustomerStatus, v))
}

// CustomerStatusLT applies the LT predicate on the "customer_status" field.
func CustomerStatusLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldCustomerStatus, v))
}

// CustomerStatusLTE applies the LTE predicate on the "customer_status" field.
func CustomerStatusLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldCustomerStatus, v))
}

// CustomerStatusContains applies the Contains predicate on the "customer_status" field.
func CustomerStatusContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldCustomerStatus, v))
}

// CustomerStatusHasPrefix applies the HasPrefix predicate on the "customer_status" field.
func CustomerStatusHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldCustomerStatus, v))
}

// CustomerStatusHasSuffix applies the HasSuffix predicate on the "customer_status" field.
func CustomerStatusHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldCustomerStatus, v))
}

// CustomerStatusIsNil applies the IsNil predicate on the "customer_status" field.
func CustomerStatusIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldCustomerStatus))
}

// CustomerStatusNotNil applies the NotNil predicate on the "customer_status" field.
func CustomerStatusNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldCustomerStatus))
}

// CustomerStatusEqualFold applies the EqualFold predicate on the "customer_status" field.
func CustomerStatusEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldCustomerStatus, v))
}

// CustomerStatusContainsFold applies the ContainsFold predicate on the "customer_status" field.
func CustomerStatusContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldCustomerStatus, v))
}

// ReviewerNotesEQ applies the EQ predicate on the "reviewer_notes" field.
func ReviewerNotesEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldReviewerNotes, v))
}

// ReviewerNotesNEQ applies the NEQ predicate on the "reviewer_notes" field.
func ReviewerNotesNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldReviewerNotes, v))
}

// ReviewerNotesIn applies the In predicate on the "reviewer_notes" field.
func ReviewerNotesIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldReviewerNotes, vs...))
}

// ReviewerNotesNotIn applies the NotIn predicate on the "reviewer_notes" field.
func ReviewerNotesNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldReviewerNotes, vs...))
}

// ReviewerNotesGT applies the GT predicate on the "reviewer_notes" field.
func ReviewerNotesGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldReviewerNotes, v))
}

// ReviewerNotesGTE applies the GTE predicate on the "reviewer_notes" field.
func ReviewerNotesGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldReviewerNotes, v))
}

// ReviewerNotesLT applies the LT predicate on the "reviewer_notes" field.
func ReviewerNotesLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldReviewerNotes, v))
}

// ReviewerNotesLTE applies the LTE predicate on the "reviewer_notes" field.
func ReviewerNotesLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldReviewerNotes, v))
}

// ReviewerNotesContains applies the Contains predicate on the "reviewer_notes" field.
func ReviewerNotesContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldReviewerNotes, v))
}

// ReviewerNotesHasPrefix applies the HasPrefix predicate on the "reviewer_notes" field.
func ReviewerNotesHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldReviewerNotes, v))
}

// ReviewerNotesHasSuffix applies the HasSuffix predicate on the "reviewer_notes" field.
func ReviewerNotesHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldReviewerNotes, v))
}

// ReviewerNotesIsNil applies the IsNil predicate on the "reviewer_notes" field.
func ReviewerNotesIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldReviewerNotes))
}

// ReviewerNotesNotNil applies the NotNil predicate on the "reviewer_notes" field.
func ReviewerNotesNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldReviewerNotes))
}

// ReviewerNotesEqualFold applies the EqualFold predicate on the "reviewer_notes" field.
func ReviewerNotesEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldReviewerNotes, v))
}

// ReviewerNotesContainsFold applies the ContainsFold predicate on the "reviewer_notes" field.
func ReviewerNotesContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldReviewerNotes, v))
}

// ProcessingErrorEQ applies the EQ predicate on the "processing_error" field.
func ProcessingErrorEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldProcessingError, v))
}

// ProcessingErrorNEQ applies the NEQ predicate on the "processing_error" field.
func ProcessingErrorNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldProcessingError, v))
}

// ProcessingErrorIn applies the In predicate on the "processing_error" field.
func ProcessingErrorIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldProcessingError, vs...))
}

// ProcessingErrorNotIn applies the NotIn predicate on the "processing_error" field.
func ProcessingErrorNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldProcessingError, vs...))
}

// ProcessingErrorGT applies the GT predicate on the "processing_error" field.
func ProcessingErrorGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldProcessingError, v))
}

// ProcessingErrorGTE applies the GTE predicate on the "processing_error" field.
func ProcessingErrorGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldProcessingError, v))
}

// ProcessingErrorLT applies the LT predicate on the "processing_error" field.
func ProcessingErrorLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldProcessingError, v))
}

// ProcessingErrorLTE applies the LTE predicate on the "processing_error" field.
func ProcessingErrorLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldProcessingError, v))
}

// ProcessingErrorContains applies the Contains predicate on the "processing_error" field.
func ProcessingErrorContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldProcessingError, v))
}

// ProcessingErrorHasPrefix applies the HasPrefix predicate on the "processing_error" field.
func ProcessingErrorHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldProcessingError, v))
}

// ProcessingErrorHasSuffix applies the HasSuffix predicate on the "processing_error" field.
func ProcessingErrorHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldProcessingError, v))
}

// ProcessingErrorIsNil applies the IsNil predicate on the "processing_error" field.
func ProcessingErrorIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldProcessingError))
}

// ProcessingErrorNotNil applies the NotNil predicate on the "processing_error" field.
func ProcessingErrorNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldProcessingError))
}

// ProcessingErrorEqualFold applies the EqualFold predicate on the "processing_error" field.
func ProcessingErrorEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldProcessingError, v))
}

// ProcessingErrorContainsFold applies the ContainsFold predicate on the "processing_error" field.
func ProcessingErrorContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldProcessingError, v))
}

// RecoveredEQ applies the EQ predicate on the "recovered" field.
func RecoveredEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldRecovered, v))
}

// RecoveredNEQ applies the NEQ predicate on the "recovered" field.
func RecoveredNEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldRecovered, v))
}

// RecoveryTierEQ applies the EQ predicate on the "recovery_tier" field.
func RecoveryTierEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldRecoveryTier, v))
}

// RecoveryTierNEQ applies the NEQ predicate on the "recovery_tier" field.
func RecoveryTierNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldRecoveryTier, v))
}

// RecoveryTierIn applies the In predicate on the "recovery_tier" field.
func RecoveryTierIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldRecoveryTier, vs...))
}

// RecoveryTierNotIn applies the NotIn predicate on the "recovery_tier" field.
func RecoveryTierNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldRecoveryTier, vs...))
}

// RecoveryTierGT applies the GT predicate on the "recovery_tier" field.
func RecoveryTierGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldRecoveryTier, v))
}

// RecoveryTierGTE applies the GTE predicate on the "recovery_tier" field.
func RecoveryTierGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldRecoveryTier, v))
}

// RecoveryTierLT applies the LT predicate on the "recovery_tier" field.
func RecoveryTierLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldRecoveryTier, v))
}

// RecoveryTierLTE applies the LTE predicate on the "recovery_tier" field.
func RecoveryTierLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldRecoveryTier, v))
}

// RecoveryTierContains applies the Contains predicate on the "recovery_tier" field.
func RecoveryTierContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldRecoveryTier, v))
}

// RecoveryTierHasPrefix applies the HasPrefix predicate on the "recovery_tier" field.
func RecoveryTierHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldRecoveryTier, v))
}

// RecoveryTierHasSuffix applies the HasSuffix predicate on the "recovery_tier" field.
func RecoveryTierHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldRecoveryTier, v))
}

// RecoveryTierIsNil applies the IsNil predicate on the "recovery_tier" field.
func RecoveryTierIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldRecoveryTier))
}

// RecoveryTierNotNil applies the NotNil predicate on the "recovery_tier" field.
func RecoveryTierNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldRecoveryTier))
}

// RecoveryTierEqualFold applies the EqualFold predicate on the "recovery_tier" field.
func RecoveryTierEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldRecoveryTier, v))
}

// RecoveryTierContainsFold applies the ContainsFold predicate on the "recovery_tier" field.
func RecoveryTierContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldRecoveryTier, v))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldDeliveredAt))
}

// DeliveryErrorEQ applies the EQ predicate on the "delivery_error" field.
func DeliveryErrorEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDeliveryError, v))
}

// DeliveryErrorNEQ applies the NEQ predicate on the "delivery_error" field.
func DeliveryErrorNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldDeliveryError, v))
}

// DeliveryErrorIn applies the In predicate on the "delivery_error" field.
func DeliveryErrorIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldDeliveryError, vs...))
}

// DeliveryErrorNotIn applies the NotIn predicate on the "delivery_error" field.
func DeliveryErrorNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldDeliveryError, vs...))
}

// DeliveryErrorGT applies the GT predicate on the "delivery_error" field.
func DeliveryErrorGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldDeliveryError, v))
}

// DeliveryErrorGTE applies the GTE predicate on the "delivery_error" field.
func DeliveryErrorGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldDeliveryError, v))
}

// DeliveryErrorLT applies the LT predicate on the "delivery_error" field.
func DeliveryErrorLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldDeliveryError, v))
}

// DeliveryErrorLTE applies the LTE predicate on the "delivery_error" field.
func DeliveryErrorLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldDeliveryError, v))
}

// DeliveryErrorContains applies the Contains predicate on the "delivery_error" field.
func DeliveryErrorContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldDeliveryError, v))
}

// DeliveryErrorHasPrefix applies the HasPrefix predicate on the "delivery_error" field.
func DeliveryErrorHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldDeliveryError, v))
}

// DeliveryErrorHasSuffix applies the HasSuffix predicate on the "delivery_error" field.
func DeliveryErrorHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldDeliveryError, v))
}

// DeliveryErrorIsNil applies the IsNil predicate on the "delivery_error" field.
func DeliveryErrorIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldDeliveryError))
}

// DeliveryErrorNotNil applies the NotNil predicate on the "delivery_error" field.
func DeliveryErrorNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldDeliveryError))
}

// DeliveryErrorEqualFold applies the EqualFold predicate on the "delivery_error" field.
func DeliveryErrorEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldDeliveryError, v))
}

// DeliveryErrorContainsFold applies the ContainsFold predicate on the "delivery_error" field.
func DeliveryErrorContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldDeliveryError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.NotPredicates(p))
}
