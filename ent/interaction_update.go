// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// InteractionUpdate is the builder for updating Interaction entities.
type InteractionUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionMutation
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdate) Where(ps ...predicate.Interaction) *InteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InteractionUpdate) SetUserID(v int64) *InteractionUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableUserID(v *int64) *InteractionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *InteractionUpdate) AddUserID(v int64) *InteractionUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *InteractionUpdate) SetChatID(v int64) *InteractionUpdate {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableChatID(v *int64) *InteractionUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *InteractionUpdate) AddChatID(v int64) *InteractionUpdate {
	_u.mutation.AddChatID(v)
	return _u
}

// SetInboundText sets the "inbound_text" field.
func (_u *InteractionUpdate) SetInboundText(v string) *InteractionUpdate {
	_u.mutation.SetInboundText(v)
	return _u
}

// SetNillableInboundText sets the "inbound_text" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableInboundText(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetInboundText(*v)
	}
	return _u
}

// SetLastMessageID sets the "last_message_id" field.
func (_u *InteractionUpdate) SetLastMessageID(v int64) *InteractionUpdate {
	_u.mutation.ResetLastMessageID()
	_u.mutation.SetLastMessageID(v)
	return _u
}

// SetNillableLastMessageID sets the "last_message_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableLastMessageID(v *int64) *InteractionUpdate {
	if v != nil {
		_u.SetLastMessageID(*v)
	}
	return _u
}

// AddLastMessageID adds value to the "last_message_id" field.
func (_u *InteractionUpdate) AddLastMessageID(v int64) *InteractionUpdate {
	_u.mutation.AddLastMessageID(v)
	return _u
}

// SetDraftText sets the "draft_text" field.
func (_u *InteractionUpdate) SetDraftText(v string) *InteractionUpdate {
	_u.mutation.SetDraftText(v)
	return _u
}

// SetNillableDraftText sets the "draft_text" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableDraftText(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetDraftText(*v)
	}
	return _u
}

// ClearDraftText clears the value of the "draft_text" field.
func (_u *InteractionUpdate) ClearDraftText() *InteractionUpdate {
	_u.mutation.ClearDraftText()
	return _u
}

// SetRefinedBubbles sets the "refined_bubbles" field.
func (_u *InteractionUpdate) SetRefinedBubbles(v []string) *InteractionUpdate {
	_u.mutation.SetRefinedBubbles(v)
	return _u
}

// AppendRefinedBubbles appends value to the "refined_bubbles" field.
func (_u *InteractionUpdate) AppendRefinedBubbles(v []string) *InteractionUpdate {
	_u.mutation.AppendRefinedBubbles(v)
	return _u
}

// ClearRefinedBubbles clears the value of the "refined_bubbles" field.
func (_u *InteractionUpdate) ClearRefinedBubbles() *InteractionUpdate {
	_u.mutation.ClearRefinedBubbles()
	return _u
}

// SetFinalBubbles sets the "final_bubbles" field.
func (_u *InteractionUpdate) SetFinalBubbles(v []string) *InteractionUpdate {
	_u.mutation.SetFinalBubbles(v)
	return _u
}

// AppendFinalBubbles appends value to the "final_bubbles" field.
func (_u *InteractionUpdate) AppendFinalBubbles(v []string) *InteractionUpdate {
	_u.mutation.AppendFinalBubbles(v)
	return _u
}

// ClearFinalBubbles clears the value of the "final_bubbles" field.
func (_u *InteractionUpdate) ClearFinalBubbles() *InteractionUpdate {
	_u.mutation.ClearFinalBubbles()
	return _u
}

// SetSafety sets the "safety" field.
func (_u *InteractionUpdate) SetSafety(v models.SafetyReport) *InteractionUpdate {
	_u.mutation.SetSafety(v)
	return _u
}

// SetNillableSafety sets the "safety" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableSafety(v *models.SafetyReport) *InteractionUpdate {
	if v != nil {
		_u.SetSafety(*v)
	}
	return _u
}

// ClearSafety clears the value of the "safety" field.
func (_u *InteractionUpdate) ClearSafety() *InteractionUpdate {
	_u.mutation.ClearSafety()
	return _u
}

// SetLlm1 sets the "llm1" field.
func (_u *InteractionUpdate) SetLlm1(v models.LLMCallRecord) *InteractionUpdate {
	_u.mutation.SetLlm1(v)
	return _u
}

// SetNillableLlm1 sets the "llm1" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableLlm1(v *models.LLMCallRecord) *InteractionUpdate {
	if v != nil {
		_u.SetLlm1(*v)
	}
	return _u
}

// ClearLlm1 clears the value of the "llm1" field.
func (_u *InteractionUpdate) ClearLlm1() *InteractionUpdate {
	_u.mutation.ClearLlm1()
	return _u
}

// SetLlm2 sets the "llm2" field.
func (_u *InteractionUpdate) SetLlm2(v models.LLMCallRecord) *InteractionUpdate {
	_u.mutation.SetLlm2(v)
	return _u
}

// SetNillableLlm2 sets the "llm2" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableLlm2(v *models.LLMCallRecord) *InteractionUpdate {
	if v != nil {
		_u.SetLlm2(*v)
	}
	return _u
}

// ClearLlm2 clears the value of the "llm2" field.
func (_u *InteractionUpdate) ClearLlm2() *InteractionUpdate {
	_u.mutation.ClearLlm2()
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *InteractionUpdate) SetPriorityScore(v float64) *InteractionUpdate {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillablePriorityScore(v *float64) *InteractionUpdate {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *InteractionUpdate) AddPriorityScore(v float64) *InteractionUpdate {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InteractionUpdate) SetStatus(v interaction.Status) *InteractionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableStatus(v *interaction.Status) *InteractionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *InteractionUpdate) SetReviewerID(v string) *InteractionUpdate {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableReviewerID(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *InteractionUpdate) ClearReviewerID() *InteractionUpdate {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetReviewStartedAt sets the "review_started_at" field.
func (_u *InteractionUpdate) SetReviewStartedAt(v time.Time) *InteractionUpdate {
	_u.mutation.SetReviewStartedAt(v)
	return _u
}

// SetNillableReviewStartedAt sets the "review_started_at" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableReviewStartedAt(v *time.Time) *InteractionUpdate {
	if v != nil {
		_u.SetReviewStartedAt(*v)
	}
	return _u
}

// ClearReviewStartedAt clears the value of the "review_started_at" field.
func (_u *InteractionUpdate) ClearReviewStartedAt() *InteractionUpdate {
	_u.mutation.ClearReviewStartedAt()
	return _u
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (_u *InteractionUpdate) SetReviewCompletedAt(v time.Time) *InteractionUpdate {
	_u.mutation.SetReviewCompletedAt(v)
	return _u
}

// SetNillableReviewCompletedAt sets the "review_completed_at" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableReviewCompletedAt(v *time.Time) *InteractionUpdate {
	if v != nil {
		_u.SetReviewCompletedAt(*v)
	}
	return _u
}

// ClearReviewCompletedAt clears the value of the "review_completed_at" field.
func (_u *InteractionUpdate) ClearReviewCompletedAt() *InteractionUpdate {
	_u.mutation.ClearReviewCompletedAt()
	return _u
}

// SetEditTags sets the "edit_tags" field.
func (_u *InteractionUpdate) SetEditTags(v []string) *InteractionUpdate {
	_u.mutation.SetEditTags(v)
	return _u
}

// AppendEditTags appends value to the "edit_tags" field.
func (_u *InteractionUpdate) AppendEditTags(v []string) *InteractionUpdate {
	_u.mutation.AppendEditTags(v)
	return _u
}

// ClearEditTags clears the value of the "edit_tags" field.
func (_u *InteractionUpdate) ClearEditTags() *InteractionUpdate {
	_u.mutation.ClearEditTags()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *InteractionUpdate) SetQualityScore(v int) *InteractionUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableQualityScore(v *int) *InteractionUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *InteractionUpdate) AddQualityScore(v int) *InteractionUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *InteractionUpdate) ClearQualityScore() *InteractionUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetCta sets the "cta" field.
func (_u *InteractionUpdate) SetCta(v models.CTAMetadata) *InteractionUpdate {
	_u.mutation.SetCta(v)
	return _u
}

// SetNillableCta sets the "cta" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableCta(v *models.CTAMetadata) *InteractionUpdate {
	if v != nil {
		_u.SetCta(*v)
	}
	return _u
}

// ClearCta clears the value of the "cta" field.
func (_u *InteractionUpdate) ClearCta() *InteractionUpdate {
	_u.mutation.ClearCta()
	return _u
}

// SetCustomerStatus sets the "customer_status" field.
func (_u *InteractionUpdate) SetCustomerStatus(v string) *InteractionUpdate {
	_u.mutation.SetCustomerStatus(v)
	return _u
}

// SetNillableCustomerStatus sets the "customer_status" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableCustomerStatus(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetCustomerStatus(*v)
	}
	return _u
}

// ClearCustomerStatus clears the value of the "customer_status" field.
func (_u *InteractionUpdate) ClearCustomerStatus() *InteractionUpdate {
	_u.mutation.ClearCustomerStatus()
	return _u
}

// SetReviewerNotes sets the "reviewer_notes" field.
func (_u *InteractionUpdate) SetReviewerNotes(v string) *InteractionUpdate {
	_u.mutation.SetReviewerNotes(v)
	return _u
}

// SetNillableReviewerNotes sets the "reviewer_notes" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableReviewerNotes(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetReviewerNotes(*v)
	}
	return _u
}

// ClearReviewerNotes clears the value of the "reviewer_notes" field.
func (_u *InteractionUpdate) ClearReviewerNotes() *InteractionUpdate {
	_u.mutation.ClearReviewerNotes()
	return _u
}

// SetProcessingError sets the "processing_error" field.
func (_u *InteractionUpdate) SetProcessingError(v string) *InteractionUpdate {
	_u.mutation.SetProcessingError(v)
	return _u
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableProcessingError(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetProcessingError(*v)
	}
	return _u
}

// ClearProcessingError clears the value of the "processing_error" field.
func (_u *InteractionUpdate) ClearProcessingError() *InteractionUpdate {
	_u.mutation.ClearProcessingError()
	return _u
}

// SetRecovered sets the "recovered" field.
func (_u *InteractionUpdate) SetRecovered(v bool) *InteractionUpdate {
	_u.mutation.SetRecovered(v)
	return _u
}

// SetNillableRecovered sets the "recovered" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableRecovered(v *bool) *InteractionUpdate {
	if v != nil {
		_u.SetRecovered(*v)
	}
	return _u
}

// SetRecoveryTier sets the "recovery_tier" field.
func (_u *InteractionUpdate) SetRecoveryTier(v string) *InteractionUpdate {
	_u.mutation.SetRecoveryTier(v)
	return _u
}

// SetNillableRecoveryTier sets the "recovery_tier" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableRecoveryTier(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetRecoveryTier(*v)
	}
	return _u
}

// ClearRecoveryTier clears the value of the "recovery_tier" field.
func (_u *InteractionUpdate) ClearRecoveryTier() *InteractionUpdate {
	_u.mutation.ClearRecoveryTier()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *InteractionUpdate) SetDeliveredAt(v time.Time) *InteractionUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableDeliveredAt(v *time.Time) *InteractionUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *InteractionUpdate) ClearDeliveredAt() *InteractionUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetDeliveryError sets the "delivery_error" field.
func (_u *InteractionUpdate) SetDeliveryError(v string) *InteractionUpdate {
	_u.mutation.SetDeliveryError(v)
	return _u
}

// SetNillableDeliveryError sets the "delivery_error" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableDeliveryError(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetDeliveryError(*v)
	}
	return _u
}

// ClearDeliveryError clears the value of the "delivery_error" field.
func (_u *InteractionUpdate) ClearDeliveryError() *InteractionUpdate {
	_u.mutation.ClearDeliveryError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InteractionUpdate) SetUpdatedAt(v time.Time) *InteractionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdate) Mutation() *InteractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InteractionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := interaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interaction.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(interaction.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(interaction.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(interaction.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InboundText(); ok {
		_spec.SetField(interaction.FieldInboundText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessageID(); ok {
		_spec.SetField(interaction.FieldLastMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastMessageID(); ok {
		_spec.AddField(interaction.FieldLastMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DraftText(); ok {
		_spec.SetField(interaction.FieldDraftText, field.TypeString, value)
	}
	if _u.mutation.DraftTextCleared() {
		_spec.ClearField(interaction.FieldDraftText, field.TypeString)
	}
	if value, ok := _u.mutation.RefinedBubbles(); ok {
		_spec.SetField(interaction.FieldRefinedBubbles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRefinedBubbles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interaction.FieldRefinedBubbles, value)
		})
	}
	if _u.mutation.RefinedBubblesCleared() {
		_spec.ClearField(interaction.FieldRefinedBubbles, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalBubbles(); ok {
		_spec.SetField(interaction.FieldFinalBubbles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFinalBubbles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interaction.FieldFinalBubbles, value)
		})
	}
	if _u.mutation.FinalBubblesCleared() {
		_spec.ClearField(interaction.FieldFinalBubbles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Safety(); ok {
		_spec.SetField(interaction.FieldSafety, field.TypeJSON, value)
	}
	if _u.mutation.SafetyCleared() {
		_spec.ClearField(interaction.FieldSafety, field.TypeJSON)
	}
	if value, ok := _u.mutation.Llm1(); ok {
		_spec.SetField(interaction.FieldLlm1, field.TypeJSON, value)
	}
	if _u.mutation.Llm1Cleared() {
		_spec.ClearField(interaction.FieldLlm1, field.TypeJSON)
	}
	if value, ok := _u.mutation.Llm2(); ok {
		_spec.SetField(interaction.FieldLlm2, field.TypeJSON, value)
	}
	if _u.mutation.Llm2Cleared() {
		_spec.ClearField(interaction.FieldLlm2, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(interaction.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(interaction.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(interaction.FieldReviewerID, field.TypeString, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(interaction.FieldReviewerID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStartedAt(); ok {
		_spec.SetField(interaction.FieldReviewStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewStartedAtCleared() {
		_spec.ClearField(interaction.FieldReviewStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCompletedAt(); ok {
		_spec.SetField(interaction.FieldReviewCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewCompletedAtCleared() {
		_spec.ClearField(interaction.FieldReviewCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditTags(); ok {
		_spec.SetField(interaction.FieldEditTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEditTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interaction.FieldEditTags, value)
		})
	}
	if _u.mutation.EditTagsCleared() {
		_spec.ClearField(interaction.FieldEditTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(interaction.FieldQualityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(interaction.FieldQualityScore, field.TypeInt, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(interaction.FieldQualityScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Cta(); ok {
		_spec.SetField(interaction.FieldCta, field.TypeJSON, value)
	}
	if _u.mutation.CtaCleared() {
		_spec.ClearField(interaction.FieldCta, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomerStatus(); ok {
		_spec.SetField(interaction.FieldCustomerStatus, field.TypeString, value)
	}
	if _u.mutation.CustomerStatusCleared() {
		_spec.ClearField(interaction.FieldCustomerStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewerNotes(); ok {
		_spec.SetField(interaction.FieldReviewerNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewerNotesCleared() {
		_spec.ClearField(interaction.FieldReviewerNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingError(); ok {
		_spec.SetField(interaction.FieldProcessingError, field.TypeString, value)
	}
	if _u.mutation.ProcessingErrorCleared() {
		_spec.ClearField(interaction.FieldProcessingError, field.TypeString)
	}
	if value, ok := _u.mutation.Recovered(); ok {
		_spec.SetField(interaction.FieldRecovered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecoveryTier(); ok {
		_spec.SetField(interaction.FieldRecoveryTier, field.TypeString, value)
	}
	if _u.mutation.RecoveryTierCleared() {
		_spec.ClearField(interaction.FieldRecoveryTier, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(interaction.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(interaction.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryError(); ok {
		_spec.SetField(interaction.FieldDeliveryError, field.TypeString, value)
	}
	if _u.mutation.DeliveryErrorCleared() {
		_spec.ClearField(interaction.FieldDeliveryError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionUpdateOne is the builder for updating a single Interaction entity.
type InteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionMutation
}

// SetUserID sets the "user_id" field.
func (_u *InteractionUpdateOne) SetUserID(v int64) *InteractionUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableUserID(v *int64) *InteractionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *InteractionUpdateOne) AddUserID(v int64) *InteractionUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *InteractionUpdateOne) SetChatID(v int64) *InteractionUpdateOne {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableChatID(v *int64) *InteractionUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *InteractionUpdateOne) AddChatID(v int64) *InteractionUpdateOne {
	_u.mutation.AddChatID(v)
	return _u
}

// SetInboundText sets the "inbound_text" field.
func (_u *InteractionUpdateOne) SetInboundText(v string) *InteractionUpdateOne {
	_u.mutation.SetInboundText(v)
	return _u
}

// SetNillableInboundText sets the "inbound_text" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableInboundText(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetInboundText(*v)
	}
	return _u
}

// SetLastMessageID sets the "last_message_id" field.
func (_u *InteractionUpdateOne) SetLastMessageID(v int64) *InteractionUpdateOne {
	_u.mutation.ResetLastMessageID()
	_u.mutation.SetLastMessageID(v)
	return _u
}

// SetNillableLastMessageID sets the "last_message_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableLastMessageID(v *int64) *InteractionUpdateOne {
	if v != nil {
		_u.SetLastMessageID(*v)
	}
	return _u
}

// AddLastMessageID adds value to the "last_message_id" field.
func (_u *InteractionUpdateOne) AddLastMessageID(v int64) *InteractionUpdateOne {
	_u.mutation.AddLastMessageID(v)
	return _u
}

// SetDraftText sets the "draft_text" field.
func (_u *InteractionUpdateOne) SetDraftText(v string) *InteractionUpdateOne {
	_u.mutation.SetDraftText(v)
	return _u
}

// SetNillableDraftText sets the "draft_text" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableDraftText(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetDraftText(*v)
	}
	return _u
}

// ClearDraftText clears the value of the "draft_text" field.
func (_u *InteractionUpdateOne) ClearDraftText() *InteractionUpdateOne {
	_u.mutation.ClearDraftText()
	return _u
}

// SetRefinedBubbles sets the "refined_bubbles" field.
func (_u *InteractionUpdateOne) SetRefinedBubbles(v []string) *InteractionUpdateOne {
	_u.mutation.SetRefinedBubbles(v)
	return _u
}

// AppendRefinedBubbles appends value to the "refined_bubbles" field.
func (_u *InteractionUpdateOne) AppendRefinedBubbles(v []string) *InteractionUpdateOne {
	_u.mutation.AppendRefinedBubbles(v)
	return _u
}

// ClearRefinedBubbles clears the value of the "refined_bubbles" field.
func (_u *InteractionUpdateOne) ClearRefinedBubbles() *InteractionUpdateOne {
	_u.mutation.ClearRefinedBubbles()
	return _u
}

// SetFinalBubbles sets the "final_bubbles" field.
func (_u *InteractionUpdateOne) SetFinalBubbles(v []string) *InteractionUpdateOne {
	_u.mutation.SetFinalBubbles(v)
	return _u
}

// AppendFinalBubbles appends value to the "final_bubbles" field.
func (_u *InteractionUpdateOne) AppendFinalBubbles(v []string) *InteractionUpdateOne {
	_u.mutation.AppendFinalBubbles(v)
	return _u
}

// ClearFinalBubbles clears the value of the "final_bubbles" field.
func (_u *InteractionUpdateOne) ClearFinalBubbles() *InteractionUpdateOne {
	_u.mutation.ClearFinalBubbles()
	return _u
}

// SetSafety sets the "safety" field.
func (_u *InteractionUpdateOne) SetSafety(v models.SafetyReport) *InteractionUpdateOne {
	_u.mutation.SetSafety(v)
	return _u
}

// SetNillableSafety sets the "safety" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableSafety(v *models.SafetyReport) *InteractionUpdateOne {
	if v != nil {
		_u.SetSafety(*v)
	}
	return _u
}

// ClearSafety clears the value of the "safety" field.
func (_u *InteractionUpdateOne) ClearSafety() *InteractionUpdateOne {
	_u.mutation.ClearSafety()
	return _u
}

// SetLlm1 sets the "llm1" field.
func (_u *InteractionUpdateOne) SetLlm1(v models.LLMCallRecord) *InteractionUpdateOne {
	_u.mutation.SetLlm1(v)
	return _u
}

// SetNillableLlm1 sets the "llm1" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableLlm1(v *models.LLMCallRecord) *InteractionUpdateOne {
	if v != nil {
		_u.SetLlm1(*v)
	}
	return _u
}

// ClearLlm1 clears the value of the "llm1" field.
func (_u *InteractionUpdateOne) ClearLlm1() *InteractionUpdateOne {
	_u.mutation.ClearLlm1()
	return _u
}

// SetLlm2 sets the "llm2" field.
func (_u *InteractionUpdateOne) SetLlm2(v models.LLMCallRecord) *InteractionUpdateOne {
	_u.mutation.SetLlm2(v)
	return _u
}

// SetNillableLlm2 sets the "llm2" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableLlm2(v *models.LLMCallRecord) *InteractionUpdateOne {
	if v != nil {
		_u.SetLlm2(*v)
	}
	return _u
}

// ClearLlm2 clears the value of the "llm2" field.
func (_u *InteractionUpdateOne) ClearLlm2() *InteractionUpdateOne {
	_u.mutation.ClearLlm2()
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *InteractionUpdateOne) SetPriorityScore(v float64) *InteractionUpdateOne {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillablePriorityScore(v *float64) *InteractionUpdateOne {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *InteractionUpdateOne) AddPriorityScore(v float64) *InteractionUpdateOne {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InteractionUpdateOne) SetStatus(v interaction.Status) *InteractionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableStatus(v *interaction.Status) *InteractionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *InteractionUpdateOne) SetReviewerID(v string) *InteractionUpdateOne {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableReviewerID(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *InteractionUpdateOne) ClearReviewerID() *InteractionUpdateOne {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetReviewStartedAt sets the "review_started_at" field.
func (_u *InteractionUpdateOne) SetReviewStartedAt(v time.Time) *InteractionUpdateOne {
	_u.mutation.SetReviewStartedAt(v)
	return _u
}

// SetNillableReviewStartedAt sets the "review_started_at" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableReviewStartedAt(v *time.Time) *InteractionUpdateOne {
	if v != nil {
		_u.SetReviewStartedAt(*v)
	}
	return _u
}

// ClearReviewStartedAt clears the value of the "review_started_at" field.
func (_u *InteractionUpdateOne) ClearReviewStartedAt() *InteractionUpdateOne {
	_u.mutation.ClearReviewStartedAt()
	return _u
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (_u *InteractionUpdateOne) SetReviewCompletedAt(v time.Time) *InteractionUpdateOne {
	_u.mutation.SetReviewCompletedAt(v)
	return _u
}

// SetNillableReviewCompletedAt sets the "review_completed_at" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableReviewCompletedAt(v *time.Time) *InteractionUpdateOne {
	if v != nil {
		_u.SetReviewCompletedAt(*v)
	}
	return _u
}

// ClearReviewCompletedAt clears the value of the "review_completed_at" field.
func (_u *InteractionUpdateOne) ClearReviewCompletedAt() *InteractionUpdateOne {
	_u.mutation.ClearReviewCompletedAt()
	return _u
}

// SetEditTags sets the "edit_tags" field.
func (_u *InteractionUpdateOne) SetEditTags(v []string) *InteractionUpdateOne {
	_u.mutation.SetEditTags(v)
	return _u
}

// AppendEditTags appends value to the "edit_tags" field.
func (_u *InteractionUpdateOne) AppendEditTags(v []string) *InteractionUpdateOne {
	_u.mutation.AppendEditTags(v)
	return _u
}

// ClearEditTags clears the value of the "edit_tags" field.
func (_u *InteractionUpdateOne) ClearEditTags() *InteractionUpdateOne {
	_u.mutation.ClearEditTags()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *InteractionUpdateOne) SetQualityScore(v int) *InteractionUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableQualityScore(v *int) *InteractionUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *InteractionUpdateOne) AddQualityScore(v int) *InteractionUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *InteractionUpdateOne) ClearQualityScore() *InteractionUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetCta sets the "cta" field.
func (_u *InteractionUpdateOne) SetCta(v models.CTAMetadata) *InteractionUpdateOne {
	_u.mutation.SetCta(v)
	return _u
}

// SetNillableCta sets the "cta" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableCta(v *models.CTAMetadata) *InteractionUpdateOne {
	if v != nil {
		_u.SetCta(*v)
	}
	return _u
}

// ClearCta clears the value of the "cta" field.
func (_u *InteractionUpdateOne) ClearCta() *InteractionUpdateOne {
	_u.mutation.ClearCta()
	return _u
}

// SetCustomerStatus sets the "customer_status" field.
func (_u *InteractionUpdateOne) SetCustomerStatus(v string) *InteractionUpdateOne {
	_u.mutation.SetCustomerStatus(v)
	return _u
}

// SetNillableCustomerStatus sets the "customer_status" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableCustomerStatus(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetCustomerStatus(*v)
	}
	return _u
}

// ClearCustomerStatus clears the value of the "customer_status" field.
func (_u *InteractionUpdateOne) ClearCustomerStatus() *InteractionUpdateOne {
	_u.mutation.ClearCustomerStatus()
	return _u
}

// SetReviewerNotes sets the "reviewer_notes" field.
func (_u *InteractionUpdateOne) SetReviewerNotes(v string) *InteractionUpdateOne {
	_u.mutation.SetReviewerNotes(v)
	return _u
}

// SetNillableReviewerNotes sets the "reviewer_notes" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableReviewerNotes(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetReviewerNotes(*v)
	}
	return _u
}

// ClearReviewerNotes clears the value of the "reviewer_notes" field.
func (_u *InteractionUpdateOne) ClearReviewerNotes() *InteractionUpdateOne {
	_u.mutation.ClearReviewerNotes()
	return _u
}

// SetProcessingError sets the "processing_error" field.
func (_u *InteractionUpdateOne) SetProcessingError(v string) *InteractionUpdateOne {
	_u.mutation.SetProcessingError(v)
	return _u
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableProcessingError(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetProcessingError(*v)
	}
	return _u
}

// ClearProcessingError clears the value of the "processing_error" field.
func (_u *InteractionUpdateOne) ClearProcessingError() *InteractionUpdateOne {
	_u.mutation.ClearProcessingError()
	return _u
}

// SetRecovered sets the "recovered" field.
func (_u *InteractionUpdateOne) SetRecovered(v bool) *InteractionUpdateOne {
	_u.mutation.SetRecovered(v)
	return _u
}

// SetNillableRecovered sets the "recovered" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableRecovered(v *bool) *InteractionUpdateOne {
	if v != nil {
		_u.SetRecovered(*v)
	}
	return _u
}

// SetRecoveryTier sets the "recovery_tier" field.
func (_u *InteractionUpdateOne) SetRecoveryTier(v string) *InteractionUpdateOne {
	_u.mutation.SetRecoveryTier(v)
	return _u
}

// SetNillableRecoveryTier sets the "recovery_tier" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableRecoveryTier(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetRecoveryTier(*v)
	}
	return _u
}

// ClearRecoveryTier clears the value of the "recovery_tier" field.
func (_u *InteractionUpdateOne) ClearRecoveryTier() *InteractionUpdateOne {
	_u.mutation.ClearRecoveryTier()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *InteractionUpdateOne) SetDeliveredAt(v time.Time) *InteractionUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableDeliveredAt(v *time.Time) *InteractionUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *InteractionUpdateOne) ClearDeliveredAt() *InteractionUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetDeliveryError sets the "delivery_error" field.
func (_u *InteractionUpdateOne) SetDeliveryError(v string) *InteractionUpdateOne {
	_u.mutation.SetDeliveryError(v)
	return _u
}

// SetNillableDeliveryError sets the "delivery_error" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableDeliveryError(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetDeliveryError(*v)
	}
	return _u
}

// ClearDeliveryError clears the value of the "delivery_error" field.
func (_u *InteractionUpdateOne) ClearDeliveryError() *InteractionUpdateOne {
	_u.mutation.ClearDeliveryError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InteractionUpdateOne) SetUpdatedAt(v time.Time) *InteractionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdateOne) Mutation() *InteractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdateOne) Where(ps ...predicate.Interaction) *InteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionUpdateOne) Select(field string, fields ...string) *InteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Interaction entity.
func (_u *InteractionUpdateOne) Save(ctx context.Context) (*Interaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdateOne) SaveX(ctx context.Context) *Interaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InteractionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := interaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdateOne) sqlSave(ctx context.Context) (_node *Interaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Interaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interaction.FieldID)
		for _, f := range fields {
			if !interaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interaction.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(interaction.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(interaction.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(interaction.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InboundText(); ok {
		_spec.SetField(interaction.FieldInboundText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessageID(); ok {
		_spec.SetField(interaction.FieldLastMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastMessageID(); ok {
		_spec.AddField(interaction.FieldLastMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DraftText(); ok {
		_spec.SetField(interaction.FieldDraftText, field.TypeString, value)
	}
	if _u.mutation.DraftTextCleared() {
		_spec.ClearField(interaction.FieldDraftText, field.TypeString)
	}
	if value, ok := _u.mutation.RefinedBubbles(); ok {
		_spec.SetField(interaction.FieldRefinedBubbles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRefinedBubbles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interaction.FieldRefinedBubbles, value)
		})
	}
	if _u.mutation.RefinedBubblesCleared() {
		_spec.ClearField(interaction.FieldRefinedBubbles, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalBubbles(); ok {
		_spec.SetField(interaction.FieldFinalBubbles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFinalBubbles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interaction.FieldFinalBubbles, value)
		})
	}
	if _u.mutation.FinalBubblesCleared() {
		_spec.ClearField(interaction.FieldFinalBubbles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Safety(); ok {
		_spec.SetField(interaction.FieldSafety, field.TypeJSON, value)
	}
	if _u.mutation.SafetyCleared() {
		_spec.ClearField(interaction.FieldSafety, field.TypeJSON)
	}
	if value, ok := _u.mutation.Llm1(); ok {
		_spec.SetField(interaction.FieldLlm1, field.TypeJSON, value)
	}
	if _u.mutation.Llm1Cleared() {
		_spec.ClearField(interaction.FieldLlm1, field.TypeJSON)
	}
	if value, ok := _u.mutation.Llm2(); ok {
		_spec.SetField(interaction.FieldLlm2, field.TypeJSON, value)
	}
	if _u.mutation.Llm2Cleared() {
		_spec.ClearField(interaction.FieldLlm2, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(interaction.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(interaction.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(interaction.FieldReviewerID, field.TypeString, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(interaction.FieldReviewerID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStartedAt(); ok {
		_spec.SetField(interaction.FieldReviewStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewStartedAtCleared() {
		_spec.ClearField(interaction.FieldReviewStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCompletedAt(); ok {
		_spec.SetField(interaction.FieldReviewCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewCompletedAtCleared() {
		_spec.ClearField(interaction.FieldReviewCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditTags(); ok {
		_spec.SetField(interaction.FieldEditTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEditTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interaction.FieldEditTags, value)
		})
	}
	if _u.mutation.EditTagsCleared() {
		_spec.ClearField(interaction.FieldEditTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(interaction.FieldQualityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(interaction.FieldQualityScore, field.TypeInt, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(interaction.FieldQualityScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Cta(); ok {
		_spec.SetField(interaction.FieldCta, field.TypeJSON, value)
	}
	if _u.mutation.CtaCleared() {
		_spec.ClearField(interaction.FieldCta, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomerStatus(); ok {
		_spec.SetField(interaction.FieldCustomerStatus, field.TypeString, value)
	}
	if _u.mutation.CustomerStatusCleared() {
		_spec.ClearField(interaction.FieldCustomerStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewerNotes(); ok {
		_spec.SetField(interaction.FieldReviewerNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewerNotesCleared() {
		_spec.ClearField(interaction.FieldReviewerNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingError(); ok {
		_spec.SetField(interaction.FieldProcessingError, field.TypeString, value)
	}
	if _u.mutation.ProcessingErrorCleared() {
		_spec.ClearField(interaction.FieldProcessingError, field.TypeString)
	}
	if value, ok := _u.mutation.Recovered(); ok {
		_spec.SetField(interaction.FieldRecovered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecoveryTier(); ok {
		_spec.SetField(interaction.FieldRecoveryTier, field.TypeString, value)
	}
	if _u.mutation.RecoveryTierCleared() {
		_spec.ClearField(interaction.FieldRecoveryTier, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(interaction.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(interaction.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryError(); ok {
		_spec.SetField(interaction.FieldDeliveryError, field.TypeString, value)
	}
	if _u.mutation.DeliveryErrorCleared() {
		_spec.ClearField(interaction.FieldDeliveryError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Interaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
