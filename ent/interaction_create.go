// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// InteractionCreate is the builder for creating a Interaction entity.
type InteractionCreate struct {
	config
	mutation *InteractionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InteractionCreate) SetUserID(v int64) *InteractionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *InteractionCreate) SetChatID(v int64) *InteractionCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetInboundText sets the "inbound_text" field.
func (_c *InteractionCreate) SetInboundText(v string) *InteractionCreate {
	_c.mutation.SetInboundText(v)
	return _c
}

// SetLastMessageID sets the "last_message_id" field.
func (_c *InteractionCreate) SetLastMessageID(v int64) *InteractionCreate {
	_c.mutation.SetLastMessageID(v)
	return _c
}

// SetNillableLastMessageID sets the "last_message_id" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableLastMessageID(v *int64) *InteractionCreate {
	if v != nil {
		_c.SetLastMessageID(*v)
	}
	return _c
}

// SetDraftText sets the "draft_text" field.
func (_c *InteractionCreate) SetDraftText(v string) *InteractionCreate {
	_c.mutation.SetDraftText(v)
	return _c
}

// SetNillableDraftText sets the "draft_text" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableDraftText(v *string) *InteractionCreate {
	if v != nil {
		_c.SetDraftText(*v)
	}
	return _c
}

// SetRefinedBubbles sets the "refined_bubbles" field.
func (_c *InteractionCreate) SetRefinedBubbles(v []string) *InteractionCreate {
	_c.mutation.SetRefinedBubbles(v)
	return _c
}

// SetFinalBubbles sets the "final_bubbles" field.
func (_c *InteractionCreate) SetFinalBubbles(v []string) *InteractionCreate {
	_c.mutation.SetFinalBubbles(v)
	return _c
}

// SetSafety sets the "safety" field.
func (_c *InteractionCreate) SetSafety(v models.SafetyReport) *InteractionCreate {
	_c.mutation.SetSafety(v)
	return _c
}

// SetNillableSafety sets the "safety" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableSafety(v *models.SafetyReport) *InteractionCreate {
	if v != nil {
		_c.SetSafety(*v)
	}
	return _c
}

// SetLlm1 sets the "llm1" field.
func (_c *InteractionCreate) SetLlm1(v models.LLMCallRecord) *InteractionCreate {
	_c.mutation.SetLlm1(v)
	return _c
}

// SetNillableLlm1 sets the "llm1" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableLlm1(v *models.LLMCallRecord) *InteractionCreate {
	if v != nil {
		_c.SetLlm1(*v)
	}
	return _c
}

// SetLlm2 sets the "llm2" field.
func (_c *InteractionCreate) SetLlm2(v models.LLMCallRecord) *InteractionCreate {
	_c.mutation.SetLlm2(v)
	return _c
}

// SetNillableLlm2 sets the "llm2" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableLlm2(v *models.LLMCallRecord) *InteractionCreate {
	if v != nil {
		_c.SetLlm2(*v)
	}
	return _c
}

// SetPriorityScore sets the "priority_score" field.
func (_c *InteractionCreate) SetPriorityScore(v float64) *InteractionCreate {
	_c.mutation.SetPriorityScore(v)
	return _c
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_c *InteractionCreate) SetNillablePriorityScore(v *float64) *InteractionCreate {
	if v != nil {
		_c.SetPriorityScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InteractionCreate) SetStatus(v interaction.Status) *InteractionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableStatus(v *interaction.Status) *InteractionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReviewerID sets the "reviewer_id" field.
func (_c *InteractionCreate) SetReviewerID(v string) *InteractionCreate {
	_c.mutation.SetReviewerID(v)
	return _c
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableReviewerID(v *string) *InteractionCreate {
	if v != nil {
		_c.SetReviewerID(*v)
	}
	return _c
}

// SetReviewStartedAt sets the "review_started_at" field.
func (_c *InteractionCreate) SetReviewStartedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetReviewStartedAt(v)
	return _c
}

// SetNillableReviewStartedAt sets the "review_started_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableReviewStartedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetReviewStartedAt(*v)
	}
	return _c
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (_c *InteractionCreate) SetReviewCompletedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetReviewCompletedAt(v)
	return _c
}

// SetNillableReviewCompletedAt sets the "review_completed_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableReviewCompletedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetReviewCompletedAt(*v)
	}
	return _c
}

// SetEditTags sets the "edit_tags" field.
func (_c *InteractionCreate) SetEditTags(v []string) *InteractionCreate {
	_c.mutation.SetEditTags(v)
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *InteractionCreate) SetQualityScore(v int) *InteractionCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableQualityScore(v *int) *InteractionCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetCta sets the "cta" field.
func (_c *InteractionCreate) SetCta(v models.CTAMetadata) *InteractionCreate {
	_c.mutation.SetCta(v)
	return _c
}

// SetNillableCta sets the "cta" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableCta(v *models.CTAMetadata) *InteractionCreate {
	if v != nil {
		_c.SetCta(*v)
	}
	return _c
}

// SetCustomerStatus sets the "customer_status" field.
func (_c *InteractionCreate) SetCustomerStatus(v string) *InteractionCreate {
	_c.mutation.SetCustomerStatus(v)
	return _c
}

// SetNillableCustomerStatus sets the "customer_status" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableCustomerStatus(v *string) *InteractionCreate {
	if v != nil {
		_c.SetCustomerStatus(*v)
	}
	return _c
}

// SetReviewerNotes sets the "reviewer_notes" field.
func (_c *InteractionCreate) SetReviewerNotes(v string) *InteractionCreate {
	_c.mutation.SetReviewerNotes(v)
	return _c
}

// SetNillableReviewerNotes sets the "reviewer_notes" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableReviewerNotes(v *string) *InteractionCreate {
	if v != nil {
		_c.SetReviewerNotes(*v)
	}
	return _c
}

// SetProcessingError sets the "processing_error" field.
func (_c *InteractionCreate) SetProcessingError(v string) *InteractionCreate {
	_c.mutation.SetProcessingError(v)
	return _c
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableProcessingError(v *string) *InteractionCreate {
	if v != nil {
		_c.SetProcessingError(*v)
	}
	return _c
}

// SetRecovered sets the "recovered" field.
func (_c *InteractionCreate) SetRecovered(v bool) *InteractionCreate {
	_c.mutation.SetRecovered(v)
	return _c
}

// SetNillableRecovered sets the "recovered" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableRecovered(v *bool) *InteractionCreate {
	if v != nil {
		_c.SetRecovered(*v)
	}
	return _c
}

// SetRecoveryTier sets the "recovery_tier" field.
func (_c *InteractionCreate) SetRecoveryTier(v string) *InteractionCreate {
	_c.mutation.SetRecoveryTier(v)
	return _c
}

// SetNillableRecoveryTier sets the "recovery_tier" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableRecoveryTier(v *string) *InteractionCreate {
	if v != nil {
		_c.SetRecoveryTier(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *InteractionCreate) SetDeliveredAt(v time.Time) *InteractionCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableDeliveredAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetDeliveryError sets the "delivery_error" field.
func (_c *InteractionCreate) SetDeliveryError(v string) *InteractionCreate {
	_c.mutation.SetDeliveryError(v)
	return _c
}

// SetNillableDeliveryError sets the "delivery_error" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableDeliveryError(v *string) *InteractionCreate {
	if v != nil {
		_c.SetDeliveryError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InteractionCreate) SetCreatedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableCreatedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InteractionCreate) SetUpdatedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableUpdatedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InteractionCreate) SetID(v string) *InteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InteractionMutation object of the builder.
func (_c *InteractionCreate) Mutation() *InteractionMutation {
	return _c.mutation
}

// Save creates the Interaction in the database.
func (_c *InteractionCreate) Save(ctx context.Context) (*Interaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionCreate) SaveX(ctx context.Context) *Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionCreate) defaults() {
	if _, ok := _c.mutation.LastMessageID(); !ok {
		v := interaction.DefaultLastMessageID
		_c.mutation.SetLastMessageID(v)
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		v := interaction.DefaultPriorityScore
		_c.mutation.SetPriorityScore(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := interaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Recovered(); !ok {
		v := interaction.DefaultRecovered
		_c.mutation.SetRecovered(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Interaction.user_id"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "Interaction.chat_id"`)}
	}
	if _, ok := _c.mutation.InboundText(); !ok {
		return &ValidationError{Name: "inbound_text", err: errors.New(`ent: missing required field "Interaction.inbound_text"`)}
	}
	if _, ok := _c.mutation.LastMessageID(); !ok {
		return &ValidationError{Name: "last_message_id", err: errors.New(`ent: missing required field "Interaction.last_message_id"`)}
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		return &ValidationError{Name: "priority_score", err: errors.New(`ent: missing required field "Interaction.priority_score"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Interaction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := interaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interaction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recovered(); !ok {
		return &ValidationError{Name: "recovered", err: errors.New(`ent: missing required field "Interaction.recovered"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Interaction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Interaction.updated_at"`)}
	}
	return nil
}

func (_c *InteractionCreate) sqlSave(ctx context.Context) (*Interaction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Interaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionCreate) createSpec() (*Interaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Interaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interaction.Table, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interaction.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(interaction.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.InboundText(); ok {
		_spec.SetField(interaction.FieldInboundText, field.TypeString, value)
		_node.InboundText = value
	}
	if value, ok := _c.mutation.LastMessageID(); ok {
		_spec.SetField(interaction.FieldLastMessageID, field.TypeInt64, value)
		_node.LastMessageID = value
	}
	if value, ok := _c.mutation.DraftText(); ok {
		_spec.SetField(interaction.FieldDraftText, field.TypeString, value)
		_node.DraftText = value
	}
	if value, ok := _c.mutation.RefinedBubbles(); ok {
		_spec.SetField(interaction.FieldRefinedBubbles, field.TypeJSON, value)
		_node.RefinedBubbles = value
	}
	if value, ok := _c.mutation.FinalBubbles(); ok {
		_spec.SetField(interaction.FieldFinalBubbles, field.TypeJSON, value)
		_node.FinalBubbles = value
	}
	if value, ok := _c.mutation.Safety(); ok {
		_spec.SetField(interaction.FieldSafety, field.TypeJSON, value)
		_node.Safety = value
	}
	if value, ok := _c.mutation.Llm1(); ok {
		_spec.SetField(interaction.FieldLlm1, field.TypeJSON, value)
		_node.Llm1 = value
	}
	if value, ok := _c.mutation.Llm2(); ok {
		_spec.SetField(interaction.FieldLlm2, field.TypeJSON, value)
		_node.Llm2 = value
	}
	if value, ok := _c.mutation.PriorityScore(); ok {
		_spec.SetField(interaction.FieldPriorityScore, field.TypeFloat64, value)
		_node.PriorityScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(interaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReviewerID(); ok {
		_spec.SetField(interaction.FieldReviewerID, field.TypeString, value)
		_node.ReviewerID = &value
	}
	if value, ok := _c.mutation.ReviewStartedAt(); ok {
		_spec.SetField(interaction.FieldReviewStartedAt, field.TypeTime, value)
		_node.ReviewStartedAt = &value
	}
	if value, ok := _c.mutation.ReviewCompletedAt(); ok {
		_spec.SetField(interaction.FieldReviewCompletedAt, field.TypeTime, value)
		_node.ReviewCompletedAt = &value
	}
	if value, ok := _c.mutation.EditTags(); ok {
		_spec.SetField(interaction.FieldEditTags, field.TypeJSON, value)
		_node.EditTags = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(interaction.FieldQualityScore, field.TypeInt, value)
		_node.QualityScore = &value
	}
	if value, ok := _c.mutation.Cta(); ok {
		_spec.SetField(interaction.FieldCta, field.TypeJSON, value)
		_node.Cta = value
	}
	if value, ok := _c.mutation.CustomerStatus(); ok {
		_spec.SetField(interaction.FieldCustomerStatus, field.TypeString, value)
		_node.CustomerStatus = &value
	}
	if value, ok := _c.mutation.ReviewerNotes(); ok {
		_spec.SetField(interaction.FieldReviewerNotes, field.TypeString, value)
		_node.ReviewerNotes = &value
	}
	if value, ok := _c.mutation.ProcessingError(); ok {
		_spec.SetField(interaction.FieldProcessingError, field.TypeString, value)
		_node.ProcessingError = &value
	}
	if value, ok := _c.mutation.Recovered(); ok {
		_spec.SetField(interaction.FieldRecovered, field.TypeBool, value)
		_node.Recovered = value
	}
	if value, ok := _c.mutation.RecoveryTier(); ok {
		_spec.SetField(interaction.FieldRecoveryTier, field.TypeString, value)
		_node.RecoveryTier = &value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(interaction.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	if value, ok := _c.mutation.DeliveryError(); ok {
		_spec.SetField(interaction.FieldDeliveryError, field.TypeString, value)
		_node.DeliveryError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// InteractionCreateBulk is the builder for creating many Interaction entities in bulk.
type InteractionCreateBulk struct {
	config
	err      error
	builders []*InteractionCreate
}

// Save creates the Interaction entities in the database.
func (_c *InteractionCreateBulk) Save(ctx context.Context) ([]*Interaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InteractionCreateBulk) SaveX(ctx context.Context) []*Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
