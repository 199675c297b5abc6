// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/ent/messagecursor"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
	"github.com/halfmoonlabs/chatloop/ent/protocolauditlog"
	"github.com/halfmoonlabs/chatloop/ent/protocolstatus"
	"github.com/halfmoonlabs/chatloop/ent/quarantinemessage"
	"github.com/halfmoonlabs/chatloop/ent/recoveryoperation"
	"github.com/halfmoonlabs/chatloop/ent/statustransition"
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
	"github.com/halfmoonlabs/chatloop/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInteraction       = "Interaction"
	TypeMessageCursor     = "MessageCursor"
	TypeProtocolAuditLog  = "ProtocolAuditLog"
	TypeProtocolStatus    = "ProtocolStatus"
	TypeQuarantineMessage = "QuarantineMessage"
	TypeRecoveryOperation = "RecoveryOperation"
	TypeStatusTransition  = "StatusTransition"
	TypeUserCurrentStatus = "UserCurrentStatus"
)

// InteractionMutation represents an operation that mutates the Interaction nodes in the graph.
type InteractionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *int64
	adduser_id            *int64
	chat_id               *int64
	addchat_id            *int64
	inbound_text          *string
	last_message_id       *int64
	addlast_message_id    *int64
	draft_text            *string
	refined_bubbles       *[]string
	appendrefined_bubbles []string
	final_bubbles         *[]string
	appendfinal_bubbles   []string
	safety                *models.SafetyReport
	llm1                  *models.LLMCallRecord
	llm2                  *models.LLMCallRecord
	priority_score        *float64
	addpriority_score     *float64
	status                *interaction.Status
	reviewer_id           *string
	review_started_at     *time.Time
	review_completed_at   *time.Time
	edit_tags             *[]string
	appendedit_tags       []string
	quality_score         *int
	addquality_score      *int
	cta                   *models.CTAMetadata
	customer_status       *string
	reviewer_notes        *string
	processing_error      *string
	recovered             *bool
	recovery_tier         *string
	delivered_at          *time.Time
	delivery_error        *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Interaction, error)
	predicates            []predicate.Interaction
}

var _ ent.Mutation = (*InteractionMutation)(nil)

// interactionOption allows management of the mutation configuration using functional options.
type interactionOption func(*InteractionMutation)

// newInteractionMutation creates new mutation for the Interaction entity.
func newInteractionMutation(c config, op Op, opts ...interactionOption) *InteractionMutation {
	m := &InteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionID sets the ID field of the mutation.
func withInteractionID(id string) interactionOption {
	return func(m *InteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Interaction
		)
		m.oldValue = func(ctx context.Context) (*Interaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Interaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteraction sets the old Interaction of the mutation.
func withInteraction(node *Interaction) interactionOption {
	return func(m *InteractionMutation) {
		m.oldValue = func(context.Context) (*Interaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Interaction entities.
func (m *InteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Interaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InteractionMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InteractionMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *InteractionMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *InteractionMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InteractionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetChatID sets the "chat_id" field.
func (m *InteractionMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *InteractionMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *InteractionMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *InteractionMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *InteractionMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetInboundText sets the "inbound_text" field.
func (m *InteractionMutation) SetInboundText(s string) {
	m.inbound_text = &s
}

// InboundText returns the value of the "inbound_text" field in the mutation.
func (m *InteractionMutation) InboundText() (r string, exists bool) {
	v := m.inbound_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInboundText returns the old "inbound_text" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldInboundText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboundText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboundText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboundText: %w", err)
	}
	return oldValue.InboundText, nil
}

// ResetInboundText resets all changes to the "inbound_text" field.
func (m *InteractionMutation) ResetInboundText() {
	m.inbound_text = nil
}

// SetLastMessageID sets the "last_message_id" field.
func (m *InteractionMutation) SetLastMessageID(i int64) {
	m.last_message_id = &i
	m.addlast_message_id = nil
}

// LastMessageID returns the value of the "last_message_id" field in the mutation.
func (m *InteractionMutation) LastMessageID() (r int64, exists bool) {
	v := m.last_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageID returns the old "last_message_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldLastMessageID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageID: %w", err)
	}
	return oldValue.LastMessageID, nil
}

// AddLastMessageID adds i to the "last_message_id" field.
func (m *InteractionMutation) AddLastMessageID(i int64) {
	if m.addlast_message_id != nil {
		*m.addlast_message_id += i
	} else {
		m.addlast_message_id = &i
	}
}

// AddedLastMessageID returns the value that was added to the "last_message_id" field in this mutation.
func (m *InteractionMutation) AddedLastMessageID() (r int64, exists bool) {
	v := m.addlast_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastMessageID resets all changes to the "last_message_id" field.
func (m *InteractionMutation) ResetLastMessageID() {
	m.last_message_id = nil
	m.addlast_message_id = nil
}

// SetDraftText sets the "draft_text" field.
func (m *InteractionMutation) SetDraftText(s string) {
	m.draft_text = &s
}

// DraftText returns the value of the "draft_text" field in the mutation.
func (m *InteractionMutation) DraftText() (r string, exists bool) {
	v := m.draft_text
	if v == nil {
		return
	}
	return *v, true
}

// OldDraftText returns the old "draft_text" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldDraftText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraftText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraftText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraftText: %w", err)
	}
	return oldValue.DraftText, nil
}

// ClearDraftText clears the value of the "draft_text" field.
func (m *InteractionMutation) ClearDraftText() {
	m.draft_text = nil
	m.clearedFields[interaction.FieldDraftText] = struct{}{}
}

// DraftTextCleared returns if the "draft_text" field was cleared in this mutation.
func (m *InteractionMutation) DraftTextCleared() bool {
	_, ok := m.clearedFields[interaction.FieldDraftText]
	return ok
}

// ResetDraftText resets all changes to the "draft_text" field.
func (m *InteractionMutation) ResetDraftText() {
	m.draft_text = nil
	delete(m.clearedFields, interaction.FieldDraftText)
}

// SetRefinedBubbles sets the "refined_bubbles" field.
func (m *InteractionMutation) SetRefinedBubbles(s []string) {
	m.refined_bubbles = &s
	m.appendrefined_bubbles = nil
}

// RefinedBubbles returns the value of the "refined_bubbles" field in the mutation.
func (m *InteractionMutation) RefinedBubbles() (r []string, exists bool) {
	v := m.refined_bubbles
	if v == nil {
		return
	}
	return *v, true
}

// OldRefinedBubbles returns the old "refined_bubbles" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldRefinedBubbles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefinedBubbles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefinedBubbles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefinedBubbles: %w", err)
	}
	return oldValue.RefinedBubbles, nil
}

// AppendRefinedBubbles adds s to the "refined_bubbles" field.
func (m *InteractionMutation) AppendRefinedBubbles(s []string) {
	m.appendrefined_bubbles = append(m.appendrefined_bubbles, s...)
}

// AppendedRefinedBubbles returns the list of values that were appended to the "refined_bubbles" field in this mutation.
func (m *InteractionMutation) AppendedRefinedBubbles() ([]string, bool) {
	if len(m.appendrefined_bubbles) == 0 {
		return nil, false
	}
	return m.appendrefined_bubbles, true
}

// ClearRefinedBubbles clears the value of the "refined_bubbles" field.
func (m *InteractionMutation) ClearRefinedBubbles() {
	m.refined_bubbles = nil
	m.appendrefined_bubbles = nil
	m.clearedFields[interaction.FieldRefinedBubbles] = struct{}{}
}

// RefinedBubblesCleared returns if the "refined_bubbles" field was cleared in this mutation.
func (m *InteractionMutation) RefinedBubblesCleared() bool {
	_, ok := m.clearedFields[interaction.FieldRefinedBubbles]
	return ok
}

// ResetRefinedBubbles resets all changes to the "refined_bubbles" field.
func (m *InteractionMutation) ResetRefinedBubbles() {
	m.refined_bubbles = nil
	m.appendrefined_bubbles = nil
	delete(m.clearedFields, interaction.FieldRefinedBubbles)
}

// SetFinalBubbles sets the "final_bubbles" field.
func (m *InteractionMutation) SetFinalBubbles(s []string) {
	m.final_bubbles = &s
	m.appendfinal_bubbles = nil
}

// FinalBubbles returns the value of the "final_bubbles" field in the mutation.
func (m *InteractionMutation) FinalBubbles() (r []string, exists bool) {
	v := m.final_bubbles
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalBubbles returns the old "final_bubbles" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldFinalBubbles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalBubbles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalBubbles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalBubbles: %w", err)
	}
	return oldValue.FinalBubbles, nil
}

// AppendFinalBubbles adds s to the "final_bubbles" field.
func (m *InteractionMutation) AppendFinalBubbles(s []string) {
	m.appendfinal_bubbles = append(m.appendfinal_bubbles, s...)
}

// AppendedFinalBubbles returns the list of values that were appended to the "final_bubbles" field in this mutation.
func (m *InteractionMutation) AppendedFinalBubbles() ([]string, bool) {
	if len(m.appendfinal_bubbles) == 0 {
		return nil, false
	}
	return m.appendfinal_bubbles, true
}

// ClearFinalBubbles clears the value of the "final_bubbles" field.
func (m *InteractionMutation) ClearFinalBubbles() {
	m.final_bubbles = nil
	m.appendfinal_bubbles = nil
	m.clearedFields[interaction.FieldFinalBubbles] = struct{}{}
}

// FinalBubblesCleared returns if the "final_bubbles" field was cleared in this mutation.
func (m *InteractionMutation) FinalBubblesCleared() bool {
	_, ok := m.clearedFields[interaction.FieldFinalBubbles]
	return ok
}

// ResetFinalBubbles resets all changes to the "final_bubbles" field.
func (m *InteractionMutation) ResetFinalBubbles() {
	m.final_bubbles = nil
	m.appendfinal_bubbles = nil
	delete(m.clearedFields, interaction.FieldFinalBubbles)
}

// SetSafety sets the "safety" field.
func (m *InteractionMutation) SetSafety(mr models.SafetyReport) {
	m.safety = &mr
}

// Safety returns the value of the "safety" field in the mutation.
func (m *InteractionMutation) Safety() (r models.SafetyReport, exists bool) {
	v := m.safety
	if v == nil {
		return
	}
	return *v, true
}

// OldSafety returns the old "safety" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldSafety(ctx context.Context) (v models.SafetyReport, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSafety is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSafety requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSafety: %w", err)
	}
	return oldValue.Safety, nil
}

// ClearSafety clears the value of the "safety" field.
func (m *InteractionMutation) ClearSafety() {
	m.safety = nil
	m.clearedFields[interaction.FieldSafety] = struct{}{}
}

// SafetyCleared returns if the "safety" field was cleared in this mutation.
func (m *InteractionMutation) SafetyCleared() bool {
	_, ok := m.clearedFields[interaction.FieldSafety]
	return ok
}

// ResetSafety resets all changes to the "safety" field.
func (m *InteractionMutation) ResetSafety() {
	m.safety = nil
	delete(m.clearedFields, interaction.FieldSafety)
}

// SetLlm1 sets the "llm1" field.
func (m *InteractionMutation) SetLlm1(mcr models.LLMCallRecord) {
	m.llm1 = &mcr
}

// Llm1 returns the value of the "llm1" field in the mutation.
func (m *InteractionMutation) Llm1() (r models.LLMCallRecord, exists bool) {
	v := m.llm1
	if v == nil {
		return
	}
	return *v, true
}

// OldLlm1 returns the old "llm1" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldLlm1(ctx context.Context) (v models.LLMCallRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlm1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlm1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlm1: %w", err)
	}
	return oldValue.Llm1, nil
}

// ClearLlm1 clears the value of the "llm1" field.
func (m *InteractionMutation) ClearLlm1() {
	m.llm1 = nil
	m.clearedFields[interaction.FieldLlm1] = struct{}{}
}

// Llm1Cleared returns if the "llm1" field was cleared in this mutation.
func (m *InteractionMutation) Llm1Cleared() bool {
	_, ok := m.clearedFields[interaction.FieldLlm1]
	return ok
}

// ResetLlm1 resets all changes to the "llm1" field.
func (m *InteractionMutation) ResetLlm1() {
	m.llm1 = nil
	delete(m.clearedFields, interaction.FieldLlm1)
}

// SetLlm2 sets the "llm2" field.
func (m *InteractionMutation) SetLlm2(mcr models.LLMCallRecord) {
	m.llm2 = &mcr
}

// Llm2 returns the value of the "llm2" field in the mutation.
func (m *InteractionMutation) Llm2() (r models.LLMCallRecord, exists bool) {
	v := m.llm2
	if v == nil {
		return
	}
	return *v, true
}

// OldLlm2 returns the old "llm2" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldLlm2(ctx context.Context) (v models.LLMCallRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlm2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlm2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlm2: %w", err)
	}
	return oldValue.Llm2, nil
}

// ClearLlm2 clears the value of the "llm2" field.
func (m *InteractionMutation) ClearLlm2() {
	m.llm2 = nil
	m.clearedFields[interaction.FieldLlm2] = struct{}{}
}

// Llm2Cleared returns if the "llm2" field was cleared in this mutation.
func (m *InteractionMutation) Llm2Cleared() bool {
	_, ok := m.clearedFields[interaction.FieldLlm2]
	return ok
}

// ResetLlm2 resets all changes to the "llm2" field.
func (m *InteractionMutation) ResetLlm2() {
	m.llm2 = nil
	delete(m.clearedFields, interaction.FieldLlm2)
}

// SetPriorityScore sets the "priority_score" field.
func (m *InteractionMutation) SetPriorityScore(f float64) {
	m.priority_score = &f
	m.addpriority_score = nil
}

// PriorityScore returns the value of the "priority_score" field in the mutation.
func (m *InteractionMutation) PriorityScore() (r float64, exists bool) {
	v := m.priority_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityScore returns the old "priority_score" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldPriorityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityScore: %w", err)
	}
	return oldValue.PriorityScore, nil
}

// AddPriorityScore adds f to the "priority_score" field.
func (m *InteractionMutation) AddPriorityScore(f float64) {
	if m.addpriority_score != nil {
		*m.addpriority_score += f
	} else {
		m.addpriority_score = &f
	}
}

// AddedPriorityScore returns the value that was added to the "priority_score" field in this mutation.
func (m *InteractionMutation) AddedPriorityScore() (r float64, exists bool) {
	v := m.addpriority_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityScore resets all changes to the "priority_score" field.
func (m *InteractionMutation) ResetPriorityScore() {
	m.priority_score = nil
	m.addpriority_score = nil
}

// SetStatus sets the "status" field.
func (m *InteractionMutation) SetStatus(i interaction.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InteractionMutation) Status() (r interaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldStatus(ctx context.Context) (v interaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InteractionMutation) ResetStatus() {
	m.status = nil
}

// SetReviewerID sets the "reviewer_id" field.
func (m *InteractionMutation) SetReviewerID(s string) {
	m.reviewer_id = &s
}

// ReviewerID returns the value of the "reviewer_id" field in the mutation.
func (m *InteractionMutation) ReviewerID() (r string, exists bool) {
	v := m.reviewer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerID returns the old "reviewer_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldReviewerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerID: %w", err)
	}
	return oldValue.ReviewerID, nil
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (m *InteractionMutation) ClearReviewerID() {
	m.reviewer_id = nil
	m.clearedFields[interaction.FieldReviewerID] = struct{}{}
}

// ReviewerIDCleared returns if the "reviewer_id" field was cleared in this mutation.
func (m *InteractionMutation) ReviewerIDCleared() bool {
	_, ok := m.clearedFields[interaction.FieldReviewerID]
	return ok
}

// ResetReviewerID resets all changes to the "reviewer_id" field.
func (m *InteractionMutation) ResetReviewerID() {
	m.reviewer_id = nil
	delete(m.clearedFields, interaction.FieldReviewerID)
}

// SetReviewStartedAt sets the "review_started_at" field.
func (m *InteractionMutation) SetReviewStartedAt(t time.Time) {
	m.review_started_at = &t
}

// ReviewStartedAt returns the value of the "review_started_at" field in the mutation.
func (m *InteractionMutation) ReviewStartedAt() (r time.Time, exists bool) {
	v := m.review_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStartedAt returns the old "review_started_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldReviewStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStartedAt: %w", err)
	}
	return oldValue.ReviewStartedAt, nil
}

// ClearReviewStartedAt clears the value of the "review_started_at" field.
func (m *InteractionMutation) ClearReviewStartedAt() {
	m.review_started_at = nil
	m.clearedFields[interaction.FieldReviewStartedAt] = struct{}{}
}

// ReviewStartedAtCleared returns if the "review_started_at" field was cleared in this mutation.
func (m *InteractionMutation) ReviewStartedAtCleared() bool {
	_, ok := m.clearedFields[interaction.FieldReviewStartedAt]
	return ok
}

// ResetReviewStartedAt resets all changes to the "review_started_at" field.
func (m *InteractionMutation) ResetReviewStartedAt() {
	m.review_started_at = nil
	delete(m.clearedFields, interaction.FieldReviewStartedAt)
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (m *InteractionMutation) SetReviewCompletedAt(t time.Time) {
	m.review_completed_at = &t
}

// ReviewCompletedAt returns the value of the "review_completed_at" field in the mutation.
func (m *InteractionMutation) ReviewCompletedAt() (r time.Time, exists bool) {
	v := m.review_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCompletedAt returns the old "review_completed_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldReviewCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCompletedAt: %w", err)
	}
	return oldValue.ReviewCompletedAt, nil
}

// ClearReviewCompletedAt clears the value of the "review_completed_at" field.
func (m *InteractionMutation) ClearReviewCompletedAt() {
	m.review_completed_at = nil
	m.clearedFields[interaction.FieldReviewCompletedAt] = struct{}{}
}

// ReviewCompletedAtCleared returns if the "review_completed_at" field was cleared in this mutation.
func (m *InteractionMutation) ReviewCompletedAtCleared() bool {
	_, ok := m.clearedFields[interaction.FieldReviewCompletedAt]
	return ok
}

// ResetReviewCompletedAt resets all changes to the "review_completed_at" field.
func (m *InteractionMutation) ResetReviewCompletedAt() {
	m.review_completed_at = nil
	delete(m.clearedFields, interaction.FieldReviewCompletedAt)
}

// SetEditTags sets the "edit_tags" field.
func (m *InteractionMutation) SetEditTags(s []string) {
	m.edit_tags = &s
	m.appendedit_tags = nil
}

// EditTags returns the value of the "edit_tags" field in the mutation.
func (m *InteractionMutation) EditTags() (r []string, exists bool) {
	v := m.edit_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldEditTags returns the old "edit_tags" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldEditTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditTags: %w", err)
	}
	return oldValue.EditTags, nil
}

// AppendEditTags adds s to the "edit_tags" field.
func (m *InteractionMutation) AppendEditTags(s []string) {
	m.appendedit_tags = append(m.appendedit_tags, s...)
}

// AppendedEditTags returns the list of values that were appended to the "edit_tags" field in this mutation.
func (m *InteractionMutation) AppendedEditTags() ([]string, bool) {
	if len(m.appendedit_tags) == 0 {
		return nil, false
	}
	return m.appendedit_tags, true
}

// ClearEditTags clears the value of the "edit_tags" field.
func (m *InteractionMutation) ClearEditTags() {
	m.edit_tags = nil
	m.appendedit_tags = nil
	m.clearedFields[interaction.FieldEditTags] = struct{}{}
}

// EditTagsCleared returns if the "edit_tags" field was cleared in this mutation.
func (m *InteractionMutation) EditTagsCleared() bool {
	_, ok := m.clearedFields[interaction.FieldEditTags]
	return ok
}

// ResetEditTags resets all changes to the "edit_tags" field.
func (m *InteractionMutation) ResetEditTags() {
	m.edit_tags = nil
	m.appendedit_tags = nil
	delete(m.clearedFields, interaction.FieldEditTags)
}

// SetQualityScore sets the "quality_score" field.
func (m *InteractionMutation) SetQualityScore(i int) {
	m.quality_score = &i
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *InteractionMutation) QualityScore() (r int, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldQualityScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds i to the "quality_score" field.
func (m *InteractionMutation) AddQualityScore(i int) {
	if m.addquality_score != nil {
		*m.addquality_score += i
	} else {
		m.addquality_score = &i
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *InteractionMutation) AddedQualityScore() (r int, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *InteractionMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[interaction.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *InteractionMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[interaction.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *InteractionMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, interaction.FieldQualityScore)
}

// SetCta sets the "cta" field.
func (m *InteractionMutation) SetCta(mm models.CTAMetadata) {
	m.cta = &mm
}

// Cta returns the value of the "cta" field in the mutation.
func (m *InteractionMutation) Cta() (r models.CTAMetadata, exists bool) {
	v := m.cta
	if v == nil {
		return
	}
	return *v, true
}

// OldCta returns the old "cta" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldCta(ctx context.Context) (v models.CTAMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCta: %w", err)
	}
	return oldValue.Cta, nil
}

// ClearCta clears the value of the "cta" field.
func (m *InteractionMutation) ClearCta() {
	m.cta = nil
	m.clearedFields[interaction.FieldCta] = struct{}{}
}

// CtaCleared returns if the "cta" field was cleared in this mutation.
func (m *InteractionMutation) CtaCleared() bool {
	_, ok := m.clearedFields[interaction.FieldCta]
	return ok
}

// ResetCta resets all changes to the "cta" field.
func (m *InteractionMutation) ResetCta() {
	m.cta = nil
	delete(m.clearedFields, interaction.FieldCta)
}

// SetCustomerStatus sets the "customer_status" field.
func (m *InteractionMutation) SetCustomerStatus(s string) {
	m.customer_status = &s
}

// CustomerStatus returns the value of the "customer_status" field in the mutation.
func (m *InteractionMutation) CustomerStatus() (r string, exists bool) {
	v := m.customer_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerStatus returns the old "customer_status" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldCustomerStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerStatus: %w", err)
	}
	return oldValue.CustomerStatus, nil
}

// ClearCustomerStatus clears the value of the "customer_status" field.
func (m *InteractionMutation) ClearCustomerStatus() {
	m.customer_status = nil
	m.clearedFields[interaction.FieldCustomerStatus] = struct{}{}
}

// CustomerStatusCleared returns if the "customer_status" field was cleared in this mutation.
func (m *InteractionMutation) CustomerStatusCleared() bool {
	_, ok := m.clearedFields[interaction.FieldCustomerStatus]
	return ok
}

// ResetCustomerStatus resets all changes to the "customer_status" field.
func (m *InteractionMutation) ResetCustomerStatus() {
	m.customer_status = nil
	delete(m.clearedFields, interaction.FieldCustomerStatus)
}

// SetReviewerNotes sets the "reviewer_notes" field.
func (m *InteractionMutation) SetReviewerNotes(s string) {
	m.reviewer_notes = &s
}

// ReviewerNotes returns the value of the "reviewer_notes" field in the mutation.
func (m *InteractionMutation) ReviewerNotes() (r string, exists bool) {
	v := m.reviewer_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerNotes returns the old "reviewer_notes" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldReviewerNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerNotes: %w", err)
	}
	return oldValue.ReviewerNotes, nil
}

// ClearReviewerNotes clears the value of the "reviewer_notes" field.
func (m *InteractionMutation) ClearReviewerNotes() {
	m.reviewer_notes = nil
	m.clearedFields[interaction.FieldReviewerNotes] = struct{}{}
}

// ReviewerNotesCleared returns if the "reviewer_notes" field was cleared in this mutation.
func (m *InteractionMutation) ReviewerNotesCleared() bool {
	_, ok := m.clearedFields[interaction.FieldReviewerNotes]
	return ok
}

// ResetReviewerNotes resets all changes to the "reviewer_notes" field.
func (m *InteractionMutation) ResetReviewerNotes() {
	m.reviewer_notes = nil
	delete(m.clearedFields, interaction.FieldReviewerNotes)
}

// SetProcessingError sets the "processing_error" field.
func (m *InteractionMutation) SetProcessingError(s string) {
	m.processing_error = &s
}

// ProcessingError returns the value of the "processing_error" field in the mutation.
func (m *InteractionMutation) ProcessingError() (r string, exists bool) {
	v := m.processing_error
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingError returns the old "processing_error" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldProcessingError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingError: %w", err)
	}
	return oldValue.ProcessingError, nil
}

// ClearProcessingError clears the value of the "processing_error" field.
func (m *InteractionMutation) ClearProcessingError() {
	m.processing_error = nil
	m.clearedFields[interaction.FieldProcessingError] = struct{}{}
}

// ProcessingErrorCleared returns if the "processing_error" field was cleared in this mutation.
func (m *InteractionMutation) ProcessingErrorCleared() bool {
	_, ok := m.clearedFields[interaction.FieldProcessingError]
	return ok
}

// ResetProcessingError resets all changes to the "processing_error" field.
func (m *InteractionMutation) ResetProcessingError() {
	m.processing_error = nil
	delete(m.clearedFields, interaction.FieldProcessingError)
}

// SetRecovered sets the "recovered" field.
func (m *InteractionMutation) SetRecovered(b bool) {
	m.recovered = &b
}

// Recovered returns the value of the "recovered" field in the mutation.
func (m *InteractionMutation) Recovered() (r bool, exists bool) {
	v := m.recovered
	if v == nil {
		return
	}
	return *v, true
}

// OldRecovered returns the old "recovered" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldRecovered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecovered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecovered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecovered: %w", err)
	}
	return oldValue.Recovered, nil
}

// ResetRecovered resets all changes to the "recovered" field.
func (m *InteractionMutation) ResetRecovered() {
	m.recovered = nil
}

// SetRecoveryTier sets the "recovery_tier" field.
func (m *InteractionMutation) SetRecoveryTier(s string) {
	m.recovery_tier = &s
}

// RecoveryTier returns the value of the "recovery_tier" field in the mutation.
func (m *InteractionMutation) RecoveryTier() (r string, exists bool) {
	v := m.recovery_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryTier returns the old "recovery_tier" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldRecoveryTier(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryTier: %w", err)
	}
	return oldValue.RecoveryTier, nil
}

// ClearRecoveryTier clears the value of the "recovery_tier" field.
func (m *InteractionMutation) ClearRecoveryTier() {
	m.recovery_tier = nil
	m.clearedFields[interaction.FieldRecoveryTier] = struct{}{}
}

// RecoveryTierCleared returns if the "recovery_tier" field was cleared in this mutation.
func (m *InteractionMutation) RecoveryTierCleared() bool {
	_, ok := m.clearedFields[interaction.FieldRecoveryTier]
	return ok
}

// ResetRecoveryTier resets all changes to the "recovery_tier" field.
func (m *InteractionMutation) ResetRecoveryTier() {
	m.recovery_tier = nil
	delete(m.clearedFields, interaction.FieldRecoveryTier)
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *InteractionMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *InteractionMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *InteractionMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[interaction.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *InteractionMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[interaction.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *InteractionMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, interaction.FieldDeliveredAt)
}

// SetDeliveryError sets the "delivery_error" field.
func (m *InteractionMutation) SetDeliveryError(s string) {
	m.delivery_error = &s
}

// DeliveryError returns the value of the "delivery_error" field in the mutation.
func (m *InteractionMutation) DeliveryError() (r string, exists bool) {
	v := m.delivery_error
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryError returns the old "delivery_error" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldDeliveryError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryError: %w", err)
	}
	return oldValue.DeliveryError, nil
}

// ClearDeliveryError clears the value of the "delivery_error" field.
func (m *InteractionMutation) ClearDeliveryError() {
	m.delivery_error = nil
	m.clearedFields[interaction.FieldDeliveryError] = struct{}{}
}

// DeliveryErrorCleared returns if the "delivery_error" field was cleared in this mutation.
func (m *InteractionMutation) DeliveryErrorCleared() bool {
	_, ok := m.clearedFields[interaction.FieldDeliveryError]
	return ok
}

// ResetDeliveryError resets all changes to the "delivery_error" field.
func (m *InteractionMutation) ResetDeliveryError() {
	m.delivery_error = nil
	delete(m.clearedFields, interaction.FieldDeliveryError)
}

// SetCreatedAt sets the "created_at" field.
func (m *InteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InteractionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InteractionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InteractionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the InteractionMutation builder.
func (m *InteractionMutation) Where(ps ...predicate.Interaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Interaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Interaction).
func (m *InteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.user_id != nil {
		fields = append(fields, interaction.FieldUserID)
	}
	if m.chat_id != nil {
		fields = append(fields, interaction.FieldChatID)
	}
	if m.inbound_text != nil {
		fields = append(fields, interaction.FieldInboundText)
	}
	if m.last_message_id != nil {
		fields = append(fields, interaction.FieldLastMessageID)
	}
	if m.draft_text != nil {
		fields = append(fields, interaction.FieldDraftText)
	}
	if m.refined_bubbles != nil {
		fields = append(fields, interaction.FieldRefinedBubbles)
	}
	if m.final_bubbles != nil {
		fields = append(fields, interaction.FieldFinalBubbles)
	}
	if m.safety != nil {
		fields = append(fields, interaction.FieldSafety)
	}
	if m.llm1 != nil {
		fields = append(fields, interaction.FieldLlm1)
	}
	if m.llm2 != nil {
		fields = append(fields, interaction.FieldLlm2)
	}
	if m.priority_score != nil {
		fields = append(fields, interaction.FieldPriorityScore)
	}
	if m.status != nil {
		fields = append(fields, interaction.FieldStatus)
	}
	if m.reviewer_id != nil {
		fields = append(fields, interaction.FieldReviewerID)
	}
	if m.review_started_at != nil {
		fields = append(fields, interaction.FieldReviewStartedAt)
	}
	if m.review_completed_at != nil {
		fields = append(fields, interaction.FieldReviewCompletedAt)
	}
	if m.edit_tags != nil {
		fields = append(fields, interaction.FieldEditTags)
	}
	if m.quality_score != nil {
		fields = append(fields, interaction.FieldQualityScore)
	}
	if m.cta != nil {
		fields = append(fields, interaction.FieldCta)
	}
	if m.customer_status != nil {
		fields = append(fields, interaction.FieldCustomerStatus)
	}
	if m.reviewer_notes != nil {
		fields = append(fields, interaction.FieldReviewerNotes)
	}
	if m.processing_error != nil {
		fields = append(fields, interaction.FieldProcessingError)
	}
	if m.recovered != nil {
		fields = append(fields, interaction.FieldRecovered)
	}
	if m.recovery_tier != nil {
		fields = append(fields, interaction.FieldRecoveryTier)
	}
	if m.delivered_at != nil {
		fields = append(fields, interaction.FieldDeliveredAt)
	}
	if m.delivery_error != nil {
		fields = append(fields, interaction.FieldDeliveryError)
	}
	if m.created_at != nil {
		fields = append(fields, interaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, interaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interaction.FieldUserID:
		return m.UserID()
	case interaction.FieldChatID:
		return m.ChatID()
	case interaction.FieldInboundText:
		return m.InboundText()
	case interaction.FieldLastMessageID:
		return m.LastMessageID()
	case interaction.FieldDraftText:
		return m.DraftText()
	case interaction.FieldRefinedBubbles:
		return m.RefinedBubbles()
	case interaction.FieldFinalBubbles:
		return m.FinalBubbles()
	case interaction.FieldSafety:
		return m.Safety()
	case interaction.FieldLlm1:
		return m.Llm1()
	case interaction.FieldLlm2:
		return m.Llm2()
	case interaction.FieldPriorityScore:
		return m.PriorityScore()
	case interaction.FieldStatus:
		return m.Status()
	case interaction.FieldReviewerID:
		return m.ReviewerID()
	case interaction.FieldReviewStartedAt:
		return m.ReviewStartedAt()
	case interaction.FieldReviewCompletedAt:
		return m.ReviewCompletedAt()
	case interaction.FieldEditTags:
		return m.EditTags()
	case interaction.FieldQualityScore:
		return m.QualityScore()
	case interaction.FieldCta:
		return m.Cta()
	case interaction.FieldCustomerStatus:
		return m.CustomerStatus()
	case interaction.FieldReviewerNotes:
		return m.ReviewerNotes()
	case interaction.FieldProcessingError:
		return m.ProcessingError()
	case interaction.FieldRecovered:
		return m.Recovered()
	case interaction.FieldRecoveryTier:
		return m.RecoveryTier()
	case interaction.FieldDeliveredAt:
		return m.DeliveredAt()
	case interaction.FieldDeliveryError:
		return m.DeliveryError()
	case interaction.FieldCreatedAt:
		return m.CreatedAt()
	case interaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interaction.FieldUserID:
		return m.OldUserID(ctx)
	case interaction.FieldChatID:
		return m.OldChatID(ctx)
	case interaction.FieldInboundText:
		return m.OldInboundText(ctx)
	case interaction.FieldLastMessageID:
		return m.OldLastMessageID(ctx)
	case interaction.FieldDraftText:
		return m.OldDraftText(ctx)
	case interaction.FieldRefinedBubbles:
		return m.OldRefinedBubbles(ctx)
	case interaction.FieldFinalBubbles:
		return m.OldFinalBubbles(ctx)
	case interaction.FieldSafety:
		return m.OldSafety(ctx)
	case interaction.FieldLlm1:
		return m.OldLlm1(ctx)
	case interaction.FieldLlm2:
		return m.OldLlm2(ctx)
	case interaction.FieldPriorityScore:
		return m.OldPriorityScore(ctx)
	case interaction.FieldStatus:
		return m.OldStatus(ctx)
	case interaction.FieldReviewerID:
		return m.OldReviewerID(ctx)
	case interaction.FieldReviewStartedAt:
		return m.OldReviewStartedAt(ctx)
	case interaction.FieldReviewCompletedAt:
		return m.OldReviewCompletedAt(ctx)
	case interaction.FieldEditTags:
		return m.OldEditTags(ctx)
	case interaction.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case interaction.FieldCta:
		return m.OldCta(ctx)
	case interaction.FieldCustomerStatus:
		return m.OldCustomerStatus(ctx)
	case interaction.FieldReviewerNotes:
		return m.OldReviewerNotes(ctx)
	case interaction.FieldProcessingError:
		return m.OldProcessingError(ctx)
	case interaction.FieldRecovered:
		return m.OldRecovered(ctx)
	case interaction.FieldRecoveryTier:
		return m.OldRecoveryTier(ctx)
	case interaction.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	case interaction.FieldDeliveryError:
		return m.OldDeliveryError(ctx)
	case interaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case interaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Interaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interaction.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interaction.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case interaction.FieldInboundText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboundText(v)
		return nil
	case interaction.FieldLastMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageID(v)
		return nil
	case interaction.FieldDraftText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraftText(v)
		return nil
	case interaction.FieldRefinedBubbles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefinedBubbles(v)
		return nil
	case interaction.FieldFinalBubbles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalBubbles(v)
		return nil
	case interaction.FieldSafety:
		v, ok := value.(models.SafetyReport)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSafety(v)
		return nil
	case interaction.FieldLlm1:
		v, ok := value.(models.LLMCallRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlm1(v)
		return nil
	case interaction.FieldLlm2:
		v, ok := value.(models.LLMCallRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlm2(v)
		return nil
	case interaction.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityScore(v)
		return nil
	case interaction.FieldStatus:
		v, ok := value.(interaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case interaction.FieldReviewerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerID(v)
		return nil
	case interaction.FieldReviewStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStartedAt(v)
		return nil
	case interaction.FieldReviewCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCompletedAt(v)
		return nil
	case interaction.FieldEditTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditTags(v)
		return nil
	case interaction.FieldQualityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case interaction.FieldCta:
		v, ok := value.(models.CTAMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCta(v)
		return nil
	case interaction.FieldCustomerStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerStatus(v)
		return nil
	case interaction.FieldReviewerNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerNotes(v)
		return nil
	case interaction.FieldProcessingError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingError(v)
		return nil
	case interaction.FieldRecovered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecovered(v)
		return nil
	case interaction.FieldRecoveryTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryTier(v)
		return nil
	case interaction.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	case interaction.FieldDeliveryError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryError(v)
		return nil
	case interaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case interaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, interaction.FieldUserID)
	}
	if m.addchat_id != nil {
		fields = append(fields, interaction.FieldChatID)
	}
	if m.addlast_message_id != nil {
		fields = append(fields, interaction.FieldLastMessageID)
	}
	if m.addpriority_score != nil {
		fields = append(fields, interaction.FieldPriorityScore)
	}
	if m.addquality_score != nil {
		fields = append(fields, interaction.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interaction.FieldUserID:
		return m.AddedUserID()
	case interaction.FieldChatID:
		return m.AddedChatID()
	case interaction.FieldLastMessageID:
		return m.AddedLastMessageID()
	case interaction.FieldPriorityScore:
		return m.AddedPriorityScore()
	case interaction.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interaction.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case interaction.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case interaction.FieldLastMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastMessageID(v)
		return nil
	case interaction.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityScore(v)
		return nil
	case interaction.FieldQualityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Interaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interaction.FieldDraftText) {
		fields = append(fields, interaction.FieldDraftText)
	}
	if m.FieldCleared(interaction.FieldRefinedBubbles) {
		fields = append(fields, interaction.FieldRefinedBubbles)
	}
	if m.FieldCleared(interaction.FieldFinalBubbles) {
		fields = append(fields, interaction.FieldFinalBubbles)
	}
	if m.FieldCleared(interaction.FieldSafety) {
		fields = append(fields, interaction.FieldSafety)
	}
	if m.FieldCleared(interaction.FieldLlm1) {
		fields = append(fields, interaction.FieldLlm1)
	}
	if m.FieldCleared(interaction.FieldLlm2) {
		fields = append(fields, interaction.FieldLlm2)
	}
	if m.FieldCleared(interaction.FieldReviewerID) {
		fields = append(fields, interaction.FieldReviewerID)
	}
	if m.FieldCleared(interaction.FieldReviewStartedAt) {
		fields = append(fields, interaction.FieldReviewStartedAt)
	}
	if m.FieldCleared(interaction.FieldReviewCompletedAt) {
		fields = append(fields, interaction.FieldReviewCompletedAt)
	}
	if m.FieldCleared(interaction.FieldEditTags) {
		fields = append(fields, interaction.FieldEditTags)
	}
	if m.FieldCleared(interaction.FieldQualityScore) {
		fields = append(fields, interaction.FieldQualityScore)
	}
	if m.FieldCleared(interaction.FieldCta) {
		fields = append(fields, interaction.FieldCta)
	}
	if m.FieldCleared(interaction.FieldCustomerStatus) {
		fields = append(fields, interaction.FieldCustomerStatus)
	}
	if m.FieldCleared(interaction.FieldReviewerNotes) {
		fields = append(fields, interaction.FieldReviewerNotes)
	}
	if m.FieldCleared(interaction.FieldProcessingError) {
		fields = append(fields, interaction.FieldProcessingError)
	}
	if m.FieldCleared(interaction.FieldRecoveryTier) {
		fields = append(fields, interaction.FieldRecoveryTier)
	}
	if m.FieldCleared(interaction.FieldDeliveredAt) {
		fields = append(fields, interaction.FieldDeliveredAt)
	}
	if m.FieldCleared(interaction.FieldDeliveryError) {
		fields = append(fields, interaction.FieldDeliveryError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionMutation) ClearField(name string) error {
	switch name {
	case interaction.FieldDraftText:
		m.ClearDraftText()
		return nil
	case interaction.FieldRefinedBubbles:
		m.ClearRefinedBubbles()
		return nil
	case interaction.FieldFinalBubbles:
		m.ClearFinalBubbles()
		return nil
	case interaction.FieldSafety:
		m.ClearSafety()
		return nil
	case interaction.FieldLlm1:
		m.ClearLlm1()
		return nil
	case interaction.FieldLlm2:
		m.ClearLlm2()
		return nil
	case interaction.FieldReviewerID:
		m.ClearReviewerID()
		return nil
	case interaction.FieldReviewStartedAt:
		m.ClearReviewStartedAt()
		return nil
	case interaction.FieldReviewCompletedAt:
		m.ClearReviewCompletedAt()
		return nil
	case interaction.FieldEditTags:
		m.ClearEditTags()
		return nil
	case interaction.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	case interaction.FieldCta:
		m.ClearCta()
		return nil
	case interaction.FieldCustomerStatus:
		m.ClearCustomerStatus()
		return nil
	case interaction.FieldReviewerNotes:
		m.ClearReviewerNotes()
		return nil
	case interaction.FieldProcessingError:
		m.ClearProcessingError()
		return nil
	case interaction.FieldRecoveryTier:
		m.ClearRecoveryTier()
		return nil
	case interaction.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	case interaction.FieldDeliveryError:
		m.ClearDeliveryError()
		return nil
	}
	return fmt.Errorf("unknown Interaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionMutation) ResetField(name string) error {
	switch name {
	case interaction.FieldUserID:
		m.ResetUserID()
		return nil
	case interaction.FieldChatID:
		m.ResetChatID()
		return nil
	case interaction.FieldInboundText:
		m.ResetInboundText()
		return nil
	case interaction.FieldLastMessageID:
		m.ResetLastMessageID()
		return nil
	case interaction.FieldDraftText:
		m.ResetDraftText()
		return nil
	case interaction.FieldRefinedBubbles:
		m.ResetRefinedBubbles()
		return nil
	case interaction.FieldFinalBubbles:
		m.ResetFinalBubbles()
		return nil
	case interaction.FieldSafety:
		m.ResetSafety()
		return nil
	case interaction.FieldLlm1:
		m.ResetLlm1()
		return nil
	case interaction.FieldLlm2:
		m.ResetLlm2()
		return nil
	case interaction.FieldPriorityScore:
		m.ResetPriorityScore()
		return nil
	case interaction.FieldStatus:
		m.ResetStatus()
		return nil
	case interaction.FieldReviewerID:
		m.ResetReviewerID()
		return nil
	case interaction.FieldReviewStartedAt:
		m.ResetReviewStartedAt()
		return nil
	case interaction.FieldReviewCompletedAt:
		m.ResetReviewCompletedAt()
		return nil
	case interaction.FieldEditTags:
		m.ResetEditTags()
		return nil
	case interaction.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case interaction.FieldCta:
		m.ResetCta()
		return nil
	case interaction.FieldCustomerStatus:
		m.ResetCustomerStatus()
		return nil
	case interaction.FieldReviewerNotes:
		m.ResetReviewerNotes()
		return nil
	case interaction.FieldProcessingError:
		m.ResetProcessingError()
		return nil
	case interaction.FieldRecovered:
		m.ResetRecovered()
		return nil
	case interaction.FieldRecoveryTier:
		m.ResetRecoveryTier()
		return nil
	case interaction.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	case interaction.FieldDeliveryError:
		m.ResetDeliveryError()
		return nil
	case interaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case interaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Interaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Interaction edge %s", name)
}

// MessageCursorMutation represents an operation that mutates the MessageCursor nodes in the graph.
type MessageCursorMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int64
	chat_id                      *int64
	addchat_id                   *int64
	last_processed_message_id    *int64
	addlast_processed_message_id *int64
	last_processed_at            *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*MessageCursor, error)
	predicates                   []predicate.MessageCursor
}

var _ ent.Mutation = (*MessageCursorMutation)(nil)

// messagecursorOption allows management of the mutation configuration using functional options.
type messagecursorOption func(*MessageCursorMutation)

// newMessageCursorMutation creates new mutation for the MessageCursor entity.
func newMessageCursorMutation(c config, op Op, opts ...messagecursorOption) *MessageCursorMutation {
	m := &MessageCursorMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageCursor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageCursorID sets the ID field of the mutation.
func withMessageCursorID(id int64) messagecursorOption {
	return func(m *MessageCursorMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageCursor
		)
		m.oldValue = func(ctx context.Context) (*MessageCursor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageCursor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageCursor sets the old MessageCursor of the mutation.
func withMessageCursor(node *MessageCursor) messagecursorOption {
	return func(m *MessageCursorMutation) {
		m.oldValue = func(context.Context) (*MessageCursor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageCursorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageCursorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageCursor entities.
func (m *MessageCursorMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageCursorMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageCursorMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageCursor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *MessageCursorMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *MessageCursorMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the MessageCursor entity.
// If the MessageCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageCursorMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *MessageCursorMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *MessageCursorMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *MessageCursorMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetLastProcessedMessageID sets the "last_processed_message_id" field.
func (m *MessageCursorMutation) SetLastProcessedMessageID(i int64) {
	m.last_processed_message_id = &i
	m.addlast_processed_message_id = nil
}

// LastProcessedMessageID returns the value of the "last_processed_message_id" field in the mutation.
func (m *MessageCursorMutation) LastProcessedMessageID() (r int64, exists bool) {
	v := m.last_processed_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProcessedMessageID returns the old "last_processed_message_id" field's value of the MessageCursor entity.
// If the MessageCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageCursorMutation) OldLastProcessedMessageID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProcessedMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProcessedMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProcessedMessageID: %w", err)
	}
	return oldValue.LastProcessedMessageID, nil
}

// AddLastProcessedMessageID adds i to the "last_processed_message_id" field.
func (m *MessageCursorMutation) AddLastProcessedMessageID(i int64) {
	if m.addlast_processed_message_id != nil {
		*m.addlast_processed_message_id += i
	} else {
		m.addlast_processed_message_id = &i
	}
}

// AddedLastProcessedMessageID returns the value that was added to the "last_processed_message_id" field in this mutation.
func (m *MessageCursorMutation) AddedLastProcessedMessageID() (r int64, exists bool) {
	v := m.addlast_processed_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastProcessedMessageID resets all changes to the "last_processed_message_id" field.
func (m *MessageCursorMutation) ResetLastProcessedMessageID() {
	m.last_processed_message_id = nil
	m.addlast_processed_message_id = nil
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (m *MessageCursorMutation) SetLastProcessedAt(t time.Time) {
	m.last_processed_at = &t
}

// LastProcessedAt returns the value of the "last_processed_at" field in the mutation.
func (m *MessageCursorMutation) LastProcessedAt() (r time.Time, exists bool) {
	v := m.last_processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProcessedAt returns the old "last_processed_at" field's value of the MessageCursor entity.
// If the MessageCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageCursorMutation) OldLastProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProcessedAt: %w", err)
	}
	return oldValue.LastProcessedAt, nil
}

// ResetLastProcessedAt resets all changes to the "last_processed_at" field.
func (m *MessageCursorMutation) ResetLastProcessedAt() {
	m.last_processed_at = nil
}

// Where appends a list predicates to the MessageCursorMutation builder.
func (m *MessageCursorMutation) Where(ps ...predicate.MessageCursor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageCursorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageCursorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageCursor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageCursorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageCursorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageCursor).
func (m *MessageCursorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageCursorMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.chat_id != nil {
		fields = append(fields, messagecursor.FieldChatID)
	}
	if m.last_processed_message_id != nil {
		fields = append(fields, messagecursor.FieldLastProcessedMessageID)
	}
	if m.last_processed_at != nil {
		fields = append(fields, messagecursor.FieldLastProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageCursorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagecursor.FieldChatID:
		return m.ChatID()
	case messagecursor.FieldLastProcessedMessageID:
		return m.LastProcessedMessageID()
	case messagecursor.FieldLastProcessedAt:
		return m.LastProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageCursorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagecursor.FieldChatID:
		return m.OldChatID(ctx)
	case messagecursor.FieldLastProcessedMessageID:
		return m.OldLastProcessedMessageID(ctx)
	case messagecursor.FieldLastProcessedAt:
		return m.OldLastProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageCursor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageCursorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagecursor.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case messagecursor.FieldLastProcessedMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProcessedMessageID(v)
		return nil
	case messagecursor.FieldLastProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageCursor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageCursorMutation) AddedFields() []string {
	var fields []string
	if m.addchat_id != nil {
		fields = append(fields, messagecursor.FieldChatID)
	}
	if m.addlast_processed_message_id != nil {
		fields = append(fields, messagecursor.FieldLastProcessedMessageID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageCursorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case messagecursor.FieldChatID:
		return m.AddedChatID()
	case messagecursor.FieldLastProcessedMessageID:
		return m.AddedLastProcessedMessageID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageCursorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case messagecursor.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case messagecursor.FieldLastProcessedMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastProcessedMessageID(v)
		return nil
	}
	return fmt.Errorf("unknown MessageCursor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageCursorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageCursorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageCursorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MessageCursor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageCursorMutation) ResetField(name string) error {
	switch name {
	case messagecursor.FieldChatID:
		m.ResetChatID()
		return nil
	case messagecursor.FieldLastProcessedMessageID:
		m.ResetLastProcessedMessageID()
		return nil
	case messagecursor.FieldLastProcessedAt:
		m.ResetLastProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageCursor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageCursorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageCursorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageCursorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageCursorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageCursorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageCursorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageCursorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MessageCursor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageCursorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MessageCursor edge %s", name)
}

// ProtocolAuditLogMutation represents an operation that mutates the ProtocolAuditLog nodes in the graph.
type ProtocolAuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *int64
	adduser_id    *int64
	action        *string
	reason        *string
	performer     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProtocolAuditLog, error)
	predicates    []predicate.ProtocolAuditLog
}

var _ ent.Mutation = (*ProtocolAuditLogMutation)(nil)

// protocolauditlogOption allows management of the mutation configuration using functional options.
type protocolauditlogOption func(*ProtocolAuditLogMutation)

// newProtocolAuditLogMutation creates new mutation for the ProtocolAuditLog entity.
func newProtocolAuditLogMutation(c config, op Op, opts ...protocolauditlogOption) *ProtocolAuditLogMutation {
	m := &ProtocolAuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeProtocolAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProtocolAuditLogID sets the ID field of the mutation.
func withProtocolAuditLogID(id string) protocolauditlogOption {
	return func(m *ProtocolAuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ProtocolAuditLog
		)
		m.oldValue = func(ctx context.Context) (*ProtocolAuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProtocolAuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProtocolAuditLog sets the old ProtocolAuditLog of the mutation.
func withProtocolAuditLog(node *ProtocolAuditLog) protocolauditlogOption {
	return func(m *ProtocolAuditLogMutation) {
		m.oldValue = func(context.Context) (*ProtocolAuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProtocolAuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProtocolAuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProtocolAuditLog entities.
func (m *ProtocolAuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProtocolAuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProtocolAuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProtocolAuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProtocolAuditLogMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProtocolAuditLogMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProtocolAuditLog entity.
// If the ProtocolAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolAuditLogMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ProtocolAuditLogMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ProtocolAuditLogMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProtocolAuditLogMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetAction sets the "action" field.
func (m *ProtocolAuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *ProtocolAuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ProtocolAuditLog entity.
// If the ProtocolAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolAuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ProtocolAuditLogMutation) ResetAction() {
	m.action = nil
}

// SetReason sets the "reason" field.
func (m *ProtocolAuditLogMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ProtocolAuditLogMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ProtocolAuditLog entity.
// If the ProtocolAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolAuditLogMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ProtocolAuditLogMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[protocolauditlog.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ProtocolAuditLogMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[protocolauditlog.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ProtocolAuditLogMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, protocolauditlog.FieldReason)
}

// SetPerformer sets the "performer" field.
func (m *ProtocolAuditLogMutation) SetPerformer(s string) {
	m.performer = &s
}

// Performer returns the value of the "performer" field in the mutation.
func (m *ProtocolAuditLogMutation) Performer() (r string, exists bool) {
	v := m.performer
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformer returns the old "performer" field's value of the ProtocolAuditLog entity.
// If the ProtocolAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolAuditLogMutation) OldPerformer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformer: %w", err)
	}
	return oldValue.Performer, nil
}

// ResetPerformer resets all changes to the "performer" field.
func (m *ProtocolAuditLogMutation) ResetPerformer() {
	m.performer = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProtocolAuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProtocolAuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProtocolAuditLog entity.
// If the ProtocolAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolAuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProtocolAuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProtocolAuditLogMutation builder.
func (m *ProtocolAuditLogMutation) Where(ps ...predicate.ProtocolAuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProtocolAuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProtocolAuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProtocolAuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProtocolAuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProtocolAuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProtocolAuditLog).
func (m *ProtocolAuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProtocolAuditLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, protocolauditlog.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, protocolauditlog.FieldAction)
	}
	if m.reason != nil {
		fields = append(fields, protocolauditlog.FieldReason)
	}
	if m.performer != nil {
		fields = append(fields, protocolauditlog.FieldPerformer)
	}
	if m.created_at != nil {
		fields = append(fields, protocolauditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProtocolAuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case protocolauditlog.FieldUserID:
		return m.UserID()
	case protocolauditlog.FieldAction:
		return m.Action()
	case protocolauditlog.FieldReason:
		return m.Reason()
	case protocolauditlog.FieldPerformer:
		return m.Performer()
	case protocolauditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProtocolAuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case protocolauditlog.FieldUserID:
		return m.OldUserID(ctx)
	case protocolauditlog.FieldAction:
		return m.OldAction(ctx)
	case protocolauditlog.FieldReason:
		return m.OldReason(ctx)
	case protocolauditlog.FieldPerformer:
		return m.OldPerformer(ctx)
	case protocolauditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProtocolAuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProtocolAuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case protocolauditlog.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case protocolauditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case protocolauditlog.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case protocolauditlog.FieldPerformer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformer(v)
		return nil
	case protocolauditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProtocolAuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProtocolAuditLogMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, protocolauditlog.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProtocolAuditLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case protocolauditlog.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProtocolAuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case protocolauditlog.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown ProtocolAuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProtocolAuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(protocolauditlog.FieldReason) {
		fields = append(fields, protocolauditlog.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProtocolAuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProtocolAuditLogMutation) ClearField(name string) error {
	switch name {
	case protocolauditlog.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown ProtocolAuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProtocolAuditLogMutation) ResetField(name string) error {
	switch name {
	case protocolauditlog.FieldUserID:
		m.ResetUserID()
		return nil
	case protocolauditlog.FieldAction:
		m.ResetAction()
		return nil
	case protocolauditlog.FieldReason:
		m.ResetReason()
		return nil
	case protocolauditlog.FieldPerformer:
		m.ResetPerformer()
		return nil
	case protocolauditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProtocolAuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProtocolAuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProtocolAuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProtocolAuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProtocolAuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProtocolAuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProtocolAuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProtocolAuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProtocolAuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProtocolAuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProtocolAuditLog edge %s", name)
}

// ProtocolStatusMutation represents an operation that mutates the ProtocolStatus nodes in the graph.
type ProtocolStatusMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	active        *bool
	since         *time.Time
	reason        *string
	performer     *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProtocolStatus, error)
	predicates    []predicate.ProtocolStatus
}

var _ ent.Mutation = (*ProtocolStatusMutation)(nil)

// protocolstatusOption allows management of the mutation configuration using functional options.
type protocolstatusOption func(*ProtocolStatusMutation)

// newProtocolStatusMutation creates new mutation for the ProtocolStatus entity.
func newProtocolStatusMutation(c config, op Op, opts ...protocolstatusOption) *ProtocolStatusMutation {
	m := &ProtocolStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeProtocolStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProtocolStatusID sets the ID field of the mutation.
func withProtocolStatusID(id int64) protocolstatusOption {
	return func(m *ProtocolStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *ProtocolStatus
		)
		m.oldValue = func(ctx context.Context) (*ProtocolStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProtocolStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProtocolStatus sets the old ProtocolStatus of the mutation.
func withProtocolStatus(node *ProtocolStatus) protocolstatusOption {
	return func(m *ProtocolStatusMutation) {
		m.oldValue = func(context.Context) (*ProtocolStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProtocolStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProtocolStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProtocolStatus entities.
func (m *ProtocolStatusMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProtocolStatusMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProtocolStatusMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProtocolStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActive sets the "active" field.
func (m *ProtocolStatusMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ProtocolStatusMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ProtocolStatus entity.
// If the ProtocolStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolStatusMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ProtocolStatusMutation) ResetActive() {
	m.active = nil
}

// SetSince sets the "since" field.
func (m *ProtocolStatusMutation) SetSince(t time.Time) {
	m.since = &t
}

// Since returns the value of the "since" field in the mutation.
func (m *ProtocolStatusMutation) Since() (r time.Time, exists bool) {
	v := m.since
	if v == nil {
		return
	}
	return *v, true
}

// OldSince returns the old "since" field's value of the ProtocolStatus entity.
// If the ProtocolStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolStatusMutation) OldSince(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSince is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSince requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSince: %w", err)
	}
	return oldValue.Since, nil
}

// ClearSince clears the value of the "since" field.
func (m *ProtocolStatusMutation) ClearSince() {
	m.since = nil
	m.clearedFields[protocolstatus.FieldSince] = struct{}{}
}

// SinceCleared returns if the "since" field was cleared in this mutation.
func (m *ProtocolStatusMutation) SinceCleared() bool {
	_, ok := m.clearedFields[protocolstatus.FieldSince]
	return ok
}

// ResetSince resets all changes to the "since" field.
func (m *ProtocolStatusMutation) ResetSince() {
	m.since = nil
	delete(m.clearedFields, protocolstatus.FieldSince)
}

// SetReason sets the "reason" field.
func (m *ProtocolStatusMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ProtocolStatusMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ProtocolStatus entity.
// If the ProtocolStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolStatusMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ProtocolStatusMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[protocolstatus.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ProtocolStatusMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[protocolstatus.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ProtocolStatusMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, protocolstatus.FieldReason)
}

// SetPerformer sets the "performer" field.
func (m *ProtocolStatusMutation) SetPerformer(s string) {
	m.performer = &s
}

// Performer returns the value of the "performer" field in the mutation.
func (m *ProtocolStatusMutation) Performer() (r string, exists bool) {
	v := m.performer
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformer returns the old "performer" field's value of the ProtocolStatus entity.
// If the ProtocolStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolStatusMutation) OldPerformer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformer: %w", err)
	}
	return oldValue.Performer, nil
}

// ClearPerformer clears the value of the "performer" field.
func (m *ProtocolStatusMutation) ClearPerformer() {
	m.performer = nil
	m.clearedFields[protocolstatus.FieldPerformer] = struct{}{}
}

// PerformerCleared returns if the "performer" field was cleared in this mutation.
func (m *ProtocolStatusMutation) PerformerCleared() bool {
	_, ok := m.clearedFields[protocolstatus.FieldPerformer]
	return ok
}

// ResetPerformer resets all changes to the "performer" field.
func (m *ProtocolStatusMutation) ResetPerformer() {
	m.performer = nil
	delete(m.clearedFields, protocolstatus.FieldPerformer)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProtocolStatusMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProtocolStatusMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProtocolStatus entity.
// If the ProtocolStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProtocolStatusMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProtocolStatusMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProtocolStatusMutation builder.
func (m *ProtocolStatusMutation) Where(ps ...predicate.ProtocolStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProtocolStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProtocolStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProtocolStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProtocolStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProtocolStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProtocolStatus).
func (m *ProtocolStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProtocolStatusMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.active != nil {
		fields = append(fields, protocolstatus.FieldActive)
	}
	if m.since != nil {
		fields = append(fields, protocolstatus.FieldSince)
	}
	if m.reason != nil {
		fields = append(fields, protocolstatus.FieldReason)
	}
	if m.performer != nil {
		fields = append(fields, protocolstatus.FieldPerformer)
	}
	if m.updated_at != nil {
		fields = append(fields, protocolstatus.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProtocolStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case protocolstatus.FieldActive:
		return m.Active()
	case protocolstatus.FieldSince:
		return m.Since()
	case protocolstatus.FieldReason:
		return m.Reason()
	case protocolstatus.FieldPerformer:
		return m.Performer()
	case protocolstatus.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProtocolStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case protocolstatus.FieldActive:
		return m.OldActive(ctx)
	case protocolstatus.FieldSince:
		return m.OldSince(ctx)
	case protocolstatus.FieldReason:
		return m.OldReason(ctx)
	case protocolstatus.FieldPerformer:
		return m.OldPerformer(ctx)
	case protocolstatus.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProtocolStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProtocolStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case protocolstatus.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case protocolstatus.FieldSince:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSince(v)
		return nil
	case protocolstatus.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case protocolstatus.FieldPerformer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformer(v)
		return nil
	case protocolstatus.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProtocolStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProtocolStatusMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProtocolStatusMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProtocolStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProtocolStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProtocolStatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(protocolstatus.FieldSince) {
		fields = append(fields, protocolstatus.FieldSince)
	}
	if m.FieldCleared(protocolstatus.FieldReason) {
		fields = append(fields, protocolstatus.FieldReason)
	}
	if m.FieldCleared(protocolstatus.FieldPerformer) {
		fields = append(fields, protocolstatus.FieldPerformer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProtocolStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProtocolStatusMutation) ClearField(name string) error {
	switch name {
	case protocolstatus.FieldSince:
		m.ClearSince()
		return nil
	case protocolstatus.FieldReason:
		m.ClearReason()
		return nil
	case protocolstatus.FieldPerformer:
		m.ClearPerformer()
		return nil
	}
	return fmt.Errorf("unknown ProtocolStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProtocolStatusMutation) ResetField(name string) error {
	switch name {
	case protocolstatus.FieldActive:
		m.ResetActive()
		return nil
	case protocolstatus.FieldSince:
		m.ResetSince()
		return nil
	case protocolstatus.FieldReason:
		m.ResetReason()
		return nil
	case protocolstatus.FieldPerformer:
		m.ResetPerformer()
		return nil
	case protocolstatus.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProtocolStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProtocolStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProtocolStatusMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProtocolStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProtocolStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProtocolStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProtocolStatusMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProtocolStatusMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProtocolStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProtocolStatusMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProtocolStatus edge %s", name)
}

// QuarantineMessageMutation represents an operation that mutates the QuarantineMessage nodes in the graph.
type QuarantineMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *int64
	adduser_id    *int64
	chat_id       *int64
	addchat_id    *int64
	message_id    *int64
	addmessage_id *int64
	text          *string
	received_at   *time.Time
	expires_at    *time.Time
	released_at   *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuarantineMessage, error)
	predicates    []predicate.QuarantineMessage
}

var _ ent.Mutation = (*QuarantineMessageMutation)(nil)

// quarantinemessageOption allows management of the mutation configuration using functional options.
type quarantinemessageOption func(*QuarantineMessageMutation)

// newQuarantineMessageMutation creates new mutation for the QuarantineMessage entity.
func newQuarantineMessageMutation(c config, op Op, opts ...quarantinemessageOption) *QuarantineMessageMutation {
	m := &QuarantineMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeQuarantineMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuarantineMessageID sets the ID field of the mutation.
func withQuarantineMessageID(id string) quarantinemessageOption {
	return func(m *QuarantineMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *QuarantineMessage
		)
		m.oldValue = func(ctx context.Context) (*QuarantineMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuarantineMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuarantineMessage sets the old QuarantineMessage of the mutation.
func withQuarantineMessage(node *QuarantineMessage) quarantinemessageOption {
	return func(m *QuarantineMessageMutation) {
		m.oldValue = func(context.Context) (*QuarantineMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuarantineMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuarantineMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuarantineMessage entities.
func (m *QuarantineMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuarantineMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuarantineMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuarantineMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QuarantineMessageMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuarantineMessageMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuarantineMessage entity.
// If the QuarantineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantineMessageMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *QuarantineMessageMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *QuarantineMessageMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuarantineMessageMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetChatID sets the "chat_id" field.
func (m *QuarantineMessageMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *QuarantineMessageMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the QuarantineMessage entity.
// If the QuarantineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantineMessageMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *QuarantineMessageMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *QuarantineMessageMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *QuarantineMessageMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetMessageID sets the "message_id" field.
func (m *QuarantineMessageMutation) SetMessageID(i int64) {
	m.message_id = &i
	m.addmessage_id = nil
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *QuarantineMessageMutation) MessageID() (r int64, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the QuarantineMessage entity.
// If the QuarantineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantineMessageMutation) OldMessageID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// AddMessageID adds i to the "message_id" field.
func (m *QuarantineMessageMutation) AddMessageID(i int64) {
	if m.addmessage_id != nil {
		*m.addmessage_id += i
	} else {
		m.addmessage_id = &i
	}
}

// AddedMessageID returns the value that was added to the "message_id" field in this mutation.
func (m *QuarantineMessageMutation) AddedMessageID() (r int64, exists bool) {
	v := m.addmessage_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearMessageID clears the value of the "message_id" field.
func (m *QuarantineMessageMutation) ClearMessageID() {
	m.message_id = nil
	m.addmessage_id = nil
	m.clearedFields[quarantinemessage.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *QuarantineMessageMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[quarantinemessage.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *QuarantineMessageMutation) ResetMessageID() {
	m.message_id = nil
	m.addmessage_id = nil
	delete(m.clearedFields, quarantinemessage.FieldMessageID)
}

// SetText sets the "text" field.
func (m *QuarantineMessageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuarantineMessageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the QuarantineMessage entity.
// If the QuarantineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantineMessageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuarantineMessageMutation) ResetText() {
	m.text = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *QuarantineMessageMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *QuarantineMessageMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the QuarantineMessage entity.
// If the QuarantineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantineMessageMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *QuarantineMessageMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *QuarantineMessageMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *QuarantineMessageMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the QuarantineMessage entity.
// If the QuarantineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantineMessageMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *QuarantineMessageMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetReleasedAt sets the "released_at" field.
func (m *QuarantineMessageMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *QuarantineMessageMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the QuarantineMessage entity.
// If the QuarantineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantineMessageMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *QuarantineMessageMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[quarantinemessage.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *QuarantineMessageMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[quarantinemessage.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *QuarantineMessageMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, quarantinemessage.FieldReleasedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuarantineMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuarantineMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuarantineMessage entity.
// If the QuarantineMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantineMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuarantineMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QuarantineMessageMutation builder.
func (m *QuarantineMessageMutation) Where(ps ...predicate.QuarantineMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuarantineMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuarantineMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuarantineMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuarantineMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuarantineMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuarantineMessage).
func (m *QuarantineMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuarantineMessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, quarantinemessage.FieldUserID)
	}
	if m.chat_id != nil {
		fields = append(fields, quarantinemessage.FieldChatID)
	}
	if m.message_id != nil {
		fields = append(fields, quarantinemessage.FieldMessageID)
	}
	if m.text != nil {
		fields = append(fields, quarantinemessage.FieldText)
	}
	if m.received_at != nil {
		fields = append(fields, quarantinemessage.FieldReceivedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, quarantinemessage.FieldExpiresAt)
	}
	if m.released_at != nil {
		fields = append(fields, quarantinemessage.FieldReleasedAt)
	}
	if m.created_at != nil {
		fields = append(fields, quarantinemessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuarantineMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quarantinemessage.FieldUserID:
		return m.UserID()
	case quarantinemessage.FieldChatID:
		return m.ChatID()
	case quarantinemessage.FieldMessageID:
		return m.MessageID()
	case quarantinemessage.FieldText:
		return m.Text()
	case quarantinemessage.FieldReceivedAt:
		return m.ReceivedAt()
	case quarantinemessage.FieldExpiresAt:
		return m.ExpiresAt()
	case quarantinemessage.FieldReleasedAt:
		return m.ReleasedAt()
	case quarantinemessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuarantineMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quarantinemessage.FieldUserID:
		return m.OldUserID(ctx)
	case quarantinemessage.FieldChatID:
		return m.OldChatID(ctx)
	case quarantinemessage.FieldMessageID:
		return m.OldMessageID(ctx)
	case quarantinemessage.FieldText:
		return m.OldText(ctx)
	case quarantinemessage.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case quarantinemessage.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case quarantinemessage.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case quarantinemessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuarantineMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuarantineMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quarantinemessage.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case quarantinemessage.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case quarantinemessage.FieldMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case quarantinemessage.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case quarantinemessage.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case quarantinemessage.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case quarantinemessage.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case quarantinemessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuarantineMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuarantineMessageMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, quarantinemessage.FieldUserID)
	}
	if m.addchat_id != nil {
		fields = append(fields, quarantinemessage.FieldChatID)
	}
	if m.addmessage_id != nil {
		fields = append(fields, quarantinemessage.FieldMessageID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuarantineMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quarantinemessage.FieldUserID:
		return m.AddedUserID()
	case quarantinemessage.FieldChatID:
		return m.AddedChatID()
	case quarantinemessage.FieldMessageID:
		return m.AddedMessageID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuarantineMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quarantinemessage.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case quarantinemessage.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case quarantinemessage.FieldMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageID(v)
		return nil
	}
	return fmt.Errorf("unknown QuarantineMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuarantineMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quarantinemessage.FieldMessageID) {
		fields = append(fields, quarantinemessage.FieldMessageID)
	}
	if m.FieldCleared(quarantinemessage.FieldReleasedAt) {
		fields = append(fields, quarantinemessage.FieldReleasedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuarantineMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuarantineMessageMutation) ClearField(name string) error {
	switch name {
	case quarantinemessage.FieldMessageID:
		m.ClearMessageID()
		return nil
	case quarantinemessage.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown QuarantineMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuarantineMessageMutation) ResetField(name string) error {
	switch name {
	case quarantinemessage.FieldUserID:
		m.ResetUserID()
		return nil
	case quarantinemessage.FieldChatID:
		m.ResetChatID()
		return nil
	case quarantinemessage.FieldMessageID:
		m.ResetMessageID()
		return nil
	case quarantinemessage.FieldText:
		m.ResetText()
		return nil
	case quarantinemessage.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case quarantinemessage.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case quarantinemessage.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case quarantinemessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QuarantineMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuarantineMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuarantineMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuarantineMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuarantineMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuarantineMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuarantineMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuarantineMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuarantineMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuarantineMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuarantineMessage edge %s", name)
}

// RecoveryOperationMutation represents an operation that mutates the RecoveryOperation nodes in the graph.
type RecoveryOperationMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	started_at            *time.Time
	finished_at           *time.Time
	users_scanned         *int
	addusers_scanned      *int
	messages_recovered    *int
	addmessages_recovered *int
	errors                *int
	adderrors             *int
	status                *recoveryoperation.Status
	error_message         *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*RecoveryOperation, error)
	predicates            []predicate.RecoveryOperation
}

var _ ent.Mutation = (*RecoveryOperationMutation)(nil)

// recoveryoperationOption allows management of the mutation configuration using functional options.
type recoveryoperationOption func(*RecoveryOperationMutation)

// newRecoveryOperationMutation creates new mutation for the RecoveryOperation entity.
func newRecoveryOperationMutation(c config, op Op, opts ...recoveryoperationOption) *RecoveryOperationMutation {
	m := &RecoveryOperationMutation{
		config:        c,
		op:            op,
		typ:           TypeRecoveryOperation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecoveryOperationID sets the ID field of the mutation.
func withRecoveryOperationID(id string) recoveryoperationOption {
	return func(m *RecoveryOperationMutation) {
		var (
			err   error
			once  sync.Once
			value *RecoveryOperation
		)
		m.oldValue = func(ctx context.Context) (*RecoveryOperation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecoveryOperation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecoveryOperation sets the old RecoveryOperation of the mutation.
func withRecoveryOperation(node *RecoveryOperation) recoveryoperationOption {
	return func(m *RecoveryOperationMutation) {
		m.oldValue = func(context.Context) (*RecoveryOperation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecoveryOperationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecoveryOperationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecoveryOperation entities.
func (m *RecoveryOperationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecoveryOperationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecoveryOperationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecoveryOperation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStartedAt sets the "started_at" field.
func (m *RecoveryOperationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RecoveryOperationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RecoveryOperation entity.
// If the RecoveryOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecoveryOperationMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RecoveryOperationMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *RecoveryOperationMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *RecoveryOperationMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the RecoveryOperation entity.
// If the RecoveryOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecoveryOperationMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *RecoveryOperationMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[recoveryoperation.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *RecoveryOperationMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[recoveryoperation.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *RecoveryOperationMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, recoveryoperation.FieldFinishedAt)
}

// SetUsersScanned sets the "users_scanned" field.
func (m *RecoveryOperationMutation) SetUsersScanned(i int) {
	m.users_scanned = &i
	m.addusers_scanned = nil
}

// UsersScanned returns the value of the "users_scanned" field in the mutation.
func (m *RecoveryOperationMutation) UsersScanned() (r int, exists bool) {
	v := m.users_scanned
	if v == nil {
		return
	}
	return *v, true
}

// OldUsersScanned returns the old "users_scanned" field's value of the RecoveryOperation entity.
// If the RecoveryOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecoveryOperationMutation) OldUsersScanned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsersScanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsersScanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsersScanned: %w", err)
	}
	return oldValue.UsersScanned, nil
}

// AddUsersScanned adds i to the "users_scanned" field.
func (m *RecoveryOperationMutation) AddUsersScanned(i int) {
	if m.addusers_scanned != nil {
		*m.addusers_scanned += i
	} else {
		m.addusers_scanned = &i
	}
}

// AddedUsersScanned returns the value that was added to the "users_scanned" field in this mutation.
func (m *RecoveryOperationMutation) AddedUsersScanned() (r int, exists bool) {
	v := m.addusers_scanned
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsersScanned resets all changes to the "users_scanned" field.
func (m *RecoveryOperationMutation) ResetUsersScanned() {
	m.users_scanned = nil
	m.addusers_scanned = nil
}

// SetMessagesRecovered sets the "messages_recovered" field.
func (m *RecoveryOperationMutation) SetMessagesRecovered(i int) {
	m.messages_recovered = &i
	m.addmessages_recovered = nil
}

// MessagesRecovered returns the value of the "messages_recovered" field in the mutation.
func (m *RecoveryOperationMutation) MessagesRecovered() (r int, exists bool) {
	v := m.messages_recovered
	if v == nil {
		return
	}
	return *v, true
}

// OldMessagesRecovered returns the old "messages_recovered" field's value of the RecoveryOperation entity.
// If the RecoveryOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecoveryOperationMutation) OldMessagesRecovered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessagesRecovered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessagesRecovered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessagesRecovered: %w", err)
	}
	return oldValue.MessagesRecovered, nil
}

// AddMessagesRecovered adds i to the "messages_recovered" field.
func (m *RecoveryOperationMutation) AddMessagesRecovered(i int) {
	if m.addmessages_recovered != nil {
		*m.addmessages_recovered += i
	} else {
		m.addmessages_recovered = &i
	}
}

// AddedMessagesRecovered returns the value that was added to the "messages_recovered" field in this mutation.
func (m *RecoveryOperationMutation) AddedMessagesRecovered() (r int, exists bool) {
	v := m.addmessages_recovered
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessagesRecovered resets all changes to the "messages_recovered" field.
func (m *RecoveryOperationMutation) ResetMessagesRecovered() {
	m.messages_recovered = nil
	m.addmessages_recovered = nil
}

// SetErrors sets the "errors" field.
func (m *RecoveryOperationMutation) SetErrors(i int) {
	m.errors = &i
	m.adderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *RecoveryOperationMutation) Errors() (r int, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the RecoveryOperation entity.
// If the RecoveryOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecoveryOperationMutation) OldErrors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AddErrors adds i to the "errors" field.
func (m *RecoveryOperationMutation) AddErrors(i int) {
	if m.adderrors != nil {
		*m.adderrors += i
	} else {
		m.adderrors = &i
	}
}

// AddedErrors returns the value that was added to the "errors" field in this mutation.
func (m *RecoveryOperationMutation) AddedErrors() (r int, exists bool) {
	v := m.adderrors
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrors resets all changes to the "errors" field.
func (m *RecoveryOperationMutation) ResetErrors() {
	m.errors = nil
	m.adderrors = nil
}

// SetStatus sets the "status" field.
func (m *RecoveryOperationMutation) SetStatus(r recoveryoperation.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RecoveryOperationMutation) Status() (r recoveryoperation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RecoveryOperation entity.
// If the RecoveryOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecoveryOperationMutation) OldStatus(ctx context.Context) (v recoveryoperation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecoveryOperationMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *RecoveryOperationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RecoveryOperationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RecoveryOperation entity.
// If the RecoveryOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecoveryOperationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RecoveryOperationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[recoveryoperation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RecoveryOperationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[recoveryoperation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RecoveryOperationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, recoveryoperation.FieldErrorMessage)
}

// Where appends a list predicates to the RecoveryOperationMutation builder.
func (m *RecoveryOperationMutation) Where(ps ...predicate.RecoveryOperation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecoveryOperationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecoveryOperationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecoveryOperation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecoveryOperationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecoveryOperationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecoveryOperation).
func (m *RecoveryOperationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecoveryOperationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.started_at != nil {
		fields = append(fields, recoveryoperation.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, recoveryoperation.FieldFinishedAt)
	}
	if m.users_scanned != nil {
		fields = append(fields, recoveryoperation.FieldUsersScanned)
	}
	if m.messages_recovered != nil {
		fields = append(fields, recoveryoperation.FieldMessagesRecovered)
	}
	if m.errors != nil {
		fields = append(fields, recoveryoperation.FieldErrors)
	}
	if m.status != nil {
		fields = append(fields, recoveryoperation.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, recoveryoperation.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecoveryOperationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recoveryoperation.FieldStartedAt:
		return m.StartedAt()
	case recoveryoperation.FieldFinishedAt:
		return m.FinishedAt()
	case recoveryoperation.FieldUsersScanned:
		return m.UsersScanned()
	case recoveryoperation.FieldMessagesRecovered:
		return m.MessagesRecovered()
	case recoveryoperation.FieldErrors:
		return m.Errors()
	case recoveryoperation.FieldStatus:
		return m.Status()
	case recoveryoperation.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecoveryOperationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recoveryoperation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case recoveryoperation.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case recoveryoperation.FieldUsersScanned:
		return m.OldUsersScanned(ctx)
	case recoveryoperation.FieldMessagesRecovered:
		return m.OldMessagesRecovered(ctx)
	case recoveryoperation.FieldErrors:
		return m.OldErrors(ctx)
	case recoveryoperation.FieldStatus:
		return m.OldStatus(ctx)
	case recoveryoperation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown RecoveryOperation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecoveryOperationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recoveryoperation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case recoveryoperation.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case recoveryoperation.FieldUsersScanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsersScanned(v)
		return nil
	case recoveryoperation.FieldMessagesRecovered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessagesRecovered(v)
		return nil
	case recoveryoperation.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case recoveryoperation.FieldStatus:
		v, ok := value.(recoveryoperation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recoveryoperation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown RecoveryOperation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecoveryOperationMutation) AddedFields() []string {
	var fields []string
	if m.addusers_scanned != nil {
		fields = append(fields, recoveryoperation.FieldUsersScanned)
	}
	if m.addmessages_recovered != nil {
		fields = append(fields, recoveryoperation.FieldMessagesRecovered)
	}
	if m.adderrors != nil {
		fields = append(fields, recoveryoperation.FieldErrors)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecoveryOperationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recoveryoperation.FieldUsersScanned:
		return m.AddedUsersScanned()
	case recoveryoperation.FieldMessagesRecovered:
		return m.AddedMessagesRecovered()
	case recoveryoperation.FieldErrors:
		return m.AddedErrors()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecoveryOperationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recoveryoperation.FieldUsersScanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsersScanned(v)
		return nil
	case recoveryoperation.FieldMessagesRecovered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessagesRecovered(v)
		return nil
	case recoveryoperation.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrors(v)
		return nil
	}
	return fmt.Errorf("unknown RecoveryOperation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecoveryOperationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recoveryoperation.FieldFinishedAt) {
		fields = append(fields, recoveryoperation.FieldFinishedAt)
	}
	if m.FieldCleared(recoveryoperation.FieldErrorMessage) {
		fields = append(fields, recoveryoperation.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecoveryOperationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecoveryOperationMutation) ClearField(name string) error {
	switch name {
	case recoveryoperation.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case recoveryoperation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown RecoveryOperation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecoveryOperationMutation) ResetField(name string) error {
	switch name {
	case recoveryoperation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case recoveryoperation.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case recoveryoperation.FieldUsersScanned:
		m.ResetUsersScanned()
		return nil
	case recoveryoperation.FieldMessagesRecovered:
		m.ResetMessagesRecovered()
		return nil
	case recoveryoperation.FieldErrors:
		m.ResetErrors()
		return nil
	case recoveryoperation.FieldStatus:
		m.ResetStatus()
		return nil
	case recoveryoperation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown RecoveryOperation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecoveryOperationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecoveryOperationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecoveryOperationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecoveryOperationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecoveryOperationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecoveryOperationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecoveryOperationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RecoveryOperation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecoveryOperationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RecoveryOperation edge %s", name)
}

// StatusTransitionMutation represents an operation that mutates the StatusTransition nodes in the graph.
type StatusTransitionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *int64
	adduser_id       *int64
	from_status      *string
	to_status        *string
	delta_ltv_usd    *float64
	adddelta_ltv_usd *float64
	reason           *string
	performer        *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*StatusTransition, error)
	predicates       []predicate.StatusTransition
}

var _ ent.Mutation = (*StatusTransitionMutation)(nil)

// statustransitionOption allows management of the mutation configuration using functional options.
type statustransitionOption func(*StatusTransitionMutation)

// newStatusTransitionMutation creates new mutation for the StatusTransition entity.
func newStatusTransitionMutation(c config, op Op, opts ...statustransitionOption) *StatusTransitionMutation {
	m := &StatusTransitionMutation{
		config:        c,
		op:            op,
		typ:           TypeStatusTransition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatusTransitionID sets the ID field of the mutation.
func withStatusTransitionID(id string) statustransitionOption {
	return func(m *StatusTransitionMutation) {
		var (
			err   error
			once  sync.Once
			value *StatusTransition
		)
		m.oldValue = func(ctx context.Context) (*StatusTransition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatusTransition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatusTransition sets the old StatusTransition of the mutation.
func withStatusTransition(node *StatusTransition) statustransitionOption {
	return func(m *StatusTransitionMutation) {
		m.oldValue = func(context.Context) (*StatusTransition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatusTransitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatusTransitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StatusTransition entities.
func (m *StatusTransitionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatusTransitionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatusTransitionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatusTransition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *StatusTransitionMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StatusTransitionMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StatusTransition entity.
// If the StatusTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusTransitionMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *StatusTransitionMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *StatusTransitionMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StatusTransitionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetFromStatus sets the "from_status" field.
func (m *StatusTransitionMutation) SetFromStatus(s string) {
	m.from_status = &s
}

// FromStatus returns the value of the "from_status" field in the mutation.
func (m *StatusTransitionMutation) FromStatus() (r string, exists bool) {
	v := m.from_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStatus returns the old "from_status" field's value of the StatusTransition entity.
// If the StatusTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusTransitionMutation) OldFromStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStatus: %w", err)
	}
	return oldValue.FromStatus, nil
}

// ResetFromStatus resets all changes to the "from_status" field.
func (m *StatusTransitionMutation) ResetFromStatus() {
	m.from_status = nil
}

// SetToStatus sets the "to_status" field.
func (m *StatusTransitionMutation) SetToStatus(s string) {
	m.to_status = &s
}

// ToStatus returns the value of the "to_status" field in the mutation.
func (m *StatusTransitionMutation) ToStatus() (r string, exists bool) {
	v := m.to_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToStatus returns the old "to_status" field's value of the StatusTransition entity.
// If the StatusTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusTransitionMutation) OldToStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStatus: %w", err)
	}
	return oldValue.ToStatus, nil
}

// ResetToStatus resets all changes to the "to_status" field.
func (m *StatusTransitionMutation) ResetToStatus() {
	m.to_status = nil
}

// SetDeltaLtvUsd sets the "delta_ltv_usd" field.
func (m *StatusTransitionMutation) SetDeltaLtvUsd(f float64) {
	m.delta_ltv_usd = &f
	m.adddelta_ltv_usd = nil
}

// DeltaLtvUsd returns the value of the "delta_ltv_usd" field in the mutation.
func (m *StatusTransitionMutation) DeltaLtvUsd() (r float64, exists bool) {
	v := m.delta_ltv_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldDeltaLtvUsd returns the old "delta_ltv_usd" field's value of the StatusTransition entity.
// If the StatusTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusTransitionMutation) OldDeltaLtvUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeltaLtvUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeltaLtvUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeltaLtvUsd: %w", err)
	}
	return oldValue.DeltaLtvUsd, nil
}

// AddDeltaLtvUsd adds f to the "delta_ltv_usd" field.
func (m *StatusTransitionMutation) AddDeltaLtvUsd(f float64) {
	if m.adddelta_ltv_usd != nil {
		*m.adddelta_ltv_usd += f
	} else {
		m.adddelta_ltv_usd = &f
	}
}

// AddedDeltaLtvUsd returns the value that was added to the "delta_ltv_usd" field in this mutation.
func (m *StatusTransitionMutation) AddedDeltaLtvUsd() (r float64, exists bool) {
	v := m.adddelta_ltv_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeltaLtvUsd resets all changes to the "delta_ltv_usd" field.
func (m *StatusTransitionMutation) ResetDeltaLtvUsd() {
	m.delta_ltv_usd = nil
	m.adddelta_ltv_usd = nil
}

// SetReason sets the "reason" field.
func (m *StatusTransitionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *StatusTransitionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the StatusTransition entity.
// If the StatusTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusTransitionMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *StatusTransitionMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[statustransition.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *StatusTransitionMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[statustransition.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *StatusTransitionMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, statustransition.FieldReason)
}

// SetPerformer sets the "performer" field.
func (m *StatusTransitionMutation) SetPerformer(s string) {
	m.performer = &s
}

// Performer returns the value of the "performer" field in the mutation.
func (m *StatusTransitionMutation) Performer() (r string, exists bool) {
	v := m.performer
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformer returns the old "performer" field's value of the StatusTransition entity.
// If the StatusTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusTransitionMutation) OldPerformer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformer: %w", err)
	}
	return oldValue.Performer, nil
}

// ResetPerformer resets all changes to the "performer" field.
func (m *StatusTransitionMutation) ResetPerformer() {
	m.performer = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StatusTransitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StatusTransitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StatusTransition entity.
// If the StatusTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusTransitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StatusTransitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StatusTransitionMutation builder.
func (m *StatusTransitionMutation) Where(ps ...predicate.StatusTransition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatusTransitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatusTransitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatusTransition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatusTransitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatusTransitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatusTransition).
func (m *StatusTransitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatusTransitionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, statustransition.FieldUserID)
	}
	if m.from_status != nil {
		fields = append(fields, statustransition.FieldFromStatus)
	}
	if m.to_status != nil {
		fields = append(fields, statustransition.FieldToStatus)
	}
	if m.delta_ltv_usd != nil {
		fields = append(fields, statustransition.FieldDeltaLtvUsd)
	}
	if m.reason != nil {
		fields = append(fields, statustransition.FieldReason)
	}
	if m.performer != nil {
		fields = append(fields, statustransition.FieldPerformer)
	}
	if m.created_at != nil {
		fields = append(fields, statustransition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatusTransitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statustransition.FieldUserID:
		return m.UserID()
	case statustransition.FieldFromStatus:
		return m.FromStatus()
	case statustransition.FieldToStatus:
		return m.ToStatus()
	case statustransition.FieldDeltaLtvUsd:
		return m.DeltaLtvUsd()
	case statustransition.FieldReason:
		return m.Reason()
	case statustransition.FieldPerformer:
		return m.Performer()
	case statustransition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatusTransitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statustransition.FieldUserID:
		return m.OldUserID(ctx)
	case statustransition.FieldFromStatus:
		return m.OldFromStatus(ctx)
	case statustransition.FieldToStatus:
		return m.OldToStatus(ctx)
	case statustransition.FieldDeltaLtvUsd:
		return m.OldDeltaLtvUsd(ctx)
	case statustransition.FieldReason:
		return m.OldReason(ctx)
	case statustransition.FieldPerformer:
		return m.OldPerformer(ctx)
	case statustransition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StatusTransition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusTransitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statustransition.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case statustransition.FieldFromStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStatus(v)
		return nil
	case statustransition.FieldToStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStatus(v)
		return nil
	case statustransition.FieldDeltaLtvUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeltaLtvUsd(v)
		return nil
	case statustransition.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case statustransition.FieldPerformer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformer(v)
		return nil
	case statustransition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StatusTransition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatusTransitionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, statustransition.FieldUserID)
	}
	if m.adddelta_ltv_usd != nil {
		fields = append(fields, statustransition.FieldDeltaLtvUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatusTransitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case statustransition.FieldUserID:
		return m.AddedUserID()
	case statustransition.FieldDeltaLtvUsd:
		return m.AddedDeltaLtvUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusTransitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case statustransition.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case statustransition.FieldDeltaLtvUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeltaLtvUsd(v)
		return nil
	}
	return fmt.Errorf("unknown StatusTransition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatusTransitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(statustransition.FieldReason) {
		fields = append(fields, statustransition.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatusTransitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatusTransitionMutation) ClearField(name string) error {
	switch name {
	case statustransition.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown StatusTransition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatusTransitionMutation) ResetField(name string) error {
	switch name {
	case statustransition.FieldUserID:
		m.ResetUserID()
		return nil
	case statustransition.FieldFromStatus:
		m.ResetFromStatus()
		return nil
	case statustransition.FieldToStatus:
		m.ResetToStatus()
		return nil
	case statustransition.FieldDeltaLtvUsd:
		m.ResetDeltaLtvUsd()
		return nil
	case statustransition.FieldReason:
		m.ResetReason()
		return nil
	case statustransition.FieldPerformer:
		m.ResetPerformer()
		return nil
	case statustransition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StatusTransition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatusTransitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatusTransitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatusTransitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatusTransitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatusTransitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatusTransitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatusTransitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StatusTransition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatusTransitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StatusTransition edge %s", name)
}

// UserCurrentStatusMutation represents an operation that mutates the UserCurrentStatus nodes in the graph.
type UserCurrentStatusMutation struct {
	config
	op               Op
	typ              string
	id               *int64
	customer_status  *usercurrentstatus.CustomerStatus
	ltv_total_usd    *float64
	addltv_total_usd *float64
	nickname         *string
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*UserCurrentStatus, error)
	predicates       []predicate.UserCurrentStatus
}

var _ ent.Mutation = (*UserCurrentStatusMutation)(nil)

// usercurrentstatusOption allows management of the mutation configuration using functional options.
type usercurrentstatusOption func(*UserCurrentStatusMutation)

// newUserCurrentStatusMutation creates new mutation for the UserCurrentStatus entity.
func newUserCurrentStatusMutation(c config, op Op, opts ...usercurrentstatusOption) *UserCurrentStatusMutation {
	m := &UserCurrentStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeUserCurrentStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserCurrentStatusID sets the ID field of the mutation.
func withUserCurrentStatusID(id int64) usercurrentstatusOption {
	return func(m *UserCurrentStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *UserCurrentStatus
		)
		m.oldValue = func(ctx context.Context) (*UserCurrentStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserCurrentStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserCurrentStatus sets the old UserCurrentStatus of the mutation.
func withUserCurrentStatus(node *UserCurrentStatus) usercurrentstatusOption {
	return func(m *UserCurrentStatusMutation) {
		m.oldValue = func(context.Context) (*UserCurrentStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserCurrentStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserCurrentStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserCurrentStatus entities.
func (m *UserCurrentStatusMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserCurrentStatusMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserCurrentStatusMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserCurrentStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCustomerStatus sets the "customer_status" field.
func (m *UserCurrentStatusMutation) SetCustomerStatus(us usercurrentstatus.CustomerStatus) {
	m.customer_status = &us
}

// CustomerStatus returns the value of the "customer_status" field in the mutation.
func (m *UserCurrentStatusMutation) CustomerStatus() (r usercurrentstatus.CustomerStatus, exists bool) {
	v := m.customer_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerStatus returns the old "customer_status" field's value of the UserCurrentStatus entity.
// If the UserCurrentStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserCurrentStatusMutation) OldCustomerStatus(ctx context.Context) (v usercurrentstatus.CustomerStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerStatus: %w", err)
	}
	return oldValue.CustomerStatus, nil
}

// ResetCustomerStatus resets all changes to the "customer_status" field.
func (m *UserCurrentStatusMutation) ResetCustomerStatus() {
	m.customer_status = nil
}

// SetLtvTotalUsd sets the "ltv_total_usd" field.
func (m *UserCurrentStatusMutation) SetLtvTotalUsd(f float64) {
	m.ltv_total_usd = &f
	m.addltv_total_usd = nil
}

// LtvTotalUsd returns the value of the "ltv_total_usd" field in the mutation.
func (m *UserCurrentStatusMutation) LtvTotalUsd() (r float64, exists bool) {
	v := m.ltv_total_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldLtvTotalUsd returns the old "ltv_total_usd" field's value of the UserCurrentStatus entity.
// If the UserCurrentStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserCurrentStatusMutation) OldLtvTotalUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLtvTotalUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLtvTotalUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLtvTotalUsd: %w", err)
	}
	return oldValue.LtvTotalUsd, nil
}

// AddLtvTotalUsd adds f to the "ltv_total_usd" field.
func (m *UserCurrentStatusMutation) AddLtvTotalUsd(f float64) {
	if m.addltv_total_usd != nil {
		*m.addltv_total_usd += f
	} else {
		m.addltv_total_usd = &f
	}
}

// AddedLtvTotalUsd returns the value that was added to the "ltv_total_usd" field in this mutation.
func (m *UserCurrentStatusMutation) AddedLtvTotalUsd() (r float64, exists bool) {
	v := m.addltv_total_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetLtvTotalUsd resets all changes to the "ltv_total_usd" field.
func (m *UserCurrentStatusMutation) ResetLtvTotalUsd() {
	m.ltv_total_usd = nil
	m.addltv_total_usd = nil
}

// SetNickname sets the "nickname" field.
func (m *UserCurrentStatusMutation) SetNickname(s string) {
	m.nickname = &s
}

// Nickname returns the value of the "nickname" field in the mutation.
func (m *UserCurrentStatusMutation) Nickname() (r string, exists bool) {
	v := m.nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldNickname returns the old "nickname" field's value of the UserCurrentStatus entity.
// If the UserCurrentStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserCurrentStatusMutation) OldNickname(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNickname: %w", err)
	}
	return oldValue.Nickname, nil
}

// ClearNickname clears the value of the "nickname" field.
func (m *UserCurrentStatusMutation) ClearNickname() {
	m.nickname = nil
	m.clearedFields[usercurrentstatus.FieldNickname] = struct{}{}
}

// NicknameCleared returns if the "nickname" field was cleared in this mutation.
func (m *UserCurrentStatusMutation) NicknameCleared() bool {
	_, ok := m.clearedFields[usercurrentstatus.FieldNickname]
	return ok
}

// ResetNickname resets all changes to the "nickname" field.
func (m *UserCurrentStatusMutation) ResetNickname() {
	m.nickname = nil
	delete(m.clearedFields, usercurrentstatus.FieldNickname)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserCurrentStatusMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserCurrentStatusMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserCurrentStatus entity.
// If the UserCurrentStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserCurrentStatusMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserCurrentStatusMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserCurrentStatusMutation builder.
func (m *UserCurrentStatusMutation) Where(ps ...predicate.UserCurrentStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserCurrentStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserCurrentStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserCurrentStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserCurrentStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserCurrentStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserCurrentStatus).
func (m *UserCurrentStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserCurrentStatusMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.customer_status != nil {
		fields = append(fields, usercurrentstatus.FieldCustomerStatus)
	}
	if m.ltv_total_usd != nil {
		fields = append(fields, usercurrentstatus.FieldLtvTotalUsd)
	}
	if m.nickname != nil {
		fields = append(fields, usercurrentstatus.FieldNickname)
	}
	if m.updated_at != nil {
		fields = append(fields, usercurrentstatus.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserCurrentStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usercurrentstatus.FieldCustomerStatus:
		return m.CustomerStatus()
	case usercurrentstatus.FieldLtvTotalUsd:
		return m.LtvTotalUsd()
	case usercurrentstatus.FieldNickname:
		return m.Nickname()
	case usercurrentstatus.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserCurrentStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usercurrentstatus.FieldCustomerStatus:
		return m.OldCustomerStatus(ctx)
	case usercurrentstatus.FieldLtvTotalUsd:
		return m.OldLtvTotalUsd(ctx)
	case usercurrentstatus.FieldNickname:
		return m.OldNickname(ctx)
	case usercurrentstatus.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserCurrentStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserCurrentStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usercurrentstatus.FieldCustomerStatus:
		v, ok := value.(usercurrentstatus.CustomerStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerStatus(v)
		return nil
	case usercurrentstatus.FieldLtvTotalUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLtvTotalUsd(v)
		return nil
	case usercurrentstatus.FieldNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNickname(v)
		return nil
	case usercurrentstatus.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserCurrentStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserCurrentStatusMutation) AddedFields() []string {
	var fields []string
	if m.addltv_total_usd != nil {
		fields = append(fields, usercurrentstatus.FieldLtvTotalUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserCurrentStatusMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usercurrentstatus.FieldLtvTotalUsd:
		return m.AddedLtvTotalUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserCurrentStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usercurrentstatus.FieldLtvTotalUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLtvTotalUsd(v)
		return nil
	}
	return fmt.Errorf("unknown UserCurrentStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserCurrentStatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usercurrentstatus.FieldNickname) {
		fields = append(fields, usercurrentstatus.FieldNickname)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserCurrentStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserCurrentStatusMutation) ClearField(name string) error {
	switch name {
	case usercurrentstatus.FieldNickname:
		m.ClearNickname()
		return nil
	}
	return fmt.Errorf("unknown UserCurrentStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserCurrentStatusMutation) ResetField(name string) error {
	switch name {
	case usercurrentstatus.FieldCustomerStatus:
		m.ResetCustomerStatus()
		return nil
	case usercurrentstatus.FieldLtvTotalUsd:
		m.ResetLtvTotalUsd()
		return nil
	case usercurrentstatus.FieldNickname:
		m.ResetNickname()
		return nil
	case usercurrentstatus.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserCurrentStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserCurrentStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserCurrentStatusMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserCurrentStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserCurrentStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserCurrentStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserCurrentStatusMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserCurrentStatusMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserCurrentStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserCurrentStatusMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserCurrentStatus edge %s", name)
}
