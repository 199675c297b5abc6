// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
	"github.com/halfmoonlabs/chatloop/ent/quarantinemessage"
)

// QuarantineMessageUpdate is the builder for updating QuarantineMessage entities.
type QuarantineMessageUpdate struct {
	config
	hooks    []Hook
	mutation *QuarantineMessageMutation
}

// Where appends a list predicates to the QuarantineMessageUpdate builder.
func (_u *QuarantineMessageUpdate) Where(ps ...predicate.QuarantineMessage) *QuarantineMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuarantineMessageUpdate) SetUserID(v int64) *QuarantineMessageUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuarantineMessageUpdate) SetNillableUserID(v *int64) *QuarantineMessageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuarantineMessageUpdate) AddUserID(v int64) *QuarantineMessageUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *QuarantineMessageUpdate) SetChatID(v int64) *QuarantineMessageUpdate {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *QuarantineMessageUpdate) SetNillableChatID(v *int64) *QuarantineMessageUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *QuarantineMessageUpdate) AddChatID(v int64) *QuarantineMessageUpdate {
	_u.mutation.AddChatID(v)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *QuarantineMessageUpdate) SetMessageID(v int64) *QuarantineMessageUpdate {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *QuarantineMessageUpdate) SetNillableMessageID(v *int64) *QuarantineMessageUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *QuarantineMessageUpdate) AddMessageID(v int64) *QuarantineMessageUpdate {
	_u.mutation.AddMessageID(v)
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *QuarantineMessageUpdate) ClearMessageID() *QuarantineMessageUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// SetText sets the "text" field.
func (_u *QuarantineMessageUpdate) SetText(v string) *QuarantineMessageUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuarantineMessageUpdate) SetNillableText(v *string) *QuarantineMessageUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *QuarantineMessageUpdate) SetReceivedAt(v time.Time) *QuarantineMessageUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *QuarantineMessageUpdate) SetNillableReceivedAt(v *time.Time) *QuarantineMessageUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QuarantineMessageUpdate) SetExpiresAt(v time.Time) *QuarantineMessageUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QuarantineMessageUpdate) SetNillableExpiresAt(v *time.Time) *QuarantineMessageUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *QuarantineMessageUpdate) SetReleasedAt(v time.Time) *QuarantineMessageUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *QuarantineMessageUpdate) SetNillableReleasedAt(v *time.Time) *QuarantineMessageUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *QuarantineMessageUpdate) ClearReleasedAt() *QuarantineMessageUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the QuarantineMessageMutation object of the builder.
func (_u *QuarantineMessageUpdate) Mutation() *QuarantineMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuarantineMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuarantineMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuarantineMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuarantineMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuarantineMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quarantinemessage.Table, quarantinemessage.Columns, sqlgraph.NewFieldSpec(quarantinemessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quarantinemessage.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(quarantinemessage.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(quarantinemessage.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(quarantinemessage.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(quarantinemessage.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(quarantinemessage.FieldMessageID, field.TypeInt64, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(quarantinemessage.FieldMessageID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(quarantinemessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(quarantinemessage.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(quarantinemessage.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(quarantinemessage.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(quarantinemessage.FieldReleasedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quarantinemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuarantineMessageUpdateOne is the builder for updating a single QuarantineMessage entity.
type QuarantineMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuarantineMessageMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuarantineMessageUpdateOne) SetUserID(v int64) *QuarantineMessageUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuarantineMessageUpdateOne) SetNillableUserID(v *int64) *QuarantineMessageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuarantineMessageUpdateOne) AddUserID(v int64) *QuarantineMessageUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *QuarantineMessageUpdateOne) SetChatID(v int64) *QuarantineMessageUpdateOne {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *QuarantineMessageUpdateOne) SetNillableChatID(v *int64) *QuarantineMessageUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *QuarantineMessageUpdateOne) AddChatID(v int64) *QuarantineMessageUpdateOne {
	_u.mutation.AddChatID(v)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *QuarantineMessageUpdateOne) SetMessageID(v int64) *QuarantineMessageUpdateOne {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *QuarantineMessageUpdateOne) SetNillableMessageID(v *int64) *QuarantineMessageUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *QuarantineMessageUpdateOne) AddMessageID(v int64) *QuarantineMessageUpdateOne {
	_u.mutation.AddMessageID(v)
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *QuarantineMessageUpdateOne) ClearMessageID() *QuarantineMessageUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// SetText sets the "text" field.
func (_u *QuarantineMessageUpdateOne) SetText(v string) *QuarantineMessageUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuarantineMessageUpdateOne) SetNillableText(v *string) *QuarantineMessageUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *QuarantineMessageUpdateOne) SetReceivedAt(v time.Time) *QuarantineMessageUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *QuarantineMessageUpdateOne) SetNillableReceivedAt(v *time.Time) *QuarantineMessageUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QuarantineMessageUpdateOne) SetExpiresAt(v time.Time) *QuarantineMessageUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QuarantineMessageUpdateOne) SetNillableExpiresAt(v *time.Time) *QuarantineMessageUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *QuarantineMessageUpdateOne) SetReleasedAt(v time.Time) *QuarantineMessageUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *QuarantineMessageUpdateOne) SetNillableReleasedAt(v *time.Time) *QuarantineMessageUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *QuarantineMessageUpdateOne) ClearReleasedAt() *QuarantineMessageUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the QuarantineMessageMutation object of the builder.
func (_u *QuarantineMessageUpdateOne) Mutation() *QuarantineMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuarantineMessageUpdate builder.
func (_u *QuarantineMessageUpdateOne) Where(ps ...predicate.QuarantineMessage) *QuarantineMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuarantineMessageUpdateOne) Select(field string, fields ...string) *QuarantineMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuarantineMessage entity.
func (_u *QuarantineMessageUpdateOne) Save(ctx context.Context) (*QuarantineMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuarantineMessageUpdateOne) SaveX(ctx context.Context) *QuarantineMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuarantineMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuarantineMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuarantineMessageUpdateOne) sqlSave(ctx context.Context) (_node *QuarantineMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(quarantinemessage.Table, quarantinemessage.Columns, sqlgraph.NewFieldSpec(quarantinemessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuarantineMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quarantinemessage.FieldID)
		for _, f := range fields {
			if !quarantinemessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quarantinemessage.FieldID {
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
		_spec.SetField(quarantinemessage.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(quarantinemessage.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(quarantinemessage.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(quarantinemessage.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(quarantinemessage.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(quarantinemessage.FieldMessageID, field.TypeInt64, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(quarantinemessage.FieldMessageID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(quarantinemessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(quarantinemessage.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(quarantinemessage.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(quarantinemessage.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(quarantinemessage.FieldReleasedAt, field.TypeTime)
	}
	_node = &QuarantineMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quarantinemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
