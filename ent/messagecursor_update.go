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
	"github.com/halfmoonlabs/chatloop/ent/messagecursor"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
)

// MessageCursorUpdate is the builder for updating MessageCursor entities.
type MessageCursorUpdate struct {
	config
	hooks    []Hook
	mutation *MessageCursorMutation
}

// Where appends a list predicates to the MessageCursorUpdate builder.
func (_u *MessageCursorUpdate) Where(ps ...predicate.MessageCursor) *MessageCursorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *MessageCursorUpdate) SetChatID(v int64) *MessageCursorUpdate {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *MessageCursorUpdate) SetNillableChatID(v *int64) *MessageCursorUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *MessageCursorUpdate) AddChatID(v int64) *MessageCursorUpdate {
	_u.mutation.AddChatID(v)
	return _u
}

// SetLastProcessedMessageID sets the "last_processed_message_id" field.
func (_u *MessageCursorUpdate) SetLastProcessedMessageID(v int64) *MessageCursorUpdate {
	_u.mutation.ResetLastProcessedMessageID()
	_u.mutation.SetLastProcessedMessageID(v)
	return _u
}

// SetNillableLastProcessedMessageID sets the "last_processed_message_id" field if the given value is not nil.
func (_u *MessageCursorUpdate) SetNillableLastProcessedMessageID(v *int64) *MessageCursorUpdate {
	if v != nil {
		_u.SetLastProcessedMessageID(*v)
	}
	return _u
}

// AddLastProcessedMessageID adds value to the "last_processed_message_id" field.
func (_u *MessageCursorUpdate) AddLastProcessedMessageID(v int64) *MessageCursorUpdate {
	_u.mutation.AddLastProcessedMessageID(v)
	return _u
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (_u *MessageCursorUpdate) SetLastProcessedAt(v time.Time) *MessageCursorUpdate {
	_u.mutation.SetLastProcessedAt(v)
	return _u
}

// SetNillableLastProcessedAt sets the "last_processed_at" field if the given value is not nil.
func (_u *MessageCursorUpdate) SetNillableLastProcessedAt(v *time.Time) *MessageCursorUpdate {
	if v != nil {
		_u.SetLastProcessedAt(*v)
	}
	return _u
}

// Mutation returns the MessageCursorMutation object of the builder.
func (_u *MessageCursorUpdate) Mutation() *MessageCursorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageCursorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageCursorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageCursorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageCursorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageCursorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(messagecursor.Table, messagecursor.Columns, sqlgraph.NewFieldSpec(messagecursor.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(messagecursor.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(messagecursor.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastProcessedMessageID(); ok {
		_spec.SetField(messagecursor.FieldLastProcessedMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastProcessedMessageID(); ok {
		_spec.AddField(messagecursor.FieldLastProcessedMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastProcessedAt(); ok {
		_spec.SetField(messagecursor.FieldLastProcessedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagecursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageCursorUpdateOne is the builder for updating a single MessageCursor entity.
type MessageCursorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageCursorMutation
}

// SetChatID sets the "chat_id" field.
func (_u *MessageCursorUpdateOne) SetChatID(v int64) *MessageCursorUpdateOne {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *MessageCursorUpdateOne) SetNillableChatID(v *int64) *MessageCursorUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *MessageCursorUpdateOne) AddChatID(v int64) *MessageCursorUpdateOne {
	_u.mutation.AddChatID(v)
	return _u
}

// SetLastProcessedMessageID sets the "last_processed_message_id" field.
func (_u *MessageCursorUpdateOne) SetLastProcessedMessageID(v int64) *MessageCursorUpdateOne {
	_u.mutation.ResetLastProcessedMessageID()
	_u.mutation.SetLastProcessedMessageID(v)
	return _u
}

// SetNillableLastProcessedMessageID sets the "last_processed_message_id" field if the given value is not nil.
func (_u *MessageCursorUpdateOne) SetNillableLastProcessedMessageID(v *int64) *MessageCursorUpdateOne {
	if v != nil {
		_u.SetLastProcessedMessageID(*v)
	}
	return _u
}

// AddLastProcessedMessageID adds value to the "last_processed_message_id" field.
func (_u *MessageCursorUpdateOne) AddLastProcessedMessageID(v int64) *MessageCursorUpdateOne {
	_u.mutation.AddLastProcessedMessageID(v)
	return _u
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (_u *MessageCursorUpdateOne) SetLastProcessedAt(v time.Time) *MessageCursorUpdateOne {
	_u.mutation.SetLastProcessedAt(v)
	return _u
}

// SetNillableLastProcessedAt sets the "last_processed_at" field if the given value is not nil.
func (_u *MessageCursorUpdateOne) SetNillableLastProcessedAt(v *time.Time) *MessageCursorUpdateOne {
	if v != nil {
		_u.SetLastProcessedAt(*v)
	}
	return _u
}

// Mutation returns the MessageCursorMutation object of the builder.
func (_u *MessageCursorUpdateOne) Mutation() *MessageCursorMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageCursorUpdate builder.
func (_u *MessageCursorUpdateOne) Where(ps ...predicate.MessageCursor) *MessageCursorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageCursorUpdateOne) Select(field string, fields ...string) *MessageCursorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageCursor entity.
func (_u *MessageCursorUpdateOne) Save(ctx context.Context) (*MessageCursor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageCursorUpdateOne) SaveX(ctx context.Context) *MessageCursor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageCursorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageCursorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageCursorUpdateOne) sqlSave(ctx context.Context) (_node *MessageCursor, err error) {
	_spec := sqlgraph.NewUpdateSpec(messagecursor.Table, messagecursor.Columns, sqlgraph.NewFieldSpec(messagecursor.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageCursor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagecursor.FieldID)
		for _, f := range fields {
			if !messagecursor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagecursor.FieldID {
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
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(messagecursor.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(messagecursor.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastProcessedMessageID(); ok {
		_spec.SetField(messagecursor.FieldLastProcessedMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastProcessedMessageID(); ok {
		_spec.AddField(messagecursor.FieldLastProcessedMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastProcessedAt(); ok {
		_spec.SetField(messagecursor.FieldLastProcessedAt, field.TypeTime, value)
	}
	_node = &MessageCursor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagecursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
