// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/messagecursor"
)

// MessageCursorCreate is the builder for creating a MessageCursor entity.
type MessageCursorCreate struct {
	config
	mutation *MessageCursorMutation
	hooks    []Hook
}

// SetChatID sets the "chat_id" field.
func (_c *MessageCursorCreate) SetChatID(v int64) *MessageCursorCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetLastProcessedMessageID sets the "last_processed_message_id" field.
func (_c *MessageCursorCreate) SetLastProcessedMessageID(v int64) *MessageCursorCreate {
	_c.mutation.SetLastProcessedMessageID(v)
	return _c
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (_c *MessageCursorCreate) SetLastProcessedAt(v time.Time) *MessageCursorCreate {
	_c.mutation.SetLastProcessedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCursorCreate) SetID(v int64) *MessageCursorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MessageCursorMutation object of the builder.
func (_c *MessageCursorCreate) Mutation() *MessageCursorMutation {
	return _c.mutation
}

// Save creates the MessageCursor in the database.
func (_c *MessageCursorCreate) Save(ctx context.Context) (*MessageCursor, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCursorCreate) SaveX(ctx context.Context) *MessageCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCursorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCursorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCursorCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "MessageCursor.chat_id"`)}
	}
	if _, ok := _c.mutation.LastProcessedMessageID(); !ok {
		return &ValidationError{Name: "last_processed_message_id", err: errors.New(`ent: missing required field "MessageCursor.last_processed_message_id"`)}
	}
	if _, ok := _c.mutation.LastProcessedAt(); !ok {
		return &ValidationError{Name: "last_processed_at", err: errors.New(`ent: missing required field "MessageCursor.last_processed_at"`)}
	}
	return nil
}

func (_c *MessageCursorCreate) sqlSave(ctx context.Context) (*MessageCursor, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCursorCreate) createSpec() (*MessageCursor, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageCursor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagecursor.Table, sqlgraph.NewFieldSpec(messagecursor.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(messagecursor.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.LastProcessedMessageID(); ok {
		_spec.SetField(messagecursor.FieldLastProcessedMessageID, field.TypeInt64, value)
		_node.LastProcessedMessageID = value
	}
	if value, ok := _c.mutation.LastProcessedAt(); ok {
		_spec.SetField(messagecursor.FieldLastProcessedAt, field.TypeTime, value)
		_node.LastProcessedAt = value
	}
	return _node, _spec
}

// MessageCursorCreateBulk is the builder for creating many MessageCursor entities in bulk.
type MessageCursorCreateBulk struct {
	config
	err      error
	builders []*MessageCursorCreate
}

// Save creates the MessageCursor entities in the database.
func (_c *MessageCursorCreateBulk) Save(ctx context.Context) ([]*MessageCursor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageCursor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageCursorMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *MessageCursorCreateBulk) SaveX(ctx context.Context) []*MessageCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCursorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCursorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
