// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/quarantinemessage"
)

// QuarantineMessageCreate is the builder for creating a QuarantineMessage entity.
type QuarantineMessageCreate struct {
	config
	mutation *QuarantineMessageMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuarantineMessageCreate) SetUserID(v int64) *QuarantineMessageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *QuarantineMessageCreate) SetChatID(v int64) *QuarantineMessageCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *QuarantineMessageCreate) SetMessageID(v int64) *QuarantineMessageCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *QuarantineMessageCreate) SetNillableMessageID(v *int64) *QuarantineMessageCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *QuarantineMessageCreate) SetText(v string) *QuarantineMessageCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *QuarantineMessageCreate) SetReceivedAt(v time.Time) *QuarantineMessageCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *QuarantineMessageCreate) SetExpiresAt(v time.Time) *QuarantineMessageCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *QuarantineMessageCreate) SetReleasedAt(v time.Time) *QuarantineMessageCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *QuarantineMessageCreate) SetNillableReleasedAt(v *time.Time) *QuarantineMessageCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuarantineMessageCreate) SetCreatedAt(v time.Time) *QuarantineMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuarantineMessageCreate) SetNillableCreatedAt(v *time.Time) *QuarantineMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuarantineMessageCreate) SetID(v string) *QuarantineMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuarantineMessageMutation object of the builder.
func (_c *QuarantineMessageCreate) Mutation() *QuarantineMessageMutation {
	return _c.mutation
}

// Save creates the QuarantineMessage in the database.
func (_c *QuarantineMessageCreate) Save(ctx context.Context) (*QuarantineMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuarantineMessageCreate) SaveX(ctx context.Context) *QuarantineMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuarantineMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuarantineMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuarantineMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quarantinemessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuarantineMessageCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuarantineMessage.user_id"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "QuarantineMessage.chat_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "QuarantineMessage.text"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "QuarantineMessage.received_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "QuarantineMessage.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuarantineMessage.created_at"`)}
	}
	return nil
}

func (_c *QuarantineMessageCreate) sqlSave(ctx context.Context) (*QuarantineMessage, error) {
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
			return nil, fmt.Errorf("unexpected QuarantineMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuarantineMessageCreate) createSpec() (*QuarantineMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &QuarantineMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quarantinemessage.Table, sqlgraph.NewFieldSpec(quarantinemessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quarantinemessage.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(quarantinemessage.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(quarantinemessage.FieldMessageID, field.TypeInt64, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(quarantinemessage.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(quarantinemessage.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(quarantinemessage.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(quarantinemessage.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quarantinemessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuarantineMessageCreateBulk is the builder for creating many QuarantineMessage entities in bulk.
type QuarantineMessageCreateBulk struct {
	config
	err      error
	builders []*QuarantineMessageCreate
}

// Save creates the QuarantineMessage entities in the database.
func (_c *QuarantineMessageCreateBulk) Save(ctx context.Context) ([]*QuarantineMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuarantineMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuarantineMessageMutation)
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
func (_c *QuarantineMessageCreateBulk) SaveX(ctx context.Context) []*QuarantineMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuarantineMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuarantineMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
