// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/protocolauditlog"
)

// ProtocolAuditLogCreate is the builder for creating a ProtocolAuditLog entity.
type ProtocolAuditLogCreate struct {
	config
	mutation *ProtocolAuditLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProtocolAuditLogCreate) SetUserID(v int64) *ProtocolAuditLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ProtocolAuditLogCreate) SetAction(v string) *ProtocolAuditLogCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ProtocolAuditLogCreate) SetReason(v string) *ProtocolAuditLogCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ProtocolAuditLogCreate) SetNillableReason(v *string) *ProtocolAuditLogCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetPerformer sets the "performer" field.
func (_c *ProtocolAuditLogCreate) SetPerformer(v string) *ProtocolAuditLogCreate {
	_c.mutation.SetPerformer(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProtocolAuditLogCreate) SetCreatedAt(v time.Time) *ProtocolAuditLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProtocolAuditLogCreate) SetNillableCreatedAt(v *time.Time) *ProtocolAuditLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProtocolAuditLogCreate) SetID(v string) *ProtocolAuditLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProtocolAuditLogMutation object of the builder.
func (_c *ProtocolAuditLogCreate) Mutation() *ProtocolAuditLogMutation {
	return _c.mutation
}

// Save creates the ProtocolAuditLog in the database.
func (_c *ProtocolAuditLogCreate) Save(ctx context.Context) (*ProtocolAuditLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProtocolAuditLogCreate) SaveX(ctx context.Context) *ProtocolAuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProtocolAuditLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProtocolAuditLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProtocolAuditLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := protocolauditlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProtocolAuditLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProtocolAuditLog.user_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ProtocolAuditLog.action"`)}
	}
	if _, ok := _c.mutation.Performer(); !ok {
		return &ValidationError{Name: "performer", err: errors.New(`ent: missing required field "ProtocolAuditLog.performer"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProtocolAuditLog.created_at"`)}
	}
	return nil
}

func (_c *ProtocolAuditLogCreate) sqlSave(ctx context.Context) (*ProtocolAuditLog, error) {
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
			return nil, fmt.Errorf("unexpected ProtocolAuditLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProtocolAuditLogCreate) createSpec() (*ProtocolAuditLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ProtocolAuditLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(protocolauditlog.Table, sqlgraph.NewFieldSpec(protocolauditlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(protocolauditlog.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(protocolauditlog.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(protocolauditlog.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Performer(); ok {
		_spec.SetField(protocolauditlog.FieldPerformer, field.TypeString, value)
		_node.Performer = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(protocolauditlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProtocolAuditLogCreateBulk is the builder for creating many ProtocolAuditLog entities in bulk.
type ProtocolAuditLogCreateBulk struct {
	config
	err      error
	builders []*ProtocolAuditLogCreate
}

// Save creates the ProtocolAuditLog entities in the database.
func (_c *ProtocolAuditLogCreateBulk) Save(ctx context.Context) ([]*ProtocolAuditLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProtocolAuditLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProtocolAuditLogMutation)
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
func (_c *ProtocolAuditLogCreateBulk) SaveX(ctx context.Context) []*ProtocolAuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProtocolAuditLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProtocolAuditLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
