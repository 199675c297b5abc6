// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/protocolstatus"
)

// ProtocolStatusCreate is the builder for creating a ProtocolStatus entity.
type ProtocolStatusCreate struct {
	config
	mutation *ProtocolStatusMutation
	hooks    []Hook
}

// SetActive sets the "active" field.
func (_c *ProtocolStatusCreate) SetActive(v bool) *ProtocolStatusCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ProtocolStatusCreate) SetNillableActive(v *bool) *ProtocolStatusCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetSince sets the "since" field.
func (_c *ProtocolStatusCreate) SetSince(v time.Time) *ProtocolStatusCreate {
	_c.mutation.SetSince(v)
	return _c
}

// SetNillableSince sets the "since" field if the given value is not nil.
func (_c *ProtocolStatusCreate) SetNillableSince(v *time.Time) *ProtocolStatusCreate {
	if v != nil {
		_c.SetSince(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *ProtocolStatusCreate) SetReason(v string) *ProtocolStatusCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ProtocolStatusCreate) SetNillableReason(v *string) *ProtocolStatusCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetPerformer sets the "performer" field.
func (_c *ProtocolStatusCreate) SetPerformer(v string) *ProtocolStatusCreate {
	_c.mutation.SetPerformer(v)
	return _c
}

// SetNillablePerformer sets the "performer" field if the given value is not nil.
func (_c *ProtocolStatusCreate) SetNillablePerformer(v *string) *ProtocolStatusCreate {
	if v != nil {
		_c.SetPerformer(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProtocolStatusCreate) SetUpdatedAt(v time.Time) *ProtocolStatusCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProtocolStatusCreate) SetNillableUpdatedAt(v *time.Time) *ProtocolStatusCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProtocolStatusCreate) SetID(v int64) *ProtocolStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProtocolStatusMutation object of the builder.
func (_c *ProtocolStatusCreate) Mutation() *ProtocolStatusMutation {
	return _c.mutation
}

// Save creates the ProtocolStatus in the database.
func (_c *ProtocolStatusCreate) Save(ctx context.Context) (*ProtocolStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProtocolStatusCreate) SaveX(ctx context.Context) *ProtocolStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProtocolStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProtocolStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProtocolStatusCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := protocolstatus.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := protocolstatus.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProtocolStatusCreate) check() error {
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ProtocolStatus.active"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProtocolStatus.updated_at"`)}
	}
	return nil
}

func (_c *ProtocolStatusCreate) sqlSave(ctx context.Context) (*ProtocolStatus, error) {
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

func (_c *ProtocolStatusCreate) createSpec() (*ProtocolStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &ProtocolStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(protocolstatus.Table, sqlgraph.NewFieldSpec(protocolstatus.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(protocolstatus.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Since(); ok {
		_spec.SetField(protocolstatus.FieldSince, field.TypeTime, value)
		_node.Since = &value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(protocolstatus.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.Performer(); ok {
		_spec.SetField(protocolstatus.FieldPerformer, field.TypeString, value)
		_node.Performer = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(protocolstatus.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProtocolStatusCreateBulk is the builder for creating many ProtocolStatus entities in bulk.
type ProtocolStatusCreateBulk struct {
	config
	err      error
	builders []*ProtocolStatusCreate
}

// Save creates the ProtocolStatus entities in the database.
func (_c *ProtocolStatusCreateBulk) Save(ctx context.Context) ([]*ProtocolStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProtocolStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProtocolStatusMutation)
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
func (_c *ProtocolStatusCreateBulk) SaveX(ctx context.Context) []*ProtocolStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProtocolStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProtocolStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
