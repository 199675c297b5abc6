// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/statustransition"
)

// StatusTransitionCreate is the builder for creating a StatusTransition entity.
type StatusTransitionCreate struct {
	config
	mutation *StatusTransitionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *StatusTransitionCreate) SetUserID(v int64) *StatusTransitionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFromStatus sets the "from_status" field.
func (_c *StatusTransitionCreate) SetFromStatus(v string) *StatusTransitionCreate {
	_c.mutation.SetFromStatus(v)
	return _c
}

// SetToStatus sets the "to_status" field.
func (_c *StatusTransitionCreate) SetToStatus(v string) *StatusTransitionCreate {
	_c.mutation.SetToStatus(v)
	return _c
}

// SetDeltaLtvUsd sets the "delta_ltv_usd" field.
func (_c *StatusTransitionCreate) SetDeltaLtvUsd(v float64) *StatusTransitionCreate {
	_c.mutation.SetDeltaLtvUsd(v)
	return _c
}

// SetNillableDeltaLtvUsd sets the "delta_ltv_usd" field if the given value is not nil.
func (_c *StatusTransitionCreate) SetNillableDeltaLtvUsd(v *float64) *StatusTransitionCreate {
	if v != nil {
		_c.SetDeltaLtvUsd(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *StatusTransitionCreate) SetReason(v string) *StatusTransitionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *StatusTransitionCreate) SetNillableReason(v *string) *StatusTransitionCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetPerformer sets the "performer" field.
func (_c *StatusTransitionCreate) SetPerformer(v string) *StatusTransitionCreate {
	_c.mutation.SetPerformer(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StatusTransitionCreate) SetCreatedAt(v time.Time) *StatusTransitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StatusTransitionCreate) SetNillableCreatedAt(v *time.Time) *StatusTransitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StatusTransitionCreate) SetID(v string) *StatusTransitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StatusTransitionMutation object of the builder.
func (_c *StatusTransitionCreate) Mutation() *StatusTransitionMutation {
	return _c.mutation
}

// Save creates the StatusTransition in the database.
func (_c *StatusTransitionCreate) Save(ctx context.Context) (*StatusTransition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatusTransitionCreate) SaveX(ctx context.Context) *StatusTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusTransitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusTransitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StatusTransitionCreate) defaults() {
	if _, ok := _c.mutation.DeltaLtvUsd(); !ok {
		v := statustransition.DefaultDeltaLtvUsd
		_c.mutation.SetDeltaLtvUsd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := statustransition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatusTransitionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StatusTransition.user_id"`)}
	}
	if _, ok := _c.mutation.FromStatus(); !ok {
		return &ValidationError{Name: "from_status", err: errors.New(`ent: missing required field "StatusTransition.from_status"`)}
	}
	if _, ok := _c.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "StatusTransition.to_status"`)}
	}
	if _, ok := _c.mutation.DeltaLtvUsd(); !ok {
		return &ValidationError{Name: "delta_ltv_usd", err: errors.New(`ent: missing required field "StatusTransition.delta_ltv_usd"`)}
	}
	if _, ok := _c.mutation.Performer(); !ok {
		return &ValidationError{Name: "performer", err: errors.New(`ent: missing required field "StatusTransition.performer"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StatusTransition.created_at"`)}
	}
	return nil
}

func (_c *StatusTransitionCreate) sqlSave(ctx context.Context) (*StatusTransition, error) {
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
			return nil, fmt.Errorf("unexpected StatusTransition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StatusTransitionCreate) createSpec() (*StatusTransition, *sqlgraph.CreateSpec) {
	var (
		_node = &StatusTransition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statustransition.Table, sqlgraph.NewFieldSpec(statustransition.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(statustransition.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FromStatus(); ok {
		_spec.SetField(statustransition.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = value
	}
	if value, ok := _c.mutation.ToStatus(); ok {
		_spec.SetField(statustransition.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := _c.mutation.DeltaLtvUsd(); ok {
		_spec.SetField(statustransition.FieldDeltaLtvUsd, field.TypeFloat64, value)
		_node.DeltaLtvUsd = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(statustransition.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Performer(); ok {
		_spec.SetField(statustransition.FieldPerformer, field.TypeString, value)
		_node.Performer = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(statustransition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StatusTransitionCreateBulk is the builder for creating many StatusTransition entities in bulk.
type StatusTransitionCreateBulk struct {
	config
	err      error
	builders []*StatusTransitionCreate
}

// Save creates the StatusTransition entities in the database.
func (_c *StatusTransitionCreateBulk) Save(ctx context.Context) ([]*StatusTransition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StatusTransition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatusTransitionMutation)
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
func (_c *StatusTransitionCreateBulk) SaveX(ctx context.Context) []*StatusTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusTransitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusTransitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
