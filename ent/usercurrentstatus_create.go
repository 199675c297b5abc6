// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
)

// UserCurrentStatusCreate is the builder for creating a UserCurrentStatus entity.
type UserCurrentStatusCreate struct {
	config
	mutation *UserCurrentStatusMutation
	hooks    []Hook
}

// SetCustomerStatus sets the "customer_status" field.
func (_c *UserCurrentStatusCreate) SetCustomerStatus(v usercurrentstatus.CustomerStatus) *UserCurrentStatusCreate {
	_c.mutation.SetCustomerStatus(v)
	return _c
}

// SetNillableCustomerStatus sets the "customer_status" field if the given value is not nil.
func (_c *UserCurrentStatusCreate) SetNillableCustomerStatus(v *usercurrentstatus.CustomerStatus) *UserCurrentStatusCreate {
	if v != nil {
		_c.SetCustomerStatus(*v)
	}
	return _c
}

// SetLtvTotalUsd sets the "ltv_total_usd" field.
func (_c *UserCurrentStatusCreate) SetLtvTotalUsd(v float64) *UserCurrentStatusCreate {
	_c.mutation.SetLtvTotalUsd(v)
	return _c
}

// SetNillableLtvTotalUsd sets the "ltv_total_usd" field if the given value is not nil.
func (_c *UserCurrentStatusCreate) SetNillableLtvTotalUsd(v *float64) *UserCurrentStatusCreate {
	if v != nil {
		_c.SetLtvTotalUsd(*v)
	}
	return _c
}

// SetNickname sets the "nickname" field.
func (_c *UserCurrentStatusCreate) SetNickname(v string) *UserCurrentStatusCreate {
	_c.mutation.SetNickname(v)
	return _c
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_c *UserCurrentStatusCreate) SetNillableNickname(v *string) *UserCurrentStatusCreate {
	if v != nil {
		_c.SetNickname(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCurrentStatusCreate) SetUpdatedAt(v time.Time) *UserCurrentStatusCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCurrentStatusCreate) SetNillableUpdatedAt(v *time.Time) *UserCurrentStatusCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCurrentStatusCreate) SetID(v int64) *UserCurrentStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserCurrentStatusMutation object of the builder.
func (_c *UserCurrentStatusCreate) Mutation() *UserCurrentStatusMutation {
	return _c.mutation
}

// Save creates the UserCurrentStatus in the database.
func (_c *UserCurrentStatusCreate) Save(ctx context.Context) (*UserCurrentStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCurrentStatusCreate) SaveX(ctx context.Context) *UserCurrentStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCurrentStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCurrentStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCurrentStatusCreate) defaults() {
	if _, ok := _c.mutation.CustomerStatus(); !ok {
		v := usercurrentstatus.DefaultCustomerStatus
		_c.mutation.SetCustomerStatus(v)
	}
	if _, ok := _c.mutation.LtvTotalUsd(); !ok {
		v := usercurrentstatus.DefaultLtvTotalUsd
		_c.mutation.SetLtvTotalUsd(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usercurrentstatus.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCurrentStatusCreate) check() error {
	if _, ok := _c.mutation.CustomerStatus(); !ok {
		return &ValidationError{Name: "customer_status", err: errors.New(`ent: missing required field "UserCurrentStatus.customer_status"`)}
	}
	if v, ok := _c.mutation.CustomerStatus(); ok {
		if err := usercurrentstatus.CustomerStatusValidator(v); err != nil {
			return &ValidationError{Name: "customer_status", err: fmt.Errorf(`ent: validator failed for field "UserCurrentStatus.customer_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LtvTotalUsd(); !ok {
		return &ValidationError{Name: "ltv_total_usd", err: errors.New(`ent: missing required field "UserCurrentStatus.ltv_total_usd"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserCurrentStatus.updated_at"`)}
	}
	return nil
}

func (_c *UserCurrentStatusCreate) sqlSave(ctx context.Context) (*UserCurrentStatus, error) {
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

func (_c *UserCurrentStatusCreate) createSpec() (*UserCurrentStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &UserCurrentStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usercurrentstatus.Table, sqlgraph.NewFieldSpec(usercurrentstatus.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CustomerStatus(); ok {
		_spec.SetField(usercurrentstatus.FieldCustomerStatus, field.TypeEnum, value)
		_node.CustomerStatus = value
	}
	if value, ok := _c.mutation.LtvTotalUsd(); ok {
		_spec.SetField(usercurrentstatus.FieldLtvTotalUsd, field.TypeFloat64, value)
		_node.LtvTotalUsd = value
	}
	if value, ok := _c.mutation.Nickname(); ok {
		_spec.SetField(usercurrentstatus.FieldNickname, field.TypeString, value)
		_node.Nickname = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usercurrentstatus.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserCurrentStatusCreateBulk is the builder for creating many UserCurrentStatus entities in bulk.
type UserCurrentStatusCreateBulk struct {
	config
	err      error
	builders []*UserCurrentStatusCreate
}

// Save creates the UserCurrentStatus entities in the database.
func (_c *UserCurrentStatusCreateBulk) Save(ctx context.Context) ([]*UserCurrentStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserCurrentStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserCurrentStatusMutation)
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
func (_c *UserCurrentStatusCreateBulk) SaveX(ctx context.Context) []*UserCurrentStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCurrentStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCurrentStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
