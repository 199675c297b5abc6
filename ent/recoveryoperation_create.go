// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/recoveryoperation"
)

// RecoveryOperationCreate is the builder for creating a RecoveryOperation entity.
type RecoveryOperationCreate struct {
	config
	mutation *RecoveryOperationMutation
	hooks    []Hook
}

// SetStartedAt sets the "started_at" field.
func (_c *RecoveryOperationCreate) SetStartedAt(v time.Time) *RecoveryOperationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RecoveryOperationCreate) SetNillableStartedAt(v *time.Time) *RecoveryOperationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RecoveryOperationCreate) SetFinishedAt(v time.Time) *RecoveryOperationCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RecoveryOperationCreate) SetNillableFinishedAt(v *time.Time) *RecoveryOperationCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetUsersScanned sets the "users_scanned" field.
func (_c *RecoveryOperationCreate) SetUsersScanned(v int) *RecoveryOperationCreate {
	_c.mutation.SetUsersScanned(v)
	return _c
}

// SetNillableUsersScanned sets the "users_scanned" field if the given value is not nil.
func (_c *RecoveryOperationCreate) SetNillableUsersScanned(v *int) *RecoveryOperationCreate {
	if v != nil {
		_c.SetUsersScanned(*v)
	}
	return _c
}

// SetMessagesRecovered sets the "messages_recovered" field.
func (_c *RecoveryOperationCreate) SetMessagesRecovered(v int) *RecoveryOperationCreate {
	_c.mutation.SetMessagesRecovered(v)
	return _c
}

// SetNillableMessagesRecovered sets the "messages_recovered" field if the given value is not nil.
func (_c *RecoveryOperationCreate) SetNillableMessagesRecovered(v *int) *RecoveryOperationCreate {
	if v != nil {
		_c.SetMessagesRecovered(*v)
	}
	return _c
}

// SetErrors sets the "errors" field.
func (_c *RecoveryOperationCreate) SetErrors(v int) *RecoveryOperationCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_c *RecoveryOperationCreate) SetNillableErrors(v *int) *RecoveryOperationCreate {
	if v != nil {
		_c.SetErrors(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecoveryOperationCreate) SetStatus(v recoveryoperation.Status) *RecoveryOperationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecoveryOperationCreate) SetNillableStatus(v *recoveryoperation.Status) *RecoveryOperationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RecoveryOperationCreate) SetErrorMessage(v string) *RecoveryOperationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RecoveryOperationCreate) SetNillableErrorMessage(v *string) *RecoveryOperationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecoveryOperationCreate) SetID(v string) *RecoveryOperationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RecoveryOperationMutation object of the builder.
func (_c *RecoveryOperationCreate) Mutation() *RecoveryOperationMutation {
	return _c.mutation
}

// Save creates the RecoveryOperation in the database.
func (_c *RecoveryOperationCreate) Save(ctx context.Context) (*RecoveryOperation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecoveryOperationCreate) SaveX(ctx context.Context) *RecoveryOperation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecoveryOperationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecoveryOperationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecoveryOperationCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := recoveryoperation.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.UsersScanned(); !ok {
		v := recoveryoperation.DefaultUsersScanned
		_c.mutation.SetUsersScanned(v)
	}
	if _, ok := _c.mutation.MessagesRecovered(); !ok {
		v := recoveryoperation.DefaultMessagesRecovered
		_c.mutation.SetMessagesRecovered(v)
	}
	if _, ok := _c.mutation.Errors(); !ok {
		v := recoveryoperation.DefaultErrors
		_c.mutation.SetErrors(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := recoveryoperation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecoveryOperationCreate) check() error {
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "RecoveryOperation.started_at"`)}
	}
	if _, ok := _c.mutation.UsersScanned(); !ok {
		return &ValidationError{Name: "users_scanned", err: errors.New(`ent: missing required field "RecoveryOperation.users_scanned"`)}
	}
	if _, ok := _c.mutation.MessagesRecovered(); !ok {
		return &ValidationError{Name: "messages_recovered", err: errors.New(`ent: missing required field "RecoveryOperation.messages_recovered"`)}
	}
	if _, ok := _c.mutation.Errors(); !ok {
		return &ValidationError{Name: "errors", err: errors.New(`ent: missing required field "RecoveryOperation.errors"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RecoveryOperation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := recoveryoperation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RecoveryOperation.status": %w`, err)}
		}
	}
	return nil
}

func (_c *RecoveryOperationCreate) sqlSave(ctx context.Context) (*RecoveryOperation, error) {
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
			return nil, fmt.Errorf("unexpected RecoveryOperation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecoveryOperationCreate) createSpec() (*RecoveryOperation, *sqlgraph.CreateSpec) {
	var (
		_node = &RecoveryOperation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recoveryoperation.Table, sqlgraph.NewFieldSpec(recoveryoperation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(recoveryoperation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(recoveryoperation.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.UsersScanned(); ok {
		_spec.SetField(recoveryoperation.FieldUsersScanned, field.TypeInt, value)
		_node.UsersScanned = value
	}
	if value, ok := _c.mutation.MessagesRecovered(); ok {
		_spec.SetField(recoveryoperation.FieldMessagesRecovered, field.TypeInt, value)
		_node.MessagesRecovered = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(recoveryoperation.FieldErrors, field.TypeInt, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recoveryoperation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(recoveryoperation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	return _node, _spec
}

// RecoveryOperationCreateBulk is the builder for creating many RecoveryOperation entities in bulk.
type RecoveryOperationCreateBulk struct {
	config
	err      error
	builders []*RecoveryOperationCreate
}

// Save creates the RecoveryOperation entities in the database.
func (_c *RecoveryOperationCreateBulk) Save(ctx context.Context) ([]*RecoveryOperation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecoveryOperation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecoveryOperationMutation)
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
func (_c *RecoveryOperationCreateBulk) SaveX(ctx context.Context) []*RecoveryOperation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecoveryOperationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecoveryOperationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
