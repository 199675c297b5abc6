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
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
)

// UserCurrentStatusUpdate is the builder for updating UserCurrentStatus entities.
type UserCurrentStatusUpdate struct {
	config
	hooks    []Hook
	mutation *UserCurrentStatusMutation
}

// Where appends a list predicates to the UserCurrentStatusUpdate builder.
func (_u *UserCurrentStatusUpdate) Where(ps ...predicate.UserCurrentStatus) *UserCurrentStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerStatus sets the "customer_status" field.
func (_u *UserCurrentStatusUpdate) SetCustomerStatus(v usercurrentstatus.CustomerStatus) *UserCurrentStatusUpdate {
	_u.mutation.SetCustomerStatus(v)
	return _u
}

// SetNillableCustomerStatus sets the "customer_status" field if the given value is not nil.
func (_u *UserCurrentStatusUpdate) SetNillableCustomerStatus(v *usercurrentstatus.CustomerStatus) *UserCurrentStatusUpdate {
	if v != nil {
		_u.SetCustomerStatus(*v)
	}
	return _u
}

// SetLtvTotalUsd sets the "ltv_total_usd" field.
func (_u *UserCurrentStatusUpdate) SetLtvTotalUsd(v float64) *UserCurrentStatusUpdate {
	_u.mutation.ResetLtvTotalUsd()
	_u.mutation.SetLtvTotalUsd(v)
	return _u
}

// SetNillableLtvTotalUsd sets the "ltv_total_usd" field if the given value is not nil.
func (_u *UserCurrentStatusUpdate) SetNillableLtvTotalUsd(v *float64) *UserCurrentStatusUpdate {
	if v != nil {
		_u.SetLtvTotalUsd(*v)
	}
	return _u
}

// AddLtvTotalUsd adds value to the "ltv_total_usd" field.
func (_u *UserCurrentStatusUpdate) AddLtvTotalUsd(v float64) *UserCurrentStatusUpdate {
	_u.mutation.AddLtvTotalUsd(v)
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *UserCurrentStatusUpdate) SetNickname(v string) *UserCurrentStatusUpdate {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *UserCurrentStatusUpdate) SetNillableNickname(v *string) *UserCurrentStatusUpdate {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// ClearNickname clears the value of the "nickname" field.
func (_u *UserCurrentStatusUpdate) ClearNickname() *UserCurrentStatusUpdate {
	_u.mutation.ClearNickname()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserCurrentStatusUpdate) SetUpdatedAt(v time.Time) *UserCurrentStatusUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserCurrentStatusMutation object of the builder.
func (_u *UserCurrentStatusUpdate) Mutation() *UserCurrentStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserCurrentStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserCurrentStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserCurrentStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserCurrentStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserCurrentStatusUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usercurrentstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserCurrentStatusUpdate) check() error {
	if v, ok := _u.mutation.CustomerStatus(); ok {
		if err := usercurrentstatus.CustomerStatusValidator(v); err != nil {
			return &ValidationError{Name: "customer_status", err: fmt.Errorf(`ent: validator failed for field "UserCurrentStatus.customer_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UserCurrentStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usercurrentstatus.Table, usercurrentstatus.Columns, sqlgraph.NewFieldSpec(usercurrentstatus.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerStatus(); ok {
		_spec.SetField(usercurrentstatus.FieldCustomerStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LtvTotalUsd(); ok {
		_spec.SetField(usercurrentstatus.FieldLtvTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLtvTotalUsd(); ok {
		_spec.AddField(usercurrentstatus.FieldLtvTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(usercurrentstatus.FieldNickname, field.TypeString, value)
	}
	if _u.mutation.NicknameCleared() {
		_spec.ClearField(usercurrentstatus.FieldNickname, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usercurrentstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usercurrentstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserCurrentStatusUpdateOne is the builder for updating a single UserCurrentStatus entity.
type UserCurrentStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserCurrentStatusMutation
}

// SetCustomerStatus sets the "customer_status" field.
func (_u *UserCurrentStatusUpdateOne) SetCustomerStatus(v usercurrentstatus.CustomerStatus) *UserCurrentStatusUpdateOne {
	_u.mutation.SetCustomerStatus(v)
	return _u
}

// SetNillableCustomerStatus sets the "customer_status" field if the given value is not nil.
func (_u *UserCurrentStatusUpdateOne) SetNillableCustomerStatus(v *usercurrentstatus.CustomerStatus) *UserCurrentStatusUpdateOne {
	if v != nil {
		_u.SetCustomerStatus(*v)
	}
	return _u
}

// SetLtvTotalUsd sets the "ltv_total_usd" field.
func (_u *UserCurrentStatusUpdateOne) SetLtvTotalUsd(v float64) *UserCurrentStatusUpdateOne {
	_u.mutation.ResetLtvTotalUsd()
	_u.mutation.SetLtvTotalUsd(v)
	return _u
}

// SetNillableLtvTotalUsd sets the "ltv_total_usd" field if the given value is not nil.
func (_u *UserCurrentStatusUpdateOne) SetNillableLtvTotalUsd(v *float64) *UserCurrentStatusUpdateOne {
	if v != nil {
		_u.SetLtvTotalUsd(*v)
	}
	return _u
}

// AddLtvTotalUsd adds value to the "ltv_total_usd" field.
func (_u *UserCurrentStatusUpdateOne) AddLtvTotalUsd(v float64) *UserCurrentStatusUpdateOne {
	_u.mutation.AddLtvTotalUsd(v)
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *UserCurrentStatusUpdateOne) SetNickname(v string) *UserCurrentStatusUpdateOne {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *UserCurrentStatusUpdateOne) SetNillableNickname(v *string) *UserCurrentStatusUpdateOne {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// ClearNickname clears the value of the "nickname" field.
func (_u *UserCurrentStatusUpdateOne) ClearNickname() *UserCurrentStatusUpdateOne {
	_u.mutation.ClearNickname()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserCurrentStatusUpdateOne) SetUpdatedAt(v time.Time) *UserCurrentStatusUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserCurrentStatusMutation object of the builder.
func (_u *UserCurrentStatusUpdateOne) Mutation() *UserCurrentStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserCurrentStatusUpdate builder.
func (_u *UserCurrentStatusUpdateOne) Where(ps ...predicate.UserCurrentStatus) *UserCurrentStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserCurrentStatusUpdateOne) Select(field string, fields ...string) *UserCurrentStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserCurrentStatus entity.
func (_u *UserCurrentStatusUpdateOne) Save(ctx context.Context) (*UserCurrentStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserCurrentStatusUpdateOne) SaveX(ctx context.Context) *UserCurrentStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserCurrentStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserCurrentStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserCurrentStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usercurrentstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserCurrentStatusUpdateOne) check() error {
	if v, ok := _u.mutation.CustomerStatus(); ok {
		if err := usercurrentstatus.CustomerStatusValidator(v); err != nil {
			return &ValidationError{Name: "customer_status", err: fmt.Errorf(`ent: validator failed for field "UserCurrentStatus.customer_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UserCurrentStatusUpdateOne) sqlSave(ctx context.Context) (_node *UserCurrentStatus, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usercurrentstatus.Table, usercurrentstatus.Columns, sqlgraph.NewFieldSpec(usercurrentstatus.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserCurrentStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usercurrentstatus.FieldID)
		for _, f := range fields {
			if !usercurrentstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usercurrentstatus.FieldID {
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
	if value, ok := _u.mutation.CustomerStatus(); ok {
		_spec.SetField(usercurrentstatus.FieldCustomerStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LtvTotalUsd(); ok {
		_spec.SetField(usercurrentstatus.FieldLtvTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLtvTotalUsd(); ok {
		_spec.AddField(usercurrentstatus.FieldLtvTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(usercurrentstatus.FieldNickname, field.TypeString, value)
	}
	if _u.mutation.NicknameCleared() {
		_spec.ClearField(usercurrentstatus.FieldNickname, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usercurrentstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserCurrentStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usercurrentstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
