// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
	"github.com/halfmoonlabs/chatloop/ent/statustransition"
)

// StatusTransitionUpdate is the builder for updating StatusTransition entities.
type StatusTransitionUpdate struct {
	config
	hooks    []Hook
	mutation *StatusTransitionMutation
}

// Where appends a list predicates to the StatusTransitionUpdate builder.
func (_u *StatusTransitionUpdate) Where(ps ...predicate.StatusTransition) *StatusTransitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StatusTransitionUpdate) SetUserID(v int64) *StatusTransitionUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StatusTransitionUpdate) SetNillableUserID(v *int64) *StatusTransitionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *StatusTransitionUpdate) AddUserID(v int64) *StatusTransitionUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetFromStatus sets the "from_status" field.
func (_u *StatusTransitionUpdate) SetFromStatus(v string) *StatusTransitionUpdate {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *StatusTransitionUpdate) SetNillableFromStatus(v *string) *StatusTransitionUpdate {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *StatusTransitionUpdate) SetToStatus(v string) *StatusTransitionUpdate {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *StatusTransitionUpdate) SetNillableToStatus(v *string) *StatusTransitionUpdate {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetDeltaLtvUsd sets the "delta_ltv_usd" field.
func (_u *StatusTransitionUpdate) SetDeltaLtvUsd(v float64) *StatusTransitionUpdate {
	_u.mutation.ResetDeltaLtvUsd()
	_u.mutation.SetDeltaLtvUsd(v)
	return _u
}

// SetNillableDeltaLtvUsd sets the "delta_ltv_usd" field if the given value is not nil.
func (_u *StatusTransitionUpdate) SetNillableDeltaLtvUsd(v *float64) *StatusTransitionUpdate {
	if v != nil {
		_u.SetDeltaLtvUsd(*v)
	}
	return _u
}

// AddDeltaLtvUsd adds value to the "delta_ltv_usd" field.
func (_u *StatusTransitionUpdate) AddDeltaLtvUsd(v float64) *StatusTransitionUpdate {
	_u.mutation.AddDeltaLtvUsd(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *StatusTransitionUpdate) SetReason(v string) *StatusTransitionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *StatusTransitionUpdate) SetNillableReason(v *string) *StatusTransitionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *StatusTransitionUpdate) ClearReason() *StatusTransitionUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetPerformer sets the "performer" field.
func (_u *StatusTransitionUpdate) SetPerformer(v string) *StatusTransitionUpdate {
	_u.mutation.SetPerformer(v)
	return _u
}

// SetNillablePerformer sets the "performer" field if the given value is not nil.
func (_u *StatusTransitionUpdate) SetNillablePerformer(v *string) *StatusTransitionUpdate {
	if v != nil {
		_u.SetPerformer(*v)
	}
	return _u
}

// Mutation returns the StatusTransitionMutation object of the builder.
func (_u *StatusTransitionUpdate) Mutation() *StatusTransitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StatusTransitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatusTransitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StatusTransitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatusTransitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StatusTransitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(statustransition.Table, statustransition.Columns, sqlgraph.NewFieldSpec(statustransition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(statustransition.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(statustransition.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(statustransition.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(statustransition.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeltaLtvUsd(); ok {
		_spec.SetField(statustransition.FieldDeltaLtvUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaLtvUsd(); ok {
		_spec.AddField(statustransition.FieldDeltaLtvUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(statustransition.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(statustransition.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Performer(); ok {
		_spec.SetField(statustransition.FieldPerformer, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statustransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StatusTransitionUpdateOne is the builder for updating a single StatusTransition entity.
type StatusTransitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StatusTransitionMutation
}

// SetUserID sets the "user_id" field.
func (_u *StatusTransitionUpdateOne) SetUserID(v int64) *StatusTransitionUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StatusTransitionUpdateOne) SetNillableUserID(v *int64) *StatusTransitionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *StatusTransitionUpdateOne) AddUserID(v int64) *StatusTransitionUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetFromStatus sets the "from_status" field.
func (_u *StatusTransitionUpdateOne) SetFromStatus(v string) *StatusTransitionUpdateOne {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *StatusTransitionUpdateOne) SetNillableFromStatus(v *string) *StatusTransitionUpdateOne {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *StatusTransitionUpdateOne) SetToStatus(v string) *StatusTransitionUpdateOne {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *StatusTransitionUpdateOne) SetNillableToStatus(v *string) *StatusTransitionUpdateOne {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetDeltaLtvUsd sets the "delta_ltv_usd" field.
func (_u *StatusTransitionUpdateOne) SetDeltaLtvUsd(v float64) *StatusTransitionUpdateOne {
	_u.mutation.ResetDeltaLtvUsd()
	_u.mutation.SetDeltaLtvUsd(v)
	return _u
}

// SetNillableDeltaLtvUsd sets the "delta_ltv_usd" field if the given value is not nil.
func (_u *StatusTransitionUpdateOne) SetNillableDeltaLtvUsd(v *float64) *StatusTransitionUpdateOne {
	if v != nil {
		_u.SetDeltaLtvUsd(*v)
	}
	return _u
}

// AddDeltaLtvUsd adds value to the "delta_ltv_usd" field.
func (_u *StatusTransitionUpdateOne) AddDeltaLtvUsd(v float64) *StatusTransitionUpdateOne {
	_u.mutation.AddDeltaLtvUsd(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *StatusTransitionUpdateOne) SetReason(v string) *StatusTransitionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *StatusTransitionUpdateOne) SetNillableReason(v *string) *StatusTransitionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *StatusTransitionUpdateOne) ClearReason() *StatusTransitionUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetPerformer sets the "performer" field.
func (_u *StatusTransitionUpdateOne) SetPerformer(v string) *StatusTransitionUpdateOne {
	_u.mutation.SetPerformer(v)
	return _u
}

// SetNillablePerformer sets the "performer" field if the given value is not nil.
func (_u *StatusTransitionUpdateOne) SetNillablePerformer(v *string) *StatusTransitionUpdateOne {
	if v != nil {
		_u.SetPerformer(*v)
	}
	return _u
}

// Mutation returns the StatusTransitionMutation object of the builder.
func (_u *StatusTransitionUpdateOne) Mutation() *StatusTransitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StatusTransitionUpdate builder.
func (_u *StatusTransitionUpdateOne) Where(ps ...predicate.StatusTransition) *StatusTransitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StatusTransitionUpdateOne) Select(field string, fields ...string) *StatusTransitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StatusTransition entity.
func (_u *StatusTransitionUpdateOne) Save(ctx context.Context) (*StatusTransition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatusTransitionUpdateOne) SaveX(ctx context.Context) *StatusTransition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StatusTransitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatusTransitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StatusTransitionUpdateOne) sqlSave(ctx context.Context) (_node *StatusTransition, err error) {
	_spec := sqlgraph.NewUpdateSpec(statustransition.Table, statustransition.Columns, sqlgraph.NewFieldSpec(statustransition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StatusTransition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, statustransition.FieldID)
		for _, f := range fields {
			if !statustransition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != statustransition.FieldID {
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
		_spec.SetField(statustransition.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(statustransition.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(statustransition.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(statustransition.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeltaLtvUsd(); ok {
		_spec.SetField(statustransition.FieldDeltaLtvUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaLtvUsd(); ok {
		_spec.AddField(statustransition.FieldDeltaLtvUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(statustransition.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(statustransition.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Performer(); ok {
		_spec.SetField(statustransition.FieldPerformer, field.TypeString, value)
	}
	_node = &StatusTransition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statustransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
