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
	"github.com/halfmoonlabs/chatloop/ent/recoveryoperation"
)

// RecoveryOperationUpdate is the builder for updating RecoveryOperation entities.
type RecoveryOperationUpdate struct {
	config
	hooks    []Hook
	mutation *RecoveryOperationMutation
}

// Where appends a list predicates to the RecoveryOperationUpdate builder.
func (_u *RecoveryOperationUpdate) Where(ps ...predicate.RecoveryOperation) *RecoveryOperationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RecoveryOperationUpdate) SetFinishedAt(v time.Time) *RecoveryOperationUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RecoveryOperationUpdate) SetNillableFinishedAt(v *time.Time) *RecoveryOperationUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RecoveryOperationUpdate) ClearFinishedAt() *RecoveryOperationUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUsersScanned sets the "users_scanned" field.
func (_u *RecoveryOperationUpdate) SetUsersScanned(v int) *RecoveryOperationUpdate {
	_u.mutation.ResetUsersScanned()
	_u.mutation.SetUsersScanned(v)
	return _u
}

// SetNillableUsersScanned sets the "users_scanned" field if the given value is not nil.
func (_u *RecoveryOperationUpdate) SetNillableUsersScanned(v *int) *RecoveryOperationUpdate {
	if v != nil {
		_u.SetUsersScanned(*v)
	}
	return _u
}

// AddUsersScanned adds value to the "users_scanned" field.
func (_u *RecoveryOperationUpdate) AddUsersScanned(v int) *RecoveryOperationUpdate {
	_u.mutation.AddUsersScanned(v)
	return _u
}

// SetMessagesRecovered sets the "messages_recovered" field.
func (_u *RecoveryOperationUpdate) SetMessagesRecovered(v int) *RecoveryOperationUpdate {
	_u.mutation.ResetMessagesRecovered()
	_u.mutation.SetMessagesRecovered(v)
	return _u
}

// SetNillableMessagesRecovered sets the "messages_recovered" field if the given value is not nil.
func (_u *RecoveryOperationUpdate) SetNillableMessagesRecovered(v *int) *RecoveryOperationUpdate {
	if v != nil {
		_u.SetMessagesRecovered(*v)
	}
	return _u
}

// AddMessagesRecovered adds value to the "messages_recovered" field.
func (_u *RecoveryOperationUpdate) AddMessagesRecovered(v int) *RecoveryOperationUpdate {
	_u.mutation.AddMessagesRecovered(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *RecoveryOperationUpdate) SetErrors(v int) *RecoveryOperationUpdate {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *RecoveryOperationUpdate) SetNillableErrors(v *int) *RecoveryOperationUpdate {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *RecoveryOperationUpdate) AddErrors(v int) *RecoveryOperationUpdate {
	_u.mutation.AddErrors(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecoveryOperationUpdate) SetStatus(v recoveryoperation.Status) *RecoveryOperationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecoveryOperationUpdate) SetNillableStatus(v *recoveryoperation.Status) *RecoveryOperationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RecoveryOperationUpdate) SetErrorMessage(v string) *RecoveryOperationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RecoveryOperationUpdate) SetNillableErrorMessage(v *string) *RecoveryOperationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RecoveryOperationUpdate) ClearErrorMessage() *RecoveryOperationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the RecoveryOperationMutation object of the builder.
func (_u *RecoveryOperationUpdate) Mutation() *RecoveryOperationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecoveryOperationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecoveryOperationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecoveryOperationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecoveryOperationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecoveryOperationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recoveryoperation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RecoveryOperation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecoveryOperationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recoveryoperation.Table, recoveryoperation.Columns, sqlgraph.NewFieldSpec(recoveryoperation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(recoveryoperation.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(recoveryoperation.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UsersScanned(); ok {
		_spec.SetField(recoveryoperation.FieldUsersScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsersScanned(); ok {
		_spec.AddField(recoveryoperation.FieldUsersScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessagesRecovered(); ok {
		_spec.SetField(recoveryoperation.FieldMessagesRecovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessagesRecovered(); ok {
		_spec.AddField(recoveryoperation.FieldMessagesRecovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(recoveryoperation.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(recoveryoperation.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recoveryoperation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(recoveryoperation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(recoveryoperation.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recoveryoperation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecoveryOperationUpdateOne is the builder for updating a single RecoveryOperation entity.
type RecoveryOperationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecoveryOperationMutation
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RecoveryOperationUpdateOne) SetFinishedAt(v time.Time) *RecoveryOperationUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RecoveryOperationUpdateOne) SetNillableFinishedAt(v *time.Time) *RecoveryOperationUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RecoveryOperationUpdateOne) ClearFinishedAt() *RecoveryOperationUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUsersScanned sets the "users_scanned" field.
func (_u *RecoveryOperationUpdateOne) SetUsersScanned(v int) *RecoveryOperationUpdateOne {
	_u.mutation.ResetUsersScanned()
	_u.mutation.SetUsersScanned(v)
	return _u
}

// SetNillableUsersScanned sets the "users_scanned" field if the given value is not nil.
func (_u *RecoveryOperationUpdateOne) SetNillableUsersScanned(v *int) *RecoveryOperationUpdateOne {
	if v != nil {
		_u.SetUsersScanned(*v)
	}
	return _u
}

// AddUsersScanned adds value to the "users_scanned" field.
func (_u *RecoveryOperationUpdateOne) AddUsersScanned(v int) *RecoveryOperationUpdateOne {
	_u.mutation.AddUsersScanned(v)
	return _u
}

// SetMessagesRecovered sets the "messages_recovered" field.
func (_u *RecoveryOperationUpdateOne) SetMessagesRecovered(v int) *RecoveryOperationUpdateOne {
	_u.mutation.ResetMessagesRecovered()
	_u.mutation.SetMessagesRecovered(v)
	return _u
}

// SetNillableMessagesRecovered sets the "messages_recovered" field if the given value is not nil.
func (_u *RecoveryOperationUpdateOne) SetNillableMessagesRecovered(v *int) *RecoveryOperationUpdateOne {
	if v != nil {
		_u.SetMessagesRecovered(*v)
	}
	return _u
}

// AddMessagesRecovered adds value to the "messages_recovered" field.
func (_u *RecoveryOperationUpdateOne) AddMessagesRecovered(v int) *RecoveryOperationUpdateOne {
	_u.mutation.AddMessagesRecovered(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *RecoveryOperationUpdateOne) SetErrors(v int) *RecoveryOperationUpdateOne {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *RecoveryOperationUpdateOne) SetNillableErrors(v *int) *RecoveryOperationUpdateOne {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *RecoveryOperationUpdateOne) AddErrors(v int) *RecoveryOperationUpdateOne {
	_u.mutation.AddErrors(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecoveryOperationUpdateOne) SetStatus(v recoveryoperation.Status) *RecoveryOperationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecoveryOperationUpdateOne) SetNillableStatus(v *recoveryoperation.Status) *RecoveryOperationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RecoveryOperationUpdateOne) SetErrorMessage(v string) *RecoveryOperationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RecoveryOperationUpdateOne) SetNillableErrorMessage(v *string) *RecoveryOperationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RecoveryOperationUpdateOne) ClearErrorMessage() *RecoveryOperationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the RecoveryOperationMutation object of the builder.
func (_u *RecoveryOperationUpdateOne) Mutation() *RecoveryOperationMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecoveryOperationUpdate builder.
func (_u *RecoveryOperationUpdateOne) Where(ps ...predicate.RecoveryOperation) *RecoveryOperationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecoveryOperationUpdateOne) Select(field string, fields ...string) *RecoveryOperationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecoveryOperation entity.
func (_u *RecoveryOperationUpdateOne) Save(ctx context.Context) (*RecoveryOperation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecoveryOperationUpdateOne) SaveX(ctx context.Context) *RecoveryOperation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecoveryOperationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecoveryOperationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecoveryOperationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recoveryoperation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RecoveryOperation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecoveryOperationUpdateOne) sqlSave(ctx context.Context) (_node *RecoveryOperation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recoveryoperation.Table, recoveryoperation.Columns, sqlgraph.NewFieldSpec(recoveryoperation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecoveryOperation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recoveryoperation.FieldID)
		for _, f := range fields {
			if !recoveryoperation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recoveryoperation.FieldID {
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
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(recoveryoperation.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(recoveryoperation.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UsersScanned(); ok {
		_spec.SetField(recoveryoperation.FieldUsersScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsersScanned(); ok {
		_spec.AddField(recoveryoperation.FieldUsersScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessagesRecovered(); ok {
		_spec.SetField(recoveryoperation.FieldMessagesRecovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessagesRecovered(); ok {
		_spec.AddField(recoveryoperation.FieldMessagesRecovered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(recoveryoperation.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(recoveryoperation.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recoveryoperation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(recoveryoperation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(recoveryoperation.FieldErrorMessage, field.TypeString)
	}
	_node = &RecoveryOperation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recoveryoperation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
