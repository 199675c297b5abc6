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
	"github.com/halfmoonlabs/chatloop/ent/protocolauditlog"
)

// ProtocolAuditLogUpdate is the builder for updating ProtocolAuditLog entities.
type ProtocolAuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *ProtocolAuditLogMutation
}

// Where appends a list predicates to the ProtocolAuditLogUpdate builder.
func (_u *ProtocolAuditLogUpdate) Where(ps ...predicate.ProtocolAuditLog) *ProtocolAuditLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProtocolAuditLogUpdate) SetUserID(v int64) *ProtocolAuditLogUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProtocolAuditLogUpdate) SetNillableUserID(v *int64) *ProtocolAuditLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ProtocolAuditLogUpdate) AddUserID(v int64) *ProtocolAuditLogUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *ProtocolAuditLogUpdate) SetAction(v string) *ProtocolAuditLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ProtocolAuditLogUpdate) SetNillableAction(v *string) *ProtocolAuditLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ProtocolAuditLogUpdate) SetReason(v string) *ProtocolAuditLogUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ProtocolAuditLogUpdate) SetNillableReason(v *string) *ProtocolAuditLogUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ProtocolAuditLogUpdate) ClearReason() *ProtocolAuditLogUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetPerformer sets the "performer" field.
func (_u *ProtocolAuditLogUpdate) SetPerformer(v string) *ProtocolAuditLogUpdate {
	_u.mutation.SetPerformer(v)
	return _u
}

// SetNillablePerformer sets the "performer" field if the given value is not nil.
func (_u *ProtocolAuditLogUpdate) SetNillablePerformer(v *string) *ProtocolAuditLogUpdate {
	if v != nil {
		_u.SetPerformer(*v)
	}
	return _u
}

// Mutation returns the ProtocolAuditLogMutation object of the builder.
func (_u *ProtocolAuditLogUpdate) Mutation() *ProtocolAuditLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProtocolAuditLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProtocolAuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProtocolAuditLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProtocolAuditLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProtocolAuditLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(protocolauditlog.Table, protocolauditlog.Columns, sqlgraph.NewFieldSpec(protocolauditlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(protocolauditlog.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(protocolauditlog.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(protocolauditlog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(protocolauditlog.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(protocolauditlog.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Performer(); ok {
		_spec.SetField(protocolauditlog.FieldPerformer, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{protocolauditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProtocolAuditLogUpdateOne is the builder for updating a single ProtocolAuditLog entity.
type ProtocolAuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProtocolAuditLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProtocolAuditLogUpdateOne) SetUserID(v int64) *ProtocolAuditLogUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProtocolAuditLogUpdateOne) SetNillableUserID(v *int64) *ProtocolAuditLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ProtocolAuditLogUpdateOne) AddUserID(v int64) *ProtocolAuditLogUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *ProtocolAuditLogUpdateOne) SetAction(v string) *ProtocolAuditLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ProtocolAuditLogUpdateOne) SetNillableAction(v *string) *ProtocolAuditLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ProtocolAuditLogUpdateOne) SetReason(v string) *ProtocolAuditLogUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ProtocolAuditLogUpdateOne) SetNillableReason(v *string) *ProtocolAuditLogUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ProtocolAuditLogUpdateOne) ClearReason() *ProtocolAuditLogUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetPerformer sets the "performer" field.
func (_u *ProtocolAuditLogUpdateOne) SetPerformer(v string) *ProtocolAuditLogUpdateOne {
	_u.mutation.SetPerformer(v)
	return _u
}

// SetNillablePerformer sets the "performer" field if the given value is not nil.
func (_u *ProtocolAuditLogUpdateOne) SetNillablePerformer(v *string) *ProtocolAuditLogUpdateOne {
	if v != nil {
		_u.SetPerformer(*v)
	}
	return _u
}

// Mutation returns the ProtocolAuditLogMutation object of the builder.
func (_u *ProtocolAuditLogUpdateOne) Mutation() *ProtocolAuditLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProtocolAuditLogUpdate builder.
func (_u *ProtocolAuditLogUpdateOne) Where(ps ...predicate.ProtocolAuditLog) *ProtocolAuditLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProtocolAuditLogUpdateOne) Select(field string, fields ...string) *ProtocolAuditLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProtocolAuditLog entity.
func (_u *ProtocolAuditLogUpdateOne) Save(ctx context.Context) (*ProtocolAuditLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProtocolAuditLogUpdateOne) SaveX(ctx context.Context) *ProtocolAuditLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProtocolAuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProtocolAuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProtocolAuditLogUpdateOne) sqlSave(ctx context.Context) (_node *ProtocolAuditLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(protocolauditlog.Table, protocolauditlog.Columns, sqlgraph.NewFieldSpec(protocolauditlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProtocolAuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, protocolauditlog.FieldID)
		for _, f := range fields {
			if !protocolauditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != protocolauditlog.FieldID {
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
		_spec.SetField(protocolauditlog.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(protocolauditlog.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(protocolauditlog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(protocolauditlog.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(protocolauditlog.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Performer(); ok {
		_spec.SetField(protocolauditlog.FieldPerformer, field.TypeString, value)
	}
	_node = &ProtocolAuditLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{protocolauditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
