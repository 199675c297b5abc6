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
	"github.com/halfmoonlabs/chatloop/ent/protocolstatus"
)

// ProtocolStatusUpdate is the builder for updating ProtocolStatus entities.
type ProtocolStatusUpdate struct {
	config
	hooks    []Hook
	mutation *ProtocolStatusMutation
}

// Where appends a list predicates to the ProtocolStatusUpdate builder.
func (_u *ProtocolStatusUpdate) Where(ps ...predicate.ProtocolStatus) *ProtocolStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActive sets the "active" field.
func (_u *ProtocolStatusUpdate) SetActive(v bool) *ProtocolStatusUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ProtocolStatusUpdate) SetNillableActive(v *bool) *ProtocolStatusUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSince sets the "since" field.
func (_u *ProtocolStatusUpdate) SetSince(v time.Time) *ProtocolStatusUpdate {
	_u.mutation.SetSince(v)
	return _u
}

// SetNillableSince sets the "since" field if the given value is not nil.
func (_u *ProtocolStatusUpdate) SetNillableSince(v *time.Time) *ProtocolStatusUpdate {
	if v != nil {
		_u.SetSince(*v)
	}
	return _u
}

// ClearSince clears the value of the "since" field.
func (_u *ProtocolStatusUpdate) ClearSince() *ProtocolStatusUpdate {
	_u.mutation.ClearSince()
	return _u
}

// SetReason sets the "reason" field.
func (_u *ProtocolStatusUpdate) SetReason(v string) *ProtocolStatusUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ProtocolStatusUpdate) SetNillableReason(v *string) *ProtocolStatusUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ProtocolStatusUpdate) ClearReason() *ProtocolStatusUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetPerformer sets the "performer" field.
func (_u *ProtocolStatusUpdate) SetPerformer(v string) *ProtocolStatusUpdate {
	_u.mutation.SetPerformer(v)
	return _u
}

// SetNillablePerformer sets the "performer" field if the given value is not nil.
func (_u *ProtocolStatusUpdate) SetNillablePerformer(v *string) *ProtocolStatusUpdate {
	if v != nil {
		_u.SetPerformer(*v)
	}
	return _u
}

// ClearPerformer clears the value of the "performer" field.
func (_u *ProtocolStatusUpdate) ClearPerformer() *ProtocolStatusUpdate {
	_u.mutation.ClearPerformer()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProtocolStatusUpdate) SetUpdatedAt(v time.Time) *ProtocolStatusUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProtocolStatusMutation object of the builder.
func (_u *ProtocolStatusUpdate) Mutation() *ProtocolStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProtocolStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProtocolStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProtocolStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProtocolStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProtocolStatusUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := protocolstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProtocolStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(protocolstatus.Table, protocolstatus.Columns, sqlgraph.NewFieldSpec(protocolstatus.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(protocolstatus.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Since(); ok {
		_spec.SetField(protocolstatus.FieldSince, field.TypeTime, value)
	}
	if _u.mutation.SinceCleared() {
		_spec.ClearField(protocolstatus.FieldSince, field.TypeTime)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(protocolstatus.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(protocolstatus.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Performer(); ok {
		_spec.SetField(protocolstatus.FieldPerformer, field.TypeString, value)
	}
	if _u.mutation.PerformerCleared() {
		_spec.ClearField(protocolstatus.FieldPerformer, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(protocolstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{protocolstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProtocolStatusUpdateOne is the builder for updating a single ProtocolStatus entity.
type ProtocolStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProtocolStatusMutation
}

// SetActive sets the "active" field.
func (_u *ProtocolStatusUpdateOne) SetActive(v bool) *ProtocolStatusUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ProtocolStatusUpdateOne) SetNillableActive(v *bool) *ProtocolStatusUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSince sets the "since" field.
func (_u *ProtocolStatusUpdateOne) SetSince(v time.Time) *ProtocolStatusUpdateOne {
	_u.mutation.SetSince(v)
	return _u
}

// SetNillableSince sets the "since" field if the given value is not nil.
func (_u *ProtocolStatusUpdateOne) SetNillableSince(v *time.Time) *ProtocolStatusUpdateOne {
	if v != nil {
		_u.SetSince(*v)
	}
	return _u
}

// ClearSince clears the value of the "since" field.
func (_u *ProtocolStatusUpdateOne) ClearSince() *ProtocolStatusUpdateOne {
	_u.mutation.ClearSince()
	return _u
}

// SetReason sets the "reason" field.
func (_u *ProtocolStatusUpdateOne) SetReason(v string) *ProtocolStatusUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ProtocolStatusUpdateOne) SetNillableReason(v *string) *ProtocolStatusUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ProtocolStatusUpdateOne) ClearReason() *ProtocolStatusUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetPerformer sets the "performer" field.
func (_u *ProtocolStatusUpdateOne) SetPerformer(v string) *ProtocolStatusUpdateOne {
	_u.mutation.SetPerformer(v)
	return _u
}

// SetNillablePerformer sets the "performer" field if the given value is not nil.
func (_u *ProtocolStatusUpdateOne) SetNillablePerformer(v *string) *ProtocolStatusUpdateOne {
	if v != nil {
		_u.SetPerformer(*v)
	}
	return _u
}

// ClearPerformer clears the value of the "performer" field.
func (_u *ProtocolStatusUpdateOne) ClearPerformer() *ProtocolStatusUpdateOne {
	_u.mutation.ClearPerformer()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProtocolStatusUpdateOne) SetUpdatedAt(v time.Time) *ProtocolStatusUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProtocolStatusMutation object of the builder.
func (_u *ProtocolStatusUpdateOne) Mutation() *ProtocolStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProtocolStatusUpdate builder.
func (_u *ProtocolStatusUpdateOne) Where(ps ...predicate.ProtocolStatus) *ProtocolStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProtocolStatusUpdateOne) Select(field string, fields ...string) *ProtocolStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProtocolStatus entity.
func (_u *ProtocolStatusUpdateOne) Save(ctx context.Context) (*ProtocolStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProtocolStatusUpdateOne) SaveX(ctx context.Context) *ProtocolStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProtocolStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProtocolStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProtocolStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := protocolstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProtocolStatusUpdateOne) sqlSave(ctx context.Context) (_node *ProtocolStatus, err error) {
	_spec := sqlgraph.NewUpdateSpec(protocolstatus.Table, protocolstatus.Columns, sqlgraph.NewFieldSpec(protocolstatus.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProtocolStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, protocolstatus.FieldID)
		for _, f := range fields {
			if !protocolstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != protocolstatus.FieldID {
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
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(protocolstatus.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Since(); ok {
		_spec.SetField(protocolstatus.FieldSince, field.TypeTime, value)
	}
	if _u.mutation.SinceCleared() {
		_spec.ClearField(protocolstatus.FieldSince, field.TypeTime)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(protocolstatus.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(protocolstatus.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Performer(); ok {
		_spec.SetField(protocolstatus.FieldPerformer, field.TypeString, value)
	}
	if _u.mutation.PerformerCleared() {
		_spec.ClearField(protocolstatus.FieldPerformer, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(protocolstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProtocolStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{protocolstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
