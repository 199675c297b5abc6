// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
	"github.com/halfmoonlabs/chatloop/ent/protocolauditlog"
)

// ProtocolAuditLogDelete is the builder for deleting a ProtocolAuditLog entity.
type ProtocolAuditLogDelete struct {
	config
	hooks    []Hook
	mutation *ProtocolAuditLogMutation
}

// Where appends a list predicates to the ProtocolAuditLogDelete builder.
func (_d *ProtocolAuditLogDelete) Where(ps ...predicate.ProtocolAuditLog) *ProtocolAuditLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProtocolAuditLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProtocolAuditLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProtocolAuditLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(protocolauditlog.Table, sqlgraph.NewFieldSpec(protocolauditlog.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProtocolAuditLogDeleteOne is the builder for deleting a single ProtocolAuditLog entity.
type ProtocolAuditLogDeleteOne struct {
	_d *ProtocolAuditLogDelete
}

// Where appends a list predicates to the ProtocolAuditLogDelete builder.
func (_d *ProtocolAuditLogDeleteOne) Where(ps ...predicate.ProtocolAuditLog) *ProtocolAuditLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProtocolAuditLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{protocolauditlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProtocolAuditLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
