// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
)

// UserCurrentStatusDelete is the builder for deleting a UserCurrentStatus entity.
type UserCurrentStatusDelete struct {
	config
	hooks    []Hook
	mutation *UserCurrentStatusMutation
}

// Where appends a list predicates to the UserCurrentStatusDelete builder.
func (_d *UserCurrentStatusDelete) Where(ps ...predicate.UserCurrentStatus) *UserCurrentStatusDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UserCurrentStatusDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserCurrentStatusDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UserCurrentStatusDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(usercurrentstatus.Table, sqlgraph.NewFieldSpec(usercurrentstatus.FieldID, field.TypeInt64))
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

// UserCurrentStatusDeleteOne is the builder for deleting a single UserCurrentStatus entity.
type UserCurrentStatusDeleteOne struct {
	_d *UserCurrentStatusDelete
}

// Where appends a list predicates to the UserCurrentStatusDelete builder.
func (_d *UserCurrentStatusDeleteOne) Where(ps ...predicate.UserCurrentStatus) *UserCurrentStatusDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UserCurrentStatusDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{usercurrentstatus.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserCurrentStatusDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
