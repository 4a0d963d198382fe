// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vi3318/Research-AI-sub000/ent/orchestrationlock"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
)

// OrchestrationLockDelete is the builder for deleting a OrchestrationLock entity.
type OrchestrationLockDelete struct {
	config
	hooks    []Hook
	mutation *OrchestrationLockMutation
}

// Where appends a list predicates to the OrchestrationLockDelete builder.
func (_d *OrchestrationLockDelete) Where(ps ...predicate.OrchestrationLock) *OrchestrationLockDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OrchestrationLockDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestrationLockDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OrchestrationLockDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(orchestrationlock.Table, sqlgraph.NewFieldSpec(orchestrationlock.FieldID, field.TypeString))
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

// OrchestrationLockDeleteOne is the builder for deleting a single OrchestrationLock entity.
type OrchestrationLockDeleteOne struct {
	_d *OrchestrationLockDelete
}

// Where appends a list predicates to the OrchestrationLockDelete builder.
func (_d *OrchestrationLockDeleteOne) Where(ps ...predicate.OrchestrationLock) *OrchestrationLockDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OrchestrationLockDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{orchestrationlock.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrchestrationLockDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
