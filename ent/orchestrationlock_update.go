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
	"github.com/vi3318/Research-AI-sub000/ent/orchestrationlock"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
)

// OrchestrationLockUpdate is the builder for updating OrchestrationLock entities.
type OrchestrationLockUpdate struct {
	config
	hooks    []Hook
	mutation *OrchestrationLockMutation
}

// Where appends a list predicates to the OrchestrationLockUpdate builder.
func (_u *OrchestrationLockUpdate) Where(ps ...predicate.OrchestrationLock) *OrchestrationLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *OrchestrationLockUpdate) SetPodID(v string) *OrchestrationLockUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *OrchestrationLockUpdate) SetNillablePodID(v *string) *OrchestrationLockUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *OrchestrationLockUpdate) SetHeartbeatAt(v time.Time) *OrchestrationLockUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// Mutation returns the OrchestrationLockMutation object of the builder.
func (_u *OrchestrationLockUpdate) Mutation() *OrchestrationLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrchestrationLockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestrationLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrchestrationLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestrationLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrchestrationLockUpdate) defaults() {
	if _, ok := _u.mutation.HeartbeatAt(); !ok {
		v := orchestrationlock.UpdateDefaultHeartbeatAt()
		_u.mutation.SetHeartbeatAt(v)
	}
}

func (_u *OrchestrationLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(orchestrationlock.Table, orchestrationlock.Columns, sqlgraph.NewFieldSpec(orchestrationlock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(orchestrationlock.FieldPodID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(orchestrationlock.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestrationlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrchestrationLockUpdateOne is the builder for updating a single OrchestrationLock entity.
type OrchestrationLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrchestrationLockMutation
}

// SetPodID sets the "pod_id" field.
func (_u *OrchestrationLockUpdateOne) SetPodID(v string) *OrchestrationLockUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *OrchestrationLockUpdateOne) SetNillablePodID(v *string) *OrchestrationLockUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *OrchestrationLockUpdateOne) SetHeartbeatAt(v time.Time) *OrchestrationLockUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// Mutation returns the OrchestrationLockMutation object of the builder.
func (_u *OrchestrationLockUpdateOne) Mutation() *OrchestrationLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrchestrationLockUpdate builder.
func (_u *OrchestrationLockUpdateOne) Where(ps ...predicate.OrchestrationLock) *OrchestrationLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrchestrationLockUpdateOne) Select(field string, fields ...string) *OrchestrationLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrchestrationLock entity.
func (_u *OrchestrationLockUpdateOne) Save(ctx context.Context) (*OrchestrationLock, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestrationLockUpdateOne) SaveX(ctx context.Context) *OrchestrationLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrchestrationLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestrationLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrchestrationLockUpdateOne) defaults() {
	if _, ok := _u.mutation.HeartbeatAt(); !ok {
		v := orchestrationlock.UpdateDefaultHeartbeatAt()
		_u.mutation.SetHeartbeatAt(v)
	}
}

func (_u *OrchestrationLockUpdateOne) sqlSave(ctx context.Context) (_node *OrchestrationLock, err error) {
	_spec := sqlgraph.NewUpdateSpec(orchestrationlock.Table, orchestrationlock.Columns, sqlgraph.NewFieldSpec(orchestrationlock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrchestrationLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orchestrationlock.FieldID)
		for _, f := range fields {
			if !orchestrationlock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orchestrationlock.FieldID {
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
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(orchestrationlock.FieldPodID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(orchestrationlock.FieldHeartbeatAt, field.TypeTime, value)
	}
	_node = &OrchestrationLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestrationlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
