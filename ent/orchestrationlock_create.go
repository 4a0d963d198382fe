// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vi3318/Research-AI-sub000/ent/orchestrationlock"
)

// OrchestrationLockCreate is the builder for creating a OrchestrationLock entity.
type OrchestrationLockCreate struct {
	config
	mutation *OrchestrationLockMutation
	hooks    []Hook
}

// SetPodID sets the "pod_id" field.
func (_c *OrchestrationLockCreate) SetPodID(v string) *OrchestrationLockCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *OrchestrationLockCreate) SetAcquiredAt(v time.Time) *OrchestrationLockCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *OrchestrationLockCreate) SetNillableAcquiredAt(v *time.Time) *OrchestrationLockCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *OrchestrationLockCreate) SetHeartbeatAt(v time.Time) *OrchestrationLockCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *OrchestrationLockCreate) SetNillableHeartbeatAt(v *time.Time) *OrchestrationLockCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrchestrationLockCreate) SetID(v string) *OrchestrationLockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrchestrationLockMutation object of the builder.
func (_c *OrchestrationLockCreate) Mutation() *OrchestrationLockMutation {
	return _c.mutation
}

// Save creates the OrchestrationLock in the database.
func (_c *OrchestrationLockCreate) Save(ctx context.Context) (*OrchestrationLock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrchestrationLockCreate) SaveX(ctx context.Context) *OrchestrationLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestrationLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestrationLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrchestrationLockCreate) defaults() {
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := orchestrationlock.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		v := orchestrationlock.DefaultHeartbeatAt()
		_c.mutation.SetHeartbeatAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrchestrationLockCreate) check() error {
	if _, ok := _c.mutation.PodID(); !ok {
		return &ValidationError{Name: "pod_id", err: errors.New(`ent: missing required field "OrchestrationLock.pod_id"`)}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "OrchestrationLock.acquired_at"`)}
	}
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		return &ValidationError{Name: "heartbeat_at", err: errors.New(`ent: missing required field "OrchestrationLock.heartbeat_at"`)}
	}
	return nil
}

func (_c *OrchestrationLockCreate) sqlSave(ctx context.Context) (*OrchestrationLock, error) {
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
			return nil, fmt.Errorf("unexpected OrchestrationLock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrchestrationLockCreate) createSpec() (*OrchestrationLock, *sqlgraph.CreateSpec) {
	var (
		_node = &OrchestrationLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orchestrationlock.Table, sqlgraph.NewFieldSpec(orchestrationlock.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(orchestrationlock.FieldPodID, field.TypeString, value)
		_node.PodID = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(orchestrationlock.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(orchestrationlock.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = value
	}
	return _node, _spec
}

// OrchestrationLockCreateBulk is the builder for creating many OrchestrationLock entities in bulk.
type OrchestrationLockCreateBulk struct {
	config
	err      error
	builders []*OrchestrationLockCreate
}

// Save creates the OrchestrationLock entities in the database.
func (_c *OrchestrationLockCreateBulk) Save(ctx context.Context) ([]*OrchestrationLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrchestrationLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrchestrationLockMutation)
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
func (_c *OrchestrationLockCreateBulk) SaveX(ctx context.Context) []*OrchestrationLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestrationLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestrationLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
