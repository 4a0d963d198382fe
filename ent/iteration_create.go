// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// IterationCreate is the builder for creating a Iteration entity.
type IterationCreate struct {
	config
	mutation *IterationMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *IterationCreate) SetRunID(v string) *IterationCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetIterationNumber sets the "iteration_number" field.
func (_c *IterationCreate) SetIterationNumber(v int) *IterationCreate {
	_c.mutation.SetIterationNumber(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IterationCreate) SetStatus(v iteration.Status) *IterationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IterationCreate) SetNillableStatus(v *iteration.Status) *IterationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConvergenceScore sets the "convergence_score" field.
func (_c *IterationCreate) SetConvergenceScore(v float64) *IterationCreate {
	_c.mutation.SetConvergenceScore(v)
	return _c
}

// SetNillableConvergenceScore sets the "convergence_score" field if the given value is not nil.
func (_c *IterationCreate) SetNillableConvergenceScore(v *float64) *IterationCreate {
	if v != nil {
		_c.SetConvergenceScore(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IterationCreate) SetStartedAt(v time.Time) *IterationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *IterationCreate) SetNillableStartedAt(v *time.Time) *IterationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *IterationCreate) SetEndedAt(v time.Time) *IterationCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *IterationCreate) SetNillableEndedAt(v *time.Time) *IterationCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IterationCreate) SetID(v string) *IterationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *IterationCreate) SetRun(v *Run) *IterationCreate {
	return _c.SetRunID(v.ID)
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_c *IterationCreate) AddAgentRecordIDs(ids ...string) *IterationCreate {
	_c.mutation.AddAgentRecordIDs(ids...)
	return _c
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_c *IterationCreate) AddAgentRecords(v ...*AgentRecord) *IterationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentRecordIDs(ids...)
}

// Mutation returns the IterationMutation object of the builder.
func (_c *IterationCreate) Mutation() *IterationMutation {
	return _c.mutation
}

// Save creates the Iteration in the database.
func (_c *IterationCreate) Save(ctx context.Context) (*Iteration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IterationCreate) SaveX(ctx context.Context) *Iteration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IterationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IterationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IterationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := iteration.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := iteration.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IterationCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Iteration.run_id"`)}
	}
	if _, ok := _c.mutation.IterationNumber(); !ok {
		return &ValidationError{Name: "iteration_number", err: errors.New(`ent: missing required field "Iteration.iteration_number"`)}
	}
	if v, ok := _c.mutation.IterationNumber(); ok {
		if err := iteration.IterationNumberValidator(v); err != nil {
			return &ValidationError{Name: "iteration_number", err: fmt.Errorf(`ent: validator failed for field "Iteration.iteration_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Iteration.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := iteration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Iteration.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Iteration.started_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Iteration.run"`)}
	}
	return nil
}

func (_c *IterationCreate) sqlSave(ctx context.Context) (*Iteration, error) {
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
			return nil, fmt.Errorf("unexpected Iteration.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IterationCreate) createSpec() (*Iteration, *sqlgraph.CreateSpec) {
	var (
		_node = &Iteration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(iteration.Table, sqlgraph.NewFieldSpec(iteration.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IterationNumber(); ok {
		_spec.SetField(iteration.FieldIterationNumber, field.TypeInt, value)
		_node.IterationNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(iteration.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConvergenceScore(); ok {
		_spec.SetField(iteration.FieldConvergenceScore, field.TypeFloat64, value)
		_node.ConvergenceScore = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(iteration.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(iteration.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   iteration.RunTable,
			Columns: []string{iteration.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   iteration.AgentRecordsTable,
			Columns: []string{iteration.AgentRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IterationCreateBulk is the builder for creating many Iteration entities in bulk.
type IterationCreateBulk struct {
	config
	err      error
	builders []*IterationCreate
}

// Save creates the Iteration entities in the database.
func (_c *IterationCreateBulk) Save(ctx context.Context) ([]*Iteration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Iteration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IterationMutation)
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
func (_c *IterationCreateBulk) SaveX(ctx context.Context) []*Iteration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IterationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IterationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
