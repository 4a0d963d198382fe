// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// LogEntryCreate is the builder for creating a LogEntry entity.
type LogEntryCreate struct {
	config
	mutation *LogEntryMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *LogEntryCreate) SetRunID(v string) *LogEntryCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetIterationID sets the "iteration_id" field.
func (_c *LogEntryCreate) SetIterationID(v string) *LogEntryCreate {
	_c.mutation.SetIterationID(v)
	return _c
}

// SetNillableIterationID sets the "iteration_id" field if the given value is not nil.
func (_c *LogEntryCreate) SetNillableIterationID(v *string) *LogEntryCreate {
	if v != nil {
		_c.SetIterationID(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *LogEntryCreate) SetAgentID(v string) *LogEntryCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *LogEntryCreate) SetNillableAgentID(v *string) *LogEntryCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *LogEntryCreate) SetLevel(v logentry.Level) *LogEntryCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *LogEntryCreate) SetMessage(v string) *LogEntryCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *LogEntryCreate) SetPayload(v map[string]interface{}) *LogEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LogEntryCreate) SetCreatedAt(v time.Time) *LogEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LogEntryCreate) SetNillableCreatedAt(v *time.Time) *LogEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LogEntryCreate) SetID(v int) *LogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *LogEntryCreate) SetRun(v *Run) *LogEntryCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the LogEntryMutation object of the builder.
func (_c *LogEntryCreate) Mutation() *LogEntryMutation {
	return _c.mutation
}

// Save creates the LogEntry in the database.
func (_c *LogEntryCreate) Save(ctx context.Context) (*LogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LogEntryCreate) SaveX(ctx context.Context) *LogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LogEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := logentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LogEntryCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "LogEntry.run_id"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LogEntry.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := logentry.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LogEntry.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "LogEntry.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LogEntry.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "LogEntry.run"`)}
	}
	return nil
}

func (_c *LogEntryCreate) sqlSave(ctx context.Context) (*LogEntry, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LogEntryCreate) createSpec() (*LogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(logentry.Table, sqlgraph.NewFieldSpec(logentry.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IterationID(); ok {
		_spec.SetField(logentry.FieldIterationID, field.TypeString, value)
		_node.IterationID = &value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(logentry.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(logentry.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(logentry.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(logentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(logentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logentry.RunTable,
			Columns: []string{logentry.RunColumn},
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
	return _node, _spec
}

// LogEntryCreateBulk is the builder for creating many LogEntry entities in bulk.
type LogEntryCreateBulk struct {
	config
	err      error
	builders []*LogEntryCreate
}

// Save creates the LogEntry entities in the database.
func (_c *LogEntryCreateBulk) Save(ctx context.Context) ([]*LogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LogEntryMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *LogEntryCreateBulk) SaveX(ctx context.Context) []*LogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
