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

// AgentRecordCreate is the builder for creating a AgentRecord entity.
type AgentRecordCreate struct {
	config
	mutation *AgentRecordMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AgentRecordCreate) SetRunID(v string) *AgentRecordCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetIterationID sets the "iteration_id" field.
func (_c *AgentRecordCreate) SetIterationID(v string) *AgentRecordCreate {
	_c.mutation.SetIterationID(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentRecordCreate) SetAgentType(v agentrecord.AgentType) *AgentRecordCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetSubjectRef sets the "subject_ref" field.
func (_c *AgentRecordCreate) SetSubjectRef(v string) *AgentRecordCreate {
	_c.mutation.SetSubjectRef(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentRecordCreate) SetStatus(v agentrecord.Status) *AgentRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableStatus(v *agentrecord.Status) *AgentRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *AgentRecordCreate) SetAttempts(v int) *AgentRecordCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableAttempts(v *int) *AgentRecordCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *AgentRecordCreate) SetOutput(v map[string]interface{}) *AgentRecordCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetError sets the "error" field.
func (_c *AgentRecordCreate) SetError(v string) *AgentRecordCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableError(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *AgentRecordCreate) SetProvider(v string) *AgentRecordCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableProvider(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *AgentRecordCreate) SetModel(v string) *AgentRecordCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableModel(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *AgentRecordCreate) SetPromptTokens(v int) *AgentRecordCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillablePromptTokens(v *int) *AgentRecordCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *AgentRecordCreate) SetCompletionTokens(v int) *AgentRecordCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableCompletionTokens(v *int) *AgentRecordCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *AgentRecordCreate) SetLatencyMs(v int) *AgentRecordCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableLatencyMs(v *int) *AgentRecordCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentRecordCreate) SetCreatedAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableCreatedAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentRecordCreate) SetUpdatedAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableUpdatedAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRecordCreate) SetID(v string) *AgentRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *AgentRecordCreate) SetRun(v *Run) *AgentRecordCreate {
	return _c.SetRunID(v.ID)
}

// SetIteration sets the "iteration" edge to the Iteration entity.
func (_c *AgentRecordCreate) SetIteration(v *Iteration) *AgentRecordCreate {
	return _c.SetIterationID(v.ID)
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_c *AgentRecordCreate) Mutation() *AgentRecordMutation {
	return _c.mutation
}

// Save creates the AgentRecord in the database.
func (_c *AgentRecordCreate) Save(ctx context.Context) (*AgentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRecordCreate) SaveX(ctx context.Context) *AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := agentrecord.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRecordCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AgentRecord.run_id"`)}
	}
	if _, ok := _c.mutation.IterationID(); !ok {
		return &ValidationError{Name: "iteration_id", err: errors.New(`ent: missing required field "AgentRecord.iteration_id"`)}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "AgentRecord.agent_type"`)}
	}
	if v, ok := _c.mutation.AgentType(); ok {
		if err := agentrecord.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.agent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectRef(); !ok {
		return &ValidationError{Name: "subject_ref", err: errors.New(`ent: missing required field "AgentRecord.subject_ref"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "AgentRecord.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentRecord.updated_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AgentRecord.run"`)}
	}
	if len(_c.mutation.IterationIDs()) == 0 {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required edge "AgentRecord.iteration"`)}
	}
	return nil
}

func (_c *AgentRecordCreate) sqlSave(ctx context.Context) (*AgentRecord, error) {
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
			return nil, fmt.Errorf("unexpected AgentRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRecordCreate) createSpec() (*AgentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrecord.Table, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agentrecord.FieldAgentType, field.TypeEnum, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.SubjectRef(); ok {
		_spec.SetField(agentrecord.FieldSubjectRef, field.TypeString, value)
		_node.SubjectRef = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(agentrecord.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(agentrecord.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(agentrecord.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(agentrecord.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(agentrecord.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(agentrecord.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = &value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(agentrecord.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = &value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(agentrecord.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentrecord.RunTable,
			Columns: []string{agentrecord.RunColumn},
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
	if nodes := _c.mutation.IterationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentrecord.IterationTable,
			Columns: []string{agentrecord.IterationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iteration.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IterationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentRecordCreateBulk is the builder for creating many AgentRecord entities in bulk.
type AgentRecordCreateBulk struct {
	config
	err      error
	builders []*AgentRecordCreate
}

// Save creates the AgentRecord entities in the database.
func (_c *AgentRecordCreateBulk) Save(ctx context.Context) ([]*AgentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRecordMutation)
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
func (_c *AgentRecordCreateBulk) SaveX(ctx context.Context) []*AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
