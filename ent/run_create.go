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
	"github.com/vi3318/Research-AI-sub000/ent/event"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/ent/paper"
	"github.com/vi3318/Research-AI-sub000/ent/resultrecord"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *RunCreate) SetWorkspaceID(v string) *RunCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *RunCreate) SetOwnerID(v string) *RunCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableOwnerID(v *string) *RunCreate {
	if v != nil {
		_c.SetOwnerID(*v)
	}
	return _c
}

// SetQuery sets the "query" field.
func (_c *RunCreate) SetQuery(v string) *RunCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetDomains sets the "domains" field.
func (_c *RunCreate) SetDomains(v []string) *RunCreate {
	_c.mutation.SetDomains(v)
	return _c
}

// SetMaxIterations sets the "max_iterations" field.
func (_c *RunCreate) SetMaxIterations(v int) *RunCreate {
	_c.mutation.SetMaxIterations(v)
	return _c
}

// SetConvergenceThreshold sets the "convergence_threshold" field.
func (_c *RunCreate) SetConvergenceThreshold(v float64) *RunCreate {
	_c.mutation.SetConvergenceThreshold(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentIteration sets the "current_iteration" field.
func (_c *RunCreate) SetCurrentIteration(v int) *RunCreate {
	_c.mutation.SetCurrentIteration(v)
	return _c
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_c *RunCreate) SetNillableCurrentIteration(v *int) *RunCreate {
	if v != nil {
		_c.SetCurrentIteration(*v)
	}
	return _c
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_c *RunCreate) SetProgressPercentage(v int) *RunCreate {
	_c.mutation.SetProgressPercentage(v)
	return _c
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_c *RunCreate) SetNillableProgressPercentage(v *int) *RunCreate {
	if v != nil {
		_c.SetProgressPercentage(*v)
	}
	return _c
}

// SetRecoveriesUsed sets the "recoveries_used" field.
func (_c *RunCreate) SetRecoveriesUsed(v int) *RunCreate {
	_c.mutation.SetRecoveriesUsed(v)
	return _c
}

// SetNillableRecoveriesUsed sets the "recoveries_used" field if the given value is not nil.
func (_c *RunCreate) SetNillableRecoveriesUsed(v *int) *RunCreate {
	if v != nil {
		_c.SetRecoveriesUsed(*v)
	}
	return _c
}

// SetSandboxFallback sets the "sandbox_fallback" field.
func (_c *RunCreate) SetSandboxFallback(v bool) *RunCreate {
	_c.mutation.SetSandboxFallback(v)
	return _c
}

// SetNillableSandboxFallback sets the "sandbox_fallback" field if the given value is not nil.
func (_c *RunCreate) SetNillableSandboxFallback(v *bool) *RunCreate {
	if v != nil {
		_c.SetSandboxFallback(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunCreate) SetErrorMessage(v string) *RunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddPaperIDs adds the "papers" edge to the Paper entity by IDs.
func (_c *RunCreate) AddPaperIDs(ids ...string) *RunCreate {
	_c.mutation.AddPaperIDs(ids...)
	return _c
}

// AddPapers adds the "papers" edges to the Paper entity.
func (_c *RunCreate) AddPapers(v ...*Paper) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPaperIDs(ids...)
}

// AddIterationIDs adds the "iterations" edge to the Iteration entity by IDs.
func (_c *RunCreate) AddIterationIDs(ids ...string) *RunCreate {
	_c.mutation.AddIterationIDs(ids...)
	return _c
}

// AddIterations adds the "iterations" edges to the Iteration entity.
func (_c *RunCreate) AddIterations(v ...*Iteration) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIterationIDs(ids...)
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_c *RunCreate) AddAgentRecordIDs(ids ...string) *RunCreate {
	_c.mutation.AddAgentRecordIDs(ids...)
	return _c
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_c *RunCreate) AddAgentRecords(v ...*AgentRecord) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentRecordIDs(ids...)
}

// AddLogEntryIDs adds the "log_entries" edge to the LogEntry entity by IDs.
func (_c *RunCreate) AddLogEntryIDs(ids ...int) *RunCreate {
	_c.mutation.AddLogEntryIDs(ids...)
	return _c
}

// AddLogEntries adds the "log_entries" edges to the LogEntry entity.
func (_c *RunCreate) AddLogEntries(v ...*LogEntry) *RunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogEntryIDs(ids...)
}

// SetResultID sets the "result" edge to the ResultRecord entity by ID.
func (_c *RunCreate) SetResultID(id string) *RunCreate {
	_c.mutation.SetResultID(id)
	return _c
}

// SetNillableResultID sets the "result" edge to the ResultRecord entity by ID if the given value is not nil.
func (_c *RunCreate) SetNillableResultID(id *string) *RunCreate {
	if id != nil {
		_c = _c.SetResultID(*id)
	}
	return _c
}

// SetResult sets the "result" edge to the ResultRecord entity.
func (_c *RunCreate) SetResult(v *ResultRecord) *RunCreate {
	return _c.SetResultID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *RunCreate) AddEventIDs(ids ...int) *RunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *RunCreate) AddEvents(v ...*Event) *RunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentIteration(); !ok {
		v := run.DefaultCurrentIteration
		_c.mutation.SetCurrentIteration(v)
	}
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		v := run.DefaultProgressPercentage
		_c.mutation.SetProgressPercentage(v)
	}
	if _, ok := _c.mutation.RecoveriesUsed(); !ok {
		v := run.DefaultRecoveriesUsed
		_c.mutation.SetRecoveriesUsed(v)
	}
	if _, ok := _c.mutation.SandboxFallback(); !ok {
		v := run.DefaultSandboxFallback
		_c.mutation.SetSandboxFallback(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Run.workspace_id"`)}
	}
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "Run.query"`)}
	}
	if _, ok := _c.mutation.MaxIterations(); !ok {
		return &ValidationError{Name: "max_iterations", err: errors.New(`ent: missing required field "Run.max_iterations"`)}
	}
	if v, ok := _c.mutation.MaxIterations(); ok {
		if err := run.MaxIterationsValidator(v); err != nil {
			return &ValidationError{Name: "max_iterations", err: fmt.Errorf(`ent: validator failed for field "Run.max_iterations": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConvergenceThreshold(); !ok {
		return &ValidationError{Name: "convergence_threshold", err: errors.New(`ent: missing required field "Run.convergence_threshold"`)}
	}
	if v, ok := _c.mutation.ConvergenceThreshold(); ok {
		if err := run.ConvergenceThresholdValidator(v); err != nil {
			return &ValidationError{Name: "convergence_threshold", err: fmt.Errorf(`ent: validator failed for field "Run.convergence_threshold": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentIteration(); !ok {
		return &ValidationError{Name: "current_iteration", err: errors.New(`ent: missing required field "Run.current_iteration"`)}
	}
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		return &ValidationError{Name: "progress_percentage", err: errors.New(`ent: missing required field "Run.progress_percentage"`)}
	}
	if _, ok := _c.mutation.RecoveriesUsed(); !ok {
		return &ValidationError{Name: "recoveries_used", err: errors.New(`ent: missing required field "Run.recoveries_used"`)}
	}
	if _, ok := _c.mutation.SandboxFallback(); !ok {
		return &ValidationError{Name: "sandbox_fallback", err: errors.New(`ent: missing required field "Run.sandbox_fallback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(run.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(run.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = &value
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(run.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.Domains(); ok {
		_spec.SetField(run.FieldDomains, field.TypeJSON, value)
		_node.Domains = value
	}
	if value, ok := _c.mutation.MaxIterations(); ok {
		_spec.SetField(run.FieldMaxIterations, field.TypeInt, value)
		_node.MaxIterations = value
	}
	if value, ok := _c.mutation.ConvergenceThreshold(); ok {
		_spec.SetField(run.FieldConvergenceThreshold, field.TypeFloat64, value)
		_node.ConvergenceThreshold = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentIteration(); ok {
		_spec.SetField(run.FieldCurrentIteration, field.TypeInt, value)
		_node.CurrentIteration = value
	}
	if value, ok := _c.mutation.ProgressPercentage(); ok {
		_spec.SetField(run.FieldProgressPercentage, field.TypeInt, value)
		_node.ProgressPercentage = value
	}
	if value, ok := _c.mutation.RecoveriesUsed(); ok {
		_spec.SetField(run.FieldRecoveriesUsed, field.TypeInt, value)
		_node.RecoveriesUsed = value
	}
	if value, ok := _c.mutation.SandboxFallback(); ok {
		_spec.SetField(run.FieldSandboxFallback, field.TypeBool, value)
		_node.SandboxFallback = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PapersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.PapersTable,
			Columns: []string{run.PapersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paper.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IterationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.IterationsTable,
			Columns: []string{run.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iteration.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.AgentRecordsTable,
			Columns: []string{run.AgentRecordsColumn},
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
	if nodes := _c.mutation.LogEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.LogEntriesTable,
			Columns: []string{run.LogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.ResultTable,
			Columns: []string{run.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resultrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
