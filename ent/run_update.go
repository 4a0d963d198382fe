// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/ent/event"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/ent/paper"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
	"github.com/vi3318/Research-AI-sub000/ent/resultrecord"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *RunUpdate) SetOwnerID(v string) *RunUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableOwnerID(v *string) *RunUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (_u *RunUpdate) ClearOwnerID() *RunUpdate {
	_u.mutation.ClearOwnerID()
	return _u
}

// SetQuery sets the "query" field.
func (_u *RunUpdate) SetQuery(v string) *RunUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *RunUpdate) SetNillableQuery(v *string) *RunUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetDomains sets the "domains" field.
func (_u *RunUpdate) SetDomains(v []string) *RunUpdate {
	_u.mutation.SetDomains(v)
	return _u
}

// AppendDomains appends value to the "domains" field.
func (_u *RunUpdate) AppendDomains(v []string) *RunUpdate {
	_u.mutation.AppendDomains(v)
	return _u
}

// ClearDomains clears the value of the "domains" field.
func (_u *RunUpdate) ClearDomains() *RunUpdate {
	_u.mutation.ClearDomains()
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *RunUpdate) SetMaxIterations(v int) *RunUpdate {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *RunUpdate) SetNillableMaxIterations(v *int) *RunUpdate {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *RunUpdate) AddMaxIterations(v int) *RunUpdate {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// SetConvergenceThreshold sets the "convergence_threshold" field.
func (_u *RunUpdate) SetConvergenceThreshold(v float64) *RunUpdate {
	_u.mutation.ResetConvergenceThreshold()
	_u.mutation.SetConvergenceThreshold(v)
	return _u
}

// SetNillableConvergenceThreshold sets the "convergence_threshold" field if the given value is not nil.
func (_u *RunUpdate) SetNillableConvergenceThreshold(v *float64) *RunUpdate {
	if v != nil {
		_u.SetConvergenceThreshold(*v)
	}
	return _u
}

// AddConvergenceThreshold adds value to the "convergence_threshold" field.
func (_u *RunUpdate) AddConvergenceThreshold(v float64) *RunUpdate {
	_u.mutation.AddConvergenceThreshold(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentIteration sets the "current_iteration" field.
func (_u *RunUpdate) SetCurrentIteration(v int) *RunUpdate {
	_u.mutation.ResetCurrentIteration()
	_u.mutation.SetCurrentIteration(v)
	return _u
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCurrentIteration(v *int) *RunUpdate {
	if v != nil {
		_u.SetCurrentIteration(*v)
	}
	return _u
}

// AddCurrentIteration adds value to the "current_iteration" field.
func (_u *RunUpdate) AddCurrentIteration(v int) *RunUpdate {
	_u.mutation.AddCurrentIteration(v)
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *RunUpdate) SetProgressPercentage(v int) *RunUpdate {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *RunUpdate) SetNillableProgressPercentage(v *int) *RunUpdate {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *RunUpdate) AddProgressPercentage(v int) *RunUpdate {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetRecoveriesUsed sets the "recoveries_used" field.
func (_u *RunUpdate) SetRecoveriesUsed(v int) *RunUpdate {
	_u.mutation.ResetRecoveriesUsed()
	_u.mutation.SetRecoveriesUsed(v)
	return _u
}

// SetNillableRecoveriesUsed sets the "recoveries_used" field if the given value is not nil.
func (_u *RunUpdate) SetNillableRecoveriesUsed(v *int) *RunUpdate {
	if v != nil {
		_u.SetRecoveriesUsed(*v)
	}
	return _u
}

// AddRecoveriesUsed adds value to the "recoveries_used" field.
func (_u *RunUpdate) AddRecoveriesUsed(v int) *RunUpdate {
	_u.mutation.AddRecoveriesUsed(v)
	return _u
}

// SetSandboxFallback sets the "sandbox_fallback" field.
func (_u *RunUpdate) SetSandboxFallback(v bool) *RunUpdate {
	_u.mutation.SetSandboxFallback(v)
	return _u
}

// SetNillableSandboxFallback sets the "sandbox_fallback" field if the given value is not nil.
func (_u *RunUpdate) SetNillableSandboxFallback(v *bool) *RunUpdate {
	if v != nil {
		_u.SetSandboxFallback(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdate) SetErrorMessage(v string) *RunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdate) ClearErrorMessage() *RunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddPaperIDs adds the "papers" edge to the Paper entity by IDs.
func (_u *RunUpdate) AddPaperIDs(ids ...string) *RunUpdate {
	_u.mutation.AddPaperIDs(ids...)
	return _u
}

// AddPapers adds the "papers" edges to the Paper entity.
func (_u *RunUpdate) AddPapers(v ...*Paper) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaperIDs(ids...)
}

// AddIterationIDs adds the "iterations" edge to the Iteration entity by IDs.
func (_u *RunUpdate) AddIterationIDs(ids ...string) *RunUpdate {
	_u.mutation.AddIterationIDs(ids...)
	return _u
}

// AddIterations adds the "iterations" edges to the Iteration entity.
func (_u *RunUpdate) AddIterations(v ...*Iteration) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIterationIDs(ids...)
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_u *RunUpdate) AddAgentRecordIDs(ids ...string) *RunUpdate {
	_u.mutation.AddAgentRecordIDs(ids...)
	return _u
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_u *RunUpdate) AddAgentRecords(v ...*AgentRecord) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRecordIDs(ids...)
}

// AddLogEntryIDs adds the "log_entries" edge to the LogEntry entity by IDs.
func (_u *RunUpdate) AddLogEntryIDs(ids ...int) *RunUpdate {
	_u.mutation.AddLogEntryIDs(ids...)
	return _u
}

// AddLogEntries adds the "log_entries" edges to the LogEntry entity.
func (_u *RunUpdate) AddLogEntries(v ...*LogEntry) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogEntryIDs(ids...)
}

// SetResultID sets the "result" edge to the ResultRecord entity by ID.
func (_u *RunUpdate) SetResultID(id string) *RunUpdate {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the ResultRecord entity by ID if the given value is not nil.
func (_u *RunUpdate) SetNillableResultID(id *string) *RunUpdate {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the ResultRecord entity.
func (_u *RunUpdate) SetResult(v *ResultRecord) *RunUpdate {
	return _u.SetResultID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *RunUpdate) AddEventIDs(ids ...int) *RunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *RunUpdate) AddEvents(v ...*Event) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearPapers clears all "papers" edges to the Paper entity.
func (_u *RunUpdate) ClearPapers() *RunUpdate {
	_u.mutation.ClearPapers()
	return _u
}

// RemovePaperIDs removes the "papers" edge to Paper entities by IDs.
func (_u *RunUpdate) RemovePaperIDs(ids ...string) *RunUpdate {
	_u.mutation.RemovePaperIDs(ids...)
	return _u
}

// RemovePapers removes "papers" edges to Paper entities.
func (_u *RunUpdate) RemovePapers(v ...*Paper) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaperIDs(ids...)
}

// ClearIterations clears all "iterations" edges to the Iteration entity.
func (_u *RunUpdate) ClearIterations() *RunUpdate {
	_u.mutation.ClearIterations()
	return _u
}

// RemoveIterationIDs removes the "iterations" edge to Iteration entities by IDs.
func (_u *RunUpdate) RemoveIterationIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveIterationIDs(ids...)
	return _u
}

// RemoveIterations removes "iterations" edges to Iteration entities.
func (_u *RunUpdate) RemoveIterations(v ...*Iteration) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIterationIDs(ids...)
}

// ClearAgentRecords clears all "agent_records" edges to the AgentRecord entity.
func (_u *RunUpdate) ClearAgentRecords() *RunUpdate {
	_u.mutation.ClearAgentRecords()
	return _u
}

// RemoveAgentRecordIDs removes the "agent_records" edge to AgentRecord entities by IDs.
func (_u *RunUpdate) RemoveAgentRecordIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveAgentRecordIDs(ids...)
	return _u
}

// RemoveAgentRecords removes "agent_records" edges to AgentRecord entities.
func (_u *RunUpdate) RemoveAgentRecords(v ...*AgentRecord) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRecordIDs(ids...)
}

// ClearLogEntries clears all "log_entries" edges to the LogEntry entity.
func (_u *RunUpdate) ClearLogEntries() *RunUpdate {
	_u.mutation.ClearLogEntries()
	return _u
}

// RemoveLogEntryIDs removes the "log_entries" edge to LogEntry entities by IDs.
func (_u *RunUpdate) RemoveLogEntryIDs(ids ...int) *RunUpdate {
	_u.mutation.RemoveLogEntryIDs(ids...)
	return _u
}

// RemoveLogEntries removes "log_entries" edges to LogEntry entities.
func (_u *RunUpdate) RemoveLogEntries(v ...*LogEntry) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogEntryIDs(ids...)
}

// ClearResult clears the "result" edge to the ResultRecord entity.
func (_u *RunUpdate) ClearResult() *RunUpdate {
	_u.mutation.ClearResult()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *RunUpdate) ClearEvents() *RunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *RunUpdate) RemoveEventIDs(ids ...int) *RunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *RunUpdate) RemoveEvents(v ...*Event) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.MaxIterations(); ok {
		if err := run.MaxIterationsValidator(v); err != nil {
			return &ValidationError{Name: "max_iterations", err: fmt.Errorf(`ent: validator failed for field "Run.max_iterations": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConvergenceThreshold(); ok {
		if err := run.ConvergenceThresholdValidator(v); err != nil {
			return &ValidationError{Name: "convergence_threshold", err: fmt.Errorf(`ent: validator failed for field "Run.convergence_threshold": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(run.FieldOwnerID, field.TypeString, value)
	}
	if _u.mutation.OwnerIDCleared() {
		_spec.ClearField(run.FieldOwnerID, field.TypeString)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(run.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domains(); ok {
		_spec.SetField(run.FieldDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldDomains, value)
		})
	}
	if _u.mutation.DomainsCleared() {
		_spec.ClearField(run.FieldDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(run.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(run.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConvergenceThreshold(); ok {
		_spec.SetField(run.FieldConvergenceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConvergenceThreshold(); ok {
		_spec.AddField(run.FieldConvergenceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentIteration(); ok {
		_spec.SetField(run.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(run.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(run.FieldProgressPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(run.FieldProgressPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveriesUsed(); ok {
		_spec.SetField(run.FieldRecoveriesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveriesUsed(); ok {
		_spec.AddField(run.FieldRecoveriesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SandboxFallback(); ok {
		_spec.SetField(run.FieldSandboxFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PapersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPapersIDs(); len(nodes) > 0 && !_u.mutation.PapersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PapersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IterationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIterationsIDs(); len(nodes) > 0 && !_u.mutation.IterationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IterationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRecordsIDs(); len(nodes) > 0 && !_u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogEntriesIDs(); len(nodes) > 0 && !_u.mutation.LogEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *RunUpdateOne) SetOwnerID(v string) *RunUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableOwnerID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (_u *RunUpdateOne) ClearOwnerID() *RunUpdateOne {
	_u.mutation.ClearOwnerID()
	return _u
}

// SetQuery sets the "query" field.
func (_u *RunUpdateOne) SetQuery(v string) *RunUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableQuery(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetDomains sets the "domains" field.
func (_u *RunUpdateOne) SetDomains(v []string) *RunUpdateOne {
	_u.mutation.SetDomains(v)
	return _u
}

// AppendDomains appends value to the "domains" field.
func (_u *RunUpdateOne) AppendDomains(v []string) *RunUpdateOne {
	_u.mutation.AppendDomains(v)
	return _u
}

// ClearDomains clears the value of the "domains" field.
func (_u *RunUpdateOne) ClearDomains() *RunUpdateOne {
	_u.mutation.ClearDomains()
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *RunUpdateOne) SetMaxIterations(v int) *RunUpdateOne {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableMaxIterations(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *RunUpdateOne) AddMaxIterations(v int) *RunUpdateOne {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// SetConvergenceThreshold sets the "convergence_threshold" field.
func (_u *RunUpdateOne) SetConvergenceThreshold(v float64) *RunUpdateOne {
	_u.mutation.ResetConvergenceThreshold()
	_u.mutation.SetConvergenceThreshold(v)
	return _u
}

// SetNillableConvergenceThreshold sets the "convergence_threshold" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableConvergenceThreshold(v *float64) *RunUpdateOne {
	if v != nil {
		_u.SetConvergenceThreshold(*v)
	}
	return _u
}

// AddConvergenceThreshold adds value to the "convergence_threshold" field.
func (_u *RunUpdateOne) AddConvergenceThreshold(v float64) *RunUpdateOne {
	_u.mutation.AddConvergenceThreshold(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentIteration sets the "current_iteration" field.
func (_u *RunUpdateOne) SetCurrentIteration(v int) *RunUpdateOne {
	_u.mutation.ResetCurrentIteration()
	_u.mutation.SetCurrentIteration(v)
	return _u
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCurrentIteration(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetCurrentIteration(*v)
	}
	return _u
}

// AddCurrentIteration adds value to the "current_iteration" field.
func (_u *RunUpdateOne) AddCurrentIteration(v int) *RunUpdateOne {
	_u.mutation.AddCurrentIteration(v)
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *RunUpdateOne) SetProgressPercentage(v int) *RunUpdateOne {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableProgressPercentage(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *RunUpdateOne) AddProgressPercentage(v int) *RunUpdateOne {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetRecoveriesUsed sets the "recoveries_used" field.
func (_u *RunUpdateOne) SetRecoveriesUsed(v int) *RunUpdateOne {
	_u.mutation.ResetRecoveriesUsed()
	_u.mutation.SetRecoveriesUsed(v)
	return _u
}

// SetNillableRecoveriesUsed sets the "recoveries_used" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableRecoveriesUsed(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetRecoveriesUsed(*v)
	}
	return _u
}

// AddRecoveriesUsed adds value to the "recoveries_used" field.
func (_u *RunUpdateOne) AddRecoveriesUsed(v int) *RunUpdateOne {
	_u.mutation.AddRecoveriesUsed(v)
	return _u
}

// SetSandboxFallback sets the "sandbox_fallback" field.
func (_u *RunUpdateOne) SetSandboxFallback(v bool) *RunUpdateOne {
	_u.mutation.SetSandboxFallback(v)
	return _u
}

// SetNillableSandboxFallback sets the "sandbox_fallback" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableSandboxFallback(v *bool) *RunUpdateOne {
	if v != nil {
		_u.SetSandboxFallback(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdateOne) SetErrorMessage(v string) *RunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdateOne) ClearErrorMessage() *RunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddPaperIDs adds the "papers" edge to the Paper entity by IDs.
func (_u *RunUpdateOne) AddPaperIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddPaperIDs(ids...)
	return _u
}

// AddPapers adds the "papers" edges to the Paper entity.
func (_u *RunUpdateOne) AddPapers(v ...*Paper) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaperIDs(ids...)
}

// AddIterationIDs adds the "iterations" edge to the Iteration entity by IDs.
func (_u *RunUpdateOne) AddIterationIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddIterationIDs(ids...)
	return _u
}

// AddIterations adds the "iterations" edges to the Iteration entity.
func (_u *RunUpdateOne) AddIterations(v ...*Iteration) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIterationIDs(ids...)
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_u *RunUpdateOne) AddAgentRecordIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddAgentRecordIDs(ids...)
	return _u
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_u *RunUpdateOne) AddAgentRecords(v ...*AgentRecord) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRecordIDs(ids...)
}

// AddLogEntryIDs adds the "log_entries" edge to the LogEntry entity by IDs.
func (_u *RunUpdateOne) AddLogEntryIDs(ids ...int) *RunUpdateOne {
	_u.mutation.AddLogEntryIDs(ids...)
	return _u
}

// AddLogEntries adds the "log_entries" edges to the LogEntry entity.
func (_u *RunUpdateOne) AddLogEntries(v ...*LogEntry) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogEntryIDs(ids...)
}

// SetResultID sets the "result" edge to the ResultRecord entity by ID.
func (_u *RunUpdateOne) SetResultID(id string) *RunUpdateOne {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the ResultRecord entity by ID if the given value is not nil.
func (_u *RunUpdateOne) SetNillableResultID(id *string) *RunUpdateOne {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the ResultRecord entity.
func (_u *RunUpdateOne) SetResult(v *ResultRecord) *RunUpdateOne {
	return _u.SetResultID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *RunUpdateOne) AddEventIDs(ids ...int) *RunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *RunUpdateOne) AddEvents(v ...*Event) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearPapers clears all "papers" edges to the Paper entity.
func (_u *RunUpdateOne) ClearPapers() *RunUpdateOne {
	_u.mutation.ClearPapers()
	return _u
}

// RemovePaperIDs removes the "papers" edge to Paper entities by IDs.
func (_u *RunUpdateOne) RemovePaperIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemovePaperIDs(ids...)
	return _u
}

// RemovePapers removes "papers" edges to Paper entities.
func (_u *RunUpdateOne) RemovePapers(v ...*Paper) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaperIDs(ids...)
}

// ClearIterations clears all "iterations" edges to the Iteration entity.
func (_u *RunUpdateOne) ClearIterations() *RunUpdateOne {
	_u.mutation.ClearIterations()
	return _u
}

// RemoveIterationIDs removes the "iterations" edge to Iteration entities by IDs.
func (_u *RunUpdateOne) RemoveIterationIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveIterationIDs(ids...)
	return _u
}

// RemoveIterations removes "iterations" edges to Iteration entities.
func (_u *RunUpdateOne) RemoveIterations(v ...*Iteration) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIterationIDs(ids...)
}

// ClearAgentRecords clears all "agent_records" edges to the AgentRecord entity.
func (_u *RunUpdateOne) ClearAgentRecords() *RunUpdateOne {
	_u.mutation.ClearAgentRecords()
	return _u
}

// RemoveAgentRecordIDs removes the "agent_records" edge to AgentRecord entities by IDs.
func (_u *RunUpdateOne) RemoveAgentRecordIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveAgentRecordIDs(ids...)
	return _u
}

// RemoveAgentRecords removes "agent_records" edges to AgentRecord entities.
func (_u *RunUpdateOne) RemoveAgentRecords(v ...*AgentRecord) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRecordIDs(ids...)
}

// ClearLogEntries clears all "log_entries" edges to the LogEntry entity.
func (_u *RunUpdateOne) ClearLogEntries() *RunUpdateOne {
	_u.mutation.ClearLogEntries()
	return _u
}

// RemoveLogEntryIDs removes the "log_entries" edge to LogEntry entities by IDs.
func (_u *RunUpdateOne) RemoveLogEntryIDs(ids ...int) *RunUpdateOne {
	_u.mutation.RemoveLogEntryIDs(ids...)
	return _u
}

// RemoveLogEntries removes "log_entries" edges to LogEntry entities.
func (_u *RunUpdateOne) RemoveLogEntries(v ...*LogEntry) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogEntryIDs(ids...)
}

// ClearResult clears the "result" edge to the ResultRecord entity.
func (_u *RunUpdateOne) ClearResult() *RunUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *RunUpdateOne) ClearEvents() *RunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *RunUpdateOne) RemoveEventIDs(ids ...int) *RunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *RunUpdateOne) RemoveEvents(v ...*Event) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.MaxIterations(); ok {
		if err := run.MaxIterationsValidator(v); err != nil {
			return &ValidationError{Name: "max_iterations", err: fmt.Errorf(`ent: validator failed for field "Run.max_iterations": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConvergenceThreshold(); ok {
		if err := run.ConvergenceThresholdValidator(v); err != nil {
			return &ValidationError{Name: "convergence_threshold", err: fmt.Errorf(`ent: validator failed for field "Run.convergence_threshold": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(run.FieldOwnerID, field.TypeString, value)
	}
	if _u.mutation.OwnerIDCleared() {
		_spec.ClearField(run.FieldOwnerID, field.TypeString)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(run.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domains(); ok {
		_spec.SetField(run.FieldDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldDomains, value)
		})
	}
	if _u.mutation.DomainsCleared() {
		_spec.ClearField(run.FieldDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(run.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(run.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConvergenceThreshold(); ok {
		_spec.SetField(run.FieldConvergenceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConvergenceThreshold(); ok {
		_spec.AddField(run.FieldConvergenceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentIteration(); ok {
		_spec.SetField(run.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(run.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(run.FieldProgressPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(run.FieldProgressPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveriesUsed(); ok {
		_spec.SetField(run.FieldRecoveriesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveriesUsed(); ok {
		_spec.AddField(run.FieldRecoveriesUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SandboxFallback(); ok {
		_spec.SetField(run.FieldSandboxFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PapersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPapersIDs(); len(nodes) > 0 && !_u.mutation.PapersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PapersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IterationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIterationsIDs(); len(nodes) > 0 && !_u.mutation.IterationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IterationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRecordsIDs(); len(nodes) > 0 && !_u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogEntriesIDs(); len(nodes) > 0 && !_u.mutation.LogEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
