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
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
)

// IterationUpdate is the builder for updating Iteration entities.
type IterationUpdate struct {
	config
	hooks    []Hook
	mutation *IterationMutation
}

// Where appends a list predicates to the IterationUpdate builder.
func (_u *IterationUpdate) Where(ps ...predicate.Iteration) *IterationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IterationUpdate) SetStatus(v iteration.Status) *IterationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IterationUpdate) SetNillableStatus(v *iteration.Status) *IterationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConvergenceScore sets the "convergence_score" field.
func (_u *IterationUpdate) SetConvergenceScore(v float64) *IterationUpdate {
	_u.mutation.ResetConvergenceScore()
	_u.mutation.SetConvergenceScore(v)
	return _u
}

// SetNillableConvergenceScore sets the "convergence_score" field if the given value is not nil.
func (_u *IterationUpdate) SetNillableConvergenceScore(v *float64) *IterationUpdate {
	if v != nil {
		_u.SetConvergenceScore(*v)
	}
	return _u
}

// AddConvergenceScore adds value to the "convergence_score" field.
func (_u *IterationUpdate) AddConvergenceScore(v float64) *IterationUpdate {
	_u.mutation.AddConvergenceScore(v)
	return _u
}

// ClearConvergenceScore clears the value of the "convergence_score" field.
func (_u *IterationUpdate) ClearConvergenceScore() *IterationUpdate {
	_u.mutation.ClearConvergenceScore()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *IterationUpdate) SetEndedAt(v time.Time) *IterationUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *IterationUpdate) SetNillableEndedAt(v *time.Time) *IterationUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *IterationUpdate) ClearEndedAt() *IterationUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_u *IterationUpdate) AddAgentRecordIDs(ids ...string) *IterationUpdate {
	_u.mutation.AddAgentRecordIDs(ids...)
	return _u
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_u *IterationUpdate) AddAgentRecords(v ...*AgentRecord) *IterationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRecordIDs(ids...)
}

// Mutation returns the IterationMutation object of the builder.
func (_u *IterationUpdate) Mutation() *IterationMutation {
	return _u.mutation
}

// ClearAgentRecords clears all "agent_records" edges to the AgentRecord entity.
func (_u *IterationUpdate) ClearAgentRecords() *IterationUpdate {
	_u.mutation.ClearAgentRecords()
	return _u
}

// RemoveAgentRecordIDs removes the "agent_records" edge to AgentRecord entities by IDs.
func (_u *IterationUpdate) RemoveAgentRecordIDs(ids ...string) *IterationUpdate {
	_u.mutation.RemoveAgentRecordIDs(ids...)
	return _u
}

// RemoveAgentRecords removes "agent_records" edges to AgentRecord entities.
func (_u *IterationUpdate) RemoveAgentRecords(v ...*AgentRecord) *IterationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IterationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IterationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IterationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IterationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IterationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := iteration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Iteration.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Iteration.run"`)
	}
	return nil
}

func (_u *IterationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(iteration.Table, iteration.Columns, sqlgraph.NewFieldSpec(iteration.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(iteration.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConvergenceScore(); ok {
		_spec.SetField(iteration.FieldConvergenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConvergenceScore(); ok {
		_spec.AddField(iteration.FieldConvergenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConvergenceScoreCleared() {
		_spec.ClearField(iteration.FieldConvergenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(iteration.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(iteration.FieldEndedAt, field.TypeTime)
	}
	if _u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRecordsIDs(); len(nodes) > 0 && !_u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{iteration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IterationUpdateOne is the builder for updating a single Iteration entity.
type IterationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IterationMutation
}

// SetStatus sets the "status" field.
func (_u *IterationUpdateOne) SetStatus(v iteration.Status) *IterationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IterationUpdateOne) SetNillableStatus(v *iteration.Status) *IterationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConvergenceScore sets the "convergence_score" field.
func (_u *IterationUpdateOne) SetConvergenceScore(v float64) *IterationUpdateOne {
	_u.mutation.ResetConvergenceScore()
	_u.mutation.SetConvergenceScore(v)
	return _u
}

// SetNillableConvergenceScore sets the "convergence_score" field if the given value is not nil.
func (_u *IterationUpdateOne) SetNillableConvergenceScore(v *float64) *IterationUpdateOne {
	if v != nil {
		_u.SetConvergenceScore(*v)
	}
	return _u
}

// AddConvergenceScore adds value to the "convergence_score" field.
func (_u *IterationUpdateOne) AddConvergenceScore(v float64) *IterationUpdateOne {
	_u.mutation.AddConvergenceScore(v)
	return _u
}

// ClearConvergenceScore clears the value of the "convergence_score" field.
func (_u *IterationUpdateOne) ClearConvergenceScore() *IterationUpdateOne {
	_u.mutation.ClearConvergenceScore()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *IterationUpdateOne) SetEndedAt(v time.Time) *IterationUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *IterationUpdateOne) SetNillableEndedAt(v *time.Time) *IterationUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *IterationUpdateOne) ClearEndedAt() *IterationUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_u *IterationUpdateOne) AddAgentRecordIDs(ids ...string) *IterationUpdateOne {
	_u.mutation.AddAgentRecordIDs(ids...)
	return _u
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_u *IterationUpdateOne) AddAgentRecords(v ...*AgentRecord) *IterationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRecordIDs(ids...)
}

// Mutation returns the IterationMutation object of the builder.
func (_u *IterationUpdateOne) Mutation() *IterationMutation {
	return _u.mutation
}

// ClearAgentRecords clears all "agent_records" edges to the AgentRecord entity.
func (_u *IterationUpdateOne) ClearAgentRecords() *IterationUpdateOne {
	_u.mutation.ClearAgentRecords()
	return _u
}

// RemoveAgentRecordIDs removes the "agent_records" edge to AgentRecord entities by IDs.
func (_u *IterationUpdateOne) RemoveAgentRecordIDs(ids ...string) *IterationUpdateOne {
	_u.mutation.RemoveAgentRecordIDs(ids...)
	return _u
}

// RemoveAgentRecords removes "agent_records" edges to AgentRecord entities.
func (_u *IterationUpdateOne) RemoveAgentRecords(v ...*AgentRecord) *IterationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRecordIDs(ids...)
}

// Where appends a list predicates to the IterationUpdate builder.
func (_u *IterationUpdateOne) Where(ps ...predicate.Iteration) *IterationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IterationUpdateOne) Select(field string, fields ...string) *IterationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Iteration entity.
func (_u *IterationUpdateOne) Save(ctx context.Context) (*Iteration, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IterationUpdateOne) SaveX(ctx context.Context) *Iteration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IterationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IterationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IterationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := iteration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Iteration.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Iteration.run"`)
	}
	return nil
}

func (_u *IterationUpdateOne) sqlSave(ctx context.Context) (_node *Iteration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(iteration.Table, iteration.Columns, sqlgraph.NewFieldSpec(iteration.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Iteration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, iteration.FieldID)
		for _, f := range fields {
			if !iteration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != iteration.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(iteration.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConvergenceScore(); ok {
		_spec.SetField(iteration.FieldConvergenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConvergenceScore(); ok {
		_spec.AddField(iteration.FieldConvergenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConvergenceScoreCleared() {
		_spec.ClearField(iteration.FieldConvergenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(iteration.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(iteration.FieldEndedAt, field.TypeTime)
	}
	if _u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRecordsIDs(); len(nodes) > 0 && !_u.mutation.AgentRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Iteration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{iteration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
