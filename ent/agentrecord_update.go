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
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
)

// AgentRecordUpdate is the builder for updating AgentRecord entities.
type AgentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRecordMutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdate) Where(ps ...predicate.AgentRecord) *AgentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRecordUpdate) SetStatus(v agentrecord.Status) *AgentRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableStatus(v *agentrecord.Status) *AgentRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AgentRecordUpdate) SetAttempts(v int) *AgentRecordUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableAttempts(v *int) *AgentRecordUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AgentRecordUpdate) AddAttempts(v int) *AgentRecordUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentRecordUpdate) SetOutput(v map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentRecordUpdate) ClearOutput() *AgentRecordUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *AgentRecordUpdate) SetError(v string) *AgentRecordUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableError(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AgentRecordUpdate) ClearError() *AgentRecordUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AgentRecordUpdate) SetProvider(v string) *AgentRecordUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableProvider(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *AgentRecordUpdate) ClearProvider() *AgentRecordUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRecordUpdate) SetModel(v string) *AgentRecordUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableModel(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentRecordUpdate) ClearModel() *AgentRecordUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *AgentRecordUpdate) SetPromptTokens(v int) *AgentRecordUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillablePromptTokens(v *int) *AgentRecordUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *AgentRecordUpdate) AddPromptTokens(v int) *AgentRecordUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *AgentRecordUpdate) ClearPromptTokens() *AgentRecordUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *AgentRecordUpdate) SetCompletionTokens(v int) *AgentRecordUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableCompletionTokens(v *int) *AgentRecordUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *AgentRecordUpdate) AddCompletionTokens(v int) *AgentRecordUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *AgentRecordUpdate) ClearCompletionTokens() *AgentRecordUpdate {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AgentRecordUpdate) SetLatencyMs(v int) *AgentRecordUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableLatencyMs(v *int) *AgentRecordUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AgentRecordUpdate) AddLatencyMs(v int) *AgentRecordUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *AgentRecordUpdate) ClearLatencyMs() *AgentRecordUpdate {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRecordUpdate) SetUpdatedAt(v time.Time) *AgentRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdate) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRecord.run"`)
	}
	if _u.mutation.IterationCleared() && len(_u.mutation.IterationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRecord.iteration"`)
	}
	return nil
}

func (_u *AgentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(agentrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(agentrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentrecord.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentrecord.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(agentrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(agentrecord.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(agentrecord.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(agentrecord.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentrecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(agentrecord.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(agentrecord.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(agentrecord.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(agentrecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(agentrecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(agentrecord.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(agentrecord.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(agentrecord.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(agentrecord.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRecordUpdateOne is the builder for updating a single AgentRecord entity.
type AgentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRecordMutation
}

// SetStatus sets the "status" field.
func (_u *AgentRecordUpdateOne) SetStatus(v agentrecord.Status) *AgentRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableStatus(v *agentrecord.Status) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AgentRecordUpdateOne) SetAttempts(v int) *AgentRecordUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableAttempts(v *int) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AgentRecordUpdateOne) AddAttempts(v int) *AgentRecordUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentRecordUpdateOne) SetOutput(v map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentRecordUpdateOne) ClearOutput() *AgentRecordUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *AgentRecordUpdateOne) SetError(v string) *AgentRecordUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableError(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AgentRecordUpdateOne) ClearError() *AgentRecordUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AgentRecordUpdateOne) SetProvider(v string) *AgentRecordUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableProvider(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *AgentRecordUpdateOne) ClearProvider() *AgentRecordUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRecordUpdateOne) SetModel(v string) *AgentRecordUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableModel(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentRecordUpdateOne) ClearModel() *AgentRecordUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *AgentRecordUpdateOne) SetPromptTokens(v int) *AgentRecordUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillablePromptTokens(v *int) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *AgentRecordUpdateOne) AddPromptTokens(v int) *AgentRecordUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *AgentRecordUpdateOne) ClearPromptTokens() *AgentRecordUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *AgentRecordUpdateOne) SetCompletionTokens(v int) *AgentRecordUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableCompletionTokens(v *int) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *AgentRecordUpdateOne) AddCompletionTokens(v int) *AgentRecordUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *AgentRecordUpdateOne) ClearCompletionTokens() *AgentRecordUpdateOne {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AgentRecordUpdateOne) SetLatencyMs(v int) *AgentRecordUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableLatencyMs(v *int) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AgentRecordUpdateOne) AddLatencyMs(v int) *AgentRecordUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *AgentRecordUpdateOne) ClearLatencyMs() *AgentRecordUpdateOne {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRecordUpdateOne) SetUpdatedAt(v time.Time) *AgentRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdateOne) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdateOne) Where(ps ...predicate.AgentRecord) *AgentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRecordUpdateOne) Select(field string, fields ...string) *AgentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRecord entity.
func (_u *AgentRecordUpdateOne) Save(ctx context.Context) (*AgentRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) SaveX(ctx context.Context) *AgentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRecord.run"`)
	}
	if _u.mutation.IterationCleared() && len(_u.mutation.IterationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRecord.iteration"`)
	}
	return nil
}

func (_u *AgentRecordUpdateOne) sqlSave(ctx context.Context) (_node *AgentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrecord.FieldID)
		for _, f := range fields {
			if !agentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrecord.FieldID {
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
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(agentrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(agentrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentrecord.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentrecord.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(agentrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(agentrecord.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(agentrecord.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(agentrecord.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrecord.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentrecord.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(agentrecord.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(agentrecord.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(agentrecord.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(agentrecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(agentrecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(agentrecord.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(agentrecord.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(agentrecord.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(agentrecord.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
