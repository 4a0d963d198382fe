// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/ent/event"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/job"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/ent/orchestrationlock"
	"github.com/vi3318/Research-AI-sub000/ent/paper"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
	"github.com/vi3318/Research-AI-sub000/ent/resultrecord"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRecord       = "AgentRecord"
	TypeEvent             = "Event"
	TypeIteration         = "Iteration"
	TypeJob               = "Job"
	TypeLogEntry          = "LogEntry"
	TypeOrchestrationLock = "OrchestrationLock"
	TypePaper             = "Paper"
	TypeResultRecord      = "ResultRecord"
	TypeRun               = "Run"
)

// AgentRecordMutation represents an operation that mutates the AgentRecord nodes in the graph.
type AgentRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_type           *agentrecord.AgentType
	subject_ref          *string
	status               *agentrecord.Status
	attempts             *int
	addattempts          *int
	output               *map[string]interface{}
	error                *string
	provider             *string
	model                *string
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	latency_ms           *int
	addlatency_ms        *int
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	run                  *string
	clearedrun           bool
	iteration            *string
	clearediteration     bool
	done                 bool
	oldValue             func(context.Context) (*AgentRecord, error)
	predicates           []predicate.AgentRecord
}

var _ ent.Mutation = (*AgentRecordMutation)(nil)

// agentrecordOption allows management of the mutation configuration using functional options.
type agentrecordOption func(*AgentRecordMutation)

// newAgentRecordMutation creates new mutation for the AgentRecord entity.
func newAgentRecordMutation(c config, op Op, opts ...agentrecordOption) *AgentRecordMutation {
	m := &AgentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRecordID sets the ID field of the mutation.
func withAgentRecordID(id string) agentrecordOption {
	return func(m *AgentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRecord
		)
		m.oldValue = func(ctx context.Context) (*AgentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRecord sets the old AgentRecord of the mutation.
func withAgentRecord(node *AgentRecord) agentrecordOption {
	return func(m *AgentRecordMutation) {
		m.oldValue = func(context.Context) (*AgentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRecord entities.
func (m *AgentRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AgentRecordMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentRecordMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentRecordMutation) ResetRunID() {
	m.run = nil
}

// SetIterationID sets the "iteration_id" field.
func (m *AgentRecordMutation) SetIterationID(s string) {
	m.iteration = &s
}

// IterationID returns the value of the "iteration_id" field in the mutation.
func (m *AgentRecordMutation) IterationID() (r string, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationID returns the old "iteration_id" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldIterationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationID: %w", err)
	}
	return oldValue.IterationID, nil
}

// ResetIterationID resets all changes to the "iteration_id" field.
func (m *AgentRecordMutation) ResetIterationID() {
	m.iteration = nil
}

// SetAgentType sets the "agent_type" field.
func (m *AgentRecordMutation) SetAgentType(at agentrecord.AgentType) {
	m.agent_type = &at
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentRecordMutation) AgentType() (r agentrecord.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldAgentType(ctx context.Context) (v agentrecord.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentRecordMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetSubjectRef sets the "subject_ref" field.
func (m *AgentRecordMutation) SetSubjectRef(s string) {
	m.subject_ref = &s
}

// SubjectRef returns the value of the "subject_ref" field in the mutation.
func (m *AgentRecordMutation) SubjectRef() (r string, exists bool) {
	v := m.subject_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectRef returns the old "subject_ref" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldSubjectRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectRef: %w", err)
	}
	return oldValue.SubjectRef, nil
}

// ResetSubjectRef resets all changes to the "subject_ref" field.
func (m *AgentRecordMutation) ResetSubjectRef() {
	m.subject_ref = nil
}

// SetStatus sets the "status" field.
func (m *AgentRecordMutation) SetStatus(a agentrecord.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRecordMutation) Status() (r agentrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldStatus(ctx context.Context) (v agentrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRecordMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *AgentRecordMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *AgentRecordMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *AgentRecordMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *AgentRecordMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *AgentRecordMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetOutput sets the "output" field.
func (m *AgentRecordMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *AgentRecordMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *AgentRecordMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[agentrecord.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *AgentRecordMutation) OutputCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *AgentRecordMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, agentrecord.FieldOutput)
}

// SetError sets the "error" field.
func (m *AgentRecordMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *AgentRecordMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *AgentRecordMutation) ClearError() {
	m.error = nil
	m.clearedFields[agentrecord.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *AgentRecordMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *AgentRecordMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, agentrecord.FieldError)
}

// SetProvider sets the "provider" field.
func (m *AgentRecordMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AgentRecordMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *AgentRecordMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[agentrecord.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *AgentRecordMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *AgentRecordMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, agentrecord.FieldProvider)
}

// SetModel sets the "model" field.
func (m *AgentRecordMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentRecordMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentRecordMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agentrecord.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentRecordMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentRecordMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agentrecord.FieldModel)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *AgentRecordMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *AgentRecordMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldPromptTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *AgentRecordMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *AgentRecordMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (m *AgentRecordMutation) ClearPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	m.clearedFields[agentrecord.FieldPromptTokens] = struct{}{}
}

// PromptTokensCleared returns if the "prompt_tokens" field was cleared in this mutation.
func (m *AgentRecordMutation) PromptTokensCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldPromptTokens]
	return ok
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *AgentRecordMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	delete(m.clearedFields, agentrecord.FieldPromptTokens)
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *AgentRecordMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *AgentRecordMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldCompletionTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *AgentRecordMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *AgentRecordMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (m *AgentRecordMutation) ClearCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	m.clearedFields[agentrecord.FieldCompletionTokens] = struct{}{}
}

// CompletionTokensCleared returns if the "completion_tokens" field was cleared in this mutation.
func (m *AgentRecordMutation) CompletionTokensCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldCompletionTokens]
	return ok
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *AgentRecordMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	delete(m.clearedFields, agentrecord.FieldCompletionTokens)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AgentRecordMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AgentRecordMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldLatencyMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *AgentRecordMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AgentRecordMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *AgentRecordMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[agentrecord.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *AgentRecordMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AgentRecordMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, agentrecord.FieldLatencyMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *AgentRecordMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agentrecord.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *AgentRecordMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentRecordMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentRecordMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// ClearIteration clears the "iteration" edge to the Iteration entity.
func (m *AgentRecordMutation) ClearIteration() {
	m.clearediteration = true
	m.clearedFields[agentrecord.FieldIterationID] = struct{}{}
}

// IterationCleared reports if the "iteration" edge to the Iteration entity was cleared.
func (m *AgentRecordMutation) IterationCleared() bool {
	return m.clearediteration
}

// IterationIDs returns the "iteration" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IterationID instead. It exists only for internal usage by the builders.
func (m *AgentRecordMutation) IterationIDs() (ids []string) {
	if id := m.iteration; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIteration resets all changes to the "iteration" edge.
func (m *AgentRecordMutation) ResetIteration() {
	m.iteration = nil
	m.clearediteration = false
}

// Where appends a list predicates to the AgentRecordMutation builder.
func (m *AgentRecordMutation) Where(ps ...predicate.AgentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRecord).
func (m *AgentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRecordMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.run != nil {
		fields = append(fields, agentrecord.FieldRunID)
	}
	if m.iteration != nil {
		fields = append(fields, agentrecord.FieldIterationID)
	}
	if m.agent_type != nil {
		fields = append(fields, agentrecord.FieldAgentType)
	}
	if m.subject_ref != nil {
		fields = append(fields, agentrecord.FieldSubjectRef)
	}
	if m.status != nil {
		fields = append(fields, agentrecord.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, agentrecord.FieldAttempts)
	}
	if m.output != nil {
		fields = append(fields, agentrecord.FieldOutput)
	}
	if m.error != nil {
		fields = append(fields, agentrecord.FieldError)
	}
	if m.provider != nil {
		fields = append(fields, agentrecord.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, agentrecord.FieldModel)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, agentrecord.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, agentrecord.FieldCompletionTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, agentrecord.FieldLatencyMs)
	}
	if m.created_at != nil {
		fields = append(fields, agentrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrecord.FieldRunID:
		return m.RunID()
	case agentrecord.FieldIterationID:
		return m.IterationID()
	case agentrecord.FieldAgentType:
		return m.AgentType()
	case agentrecord.FieldSubjectRef:
		return m.SubjectRef()
	case agentrecord.FieldStatus:
		return m.Status()
	case agentrecord.FieldAttempts:
		return m.Attempts()
	case agentrecord.FieldOutput:
		return m.Output()
	case agentrecord.FieldError:
		return m.Error()
	case agentrecord.FieldProvider:
		return m.Provider()
	case agentrecord.FieldModel:
		return m.Model()
	case agentrecord.FieldPromptTokens:
		return m.PromptTokens()
	case agentrecord.FieldCompletionTokens:
		return m.CompletionTokens()
	case agentrecord.FieldLatencyMs:
		return m.LatencyMs()
	case agentrecord.FieldCreatedAt:
		return m.CreatedAt()
	case agentrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrecord.FieldRunID:
		return m.OldRunID(ctx)
	case agentrecord.FieldIterationID:
		return m.OldIterationID(ctx)
	case agentrecord.FieldAgentType:
		return m.OldAgentType(ctx)
	case agentrecord.FieldSubjectRef:
		return m.OldSubjectRef(ctx)
	case agentrecord.FieldStatus:
		return m.OldStatus(ctx)
	case agentrecord.FieldAttempts:
		return m.OldAttempts(ctx)
	case agentrecord.FieldOutput:
		return m.OldOutput(ctx)
	case agentrecord.FieldError:
		return m.OldError(ctx)
	case agentrecord.FieldProvider:
		return m.OldProvider(ctx)
	case agentrecord.FieldModel:
		return m.OldModel(ctx)
	case agentrecord.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case agentrecord.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case agentrecord.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case agentrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrecord.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentrecord.FieldIterationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationID(v)
		return nil
	case agentrecord.FieldAgentType:
		v, ok := value.(agentrecord.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agentrecord.FieldSubjectRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectRef(v)
		return nil
	case agentrecord.FieldStatus:
		v, ok := value.(agentrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrecord.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case agentrecord.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case agentrecord.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case agentrecord.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case agentrecord.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentrecord.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case agentrecord.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case agentrecord.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case agentrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRecordMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, agentrecord.FieldAttempts)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, agentrecord.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, agentrecord.FieldCompletionTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, agentrecord.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrecord.FieldAttempts:
		return m.AddedAttempts()
	case agentrecord.FieldPromptTokens:
		return m.AddedPromptTokens()
	case agentrecord.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case agentrecord.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrecord.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case agentrecord.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case agentrecord.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case agentrecord.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrecord.FieldOutput) {
		fields = append(fields, agentrecord.FieldOutput)
	}
	if m.FieldCleared(agentrecord.FieldError) {
		fields = append(fields, agentrecord.FieldError)
	}
	if m.FieldCleared(agentrecord.FieldProvider) {
		fields = append(fields, agentrecord.FieldProvider)
	}
	if m.FieldCleared(agentrecord.FieldModel) {
		fields = append(fields, agentrecord.FieldModel)
	}
	if m.FieldCleared(agentrecord.FieldPromptTokens) {
		fields = append(fields, agentrecord.FieldPromptTokens)
	}
	if m.FieldCleared(agentrecord.FieldCompletionTokens) {
		fields = append(fields, agentrecord.FieldCompletionTokens)
	}
	if m.FieldCleared(agentrecord.FieldLatencyMs) {
		fields = append(fields, agentrecord.FieldLatencyMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRecordMutation) ClearField(name string) error {
	switch name {
	case agentrecord.FieldOutput:
		m.ClearOutput()
		return nil
	case agentrecord.FieldError:
		m.ClearError()
		return nil
	case agentrecord.FieldProvider:
		m.ClearProvider()
		return nil
	case agentrecord.FieldModel:
		m.ClearModel()
		return nil
	case agentrecord.FieldPromptTokens:
		m.ClearPromptTokens()
		return nil
	case agentrecord.FieldCompletionTokens:
		m.ClearCompletionTokens()
		return nil
	case agentrecord.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRecordMutation) ResetField(name string) error {
	switch name {
	case agentrecord.FieldRunID:
		m.ResetRunID()
		return nil
	case agentrecord.FieldIterationID:
		m.ResetIterationID()
		return nil
	case agentrecord.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agentrecord.FieldSubjectRef:
		m.ResetSubjectRef()
		return nil
	case agentrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrecord.FieldAttempts:
		m.ResetAttempts()
		return nil
	case agentrecord.FieldOutput:
		m.ResetOutput()
		return nil
	case agentrecord.FieldError:
		m.ResetError()
		return nil
	case agentrecord.FieldProvider:
		m.ResetProvider()
		return nil
	case agentrecord.FieldModel:
		m.ResetModel()
		return nil
	case agentrecord.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case agentrecord.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case agentrecord.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case agentrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, agentrecord.EdgeRun)
	}
	if m.iteration != nil {
		edges = append(edges, agentrecord.EdgeIteration)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrecord.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case agentrecord.EdgeIteration:
		if id := m.iteration; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, agentrecord.EdgeRun)
	}
	if m.clearediteration {
		edges = append(edges, agentrecord.EdgeIteration)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrecord.EdgeRun:
		return m.clearedrun
	case agentrecord.EdgeIteration:
		return m.clearediteration
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRecordMutation) ClearEdge(name string) error {
	switch name {
	case agentrecord.EdgeRun:
		m.ClearRun()
		return nil
	case agentrecord.EdgeIteration:
		m.ClearIteration()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRecordMutation) ResetEdge(name string) error {
	switch name {
	case agentrecord.EdgeRun:
		m.ResetRun()
		return nil
	case agentrecord.EdgeIteration:
		m.ResetIteration()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *EventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EventMutation) ResetRunID() {
	m.run = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *EventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[event.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *EventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *EventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *EventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.run != nil {
		fields = append(fields, event.FieldRunID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldRunID:
		return m.RunID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldRunID:
		return m.OldRunID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldRunID:
		m.ResetRunID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, event.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, event.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// IterationMutation represents an operation that mutates the Iteration nodes in the graph.
type IterationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	iteration_number     *int
	additeration_number  *int
	status               *iteration.Status
	convergence_score    *float64
	addconvergence_score *float64
	started_at           *time.Time
	ended_at             *time.Time
	clearedFields        map[string]struct{}
	run                  *string
	clearedrun           bool
	agent_records        map[string]struct{}
	removedagent_records map[string]struct{}
	clearedagent_records bool
	done                 bool
	oldValue             func(context.Context) (*Iteration, error)
	predicates           []predicate.Iteration
}

var _ ent.Mutation = (*IterationMutation)(nil)

// iterationOption allows management of the mutation configuration using functional options.
type iterationOption func(*IterationMutation)

// newIterationMutation creates new mutation for the Iteration entity.
func newIterationMutation(c config, op Op, opts ...iterationOption) *IterationMutation {
	m := &IterationMutation{
		config:        c,
		op:            op,
		typ:           TypeIteration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIterationID sets the ID field of the mutation.
func withIterationID(id string) iterationOption {
	return func(m *IterationMutation) {
		var (
			err   error
			once  sync.Once
			value *Iteration
		)
		m.oldValue = func(ctx context.Context) (*Iteration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Iteration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIteration sets the old Iteration of the mutation.
func withIteration(node *Iteration) iterationOption {
	return func(m *IterationMutation) {
		m.oldValue = func(context.Context) (*Iteration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IterationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IterationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Iteration entities.
func (m *IterationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IterationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IterationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Iteration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *IterationMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *IterationMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Iteration entity.
// If the Iteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *IterationMutation) ResetRunID() {
	m.run = nil
}

// SetIterationNumber sets the "iteration_number" field.
func (m *IterationMutation) SetIterationNumber(i int) {
	m.iteration_number = &i
	m.additeration_number = nil
}

// IterationNumber returns the value of the "iteration_number" field in the mutation.
func (m *IterationMutation) IterationNumber() (r int, exists bool) {
	v := m.iteration_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationNumber returns the old "iteration_number" field's value of the Iteration entity.
// If the Iteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationMutation) OldIterationNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationNumber: %w", err)
	}
	return oldValue.IterationNumber, nil
}

// AddIterationNumber adds i to the "iteration_number" field.
func (m *IterationMutation) AddIterationNumber(i int) {
	if m.additeration_number != nil {
		*m.additeration_number += i
	} else {
		m.additeration_number = &i
	}
}

// AddedIterationNumber returns the value that was added to the "iteration_number" field in this mutation.
func (m *IterationMutation) AddedIterationNumber() (r int, exists bool) {
	v := m.additeration_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterationNumber resets all changes to the "iteration_number" field.
func (m *IterationMutation) ResetIterationNumber() {
	m.iteration_number = nil
	m.additeration_number = nil
}

// SetStatus sets the "status" field.
func (m *IterationMutation) SetStatus(i iteration.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IterationMutation) Status() (r iteration.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Iteration entity.
// If the Iteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationMutation) OldStatus(ctx context.Context) (v iteration.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IterationMutation) ResetStatus() {
	m.status = nil
}

// SetConvergenceScore sets the "convergence_score" field.
func (m *IterationMutation) SetConvergenceScore(f float64) {
	m.convergence_score = &f
	m.addconvergence_score = nil
}

// ConvergenceScore returns the value of the "convergence_score" field in the mutation.
func (m *IterationMutation) ConvergenceScore() (r float64, exists bool) {
	v := m.convergence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConvergenceScore returns the old "convergence_score" field's value of the Iteration entity.
// If the Iteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationMutation) OldConvergenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConvergenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConvergenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConvergenceScore: %w", err)
	}
	return oldValue.ConvergenceScore, nil
}

// AddConvergenceScore adds f to the "convergence_score" field.
func (m *IterationMutation) AddConvergenceScore(f float64) {
	if m.addconvergence_score != nil {
		*m.addconvergence_score += f
	} else {
		m.addconvergence_score = &f
	}
}

// AddedConvergenceScore returns the value that was added to the "convergence_score" field in this mutation.
func (m *IterationMutation) AddedConvergenceScore() (r float64, exists bool) {
	v := m.addconvergence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConvergenceScore clears the value of the "convergence_score" field.
func (m *IterationMutation) ClearConvergenceScore() {
	m.convergence_score = nil
	m.addconvergence_score = nil
	m.clearedFields[iteration.FieldConvergenceScore] = struct{}{}
}

// ConvergenceScoreCleared returns if the "convergence_score" field was cleared in this mutation.
func (m *IterationMutation) ConvergenceScoreCleared() bool {
	_, ok := m.clearedFields[iteration.FieldConvergenceScore]
	return ok
}

// ResetConvergenceScore resets all changes to the "convergence_score" field.
func (m *IterationMutation) ResetConvergenceScore() {
	m.convergence_score = nil
	m.addconvergence_score = nil
	delete(m.clearedFields, iteration.FieldConvergenceScore)
}

// SetStartedAt sets the "started_at" field.
func (m *IterationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IterationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Iteration entity.
// If the Iteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IterationMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *IterationMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *IterationMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Iteration entity.
// If the Iteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *IterationMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[iteration.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *IterationMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[iteration.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *IterationMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, iteration.FieldEndedAt)
}

// ClearRun clears the "run" edge to the Run entity.
func (m *IterationMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[iteration.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *IterationMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *IterationMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *IterationMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by ids.
func (m *IterationMutation) AddAgentRecordIDs(ids ...string) {
	if m.agent_records == nil {
		m.agent_records = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_records[ids[i]] = struct{}{}
	}
}

// ClearAgentRecords clears the "agent_records" edge to the AgentRecord entity.
func (m *IterationMutation) ClearAgentRecords() {
	m.clearedagent_records = true
}

// AgentRecordsCleared reports if the "agent_records" edge to the AgentRecord entity was cleared.
func (m *IterationMutation) AgentRecordsCleared() bool {
	return m.clearedagent_records
}

// RemoveAgentRecordIDs removes the "agent_records" edge to the AgentRecord entity by IDs.
func (m *IterationMutation) RemoveAgentRecordIDs(ids ...string) {
	if m.removedagent_records == nil {
		m.removedagent_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_records, ids[i])
		m.removedagent_records[ids[i]] = struct{}{}
	}
}

// RemovedAgentRecords returns the removed IDs of the "agent_records" edge to the AgentRecord entity.
func (m *IterationMutation) RemovedAgentRecordsIDs() (ids []string) {
	for id := range m.removedagent_records {
		ids = append(ids, id)
	}
	return
}

// AgentRecordsIDs returns the "agent_records" edge IDs in the mutation.
func (m *IterationMutation) AgentRecordsIDs() (ids []string) {
	for id := range m.agent_records {
		ids = append(ids, id)
	}
	return
}

// ResetAgentRecords resets all changes to the "agent_records" edge.
func (m *IterationMutation) ResetAgentRecords() {
	m.agent_records = nil
	m.clearedagent_records = false
	m.removedagent_records = nil
}

// Where appends a list predicates to the IterationMutation builder.
func (m *IterationMutation) Where(ps ...predicate.Iteration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IterationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IterationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Iteration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IterationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IterationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Iteration).
func (m *IterationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IterationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, iteration.FieldRunID)
	}
	if m.iteration_number != nil {
		fields = append(fields, iteration.FieldIterationNumber)
	}
	if m.status != nil {
		fields = append(fields, iteration.FieldStatus)
	}
	if m.convergence_score != nil {
		fields = append(fields, iteration.FieldConvergenceScore)
	}
	if m.started_at != nil {
		fields = append(fields, iteration.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, iteration.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IterationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case iteration.FieldRunID:
		return m.RunID()
	case iteration.FieldIterationNumber:
		return m.IterationNumber()
	case iteration.FieldStatus:
		return m.Status()
	case iteration.FieldConvergenceScore:
		return m.ConvergenceScore()
	case iteration.FieldStartedAt:
		return m.StartedAt()
	case iteration.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IterationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case iteration.FieldRunID:
		return m.OldRunID(ctx)
	case iteration.FieldIterationNumber:
		return m.OldIterationNumber(ctx)
	case iteration.FieldStatus:
		return m.OldStatus(ctx)
	case iteration.FieldConvergenceScore:
		return m.OldConvergenceScore(ctx)
	case iteration.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case iteration.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Iteration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IterationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case iteration.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case iteration.FieldIterationNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationNumber(v)
		return nil
	case iteration.FieldStatus:
		v, ok := value.(iteration.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case iteration.FieldConvergenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConvergenceScore(v)
		return nil
	case iteration.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case iteration.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Iteration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IterationMutation) AddedFields() []string {
	var fields []string
	if m.additeration_number != nil {
		fields = append(fields, iteration.FieldIterationNumber)
	}
	if m.addconvergence_score != nil {
		fields = append(fields, iteration.FieldConvergenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IterationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case iteration.FieldIterationNumber:
		return m.AddedIterationNumber()
	case iteration.FieldConvergenceScore:
		return m.AddedConvergenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IterationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case iteration.FieldIterationNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterationNumber(v)
		return nil
	case iteration.FieldConvergenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConvergenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Iteration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IterationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(iteration.FieldConvergenceScore) {
		fields = append(fields, iteration.FieldConvergenceScore)
	}
	if m.FieldCleared(iteration.FieldEndedAt) {
		fields = append(fields, iteration.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IterationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IterationMutation) ClearField(name string) error {
	switch name {
	case iteration.FieldConvergenceScore:
		m.ClearConvergenceScore()
		return nil
	case iteration.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown Iteration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IterationMutation) ResetField(name string) error {
	switch name {
	case iteration.FieldRunID:
		m.ResetRunID()
		return nil
	case iteration.FieldIterationNumber:
		m.ResetIterationNumber()
		return nil
	case iteration.FieldStatus:
		m.ResetStatus()
		return nil
	case iteration.FieldConvergenceScore:
		m.ResetConvergenceScore()
		return nil
	case iteration.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case iteration.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown Iteration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IterationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, iteration.EdgeRun)
	}
	if m.agent_records != nil {
		edges = append(edges, iteration.EdgeAgentRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IterationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case iteration.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case iteration.EdgeAgentRecords:
		ids := make([]ent.Value, 0, len(m.agent_records))
		for id := range m.agent_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IterationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedagent_records != nil {
		edges = append(edges, iteration.EdgeAgentRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IterationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case iteration.EdgeAgentRecords:
		ids := make([]ent.Value, 0, len(m.removedagent_records))
		for id := range m.removedagent_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IterationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, iteration.EdgeRun)
	}
	if m.clearedagent_records {
		edges = append(edges, iteration.EdgeAgentRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IterationMutation) EdgeCleared(name string) bool {
	switch name {
	case iteration.EdgeRun:
		return m.clearedrun
	case iteration.EdgeAgentRecords:
		return m.clearedagent_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IterationMutation) ClearEdge(name string) error {
	switch name {
	case iteration.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Iteration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IterationMutation) ResetEdge(name string) error {
	switch name {
	case iteration.EdgeRun:
		m.ResetRun()
		return nil
	case iteration.EdgeAgentRecords:
		m.ResetAgentRecords()
		return nil
	}
	return fmt.Errorf("unknown Iteration edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op              Op
	typ             string
	id              *string
	queue           *string
	run_id          *string
	payload         *map[string]interface{}
	status          *job.Status
	attempt         *int
	addattempt      *int
	max_attempts    *int
	addmax_attempts *int
	next_run_at     *time.Time
	last_error      *string
	pod_id          *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Job, error)
	predicates      []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *JobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *JobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *JobMutation) ResetQueue() {
	m.queue = nil
}

// SetRunID sets the "run_id" field.
func (m *JobMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *JobMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *JobMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[job.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *JobMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[job.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *JobMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, job.FieldRunID)
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempt sets the "attempt" field.
func (m *JobMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *JobMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *JobMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *JobMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *JobMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetNextRunAt sets the "next_run_at" field.
func (m *JobMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *JobMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNextRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *JobMutation) ResetNextRunAt() {
	m.next_run_at = nil
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.queue != nil {
		fields = append(fields, job.FieldQueue)
	}
	if m.run_id != nil {
		fields = append(fields, job.FieldRunID)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempt != nil {
		fields = append(fields, job.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.next_run_at != nil {
		fields = append(fields, job.FieldNextRunAt)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldQueue:
		return m.Queue()
	case job.FieldRunID:
		return m.RunID()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttempt:
		return m.Attempt()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldNextRunAt:
		return m.NextRunAt()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldQueue:
		return m.OldQueue(ctx)
	case job.FieldRunID:
		return m.OldRunID(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttempt:
		return m.OldAttempt(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case job.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, job.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempt:
		return m.AddedAttempt()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldRunID) {
		fields = append(fields, job.FieldRunID)
	}
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldRunID:
		m.ClearRunID()
		return nil
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldQueue:
		m.ResetQueue()
		return nil
	case job.FieldRunID:
		m.ResetRunID()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttempt:
		m.ResetAttempt()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// LogEntryMutation represents an operation that mutates the LogEntry nodes in the graph.
type LogEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	iteration_id  *string
	agent_id      *string
	level         *logentry.Level
	message       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*LogEntry, error)
	predicates    []predicate.LogEntry
}

var _ ent.Mutation = (*LogEntryMutation)(nil)

// logentryOption allows management of the mutation configuration using functional options.
type logentryOption func(*LogEntryMutation)

// newLogEntryMutation creates new mutation for the LogEntry entity.
func newLogEntryMutation(c config, op Op, opts ...logentryOption) *LogEntryMutation {
	m := &LogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLogEntryID sets the ID field of the mutation.
func withLogEntryID(id int) logentryOption {
	return func(m *LogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LogEntry
		)
		m.oldValue = func(ctx context.Context) (*LogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLogEntry sets the old LogEntry of the mutation.
func withLogEntry(node *LogEntry) logentryOption {
	return func(m *LogEntryMutation) {
		m.oldValue = func(context.Context) (*LogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LogEntry entities.
func (m *LogEntryMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LogEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LogEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *LogEntryMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *LogEntryMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *LogEntryMutation) ResetRunID() {
	m.run = nil
}

// SetIterationID sets the "iteration_id" field.
func (m *LogEntryMutation) SetIterationID(s string) {
	m.iteration_id = &s
}

// IterationID returns the value of the "iteration_id" field in the mutation.
func (m *LogEntryMutation) IterationID() (r string, exists bool) {
	v := m.iteration_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationID returns the old "iteration_id" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldIterationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationID: %w", err)
	}
	return oldValue.IterationID, nil
}

// ClearIterationID clears the value of the "iteration_id" field.
func (m *LogEntryMutation) ClearIterationID() {
	m.iteration_id = nil
	m.clearedFields[logentry.FieldIterationID] = struct{}{}
}

// IterationIDCleared returns if the "iteration_id" field was cleared in this mutation.
func (m *LogEntryMutation) IterationIDCleared() bool {
	_, ok := m.clearedFields[logentry.FieldIterationID]
	return ok
}

// ResetIterationID resets all changes to the "iteration_id" field.
func (m *LogEntryMutation) ResetIterationID() {
	m.iteration_id = nil
	delete(m.clearedFields, logentry.FieldIterationID)
}

// SetAgentID sets the "agent_id" field.
func (m *LogEntryMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *LogEntryMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *LogEntryMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[logentry.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *LogEntryMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[logentry.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *LogEntryMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, logentry.FieldAgentID)
}

// SetLevel sets the "level" field.
func (m *LogEntryMutation) SetLevel(l logentry.Level) {
	m.level = &l
}

// Level returns the value of the "level" field in the mutation.
func (m *LogEntryMutation) Level() (r logentry.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldLevel(ctx context.Context) (v logentry.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *LogEntryMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *LogEntryMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *LogEntryMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *LogEntryMutation) ResetMessage() {
	m.message = nil
}

// SetPayload sets the "payload" field.
func (m *LogEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *LogEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *LogEntryMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[logentry.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *LogEntryMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[logentry.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *LogEntryMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, logentry.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *LogEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LogEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LogEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *LogEntryMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[logentry.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *LogEntryMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *LogEntryMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *LogEntryMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the LogEntryMutation builder.
func (m *LogEntryMutation) Where(ps ...predicate.LogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LogEntry).
func (m *LogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LogEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, logentry.FieldRunID)
	}
	if m.iteration_id != nil {
		fields = append(fields, logentry.FieldIterationID)
	}
	if m.agent_id != nil {
		fields = append(fields, logentry.FieldAgentID)
	}
	if m.level != nil {
		fields = append(fields, logentry.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, logentry.FieldMessage)
	}
	if m.payload != nil {
		fields = append(fields, logentry.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, logentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case logentry.FieldRunID:
		return m.RunID()
	case logentry.FieldIterationID:
		return m.IterationID()
	case logentry.FieldAgentID:
		return m.AgentID()
	case logentry.FieldLevel:
		return m.Level()
	case logentry.FieldMessage:
		return m.Message()
	case logentry.FieldPayload:
		return m.Payload()
	case logentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case logentry.FieldRunID:
		return m.OldRunID(ctx)
	case logentry.FieldIterationID:
		return m.OldIterationID(ctx)
	case logentry.FieldAgentID:
		return m.OldAgentID(ctx)
	case logentry.FieldLevel:
		return m.OldLevel(ctx)
	case logentry.FieldMessage:
		return m.OldMessage(ctx)
	case logentry.FieldPayload:
		return m.OldPayload(ctx)
	case logentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case logentry.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case logentry.FieldIterationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationID(v)
		return nil
	case logentry.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case logentry.FieldLevel:
		v, ok := value.(logentry.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case logentry.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case logentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case logentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LogEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LogEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(logentry.FieldIterationID) {
		fields = append(fields, logentry.FieldIterationID)
	}
	if m.FieldCleared(logentry.FieldAgentID) {
		fields = append(fields, logentry.FieldAgentID)
	}
	if m.FieldCleared(logentry.FieldPayload) {
		fields = append(fields, logentry.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LogEntryMutation) ClearField(name string) error {
	switch name {
	case logentry.FieldIterationID:
		m.ClearIterationID()
		return nil
	case logentry.FieldAgentID:
		m.ClearAgentID()
		return nil
	case logentry.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown LogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LogEntryMutation) ResetField(name string) error {
	switch name {
	case logentry.FieldRunID:
		m.ResetRunID()
		return nil
	case logentry.FieldIterationID:
		m.ResetIterationID()
		return nil
	case logentry.FieldAgentID:
		m.ResetAgentID()
		return nil
	case logentry.FieldLevel:
		m.ResetLevel()
		return nil
	case logentry.FieldMessage:
		m.ResetMessage()
		return nil
	case logentry.FieldPayload:
		m.ResetPayload()
		return nil
	case logentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, logentry.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LogEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case logentry.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, logentry.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LogEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case logentry.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LogEntryMutation) ClearEdge(name string) error {
	switch name {
	case logentry.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown LogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LogEntryMutation) ResetEdge(name string) error {
	switch name {
	case logentry.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown LogEntry edge %s", name)
}

// OrchestrationLockMutation represents an operation that mutates the OrchestrationLock nodes in the graph.
type OrchestrationLockMutation struct {
	config
	op            Op
	typ           string
	id            *string
	pod_id        *string
	acquired_at   *time.Time
	heartbeat_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OrchestrationLock, error)
	predicates    []predicate.OrchestrationLock
}

var _ ent.Mutation = (*OrchestrationLockMutation)(nil)

// orchestrationlockOption allows management of the mutation configuration using functional options.
type orchestrationlockOption func(*OrchestrationLockMutation)

// newOrchestrationLockMutation creates new mutation for the OrchestrationLock entity.
func newOrchestrationLockMutation(c config, op Op, opts ...orchestrationlockOption) *OrchestrationLockMutation {
	m := &OrchestrationLockMutation{
		config:        c,
		op:            op,
		typ:           TypeOrchestrationLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrchestrationLockID sets the ID field of the mutation.
func withOrchestrationLockID(id string) orchestrationlockOption {
	return func(m *OrchestrationLockMutation) {
		var (
			err   error
			once  sync.Once
			value *OrchestrationLock
		)
		m.oldValue = func(ctx context.Context) (*OrchestrationLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrchestrationLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrchestrationLock sets the old OrchestrationLock of the mutation.
func withOrchestrationLock(node *OrchestrationLock) orchestrationlockOption {
	return func(m *OrchestrationLockMutation) {
		m.oldValue = func(context.Context) (*OrchestrationLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrchestrationLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrchestrationLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrchestrationLock entities.
func (m *OrchestrationLockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrchestrationLockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrchestrationLockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrchestrationLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPodID sets the "pod_id" field.
func (m *OrchestrationLockMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *OrchestrationLockMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the OrchestrationLock entity.
// If the OrchestrationLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationLockMutation) OldPodID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *OrchestrationLockMutation) ResetPodID() {
	m.pod_id = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *OrchestrationLockMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *OrchestrationLockMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the OrchestrationLock entity.
// If the OrchestrationLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationLockMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *OrchestrationLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *OrchestrationLockMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *OrchestrationLockMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the OrchestrationLock entity.
// If the OrchestrationLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestrationLockMutation) OldHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *OrchestrationLockMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
}

// Where appends a list predicates to the OrchestrationLockMutation builder.
func (m *OrchestrationLockMutation) Where(ps ...predicate.OrchestrationLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrchestrationLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrchestrationLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrchestrationLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrchestrationLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrchestrationLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrchestrationLock).
func (m *OrchestrationLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrchestrationLockMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.pod_id != nil {
		fields = append(fields, orchestrationlock.FieldPodID)
	}
	if m.acquired_at != nil {
		fields = append(fields, orchestrationlock.FieldAcquiredAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, orchestrationlock.FieldHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrchestrationLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orchestrationlock.FieldPodID:
		return m.PodID()
	case orchestrationlock.FieldAcquiredAt:
		return m.AcquiredAt()
	case orchestrationlock.FieldHeartbeatAt:
		return m.HeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrchestrationLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orchestrationlock.FieldPodID:
		return m.OldPodID(ctx)
	case orchestrationlock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case orchestrationlock.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrchestrationLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestrationLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orchestrationlock.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case orchestrationlock.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case orchestrationlock.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestrationLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrchestrationLockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrchestrationLockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestrationLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrchestrationLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrchestrationLockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrchestrationLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrchestrationLockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OrchestrationLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrchestrationLockMutation) ResetField(name string) error {
	switch name {
	case orchestrationlock.FieldPodID:
		m.ResetPodID()
		return nil
	case orchestrationlock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case orchestrationlock.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown OrchestrationLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrchestrationLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrchestrationLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrchestrationLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrchestrationLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrchestrationLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrchestrationLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrchestrationLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrchestrationLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrchestrationLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrchestrationLock edge %s", name)
}

// PaperMutation represents an operation that mutates the Paper nodes in the graph.
type PaperMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	title              *string
	abstract           *string
	full_text          *string
	ingestion_order    *int
	addingestion_order *int
	clearedFields      map[string]struct{}
	run                *string
	clearedrun         bool
	done               bool
	oldValue           func(context.Context) (*Paper, error)
	predicates         []predicate.Paper
}

var _ ent.Mutation = (*PaperMutation)(nil)

// paperOption allows management of the mutation configuration using functional options.
type paperOption func(*PaperMutation)

// newPaperMutation creates new mutation for the Paper entity.
func newPaperMutation(c config, op Op, opts ...paperOption) *PaperMutation {
	m := &PaperMutation{
		config:        c,
		op:            op,
		typ:           TypePaper,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaperID sets the ID field of the mutation.
func withPaperID(id string) paperOption {
	return func(m *PaperMutation) {
		var (
			err   error
			once  sync.Once
			value *Paper
		)
		m.oldValue = func(ctx context.Context) (*Paper, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Paper.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaper sets the old Paper of the mutation.
func withPaper(node *Paper) paperOption {
	return func(m *PaperMutation) {
		m.oldValue = func(context.Context) (*Paper, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaperMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaperMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Paper entities.
func (m *PaperMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaperMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaperMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Paper.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *PaperMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *PaperMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *PaperMutation) ResetRunID() {
	m.run = nil
}

// SetTitle sets the "title" field.
func (m *PaperMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PaperMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PaperMutation) ResetTitle() {
	m.title = nil
}

// SetAbstract sets the "abstract" field.
func (m *PaperMutation) SetAbstract(s string) {
	m.abstract = &s
}

// Abstract returns the value of the "abstract" field in the mutation.
func (m *PaperMutation) Abstract() (r string, exists bool) {
	v := m.abstract
	if v == nil {
		return
	}
	return *v, true
}

// OldAbstract returns the old "abstract" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldAbstract(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbstract is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbstract requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbstract: %w", err)
	}
	return oldValue.Abstract, nil
}

// ClearAbstract clears the value of the "abstract" field.
func (m *PaperMutation) ClearAbstract() {
	m.abstract = nil
	m.clearedFields[paper.FieldAbstract] = struct{}{}
}

// AbstractCleared returns if the "abstract" field was cleared in this mutation.
func (m *PaperMutation) AbstractCleared() bool {
	_, ok := m.clearedFields[paper.FieldAbstract]
	return ok
}

// ResetAbstract resets all changes to the "abstract" field.
func (m *PaperMutation) ResetAbstract() {
	m.abstract = nil
	delete(m.clearedFields, paper.FieldAbstract)
}

// SetFullText sets the "full_text" field.
func (m *PaperMutation) SetFullText(s string) {
	m.full_text = &s
}

// FullText returns the value of the "full_text" field in the mutation.
func (m *PaperMutation) FullText() (r string, exists bool) {
	v := m.full_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFullText returns the old "full_text" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldFullText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullText: %w", err)
	}
	return oldValue.FullText, nil
}

// ClearFullText clears the value of the "full_text" field.
func (m *PaperMutation) ClearFullText() {
	m.full_text = nil
	m.clearedFields[paper.FieldFullText] = struct{}{}
}

// FullTextCleared returns if the "full_text" field was cleared in this mutation.
func (m *PaperMutation) FullTextCleared() bool {
	_, ok := m.clearedFields[paper.FieldFullText]
	return ok
}

// ResetFullText resets all changes to the "full_text" field.
func (m *PaperMutation) ResetFullText() {
	m.full_text = nil
	delete(m.clearedFields, paper.FieldFullText)
}

// SetIngestionOrder sets the "ingestion_order" field.
func (m *PaperMutation) SetIngestionOrder(i int) {
	m.ingestion_order = &i
	m.addingestion_order = nil
}

// IngestionOrder returns the value of the "ingestion_order" field in the mutation.
func (m *PaperMutation) IngestionOrder() (r int, exists bool) {
	v := m.ingestion_order
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestionOrder returns the old "ingestion_order" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldIngestionOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestionOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestionOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestionOrder: %w", err)
	}
	return oldValue.IngestionOrder, nil
}

// AddIngestionOrder adds i to the "ingestion_order" field.
func (m *PaperMutation) AddIngestionOrder(i int) {
	if m.addingestion_order != nil {
		*m.addingestion_order += i
	} else {
		m.addingestion_order = &i
	}
}

// AddedIngestionOrder returns the value that was added to the "ingestion_order" field in this mutation.
func (m *PaperMutation) AddedIngestionOrder() (r int, exists bool) {
	v := m.addingestion_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetIngestionOrder resets all changes to the "ingestion_order" field.
func (m *PaperMutation) ResetIngestionOrder() {
	m.ingestion_order = nil
	m.addingestion_order = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *PaperMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[paper.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *PaperMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *PaperMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *PaperMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the PaperMutation builder.
func (m *PaperMutation) Where(ps ...predicate.Paper) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaperMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaperMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Paper, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaperMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaperMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Paper).
func (m *PaperMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaperMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.run != nil {
		fields = append(fields, paper.FieldRunID)
	}
	if m.title != nil {
		fields = append(fields, paper.FieldTitle)
	}
	if m.abstract != nil {
		fields = append(fields, paper.FieldAbstract)
	}
	if m.full_text != nil {
		fields = append(fields, paper.FieldFullText)
	}
	if m.ingestion_order != nil {
		fields = append(fields, paper.FieldIngestionOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaperMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paper.FieldRunID:
		return m.RunID()
	case paper.FieldTitle:
		return m.Title()
	case paper.FieldAbstract:
		return m.Abstract()
	case paper.FieldFullText:
		return m.FullText()
	case paper.FieldIngestionOrder:
		return m.IngestionOrder()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaperMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paper.FieldRunID:
		return m.OldRunID(ctx)
	case paper.FieldTitle:
		return m.OldTitle(ctx)
	case paper.FieldAbstract:
		return m.OldAbstract(ctx)
	case paper.FieldFullText:
		return m.OldFullText(ctx)
	case paper.FieldIngestionOrder:
		return m.OldIngestionOrder(ctx)
	}
	return nil, fmt.Errorf("unknown Paper field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paper.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case paper.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case paper.FieldAbstract:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbstract(v)
		return nil
	case paper.FieldFullText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullText(v)
		return nil
	case paper.FieldIngestionOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestionOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Paper field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaperMutation) AddedFields() []string {
	var fields []string
	if m.addingestion_order != nil {
		fields = append(fields, paper.FieldIngestionOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaperMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paper.FieldIngestionOrder:
		return m.AddedIngestionOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paper.FieldIngestionOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIngestionOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Paper numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaperMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paper.FieldAbstract) {
		fields = append(fields, paper.FieldAbstract)
	}
	if m.FieldCleared(paper.FieldFullText) {
		fields = append(fields, paper.FieldFullText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaperMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaperMutation) ClearField(name string) error {
	switch name {
	case paper.FieldAbstract:
		m.ClearAbstract()
		return nil
	case paper.FieldFullText:
		m.ClearFullText()
		return nil
	}
	return fmt.Errorf("unknown Paper nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaperMutation) ResetField(name string) error {
	switch name {
	case paper.FieldRunID:
		m.ResetRunID()
		return nil
	case paper.FieldTitle:
		m.ResetTitle()
		return nil
	case paper.FieldAbstract:
		m.ResetAbstract()
		return nil
	case paper.FieldFullText:
		m.ResetFullText()
		return nil
	case paper.FieldIngestionOrder:
		m.ResetIngestionOrder()
		return nil
	}
	return fmt.Errorf("unknown Paper field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaperMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, paper.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaperMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paper.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaperMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaperMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaperMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, paper.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaperMutation) EdgeCleared(name string) bool {
	switch name {
	case paper.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaperMutation) ClearEdge(name string) error {
	switch name {
	case paper.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Paper unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaperMutation) ResetEdge(name string) error {
	switch name {
	case paper.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Paper edge %s", name)
}

// ResultRecordMutation represents an operation that mutates the ResultRecord nodes in the graph.
type ResultRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	data          *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*ResultRecord, error)
	predicates    []predicate.ResultRecord
}

var _ ent.Mutation = (*ResultRecordMutation)(nil)

// resultrecordOption allows management of the mutation configuration using functional options.
type resultrecordOption func(*ResultRecordMutation)

// newResultRecordMutation creates new mutation for the ResultRecord entity.
func newResultRecordMutation(c config, op Op, opts ...resultrecordOption) *ResultRecordMutation {
	m := &ResultRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeResultRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResultRecordID sets the ID field of the mutation.
func withResultRecordID(id string) resultrecordOption {
	return func(m *ResultRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ResultRecord
		)
		m.oldValue = func(ctx context.Context) (*ResultRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResultRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResultRecord sets the old ResultRecord of the mutation.
func withResultRecord(node *ResultRecord) resultrecordOption {
	return func(m *ResultRecordMutation) {
		m.oldValue = func(context.Context) (*ResultRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResultRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResultRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResultRecord entities.
func (m *ResultRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResultRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResultRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResultRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ResultRecordMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ResultRecordMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ResultRecordMutation) ResetRunID() {
	m.run = nil
}

// SetData sets the "data" field.
func (m *ResultRecordMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ResultRecordMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *ResultRecordMutation) ResetData() {
	m.data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResultRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResultRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResultRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ResultRecordMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[resultrecord.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ResultRecordMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ResultRecordMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ResultRecordMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ResultRecordMutation builder.
func (m *ResultRecordMutation) Where(ps ...predicate.ResultRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResultRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResultRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResultRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResultRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResultRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResultRecord).
func (m *ResultRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResultRecordMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.run != nil {
		fields = append(fields, resultrecord.FieldRunID)
	}
	if m.data != nil {
		fields = append(fields, resultrecord.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, resultrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResultRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resultrecord.FieldRunID:
		return m.RunID()
	case resultrecord.FieldData:
		return m.Data()
	case resultrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResultRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resultrecord.FieldRunID:
		return m.OldRunID(ctx)
	case resultrecord.FieldData:
		return m.OldData(ctx)
	case resultrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResultRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resultrecord.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case resultrecord.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case resultrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResultRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResultRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResultRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResultRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResultRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResultRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResultRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ResultRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResultRecordMutation) ResetField(name string) error {
	switch name {
	case resultrecord.FieldRunID:
		m.ResetRunID()
		return nil
	case resultrecord.FieldData:
		m.ResetData()
		return nil
	case resultrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResultRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResultRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, resultrecord.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResultRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case resultrecord.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResultRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResultRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResultRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, resultrecord.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResultRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case resultrecord.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResultRecordMutation) ClearEdge(name string) error {
	switch name {
	case resultrecord.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown ResultRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResultRecordMutation) ResetEdge(name string) error {
	switch name {
	case resultrecord.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown ResultRecord edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	workspace_id             *string
	owner_id                 *string
	query                    *string
	domains                  *[]string
	appenddomains            []string
	max_iterations           *int
	addmax_iterations        *int
	convergence_threshold    *float64
	addconvergence_threshold *float64
	status                   *run.Status
	current_iteration        *int
	addcurrent_iteration     *int
	progress_percentage      *int
	addprogress_percentage   *int
	recoveries_used          *int
	addrecoveries_used       *int
	sandbox_fallback         *bool
	error_message            *string
	created_at               *time.Time
	started_at               *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	papers                   map[string]struct{}
	removedpapers            map[string]struct{}
	clearedpapers            bool
	iterations               map[string]struct{}
	removediterations        map[string]struct{}
	clearediterations        bool
	agent_records            map[string]struct{}
	removedagent_records     map[string]struct{}
	clearedagent_records     bool
	log_entries              map[int]struct{}
	removedlog_entries       map[int]struct{}
	clearedlog_entries       bool
	result                   *string
	clearedresult            bool
	events                   map[int]struct{}
	removedevents            map[int]struct{}
	clearedevents            bool
	done                     bool
	oldValue                 func(context.Context) (*Run, error)
	predicates               []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *RunMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *RunMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *RunMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *RunMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *RunMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldOwnerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ClearOwnerID clears the value of the "owner_id" field.
func (m *RunMutation) ClearOwnerID() {
	m.owner_id = nil
	m.clearedFields[run.FieldOwnerID] = struct{}{}
}

// OwnerIDCleared returns if the "owner_id" field was cleared in this mutation.
func (m *RunMutation) OwnerIDCleared() bool {
	_, ok := m.clearedFields[run.FieldOwnerID]
	return ok
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *RunMutation) ResetOwnerID() {
	m.owner_id = nil
	delete(m.clearedFields, run.FieldOwnerID)
}

// SetQuery sets the "query" field.
func (m *RunMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *RunMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *RunMutation) ResetQuery() {
	m.query = nil
}

// SetDomains sets the "domains" field.
func (m *RunMutation) SetDomains(s []string) {
	m.domains = &s
	m.appenddomains = nil
}

// Domains returns the value of the "domains" field in the mutation.
func (m *RunMutation) Domains() (r []string, exists bool) {
	v := m.domains
	if v == nil {
		return
	}
	return *v, true
}

// OldDomains returns the old "domains" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldDomains(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomains is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomains requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomains: %w", err)
	}
	return oldValue.Domains, nil
}

// AppendDomains adds s to the "domains" field.
func (m *RunMutation) AppendDomains(s []string) {
	m.appenddomains = append(m.appenddomains, s...)
}

// AppendedDomains returns the list of values that were appended to the "domains" field in this mutation.
func (m *RunMutation) AppendedDomains() ([]string, bool) {
	if len(m.appenddomains) == 0 {
		return nil, false
	}
	return m.appenddomains, true
}

// ClearDomains clears the value of the "domains" field.
func (m *RunMutation) ClearDomains() {
	m.domains = nil
	m.appenddomains = nil
	m.clearedFields[run.FieldDomains] = struct{}{}
}

// DomainsCleared returns if the "domains" field was cleared in this mutation.
func (m *RunMutation) DomainsCleared() bool {
	_, ok := m.clearedFields[run.FieldDomains]
	return ok
}

// ResetDomains resets all changes to the "domains" field.
func (m *RunMutation) ResetDomains() {
	m.domains = nil
	m.appenddomains = nil
	delete(m.clearedFields, run.FieldDomains)
}

// SetMaxIterations sets the "max_iterations" field.
func (m *RunMutation) SetMaxIterations(i int) {
	m.max_iterations = &i
	m.addmax_iterations = nil
}

// MaxIterations returns the value of the "max_iterations" field in the mutation.
func (m *RunMutation) MaxIterations() (r int, exists bool) {
	v := m.max_iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIterations returns the old "max_iterations" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldMaxIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIterations: %w", err)
	}
	return oldValue.MaxIterations, nil
}

// AddMaxIterations adds i to the "max_iterations" field.
func (m *RunMutation) AddMaxIterations(i int) {
	if m.addmax_iterations != nil {
		*m.addmax_iterations += i
	} else {
		m.addmax_iterations = &i
	}
}

// AddedMaxIterations returns the value that was added to the "max_iterations" field in this mutation.
func (m *RunMutation) AddedMaxIterations() (r int, exists bool) {
	v := m.addmax_iterations
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxIterations resets all changes to the "max_iterations" field.
func (m *RunMutation) ResetMaxIterations() {
	m.max_iterations = nil
	m.addmax_iterations = nil
}

// SetConvergenceThreshold sets the "convergence_threshold" field.
func (m *RunMutation) SetConvergenceThreshold(f float64) {
	m.convergence_threshold = &f
	m.addconvergence_threshold = nil
}

// ConvergenceThreshold returns the value of the "convergence_threshold" field in the mutation.
func (m *RunMutation) ConvergenceThreshold() (r float64, exists bool) {
	v := m.convergence_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldConvergenceThreshold returns the old "convergence_threshold" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldConvergenceThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConvergenceThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConvergenceThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConvergenceThreshold: %w", err)
	}
	return oldValue.ConvergenceThreshold, nil
}

// AddConvergenceThreshold adds f to the "convergence_threshold" field.
func (m *RunMutation) AddConvergenceThreshold(f float64) {
	if m.addconvergence_threshold != nil {
		*m.addconvergence_threshold += f
	} else {
		m.addconvergence_threshold = &f
	}
}

// AddedConvergenceThreshold returns the value that was added to the "convergence_threshold" field in this mutation.
func (m *RunMutation) AddedConvergenceThreshold() (r float64, exists bool) {
	v := m.addconvergence_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetConvergenceThreshold resets all changes to the "convergence_threshold" field.
func (m *RunMutation) ResetConvergenceThreshold() {
	m.convergence_threshold = nil
	m.addconvergence_threshold = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentIteration sets the "current_iteration" field.
func (m *RunMutation) SetCurrentIteration(i int) {
	m.current_iteration = &i
	m.addcurrent_iteration = nil
}

// CurrentIteration returns the value of the "current_iteration" field in the mutation.
func (m *RunMutation) CurrentIteration() (r int, exists bool) {
	v := m.current_iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentIteration returns the old "current_iteration" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCurrentIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentIteration: %w", err)
	}
	return oldValue.CurrentIteration, nil
}

// AddCurrentIteration adds i to the "current_iteration" field.
func (m *RunMutation) AddCurrentIteration(i int) {
	if m.addcurrent_iteration != nil {
		*m.addcurrent_iteration += i
	} else {
		m.addcurrent_iteration = &i
	}
}

// AddedCurrentIteration returns the value that was added to the "current_iteration" field in this mutation.
func (m *RunMutation) AddedCurrentIteration() (r int, exists bool) {
	v := m.addcurrent_iteration
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentIteration resets all changes to the "current_iteration" field.
func (m *RunMutation) ResetCurrentIteration() {
	m.current_iteration = nil
	m.addcurrent_iteration = nil
}

// SetProgressPercentage sets the "progress_percentage" field.
func (m *RunMutation) SetProgressPercentage(i int) {
	m.progress_percentage = &i
	m.addprogress_percentage = nil
}

// ProgressPercentage returns the value of the "progress_percentage" field in the mutation.
func (m *RunMutation) ProgressPercentage() (r int, exists bool) {
	v := m.progress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercentage returns the old "progress_percentage" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldProgressPercentage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercentage: %w", err)
	}
	return oldValue.ProgressPercentage, nil
}

// AddProgressPercentage adds i to the "progress_percentage" field.
func (m *RunMutation) AddProgressPercentage(i int) {
	if m.addprogress_percentage != nil {
		*m.addprogress_percentage += i
	} else {
		m.addprogress_percentage = &i
	}
}

// AddedProgressPercentage returns the value that was added to the "progress_percentage" field in this mutation.
func (m *RunMutation) AddedProgressPercentage() (r int, exists bool) {
	v := m.addprogress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercentage resets all changes to the "progress_percentage" field.
func (m *RunMutation) ResetProgressPercentage() {
	m.progress_percentage = nil
	m.addprogress_percentage = nil
}

// SetRecoveriesUsed sets the "recoveries_used" field.
func (m *RunMutation) SetRecoveriesUsed(i int) {
	m.recoveries_used = &i
	m.addrecoveries_used = nil
}

// RecoveriesUsed returns the value of the "recoveries_used" field in the mutation.
func (m *RunMutation) RecoveriesUsed() (r int, exists bool) {
	v := m.recoveries_used
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveriesUsed returns the old "recoveries_used" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRecoveriesUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveriesUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveriesUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveriesUsed: %w", err)
	}
	return oldValue.RecoveriesUsed, nil
}

// AddRecoveriesUsed adds i to the "recoveries_used" field.
func (m *RunMutation) AddRecoveriesUsed(i int) {
	if m.addrecoveries_used != nil {
		*m.addrecoveries_used += i
	} else {
		m.addrecoveries_used = &i
	}
}

// AddedRecoveriesUsed returns the value that was added to the "recoveries_used" field in this mutation.
func (m *RunMutation) AddedRecoveriesUsed() (r int, exists bool) {
	v := m.addrecoveries_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveriesUsed resets all changes to the "recoveries_used" field.
func (m *RunMutation) ResetRecoveriesUsed() {
	m.recoveries_used = nil
	m.addrecoveries_used = nil
}

// SetSandboxFallback sets the "sandbox_fallback" field.
func (m *RunMutation) SetSandboxFallback(b bool) {
	m.sandbox_fallback = &b
}

// SandboxFallback returns the value of the "sandbox_fallback" field in the mutation.
func (m *RunMutation) SandboxFallback() (r bool, exists bool) {
	v := m.sandbox_fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxFallback returns the old "sandbox_fallback" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSandboxFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxFallback: %w", err)
	}
	return oldValue.SandboxFallback, nil
}

// ResetSandboxFallback resets all changes to the "sandbox_fallback" field.
func (m *RunMutation) ResetSandboxFallback() {
	m.sandbox_fallback = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *RunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[run.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, run.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// AddPaperIDs adds the "papers" edge to the Paper entity by ids.
func (m *RunMutation) AddPaperIDs(ids ...string) {
	if m.papers == nil {
		m.papers = make(map[string]struct{})
	}
	for i := range ids {
		m.papers[ids[i]] = struct{}{}
	}
}

// ClearPapers clears the "papers" edge to the Paper entity.
func (m *RunMutation) ClearPapers() {
	m.clearedpapers = true
}

// PapersCleared reports if the "papers" edge to the Paper entity was cleared.
func (m *RunMutation) PapersCleared() bool {
	return m.clearedpapers
}

// RemovePaperIDs removes the "papers" edge to the Paper entity by IDs.
func (m *RunMutation) RemovePaperIDs(ids ...string) {
	if m.removedpapers == nil {
		m.removedpapers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.papers, ids[i])
		m.removedpapers[ids[i]] = struct{}{}
	}
}

// RemovedPapers returns the removed IDs of the "papers" edge to the Paper entity.
func (m *RunMutation) RemovedPapersIDs() (ids []string) {
	for id := range m.removedpapers {
		ids = append(ids, id)
	}
	return
}

// PapersIDs returns the "papers" edge IDs in the mutation.
func (m *RunMutation) PapersIDs() (ids []string) {
	for id := range m.papers {
		ids = append(ids, id)
	}
	return
}

// ResetPapers resets all changes to the "papers" edge.
func (m *RunMutation) ResetPapers() {
	m.papers = nil
	m.clearedpapers = false
	m.removedpapers = nil
}

// AddIterationIDs adds the "iterations" edge to the Iteration entity by ids.
func (m *RunMutation) AddIterationIDs(ids ...string) {
	if m.iterations == nil {
		m.iterations = make(map[string]struct{})
	}
	for i := range ids {
		m.iterations[ids[i]] = struct{}{}
	}
}

// ClearIterations clears the "iterations" edge to the Iteration entity.
func (m *RunMutation) ClearIterations() {
	m.clearediterations = true
}

// IterationsCleared reports if the "iterations" edge to the Iteration entity was cleared.
func (m *RunMutation) IterationsCleared() bool {
	return m.clearediterations
}

// RemoveIterationIDs removes the "iterations" edge to the Iteration entity by IDs.
func (m *RunMutation) RemoveIterationIDs(ids ...string) {
	if m.removediterations == nil {
		m.removediterations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.iterations, ids[i])
		m.removediterations[ids[i]] = struct{}{}
	}
}

// RemovedIterations returns the removed IDs of the "iterations" edge to the Iteration entity.
func (m *RunMutation) RemovedIterationsIDs() (ids []string) {
	for id := range m.removediterations {
		ids = append(ids, id)
	}
	return
}

// IterationsIDs returns the "iterations" edge IDs in the mutation.
func (m *RunMutation) IterationsIDs() (ids []string) {
	for id := range m.iterations {
		ids = append(ids, id)
	}
	return
}

// ResetIterations resets all changes to the "iterations" edge.
func (m *RunMutation) ResetIterations() {
	m.iterations = nil
	m.clearediterations = false
	m.removediterations = nil
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by ids.
func (m *RunMutation) AddAgentRecordIDs(ids ...string) {
	if m.agent_records == nil {
		m.agent_records = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_records[ids[i]] = struct{}{}
	}
}

// ClearAgentRecords clears the "agent_records" edge to the AgentRecord entity.
func (m *RunMutation) ClearAgentRecords() {
	m.clearedagent_records = true
}

// AgentRecordsCleared reports if the "agent_records" edge to the AgentRecord entity was cleared.
func (m *RunMutation) AgentRecordsCleared() bool {
	return m.clearedagent_records
}

// RemoveAgentRecordIDs removes the "agent_records" edge to the AgentRecord entity by IDs.
func (m *RunMutation) RemoveAgentRecordIDs(ids ...string) {
	if m.removedagent_records == nil {
		m.removedagent_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_records, ids[i])
		m.removedagent_records[ids[i]] = struct{}{}
	}
}

// RemovedAgentRecords returns the removed IDs of the "agent_records" edge to the AgentRecord entity.
func (m *RunMutation) RemovedAgentRecordsIDs() (ids []string) {
	for id := range m.removedagent_records {
		ids = append(ids, id)
	}
	return
}

// AgentRecordsIDs returns the "agent_records" edge IDs in the mutation.
func (m *RunMutation) AgentRecordsIDs() (ids []string) {
	for id := range m.agent_records {
		ids = append(ids, id)
	}
	return
}

// ResetAgentRecords resets all changes to the "agent_records" edge.
func (m *RunMutation) ResetAgentRecords() {
	m.agent_records = nil
	m.clearedagent_records = false
	m.removedagent_records = nil
}

// AddLogEntryIDs adds the "log_entries" edge to the LogEntry entity by ids.
func (m *RunMutation) AddLogEntryIDs(ids ...int) {
	if m.log_entries == nil {
		m.log_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.log_entries[ids[i]] = struct{}{}
	}
}

// ClearLogEntries clears the "log_entries" edge to the LogEntry entity.
func (m *RunMutation) ClearLogEntries() {
	m.clearedlog_entries = true
}

// LogEntriesCleared reports if the "log_entries" edge to the LogEntry entity was cleared.
func (m *RunMutation) LogEntriesCleared() bool {
	return m.clearedlog_entries
}

// RemoveLogEntryIDs removes the "log_entries" edge to the LogEntry entity by IDs.
func (m *RunMutation) RemoveLogEntryIDs(ids ...int) {
	if m.removedlog_entries == nil {
		m.removedlog_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.log_entries, ids[i])
		m.removedlog_entries[ids[i]] = struct{}{}
	}
}

// RemovedLogEntries returns the removed IDs of the "log_entries" edge to the LogEntry entity.
func (m *RunMutation) RemovedLogEntriesIDs() (ids []int) {
	for id := range m.removedlog_entries {
		ids = append(ids, id)
	}
	return
}

// LogEntriesIDs returns the "log_entries" edge IDs in the mutation.
func (m *RunMutation) LogEntriesIDs() (ids []int) {
	for id := range m.log_entries {
		ids = append(ids, id)
	}
	return
}

// ResetLogEntries resets all changes to the "log_entries" edge.
func (m *RunMutation) ResetLogEntries() {
	m.log_entries = nil
	m.clearedlog_entries = false
	m.removedlog_entries = nil
}

// SetResultID sets the "result" edge to the ResultRecord entity by id.
func (m *RunMutation) SetResultID(id string) {
	m.result = &id
}

// ClearResult clears the "result" edge to the ResultRecord entity.
func (m *RunMutation) ClearResult() {
	m.clearedresult = true
}

// ResultCleared reports if the "result" edge to the ResultRecord entity was cleared.
func (m *RunMutation) ResultCleared() bool {
	return m.clearedresult
}

// ResultID returns the "result" edge ID in the mutation.
func (m *RunMutation) ResultID() (id string, exists bool) {
	if m.result != nil {
		return *m.result, true
	}
	return
}

// ResultIDs returns the "result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResultID instead. It exists only for internal usage by the builders.
func (m *RunMutation) ResultIDs() (ids []string) {
	if id := m.result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResult resets all changes to the "result" edge.
func (m *RunMutation) ResetResult() {
	m.result = nil
	m.clearedresult = false
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *RunMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *RunMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *RunMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *RunMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *RunMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *RunMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *RunMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.workspace_id != nil {
		fields = append(fields, run.FieldWorkspaceID)
	}
	if m.owner_id != nil {
		fields = append(fields, run.FieldOwnerID)
	}
	if m.query != nil {
		fields = append(fields, run.FieldQuery)
	}
	if m.domains != nil {
		fields = append(fields, run.FieldDomains)
	}
	if m.max_iterations != nil {
		fields = append(fields, run.FieldMaxIterations)
	}
	if m.convergence_threshold != nil {
		fields = append(fields, run.FieldConvergenceThreshold)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.current_iteration != nil {
		fields = append(fields, run.FieldCurrentIteration)
	}
	if m.progress_percentage != nil {
		fields = append(fields, run.FieldProgressPercentage)
	}
	if m.recoveries_used != nil {
		fields = append(fields, run.FieldRecoveriesUsed)
	}
	if m.sandbox_fallback != nil {
		fields = append(fields, run.FieldSandboxFallback)
	}
	if m.error_message != nil {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldWorkspaceID:
		return m.WorkspaceID()
	case run.FieldOwnerID:
		return m.OwnerID()
	case run.FieldQuery:
		return m.Query()
	case run.FieldDomains:
		return m.Domains()
	case run.FieldMaxIterations:
		return m.MaxIterations()
	case run.FieldConvergenceThreshold:
		return m.ConvergenceThreshold()
	case run.FieldStatus:
		return m.Status()
	case run.FieldCurrentIteration:
		return m.CurrentIteration()
	case run.FieldProgressPercentage:
		return m.ProgressPercentage()
	case run.FieldRecoveriesUsed:
		return m.RecoveriesUsed()
	case run.FieldSandboxFallback:
		return m.SandboxFallback()
	case run.FieldErrorMessage:
		return m.ErrorMessage()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case run.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case run.FieldQuery:
		return m.OldQuery(ctx)
	case run.FieldDomains:
		return m.OldDomains(ctx)
	case run.FieldMaxIterations:
		return m.OldMaxIterations(ctx)
	case run.FieldConvergenceThreshold:
		return m.OldConvergenceThreshold(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldCurrentIteration:
		return m.OldCurrentIteration(ctx)
	case run.FieldProgressPercentage:
		return m.OldProgressPercentage(ctx)
	case run.FieldRecoveriesUsed:
		return m.OldRecoveriesUsed(ctx)
	case run.FieldSandboxFallback:
		return m.OldSandboxFallback(ctx)
	case run.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case run.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case run.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case run.FieldDomains:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomains(v)
		return nil
	case run.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIterations(v)
		return nil
	case run.FieldConvergenceThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConvergenceThreshold(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentIteration(v)
		return nil
	case run.FieldProgressPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercentage(v)
		return nil
	case run.FieldRecoveriesUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveriesUsed(v)
		return nil
	case run.FieldSandboxFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxFallback(v)
		return nil
	case run.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addmax_iterations != nil {
		fields = append(fields, run.FieldMaxIterations)
	}
	if m.addconvergence_threshold != nil {
		fields = append(fields, run.FieldConvergenceThreshold)
	}
	if m.addcurrent_iteration != nil {
		fields = append(fields, run.FieldCurrentIteration)
	}
	if m.addprogress_percentage != nil {
		fields = append(fields, run.FieldProgressPercentage)
	}
	if m.addrecoveries_used != nil {
		fields = append(fields, run.FieldRecoveriesUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldMaxIterations:
		return m.AddedMaxIterations()
	case run.FieldConvergenceThreshold:
		return m.AddedConvergenceThreshold()
	case run.FieldCurrentIteration:
		return m.AddedCurrentIteration()
	case run.FieldProgressPercentage:
		return m.AddedProgressPercentage()
	case run.FieldRecoveriesUsed:
		return m.AddedRecoveriesUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIterations(v)
		return nil
	case run.FieldConvergenceThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConvergenceThreshold(v)
		return nil
	case run.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentIteration(v)
		return nil
	case run.FieldProgressPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercentage(v)
		return nil
	case run.FieldRecoveriesUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveriesUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldOwnerID) {
		fields = append(fields, run.FieldOwnerID)
	}
	if m.FieldCleared(run.FieldDomains) {
		fields = append(fields, run.FieldDomains)
	}
	if m.FieldCleared(run.FieldErrorMessage) {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldOwnerID:
		m.ClearOwnerID()
		return nil
	case run.FieldDomains:
		m.ClearDomains()
		return nil
	case run.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case run.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case run.FieldQuery:
		m.ResetQuery()
		return nil
	case run.FieldDomains:
		m.ResetDomains()
		return nil
	case run.FieldMaxIterations:
		m.ResetMaxIterations()
		return nil
	case run.FieldConvergenceThreshold:
		m.ResetConvergenceThreshold()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldCurrentIteration:
		m.ResetCurrentIteration()
		return nil
	case run.FieldProgressPercentage:
		m.ResetProgressPercentage()
		return nil
	case run.FieldRecoveriesUsed:
		m.ResetRecoveriesUsed()
		return nil
	case run.FieldSandboxFallback:
		m.ResetSandboxFallback()
		return nil
	case run.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.papers != nil {
		edges = append(edges, run.EdgePapers)
	}
	if m.iterations != nil {
		edges = append(edges, run.EdgeIterations)
	}
	if m.agent_records != nil {
		edges = append(edges, run.EdgeAgentRecords)
	}
	if m.log_entries != nil {
		edges = append(edges, run.EdgeLogEntries)
	}
	if m.result != nil {
		edges = append(edges, run.EdgeResult)
	}
	if m.events != nil {
		edges = append(edges, run.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgePapers:
		ids := make([]ent.Value, 0, len(m.papers))
		for id := range m.papers {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeIterations:
		ids := make([]ent.Value, 0, len(m.iterations))
		for id := range m.iterations {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeAgentRecords:
		ids := make([]ent.Value, 0, len(m.agent_records))
		for id := range m.agent_records {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeLogEntries:
		ids := make([]ent.Value, 0, len(m.log_entries))
		for id := range m.log_entries {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeResult:
		if id := m.result; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedpapers != nil {
		edges = append(edges, run.EdgePapers)
	}
	if m.removediterations != nil {
		edges = append(edges, run.EdgeIterations)
	}
	if m.removedagent_records != nil {
		edges = append(edges, run.EdgeAgentRecords)
	}
	if m.removedlog_entries != nil {
		edges = append(edges, run.EdgeLogEntries)
	}
	if m.removedevents != nil {
		edges = append(edges, run.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgePapers:
		ids := make([]ent.Value, 0, len(m.removedpapers))
		for id := range m.removedpapers {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeIterations:
		ids := make([]ent.Value, 0, len(m.removediterations))
		for id := range m.removediterations {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeAgentRecords:
		ids := make([]ent.Value, 0, len(m.removedagent_records))
		for id := range m.removedagent_records {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeLogEntries:
		ids := make([]ent.Value, 0, len(m.removedlog_entries))
		for id := range m.removedlog_entries {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedpapers {
		edges = append(edges, run.EdgePapers)
	}
	if m.clearediterations {
		edges = append(edges, run.EdgeIterations)
	}
	if m.clearedagent_records {
		edges = append(edges, run.EdgeAgentRecords)
	}
	if m.clearedlog_entries {
		edges = append(edges, run.EdgeLogEntries)
	}
	if m.clearedresult {
		edges = append(edges, run.EdgeResult)
	}
	if m.clearedevents {
		edges = append(edges, run.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgePapers:
		return m.clearedpapers
	case run.EdgeIterations:
		return m.clearediterations
	case run.EdgeAgentRecords:
		return m.clearedagent_records
	case run.EdgeLogEntries:
		return m.clearedlog_entries
	case run.EdgeResult:
		return m.clearedresult
	case run.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgePapers:
		m.ResetPapers()
		return nil
	case run.EdgeIterations:
		m.ResetIterations()
		return nil
	case run.EdgeAgentRecords:
		m.ResetAgentRecords()
		return nil
	case run.EdgeLogEntries:
		m.ResetLogEntries()
		return nil
	case run.EdgeResult:
		m.ResetResult()
		return nil
	case run.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}
