// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// AgentRecord is the model entity for the AgentRecord schema.
type AgentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// IterationID holds the value of the "iteration_id" field.
	IterationID string `json:"iteration_id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType agentrecord.AgentType `json:"agent_type,omitempty"`
	// paper_id for micro, iteration_id for meso/meta
	SubjectRef string `json:"subject_ref,omitempty"`
	// Status holds the value of the "status" field.
	Status agentrecord.Status `json:"status,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Output holds the value of the "output" field.
	Output map[string]interface{} `json:"output,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// LLM provider that fulfilled this agent's calls
	Provider *string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model *string `json:"model,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens *int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens *int `json:"completion_tokens,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs *int `json:"latency_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Doubles as the version stamp for conditional updates
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentRecordQuery when eager-loading is set.
	Edges        AgentRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentRecordEdges holds the relations/edges for other nodes in the graph.
type AgentRecordEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// Iteration holds the value of the iteration edge.
	Iteration *Iteration `json:"iteration,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentRecordEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// IterationOrErr returns the Iteration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentRecordEdges) IterationOrErr() (*Iteration, error) {
	if e.Iteration != nil {
		return e.Iteration, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: iteration.Label}
	}
	return nil, &NotLoadedError{edge: "iteration"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldOutput:
			values[i] = new([]byte)
		case agentrecord.FieldAttempts, agentrecord.FieldPromptTokens, agentrecord.FieldCompletionTokens, agentrecord.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case agentrecord.FieldID, agentrecord.FieldRunID, agentrecord.FieldIterationID, agentrecord.FieldAgentType, agentrecord.FieldSubjectRef, agentrecord.FieldStatus, agentrecord.FieldError, agentrecord.FieldProvider, agentrecord.FieldModel:
			values[i] = new(sql.NullString)
		case agentrecord.FieldCreatedAt, agentrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRecord fields.
func (_m *AgentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrecord.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case agentrecord.FieldIterationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field iteration_id", values[i])
			} else if value.Valid {
				_m.IterationID = value.String
			}
		case agentrecord.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = agentrecord.AgentType(value.String)
			}
		case agentrecord.FieldSubjectRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_ref", values[i])
			} else if value.Valid {
				_m.SubjectRef = value.String
			}
		case agentrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentrecord.Status(value.String)
			}
		case agentrecord.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case agentrecord.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case agentrecord.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case agentrecord.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = new(string)
				*_m.Provider = value.String
			}
		case agentrecord.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = new(string)
				*_m.Model = value.String
			}
		case agentrecord.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = new(int)
				*_m.PromptTokens = int(value.Int64)
			}
		case agentrecord.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = new(int)
				*_m.CompletionTokens = int(value.Int64)
			}
		case agentrecord.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = new(int)
				*_m.LatencyMs = int(value.Int64)
			}
		case agentrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the AgentRecord entity.
func (_m *AgentRecord) QueryRun() *RunQuery {
	return NewAgentRecordClient(_m.config).QueryRun(_m)
}

// QueryIteration queries the "iteration" edge of the AgentRecord entity.
func (_m *AgentRecord) QueryIteration() *IterationQuery {
	return NewAgentRecordClient(_m.config).QueryIteration(_m)
}

// Update returns a builder for updating this AgentRecord.
// Note that you need to call AgentRecord.Unwrap() before calling this method if this AgentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRecord) Update() *AgentRecordUpdateOne {
	return NewAgentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRecord) Unwrap() *AgentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("iteration_id=")
	builder.WriteString(_m.IterationID)
	builder.WriteString(", ")
	builder.WriteString("agent_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentType))
	builder.WriteString(", ")
	builder.WriteString("subject_ref=")
	builder.WriteString(_m.SubjectRef)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Model; v != nil {
		builder.WriteString("model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PromptTokens; v != nil {
		builder.WriteString("prompt_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletionTokens; v != nil {
		builder.WriteString("completion_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LatencyMs; v != nil {
		builder.WriteString("latency_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentRecords is a parsable slice of AgentRecord.
type AgentRecords []*AgentRecord
