// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vi3318/Research-AI-sub000/ent/resultrecord"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Pass-through identity from the gateway; not validated here
	OwnerID *string `json:"owner_id,omitempty"`
	// The research question driving the run
	Query string `json:"query,omitempty"`
	// Domains holds the value of the "domains" field.
	Domains []string `json:"domains,omitempty"`
	// MaxIterations holds the value of the "max_iterations" field.
	MaxIterations int `json:"max_iterations,omitempty"`
	// ConvergenceThreshold holds the value of the "convergence_threshold" field.
	ConvergenceThreshold float64 `json:"convergence_threshold,omitempty"`
	// Status holds the value of the "status" field.
	Status run.Status `json:"status,omitempty"`
	// Number of finished iterations; never exceeds max_iterations
	CurrentIteration int `json:"current_iteration,omitempty"`
	// Monotonically non-decreasing while the run is non-terminal
	ProgressPercentage int `json:"progress_percentage,omitempty"`
	// Iteration-retry budget consumed; at most one recovery per run
	RecoveriesUsed int `json:"recoveries_used,omitempty"`
	// When true, an exhausted provider cascade falls back to the deterministic sandbox
	SandboxFallback bool `json:"sandbox_fallback,omitempty"`
	// Terminal failure summary
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Papers holds the value of the papers edge.
	Papers []*Paper `json:"papers,omitempty"`
	// Iterations holds the value of the iterations edge.
	Iterations []*Iteration `json:"iterations,omitempty"`
	// AgentRecords holds the value of the agent_records edge.
	AgentRecords []*AgentRecord `json:"agent_records,omitempty"`
	// LogEntries holds the value of the log_entries edge.
	LogEntries []*LogEntry `json:"log_entries,omitempty"`
	// Result holds the value of the result edge.
	Result *ResultRecord `json:"result,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// PapersOrErr returns the Papers value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) PapersOrErr() ([]*Paper, error) {
	if e.loadedTypes[0] {
		return e.Papers, nil
	}
	return nil, &NotLoadedError{edge: "papers"}
}

// IterationsOrErr returns the Iterations value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) IterationsOrErr() ([]*Iteration, error) {
	if e.loadedTypes[1] {
		return e.Iterations, nil
	}
	return nil, &NotLoadedError{edge: "iterations"}
}

// AgentRecordsOrErr returns the AgentRecords value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) AgentRecordsOrErr() ([]*AgentRecord, error) {
	if e.loadedTypes[2] {
		return e.AgentRecords, nil
	}
	return nil, &NotLoadedError{edge: "agent_records"}
}

// LogEntriesOrErr returns the LogEntries value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) LogEntriesOrErr() ([]*LogEntry, error) {
	if e.loadedTypes[3] {
		return e.LogEntries, nil
	}
	return nil, &NotLoadedError{edge: "log_entries"}
}

// ResultOrErr returns the Result value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) ResultOrErr() (*ResultRecord, error) {
	if e.Result != nil {
		return e.Result, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: resultrecord.Label}
	}
	return nil, &NotLoadedError{edge: "result"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[5] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldDomains:
			values[i] = new([]byte)
		case run.FieldSandboxFallback:
			values[i] = new(sql.NullBool)
		case run.FieldConvergenceThreshold:
			values[i] = new(sql.NullFloat64)
		case run.FieldMaxIterations, run.FieldCurrentIteration, run.FieldProgressPercentage, run.FieldRecoveriesUsed:
			values[i] = new(sql.NullInt64)
		case run.FieldID, run.FieldWorkspaceID, run.FieldOwnerID, run.FieldQuery, run.FieldStatus, run.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case run.FieldCreatedAt, run.FieldStartedAt, run.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case run.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = new(string)
				*_m.OwnerID = value.String
			}
		case run.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = value.String
			}
		case run.FieldDomains:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domains", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Domains); err != nil {
					return fmt.Errorf("unmarshal field domains: %w", err)
				}
			}
		case run.FieldMaxIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_iterations", values[i])
			} else if value.Valid {
				_m.MaxIterations = int(value.Int64)
			}
		case run.FieldConvergenceThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field convergence_threshold", values[i])
			} else if value.Valid {
				_m.ConvergenceThreshold = value.Float64
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldCurrentIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_iteration", values[i])
			} else if value.Valid {
				_m.CurrentIteration = int(value.Int64)
			}
		case run.FieldProgressPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percentage", values[i])
			} else if value.Valid {
				_m.ProgressPercentage = int(value.Int64)
			}
		case run.FieldRecoveriesUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recoveries_used", values[i])
			} else if value.Valid {
				_m.RecoveriesUsed = int(value.Int64)
			}
		case run.FieldSandboxFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_fallback", values[i])
			} else if value.Valid {
				_m.SandboxFallback = value.Bool
			}
		case run.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case run.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case run.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPapers queries the "papers" edge of the Run entity.
func (_m *Run) QueryPapers() *PaperQuery {
	return NewRunClient(_m.config).QueryPapers(_m)
}

// QueryIterations queries the "iterations" edge of the Run entity.
func (_m *Run) QueryIterations() *IterationQuery {
	return NewRunClient(_m.config).QueryIterations(_m)
}

// QueryAgentRecords queries the "agent_records" edge of the Run entity.
func (_m *Run) QueryAgentRecords() *AgentRecordQuery {
	return NewRunClient(_m.config).QueryAgentRecords(_m)
}

// QueryLogEntries queries the "log_entries" edge of the Run entity.
func (_m *Run) QueryLogEntries() *LogEntryQuery {
	return NewRunClient(_m.config).QueryLogEntries(_m)
}

// QueryResult queries the "result" edge of the Run entity.
func (_m *Run) QueryResult() *ResultRecordQuery {
	return NewRunClient(_m.config).QueryResult(_m)
}

// QueryEvents queries the "events" edge of the Run entity.
func (_m *Run) QueryEvents() *EventQuery {
	return NewRunClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	if v := _m.OwnerID; v != nil {
		builder.WriteString("owner_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("query=")
	builder.WriteString(_m.Query)
	builder.WriteString(", ")
	builder.WriteString("domains=")
	builder.WriteString(fmt.Sprintf("%v", _m.Domains))
	builder.WriteString(", ")
	builder.WriteString("max_iterations=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxIterations))
	builder.WriteString(", ")
	builder.WriteString("convergence_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConvergenceThreshold))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentIteration))
	builder.WriteString(", ")
	builder.WriteString("progress_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercentage))
	builder.WriteString(", ")
	builder.WriteString("recoveries_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveriesUsed))
	builder.WriteString(", ")
	builder.WriteString("sandbox_fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.SandboxFallback))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
