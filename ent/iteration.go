// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// Iteration is the model entity for the Iteration schema.
type Iteration struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Dense and monotone per run, starting at 1
	IterationNumber int `json:"iteration_number,omitempty"`
	// Status holds the value of the "status" field.
	Status iteration.Status `json:"status,omitempty"`
	// Set only when the iteration succeeds
	ConvergenceScore *float64 `json:"convergence_score,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IterationQuery when eager-loading is set.
	Edges        IterationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IterationEdges holds the relations/edges for other nodes in the graph.
type IterationEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// AgentRecords holds the value of the agent_records edge.
	AgentRecords []*AgentRecord `json:"agent_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IterationEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// AgentRecordsOrErr returns the AgentRecords value or an error if the edge
// was not loaded in eager-loading.
func (e IterationEdges) AgentRecordsOrErr() ([]*AgentRecord, error) {
	if e.loadedTypes[1] {
		return e.AgentRecords, nil
	}
	return nil, &NotLoadedError{edge: "agent_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Iteration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case iteration.FieldConvergenceScore:
			values[i] = new(sql.NullFloat64)
		case iteration.FieldIterationNumber:
			values[i] = new(sql.NullInt64)
		case iteration.FieldID, iteration.FieldRunID, iteration.FieldStatus:
			values[i] = new(sql.NullString)
		case iteration.FieldStartedAt, iteration.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Iteration fields.
func (_m *Iteration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case iteration.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case iteration.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case iteration.FieldIterationNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration_number", values[i])
			} else if value.Valid {
				_m.IterationNumber = int(value.Int64)
			}
		case iteration.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = iteration.Status(value.String)
			}
		case iteration.FieldConvergenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field convergence_score", values[i])
			} else if value.Valid {
				_m.ConvergenceScore = new(float64)
				*_m.ConvergenceScore = value.Float64
			}
		case iteration.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case iteration.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Iteration.
// This includes values selected through modifiers, order, etc.
func (_m *Iteration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the Iteration entity.
func (_m *Iteration) QueryRun() *RunQuery {
	return NewIterationClient(_m.config).QueryRun(_m)
}

// QueryAgentRecords queries the "agent_records" edge of the Iteration entity.
func (_m *Iteration) QueryAgentRecords() *AgentRecordQuery {
	return NewIterationClient(_m.config).QueryAgentRecords(_m)
}

// Update returns a builder for updating this Iteration.
// Note that you need to call Iteration.Unwrap() before calling this method if this Iteration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Iteration) Update() *IterationUpdateOne {
	return NewIterationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Iteration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Iteration) Unwrap() *Iteration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Iteration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Iteration) String() string {
	var builder strings.Builder
	builder.WriteString("Iteration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("iteration_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.IterationNumber))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ConvergenceScore; v != nil {
		builder.WriteString("convergence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Iterations is a parsable slice of Iteration.
type Iterations []*Iteration
