// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vi3318/Research-AI-sub000/ent/paper"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// Paper is the model entity for the Paper schema.
type Paper struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Abstract holds the value of the "abstract" field.
	Abstract *string `json:"abstract,omitempty"`
	// FullText holds the value of the "full_text" field.
	FullText *string `json:"full_text,omitempty"`
	// Stable position in the submitted paper list
	IngestionOrder int `json:"ingestion_order,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaperQuery when eager-loading is set.
	Edges        PaperEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaperEdges holds the relations/edges for other nodes in the graph.
type PaperEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaperEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Paper) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paper.FieldIngestionOrder:
			values[i] = new(sql.NullInt64)
		case paper.FieldID, paper.FieldRunID, paper.FieldTitle, paper.FieldAbstract, paper.FieldFullText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Paper fields.
func (_m *Paper) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paper.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case paper.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case paper.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case paper.FieldAbstract:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field abstract", values[i])
			} else if value.Valid {
				_m.Abstract = new(string)
				*_m.Abstract = value.String
			}
		case paper.FieldFullText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_text", values[i])
			} else if value.Valid {
				_m.FullText = new(string)
				*_m.FullText = value.String
			}
		case paper.FieldIngestionOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ingestion_order", values[i])
			} else if value.Valid {
				_m.IngestionOrder = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Paper.
// This includes values selected through modifiers, order, etc.
func (_m *Paper) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the Paper entity.
func (_m *Paper) QueryRun() *RunQuery {
	return NewPaperClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this Paper.
// Note that you need to call Paper.Unwrap() before calling this method if this Paper
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Paper) Update() *PaperUpdateOne {
	return NewPaperClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Paper entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Paper) Unwrap() *Paper {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Paper is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Paper) String() string {
	var builder strings.Builder
	builder.WriteString("Paper(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Abstract; v != nil {
		builder.WriteString("abstract=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FullText; v != nil {
		builder.WriteString("full_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ingestion_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.IngestionOrder))
	builder.WriteByte(')')
	return builder.String()
}

// Papers is a parsable slice of Paper.
type Papers []*Paper
