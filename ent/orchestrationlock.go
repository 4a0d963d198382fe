// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vi3318/Research-AI-sub000/ent/orchestrationlock"
)

// OrchestrationLock is the model entity for the OrchestrationLock schema.
type OrchestrationLock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PodID holds the value of the "pod_id" field.
	PodID string `json:"pod_id,omitempty"`
	// AcquiredAt holds the value of the "acquired_at" field.
	AcquiredAt time.Time `json:"acquired_at,omitempty"`
	// HeartbeatAt holds the value of the "heartbeat_at" field.
	HeartbeatAt  time.Time `json:"heartbeat_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrchestrationLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orchestrationlock.FieldID, orchestrationlock.FieldPodID:
			values[i] = new(sql.NullString)
		case orchestrationlock.FieldAcquiredAt, orchestrationlock.FieldHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrchestrationLock fields.
func (_m *OrchestrationLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orchestrationlock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case orchestrationlock.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = value.String
			}
		case orchestrationlock.FieldAcquiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_at", values[i])
			} else if value.Valid {
				_m.AcquiredAt = value.Time
			}
		case orchestrationlock.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrchestrationLock.
// This includes values selected through modifiers, order, etc.
func (_m *OrchestrationLock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OrchestrationLock.
// Note that you need to call OrchestrationLock.Unwrap() before calling this method if this OrchestrationLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrchestrationLock) Update() *OrchestrationLockUpdateOne {
	return NewOrchestrationLockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrchestrationLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrchestrationLock) Unwrap() *OrchestrationLock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrchestrationLock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrchestrationLock) String() string {
	var builder strings.Builder
	builder.WriteString("OrchestrationLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pod_id=")
	builder.WriteString(_m.PodID)
	builder.WriteString(", ")
	builder.WriteString("acquired_at=")
	builder.WriteString(_m.AcquiredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("heartbeat_at=")
	builder.WriteString(_m.HeartbeatAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OrchestrationLocks is a parsable slice of OrchestrationLock.
type OrchestrationLocks []*OrchestrationLock
