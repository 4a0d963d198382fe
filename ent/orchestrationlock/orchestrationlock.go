// Code generated by ent, DO NOT EDIT.

package orchestrationlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the orchestrationlock type in the database.
	Label = "orchestration_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// Table holds the table name of the orchestrationlock in the database.
	Table = "orchestration_locks"
)

// Columns holds all SQL columns for orchestrationlock fields.
var Columns = []string{
	FieldID,
	FieldPodID,
	FieldAcquiredAt,
	FieldHeartbeatAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAcquiredAt holds the default value on creation for the "acquired_at" field.
	DefaultAcquiredAt func() time.Time
	// DefaultHeartbeatAt holds the default value on creation for the "heartbeat_at" field.
	DefaultHeartbeatAt func() time.Time
	// UpdateDefaultHeartbeatAt holds the default value on update for the "heartbeat_at" field.
	UpdateDefaultHeartbeatAt func() time.Time
)

// OrderOption defines the ordering options for the OrchestrationLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}
