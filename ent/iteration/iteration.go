// Code generated by ent, DO NOT EDIT.

package iteration

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the iteration type in the database.
	Label = "iteration"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "iteration_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldIterationNumber holds the string denoting the iteration_number field in the database.
	FieldIterationNumber = "iteration_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConvergenceScore holds the string denoting the convergence_score field in the database.
	FieldConvergenceScore = "convergence_score"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeAgentRecords holds the string denoting the agent_records edge name in mutations.
	EdgeAgentRecords = "agent_records"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// AgentRecordFieldID holds the string denoting the ID field of the AgentRecord.
	AgentRecordFieldID = "agent_id"
	// Table holds the table name of the iteration in the database.
	Table = "iterations"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "iterations"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// AgentRecordsTable is the table that holds the agent_records relation/edge.
	AgentRecordsTable = "agents"
	// AgentRecordsInverseTable is the table name for the AgentRecord entity.
	// It exists in this package in order to avoid circular dependency with the "agentrecord" package.
	AgentRecordsInverseTable = "agents"
	// AgentRecordsColumn is the table column denoting the agent_records relation/edge.
	AgentRecordsColumn = "iteration_id"
)

// Columns holds all SQL columns for iteration fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldIterationNumber,
	FieldStatus,
	FieldConvergenceScore,
	FieldStartedAt,
	FieldEndedAt,
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
	// IterationNumberValidator is a validator for the "iteration_number" field. It is called by the builders before save.
	IterationNumberValidator func(int) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusSucceeded, StatusFailed:
		return nil
	default:
		return fmt.Errorf("iteration: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Iteration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByIterationNumber orders the results by the iteration_number field.
func ByIterationNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterationNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConvergenceScore orders the results by the convergence_score field.
func ByConvergenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConvergenceScore, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByAgentRecordsCount orders the results by agent_records count.
func ByAgentRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentRecordsStep(), opts...)
	}
}

// ByAgentRecords orders the results by agent_records terms.
func ByAgentRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newAgentRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentRecordsInverseTable, AgentRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentRecordsTable, AgentRecordsColumn),
	)
}
