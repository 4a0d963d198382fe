// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldQuery holds the string denoting the query field in the database.
	FieldQuery = "query"
	// FieldDomains holds the string denoting the domains field in the database.
	FieldDomains = "domains"
	// FieldMaxIterations holds the string denoting the max_iterations field in the database.
	FieldMaxIterations = "max_iterations"
	// FieldConvergenceThreshold holds the string denoting the convergence_threshold field in the database.
	FieldConvergenceThreshold = "convergence_threshold"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentIteration holds the string denoting the current_iteration field in the database.
	FieldCurrentIteration = "current_iteration"
	// FieldProgressPercentage holds the string denoting the progress_percentage field in the database.
	FieldProgressPercentage = "progress_percentage"
	// FieldRecoveriesUsed holds the string denoting the recoveries_used field in the database.
	FieldRecoveriesUsed = "recoveries_used"
	// FieldSandboxFallback holds the string denoting the sandbox_fallback field in the database.
	FieldSandboxFallback = "sandbox_fallback"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgePapers holds the string denoting the papers edge name in mutations.
	EdgePapers = "papers"
	// EdgeIterations holds the string denoting the iterations edge name in mutations.
	EdgeIterations = "iterations"
	// EdgeAgentRecords holds the string denoting the agent_records edge name in mutations.
	EdgeAgentRecords = "agent_records"
	// EdgeLogEntries holds the string denoting the log_entries edge name in mutations.
	EdgeLogEntries = "log_entries"
	// EdgeResult holds the string denoting the result edge name in mutations.
	EdgeResult = "result"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// PaperFieldID holds the string denoting the ID field of the Paper.
	PaperFieldID = "paper_id"
	// IterationFieldID holds the string denoting the ID field of the Iteration.
	IterationFieldID = "iteration_id"
	// AgentRecordFieldID holds the string denoting the ID field of the AgentRecord.
	AgentRecordFieldID = "agent_id"
	// LogEntryFieldID holds the string denoting the ID field of the LogEntry.
	LogEntryFieldID = "id"
	// ResultRecordFieldID holds the string denoting the ID field of the ResultRecord.
	ResultRecordFieldID = "result_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// PapersTable is the table that holds the papers relation/edge.
	PapersTable = "papers"
	// PapersInverseTable is the table name for the Paper entity.
	// It exists in this package in order to avoid circular dependency with the "paper" package.
	PapersInverseTable = "papers"
	// PapersColumn is the table column denoting the papers relation/edge.
	PapersColumn = "run_id"
	// IterationsTable is the table that holds the iterations relation/edge.
	IterationsTable = "iterations"
	// IterationsInverseTable is the table name for the Iteration entity.
	// It exists in this package in order to avoid circular dependency with the "iteration" package.
	IterationsInverseTable = "iterations"
	// IterationsColumn is the table column denoting the iterations relation/edge.
	IterationsColumn = "run_id"
	// AgentRecordsTable is the table that holds the agent_records relation/edge.
	AgentRecordsTable = "agents"
	// AgentRecordsInverseTable is the table name for the AgentRecord entity.
	// It exists in this package in order to avoid circular dependency with the "agentrecord" package.
	AgentRecordsInverseTable = "agents"
	// AgentRecordsColumn is the table column denoting the agent_records relation/edge.
	AgentRecordsColumn = "run_id"
	// LogEntriesTable is the table that holds the log_entries relation/edge.
	LogEntriesTable = "logs"
	// LogEntriesInverseTable is the table name for the LogEntry entity.
	// It exists in this package in order to avoid circular dependency with the "logentry" package.
	LogEntriesInverseTable = "logs"
	// LogEntriesColumn is the table column denoting the log_entries relation/edge.
	LogEntriesColumn = "run_id"
	// ResultTable is the table that holds the result relation/edge.
	ResultTable = "results"
	// ResultInverseTable is the table name for the ResultRecord entity.
	// It exists in this package in order to avoid circular dependency with the "resultrecord" package.
	ResultInverseTable = "results"
	// ResultColumn is the table column denoting the result relation/edge.
	ResultColumn = "run_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldOwnerID,
	FieldQuery,
	FieldDomains,
	FieldMaxIterations,
	FieldConvergenceThreshold,
	FieldStatus,
	FieldCurrentIteration,
	FieldProgressPercentage,
	FieldRecoveriesUsed,
	FieldSandboxFallback,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// MaxIterationsValidator is a validator for the "max_iterations" field. It is called by the builders before save.
	MaxIterationsValidator func(int) error
	// ConvergenceThresholdValidator is a validator for the "convergence_threshold" field. It is called by the builders before save.
	ConvergenceThresholdValidator func(float64) error
	// DefaultCurrentIteration holds the default value on creation for the "current_iteration" field.
	DefaultCurrentIteration int
	// DefaultProgressPercentage holds the default value on creation for the "progress_percentage" field.
	DefaultProgressPercentage int
	// DefaultRecoveriesUsed holds the default value on creation for the "recoveries_used" field.
	DefaultRecoveriesUsed int
	// DefaultSandboxFallback holds the default value on creation for the "sandbox_fallback" field.
	DefaultSandboxFallback bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusConverged Status = "converged"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusConverged, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByQuery orders the results by the query field.
func ByQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuery, opts...).ToFunc()
}

// ByMaxIterations orders the results by the max_iterations field.
func ByMaxIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxIterations, opts...).ToFunc()
}

// ByConvergenceThreshold orders the results by the convergence_threshold field.
func ByConvergenceThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConvergenceThreshold, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentIteration orders the results by the current_iteration field.
func ByCurrentIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentIteration, opts...).ToFunc()
}

// ByProgressPercentage orders the results by the progress_percentage field.
func ByProgressPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercentage, opts...).ToFunc()
}

// ByRecoveriesUsed orders the results by the recoveries_used field.
func ByRecoveriesUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveriesUsed, opts...).ToFunc()
}

// BySandboxFallback orders the results by the sandbox_fallback field.
func BySandboxFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxFallback, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPapersCount orders the results by papers count.
func ByPapersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPapersStep(), opts...)
	}
}

// ByPapers orders the results by papers terms.
func ByPapers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPapersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByIterationsCount orders the results by iterations count.
func ByIterationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIterationsStep(), opts...)
	}
}

// ByIterations orders the results by iterations terms.
func ByIterations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIterationsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByLogEntriesCount orders the results by log_entries count.
func ByLogEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLogEntriesStep(), opts...)
	}
}

// ByLogEntries orders the results by log_entries terms.
func ByLogEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLogEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByResultField orders the results by result field.
func ByResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPapersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PapersInverseTable, PaperFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PapersTable, PapersColumn),
	)
}
func newIterationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IterationsInverseTable, IterationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IterationsTable, IterationsColumn),
	)
}
func newAgentRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentRecordsInverseTable, AgentRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentRecordsTable, AgentRecordsColumn),
	)
}
func newLogEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogEntriesInverseTable, LogEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LogEntriesTable, LogEntriesColumn),
	)
}
func newResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultInverseTable, ResultRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ResultTable, ResultColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
