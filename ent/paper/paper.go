// Code generated by ent, DO NOT EDIT.

package paper

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the paper type in the database.
	Label = "paper"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "paper_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAbstract holds the string denoting the abstract field in the database.
	FieldAbstract = "abstract"
	// FieldFullText holds the string denoting the full_text field in the database.
	FieldFullText = "full_text"
	// FieldIngestionOrder holds the string denoting the ingestion_order field in the database.
	FieldIngestionOrder = "ingestion_order"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the paper in the database.
	Table = "papers"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "papers"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for paper fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldTitle,
	FieldAbstract,
	FieldFullText,
	FieldIngestionOrder,
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

// OrderOption defines the ordering options for the Paper queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAbstract orders the results by the abstract field.
func ByAbstract(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbstract, opts...).ToFunc()
}

// ByFullText orders the results by the full_text field.
func ByFullText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullText, opts...).ToFunc()
}

// ByIngestionOrder orders the results by the ingestion_order field.
func ByIngestionOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestionOrder, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
