// Code generated by ent, DO NOT EDIT.

package iteration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Iteration {
	return predicate.Iteration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Iteration {
	return predicate.Iteration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Iteration {
	return predicate.Iteration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Iteration {
	return predicate.Iteration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Iteration {
	return predicate.Iteration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Iteration {
	return predicate.Iteration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Iteration {
	return predicate.Iteration(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Iteration {
	return predicate.Iteration(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Iteration {
	return predicate.Iteration(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldRunID, v))
}

// IterationNumber applies equality check predicate on the "iteration_number" field. It's identical to IterationNumberEQ.
func IterationNumber(v int) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldIterationNumber, v))
}

// ConvergenceScore applies equality check predicate on the "convergence_score" field. It's identical to ConvergenceScoreEQ.
func ConvergenceScore(v float64) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldConvergenceScore, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldEndedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.Iteration {
	return predicate.Iteration(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.Iteration {
	return predicate.Iteration(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.Iteration {
	return predicate.Iteration(sql.FieldContainsFold(FieldRunID, v))
}

// IterationNumberEQ applies the EQ predicate on the "iteration_number" field.
func IterationNumberEQ(v int) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldIterationNumber, v))
}

// IterationNumberNEQ applies the NEQ predicate on the "iteration_number" field.
func IterationNumberNEQ(v int) predicate.Iteration {
	return predicate.Iteration(sql.FieldNEQ(FieldIterationNumber, v))
}

// IterationNumberIn applies the In predicate on the "iteration_number" field.
func IterationNumberIn(vs ...int) predicate.Iteration {
	return predicate.Iteration(sql.FieldIn(FieldIterationNumber, vs...))
}

// IterationNumberNotIn applies the NotIn predicate on the "iteration_number" field.
func IterationNumberNotIn(vs ...int) predicate.Iteration {
	return predicate.Iteration(sql.FieldNotIn(FieldIterationNumber, vs...))
}

// IterationNumberGT applies the GT predicate on the "iteration_number" field.
func IterationNumberGT(v int) predicate.Iteration {
	return predicate.Iteration(sql.FieldGT(FieldIterationNumber, v))
}

// IterationNumberGTE applies the GTE predicate on the "iteration_number" field.
func IterationNumberGTE(v int) predicate.Iteration {
	return predicate.Iteration(sql.FieldGTE(FieldIterationNumber, v))
}

// IterationNumberLT applies the LT predicate on the "iteration_number" field.
func IterationNumberLT(v int) predicate.Iteration {
	return predicate.Iteration(sql.FieldLT(FieldIterationNumber, v))
}

// IterationNumberLTE applies the LTE predicate on the "iteration_number" field.
func IterationNumberLTE(v int) predicate.Iteration {
	return predicate.Iteration(sql.FieldLTE(FieldIterationNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Iteration {
	return predicate.Iteration(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Iteration {
	return predicate.Iteration(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Iteration {
	return predicate.Iteration(sql.FieldNotIn(FieldStatus, vs...))
}

// ConvergenceScoreEQ applies the EQ predicate on the "convergence_score" field.
func ConvergenceScoreEQ(v float64) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldConvergenceScore, v))
}

// ConvergenceScoreNEQ applies the NEQ predicate on the "convergence_score" field.
func ConvergenceScoreNEQ(v float64) predicate.Iteration {
	return predicate.Iteration(sql.FieldNEQ(FieldConvergenceScore, v))
}

// ConvergenceScoreIn applies the In predicate on the "convergence_score" field.
func ConvergenceScoreIn(vs ...float64) predicate.Iteration {
	return predicate.Iteration(sql.FieldIn(FieldConvergenceScore, vs...))
}

// ConvergenceScoreNotIn applies the NotIn predicate on the "convergence_score" field.
func ConvergenceScoreNotIn(vs ...float64) predicate.Iteration {
	return predicate.Iteration(sql.FieldNotIn(FieldConvergenceScore, vs...))
}

// ConvergenceScoreGT applies the GT predicate on the "convergence_score" field.
func ConvergenceScoreGT(v float64) predicate.Iteration {
	return predicate.Iteration(sql.FieldGT(FieldConvergenceScore, v))
}

// ConvergenceScoreGTE applies the GTE predicate on the "convergence_score" field.
func ConvergenceScoreGTE(v float64) predicate.Iteration {
	return predicate.Iteration(sql.FieldGTE(FieldConvergenceScore, v))
}

// ConvergenceScoreLT applies the LT predicate on the "convergence_score" field.
func ConvergenceScoreLT(v float64) predicate.Iteration {
	return predicate.Iteration(sql.FieldLT(FieldConvergenceScore, v))
}

// ConvergenceScoreLTE applies the LTE predicate on the "convergence_score" field.
func ConvergenceScoreLTE(v float64) predicate.Iteration {
	return predicate.Iteration(sql.FieldLTE(FieldConvergenceScore, v))
}

// ConvergenceScoreIsNil applies the IsNil predicate on the "convergence_score" field.
func ConvergenceScoreIsNil() predicate.Iteration {
	return predicate.Iteration(sql.FieldIsNull(FieldConvergenceScore))
}

// ConvergenceScoreNotNil applies the NotNil predicate on the "convergence_score" field.
func ConvergenceScoreNotNil() predicate.Iteration {
	return predicate.Iteration(sql.FieldNotNull(FieldConvergenceScore))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Iteration {
	return predicate.Iteration(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Iteration {
	return predicate.Iteration(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Iteration {
	return predicate.Iteration(sql.FieldNotNull(FieldEndedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.Iteration {
	return predicate.Iteration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.Iteration {
	return predicate.Iteration(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentRecords applies the HasEdge predicate on the "agent_records" edge.
func HasAgentRecords() predicate.Iteration {
	return predicate.Iteration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentRecordsTable, AgentRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentRecordsWith applies the HasEdge predicate on the "agent_records" edge with a given conditions (other predicates).
func HasAgentRecordsWith(preds ...predicate.AgentRecord) predicate.Iteration {
	return predicate.Iteration(func(s *sql.Selector) {
		step := newAgentRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Iteration) predicate.Iteration {
	return predicate.Iteration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Iteration) predicate.Iteration {
	return predicate.Iteration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Iteration) predicate.Iteration {
	return predicate.Iteration(sql.NotPredicates(p))
}
