// Code generated by ent, DO NOT EDIT.

package logentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldRunID, v))
}

// IterationID applies equality check predicate on the "iteration_id" field. It's identical to IterationIDEQ.
func IterationID(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldIterationID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldAgentID, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldContainsFold(FieldRunID, v))
}

// IterationIDEQ applies the EQ predicate on the "iteration_id" field.
func IterationIDEQ(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldIterationID, v))
}

// IterationIDNEQ applies the NEQ predicate on the "iteration_id" field.
func IterationIDNEQ(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNEQ(FieldIterationID, v))
}

// IterationIDIn applies the In predicate on the "iteration_id" field.
func IterationIDIn(vs ...string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIn(FieldIterationID, vs...))
}

// IterationIDNotIn applies the NotIn predicate on the "iteration_id" field.
func IterationIDNotIn(vs ...string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotIn(FieldIterationID, vs...))
}

// IterationIDGT applies the GT predicate on the "iteration_id" field.
func IterationIDGT(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGT(FieldIterationID, v))
}

// IterationIDGTE applies the GTE predicate on the "iteration_id" field.
func IterationIDGTE(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGTE(FieldIterationID, v))
}

// IterationIDLT applies the LT predicate on the "iteration_id" field.
func IterationIDLT(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLT(FieldIterationID, v))
}

// IterationIDLTE applies the LTE predicate on the "iteration_id" field.
func IterationIDLTE(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLTE(FieldIterationID, v))
}

// IterationIDContains applies the Contains predicate on the "iteration_id" field.
func IterationIDContains(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldContains(FieldIterationID, v))
}

// IterationIDHasPrefix applies the HasPrefix predicate on the "iteration_id" field.
func IterationIDHasPrefix(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldHasPrefix(FieldIterationID, v))
}

// IterationIDHasSuffix applies the HasSuffix predicate on the "iteration_id" field.
func IterationIDHasSuffix(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldHasSuffix(FieldIterationID, v))
}

// IterationIDIsNil applies the IsNil predicate on the "iteration_id" field.
func IterationIDIsNil() predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIsNull(FieldIterationID))
}

// IterationIDNotNil applies the NotNil predicate on the "iteration_id" field.
func IterationIDNotNil() predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotNull(FieldIterationID))
}

// IterationIDEqualFold applies the EqualFold predicate on the "iteration_id" field.
func IterationIDEqualFold(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEqualFold(FieldIterationID, v))
}

// IterationIDContainsFold applies the ContainsFold predicate on the "iteration_id" field.
func IterationIDContainsFold(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldContainsFold(FieldIterationID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldContainsFold(FieldAgentID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotIn(FieldLevel, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldContainsFold(FieldMessage, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LogEntry {
	return predicate.LogEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.LogEntry {
	return predicate.LogEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.LogEntry {
	return predicate.LogEntry(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LogEntry) predicate.LogEntry {
	return predicate.LogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LogEntry) predicate.LogEntry {
	return predicate.LogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LogEntry) predicate.LogEntry {
	return predicate.LogEntry(sql.NotPredicates(p))
}
