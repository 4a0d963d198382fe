// Code generated by ent, DO NOT EDIT.

package orchestrationlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldContainsFold(FieldID, id))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEQ(FieldPodID, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEQ(FieldHeartbeatAt, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldContainsFold(FieldPodID, v))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldLTE(FieldAcquiredAt, v))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.FieldLTE(FieldHeartbeatAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrchestrationLock) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrchestrationLock) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrchestrationLock) predicate.OrchestrationLock {
	return predicate.OrchestrationLock(sql.NotPredicates(p))
}
