// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldWorkspaceID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldOwnerID, v))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuery, v))
}

// MaxIterations applies equality check predicate on the "max_iterations" field. It's identical to MaxIterationsEQ.
func MaxIterations(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldMaxIterations, v))
}

// ConvergenceThreshold applies equality check predicate on the "convergence_threshold" field. It's identical to ConvergenceThresholdEQ.
func ConvergenceThreshold(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldConvergenceThreshold, v))
}

// CurrentIteration applies equality check predicate on the "current_iteration" field. It's identical to CurrentIterationEQ.
func CurrentIteration(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCurrentIteration, v))
}

// ProgressPercentage applies equality check predicate on the "progress_percentage" field. It's identical to ProgressPercentageEQ.
func ProgressPercentage(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldProgressPercentage, v))
}

// RecoveriesUsed applies equality check predicate on the "recoveries_used" field. It's identical to RecoveriesUsedEQ.
func RecoveriesUsed(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRecoveriesUsed, v))
}

// SandboxFallback applies equality check predicate on the "sandbox_fallback" field. It's identical to SandboxFallbackEQ.
func SandboxFallback(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSandboxFallback, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDIsNil applies the IsNil predicate on the "owner_id" field.
func OwnerIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldOwnerID))
}

// OwnerIDNotNil applies the NotNil predicate on the "owner_id" field.
func OwnerIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldOwnerID))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldOwnerID, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldQuery, v))
}

// DomainsIsNil applies the IsNil predicate on the "domains" field.
func DomainsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldDomains))
}

// DomainsNotNil applies the NotNil predicate on the "domains" field.
func DomainsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldDomains))
}

// MaxIterationsEQ applies the EQ predicate on the "max_iterations" field.
func MaxIterationsEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldMaxIterations, v))
}

// MaxIterationsNEQ applies the NEQ predicate on the "max_iterations" field.
func MaxIterationsNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldMaxIterations, v))
}

// MaxIterationsIn applies the In predicate on the "max_iterations" field.
func MaxIterationsIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldMaxIterations, vs...))
}

// MaxIterationsNotIn applies the NotIn predicate on the "max_iterations" field.
func MaxIterationsNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldMaxIterations, vs...))
}

// MaxIterationsGT applies the GT predicate on the "max_iterations" field.
func MaxIterationsGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldMaxIterations, v))
}

// MaxIterationsGTE applies the GTE predicate on the "max_iterations" field.
func MaxIterationsGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldMaxIterations, v))
}

// MaxIterationsLT applies the LT predicate on the "max_iterations" field.
func MaxIterationsLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldMaxIterations, v))
}

// MaxIterationsLTE applies the LTE predicate on the "max_iterations" field.
func MaxIterationsLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldMaxIterations, v))
}

// ConvergenceThresholdEQ applies the EQ predicate on the "convergence_threshold" field.
func ConvergenceThresholdEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldConvergenceThreshold, v))
}

// ConvergenceThresholdNEQ applies the NEQ predicate on the "convergence_threshold" field.
func ConvergenceThresholdNEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldConvergenceThreshold, v))
}

// ConvergenceThresholdIn applies the In predicate on the "convergence_threshold" field.
func ConvergenceThresholdIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldConvergenceThreshold, vs...))
}

// ConvergenceThresholdNotIn applies the NotIn predicate on the "convergence_threshold" field.
func ConvergenceThresholdNotIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldConvergenceThreshold, vs...))
}

// ConvergenceThresholdGT applies the GT predicate on the "convergence_threshold" field.
func ConvergenceThresholdGT(v float64) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldConvergenceThreshold, v))
}

// ConvergenceThresholdGTE applies the GTE predicate on the "convergence_threshold" field.
func ConvergenceThresholdGTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldConvergenceThreshold, v))
}

// ConvergenceThresholdLT applies the LT predicate on the "convergence_threshold" field.
func ConvergenceThresholdLT(v float64) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldConvergenceThreshold, v))
}

// ConvergenceThresholdLTE applies the LTE predicate on the "convergence_threshold" field.
func ConvergenceThresholdLTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldConvergenceThreshold, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentIterationEQ applies the EQ predicate on the "current_iteration" field.
func CurrentIterationEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCurrentIteration, v))
}

// CurrentIterationNEQ applies the NEQ predicate on the "current_iteration" field.
func CurrentIterationNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCurrentIteration, v))
}

// CurrentIterationIn applies the In predicate on the "current_iteration" field.
func CurrentIterationIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCurrentIteration, vs...))
}

// CurrentIterationNotIn applies the NotIn predicate on the "current_iteration" field.
func CurrentIterationNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCurrentIteration, vs...))
}

// CurrentIterationGT applies the GT predicate on the "current_iteration" field.
func CurrentIterationGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCurrentIteration, v))
}

// CurrentIterationGTE applies the GTE predicate on the "current_iteration" field.
func CurrentIterationGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCurrentIteration, v))
}

// CurrentIterationLT applies the LT predicate on the "current_iteration" field.
func CurrentIterationLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCurrentIteration, v))
}

// CurrentIterationLTE applies the LTE predicate on the "current_iteration" field.
func CurrentIterationLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCurrentIteration, v))
}

// ProgressPercentageEQ applies the EQ predicate on the "progress_percentage" field.
func ProgressPercentageEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldProgressPercentage, v))
}

// ProgressPercentageNEQ applies the NEQ predicate on the "progress_percentage" field.
func ProgressPercentageNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldProgressPercentage, v))
}

// ProgressPercentageIn applies the In predicate on the "progress_percentage" field.
func ProgressPercentageIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageNotIn applies the NotIn predicate on the "progress_percentage" field.
func ProgressPercentageNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageGT applies the GT predicate on the "progress_percentage" field.
func ProgressPercentageGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldProgressPercentage, v))
}

// ProgressPercentageGTE applies the GTE predicate on the "progress_percentage" field.
func ProgressPercentageGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldProgressPercentage, v))
}

// ProgressPercentageLT applies the LT predicate on the "progress_percentage" field.
func ProgressPercentageLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldProgressPercentage, v))
}

// ProgressPercentageLTE applies the LTE predicate on the "progress_percentage" field.
func ProgressPercentageLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldProgressPercentage, v))
}

// RecoveriesUsedEQ applies the EQ predicate on the "recoveries_used" field.
func RecoveriesUsedEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRecoveriesUsed, v))
}

// RecoveriesUsedNEQ applies the NEQ predicate on the "recoveries_used" field.
func RecoveriesUsedNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldRecoveriesUsed, v))
}

// RecoveriesUsedIn applies the In predicate on the "recoveries_used" field.
func RecoveriesUsedIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldRecoveriesUsed, vs...))
}

// RecoveriesUsedNotIn applies the NotIn predicate on the "recoveries_used" field.
func RecoveriesUsedNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldRecoveriesUsed, vs...))
}

// RecoveriesUsedGT applies the GT predicate on the "recoveries_used" field.
func RecoveriesUsedGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldRecoveriesUsed, v))
}

// RecoveriesUsedGTE applies the GTE predicate on the "recoveries_used" field.
func RecoveriesUsedGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldRecoveriesUsed, v))
}

// RecoveriesUsedLT applies the LT predicate on the "recoveries_used" field.
func RecoveriesUsedLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldRecoveriesUsed, v))
}

// RecoveriesUsedLTE applies the LTE predicate on the "recoveries_used" field.
func RecoveriesUsedLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldRecoveriesUsed, v))
}

// SandboxFallbackEQ applies the EQ predicate on the "sandbox_fallback" field.
func SandboxFallbackEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSandboxFallback, v))
}

// SandboxFallbackNEQ applies the NEQ predicate on the "sandbox_fallback" field.
func SandboxFallbackNEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSandboxFallback, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// HasPapers applies the HasEdge predicate on the "papers" edge.
func HasPapers() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PapersTable, PapersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPapersWith applies the HasEdge predicate on the "papers" edge with a given conditions (other predicates).
func HasPapersWith(preds ...predicate.Paper) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newPapersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIterations applies the HasEdge predicate on the "iterations" edge.
func HasIterations() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IterationsTable, IterationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIterationsWith applies the HasEdge predicate on the "iterations" edge with a given conditions (other predicates).
func HasIterationsWith(preds ...predicate.Iteration) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newIterationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentRecords applies the HasEdge predicate on the "agent_records" edge.
func HasAgentRecords() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentRecordsTable, AgentRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentRecordsWith applies the HasEdge predicate on the "agent_records" edge with a given conditions (other predicates).
func HasAgentRecordsWith(preds ...predicate.AgentRecord) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newAgentRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogEntries applies the HasEdge predicate on the "log_entries" edge.
func HasLogEntries() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogEntriesTable, LogEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogEntriesWith applies the HasEdge predicate on the "log_entries" edge with a given conditions (other predicates).
func HasLogEntriesWith(preds ...predicate.LogEntry) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newLogEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResult applies the HasEdge predicate on the "result" edge.
func HasResult() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ResultTable, ResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultWith applies the HasEdge predicate on the "result" edge with a given conditions (other predicates).
func HasResultWith(preds ...predicate.ResultRecord) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
