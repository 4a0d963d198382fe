// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/ent/event"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/job"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/ent/orchestrationlock"
	"github.com/vi3318/Research-AI-sub000/ent/resultrecord"
	"github.com/vi3318/Research-AI-sub000/ent/run"
	"github.com/vi3318/Research-AI-sub000/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrecordFields := schema.AgentRecord{}.Fields()
	_ = agentrecordFields
	// agentrecordDescAttempts is the schema descriptor for attempts field.
	agentrecordDescAttempts := agentrecordFields[6].Descriptor()
	// agentrecord.DefaultAttempts holds the default value on creation for the attempts field.
	agentrecord.DefaultAttempts = agentrecordDescAttempts.Default.(int)
	// agentrecordDescCreatedAt is the schema descriptor for created_at field.
	agentrecordDescCreatedAt := agentrecordFields[14].Descriptor()
	// agentrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrecord.DefaultCreatedAt = agentrecordDescCreatedAt.Default.(func() time.Time)
	// agentrecordDescUpdatedAt is the schema descriptor for updated_at field.
	agentrecordDescUpdatedAt := agentrecordFields[15].Descriptor()
	// agentrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentrecord.DefaultUpdatedAt = agentrecordDescUpdatedAt.Default.(func() time.Time)
	// agentrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentrecord.UpdateDefaultUpdatedAt = agentrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	iterationFields := schema.Iteration{}.Fields()
	_ = iterationFields
	// iterationDescIterationNumber is the schema descriptor for iteration_number field.
	iterationDescIterationNumber := iterationFields[2].Descriptor()
	// iteration.IterationNumberValidator is a validator for the "iteration_number" field. It is called by the builders before save.
	iteration.IterationNumberValidator = iterationDescIterationNumber.Validators[0].(func(int) error)
	// iterationDescStartedAt is the schema descriptor for started_at field.
	iterationDescStartedAt := iterationFields[5].Descriptor()
	// iteration.DefaultStartedAt holds the default value on creation for the started_at field.
	iteration.DefaultStartedAt = iterationDescStartedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescAttempt is the schema descriptor for attempt field.
	jobDescAttempt := jobFields[5].Descriptor()
	// job.DefaultAttempt holds the default value on creation for the attempt field.
	job.DefaultAttempt = jobDescAttempt.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[6].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescNextRunAt is the schema descriptor for next_run_at field.
	jobDescNextRunAt := jobFields[7].Descriptor()
	// job.DefaultNextRunAt holds the default value on creation for the next_run_at field.
	job.DefaultNextRunAt = jobDescNextRunAt.Default.(func() time.Time)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[10].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[11].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	logentryFields := schema.LogEntry{}.Fields()
	_ = logentryFields
	// logentryDescCreatedAt is the schema descriptor for created_at field.
	logentryDescCreatedAt := logentryFields[7].Descriptor()
	// logentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	logentry.DefaultCreatedAt = logentryDescCreatedAt.Default.(func() time.Time)
	orchestrationlockFields := schema.OrchestrationLock{}.Fields()
	_ = orchestrationlockFields
	// orchestrationlockDescAcquiredAt is the schema descriptor for acquired_at field.
	orchestrationlockDescAcquiredAt := orchestrationlockFields[2].Descriptor()
	// orchestrationlock.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	orchestrationlock.DefaultAcquiredAt = orchestrationlockDescAcquiredAt.Default.(func() time.Time)
	// orchestrationlockDescHeartbeatAt is the schema descriptor for heartbeat_at field.
	orchestrationlockDescHeartbeatAt := orchestrationlockFields[3].Descriptor()
	// orchestrationlock.DefaultHeartbeatAt holds the default value on creation for the heartbeat_at field.
	orchestrationlock.DefaultHeartbeatAt = orchestrationlockDescHeartbeatAt.Default.(func() time.Time)
	// orchestrationlock.UpdateDefaultHeartbeatAt holds the default value on update for the heartbeat_at field.
	orchestrationlock.UpdateDefaultHeartbeatAt = orchestrationlockDescHeartbeatAt.UpdateDefault.(func() time.Time)
	resultrecordFields := schema.ResultRecord{}.Fields()
	_ = resultrecordFields
	// resultrecordDescCreatedAt is the schema descriptor for created_at field.
	resultrecordDescCreatedAt := resultrecordFields[3].Descriptor()
	// resultrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	resultrecord.DefaultCreatedAt = resultrecordDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescMaxIterations is the schema descriptor for max_iterations field.
	runDescMaxIterations := runFields[5].Descriptor()
	// run.MaxIterationsValidator is a validator for the "max_iterations" field. It is called by the builders before save.
	run.MaxIterationsValidator = func() func(int) error {
		validators := runDescMaxIterations.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(max_iterations int) error {
			for _, fn := range fns {
				if err := fn(max_iterations); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// runDescConvergenceThreshold is the schema descriptor for convergence_threshold field.
	runDescConvergenceThreshold := runFields[6].Descriptor()
	// run.ConvergenceThresholdValidator is a validator for the "convergence_threshold" field. It is called by the builders before save.
	run.ConvergenceThresholdValidator = func() func(float64) error {
		validators := runDescConvergenceThreshold.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(convergence_threshold float64) error {
			for _, fn := range fns {
				if err := fn(convergence_threshold); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// runDescCurrentIteration is the schema descriptor for current_iteration field.
	runDescCurrentIteration := runFields[8].Descriptor()
	// run.DefaultCurrentIteration holds the default value on creation for the current_iteration field.
	run.DefaultCurrentIteration = runDescCurrentIteration.Default.(int)
	// runDescProgressPercentage is the schema descriptor for progress_percentage field.
	runDescProgressPercentage := runFields[9].Descriptor()
	// run.DefaultProgressPercentage holds the default value on creation for the progress_percentage field.
	run.DefaultProgressPercentage = runDescProgressPercentage.Default.(int)
	// runDescRecoveriesUsed is the schema descriptor for recoveries_used field.
	runDescRecoveriesUsed := runFields[10].Descriptor()
	// run.DefaultRecoveriesUsed holds the default value on creation for the recoveries_used field.
	run.DefaultRecoveriesUsed = runDescRecoveriesUsed.Default.(int)
	// runDescSandboxFallback is the schema descriptor for sandbox_fallback field.
	runDescSandboxFallback := runFields[11].Descriptor()
	// run.DefaultSandboxFallback holds the default value on creation for the sandbox_fallback field.
	run.DefaultSandboxFallback = runDescSandboxFallback.Default.(bool)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[13].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
}
