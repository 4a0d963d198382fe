// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRecord is the predicate function for agentrecord builders.
type AgentRecord func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Iteration is the predicate function for iteration builders.
type Iteration func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// LogEntry is the predicate function for logentry builders.
type LogEntry func(*sql.Selector)

// OrchestrationLock is the predicate function for orchestrationlock builders.
type OrchestrationLock func(*sql.Selector)

// Paper is the predicate function for paper builders.
type Paper func(*sql.Selector)

// ResultRecord is the predicate function for resultrecord builders.
type ResultRecord func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)
