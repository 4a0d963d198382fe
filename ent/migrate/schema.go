// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"micro", "meso", "meta"}},
		{Name: "subject_ref", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "succeeded", "failed"}, Default: "queued"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "completion_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "iteration_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_iterations_agent_records",
				Columns:    []*schema.Column{AgentsColumns[14]},
				RefColumns: []*schema.Column{IterationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agents_runs_agent_records",
				Columns:    []*schema.Column{AgentsColumns[15]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrecord_run_id_iteration_id_agent_type_subject_ref",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[15], AgentsColumns[14], AgentsColumns[1], AgentsColumns[2]},
			},
			{
				Name:    "agentrecord_iteration_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[14], AgentsColumns[3]},
			},
			{
				Name:    "agentrecord_run_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[15], AgentsColumns[13]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_runs_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_run_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// IterationsColumns holds the columns for the "iterations" table.
	IterationsColumns = []*schema.Column{
		{Name: "iteration_id", Type: field.TypeString, Unique: true},
		{Name: "iteration_number", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "succeeded", "failed"}, Default: "active"},
		{Name: "convergence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// IterationsTable holds the schema information for the "iterations" table.
	IterationsTable = &schema.Table{
		Name:       "iterations",
		Columns:    IterationsColumns,
		PrimaryKey: []*schema.Column{IterationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "iterations_runs_iterations",
				Columns:    []*schema.Column{IterationsColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "iteration_run_id_iteration_number",
				Unique:  true,
				Columns: []*schema.Column{IterationsColumns[6], IterationsColumns[1]},
			},
			{
				Name:    "iteration_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{IterationsColumns[6], IterationsColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "succeeded", "failed", "cancelled"}, Default: "pending"},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "next_run_at", Type: field.TypeTime},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_queue_status_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4], JobsColumns[7]},
			},
			{
				Name:    "job_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[4]},
			},
			{
				Name:    "job_status_pod_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[9]},
			},
		},
	}
	// LogsColumns holds the columns for the "logs" table.
	LogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "iteration_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"debug", "info", "warn", "error"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// LogsTable holds the schema information for the "logs" table.
	LogsTable = &schema.Table{
		Name:       "logs",
		Columns:    LogsColumns,
		PrimaryKey: []*schema.Column{LogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "logs_runs_log_entries",
				Columns:    []*schema.Column{LogsColumns[7]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "logentry_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LogsColumns[7], LogsColumns[6]},
			},
			{
				Name:    "logentry_run_id_level",
				Unique:  false,
				Columns: []*schema.Column{LogsColumns[7], LogsColumns[3]},
			},
		},
	}
	// OrchestrationLocksColumns holds the columns for the "orchestration_locks" table.
	OrchestrationLocksColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "pod_id", Type: field.TypeString},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "heartbeat_at", Type: field.TypeTime},
	}
	// OrchestrationLocksTable holds the schema information for the "orchestration_locks" table.
	OrchestrationLocksTable = &schema.Table{
		Name:       "orchestration_locks",
		Columns:    OrchestrationLocksColumns,
		PrimaryKey: []*schema.Column{OrchestrationLocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orchestrationlock_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{OrchestrationLocksColumns[3]},
			},
		},
	}
	// PapersColumns holds the columns for the "papers" table.
	PapersColumns = []*schema.Column{
		{Name: "paper_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "abstract", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "full_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ingestion_order", Type: field.TypeInt},
		{Name: "run_id", Type: field.TypeString},
	}
	// PapersTable holds the schema information for the "papers" table.
	PapersTable = &schema.Table{
		Name:       "papers",
		Columns:    PapersColumns,
		PrimaryKey: []*schema.Column{PapersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "papers_runs_papers",
				Columns:    []*schema.Column{PapersColumns[5]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "paper_run_id_ingestion_order",
				Unique:  true,
				Columns: []*schema.Column{PapersColumns[5], PapersColumns[4]},
			},
		},
	}
	// ResultsColumns holds the columns for the "results" table.
	ResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// ResultsTable holds the schema information for the "results" table.
	ResultsTable = &schema.Table{
		Name:       "results",
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "results_runs_result",
				Columns:    []*schema.Column{ResultsColumns[3]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "resultrecord_run_id",
				Unique:  true,
				Columns: []*schema.Column{ResultsColumns[3]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeString, Nullable: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "domains", Type: field.TypeJSON, Nullable: true},
		{Name: "max_iterations", Type: field.TypeInt},
		{Name: "convergence_threshold", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "converged", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_iteration", Type: field.TypeInt, Default: 0},
		{Name: "progress_percentage", Type: field.TypeInt, Default: 0},
		{Name: "recoveries_used", Type: field.TypeInt, Default: 0},
		{Name: "sandbox_fallback", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[7]},
			},
			{
				Name:    "run_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[7], RunsColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		EventsTable,
		IterationsTable,
		JobsTable,
		LogsTable,
		OrchestrationLocksTable,
		PapersTable,
		ResultsTable,
		RunsTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = IterationsTable
	AgentsTable.ForeignKeys[1].RefTable = RunsTable
	AgentsTable.Annotation = &entsql.Annotation{
		Table: "agents",
	}
	EventsTable.ForeignKeys[0].RefTable = RunsTable
	IterationsTable.ForeignKeys[0].RefTable = RunsTable
	LogsTable.ForeignKeys[0].RefTable = RunsTable
	LogsTable.Annotation = &entsql.Annotation{
		Table: "logs",
	}
	PapersTable.ForeignKeys[0].RefTable = RunsTable
	ResultsTable.ForeignKeys[0].RefTable = RunsTable
	ResultsTable.Annotation = &entsql.Annotation{
		Table: "results",
	}
}
