// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "turns", Type: field.TypeInt, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "estimated_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "timeout"}, Default: "running"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_agent_type",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_target_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[3]},
			},
			{
				Name:    "agentrun_created_at_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[11], AgentRunsColumns[0]},
			},
		},
	}
	// AgentToolCallsColumns holds the columns for the "agent_tool_calls" table.
	AgentToolCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "arguments", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output_bytes", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "is_error", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_run_id", Type: field.TypeString},
	}
	// AgentToolCallsTable holds the schema information for the "agent_tool_calls" table.
	AgentToolCallsTable = &schema.Table{
		Name:       "agent_tool_calls",
		Columns:    AgentToolCallsColumns,
		PrimaryKey: []*schema.Column{AgentToolCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_tool_calls_agent_runs_tool_calls",
				Columns:    []*schema.Column{AgentToolCallsColumns[8]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenttoolcall_agent_run_id_seq",
				Unique:  false,
				Columns: []*schema.Column{AgentToolCallsColumns[8], AgentToolCallsColumns[1]},
			},
		},
	}
	// ClientVulnsColumns holds the columns for the "client_vulns" table.
	ClientVulnsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "pipeline_status", Type: field.TypeEnum, Enums: []string{"pending", "path_searching", "poc_generating", "verified", "not_affect"}, Default: "pending"},
		{Name: "status", Type: field.TypeEnum, Nullable: true, Enums: []string{"recorded", "reported", "confirmed", "fixed", "not_affect"}},
		{Name: "is_affected", Type: field.TypeBool, Nullable: true},
		{Name: "constraint_expr", Type: field.TypeString, Nullable: true},
		{Name: "constraint_source", Type: field.TypeString, Nullable: true},
		{Name: "resolved_version", Type: field.TypeString, Nullable: true},
		{Name: "reachable_path", Type: field.TypeJSON, Nullable: true},
		{Name: "poc_results", Type: field.TypeJSON, Nullable: true},
		{Name: "report", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "analysis_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "recorded_at", Type: field.TypeTime, Nullable: true},
		{Name: "reported_at", Type: field.TypeTime, Nullable: true},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "fixed_at", Type: field.TypeTime, Nullable: true},
		{Name: "not_affect_at", Type: field.TypeTime, Nullable: true},
		{Name: "confirmed_msg", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fixed_msg", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
		{Name: "upstream_vuln_id", Type: field.TypeString},
	}
	// ClientVulnsTable holds the schema information for the "client_vulns" table.
	ClientVulnsTable = &schema.Table{
		Name:       "client_vulns",
		Columns:    ClientVulnsColumns,
		PrimaryKey: []*schema.Column{ClientVulnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "client_vulns_projects_client_vulns",
				Columns:    []*schema.Column{ClientVulnsColumns[21]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "client_vulns_upstream_vulns_client_vulns",
				Columns:    []*schema.Column{ClientVulnsColumns[22]},
				RefColumns: []*schema.Column{UpstreamVulnsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clientvuln_upstream_vuln_id_project_id",
				Unique:  true,
				Columns: []*schema.Column{ClientVulnsColumns[22], ClientVulnsColumns[21]},
			},
			{
				Name:    "clientvuln_pipeline_status",
				Unique:  false,
				Columns: []*schema.Column{ClientVulnsColumns[1]},
			},
			{
				Name:    "clientvuln_status",
				Unique:  false,
				Columns: []*schema.Column{ClientVulnsColumns[2]},
			},
			{
				Name:    "clientvuln_created_at_id",
				Unique:  false,
				Columns: []*schema.Column{ClientVulnsColumns[19], ClientVulnsColumns[0]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"commit", "pr_merge", "tag", "bug_issue"}},
		{Name: "ref", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "related_issue_ref", Type: field.TypeString, Nullable: true},
		{Name: "related_pr_ref", Type: field.TypeString, Nullable: true},
		{Name: "related_commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "classification", Type: field.TypeEnum, Nullable: true, Enums: []string{"security_bugfix", "normal_bugfix", "refactor", "feature", "other"}},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_bugfix", Type: field.TypeBool, Default: false},
		{Name: "occurred_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "library_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_libraries_events",
				Columns:    []*schema.Column{EventsColumns[15]},
				RefColumns: []*schema.Column{LibrariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_library_id_type_ref",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[15], EventsColumns[1], EventsColumns[2]},
			},
			{
				Name:    "event_classification",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[9]},
			},
			{
				Name:    "event_is_bugfix",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[11]},
			},
			{
				Name:    "event_created_at_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[13], EventsColumns[0]},
			},
		},
	}
	// LibrariesColumns holds the columns for the "libraries" table.
	LibrariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "repo_url", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString, Default: "github"},
		{Name: "ecosystem", Type: field.TypeString, Nullable: true},
		{Name: "default_branch", Type: field.TypeString, Default: "main"},
		{Name: "last_commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "last_tag_name", Type: field.TypeString, Nullable: true},
		{Name: "last_scanned_at", Type: field.TypeTime, Nullable: true},
		{Name: "collector_health", Type: field.TypeEnum, Enums: []string{"healthy", "unhealthy"}, Default: "healthy"},
		{Name: "collector_detail", Type: field.TypeJSON, Nullable: true},
		{Name: "collector_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LibrariesTable holds the schema information for the "libraries" table.
	LibrariesTable = &schema.Table{
		Name:       "libraries",
		Columns:    LibrariesColumns,
		PrimaryKey: []*schema.Column{LibrariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "library_collector_health",
				Unique:  false,
				Columns: []*schema.Column{LibrariesColumns[9]},
			},
			{
				Name:    "library_created_at_id",
				Unique:  false,
				Columns: []*schema.Column{LibrariesColumns[12], LibrariesColumns[0]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "organization", Type: field.TypeString, Nullable: true},
		{Name: "repo_url", Type: field.TypeString, Unique: true},
		{Name: "default_branch", Type: field.TypeString, Default: "main"},
		{Name: "current_version", Type: field.TypeString, Nullable: true},
		{Name: "pinned_ref", Type: field.TypeString, Nullable: true},
		{Name: "auto_sync_deps", Type: field.TypeBool, Default: true},
		{Name: "scan_status", Type: field.TypeString, Nullable: true},
		{Name: "scan_error", Type: field.TypeString, Nullable: true},
		{Name: "last_scanned_at", Type: field.TypeTime, Nullable: true},
		{Name: "contact_email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_auto_sync_deps",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[7]},
			},
			{
				Name:    "project_created_at_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[12], ProjectsColumns[0]},
			},
		},
	}
	// ProjectDependenciesColumns holds the columns for the "project_dependencies" table.
	ProjectDependenciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "constraint_expr", Type: field.TypeString},
		{Name: "resolved_version", Type: field.TypeString, Nullable: true},
		{Name: "constraint_source", Type: field.TypeString, Default: "manual"},
		{Name: "notify_enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "library_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
	}
	// ProjectDependenciesTable holds the schema information for the "project_dependencies" table.
	ProjectDependenciesTable = &schema.Table{
		Name:       "project_dependencies",
		Columns:    ProjectDependenciesColumns,
		PrimaryKey: []*schema.Column{ProjectDependenciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_dependencies_libraries_dependencies",
				Columns:    []*schema.Column{ProjectDependenciesColumns[7]},
				RefColumns: []*schema.Column{LibrariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "project_dependencies_projects_dependencies",
				Columns:    []*schema.Column{ProjectDependenciesColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectdependency_project_id_library_id_constraint_source",
				Unique:  true,
				Columns: []*schema.Column{ProjectDependenciesColumns[8], ProjectDependenciesColumns[7], ProjectDependenciesColumns[3]},
			},
			{
				Name:    "projectdependency_library_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectDependenciesColumns[7]},
			},
		},
	}
	// UpstreamVulnsColumns holds the columns for the "upstream_vulns" table.
	UpstreamVulnsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "vuln_type", Type: field.TypeString, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Nullable: true, Enums: []string{"critical", "high", "medium", "low"}},
		{Name: "affected_versions", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "upstream_poc", Type: field.TypeJSON, Nullable: true},
		{Name: "affected_functions", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"analyzing", "published"}, Default: "analyzing"},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString},
		{Name: "library_id", Type: field.TypeString},
	}
	// UpstreamVulnsTable holds the schema information for the "upstream_vulns" table.
	UpstreamVulnsTable = &schema.Table{
		Name:       "upstream_vulns",
		Columns:    UpstreamVulnsColumns,
		PrimaryKey: []*schema.Column{UpstreamVulnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "upstream_vulns_events_upstream_vulns",
				Columns:    []*schema.Column{UpstreamVulnsColumns[14]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "upstream_vulns_libraries_upstream_vulns",
				Columns:    []*schema.Column{UpstreamVulnsColumns[15]},
				RefColumns: []*schema.Column{LibrariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "upstreamvuln_event_id",
				Unique:  false,
				Columns: []*schema.Column{UpstreamVulnsColumns[14]},
			},
			{
				Name:    "upstreamvuln_library_id",
				Unique:  false,
				Columns: []*schema.Column{UpstreamVulnsColumns[15]},
			},
			{
				Name:    "upstreamvuln_status",
				Unique:  false,
				Columns: []*schema.Column{UpstreamVulnsColumns[9]},
			},
			{
				Name:    "upstreamvuln_created_at_id",
				Unique:  false,
				Columns: []*schema.Column{UpstreamVulnsColumns[12], UpstreamVulnsColumns[0]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRunsTable,
		AgentToolCallsTable,
		ClientVulnsTable,
		EventsTable,
		LibrariesTable,
		ProjectsTable,
		ProjectDependenciesTable,
		UpstreamVulnsTable,
	}
)

func init() {
	AgentToolCallsTable.ForeignKeys[0].RefTable = AgentRunsTable
	ClientVulnsTable.ForeignKeys[0].RefTable = ProjectsTable
	ClientVulnsTable.ForeignKeys[1].RefTable = UpstreamVulnsTable
	EventsTable.ForeignKeys[0].RefTable = LibrariesTable
	ProjectDependenciesTable.ForeignKeys[0].RefTable = LibrariesTable
	ProjectDependenciesTable.ForeignKeys[1].RefTable = ProjectsTable
	UpstreamVulnsTable.ForeignKeys[0].RefTable = EventsTable
	UpstreamVulnsTable.ForeignKeys[1].RefTable = LibrariesTable
}
