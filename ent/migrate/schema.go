// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEventsColumns holds the columns for the "audit_events" table.
	AuditEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_key", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "actor", Type: field.TypeEnum, Enums: []string{"SYSTEM", "USER", "ADMIN"}},
		{Name: "action", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "prev_hash", Type: field.TypeString},
		{Name: "hash", Type: field.TypeString},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
	}
	// AuditEventsTable holds the schema information for the "audit_events" table.
	AuditEventsTable = &schema.Table{
		Name:       "audit_events",
		Columns:    AuditEventsColumns,
		PrimaryKey: []*schema.Column{AuditEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditevent_user_key_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[1], AuditEventsColumns[3]},
			},
			{
				Name:    "auditevent_user_key_prev_hash",
				Unique:  true,
				Columns: []*schema.Column{AuditEventsColumns[1], AuditEventsColumns[7]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "chat_id", Type: field.TypeString, Unique: true},
		{Name: "current_state", Type: field.TypeString, Default: "INITIAL"},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "intent_queue", Type: field.TypeJSON, Nullable: true},
		{Name: "message_history", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[9]},
			},
		},
	}
	// DedupeEntriesColumns holds the columns for the "dedupe_entries" table.
	DedupeEntriesColumns = []*schema.Column{
		{Name: "dedupe_key", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed"}, Default: "pending"},
		{Name: "original_message_id", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "_ttl_expire_at", Type: field.TypeTime},
	}
	// DedupeEntriesTable holds the schema information for the "dedupe_entries" table.
	DedupeEntriesTable = &schema.Table{
		Name:       "dedupe_entries",
		Columns:    DedupeEntriesColumns,
		PrimaryKey: []*schema.Column{DedupeEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dedupeentry__ttl_expire_at",
				Unique:  false,
				Columns: []*schema.Column{DedupeEntriesColumns[5]},
			},
		},
	}
	// InboundProcessingLogsColumns holds the columns for the "inbound_processing_logs" table.
	InboundProcessingLogsColumns = []*schema.Column{
		{Name: "inbound_event_id", Type: field.TypeString, Unique: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "signature_skipped", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "outbound_tasks", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "_ttl_expire_at", Type: field.TypeTime},
	}
	// InboundProcessingLogsTable holds the schema information for the "inbound_processing_logs" table.
	InboundProcessingLogsTable = &schema.Table{
		Name:       "inbound_processing_logs",
		Columns:    InboundProcessingLogsColumns,
		PrimaryKey: []*schema.Column{InboundProcessingLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inboundprocessinglog__ttl_expire_at",
				Unique:  false,
				Columns: []*schema.Column{InboundProcessingLogsColumns[9]},
			},
			{
				Name:    "inboundprocessinglog_session_id",
				Unique:  false,
				Columns: []*schema.Column{InboundProcessingLogsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEventsTable,
		ChatSessionsTable,
		DedupeEntriesTable,
		InboundProcessingLogsTable,
	}
)

func init() {
	AuditEventsTable.Annotation = &entsql.Annotation{
		Table: "audit_events",
	}
	ChatSessionsTable.Annotation = &entsql.Annotation{
		Table: "chat_sessions",
	}
	DedupeEntriesTable.Annotation = &entsql.Annotation{
		Table: "dedupe_entries",
	}
	InboundProcessingLogsTable.Annotation = &entsql.Annotation{
		Table: "inbound_processing_logs",
	}
}
