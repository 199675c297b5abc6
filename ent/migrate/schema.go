// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InteractionsColumns holds the columns for the "interactions" table.
	InteractionsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "inbound_text", Type: field.TypeString, Size: 2147483647},
		{Name: "last_message_id", Type: field.TypeInt64, Default: 0},
		{Name: "draft_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "refined_bubbles", Type: field.TypeJSON, Nullable: true},
		{Name: "final_bubbles", Type: field.TypeJSON, Nullable: true},
		{Name: "safety", Type: field.TypeJSON, Nullable: true},
		{Name: "llm1", Type: field.TypeJSON, Nullable: true},
		{Name: "llm2", Type: field.TypeJSON, Nullable: true},
		{Name: "priority_score", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "reviewing", "approved", "rejected", "cancelled"}, Default: "pending"},
		{Name: "reviewer_id", Type: field.TypeString, Nullable: true},
		{Name: "review_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "review_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "edit_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "quality_score", Type: field.TypeInt, Nullable: true},
		{Name: "cta", Type: field.TypeJSON, Nullable: true},
		{Name: "customer_status", Type: field.TypeString, Nullable: true},
		{Name: "reviewer_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "processing_error", Type: field.TypeString, Nullable: true},
		{Name: "recovered", Type: field.TypeBool, Default: false},
		{Name: "recovery_tier", Type: field.TypeString, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivery_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InteractionsTable holds the schema information for the "interactions" table.
	InteractionsTable = &schema.Table{
		Name:       "interactions",
		Columns:    InteractionsColumns,
		PrimaryKey: []*schema.Column{InteractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interaction_status",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[12]},
			},
			{
				Name:    "interaction_user_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[1]},
			},
			{
				Name:    "interaction_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[12], InteractionsColumns[26]},
			},
			{
				Name:    "interaction_status_priority_score",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[12], InteractionsColumns[11]},
			},
			{
				Name:    "interaction_delivered_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[24]},
				Annotation: &entsql.IndexAnnotation{
					Where: "delivered_at IS NOT NULL",
				},
			},
		},
	}
	// MessageCursorsColumns holds the columns for the "message_cursors" table.
	MessageCursorsColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeInt64, Increment: true},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "last_processed_message_id", Type: field.TypeInt64},
		{Name: "last_processed_at", Type: field.TypeTime},
	}
	// MessageCursorsTable holds the schema information for the "message_cursors" table.
	MessageCursorsTable = &schema.Table{
		Name:       "message_cursors",
		Columns:    MessageCursorsColumns,
		PrimaryKey: []*schema.Column{MessageCursorsColumns[0]},
	}
	// ProtocolAuditLogColumns holds the columns for the "protocol_audit_log" table.
	ProtocolAuditLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "action", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "performer", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProtocolAuditLogTable holds the schema information for the "protocol_audit_log" table.
	ProtocolAuditLogTable = &schema.Table{
		Name:       "protocol_audit_log",
		Columns:    ProtocolAuditLogColumns,
		PrimaryKey: []*schema.Column{ProtocolAuditLogColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "protocolauditlog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProtocolAuditLogColumns[1], ProtocolAuditLogColumns[5]},
			},
		},
	}
	// ProtocolStatusColumns holds the columns for the "protocol_status" table.
	ProtocolStatusColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeInt64, Increment: true},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "since", Type: field.TypeTime, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "performer", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProtocolStatusTable holds the schema information for the "protocol_status" table.
	ProtocolStatusTable = &schema.Table{
		Name:       "protocol_status",
		Columns:    ProtocolStatusColumns,
		PrimaryKey: []*schema.Column{ProtocolStatusColumns[0]},
	}
	// QuarantineMessagesColumns holds the columns for the "quarantine_messages" table.
	QuarantineMessagesColumns = []*schema.Column{
		{Name: "q_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "message_id", Type: field.TypeInt64, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuarantineMessagesTable holds the schema information for the "quarantine_messages" table.
	QuarantineMessagesTable = &schema.Table{
		Name:       "quarantine_messages",
		Columns:    QuarantineMessagesColumns,
		PrimaryKey: []*schema.Column{QuarantineMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quarantinemessage_user_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{QuarantineMessagesColumns[1], QuarantineMessagesColumns[5]},
			},
			{
				Name:    "quarantinemessage_expires_at",
				Unique:  false,
				Columns: []*schema.Column{QuarantineMessagesColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "released_at IS NULL",
				},
			},
		},
	}
	// RecoveryOperationsColumns holds the columns for the "recovery_operations" table.
	RecoveryOperationsColumns = []*schema.Column{
		{Name: "op_id", Type: field.TypeString, Unique: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "users_scanned", Type: field.TypeInt, Default: 0},
		{Name: "messages_recovered", Type: field.TypeInt, Default: 0},
		{Name: "errors", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "halted"}, Default: "running"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// RecoveryOperationsTable holds the schema information for the "recovery_operations" table.
	RecoveryOperationsTable = &schema.Table{
		Name:       "recovery_operations",
		Columns:    RecoveryOperationsColumns,
		PrimaryKey: []*schema.Column{RecoveryOperationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recoveryoperation_started_at",
				Unique:  false,
				Columns: []*schema.Column{RecoveryOperationsColumns[1]},
			},
		},
	}
	// StatusTransitionsColumns holds the columns for the "status_transitions" table.
	StatusTransitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "delta_ltv_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "performer", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StatusTransitionsTable holds the schema information for the "status_transitions" table.
	StatusTransitionsTable = &schema.Table{
		Name:       "status_transitions",
		Columns:    StatusTransitionsColumns,
		PrimaryKey: []*schema.Column{StatusTransitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "statustransition_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StatusTransitionsColumns[1], StatusTransitionsColumns[7]},
			},
		},
	}
	// UserCurrentStatusColumns holds the columns for the "user_current_status" table.
	UserCurrentStatusColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeInt64, Increment: true},
		{Name: "customer_status", Type: field.TypeEnum, Enums: []string{"PROSPECT", "LEAD_QUALIFIED", "CUSTOMER", "CHURNED", "LEAD_EXHAUSTED"}, Default: "PROSPECT"},
		{Name: "ltv_total_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "nickname", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserCurrentStatusTable holds the schema information for the "user_current_status" table.
	UserCurrentStatusTable = &schema.Table{
		Name:       "user_current_status",
		Columns:    UserCurrentStatusColumns,
		PrimaryKey: []*schema.Column{UserCurrentStatusColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InteractionsTable,
		MessageCursorsTable,
		ProtocolAuditLogTable,
		ProtocolStatusTable,
		QuarantineMessagesTable,
		RecoveryOperationsTable,
		StatusTransitionsTable,
		UserCurrentStatusTable,
	}
)

func init() {
	ProtocolAuditLogTable.Annotation = &entsql.Annotation{
		Table: "protocol_audit_log",
	}
	ProtocolStatusTable.Annotation = &entsql.Annotation{
		Table: "protocol_status",
	}
	UserCurrentStatusTable.Annotation = &entsql.Annotation{
		Table: "user_current_status",
	}
}
