// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessageSnapshotsColumns holds the columns for the "chat_message_snapshots" table.
	ChatMessageSnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "batch_id", Type: field.TypeString},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "thinking", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "chat_session_id", Type: field.TypeString},
	}
	// ChatMessageSnapshotsTable holds the schema information for the "chat_message_snapshots" table.
	ChatMessageSnapshotsTable = &schema.Table{
		Name:       "chat_message_snapshots",
		Columns:    ChatMessageSnapshotsColumns,
		PrimaryKey: []*schema.Column{ChatMessageSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_message_snapshots_chat_sessions_snapshots",
				Columns:    []*schema.Column{ChatMessageSnapshotsColumns[9]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessagesnapshot_chat_session_id_batch_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{ChatMessageSnapshotsColumns[9], ChatMessageSnapshotsColumns[1], ChatMessageSnapshotsColumns[2]},
			},
			{
				Name:    "chatmessagesnapshot_batch_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{ChatMessageSnapshotsColumns[1], ChatMessageSnapshotsColumns[2]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "chat_session_id", Type: field.TypeString, Unique: true},
		{Name: "session_key", Type: field.TypeString},
		{Name: "instance_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "last_message_at", Type: field.TypeTime},
		{Name: "message_count", Type: field.TypeInt, Default: 1},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_user_id_instance_id_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[4], ChatSessionsColumns[2], ChatSessionsColumns[3]},
			},
			{
				Name:    "chatsession_user_id_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[4], ChatSessionsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessageSnapshotsTable,
		ChatSessionsTable,
	}
)

func init() {
	ChatMessageSnapshotsTable.ForeignKeys[0].RefTable = ChatSessionsTable
}
