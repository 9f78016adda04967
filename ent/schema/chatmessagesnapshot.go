package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessageSnapshot holds the schema definition for the
// ChatMessageSnapshot entity: immutable rows produced when a session
// is archived. One batch_id groups all rows of one archive operation
// so the UI can render a context-reset boundary between batches.
// Append-only: never mutated after the bulk insert.
type ChatMessageSnapshot struct {
	ent.Schema
}

// Fields of the ChatMessageSnapshot.
func (ChatMessageSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("chat_session_id").
			Immutable(),
		field.String("batch_id").
			Immutable(),
		field.Int("order_index").
			Immutable().
			Comment("Monotonic within a batch"),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.JSON("content_blocks", []map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Structured extras, e.g. image refs"),
		field.Text("thinking").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Ordered [{toolName, toolInput, toolOutput}]"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessageSnapshot.
func (ChatMessageSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("snapshots").
			Field("chat_session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatMessageSnapshot.
func (ChatMessageSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		// History rendering order
		index.Fields("chat_session_id", "batch_id", "order_index"),
		// Batch ordering is strict
		index.Fields("batch_id", "order_index").
			Unique(),
	}
}
