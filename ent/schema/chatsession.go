package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession holds the schema definition for the ChatSession entity.
// One row per (user, instance, agent) conversation lineage. At most
// one row per triple is active at a time; the partial unique index
// backing that invariant lives in database.CreatePartialUniqueIndexes.
type ChatSession struct {
	ent.Schema
}

// Fields of the ChatSession.
func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_session_id").
			Unique().
			Immutable(),
		field.String("session_key").
			Comment("Deterministic remote protocol key: agent:<agentId>:tc:<userId>"),
		field.String("instance_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title").
			Optional().
			Nillable().
			Comment("Derived from the first user message on archive"),
		field.Time("last_message_at").
			Default(time.Now),
		field.Int("message_count").
			Default(1),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatSession.
func (ChatSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("snapshots", ChatMessageSnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ChatSession.
func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		// Triple lookup (resolver hot path)
		index.Fields("user_id", "instance_id", "agent_id"),
		// Session listing
		index.Fields("user_id", "last_message_at"),
	}
}
