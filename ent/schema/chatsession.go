package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/zapgate/zapgate/pkg/models"
)

// ChatSession holds the schema definition for the per-conversation session
// document. One row per chat_id; writers serialize through the version column.
type ChatSession struct {
	ent.Schema
}

// Annotations of the ChatSession.
func (ChatSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "chat_sessions"},
	}
}

// Fields of the ChatSession.
func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("chat_id").
			Unique().
			Immutable().
			Comment("Conversation key derived from the provider wa_id"),
		field.String("current_state").
			Default("INITIAL").
			Comment("FSM state; unrecognized values are normalized to INITIAL on load"),
		field.String("outcome").
			Optional().
			Comment("Terminal classification, empty until the session ends"),
		field.JSON("intent_queue", []models.IntentEntry{}).
			Optional().
			Comment("Bounded ordered intent queue"),
		field.JSON("message_history", []models.HistoryEntry{}).
			Optional().
			Comment("Bounded FIFO ring of recent message references"),
		field.Int("version").
			Default(0).
			Comment("Optimistic concurrency token; persist is a CAS on this column"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
		field.Time("expires_at").
			Comment("Sessions past this instant are discarded on load"),
	}
}

// Indexes of the ChatSession.
func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
