package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InboundProcessingLog holds the schema definition for the per-event
// observability record. One row per inbound event id, TTL-swept. Stored text
// is already PII-sanitized.
type InboundProcessingLog struct {
	ent.Schema
}

// Annotations of the InboundProcessingLog.
func (InboundProcessingLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "inbound_processing_logs"},
	}
}

// Fields of the InboundProcessingLog.
func (InboundProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("inbound_event_id").
			Unique().
			Immutable(),
		field.String("correlation_id").
			Optional(),
		field.String("session_id").
			Optional(),
		field.String("status").
			Comment("processed, deduped, skipped or failed"),
		field.String("outcome").
			Optional(),
		field.Bool("signature_skipped").
			Default(false),
		field.String("error_message").
			Optional(),
		field.JSON("outbound_tasks", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("ttl_expire_at").
			StorageKey("_ttl_expire_at"),
	}
}

// Indexes of the InboundProcessingLog.
func (InboundProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ttl_expire_at"),
		index.Fields("session_id"),
	}
}
