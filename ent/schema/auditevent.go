package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent holds the schema definition for the append-only, hash-linked
// decision log. Events chain per user_key: each hash covers the canonical
// fields plus the previous hash, so mutating any event invalidates the rest
// of that user's chain.
type AuditEvent struct {
	ent.Schema
}

// Annotations of the AuditEvent.
func (AuditEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_events"},
	}
}

// Fields of the AuditEvent.
func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("user_key").
			Immutable().
			Comment("Opaque peppered user identifier, never the raw phone"),
		field.String("tenant_id").
			Optional().
			Immutable(),
		field.Time("timestamp").
			Immutable(),
		field.Enum("actor").
			Values("SYSTEM", "USER", "ADMIN").
			Immutable(),
		field.String("action").
			Immutable(),
		field.String("reason").
			Immutable(),
		field.String("prev_hash").
			Immutable().
			Comment("Hash of the previous event in this user's chain, empty for the genesis event"),
		field.String("hash").
			Immutable().
			Comment("SHA-256 over canonical fields || prev_hash, hex"),
		field.String("correlation_id").
			Optional().
			Immutable(),
	}
}

// Indexes of the AuditEvent.
func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_key", "timestamp"),
		// One successor per event: concurrent appends against the same chain
		// head collide here instead of forking the chain.
		index.Fields("user_key", "prev_hash").Unique(),
	}
}
