package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DedupeEntry holds the schema definition for the document-backed dedupe
// store. Inbound entries only record presence; outbound entries track the
// send lifecycle for end-to-end idempotency. Expired rows are removed by the
// periodic collector.
type DedupeEntry struct {
	ent.Schema
}

// Annotations of the DedupeEntry.
func (DedupeEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dedupe_entries"},
	}
}

// Fields of the DedupeEntry.
func (DedupeEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dedupe_key").
			Unique().
			Immutable().
			Comment("Fully namespaced dedupe key"),
		field.Enum("status").
			Values("pending", "sent", "failed").
			Default("pending"),
		field.String("original_message_id").
			Optional().
			Comment("Provider message id recorded on mark_sent"),
		field.String("last_error").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("ttl_expire_at").
			StorageKey("_ttl_expire_at").
			Comment("Entry is dead after this instant; swept by the collector"),
	}
}

// Indexes of the DedupeEntry.
func (DedupeEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ttl_expire_at"),
	}
}
