// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/zapgate/zapgate/ent/chatsession"
	"github.com/zapgate/zapgate/ent/dedupeentry"
	"github.com/zapgate/zapgate/ent/inboundprocessinglog"
	"github.com/zapgate/zapgate/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescCurrentState is the schema descriptor for current_state field.
	chatsessionDescCurrentState := chatsessionFields[2].Descriptor()
	// chatsession.DefaultCurrentState holds the default value on creation for the current_state field.
	chatsession.DefaultCurrentState = chatsessionDescCurrentState.Default.(string)
	// chatsessionDescVersion is the schema descriptor for version field.
	chatsessionDescVersion := chatsessionFields[6].Descriptor()
	// chatsession.DefaultVersion holds the default value on creation for the version field.
	chatsession.DefaultVersion = chatsessionDescVersion.Default.(int)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[7].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[8].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	dedupeentryFields := schema.DedupeEntry{}.Fields()
	_ = dedupeentryFields
	// dedupeentryDescCreatedAt is the schema descriptor for created_at field.
	dedupeentryDescCreatedAt := dedupeentryFields[4].Descriptor()
	// dedupeentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	dedupeentry.DefaultCreatedAt = dedupeentryDescCreatedAt.Default.(func() time.Time)
	inboundprocessinglogFields := schema.InboundProcessingLog{}.Fields()
	_ = inboundprocessinglogFields
	// inboundprocessinglogDescSignatureSkipped is the schema descriptor for signature_skipped field.
	inboundprocessinglogDescSignatureSkipped := inboundprocessinglogFields[5].Descriptor()
	// inboundprocessinglog.DefaultSignatureSkipped holds the default value on creation for the signature_skipped field.
	inboundprocessinglog.DefaultSignatureSkipped = inboundprocessinglogDescSignatureSkipped.Default.(bool)
	// inboundprocessinglogDescCreatedAt is the schema descriptor for created_at field.
	inboundprocessinglogDescCreatedAt := inboundprocessinglogFields[8].Descriptor()
	// inboundprocessinglog.DefaultCreatedAt holds the default value on creation for the created_at field.
	inboundprocessinglog.DefaultCreatedAt = inboundprocessinglogDescCreatedAt.Default.(func() time.Time)
}
