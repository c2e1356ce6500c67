// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEvent is the predicate function for auditevent builders.
type AuditEvent func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// DedupeEntry is the predicate function for dedupeentry builders.
type DedupeEntry func(*sql.Selector)

// InboundProcessingLog is the predicate function for inboundprocessinglog builders.
type InboundProcessingLog func(*sql.Selector)
