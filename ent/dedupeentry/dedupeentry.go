// Code generated by ent, DO NOT EDIT.

package dedupeentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dedupeentry type in the database.
	Label = "dedupe_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dedupe_key"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOriginalMessageID holds the string denoting the original_message_id field in the database.
	FieldOriginalMessageID = "original_message_id"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTTLExpireAt holds the string denoting the ttl_expire_at field in the database.
	FieldTTLExpireAt = "_ttl_expire_at"
	// Table holds the table name of the dedupeentry in the database.
	Table = "dedupe_entries"
)

// Columns holds all SQL columns for dedupeentry fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldOriginalMessageID,
	FieldLastError,
	FieldCreatedAt,
	FieldTTLExpireAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return nil
	default:
		return fmt.Errorf("dedupeentry: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DedupeEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOriginalMessageID orders the results by the original_message_id field.
func ByOriginalMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalMessageID, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTTLExpireAt orders the results by the ttl_expire_at field.
func ByTTLExpireAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTTLExpireAt, opts...).ToFunc()
}
