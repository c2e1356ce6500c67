// Code generated by ent, DO NOT EDIT.

package inboundprocessinglog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the inboundprocessinglog type in the database.
	Label = "inbound_processing_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "inbound_event_id"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldSignatureSkipped holds the string denoting the signature_skipped field in the database.
	FieldSignatureSkipped = "signature_skipped"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldOutboundTasks holds the string denoting the outbound_tasks field in the database.
	FieldOutboundTasks = "outbound_tasks"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTTLExpireAt holds the string denoting the ttl_expire_at field in the database.
	FieldTTLExpireAt = "_ttl_expire_at"
	// Table holds the table name of the inboundprocessinglog in the database.
	Table = "inbound_processing_logs"
)

// Columns holds all SQL columns for inboundprocessinglog fields.
var Columns = []string{
	FieldID,
	FieldCorrelationID,
	FieldSessionID,
	FieldStatus,
	FieldOutcome,
	FieldSignatureSkipped,
	FieldErrorMessage,
	FieldOutboundTasks,
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
	// DefaultSignatureSkipped holds the default value on creation for the "signature_skipped" field.
	DefaultSignatureSkipped bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the InboundProcessingLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// BySignatureSkipped orders the results by the signature_skipped field.
func BySignatureSkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureSkipped, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTTLExpireAt orders the results by the ttl_expire_at field.
func ByTTLExpireAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTTLExpireAt, opts...).ToFunc()
}
