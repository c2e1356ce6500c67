// Code generated by ent, DO NOT EDIT.

package auditevent

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the auditevent type in the database.
	Label = "audit_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldUserKey holds the string denoting the user_key field in the database.
	FieldUserKey = "user_key"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldPrevHash holds the string denoting the prev_hash field in the database.
	FieldPrevHash = "prev_hash"
	// FieldHash holds the string denoting the hash field in the database.
	FieldHash = "hash"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// Table holds the table name of the auditevent in the database.
	Table = "audit_events"
)

// Columns holds all SQL columns for auditevent fields.
var Columns = []string{
	FieldID,
	FieldUserKey,
	FieldTenantID,
	FieldTimestamp,
	FieldActor,
	FieldAction,
	FieldReason,
	FieldPrevHash,
	FieldHash,
	FieldCorrelationID,
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

// Actor defines the type for the "actor" enum field.
type Actor string

// Actor values.
const (
	ActorSYSTEM Actor = "SYSTEM"
	ActorUSER   Actor = "USER"
	ActorADMIN  Actor = "ADMIN"
)

func (a Actor) String() string {
	return string(a)
}

// ActorValidator is a validator for the "actor" field enum values. It is called by the builders before save.
func ActorValidator(a Actor) error {
	switch a {
	case ActorSYSTEM, ActorUSER, ActorADMIN:
		return nil
	default:
		return fmt.Errorf("auditevent: invalid enum value for actor field: %q", a)
	}
}

// OrderOption defines the ordering options for the AuditEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserKey orders the results by the user_key field.
func ByUserKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserKey, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByPrevHash orders the results by the prev_hash field.
func ByPrevHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevHash, opts...).ToFunc()
}

// ByHash orders the results by the hash field.
func ByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHash, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}
