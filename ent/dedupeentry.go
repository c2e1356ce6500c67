// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/zapgate/zapgate/ent/dedupeentry"
)

// DedupeEntry is the model entity for the DedupeEntry schema.
type DedupeEntry struct {
	config `json:"-"`
	// ID of the ent.
	// Fully namespaced dedupe key
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status dedupeentry.Status `json:"status,omitempty"`
	// Provider message id recorded on mark_sent
	OriginalMessageID string `json:"original_message_id,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Entry is dead after this instant; swept by the collector
	TTLExpireAt  time.Time `json:"ttl_expire_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DedupeEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dedupeentry.FieldID, dedupeentry.FieldStatus, dedupeentry.FieldOriginalMessageID, dedupeentry.FieldLastError:
			values[i] = new(sql.NullString)
		case dedupeentry.FieldCreatedAt, dedupeentry.FieldTTLExpireAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DedupeEntry fields.
func (_m *DedupeEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dedupeentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dedupeentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = dedupeentry.Status(value.String)
			}
		case dedupeentry.FieldOriginalMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_message_id", values[i])
			} else if value.Valid {
				_m.OriginalMessageID = value.String
			}
		case dedupeentry.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		case dedupeentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dedupeentry.FieldTTLExpireAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ttl_expire_at", values[i])
			} else if value.Valid {
				_m.TTLExpireAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DedupeEntry.
// This includes values selected through modifiers, order, etc.
func (_m *DedupeEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DedupeEntry.
// Note that you need to call DedupeEntry.Unwrap() before calling this method if this DedupeEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DedupeEntry) Update() *DedupeEntryUpdateOne {
	return NewDedupeEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DedupeEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DedupeEntry) Unwrap() *DedupeEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DedupeEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DedupeEntry) String() string {
	var builder strings.Builder
	builder.WriteString("DedupeEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("original_message_id=")
	builder.WriteString(_m.OriginalMessageID)
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ttl_expire_at=")
	builder.WriteString(_m.TTLExpireAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DedupeEntries is a parsable slice of DedupeEntry.
type DedupeEntries []*DedupeEntry
