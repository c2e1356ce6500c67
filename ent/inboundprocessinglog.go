// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/zapgate/zapgate/ent/inboundprocessinglog"
)

// InboundProcessingLog is the model entity for the InboundProcessingLog schema.
type InboundProcessingLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CorrelationID holds the value of the "correlation_id" field.
	CorrelationID string `json:"correlation_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// processed, deduped, skipped or failed
	Status string `json:"status,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome string `json:"outcome,omitempty"`
	// SignatureSkipped holds the value of the "signature_skipped" field.
	SignatureSkipped bool `json:"signature_skipped,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// OutboundTasks holds the value of the "outbound_tasks" field.
	OutboundTasks []string `json:"outbound_tasks,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// TTLExpireAt holds the value of the "ttl_expire_at" field.
	TTLExpireAt  time.Time `json:"ttl_expire_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InboundProcessingLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inboundprocessinglog.FieldOutboundTasks:
			values[i] = new([]byte)
		case inboundprocessinglog.FieldSignatureSkipped:
			values[i] = new(sql.NullBool)
		case inboundprocessinglog.FieldID, inboundprocessinglog.FieldCorrelationID, inboundprocessinglog.FieldSessionID, inboundprocessinglog.FieldStatus, inboundprocessinglog.FieldOutcome, inboundprocessinglog.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case inboundprocessinglog.FieldCreatedAt, inboundprocessinglog.FieldTTLExpireAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InboundProcessingLog fields.
func (_m *InboundProcessingLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inboundprocessinglog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case inboundprocessinglog.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case inboundprocessinglog.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case inboundprocessinglog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case inboundprocessinglog.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case inboundprocessinglog.FieldSignatureSkipped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field signature_skipped", values[i])
			} else if value.Valid {
				_m.SignatureSkipped = value.Bool
			}
		case inboundprocessinglog.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case inboundprocessinglog.FieldOutboundTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outbound_tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutboundTasks); err != nil {
					return fmt.Errorf("unmarshal field outbound_tasks: %w", err)
				}
			}
		case inboundprocessinglog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case inboundprocessinglog.FieldTTLExpireAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InboundProcessingLog.
// This includes values selected through modifiers, order, etc.
func (_m *InboundProcessingLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InboundProcessingLog.
// Note that you need to call InboundProcessingLog.Unwrap() before calling this method if this InboundProcessingLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InboundProcessingLog) Update() *InboundProcessingLogUpdateOne {
	return NewInboundProcessingLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InboundProcessingLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InboundProcessingLog) Unwrap() *InboundProcessingLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InboundProcessingLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InboundProcessingLog) String() string {
	var builder strings.Builder
	builder.WriteString("InboundProcessingLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("signature_skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignatureSkipped))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("outbound_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutboundTasks))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ttl_expire_at=")
	builder.WriteString(_m.TTLExpireAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InboundProcessingLogs is a parsable slice of InboundProcessingLog.
type InboundProcessingLogs []*InboundProcessingLog
