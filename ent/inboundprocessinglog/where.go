// Code generated by ent, DO NOT EDIT.

package inboundprocessinglog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/zapgate/zapgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContainsFold(FieldID, id))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldCorrelationID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldSessionID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldStatus, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldOutcome, v))
}

// SignatureSkipped applies equality check predicate on the "signature_skipped" field. It's identical to SignatureSkippedEQ.
func SignatureSkipped(v bool) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldSignatureSkipped, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldCreatedAt, v))
}

// TTLExpireAt applies equality check predicate on the "ttl_expire_at" field. It's identical to TTLExpireAtEQ.
func TTLExpireAt(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldTTLExpireAt, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDIsNil applies the IsNil predicate on the "correlation_id" field.
func CorrelationIDIsNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIsNull(FieldCorrelationID))
}

// CorrelationIDNotNil applies the NotNil predicate on the "correlation_id" field.
func CorrelationIDNotNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotNull(FieldCorrelationID))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContainsFold(FieldCorrelationID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContainsFold(FieldSessionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContainsFold(FieldStatus, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotNull(FieldOutcome))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContainsFold(FieldOutcome, v))
}

// SignatureSkippedEQ applies the EQ predicate on the "signature_skipped" field.
func SignatureSkippedEQ(v bool) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldSignatureSkipped, v))
}

// SignatureSkippedNEQ applies the NEQ predicate on the "signature_skipped" field.
func SignatureSkippedNEQ(v bool) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNEQ(FieldSignatureSkipped, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// OutboundTasksIsNil applies the IsNil predicate on the "outbound_tasks" field.
func OutboundTasksIsNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIsNull(FieldOutboundTasks))
}

// OutboundTasksNotNil applies the NotNil predicate on the "outbound_tasks" field.
func OutboundTasksNotNil() predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotNull(FieldOutboundTasks))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLTE(FieldCreatedAt, v))
}

// TTLExpireAtEQ applies the EQ predicate on the "ttl_expire_at" field.
func TTLExpireAtEQ(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldEQ(FieldTTLExpireAt, v))
}

// TTLExpireAtNEQ applies the NEQ predicate on the "ttl_expire_at" field.
func TTLExpireAtNEQ(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNEQ(FieldTTLExpireAt, v))
}

// TTLExpireAtIn applies the In predicate on the "ttl_expire_at" field.
func TTLExpireAtIn(vs ...time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldIn(FieldTTLExpireAt, vs...))
}

// TTLExpireAtNotIn applies the NotIn predicate on the "ttl_expire_at" field.
func TTLExpireAtNotIn(vs ...time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldNotIn(FieldTTLExpireAt, vs...))
}

// TTLExpireAtGT applies the GT predicate on the "ttl_expire_at" field.
func TTLExpireAtGT(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGT(FieldTTLExpireAt, v))
}

// TTLExpireAtGTE applies the GTE predicate on the "ttl_expire_at" field.
func TTLExpireAtGTE(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldGTE(FieldTTLExpireAt, v))
}

// TTLExpireAtLT applies the LT predicate on the "ttl_expire_at" field.
func TTLExpireAtLT(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLT(FieldTTLExpireAt, v))
}

// TTLExpireAtLTE applies the LTE predicate on the "ttl_expire_at" field.
func TTLExpireAtLTE(v time.Time) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.FieldLTE(FieldTTLExpireAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InboundProcessingLog) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InboundProcessingLog) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InboundProcessingLog) predicate.InboundProcessingLog {
	return predicate.InboundProcessingLog(sql.NotPredicates(p))
}
