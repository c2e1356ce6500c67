// Code generated by ent, DO NOT EDIT.

package dedupeentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/zapgate/zapgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldContainsFold(FieldID, id))
}

// OriginalMessageID applies equality check predicate on the "original_message_id" field. It's identical to OriginalMessageIDEQ.
func OriginalMessageID(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldOriginalMessageID, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// TTLExpireAt applies equality check predicate on the "ttl_expire_at" field. It's identical to TTLExpireAtEQ.
func TTLExpireAt(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldTTLExpireAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// OriginalMessageIDEQ applies the EQ predicate on the "original_message_id" field.
func OriginalMessageIDEQ(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldOriginalMessageID, v))
}

// OriginalMessageIDNEQ applies the NEQ predicate on the "original_message_id" field.
func OriginalMessageIDNEQ(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNEQ(FieldOriginalMessageID, v))
}

// OriginalMessageIDIn applies the In predicate on the "original_message_id" field.
func OriginalMessageIDIn(vs ...string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldIn(FieldOriginalMessageID, vs...))
}

// OriginalMessageIDNotIn applies the NotIn predicate on the "original_message_id" field.
func OriginalMessageIDNotIn(vs ...string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNotIn(FieldOriginalMessageID, vs...))
}

// OriginalMessageIDGT applies the GT predicate on the "original_message_id" field.
func OriginalMessageIDGT(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGT(FieldOriginalMessageID, v))
}

// OriginalMessageIDGTE applies the GTE predicate on the "original_message_id" field.
func OriginalMessageIDGTE(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGTE(FieldOriginalMessageID, v))
}

// OriginalMessageIDLT applies the LT predicate on the "original_message_id" field.
func OriginalMessageIDLT(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLT(FieldOriginalMessageID, v))
}

// OriginalMessageIDLTE applies the LTE predicate on the "original_message_id" field.
func OriginalMessageIDLTE(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLTE(FieldOriginalMessageID, v))
}

// OriginalMessageIDContains applies the Contains predicate on the "original_message_id" field.
func OriginalMessageIDContains(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldContains(FieldOriginalMessageID, v))
}

// OriginalMessageIDHasPrefix applies the HasPrefix predicate on the "original_message_id" field.
func OriginalMessageIDHasPrefix(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldHasPrefix(FieldOriginalMessageID, v))
}

// OriginalMessageIDHasSuffix applies the HasSuffix predicate on the "original_message_id" field.
func OriginalMessageIDHasSuffix(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldHasSuffix(FieldOriginalMessageID, v))
}

// OriginalMessageIDIsNil applies the IsNil predicate on the "original_message_id" field.
func OriginalMessageIDIsNil() predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldIsNull(FieldOriginalMessageID))
}

// OriginalMessageIDNotNil applies the NotNil predicate on the "original_message_id" field.
func OriginalMessageIDNotNil() predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNotNull(FieldOriginalMessageID))
}

// OriginalMessageIDEqualFold applies the EqualFold predicate on the "original_message_id" field.
func OriginalMessageIDEqualFold(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEqualFold(FieldOriginalMessageID, v))
}

// OriginalMessageIDContainsFold applies the ContainsFold predicate on the "original_message_id" field.
func OriginalMessageIDContainsFold(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldContainsFold(FieldOriginalMessageID, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// TTLExpireAtEQ applies the EQ predicate on the "ttl_expire_at" field.
func TTLExpireAtEQ(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldEQ(FieldTTLExpireAt, v))
}

// TTLExpireAtNEQ applies the NEQ predicate on the "ttl_expire_at" field.
func TTLExpireAtNEQ(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNEQ(FieldTTLExpireAt, v))
}

// TTLExpireAtIn applies the In predicate on the "ttl_expire_at" field.
func TTLExpireAtIn(vs ...time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldIn(FieldTTLExpireAt, vs...))
}

// TTLExpireAtNotIn applies the NotIn predicate on the "ttl_expire_at" field.
func TTLExpireAtNotIn(vs ...time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldNotIn(FieldTTLExpireAt, vs...))
}

// TTLExpireAtGT applies the GT predicate on the "ttl_expire_at" field.
func TTLExpireAtGT(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGT(FieldTTLExpireAt, v))
}

// TTLExpireAtGTE applies the GTE predicate on the "ttl_expire_at" field.
func TTLExpireAtGTE(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldGTE(FieldTTLExpireAt, v))
}

// TTLExpireAtLT applies the LT predicate on the "ttl_expire_at" field.
func TTLExpireAtLT(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLT(FieldTTLExpireAt, v))
}

// TTLExpireAtLTE applies the LTE predicate on the "ttl_expire_at" field.
func TTLExpireAtLTE(v time.Time) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.FieldLTE(FieldTTLExpireAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DedupeEntry) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DedupeEntry) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DedupeEntry) predicate.DedupeEntry {
	return predicate.DedupeEntry(sql.NotPredicates(p))
}
