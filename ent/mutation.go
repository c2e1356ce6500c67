// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/zapgate/zapgate/ent/auditevent"
	"github.com/zapgate/zapgate/ent/chatsession"
	"github.com/zapgate/zapgate/ent/dedupeentry"
	"github.com/zapgate/zapgate/ent/inboundprocessinglog"
	"github.com/zapgate/zapgate/ent/predicate"
	"github.com/zapgate/zapgate/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEvent           = "AuditEvent"
	TypeChatSession          = "ChatSession"
	TypeDedupeEntry          = "DedupeEntry"
	TypeInboundProcessingLog = "InboundProcessingLog"
)

// AuditEventMutation represents an operation that mutates the AuditEvent nodes in the graph.
type AuditEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	user_key       *string
	tenant_id      *string
	timestamp      *time.Time
	actor          *auditevent.Actor
	action         *string
	reason         *string
	prev_hash      *string
	hash           *string
	correlation_id *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditEvent, error)
	predicates     []predicate.AuditEvent
}

var _ ent.Mutation = (*AuditEventMutation)(nil)

// auditeventOption allows management of the mutation configuration using functional options.
type auditeventOption func(*AuditEventMutation)

// newAuditEventMutation creates new mutation for the AuditEvent entity.
func newAuditEventMutation(c config, op Op, opts ...auditeventOption) *AuditEventMutation {
	m := &AuditEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEventID sets the ID field of the mutation.
func withAuditEventID(id string) auditeventOption {
	return func(m *AuditEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEvent
		)
		m.oldValue = func(ctx context.Context) (*AuditEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEvent sets the old AuditEvent of the mutation.
func withAuditEvent(node *AuditEvent) auditeventOption {
	return func(m *AuditEventMutation) {
		m.oldValue = func(context.Context) (*AuditEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEvent entities.
func (m *AuditEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserKey sets the "user_key" field.
func (m *AuditEventMutation) SetUserKey(s string) {
	m.user_key = &s
}

// UserKey returns the value of the "user_key" field in the mutation.
func (m *AuditEventMutation) UserKey() (r string, exists bool) {
	v := m.user_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUserKey returns the old "user_key" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldUserKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserKey: %w", err)
	}
	return oldValue.UserKey, nil
}

// ResetUserKey resets all changes to the "user_key" field.
func (m *AuditEventMutation) ResetUserKey() {
	m.user_key = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *AuditEventMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AuditEventMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ClearTenantID clears the value of the "tenant_id" field.
func (m *AuditEventMutation) ClearTenantID() {
	m.tenant_id = nil
	m.clearedFields[auditevent.FieldTenantID] = struct{}{}
}

// TenantIDCleared returns if the "tenant_id" field was cleared in this mutation.
func (m *AuditEventMutation) TenantIDCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldTenantID]
	return ok
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AuditEventMutation) ResetTenantID() {
	m.tenant_id = nil
	delete(m.clearedFields, auditevent.FieldTenantID)
}

// SetTimestamp sets the "timestamp" field.
func (m *AuditEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AuditEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AuditEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetActor sets the "actor" field.
func (m *AuditEventMutation) SetActor(a auditevent.Actor) {
	m.actor = &a
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditEventMutation) Actor() (r auditevent.Actor, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldActor(ctx context.Context) (v auditevent.Actor, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditEventMutation) ResetActor() {
	m.actor = nil
}

// SetAction sets the "action" field.
func (m *AuditEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEventMutation) ResetAction() {
	m.action = nil
}

// SetReason sets the "reason" field.
func (m *AuditEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AuditEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *AuditEventMutation) ResetReason() {
	m.reason = nil
}

// SetPrevHash sets the "prev_hash" field.
func (m *AuditEventMutation) SetPrevHash(s string) {
	m.prev_hash = &s
}

// PrevHash returns the value of the "prev_hash" field in the mutation.
func (m *AuditEventMutation) PrevHash() (r string, exists bool) {
	v := m.prev_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevHash returns the old "prev_hash" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldPrevHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevHash: %w", err)
	}
	return oldValue.PrevHash, nil
}

// ResetPrevHash resets all changes to the "prev_hash" field.
func (m *AuditEventMutation) ResetPrevHash() {
	m.prev_hash = nil
}

// SetHash sets the "hash" field.
func (m *AuditEventMutation) SetHash(s string) {
	m.hash = &s
}

// Hash returns the value of the "hash" field in the mutation.
func (m *AuditEventMutation) Hash() (r string, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *AuditEventMutation) ResetHash() {
	m.hash = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AuditEventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AuditEventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *AuditEventMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[auditevent.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *AuditEventMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AuditEventMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, auditevent.FieldCorrelationID)
}

// Where appends a list predicates to the AuditEventMutation builder.
func (m *AuditEventMutation) Where(ps ...predicate.AuditEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEvent).
func (m *AuditEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_key != nil {
		fields = append(fields, auditevent.FieldUserKey)
	}
	if m.tenant_id != nil {
		fields = append(fields, auditevent.FieldTenantID)
	}
	if m.timestamp != nil {
		fields = append(fields, auditevent.FieldTimestamp)
	}
	if m.actor != nil {
		fields = append(fields, auditevent.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, auditevent.FieldAction)
	}
	if m.reason != nil {
		fields = append(fields, auditevent.FieldReason)
	}
	if m.prev_hash != nil {
		fields = append(fields, auditevent.FieldPrevHash)
	}
	if m.hash != nil {
		fields = append(fields, auditevent.FieldHash)
	}
	if m.correlation_id != nil {
		fields = append(fields, auditevent.FieldCorrelationID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditevent.FieldUserKey:
		return m.UserKey()
	case auditevent.FieldTenantID:
		return m.TenantID()
	case auditevent.FieldTimestamp:
		return m.Timestamp()
	case auditevent.FieldActor:
		return m.Actor()
	case auditevent.FieldAction:
		return m.Action()
	case auditevent.FieldReason:
		return m.Reason()
	case auditevent.FieldPrevHash:
		return m.PrevHash()
	case auditevent.FieldHash:
		return m.Hash()
	case auditevent.FieldCorrelationID:
		return m.CorrelationID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditevent.FieldUserKey:
		return m.OldUserKey(ctx)
	case auditevent.FieldTenantID:
		return m.OldTenantID(ctx)
	case auditevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case auditevent.FieldActor:
		return m.OldActor(ctx)
	case auditevent.FieldAction:
		return m.OldAction(ctx)
	case auditevent.FieldReason:
		return m.OldReason(ctx)
	case auditevent.FieldPrevHash:
		return m.OldPrevHash(ctx)
	case auditevent.FieldHash:
		return m.OldHash(ctx)
	case auditevent.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditevent.FieldUserKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserKey(v)
		return nil
	case auditevent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case auditevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case auditevent.FieldActor:
		v, ok := value.(auditevent.Actor)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case auditevent.FieldPrevHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevHash(v)
		return nil
	case auditevent.FieldHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	case auditevent.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditevent.FieldTenantID) {
		fields = append(fields, auditevent.FieldTenantID)
	}
	if m.FieldCleared(auditevent.FieldCorrelationID) {
		fields = append(fields, auditevent.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEventMutation) ClearField(name string) error {
	switch name {
	case auditevent.FieldTenantID:
		m.ClearTenantID()
		return nil
	case auditevent.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEventMutation) ResetField(name string) error {
	switch name {
	case auditevent.FieldUserKey:
		m.ResetUserKey()
		return nil
	case auditevent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case auditevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case auditevent.FieldActor:
		m.ResetActor()
		return nil
	case auditevent.FieldAction:
		m.ResetAction()
		return nil
	case auditevent.FieldReason:
		m.ResetReason()
		return nil
	case auditevent.FieldPrevHash:
		m.ResetPrevHash()
		return nil
	case auditevent.FieldHash:
		m.ResetHash()
		return nil
	case auditevent.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent edge %s", name)
}

// ChatSessionMutation represents an operation that mutates the ChatSession nodes in the graph.
type ChatSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	chat_id               *string
	current_state         *string
	outcome               *string
	intent_queue          *[]models.IntentEntry
	appendintent_queue    []models.IntentEntry
	message_history       *[]models.HistoryEntry
	appendmessage_history []models.HistoryEntry
	version               *int
	addversion            *int
	created_at            *time.Time
	updated_at            *time.Time
	expires_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ChatSession, error)
	predicates            []predicate.ChatSession
}

var _ ent.Mutation = (*ChatSessionMutation)(nil)

// chatsessionOption allows management of the mutation configuration using functional options.
type chatsessionOption func(*ChatSessionMutation)

// newChatSessionMutation creates new mutation for the ChatSession entity.
func newChatSessionMutation(c config, op Op, opts ...chatsessionOption) *ChatSessionMutation {
	m := &ChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSessionID sets the ID field of the mutation.
func withChatSessionID(id string) chatsessionOption {
	return func(m *ChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSession
		)
		m.oldValue = func(ctx context.Context) (*ChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSession sets the old ChatSession of the mutation.
func withChatSession(node *ChatSession) chatsessionOption {
	return func(m *ChatSessionMutation) {
		m.oldValue = func(context.Context) (*ChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSession entities.
func (m *ChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *ChatSessionMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ChatSessionMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ChatSessionMutation) ResetChatID() {
	m.chat_id = nil
}

// SetCurrentState sets the "current_state" field.
func (m *ChatSessionMutation) SetCurrentState(s string) {
	m.current_state = &s
}

// CurrentState returns the value of the "current_state" field in the mutation.
func (m *ChatSessionMutation) CurrentState() (r string, exists bool) {
	v := m.current_state
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentState returns the old "current_state" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCurrentState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentState: %w", err)
	}
	return oldValue.CurrentState, nil
}

// ResetCurrentState resets all changes to the "current_state" field.
func (m *ChatSessionMutation) ResetCurrentState() {
	m.current_state = nil
}

// SetOutcome sets the "outcome" field.
func (m *ChatSessionMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *ChatSessionMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *ChatSessionMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[chatsession.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *ChatSessionMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *ChatSessionMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, chatsession.FieldOutcome)
}

// SetIntentQueue sets the "intent_queue" field.
func (m *ChatSessionMutation) SetIntentQueue(me []models.IntentEntry) {
	m.intent_queue = &me
	m.appendintent_queue = nil
}

// IntentQueue returns the value of the "intent_queue" field in the mutation.
func (m *ChatSessionMutation) IntentQueue() (r []models.IntentEntry, exists bool) {
	v := m.intent_queue
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentQueue returns the old "intent_queue" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldIntentQueue(ctx context.Context) (v []models.IntentEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentQueue: %w", err)
	}
	return oldValue.IntentQueue, nil
}

// AppendIntentQueue adds me to the "intent_queue" field.
func (m *ChatSessionMutation) AppendIntentQueue(me []models.IntentEntry) {
	m.appendintent_queue = append(m.appendintent_queue, me...)
}

// AppendedIntentQueue returns the list of values that were appended to the "intent_queue" field in this mutation.
func (m *ChatSessionMutation) AppendedIntentQueue() ([]models.IntentEntry, bool) {
	if len(m.appendintent_queue) == 0 {
		return nil, false
	}
	return m.appendintent_queue, true
}

// ClearIntentQueue clears the value of the "intent_queue" field.
func (m *ChatSessionMutation) ClearIntentQueue() {
	m.intent_queue = nil
	m.appendintent_queue = nil
	m.clearedFields[chatsession.FieldIntentQueue] = struct{}{}
}

// IntentQueueCleared returns if the "intent_queue" field was cleared in this mutation.
func (m *ChatSessionMutation) IntentQueueCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldIntentQueue]
	return ok
}

// ResetIntentQueue resets all changes to the "intent_queue" field.
func (m *ChatSessionMutation) ResetIntentQueue() {
	m.intent_queue = nil
	m.appendintent_queue = nil
	delete(m.clearedFields, chatsession.FieldIntentQueue)
}

// SetMessageHistory sets the "message_history" field.
func (m *ChatSessionMutation) SetMessageHistory(me []models.HistoryEntry) {
	m.message_history = &me
	m.appendmessage_history = nil
}

// MessageHistory returns the value of the "message_history" field in the mutation.
func (m *ChatSessionMutation) MessageHistory() (r []models.HistoryEntry, exists bool) {
	v := m.message_history
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageHistory returns the old "message_history" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldMessageHistory(ctx context.Context) (v []models.HistoryEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageHistory: %w", err)
	}
	return oldValue.MessageHistory, nil
}

// AppendMessageHistory adds me to the "message_history" field.
func (m *ChatSessionMutation) AppendMessageHistory(me []models.HistoryEntry) {
	m.appendmessage_history = append(m.appendmessage_history, me...)
}

// AppendedMessageHistory returns the list of values that were appended to the "message_history" field in this mutation.
func (m *ChatSessionMutation) AppendedMessageHistory() ([]models.HistoryEntry, bool) {
	if len(m.appendmessage_history) == 0 {
		return nil, false
	}
	return m.appendmessage_history, true
}

// ClearMessageHistory clears the value of the "message_history" field.
func (m *ChatSessionMutation) ClearMessageHistory() {
	m.message_history = nil
	m.appendmessage_history = nil
	m.clearedFields[chatsession.FieldMessageHistory] = struct{}{}
}

// MessageHistoryCleared returns if the "message_history" field was cleared in this mutation.
func (m *ChatSessionMutation) MessageHistoryCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldMessageHistory]
	return ok
}

// ResetMessageHistory resets all changes to the "message_history" field.
func (m *ChatSessionMutation) ResetMessageHistory() {
	m.message_history = nil
	m.appendmessage_history = nil
	delete(m.clearedFields, chatsession.FieldMessageHistory)
}

// SetVersion sets the "version" field.
func (m *ChatSessionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ChatSessionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ChatSessionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ChatSessionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ChatSessionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ChatSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ChatSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ChatSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the ChatSessionMutation builder.
func (m *ChatSessionMutation) Where(ps ...predicate.ChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSession).
func (m *ChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.chat_id != nil {
		fields = append(fields, chatsession.FieldChatID)
	}
	if m.current_state != nil {
		fields = append(fields, chatsession.FieldCurrentState)
	}
	if m.outcome != nil {
		fields = append(fields, chatsession.FieldOutcome)
	}
	if m.intent_queue != nil {
		fields = append(fields, chatsession.FieldIntentQueue)
	}
	if m.message_history != nil {
		fields = append(fields, chatsession.FieldMessageHistory)
	}
	if m.version != nil {
		fields = append(fields, chatsession.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, chatsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatsession.FieldUpdatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, chatsession.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldChatID:
		return m.ChatID()
	case chatsession.FieldCurrentState:
		return m.CurrentState()
	case chatsession.FieldOutcome:
		return m.Outcome()
	case chatsession.FieldIntentQueue:
		return m.IntentQueue()
	case chatsession.FieldMessageHistory:
		return m.MessageHistory()
	case chatsession.FieldVersion:
		return m.Version()
	case chatsession.FieldCreatedAt:
		return m.CreatedAt()
	case chatsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case chatsession.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsession.FieldChatID:
		return m.OldChatID(ctx)
	case chatsession.FieldCurrentState:
		return m.OldCurrentState(ctx)
	case chatsession.FieldOutcome:
		return m.OldOutcome(ctx)
	case chatsession.FieldIntentQueue:
		return m.OldIntentQueue(ctx)
	case chatsession.FieldMessageHistory:
		return m.OldMessageHistory(ctx)
	case chatsession.FieldVersion:
		return m.OldVersion(ctx)
	case chatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case chatsession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case chatsession.FieldCurrentState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentState(v)
		return nil
	case chatsession.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case chatsession.FieldIntentQueue:
		v, ok := value.([]models.IntentEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentQueue(v)
		return nil
	case chatsession.FieldMessageHistory:
		v, ok := value.([]models.HistoryEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageHistory(v)
		return nil
	case chatsession.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case chatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case chatsession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSessionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, chatsession.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatsession.FieldOutcome) {
		fields = append(fields, chatsession.FieldOutcome)
	}
	if m.FieldCleared(chatsession.FieldIntentQueue) {
		fields = append(fields, chatsession.FieldIntentQueue)
	}
	if m.FieldCleared(chatsession.FieldMessageHistory) {
		fields = append(fields, chatsession.FieldMessageHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSessionMutation) ClearField(name string) error {
	switch name {
	case chatsession.FieldOutcome:
		m.ClearOutcome()
		return nil
	case chatsession.FieldIntentQueue:
		m.ClearIntentQueue()
		return nil
	case chatsession.FieldMessageHistory:
		m.ClearMessageHistory()
		return nil
	}
	return fmt.Errorf("unknown ChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSessionMutation) ResetField(name string) error {
	switch name {
	case chatsession.FieldChatID:
		m.ResetChatID()
		return nil
	case chatsession.FieldCurrentState:
		m.ResetCurrentState()
		return nil
	case chatsession.FieldOutcome:
		m.ResetOutcome()
		return nil
	case chatsession.FieldIntentQueue:
		m.ResetIntentQueue()
		return nil
	case chatsession.FieldMessageHistory:
		m.ResetMessageHistory()
		return nil
	case chatsession.FieldVersion:
		m.ResetVersion()
		return nil
	case chatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case chatsession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChatSession edge %s", name)
}

// DedupeEntryMutation represents an operation that mutates the DedupeEntry nodes in the graph.
type DedupeEntryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	status              *dedupeentry.Status
	original_message_id *string
	last_error          *string
	created_at          *time.Time
	ttl_expire_at       *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*DedupeEntry, error)
	predicates          []predicate.DedupeEntry
}

var _ ent.Mutation = (*DedupeEntryMutation)(nil)

// dedupeentryOption allows management of the mutation configuration using functional options.
type dedupeentryOption func(*DedupeEntryMutation)

// newDedupeEntryMutation creates new mutation for the DedupeEntry entity.
func newDedupeEntryMutation(c config, op Op, opts ...dedupeentryOption) *DedupeEntryMutation {
	m := &DedupeEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeDedupeEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDedupeEntryID sets the ID field of the mutation.
func withDedupeEntryID(id string) dedupeentryOption {
	return func(m *DedupeEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *DedupeEntry
		)
		m.oldValue = func(ctx context.Context) (*DedupeEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DedupeEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDedupeEntry sets the old DedupeEntry of the mutation.
func withDedupeEntry(node *DedupeEntry) dedupeentryOption {
	return func(m *DedupeEntryMutation) {
		m.oldValue = func(context.Context) (*DedupeEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DedupeEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DedupeEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DedupeEntry entities.
func (m *DedupeEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DedupeEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DedupeEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DedupeEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *DedupeEntryMutation) SetStatus(d dedupeentry.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DedupeEntryMutation) Status() (r dedupeentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DedupeEntry entity.
// If the DedupeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupeEntryMutation) OldStatus(ctx context.Context) (v dedupeentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DedupeEntryMutation) ResetStatus() {
	m.status = nil
}

// SetOriginalMessageID sets the "original_message_id" field.
func (m *DedupeEntryMutation) SetOriginalMessageID(s string) {
	m.original_message_id = &s
}

// OriginalMessageID returns the value of the "original_message_id" field in the mutation.
func (m *DedupeEntryMutation) OriginalMessageID() (r string, exists bool) {
	v := m.original_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalMessageID returns the old "original_message_id" field's value of the DedupeEntry entity.
// If the DedupeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupeEntryMutation) OldOriginalMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalMessageID: %w", err)
	}
	return oldValue.OriginalMessageID, nil
}

// ClearOriginalMessageID clears the value of the "original_message_id" field.
func (m *DedupeEntryMutation) ClearOriginalMessageID() {
	m.original_message_id = nil
	m.clearedFields[dedupeentry.FieldOriginalMessageID] = struct{}{}
}

// OriginalMessageIDCleared returns if the "original_message_id" field was cleared in this mutation.
func (m *DedupeEntryMutation) OriginalMessageIDCleared() bool {
	_, ok := m.clearedFields[dedupeentry.FieldOriginalMessageID]
	return ok
}

// ResetOriginalMessageID resets all changes to the "original_message_id" field.
func (m *DedupeEntryMutation) ResetOriginalMessageID() {
	m.original_message_id = nil
	delete(m.clearedFields, dedupeentry.FieldOriginalMessageID)
}

// SetLastError sets the "last_error" field.
func (m *DedupeEntryMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *DedupeEntryMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the DedupeEntry entity.
// If the DedupeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupeEntryMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *DedupeEntryMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[dedupeentry.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *DedupeEntryMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[dedupeentry.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *DedupeEntryMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, dedupeentry.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *DedupeEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DedupeEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DedupeEntry entity.
// If the DedupeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupeEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DedupeEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTTLExpireAt sets the "ttl_expire_at" field.
func (m *DedupeEntryMutation) SetTTLExpireAt(t time.Time) {
	m.ttl_expire_at = &t
}

// TTLExpireAt returns the value of the "ttl_expire_at" field in the mutation.
func (m *DedupeEntryMutation) TTLExpireAt() (r time.Time, exists bool) {
	v := m.ttl_expire_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTTLExpireAt returns the old "ttl_expire_at" field's value of the DedupeEntry entity.
// If the DedupeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupeEntryMutation) OldTTLExpireAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTTLExpireAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTTLExpireAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTTLExpireAt: %w", err)
	}
	return oldValue.TTLExpireAt, nil
}

// ResetTTLExpireAt resets all changes to the "ttl_expire_at" field.
func (m *DedupeEntryMutation) ResetTTLExpireAt() {
	m.ttl_expire_at = nil
}

// Where appends a list predicates to the DedupeEntryMutation builder.
func (m *DedupeEntryMutation) Where(ps ...predicate.DedupeEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DedupeEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DedupeEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DedupeEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DedupeEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DedupeEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DedupeEntry).
func (m *DedupeEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DedupeEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.status != nil {
		fields = append(fields, dedupeentry.FieldStatus)
	}
	if m.original_message_id != nil {
		fields = append(fields, dedupeentry.FieldOriginalMessageID)
	}
	if m.last_error != nil {
		fields = append(fields, dedupeentry.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, dedupeentry.FieldCreatedAt)
	}
	if m.ttl_expire_at != nil {
		fields = append(fields, dedupeentry.FieldTTLExpireAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DedupeEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dedupeentry.FieldStatus:
		return m.Status()
	case dedupeentry.FieldOriginalMessageID:
		return m.OriginalMessageID()
	case dedupeentry.FieldLastError:
		return m.LastError()
	case dedupeentry.FieldCreatedAt:
		return m.CreatedAt()
	case dedupeentry.FieldTTLExpireAt:
		return m.TTLExpireAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DedupeEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dedupeentry.FieldStatus:
		return m.OldStatus(ctx)
	case dedupeentry.FieldOriginalMessageID:
		return m.OldOriginalMessageID(ctx)
	case dedupeentry.FieldLastError:
		return m.OldLastError(ctx)
	case dedupeentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dedupeentry.FieldTTLExpireAt:
		return m.OldTTLExpireAt(ctx)
	}
	return nil, fmt.Errorf("unknown DedupeEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DedupeEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dedupeentry.FieldStatus:
		v, ok := value.(dedupeentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case dedupeentry.FieldOriginalMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalMessageID(v)
		return nil
	case dedupeentry.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case dedupeentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dedupeentry.FieldTTLExpireAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTTLExpireAt(v)
		return nil
	}
	return fmt.Errorf("unknown DedupeEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DedupeEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DedupeEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DedupeEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DedupeEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DedupeEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dedupeentry.FieldOriginalMessageID) {
		fields = append(fields, dedupeentry.FieldOriginalMessageID)
	}
	if m.FieldCleared(dedupeentry.FieldLastError) {
		fields = append(fields, dedupeentry.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DedupeEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DedupeEntryMutation) ClearField(name string) error {
	switch name {
	case dedupeentry.FieldOriginalMessageID:
		m.ClearOriginalMessageID()
		return nil
	case dedupeentry.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown DedupeEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DedupeEntryMutation) ResetField(name string) error {
	switch name {
	case dedupeentry.FieldStatus:
		m.ResetStatus()
		return nil
	case dedupeentry.FieldOriginalMessageID:
		m.ResetOriginalMessageID()
		return nil
	case dedupeentry.FieldLastError:
		m.ResetLastError()
		return nil
	case dedupeentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dedupeentry.FieldTTLExpireAt:
		m.ResetTTLExpireAt()
		return nil
	}
	return fmt.Errorf("unknown DedupeEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DedupeEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DedupeEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DedupeEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DedupeEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DedupeEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DedupeEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DedupeEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DedupeEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DedupeEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DedupeEntry edge %s", name)
}

// InboundProcessingLogMutation represents an operation that mutates the InboundProcessingLog nodes in the graph.
type InboundProcessingLogMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	correlation_id       *string
	session_id           *string
	status               *string
	outcome              *string
	signature_skipped    *bool
	error_message        *string
	outbound_tasks       *[]string
	appendoutbound_tasks []string
	created_at           *time.Time
	ttl_expire_at        *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*InboundProcessingLog, error)
	predicates           []predicate.InboundProcessingLog
}

var _ ent.Mutation = (*InboundProcessingLogMutation)(nil)

// inboundprocessinglogOption allows management of the mutation configuration using functional options.
type inboundprocessinglogOption func(*InboundProcessingLogMutation)

// newInboundProcessingLogMutation creates new mutation for the InboundProcessingLog entity.
func newInboundProcessingLogMutation(c config, op Op, opts ...inboundprocessinglogOption) *InboundProcessingLogMutation {
	m := &InboundProcessingLogMutation{
		config:        c,
		op:            op,
		typ:           TypeInboundProcessingLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInboundProcessingLogID sets the ID field of the mutation.
func withInboundProcessingLogID(id string) inboundprocessinglogOption {
	return func(m *InboundProcessingLogMutation) {
		var (
			err   error
			once  sync.Once
			value *InboundProcessingLog
		)
		m.oldValue = func(ctx context.Context) (*InboundProcessingLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InboundProcessingLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInboundProcessingLog sets the old InboundProcessingLog of the mutation.
func withInboundProcessingLog(node *InboundProcessingLog) inboundprocessinglogOption {
	return func(m *InboundProcessingLogMutation) {
		m.oldValue = func(context.Context) (*InboundProcessingLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InboundProcessingLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InboundProcessingLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InboundProcessingLog entities.
func (m *InboundProcessingLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InboundProcessingLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InboundProcessingLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InboundProcessingLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCorrelationID sets the "correlation_id" field.
func (m *InboundProcessingLogMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *InboundProcessingLogMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the InboundProcessingLog entity.
// If the InboundProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundProcessingLogMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *InboundProcessingLogMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[inboundprocessinglog.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *InboundProcessingLogMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[inboundprocessinglog.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *InboundProcessingLogMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, inboundprocessinglog.FieldCorrelationID)
}

// SetSessionID sets the "session_id" field.
func (m *InboundProcessingLogMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InboundProcessingLogMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the InboundProcessingLog entity.
// If the InboundProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundProcessingLogMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *InboundProcessingLogMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[inboundprocessinglog.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *InboundProcessingLogMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[inboundprocessinglog.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InboundProcessingLogMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, inboundprocessinglog.FieldSessionID)
}

// SetStatus sets the "status" field.
func (m *InboundProcessingLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InboundProcessingLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InboundProcessingLog entity.
// If the InboundProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundProcessingLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InboundProcessingLogMutation) ResetStatus() {
	m.status = nil
}

// SetOutcome sets the "outcome" field.
func (m *InboundProcessingLogMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *InboundProcessingLogMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the InboundProcessingLog entity.
// If the InboundProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundProcessingLogMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *InboundProcessingLogMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[inboundprocessinglog.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *InboundProcessingLogMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[inboundprocessinglog.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *InboundProcessingLogMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, inboundprocessinglog.FieldOutcome)
}

// SetSignatureSkipped sets the "signature_skipped" field.
func (m *InboundProcessingLogMutation) SetSignatureSkipped(b bool) {
	m.signature_skipped = &b
}

// SignatureSkipped returns the value of the "signature_skipped" field in the mutation.
func (m *InboundProcessingLogMutation) SignatureSkipped() (r bool, exists bool) {
	v := m.signature_skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureSkipped returns the old "signature_skipped" field's value of the InboundProcessingLog entity.
// If the InboundProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundProcessingLogMutation) OldSignatureSkipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureSkipped: %w", err)
	}
	return oldValue.SignatureSkipped, nil
}

// ResetSignatureSkipped resets all changes to the "signature_skipped" field.
func (m *InboundProcessingLogMutation) ResetSignatureSkipped() {
	m.signature_skipped = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *InboundProcessingLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *InboundProcessingLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the InboundProcessingLog entity.
// If the InboundProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundProcessingLogMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *InboundProcessingLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[inboundprocessinglog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *InboundProcessingLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[inboundprocessinglog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *InboundProcessingLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, inboundprocessinglog.FieldErrorMessage)
}

// SetOutboundTasks sets the "outbound_tasks" field.
func (m *InboundProcessingLogMutation) SetOutboundTasks(s []string) {
	m.outbound_tasks = &s
	m.appendoutbound_tasks = nil
}

// OutboundTasks returns the value of the "outbound_tasks" field in the mutation.
func (m *InboundProcessingLogMutation) OutboundTasks() (r []string, exists bool) {
	v := m.outbound_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldOutboundTasks returns the old "outbound_tasks" field's value of the InboundProcessingLog entity.
// If the InboundProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundProcessingLogMutation) OldOutboundTasks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutboundTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutboundTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutboundTasks: %w", err)
	}
	return oldValue.OutboundTasks, nil
}

// AppendOutboundTasks adds s to the "outbound_tasks" field.
func (m *InboundProcessingLogMutation) AppendOutboundTasks(s []string) {
	m.appendoutbound_tasks = append(m.appendoutbound_tasks, s...)
}

// AppendedOutboundTasks returns the list of values that were appended to the "outbound_tasks" field in this mutation.
func (m *InboundProcessingLogMutation) AppendedOutboundTasks() ([]string, bool) {
	if len(m.appendoutbound_tasks) == 0 {
		return nil, false
	}
	return m.appendoutbound_tasks, true
}

// ClearOutboundTasks clears the value of the "outbound_tasks" field.
func (m *InboundProcessingLogMutation) ClearOutboundTasks() {
	m.outbound_tasks = nil
	m.appendoutbound_tasks = nil
	m.clearedFields[inboundprocessinglog.FieldOutboundTasks] = struct{}{}
}

// OutboundTasksCleared returns if the "outbound_tasks" field was cleared in this mutation.
func (m *InboundProcessingLogMutation) OutboundTasksCleared() bool {
	_, ok := m.clearedFields[inboundprocessinglog.FieldOutboundTasks]
	return ok
}

// ResetOutboundTasks resets all changes to the "outbound_tasks" field.
func (m *InboundProcessingLogMutation) ResetOutboundTasks() {
	m.outbound_tasks = nil
	m.appendoutbound_tasks = nil
	delete(m.clearedFields, inboundprocessinglog.FieldOutboundTasks)
}

// SetCreatedAt sets the "created_at" field.
func (m *InboundProcessingLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InboundProcessingLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InboundProcessingLog entity.
// If the InboundProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundProcessingLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InboundProcessingLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTTLExpireAt sets the "ttl_expire_at" field.
func (m *InboundProcessingLogMutation) SetTTLExpireAt(t time.Time) {
	m.ttl_expire_at = &t
}

// TTLExpireAt returns the value of the "ttl_expire_at" field in the mutation.
func (m *InboundProcessingLogMutation) TTLExpireAt() (r time.Time, exists bool) {
	v := m.ttl_expire_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTTLExpireAt returns the old "ttl_expire_at" field's value of the InboundProcessingLog entity.
// If the InboundProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundProcessingLogMutation) OldTTLExpireAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTTLExpireAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTTLExpireAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTTLExpireAt: %w", err)
	}
	return oldValue.TTLExpireAt, nil
}

// ResetTTLExpireAt resets all changes to the "ttl_expire_at" field.
func (m *InboundProcessingLogMutation) ResetTTLExpireAt() {
	m.ttl_expire_at = nil
}

// Where appends a list predicates to the InboundProcessingLogMutation builder.
func (m *InboundProcessingLogMutation) Where(ps ...predicate.InboundProcessingLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InboundProcessingLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InboundProcessingLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InboundProcessingLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InboundProcessingLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InboundProcessingLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InboundProcessingLog).
func (m *InboundProcessingLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InboundProcessingLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.correlation_id != nil {
		fields = append(fields, inboundprocessinglog.FieldCorrelationID)
	}
	if m.session_id != nil {
		fields = append(fields, inboundprocessinglog.FieldSessionID)
	}
	if m.status != nil {
		fields = append(fields, inboundprocessinglog.FieldStatus)
	}
	if m.outcome != nil {
		fields = append(fields, inboundprocessinglog.FieldOutcome)
	}
	if m.signature_skipped != nil {
		fields = append(fields, inboundprocessinglog.FieldSignatureSkipped)
	}
	if m.error_message != nil {
		fields = append(fields, inboundprocessinglog.FieldErrorMessage)
	}
	if m.outbound_tasks != nil {
		fields = append(fields, inboundprocessinglog.FieldOutboundTasks)
	}
	if m.created_at != nil {
		fields = append(fields, inboundprocessinglog.FieldCreatedAt)
	}
	if m.ttl_expire_at != nil {
		fields = append(fields, inboundprocessinglog.FieldTTLExpireAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InboundProcessingLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inboundprocessinglog.FieldCorrelationID:
		return m.CorrelationID()
	case inboundprocessinglog.FieldSessionID:
		return m.SessionID()
	case inboundprocessinglog.FieldStatus:
		return m.Status()
	case inboundprocessinglog.FieldOutcome:
		return m.Outcome()
	case inboundprocessinglog.FieldSignatureSkipped:
		return m.SignatureSkipped()
	case inboundprocessinglog.FieldErrorMessage:
		return m.ErrorMessage()
	case inboundprocessinglog.FieldOutboundTasks:
		return m.OutboundTasks()
	case inboundprocessinglog.FieldCreatedAt:
		return m.CreatedAt()
	case inboundprocessinglog.FieldTTLExpireAt:
		return m.TTLExpireAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InboundProcessingLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inboundprocessinglog.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case inboundprocessinglog.FieldSessionID:
		return m.OldSessionID(ctx)
	case inboundprocessinglog.FieldStatus:
		return m.OldStatus(ctx)
	case inboundprocessinglog.FieldOutcome:
		return m.OldOutcome(ctx)
	case inboundprocessinglog.FieldSignatureSkipped:
		return m.OldSignatureSkipped(ctx)
	case inboundprocessinglog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case inboundprocessinglog.FieldOutboundTasks:
		return m.OldOutboundTasks(ctx)
	case inboundprocessinglog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case inboundprocessinglog.FieldTTLExpireAt:
		return m.OldTTLExpireAt(ctx)
	}
	return nil, fmt.Errorf("unknown InboundProcessingLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboundProcessingLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inboundprocessinglog.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case inboundprocessinglog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case inboundprocessinglog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case inboundprocessinglog.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case inboundprocessinglog.FieldSignatureSkipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureSkipped(v)
		return nil
	case inboundprocessinglog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case inboundprocessinglog.FieldOutboundTasks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutboundTasks(v)
		return nil
	case inboundprocessinglog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case inboundprocessinglog.FieldTTLExpireAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTTLExpireAt(v)
		return nil
	}
	return fmt.Errorf("unknown InboundProcessingLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InboundProcessingLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InboundProcessingLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboundProcessingLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InboundProcessingLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InboundProcessingLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inboundprocessinglog.FieldCorrelationID) {
		fields = append(fields, inboundprocessinglog.FieldCorrelationID)
	}
	if m.FieldCleared(inboundprocessinglog.FieldSessionID) {
		fields = append(fields, inboundprocessinglog.FieldSessionID)
	}
	if m.FieldCleared(inboundprocessinglog.FieldOutcome) {
		fields = append(fields, inboundprocessinglog.FieldOutcome)
	}
	if m.FieldCleared(inboundprocessinglog.FieldErrorMessage) {
		fields = append(fields, inboundprocessinglog.FieldErrorMessage)
	}
	if m.FieldCleared(inboundprocessinglog.FieldOutboundTasks) {
		fields = append(fields, inboundprocessinglog.FieldOutboundTasks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InboundProcessingLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InboundProcessingLogMutation) ClearField(name string) error {
	switch name {
	case inboundprocessinglog.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case inboundprocessinglog.FieldSessionID:
		m.ClearSessionID()
		return nil
	case inboundprocessinglog.FieldOutcome:
		m.ClearOutcome()
		return nil
	case inboundprocessinglog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case inboundprocessinglog.FieldOutboundTasks:
		m.ClearOutboundTasks()
		return nil
	}
	return fmt.Errorf("unknown InboundProcessingLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InboundProcessingLogMutation) ResetField(name string) error {
	switch name {
	case inboundprocessinglog.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case inboundprocessinglog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case inboundprocessinglog.FieldStatus:
		m.ResetStatus()
		return nil
	case inboundprocessinglog.FieldOutcome:
		m.ResetOutcome()
		return nil
	case inboundprocessinglog.FieldSignatureSkipped:
		m.ResetSignatureSkipped()
		return nil
	case inboundprocessinglog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case inboundprocessinglog.FieldOutboundTasks:
		m.ResetOutboundTasks()
		return nil
	case inboundprocessinglog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case inboundprocessinglog.FieldTTLExpireAt:
		m.ResetTTLExpireAt()
		return nil
	}
	return fmt.Errorf("unknown InboundProcessingLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InboundProcessingLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InboundProcessingLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InboundProcessingLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InboundProcessingLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InboundProcessingLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InboundProcessingLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InboundProcessingLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InboundProcessingLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InboundProcessingLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InboundProcessingLog edge %s", name)
}
