// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/zapgate/zapgate/ent/chatsession"
	"github.com/zapgate/zapgate/ent/predicate"
	"github.com/zapgate/zapgate/pkg/models"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentState sets the "current_state" field.
func (_u *ChatSessionUpdate) SetCurrentState(v string) *ChatSessionUpdate {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableCurrentState(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ChatSessionUpdate) SetOutcome(v string) *ChatSessionUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableOutcome(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ChatSessionUpdate) ClearOutcome() *ChatSessionUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetIntentQueue sets the "intent_queue" field.
func (_u *ChatSessionUpdate) SetIntentQueue(v []models.IntentEntry) *ChatSessionUpdate {
	_u.mutation.SetIntentQueue(v)
	return _u
}

// AppendIntentQueue appends value to the "intent_queue" field.
func (_u *ChatSessionUpdate) AppendIntentQueue(v []models.IntentEntry) *ChatSessionUpdate {
	_u.mutation.AppendIntentQueue(v)
	return _u
}

// ClearIntentQueue clears the value of the "intent_queue" field.
func (_u *ChatSessionUpdate) ClearIntentQueue() *ChatSessionUpdate {
	_u.mutation.ClearIntentQueue()
	return _u
}

// SetMessageHistory sets the "message_history" field.
func (_u *ChatSessionUpdate) SetMessageHistory(v []models.HistoryEntry) *ChatSessionUpdate {
	_u.mutation.SetMessageHistory(v)
	return _u
}

// AppendMessageHistory appends value to the "message_history" field.
func (_u *ChatSessionUpdate) AppendMessageHistory(v []models.HistoryEntry) *ChatSessionUpdate {
	_u.mutation.AppendMessageHistory(v)
	return _u
}

// ClearMessageHistory clears the value of the "message_history" field.
func (_u *ChatSessionUpdate) ClearMessageHistory() *ChatSessionUpdate {
	_u.mutation.ClearMessageHistory()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ChatSessionUpdate) SetVersion(v int) *ChatSessionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableVersion(v *int) *ChatSessionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ChatSessionUpdate) AddVersion(v int) *ChatSessionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdate) SetUpdatedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableUpdatedAt(v *time.Time) *ChatSessionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ChatSessionUpdate) SetExpiresAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableExpiresAt(v *time.Time) *ChatSessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(chatsession.FieldCurrentState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(chatsession.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(chatsession.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.IntentQueue(); ok {
		_spec.SetField(chatsession.FieldIntentQueue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntentQueue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldIntentQueue, value)
		})
	}
	if _u.mutation.IntentQueueCleared() {
		_spec.ClearField(chatsession.FieldIntentQueue, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageHistory(); ok {
		_spec.SetField(chatsession.FieldMessageHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessageHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldMessageHistory, value)
		})
	}
	if _u.mutation.MessageHistoryCleared() {
		_spec.ClearField(chatsession.FieldMessageHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(chatsession.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(chatsession.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(chatsession.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetCurrentState sets the "current_state" field.
func (_u *ChatSessionUpdateOne) SetCurrentState(v string) *ChatSessionUpdateOne {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableCurrentState(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ChatSessionUpdateOne) SetOutcome(v string) *ChatSessionUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableOutcome(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ChatSessionUpdateOne) ClearOutcome() *ChatSessionUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetIntentQueue sets the "intent_queue" field.
func (_u *ChatSessionUpdateOne) SetIntentQueue(v []models.IntentEntry) *ChatSessionUpdateOne {
	_u.mutation.SetIntentQueue(v)
	return _u
}

// AppendIntentQueue appends value to the "intent_queue" field.
func (_u *ChatSessionUpdateOne) AppendIntentQueue(v []models.IntentEntry) *ChatSessionUpdateOne {
	_u.mutation.AppendIntentQueue(v)
	return _u
}

// ClearIntentQueue clears the value of the "intent_queue" field.
func (_u *ChatSessionUpdateOne) ClearIntentQueue() *ChatSessionUpdateOne {
	_u.mutation.ClearIntentQueue()
	return _u
}

// SetMessageHistory sets the "message_history" field.
func (_u *ChatSessionUpdateOne) SetMessageHistory(v []models.HistoryEntry) *ChatSessionUpdateOne {
	_u.mutation.SetMessageHistory(v)
	return _u
}

// AppendMessageHistory appends value to the "message_history" field.
func (_u *ChatSessionUpdateOne) AppendMessageHistory(v []models.HistoryEntry) *ChatSessionUpdateOne {
	_u.mutation.AppendMessageHistory(v)
	return _u
}

// ClearMessageHistory clears the value of the "message_history" field.
func (_u *ChatSessionUpdateOne) ClearMessageHistory() *ChatSessionUpdateOne {
	_u.mutation.ClearMessageHistory()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ChatSessionUpdateOne) SetVersion(v int) *ChatSessionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableVersion(v *int) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ChatSessionUpdateOne) AddVersion(v int) *ChatSessionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdateOne) SetUpdatedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableUpdatedAt(v *time.Time) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ChatSessionUpdateOne) SetExpiresAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableExpiresAt(v *time.Time) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(chatsession.FieldCurrentState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(chatsession.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(chatsession.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.IntentQueue(); ok {
		_spec.SetField(chatsession.FieldIntentQueue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntentQueue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldIntentQueue, value)
		})
	}
	if _u.mutation.IntentQueueCleared() {
		_spec.ClearField(chatsession.FieldIntentQueue, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageHistory(); ok {
		_spec.SetField(chatsession.FieldMessageHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessageHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldMessageHistory, value)
		})
	}
	if _u.mutation.MessageHistoryCleared() {
		_spec.ClearField(chatsession.FieldMessageHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(chatsession.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(chatsession.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(chatsession.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
