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
	"github.com/zapgate/zapgate/ent/inboundprocessinglog"
	"github.com/zapgate/zapgate/ent/predicate"
)

// InboundProcessingLogUpdate is the builder for updating InboundProcessingLog entities.
type InboundProcessingLogUpdate struct {
	config
	hooks    []Hook
	mutation *InboundProcessingLogMutation
}

// Where appends a list predicates to the InboundProcessingLogUpdate builder.
func (_u *InboundProcessingLogUpdate) Where(ps ...predicate.InboundProcessingLog) *InboundProcessingLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *InboundProcessingLogUpdate) SetCorrelationID(v string) *InboundProcessingLogUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *InboundProcessingLogUpdate) SetNillableCorrelationID(v *string) *InboundProcessingLogUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *InboundProcessingLogUpdate) ClearCorrelationID() *InboundProcessingLogUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InboundProcessingLogUpdate) SetSessionID(v string) *InboundProcessingLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InboundProcessingLogUpdate) SetNillableSessionID(v *string) *InboundProcessingLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InboundProcessingLogUpdate) ClearSessionID() *InboundProcessingLogUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InboundProcessingLogUpdate) SetStatus(v string) *InboundProcessingLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboundProcessingLogUpdate) SetNillableStatus(v *string) *InboundProcessingLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *InboundProcessingLogUpdate) SetOutcome(v string) *InboundProcessingLogUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *InboundProcessingLogUpdate) SetNillableOutcome(v *string) *InboundProcessingLogUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *InboundProcessingLogUpdate) ClearOutcome() *InboundProcessingLogUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetSignatureSkipped sets the "signature_skipped" field.
func (_u *InboundProcessingLogUpdate) SetSignatureSkipped(v bool) *InboundProcessingLogUpdate {
	_u.mutation.SetSignatureSkipped(v)
	return _u
}

// SetNillableSignatureSkipped sets the "signature_skipped" field if the given value is not nil.
func (_u *InboundProcessingLogUpdate) SetNillableSignatureSkipped(v *bool) *InboundProcessingLogUpdate {
	if v != nil {
		_u.SetSignatureSkipped(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InboundProcessingLogUpdate) SetErrorMessage(v string) *InboundProcessingLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InboundProcessingLogUpdate) SetNillableErrorMessage(v *string) *InboundProcessingLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InboundProcessingLogUpdate) ClearErrorMessage() *InboundProcessingLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOutboundTasks sets the "outbound_tasks" field.
func (_u *InboundProcessingLogUpdate) SetOutboundTasks(v []string) *InboundProcessingLogUpdate {
	_u.mutation.SetOutboundTasks(v)
	return _u
}

// AppendOutboundTasks appends value to the "outbound_tasks" field.
func (_u *InboundProcessingLogUpdate) AppendOutboundTasks(v []string) *InboundProcessingLogUpdate {
	_u.mutation.AppendOutboundTasks(v)
	return _u
}

// ClearOutboundTasks clears the value of the "outbound_tasks" field.
func (_u *InboundProcessingLogUpdate) ClearOutboundTasks() *InboundProcessingLogUpdate {
	_u.mutation.ClearOutboundTasks()
	return _u
}

// SetTTLExpireAt sets the "ttl_expire_at" field.
func (_u *InboundProcessingLogUpdate) SetTTLExpireAt(v time.Time) *InboundProcessingLogUpdate {
	_u.mutation.SetTTLExpireAt(v)
	return _u
}

// SetNillableTTLExpireAt sets the "ttl_expire_at" field if the given value is not nil.
func (_u *InboundProcessingLogUpdate) SetNillableTTLExpireAt(v *time.Time) *InboundProcessingLogUpdate {
	if v != nil {
		_u.SetTTLExpireAt(*v)
	}
	return _u
}

// Mutation returns the InboundProcessingLogMutation object of the builder.
func (_u *InboundProcessingLogUpdate) Mutation() *InboundProcessingLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InboundProcessingLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboundProcessingLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InboundProcessingLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboundProcessingLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InboundProcessingLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(inboundprocessinglog.Table, inboundprocessinglog.Columns, sqlgraph.NewFieldSpec(inboundprocessinglog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(inboundprocessinglog.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(inboundprocessinglog.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(inboundprocessinglog.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(inboundprocessinglog.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboundprocessinglog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(inboundprocessinglog.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(inboundprocessinglog.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.SignatureSkipped(); ok {
		_spec.SetField(inboundprocessinglog.FieldSignatureSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(inboundprocessinglog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(inboundprocessinglog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OutboundTasks(); ok {
		_spec.SetField(inboundprocessinglog.FieldOutboundTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutboundTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, inboundprocessinglog.FieldOutboundTasks, value)
		})
	}
	if _u.mutation.OutboundTasksCleared() {
		_spec.ClearField(inboundprocessinglog.FieldOutboundTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.TTLExpireAt(); ok {
		_spec.SetField(inboundprocessinglog.FieldTTLExpireAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboundprocessinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InboundProcessingLogUpdateOne is the builder for updating a single InboundProcessingLog entity.
type InboundProcessingLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InboundProcessingLogMutation
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *InboundProcessingLogUpdateOne) SetCorrelationID(v string) *InboundProcessingLogUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *InboundProcessingLogUpdateOne) SetNillableCorrelationID(v *string) *InboundProcessingLogUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *InboundProcessingLogUpdateOne) ClearCorrelationID() *InboundProcessingLogUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InboundProcessingLogUpdateOne) SetSessionID(v string) *InboundProcessingLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InboundProcessingLogUpdateOne) SetNillableSessionID(v *string) *InboundProcessingLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InboundProcessingLogUpdateOne) ClearSessionID() *InboundProcessingLogUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InboundProcessingLogUpdateOne) SetStatus(v string) *InboundProcessingLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboundProcessingLogUpdateOne) SetNillableStatus(v *string) *InboundProcessingLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *InboundProcessingLogUpdateOne) SetOutcome(v string) *InboundProcessingLogUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *InboundProcessingLogUpdateOne) SetNillableOutcome(v *string) *InboundProcessingLogUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *InboundProcessingLogUpdateOne) ClearOutcome() *InboundProcessingLogUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetSignatureSkipped sets the "signature_skipped" field.
func (_u *InboundProcessingLogUpdateOne) SetSignatureSkipped(v bool) *InboundProcessingLogUpdateOne {
	_u.mutation.SetSignatureSkipped(v)
	return _u
}

// SetNillableSignatureSkipped sets the "signature_skipped" field if the given value is not nil.
func (_u *InboundProcessingLogUpdateOne) SetNillableSignatureSkipped(v *bool) *InboundProcessingLogUpdateOne {
	if v != nil {
		_u.SetSignatureSkipped(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InboundProcessingLogUpdateOne) SetErrorMessage(v string) *InboundProcessingLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InboundProcessingLogUpdateOne) SetNillableErrorMessage(v *string) *InboundProcessingLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InboundProcessingLogUpdateOne) ClearErrorMessage() *InboundProcessingLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOutboundTasks sets the "outbound_tasks" field.
func (_u *InboundProcessingLogUpdateOne) SetOutboundTasks(v []string) *InboundProcessingLogUpdateOne {
	_u.mutation.SetOutboundTasks(v)
	return _u
}

// AppendOutboundTasks appends value to the "outbound_tasks" field.
func (_u *InboundProcessingLogUpdateOne) AppendOutboundTasks(v []string) *InboundProcessingLogUpdateOne {
	_u.mutation.AppendOutboundTasks(v)
	return _u
}

// ClearOutboundTasks clears the value of the "outbound_tasks" field.
func (_u *InboundProcessingLogUpdateOne) ClearOutboundTasks() *InboundProcessingLogUpdateOne {
	_u.mutation.ClearOutboundTasks()
	return _u
}

// SetTTLExpireAt sets the "ttl_expire_at" field.
func (_u *InboundProcessingLogUpdateOne) SetTTLExpireAt(v time.Time) *InboundProcessingLogUpdateOne {
	_u.mutation.SetTTLExpireAt(v)
	return _u
}

// SetNillableTTLExpireAt sets the "ttl_expire_at" field if the given value is not nil.
func (_u *InboundProcessingLogUpdateOne) SetNillableTTLExpireAt(v *time.Time) *InboundProcessingLogUpdateOne {
	if v != nil {
		_u.SetTTLExpireAt(*v)
	}
	return _u
}

// Mutation returns the InboundProcessingLogMutation object of the builder.
func (_u *InboundProcessingLogUpdateOne) Mutation() *InboundProcessingLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the InboundProcessingLogUpdate builder.
func (_u *InboundProcessingLogUpdateOne) Where(ps ...predicate.InboundProcessingLog) *InboundProcessingLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InboundProcessingLogUpdateOne) Select(field string, fields ...string) *InboundProcessingLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InboundProcessingLog entity.
func (_u *InboundProcessingLogUpdateOne) Save(ctx context.Context) (*InboundProcessingLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboundProcessingLogUpdateOne) SaveX(ctx context.Context) *InboundProcessingLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InboundProcessingLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboundProcessingLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InboundProcessingLogUpdateOne) sqlSave(ctx context.Context) (_node *InboundProcessingLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(inboundprocessinglog.Table, inboundprocessinglog.Columns, sqlgraph.NewFieldSpec(inboundprocessinglog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InboundProcessingLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inboundprocessinglog.FieldID)
		for _, f := range fields {
			if !inboundprocessinglog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inboundprocessinglog.FieldID {
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
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(inboundprocessinglog.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(inboundprocessinglog.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(inboundprocessinglog.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(inboundprocessinglog.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboundprocessinglog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(inboundprocessinglog.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(inboundprocessinglog.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.SignatureSkipped(); ok {
		_spec.SetField(inboundprocessinglog.FieldSignatureSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(inboundprocessinglog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(inboundprocessinglog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OutboundTasks(); ok {
		_spec.SetField(inboundprocessinglog.FieldOutboundTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutboundTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, inboundprocessinglog.FieldOutboundTasks, value)
		})
	}
	if _u.mutation.OutboundTasksCleared() {
		_spec.ClearField(inboundprocessinglog.FieldOutboundTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.TTLExpireAt(); ok {
		_spec.SetField(inboundprocessinglog.FieldTTLExpireAt, field.TypeTime, value)
	}
	_node = &InboundProcessingLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboundprocessinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
