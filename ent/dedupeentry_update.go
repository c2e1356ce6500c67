// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zapgate/zapgate/ent/dedupeentry"
	"github.com/zapgate/zapgate/ent/predicate"
)

// DedupeEntryUpdate is the builder for updating DedupeEntry entities.
type DedupeEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DedupeEntryMutation
}

// Where appends a list predicates to the DedupeEntryUpdate builder.
func (_u *DedupeEntryUpdate) Where(ps ...predicate.DedupeEntry) *DedupeEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DedupeEntryUpdate) SetStatus(v dedupeentry.Status) *DedupeEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DedupeEntryUpdate) SetNillableStatus(v *dedupeentry.Status) *DedupeEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOriginalMessageID sets the "original_message_id" field.
func (_u *DedupeEntryUpdate) SetOriginalMessageID(v string) *DedupeEntryUpdate {
	_u.mutation.SetOriginalMessageID(v)
	return _u
}

// SetNillableOriginalMessageID sets the "original_message_id" field if the given value is not nil.
func (_u *DedupeEntryUpdate) SetNillableOriginalMessageID(v *string) *DedupeEntryUpdate {
	if v != nil {
		_u.SetOriginalMessageID(*v)
	}
	return _u
}

// ClearOriginalMessageID clears the value of the "original_message_id" field.
func (_u *DedupeEntryUpdate) ClearOriginalMessageID() *DedupeEntryUpdate {
	_u.mutation.ClearOriginalMessageID()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DedupeEntryUpdate) SetLastError(v string) *DedupeEntryUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DedupeEntryUpdate) SetNillableLastError(v *string) *DedupeEntryUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *DedupeEntryUpdate) ClearLastError() *DedupeEntryUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetTTLExpireAt sets the "ttl_expire_at" field.
func (_u *DedupeEntryUpdate) SetTTLExpireAt(v time.Time) *DedupeEntryUpdate {
	_u.mutation.SetTTLExpireAt(v)
	return _u
}

// SetNillableTTLExpireAt sets the "ttl_expire_at" field if the given value is not nil.
func (_u *DedupeEntryUpdate) SetNillableTTLExpireAt(v *time.Time) *DedupeEntryUpdate {
	if v != nil {
		_u.SetTTLExpireAt(*v)
	}
	return _u
}

// Mutation returns the DedupeEntryMutation object of the builder.
func (_u *DedupeEntryUpdate) Mutation() *DedupeEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DedupeEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DedupeEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DedupeEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DedupeEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DedupeEntryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dedupeentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DedupeEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DedupeEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dedupeentry.Table, dedupeentry.Columns, sqlgraph.NewFieldSpec(dedupeentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dedupeentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OriginalMessageID(); ok {
		_spec.SetField(dedupeentry.FieldOriginalMessageID, field.TypeString, value)
	}
	if _u.mutation.OriginalMessageIDCleared() {
		_spec.ClearField(dedupeentry.FieldOriginalMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(dedupeentry.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(dedupeentry.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.TTLExpireAt(); ok {
		_spec.SetField(dedupeentry.FieldTTLExpireAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dedupeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DedupeEntryUpdateOne is the builder for updating a single DedupeEntry entity.
type DedupeEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DedupeEntryMutation
}

// SetStatus sets the "status" field.
func (_u *DedupeEntryUpdateOne) SetStatus(v dedupeentry.Status) *DedupeEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DedupeEntryUpdateOne) SetNillableStatus(v *dedupeentry.Status) *DedupeEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOriginalMessageID sets the "original_message_id" field.
func (_u *DedupeEntryUpdateOne) SetOriginalMessageID(v string) *DedupeEntryUpdateOne {
	_u.mutation.SetOriginalMessageID(v)
	return _u
}

// SetNillableOriginalMessageID sets the "original_message_id" field if the given value is not nil.
func (_u *DedupeEntryUpdateOne) SetNillableOriginalMessageID(v *string) *DedupeEntryUpdateOne {
	if v != nil {
		_u.SetOriginalMessageID(*v)
	}
	return _u
}

// ClearOriginalMessageID clears the value of the "original_message_id" field.
func (_u *DedupeEntryUpdateOne) ClearOriginalMessageID() *DedupeEntryUpdateOne {
	_u.mutation.ClearOriginalMessageID()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DedupeEntryUpdateOne) SetLastError(v string) *DedupeEntryUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DedupeEntryUpdateOne) SetNillableLastError(v *string) *DedupeEntryUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *DedupeEntryUpdateOne) ClearLastError() *DedupeEntryUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetTTLExpireAt sets the "ttl_expire_at" field.
func (_u *DedupeEntryUpdateOne) SetTTLExpireAt(v time.Time) *DedupeEntryUpdateOne {
	_u.mutation.SetTTLExpireAt(v)
	return _u
}

// SetNillableTTLExpireAt sets the "ttl_expire_at" field if the given value is not nil.
func (_u *DedupeEntryUpdateOne) SetNillableTTLExpireAt(v *time.Time) *DedupeEntryUpdateOne {
	if v != nil {
		_u.SetTTLExpireAt(*v)
	}
	return _u
}

// Mutation returns the DedupeEntryMutation object of the builder.
func (_u *DedupeEntryUpdateOne) Mutation() *DedupeEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DedupeEntryUpdate builder.
func (_u *DedupeEntryUpdateOne) Where(ps ...predicate.DedupeEntry) *DedupeEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DedupeEntryUpdateOne) Select(field string, fields ...string) *DedupeEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DedupeEntry entity.
func (_u *DedupeEntryUpdateOne) Save(ctx context.Context) (*DedupeEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DedupeEntryUpdateOne) SaveX(ctx context.Context) *DedupeEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DedupeEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DedupeEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DedupeEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dedupeentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DedupeEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DedupeEntryUpdateOne) sqlSave(ctx context.Context) (_node *DedupeEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dedupeentry.Table, dedupeentry.Columns, sqlgraph.NewFieldSpec(dedupeentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DedupeEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dedupeentry.FieldID)
		for _, f := range fields {
			if !dedupeentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dedupeentry.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dedupeentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OriginalMessageID(); ok {
		_spec.SetField(dedupeentry.FieldOriginalMessageID, field.TypeString, value)
	}
	if _u.mutation.OriginalMessageIDCleared() {
		_spec.ClearField(dedupeentry.FieldOriginalMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(dedupeentry.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(dedupeentry.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.TTLExpireAt(); ok {
		_spec.SetField(dedupeentry.FieldTTLExpireAt, field.TypeTime, value)
	}
	_node = &DedupeEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dedupeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
