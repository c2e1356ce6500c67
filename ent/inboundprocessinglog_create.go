// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zapgate/zapgate/ent/inboundprocessinglog"
)

// InboundProcessingLogCreate is the builder for creating a InboundProcessingLog entity.
type InboundProcessingLogCreate struct {
	config
	mutation *InboundProcessingLogMutation
	hooks    []Hook
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *InboundProcessingLogCreate) SetCorrelationID(v string) *InboundProcessingLogCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *InboundProcessingLogCreate) SetNillableCorrelationID(v *string) *InboundProcessingLogCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InboundProcessingLogCreate) SetSessionID(v string) *InboundProcessingLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *InboundProcessingLogCreate) SetNillableSessionID(v *string) *InboundProcessingLogCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InboundProcessingLogCreate) SetStatus(v string) *InboundProcessingLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *InboundProcessingLogCreate) SetOutcome(v string) *InboundProcessingLogCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *InboundProcessingLogCreate) SetNillableOutcome(v *string) *InboundProcessingLogCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetSignatureSkipped sets the "signature_skipped" field.
func (_c *InboundProcessingLogCreate) SetSignatureSkipped(v bool) *InboundProcessingLogCreate {
	_c.mutation.SetSignatureSkipped(v)
	return _c
}

// SetNillableSignatureSkipped sets the "signature_skipped" field if the given value is not nil.
func (_c *InboundProcessingLogCreate) SetNillableSignatureSkipped(v *bool) *InboundProcessingLogCreate {
	if v != nil {
		_c.SetSignatureSkipped(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *InboundProcessingLogCreate) SetErrorMessage(v string) *InboundProcessingLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *InboundProcessingLogCreate) SetNillableErrorMessage(v *string) *InboundProcessingLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetOutboundTasks sets the "outbound_tasks" field.
func (_c *InboundProcessingLogCreate) SetOutboundTasks(v []string) *InboundProcessingLogCreate {
	_c.mutation.SetOutboundTasks(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InboundProcessingLogCreate) SetCreatedAt(v time.Time) *InboundProcessingLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InboundProcessingLogCreate) SetNillableCreatedAt(v *time.Time) *InboundProcessingLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTTLExpireAt sets the "ttl_expire_at" field.
func (_c *InboundProcessingLogCreate) SetTTLExpireAt(v time.Time) *InboundProcessingLogCreate {
	_c.mutation.SetTTLExpireAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InboundProcessingLogCreate) SetID(v string) *InboundProcessingLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InboundProcessingLogMutation object of the builder.
func (_c *InboundProcessingLogCreate) Mutation() *InboundProcessingLogMutation {
	return _c.mutation
}

// Save creates the InboundProcessingLog in the database.
func (_c *InboundProcessingLogCreate) Save(ctx context.Context) (*InboundProcessingLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InboundProcessingLogCreate) SaveX(ctx context.Context) *InboundProcessingLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboundProcessingLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboundProcessingLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InboundProcessingLogCreate) defaults() {
	if _, ok := _c.mutation.SignatureSkipped(); !ok {
		v := inboundprocessinglog.DefaultSignatureSkipped
		_c.mutation.SetSignatureSkipped(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inboundprocessinglog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InboundProcessingLogCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InboundProcessingLog.status"`)}
	}
	if _, ok := _c.mutation.SignatureSkipped(); !ok {
		return &ValidationError{Name: "signature_skipped", err: errors.New(`ent: missing required field "InboundProcessingLog.signature_skipped"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InboundProcessingLog.created_at"`)}
	}
	if _, ok := _c.mutation.TTLExpireAt(); !ok {
		return &ValidationError{Name: "ttl_expire_at", err: errors.New(`ent: missing required field "InboundProcessingLog.ttl_expire_at"`)}
	}
	return nil
}

func (_c *InboundProcessingLogCreate) sqlSave(ctx context.Context) (*InboundProcessingLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected InboundProcessingLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InboundProcessingLogCreate) createSpec() (*InboundProcessingLog, *sqlgraph.CreateSpec) {
	var (
		_node = &InboundProcessingLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inboundprocessinglog.Table, sqlgraph.NewFieldSpec(inboundprocessinglog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(inboundprocessinglog.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(inboundprocessinglog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(inboundprocessinglog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(inboundprocessinglog.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.SignatureSkipped(); ok {
		_spec.SetField(inboundprocessinglog.FieldSignatureSkipped, field.TypeBool, value)
		_node.SignatureSkipped = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(inboundprocessinglog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.OutboundTasks(); ok {
		_spec.SetField(inboundprocessinglog.FieldOutboundTasks, field.TypeJSON, value)
		_node.OutboundTasks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inboundprocessinglog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TTLExpireAt(); ok {
		_spec.SetField(inboundprocessinglog.FieldTTLExpireAt, field.TypeTime, value)
		_node.TTLExpireAt = value
	}
	return _node, _spec
}

// InboundProcessingLogCreateBulk is the builder for creating many InboundProcessingLog entities in bulk.
type InboundProcessingLogCreateBulk struct {
	config
	err      error
	builders []*InboundProcessingLogCreate
}

// Save creates the InboundProcessingLog entities in the database.
func (_c *InboundProcessingLogCreateBulk) Save(ctx context.Context) ([]*InboundProcessingLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InboundProcessingLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InboundProcessingLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InboundProcessingLogCreateBulk) SaveX(ctx context.Context) []*InboundProcessingLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboundProcessingLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboundProcessingLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
