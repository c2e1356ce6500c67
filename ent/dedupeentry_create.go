// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zapgate/zapgate/ent/dedupeentry"
)

// DedupeEntryCreate is the builder for creating a DedupeEntry entity.
type DedupeEntryCreate struct {
	config
	mutation *DedupeEntryMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *DedupeEntryCreate) SetStatus(v dedupeentry.Status) *DedupeEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DedupeEntryCreate) SetNillableStatus(v *dedupeentry.Status) *DedupeEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOriginalMessageID sets the "original_message_id" field.
func (_c *DedupeEntryCreate) SetOriginalMessageID(v string) *DedupeEntryCreate {
	_c.mutation.SetOriginalMessageID(v)
	return _c
}

// SetNillableOriginalMessageID sets the "original_message_id" field if the given value is not nil.
func (_c *DedupeEntryCreate) SetNillableOriginalMessageID(v *string) *DedupeEntryCreate {
	if v != nil {
		_c.SetOriginalMessageID(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *DedupeEntryCreate) SetLastError(v string) *DedupeEntryCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *DedupeEntryCreate) SetNillableLastError(v *string) *DedupeEntryCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DedupeEntryCreate) SetCreatedAt(v time.Time) *DedupeEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DedupeEntryCreate) SetNillableCreatedAt(v *time.Time) *DedupeEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTTLExpireAt sets the "ttl_expire_at" field.
func (_c *DedupeEntryCreate) SetTTLExpireAt(v time.Time) *DedupeEntryCreate {
	_c.mutation.SetTTLExpireAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DedupeEntryCreate) SetID(v string) *DedupeEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DedupeEntryMutation object of the builder.
func (_c *DedupeEntryCreate) Mutation() *DedupeEntryMutation {
	return _c.mutation
}

// Save creates the DedupeEntry in the database.
func (_c *DedupeEntryCreate) Save(ctx context.Context) (*DedupeEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DedupeEntryCreate) SaveX(ctx context.Context) *DedupeEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DedupeEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DedupeEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DedupeEntryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := dedupeentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dedupeentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DedupeEntryCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DedupeEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := dedupeentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DedupeEntry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DedupeEntry.created_at"`)}
	}
	if _, ok := _c.mutation.TTLExpireAt(); !ok {
		return &ValidationError{Name: "ttl_expire_at", err: errors.New(`ent: missing required field "DedupeEntry.ttl_expire_at"`)}
	}
	return nil
}

func (_c *DedupeEntryCreate) sqlSave(ctx context.Context) (*DedupeEntry, error) {
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
			return nil, fmt.Errorf("unexpected DedupeEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DedupeEntryCreate) createSpec() (*DedupeEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &DedupeEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dedupeentry.Table, sqlgraph.NewFieldSpec(dedupeentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dedupeentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OriginalMessageID(); ok {
		_spec.SetField(dedupeentry.FieldOriginalMessageID, field.TypeString, value)
		_node.OriginalMessageID = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(dedupeentry.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dedupeentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TTLExpireAt(); ok {
		_spec.SetField(dedupeentry.FieldTTLExpireAt, field.TypeTime, value)
		_node.TTLExpireAt = value
	}
	return _node, _spec
}

// DedupeEntryCreateBulk is the builder for creating many DedupeEntry entities in bulk.
type DedupeEntryCreateBulk struct {
	config
	err      error
	builders []*DedupeEntryCreate
}

// Save creates the DedupeEntry entities in the database.
func (_c *DedupeEntryCreateBulk) Save(ctx context.Context) ([]*DedupeEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DedupeEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DedupeEntryMutation)
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
func (_c *DedupeEntryCreateBulk) SaveX(ctx context.Context) []*DedupeEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DedupeEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DedupeEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
