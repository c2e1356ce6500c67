// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zapgate/zapgate/ent/chatsession"
	"github.com/zapgate/zapgate/pkg/models"
)

// ChatSessionCreate is the builder for creating a ChatSession entity.
type ChatSessionCreate struct {
	config
	mutation *ChatSessionMutation
	hooks    []Hook
}

// SetChatID sets the "chat_id" field.
func (_c *ChatSessionCreate) SetChatID(v string) *ChatSessionCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetCurrentState sets the "current_state" field.
func (_c *ChatSessionCreate) SetCurrentState(v string) *ChatSessionCreate {
	_c.mutation.SetCurrentState(v)
	return _c
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableCurrentState(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetCurrentState(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ChatSessionCreate) SetOutcome(v string) *ChatSessionCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableOutcome(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetIntentQueue sets the "intent_queue" field.
func (_c *ChatSessionCreate) SetIntentQueue(v []models.IntentEntry) *ChatSessionCreate {
	_c.mutation.SetIntentQueue(v)
	return _c
}

// SetMessageHistory sets the "message_history" field.
func (_c *ChatSessionCreate) SetMessageHistory(v []models.HistoryEntry) *ChatSessionCreate {
	_c.mutation.SetMessageHistory(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ChatSessionCreate) SetVersion(v int) *ChatSessionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableVersion(v *int) *ChatSessionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatSessionCreate) SetCreatedAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableCreatedAt(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatSessionCreate) SetUpdatedAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableUpdatedAt(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ChatSessionCreate) SetExpiresAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ChatSessionCreate) SetID(v string) *ChatSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_c *ChatSessionCreate) Mutation() *ChatSessionMutation {
	return _c.mutation
}

// Save creates the ChatSession in the database.
func (_c *ChatSessionCreate) Save(ctx context.Context) (*ChatSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatSessionCreate) SaveX(ctx context.Context) *ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatSessionCreate) defaults() {
	if _, ok := _c.mutation.CurrentState(); !ok {
		v := chatsession.DefaultCurrentState
		_c.mutation.SetCurrentState(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := chatsession.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatSessionCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "ChatSession.chat_id"`)}
	}
	if _, ok := _c.mutation.CurrentState(); !ok {
		return &ValidationError{Name: "current_state", err: errors.New(`ent: missing required field "ChatSession.current_state"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ChatSession.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatSession.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ChatSession.expires_at"`)}
	}
	return nil
}

func (_c *ChatSessionCreate) sqlSave(ctx context.Context) (*ChatSession, error) {
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
			return nil, fmt.Errorf("unexpected ChatSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatSessionCreate) createSpec() (*ChatSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatsession.Table, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(chatsession.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.CurrentState(); ok {
		_spec.SetField(chatsession.FieldCurrentState, field.TypeString, value)
		_node.CurrentState = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(chatsession.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.IntentQueue(); ok {
		_spec.SetField(chatsession.FieldIntentQueue, field.TypeJSON, value)
		_node.IntentQueue = value
	}
	if value, ok := _c.mutation.MessageHistory(); ok {
		_spec.SetField(chatsession.FieldMessageHistory, field.TypeJSON, value)
		_node.MessageHistory = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(chatsession.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(chatsession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// ChatSessionCreateBulk is the builder for creating many ChatSession entities in bulk.
type ChatSessionCreateBulk struct {
	config
	err      error
	builders []*ChatSessionCreate
}

// Save creates the ChatSession entities in the database.
func (_c *ChatSessionCreateBulk) Save(ctx context.Context) ([]*ChatSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatSessionMutation)
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
func (_c *ChatSessionCreateBulk) SaveX(ctx context.Context) []*ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
