// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zapgate/zapgate/ent/inboundprocessinglog"
	"github.com/zapgate/zapgate/ent/predicate"
)

// InboundProcessingLogDelete is the builder for deleting a InboundProcessingLog entity.
type InboundProcessingLogDelete struct {
	config
	hooks    []Hook
	mutation *InboundProcessingLogMutation
}

// Where appends a list predicates to the InboundProcessingLogDelete builder.
func (_d *InboundProcessingLogDelete) Where(ps ...predicate.InboundProcessingLog) *InboundProcessingLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InboundProcessingLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InboundProcessingLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InboundProcessingLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(inboundprocessinglog.Table, sqlgraph.NewFieldSpec(inboundprocessinglog.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InboundProcessingLogDeleteOne is the builder for deleting a single InboundProcessingLog entity.
type InboundProcessingLogDeleteOne struct {
	_d *InboundProcessingLogDelete
}

// Where appends a list predicates to the InboundProcessingLogDelete builder.
func (_d *InboundProcessingLogDeleteOne) Where(ps ...predicate.InboundProcessingLog) *InboundProcessingLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InboundProcessingLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{inboundprocessinglog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InboundProcessingLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
