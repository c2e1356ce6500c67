// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/zapgate/zapgate/ent/dedupeentry"
	"github.com/zapgate/zapgate/ent/predicate"
)

// DedupeEntryDelete is the builder for deleting a DedupeEntry entity.
type DedupeEntryDelete struct {
	config
	hooks    []Hook
	mutation *DedupeEntryMutation
}

// Where appends a list predicates to the DedupeEntryDelete builder.
func (_d *DedupeEntryDelete) Where(ps ...predicate.DedupeEntry) *DedupeEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DedupeEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DedupeEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DedupeEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dedupeentry.Table, sqlgraph.NewFieldSpec(dedupeentry.FieldID, field.TypeString))
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

// DedupeEntryDeleteOne is the builder for deleting a single DedupeEntry entity.
type DedupeEntryDeleteOne struct {
	_d *DedupeEntryDelete
}

// Where appends a list predicates to the DedupeEntryDelete builder.
func (_d *DedupeEntryDeleteOne) Where(ps ...predicate.DedupeEntry) *DedupeEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DedupeEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dedupeentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DedupeEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
