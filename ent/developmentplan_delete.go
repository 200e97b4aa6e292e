// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acampos/giftwise/ent/developmentplan"
	"github.com/acampos/giftwise/ent/predicate"
)

// DevelopmentPlanDelete is the builder for deleting a DevelopmentPlan entity.
type DevelopmentPlanDelete struct {
	config
	hooks    []Hook
	mutation *DevelopmentPlanMutation
}

// Where appends a list predicates to the DevelopmentPlanDelete builder.
func (_d *DevelopmentPlanDelete) Where(ps ...predicate.DevelopmentPlan) *DevelopmentPlanDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DevelopmentPlanDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DevelopmentPlanDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DevelopmentPlanDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(developmentplan.Table, sqlgraph.NewFieldSpec(developmentplan.FieldID, field.TypeInt))
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

// DevelopmentPlanDeleteOne is the builder for deleting a single DevelopmentPlan entity.
type DevelopmentPlanDeleteOne struct {
	_d *DevelopmentPlanDelete
}

// Where appends a list predicates to the DevelopmentPlanDelete builder.
func (_d *DevelopmentPlanDeleteOne) Where(ps ...predicate.DevelopmentPlan) *DevelopmentPlanDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DevelopmentPlanDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{developmentplan.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DevelopmentPlanDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
