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
	"github.com/acampos/giftwise/ent/developmentplan"
	"github.com/acampos/giftwise/ent/predicate"
)

// DevelopmentPlanUpdate is the builder for updating DevelopmentPlan entities.
type DevelopmentPlanUpdate struct {
	config
	hooks    []Hook
	mutation *DevelopmentPlanMutation
}

// Where appends a list predicates to the DevelopmentPlanUpdate builder.
func (_u *DevelopmentPlanUpdate) Where(ps ...predicate.DevelopmentPlan) *DevelopmentPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerName sets the "owner_name" field.
func (_u *DevelopmentPlanUpdate) SetOwnerName(v string) *DevelopmentPlanUpdate {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *DevelopmentPlanUpdate) SetNillableOwnerName(v *string) *DevelopmentPlanUpdate {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// SetOwnerEmail sets the "owner_email" field.
func (_u *DevelopmentPlanUpdate) SetOwnerEmail(v string) *DevelopmentPlanUpdate {
	_u.mutation.SetOwnerEmail(v)
	return _u
}

// SetNillableOwnerEmail sets the "owner_email" field if the given value is not nil.
func (_u *DevelopmentPlanUpdate) SetNillableOwnerEmail(v *string) *DevelopmentPlanUpdate {
	if v != nil {
		_u.SetOwnerEmail(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *DevelopmentPlanUpdate) SetData(v map[string]interface{}) *DevelopmentPlanUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *DevelopmentPlanUpdate) SetLastUpdated(v time.Time) *DevelopmentPlanUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the DevelopmentPlanMutation object of the builder.
func (_u *DevelopmentPlanUpdate) Mutation() *DevelopmentPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DevelopmentPlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DevelopmentPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DevelopmentPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DevelopmentPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DevelopmentPlanUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := developmentplan.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *DevelopmentPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(developmentplan.Table, developmentplan.Columns, sqlgraph.NewFieldSpec(developmentplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerName(); ok {
		_spec.SetField(developmentplan.FieldOwnerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerEmail(); ok {
		_spec.SetField(developmentplan.FieldOwnerEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(developmentplan.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(developmentplan.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{developmentplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DevelopmentPlanUpdateOne is the builder for updating a single DevelopmentPlan entity.
type DevelopmentPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DevelopmentPlanMutation
}

// SetOwnerName sets the "owner_name" field.
func (_u *DevelopmentPlanUpdateOne) SetOwnerName(v string) *DevelopmentPlanUpdateOne {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *DevelopmentPlanUpdateOne) SetNillableOwnerName(v *string) *DevelopmentPlanUpdateOne {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// SetOwnerEmail sets the "owner_email" field.
func (_u *DevelopmentPlanUpdateOne) SetOwnerEmail(v string) *DevelopmentPlanUpdateOne {
	_u.mutation.SetOwnerEmail(v)
	return _u
}

// SetNillableOwnerEmail sets the "owner_email" field if the given value is not nil.
func (_u *DevelopmentPlanUpdateOne) SetNillableOwnerEmail(v *string) *DevelopmentPlanUpdateOne {
	if v != nil {
		_u.SetOwnerEmail(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *DevelopmentPlanUpdateOne) SetData(v map[string]interface{}) *DevelopmentPlanUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *DevelopmentPlanUpdateOne) SetLastUpdated(v time.Time) *DevelopmentPlanUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the DevelopmentPlanMutation object of the builder.
func (_u *DevelopmentPlanUpdateOne) Mutation() *DevelopmentPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the DevelopmentPlanUpdate builder.
func (_u *DevelopmentPlanUpdateOne) Where(ps ...predicate.DevelopmentPlan) *DevelopmentPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DevelopmentPlanUpdateOne) Select(field string, fields ...string) *DevelopmentPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DevelopmentPlan entity.
func (_u *DevelopmentPlanUpdateOne) Save(ctx context.Context) (*DevelopmentPlan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DevelopmentPlanUpdateOne) SaveX(ctx context.Context) *DevelopmentPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DevelopmentPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DevelopmentPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DevelopmentPlanUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := developmentplan.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *DevelopmentPlanUpdateOne) sqlSave(ctx context.Context) (_node *DevelopmentPlan, err error) {
	_spec := sqlgraph.NewUpdateSpec(developmentplan.Table, developmentplan.Columns, sqlgraph.NewFieldSpec(developmentplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DevelopmentPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, developmentplan.FieldID)
		for _, f := range fields {
			if !developmentplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != developmentplan.FieldID {
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
	if value, ok := _u.mutation.OwnerName(); ok {
		_spec.SetField(developmentplan.FieldOwnerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerEmail(); ok {
		_spec.SetField(developmentplan.FieldOwnerEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(developmentplan.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(developmentplan.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &DevelopmentPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{developmentplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
