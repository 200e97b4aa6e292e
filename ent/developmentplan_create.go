// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acampos/giftwise/ent/developmentplan"
)

// DevelopmentPlanCreate is the builder for creating a DevelopmentPlan entity.
type DevelopmentPlanCreate struct {
	config
	mutation *DevelopmentPlanMutation
	hooks    []Hook
}

// SetDocKey sets the "doc_key" field.
func (_c *DevelopmentPlanCreate) SetDocKey(v string) *DevelopmentPlanCreate {
	_c.mutation.SetDocKey(v)
	return _c
}

// SetOwnerName sets the "owner_name" field.
func (_c *DevelopmentPlanCreate) SetOwnerName(v string) *DevelopmentPlanCreate {
	_c.mutation.SetOwnerName(v)
	return _c
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_c *DevelopmentPlanCreate) SetNillableOwnerName(v *string) *DevelopmentPlanCreate {
	if v != nil {
		_c.SetOwnerName(*v)
	}
	return _c
}

// SetOwnerEmail sets the "owner_email" field.
func (_c *DevelopmentPlanCreate) SetOwnerEmail(v string) *DevelopmentPlanCreate {
	_c.mutation.SetOwnerEmail(v)
	return _c
}

// SetNillableOwnerEmail sets the "owner_email" field if the given value is not nil.
func (_c *DevelopmentPlanCreate) SetNillableOwnerEmail(v *string) *DevelopmentPlanCreate {
	if v != nil {
		_c.SetOwnerEmail(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *DevelopmentPlanCreate) SetData(v map[string]interface{}) *DevelopmentPlanCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *DevelopmentPlanCreate) SetLastUpdated(v time.Time) *DevelopmentPlanCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *DevelopmentPlanCreate) SetNillableLastUpdated(v *time.Time) *DevelopmentPlanCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the DevelopmentPlanMutation object of the builder.
func (_c *DevelopmentPlanCreate) Mutation() *DevelopmentPlanMutation {
	return _c.mutation
}

// Save creates the DevelopmentPlan in the database.
func (_c *DevelopmentPlanCreate) Save(ctx context.Context) (*DevelopmentPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DevelopmentPlanCreate) SaveX(ctx context.Context) *DevelopmentPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DevelopmentPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DevelopmentPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DevelopmentPlanCreate) defaults() {
	if _, ok := _c.mutation.OwnerName(); !ok {
		v := developmentplan.DefaultOwnerName
		_c.mutation.SetOwnerName(v)
	}
	if _, ok := _c.mutation.OwnerEmail(); !ok {
		v := developmentplan.DefaultOwnerEmail
		_c.mutation.SetOwnerEmail(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := developmentplan.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DevelopmentPlanCreate) check() error {
	if _, ok := _c.mutation.DocKey(); !ok {
		return &ValidationError{Name: "doc_key", err: errors.New(`ent: missing required field "DevelopmentPlan.doc_key"`)}
	}
	if v, ok := _c.mutation.DocKey(); ok {
		if err := developmentplan.DocKeyValidator(v); err != nil {
			return &ValidationError{Name: "doc_key", err: fmt.Errorf(`ent: validator failed for field "DevelopmentPlan.doc_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerName(); !ok {
		return &ValidationError{Name: "owner_name", err: errors.New(`ent: missing required field "DevelopmentPlan.owner_name"`)}
	}
	if _, ok := _c.mutation.OwnerEmail(); !ok {
		return &ValidationError{Name: "owner_email", err: errors.New(`ent: missing required field "DevelopmentPlan.owner_email"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "DevelopmentPlan.data"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "DevelopmentPlan.last_updated"`)}
	}
	return nil
}

func (_c *DevelopmentPlanCreate) sqlSave(ctx context.Context) (*DevelopmentPlan, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DevelopmentPlanCreate) createSpec() (*DevelopmentPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &DevelopmentPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(developmentplan.Table, sqlgraph.NewFieldSpec(developmentplan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocKey(); ok {
		_spec.SetField(developmentplan.FieldDocKey, field.TypeString, value)
		_node.DocKey = value
	}
	if value, ok := _c.mutation.OwnerName(); ok {
		_spec.SetField(developmentplan.FieldOwnerName, field.TypeString, value)
		_node.OwnerName = value
	}
	if value, ok := _c.mutation.OwnerEmail(); ok {
		_spec.SetField(developmentplan.FieldOwnerEmail, field.TypeString, value)
		_node.OwnerEmail = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(developmentplan.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(developmentplan.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// DevelopmentPlanCreateBulk is the builder for creating many DevelopmentPlan entities in bulk.
type DevelopmentPlanCreateBulk struct {
	config
	err      error
	builders []*DevelopmentPlanCreate
}

// Save creates the DevelopmentPlan entities in the database.
func (_c *DevelopmentPlanCreateBulk) Save(ctx context.Context) ([]*DevelopmentPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DevelopmentPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DevelopmentPlanMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *DevelopmentPlanCreateBulk) SaveX(ctx context.Context) []*DevelopmentPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DevelopmentPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DevelopmentPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
