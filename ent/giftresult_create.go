// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/acampos/giftwise/ent/giftresult"
	"github.com/acampos/giftwise/ent/schema"
)

// GiftResultCreate is the builder for creating a GiftResult entity.
type GiftResultCreate struct {
	config
	mutation *GiftResultMutation
	hooks    []Hook
}

// SetSubmissionID sets the "submission_id" field.
func (_c *GiftResultCreate) SetSubmissionID(v string) *GiftResultCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *GiftResultCreate) SetName(v string) *GiftResultCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetUserEmail sets the "user_email" field.
func (_c *GiftResultCreate) SetUserEmail(v string) *GiftResultCreate {
	_c.mutation.SetUserEmail(v)
	return _c
}

// SetTopGifts sets the "top_gifts" field.
func (_c *GiftResultCreate) SetTopGifts(v []schema.GiftScoreDoc) *GiftResultCreate {
	_c.mutation.SetTopGifts(v)
	return _c
}

// SetAllScores sets the "all_scores" field.
func (_c *GiftResultCreate) SetAllScores(v []schema.GiftScoreDoc) *GiftResultCreate {
	_c.mutation.SetAllScores(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GiftResultCreate) SetCreatedAt(v time.Time) *GiftResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GiftResultCreate) SetNillableCreatedAt(v *time.Time) *GiftResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the GiftResultMutation object of the builder.
func (_c *GiftResultCreate) Mutation() *GiftResultMutation {
	return _c.mutation
}

// Save creates the GiftResult in the database.
func (_c *GiftResultCreate) Save(ctx context.Context) (*GiftResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GiftResultCreate) SaveX(ctx context.Context) *GiftResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GiftResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GiftResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GiftResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := giftresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GiftResultCreate) check() error {
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "GiftResult.submission_id"`)}
	}
	if v, ok := _c.mutation.SubmissionID(); ok {
		if err := giftresult.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "GiftResult.submission_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "GiftResult.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := giftresult.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "GiftResult.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserEmail(); !ok {
		return &ValidationError{Name: "user_email", err: errors.New(`ent: missing required field "GiftResult.user_email"`)}
	}
	if v, ok := _c.mutation.UserEmail(); ok {
		if err := giftresult.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "GiftResult.user_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopGifts(); !ok {
		return &ValidationError{Name: "top_gifts", err: errors.New(`ent: missing required field "GiftResult.top_gifts"`)}
	}
	if _, ok := _c.mutation.AllScores(); !ok {
		return &ValidationError{Name: "all_scores", err: errors.New(`ent: missing required field "GiftResult.all_scores"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GiftResult.created_at"`)}
	}
	return nil
}

func (_c *GiftResultCreate) sqlSave(ctx context.Context) (*GiftResult, error) {
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

func (_c *GiftResultCreate) createSpec() (*GiftResult, *sqlgraph.CreateSpec) {
	var (
		_node = &GiftResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(giftresult.Table, sqlgraph.NewFieldSpec(giftresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SubmissionID(); ok {
		_spec.SetField(giftresult.FieldSubmissionID, field.TypeString, value)
		_node.SubmissionID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(giftresult.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.UserEmail(); ok {
		_spec.SetField(giftresult.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = value
	}
	if value, ok := _c.mutation.TopGifts(); ok {
		_spec.SetField(giftresult.FieldTopGifts, field.TypeJSON, value)
		_node.TopGifts = value
	}
	if value, ok := _c.mutation.AllScores(); ok {
		_spec.SetField(giftresult.FieldAllScores, field.TypeJSON, value)
		_node.AllScores = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(giftresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// GiftResultCreateBulk is the builder for creating many GiftResult entities in bulk.
type GiftResultCreateBulk struct {
	config
	err      error
	builders []*GiftResultCreate
}

// Save creates the GiftResult entities in the database.
func (_c *GiftResultCreateBulk) Save(ctx context.Context) ([]*GiftResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GiftResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GiftResultMutation)
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
func (_c *GiftResultCreateBulk) SaveX(ctx context.Context) []*GiftResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GiftResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GiftResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
