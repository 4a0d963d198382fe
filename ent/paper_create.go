// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vi3318/Research-AI-sub000/ent/paper"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// PaperCreate is the builder for creating a Paper entity.
type PaperCreate struct {
	config
	mutation *PaperMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *PaperCreate) SetRunID(v string) *PaperCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PaperCreate) SetTitle(v string) *PaperCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAbstract sets the "abstract" field.
func (_c *PaperCreate) SetAbstract(v string) *PaperCreate {
	_c.mutation.SetAbstract(v)
	return _c
}

// SetNillableAbstract sets the "abstract" field if the given value is not nil.
func (_c *PaperCreate) SetNillableAbstract(v *string) *PaperCreate {
	if v != nil {
		_c.SetAbstract(*v)
	}
	return _c
}

// SetFullText sets the "full_text" field.
func (_c *PaperCreate) SetFullText(v string) *PaperCreate {
	_c.mutation.SetFullText(v)
	return _c
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_c *PaperCreate) SetNillableFullText(v *string) *PaperCreate {
	if v != nil {
		_c.SetFullText(*v)
	}
	return _c
}

// SetIngestionOrder sets the "ingestion_order" field.
func (_c *PaperCreate) SetIngestionOrder(v int) *PaperCreate {
	_c.mutation.SetIngestionOrder(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PaperCreate) SetID(v string) *PaperCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *PaperCreate) SetRun(v *Run) *PaperCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the PaperMutation object of the builder.
func (_c *PaperCreate) Mutation() *PaperMutation {
	return _c.mutation
}

// Save creates the Paper in the database.
func (_c *PaperCreate) Save(ctx context.Context) (*Paper, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaperCreate) SaveX(ctx context.Context) *Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaperCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Paper.run_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Paper.title"`)}
	}
	if _, ok := _c.mutation.IngestionOrder(); !ok {
		return &ValidationError{Name: "ingestion_order", err: errors.New(`ent: missing required field "Paper.ingestion_order"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Paper.run"`)}
	}
	return nil
}

func (_c *PaperCreate) sqlSave(ctx context.Context) (*Paper, error) {
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
			return nil, fmt.Errorf("unexpected Paper.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaperCreate) createSpec() (*Paper, *sqlgraph.CreateSpec) {
	var (
		_node = &Paper{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paper.Table, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Abstract(); ok {
		_spec.SetField(paper.FieldAbstract, field.TypeString, value)
		_node.Abstract = &value
	}
	if value, ok := _c.mutation.FullText(); ok {
		_spec.SetField(paper.FieldFullText, field.TypeString, value)
		_node.FullText = &value
	}
	if value, ok := _c.mutation.IngestionOrder(); ok {
		_spec.SetField(paper.FieldIngestionOrder, field.TypeInt, value)
		_node.IngestionOrder = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paper.RunTable,
			Columns: []string{paper.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PaperCreateBulk is the builder for creating many Paper entities in bulk.
type PaperCreateBulk struct {
	config
	err      error
	builders []*PaperCreate
}

// Save creates the Paper entities in the database.
func (_c *PaperCreateBulk) Save(ctx context.Context) ([]*Paper, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Paper, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaperMutation)
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
func (_c *PaperCreateBulk) SaveX(ctx context.Context) []*Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
