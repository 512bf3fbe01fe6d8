// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/subtally/subtally/gen/ent/emailmessage"
)

// EmailMessageCreate is the builder for creating a EmailMessage entity.
type EmailMessageCreate struct {
	config
	mutation *EmailMessageMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *EmailMessageCreate) SetUserID(v uuid.UUID) *EmailMessageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *EmailMessageCreate) SetMessageID(v string) *EmailMessageCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *EmailMessageCreate) SetSubject(v string) *EmailMessageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableSubject(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetSender sets the "sender" field.
func (_c *EmailMessageCreate) SetSender(v string) *EmailMessageCreate {
	_c.mutation.SetSender(v)
	return _c
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableSender(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetSender(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *EmailMessageCreate) SetReceivedAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableReceivedAt(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *EmailMessageCreate) SetOutcome(v string) *EmailMessageCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableOutcome(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *EmailMessageCreate) SetProcessedAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableProcessedAt(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailMessageCreate) SetCreatedAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableCreatedAt(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailMessageCreate) SetID(v uuid.UUID) *EmailMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableID(v *uuid.UUID) *EmailMessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EmailMessageMutation object of the builder.
func (_c *EmailMessageCreate) Mutation() *EmailMessageMutation {
	return _c.mutation
}

// Save creates the EmailMessage in the database.
func (_c *EmailMessageCreate) Save(ctx context.Context) (*EmailMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailMessageCreate) SaveX(ctx context.Context) *EmailMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emailmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := emailmessage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailMessageCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "EmailMessage.user_id"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "EmailMessage.message_id"`)}
	}
	if v, ok := _c.mutation.MessageID(); ok {
		if err := emailmessage.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.message_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmailMessage.created_at"`)}
	}
	return nil
}

func (_c *EmailMessageCreate) sqlSave(ctx context.Context) (*EmailMessage, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmailMessageCreate) createSpec() (*EmailMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailmessage.Table, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(emailmessage.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(emailmessage.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(emailmessage.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Sender(); ok {
		_spec.SetField(emailmessage.FieldSender, field.TypeString, value)
		_node.Sender = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(emailmessage.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = &value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(emailmessage.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(emailmessage.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emailmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EmailMessageCreateBulk is the builder for creating many EmailMessage entities in bulk.
type EmailMessageCreateBulk struct {
	config
	err      error
	builders []*EmailMessageCreate
}

// Save creates the EmailMessage entities in the database.
func (_c *EmailMessageCreateBulk) Save(ctx context.Context) ([]*EmailMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailMessageMutation)
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
func (_c *EmailMessageCreateBulk) SaveX(ctx context.Context) []*EmailMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
