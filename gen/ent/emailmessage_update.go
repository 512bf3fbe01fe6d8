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
	"github.com/google/uuid"
	"github.com/subtally/subtally/gen/ent/emailmessage"
	"github.com/subtally/subtally/gen/ent/predicate"
)

// EmailMessageUpdate is the builder for updating EmailMessage entities.
type EmailMessageUpdate struct {
	config
	hooks    []Hook
	mutation *EmailMessageMutation
}

// Where appends a list predicates to the EmailMessageUpdate builder.
func (_u *EmailMessageUpdate) Where(ps ...predicate.EmailMessage) *EmailMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EmailMessageUpdate) SetUserID(v uuid.UUID) *EmailMessageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableUserID(v *uuid.UUID) *EmailMessageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailMessageUpdate) SetSubject(v string) *EmailMessageUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableSubject(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *EmailMessageUpdate) ClearSubject() *EmailMessageUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetSender sets the "sender" field.
func (_u *EmailMessageUpdate) SetSender(v string) *EmailMessageUpdate {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableSender(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// ClearSender clears the value of the "sender" field.
func (_u *EmailMessageUpdate) ClearSender() *EmailMessageUpdate {
	_u.mutation.ClearSender()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *EmailMessageUpdate) SetReceivedAt(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableReceivedAt(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// ClearReceivedAt clears the value of the "received_at" field.
func (_u *EmailMessageUpdate) ClearReceivedAt() *EmailMessageUpdate {
	_u.mutation.ClearReceivedAt()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *EmailMessageUpdate) SetOutcome(v string) *EmailMessageUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableOutcome(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *EmailMessageUpdate) ClearOutcome() *EmailMessageUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *EmailMessageUpdate) SetProcessedAt(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableProcessedAt(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *EmailMessageUpdate) ClearProcessedAt() *EmailMessageUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EmailMessageUpdate) SetCreatedAt(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableCreatedAt(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the EmailMessageMutation object of the builder.
func (_u *EmailMessageUpdate) Mutation() *EmailMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmailMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(emailmessage.Table, emailmessage.Columns, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emailmessage.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(emailmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(emailmessage.FieldSender, field.TypeString, value)
	}
	if _u.mutation.SenderCleared() {
		_spec.ClearField(emailmessage.FieldSender, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(emailmessage.FieldReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceivedAtCleared() {
		_spec.ClearField(emailmessage.FieldReceivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(emailmessage.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(emailmessage.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(emailmessage.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(emailmessage.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(emailmessage.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailMessageUpdateOne is the builder for updating a single EmailMessage entity.
type EmailMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailMessageMutation
}

// SetUserID sets the "user_id" field.
func (_u *EmailMessageUpdateOne) SetUserID(v uuid.UUID) *EmailMessageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableUserID(v *uuid.UUID) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailMessageUpdateOne) SetSubject(v string) *EmailMessageUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableSubject(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *EmailMessageUpdateOne) ClearSubject() *EmailMessageUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetSender sets the "sender" field.
func (_u *EmailMessageUpdateOne) SetSender(v string) *EmailMessageUpdateOne {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableSender(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// ClearSender clears the value of the "sender" field.
func (_u *EmailMessageUpdateOne) ClearSender() *EmailMessageUpdateOne {
	_u.mutation.ClearSender()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *EmailMessageUpdateOne) SetReceivedAt(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableReceivedAt(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// ClearReceivedAt clears the value of the "received_at" field.
func (_u *EmailMessageUpdateOne) ClearReceivedAt() *EmailMessageUpdateOne {
	_u.mutation.ClearReceivedAt()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *EmailMessageUpdateOne) SetOutcome(v string) *EmailMessageUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableOutcome(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *EmailMessageUpdateOne) ClearOutcome() *EmailMessageUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *EmailMessageUpdateOne) SetProcessedAt(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableProcessedAt(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *EmailMessageUpdateOne) ClearProcessedAt() *EmailMessageUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EmailMessageUpdateOne) SetCreatedAt(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableCreatedAt(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the EmailMessageMutation object of the builder.
func (_u *EmailMessageUpdateOne) Mutation() *EmailMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmailMessageUpdate builder.
func (_u *EmailMessageUpdateOne) Where(ps ...predicate.EmailMessage) *EmailMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailMessageUpdateOne) Select(field string, fields ...string) *EmailMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailMessage entity.
func (_u *EmailMessageUpdateOne) Save(ctx context.Context) (*EmailMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailMessageUpdateOne) SaveX(ctx context.Context) *EmailMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmailMessageUpdateOne) sqlSave(ctx context.Context) (_node *EmailMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(emailmessage.Table, emailmessage.Columns, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailmessage.FieldID)
		for _, f := range fields {
			if !emailmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailmessage.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emailmessage.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(emailmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(emailmessage.FieldSender, field.TypeString, value)
	}
	if _u.mutation.SenderCleared() {
		_spec.ClearField(emailmessage.FieldSender, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(emailmessage.FieldReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceivedAtCleared() {
		_spec.ClearField(emailmessage.FieldReceivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(emailmessage.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(emailmessage.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(emailmessage.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(emailmessage.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(emailmessage.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &EmailMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
