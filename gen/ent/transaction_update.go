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
	"github.com/subtally/subtally/gen/ent/predicate"
	"github.com/subtally/subtally/gen/ent/transaction"
	"github.com/subtally/subtally/gen/ent/vendor"
)

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TransactionUpdate) SetUserID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableUserID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *TransactionUpdate) SetVendorID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableVendorID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *TransactionUpdate) ClearVendorID() *TransactionUpdate {
	_u.mutation.ClearVendorID()
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *TransactionUpdate) SetUploadID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableUploadID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *TransactionUpdate) SetVendorName(v string) *TransactionUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableVendorName(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetNormalizedVendorName sets the "normalized_vendor_name" field.
func (_u *TransactionUpdate) SetNormalizedVendorName(v string) *TransactionUpdate {
	_u.mutation.SetNormalizedVendorName(v)
	return _u
}

// SetNillableNormalizedVendorName sets the "normalized_vendor_name" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableNormalizedVendorName(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetNormalizedVendorName(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdate) SetAmount(v float64) *TransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAmount(v *float64) *TransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionUpdate) AddAmount(v float64) *TransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetRawDescription sets the "raw_description" field.
func (_u *TransactionUpdate) SetRawDescription(v string) *TransactionUpdate {
	_u.mutation.SetRawDescription(v)
	return _u
}

// SetNillableRawDescription sets the "raw_description" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableRawDescription(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetRawDescription(*v)
	}
	return _u
}

// ClearRawDescription clears the value of the "raw_description" field.
func (_u *TransactionUpdate) ClearRawDescription() *TransactionUpdate {
	_u.mutation.ClearRawDescription()
	return _u
}

// SetIsSaas sets the "is_saas" field.
func (_u *TransactionUpdate) SetIsSaas(v bool) *TransactionUpdate {
	_u.mutation.SetIsSaas(v)
	return _u
}

// SetNillableIsSaas sets the "is_saas" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableIsSaas(v *bool) *TransactionUpdate {
	if v != nil {
		_u.SetIsSaas(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TransactionUpdate) SetCategory(v string) *TransactionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCategory(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TransactionUpdate) ClearCategory() *TransactionUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdate) SetCreatedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCreatedAt(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *TransactionUpdate) SetVendor(v *Vendor) *TransactionUpdate {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdate) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *TransactionUpdate) ClearVendor() *TransactionUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdate) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := transaction.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Transaction.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedVendorName(); ok {
		if err := transaction.NormalizedVendorNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_vendor_name", err: fmt.Errorf(`ent: validator failed for field "Transaction.normalized_vendor_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(transaction.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UploadID(); ok {
		_spec.SetField(transaction.FieldUploadID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(transaction.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedVendorName(); ok {
		_spec.SetField(transaction.FieldNormalizedVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawDescription(); ok {
		_spec.SetField(transaction.FieldRawDescription, field.TypeString, value)
	}
	if _u.mutation.RawDescriptionCleared() {
		_spec.ClearField(transaction.FieldRawDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsSaas(); ok {
		_spec.SetField(transaction.FieldIsSaas, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(transaction.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(transaction.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.VendorTable,
			Columns: []string{transaction.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.VendorTable,
			Columns: []string{transaction.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetUserID sets the "user_id" field.
func (_u *TransactionUpdateOne) SetUserID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableUserID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *TransactionUpdateOne) SetVendorID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableVendorID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *TransactionUpdateOne) ClearVendorID() *TransactionUpdateOne {
	_u.mutation.ClearVendorID()
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *TransactionUpdateOne) SetUploadID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableUploadID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *TransactionUpdateOne) SetVendorName(v string) *TransactionUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableVendorName(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetNormalizedVendorName sets the "normalized_vendor_name" field.
func (_u *TransactionUpdateOne) SetNormalizedVendorName(v string) *TransactionUpdateOne {
	_u.mutation.SetNormalizedVendorName(v)
	return _u
}

// SetNillableNormalizedVendorName sets the "normalized_vendor_name" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableNormalizedVendorName(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetNormalizedVendorName(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdateOne) SetAmount(v float64) *TransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAmount(v *float64) *TransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionUpdateOne) AddAmount(v float64) *TransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetRawDescription sets the "raw_description" field.
func (_u *TransactionUpdateOne) SetRawDescription(v string) *TransactionUpdateOne {
	_u.mutation.SetRawDescription(v)
	return _u
}

// SetNillableRawDescription sets the "raw_description" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableRawDescription(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetRawDescription(*v)
	}
	return _u
}

// ClearRawDescription clears the value of the "raw_description" field.
func (_u *TransactionUpdateOne) ClearRawDescription() *TransactionUpdateOne {
	_u.mutation.ClearRawDescription()
	return _u
}

// SetIsSaas sets the "is_saas" field.
func (_u *TransactionUpdateOne) SetIsSaas(v bool) *TransactionUpdateOne {
	_u.mutation.SetIsSaas(v)
	return _u
}

// SetNillableIsSaas sets the "is_saas" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableIsSaas(v *bool) *TransactionUpdateOne {
	if v != nil {
		_u.SetIsSaas(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TransactionUpdateOne) SetCategory(v string) *TransactionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCategory(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TransactionUpdateOne) ClearCategory() *TransactionUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdateOne) SetCreatedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCreatedAt(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *TransactionUpdateOne) SetVendor(v *Vendor) *TransactionUpdateOne {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdateOne) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *TransactionUpdateOne) ClearVendor() *TransactionUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transaction entity.
func (_u *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdateOne) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := transaction.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Transaction.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedVendorName(); ok {
		if err := transaction.NormalizedVendorNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_vendor_name", err: fmt.Errorf(`ent: validator failed for field "Transaction.normalized_vendor_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
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
		_spec.SetField(transaction.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UploadID(); ok {
		_spec.SetField(transaction.FieldUploadID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(transaction.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedVendorName(); ok {
		_spec.SetField(transaction.FieldNormalizedVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawDescription(); ok {
		_spec.SetField(transaction.FieldRawDescription, field.TypeString, value)
	}
	if _u.mutation.RawDescriptionCleared() {
		_spec.ClearField(transaction.FieldRawDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsSaas(); ok {
		_spec.SetField(transaction.FieldIsSaas, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(transaction.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(transaction.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.VendorTable,
			Columns: []string{transaction.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.VendorTable,
			Columns: []string{transaction.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
