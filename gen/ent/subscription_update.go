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
	"github.com/subtally/subtally/gen/ent/subscription"
	"github.com/subtally/subtally/gen/ent/vendor"
)

// SubscriptionUpdate is the builder for updating Subscription entities.
type SubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *SubscriptionMutation
}

// Where appends a list predicates to the SubscriptionUpdate builder.
func (_u *SubscriptionUpdate) Where(ps ...predicate.Subscription) *SubscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubscriptionUpdate) SetUserID(v uuid.UUID) *SubscriptionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableUserID(v *uuid.UUID) *SubscriptionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *SubscriptionUpdate) SetVendorID(v uuid.UUID) *SubscriptionUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableVendorID(v *uuid.UUID) *SubscriptionUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SubscriptionUpdate) SetSource(v subscription.Source) *SubscriptionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableSource(v *subscription.Source) *SubscriptionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *SubscriptionUpdate) SetPlan(v string) *SubscriptionUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillablePlan(v *string) *SubscriptionUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *SubscriptionUpdate) ClearPlan() *SubscriptionUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetSeats sets the "seats" field.
func (_u *SubscriptionUpdate) SetSeats(v int) *SubscriptionUpdate {
	_u.mutation.ResetSeats()
	_u.mutation.SetSeats(v)
	return _u
}

// SetNillableSeats sets the "seats" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableSeats(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetSeats(*v)
	}
	return _u
}

// AddSeats adds value to the "seats" field.
func (_u *SubscriptionUpdate) AddSeats(v int) *SubscriptionUpdate {
	_u.mutation.AddSeats(v)
	return _u
}

// ClearSeats clears the value of the "seats" field.
func (_u *SubscriptionUpdate) ClearSeats() *SubscriptionUpdate {
	_u.mutation.ClearSeats()
	return _u
}

// SetBillingCycle sets the "billing_cycle" field.
func (_u *SubscriptionUpdate) SetBillingCycle(v subscription.BillingCycle) *SubscriptionUpdate {
	_u.mutation.SetBillingCycle(v)
	return _u
}

// SetNillableBillingCycle sets the "billing_cycle" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableBillingCycle(v *subscription.BillingCycle) *SubscriptionUpdate {
	if v != nil {
		_u.SetBillingCycle(*v)
	}
	return _u
}

// ClearBillingCycle clears the value of the "billing_cycle" field.
func (_u *SubscriptionUpdate) ClearBillingCycle() *SubscriptionUpdate {
	_u.mutation.ClearBillingCycle()
	return _u
}

// SetRenewalDate sets the "renewal_date" field.
func (_u *SubscriptionUpdate) SetRenewalDate(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetRenewalDate(v)
	return _u
}

// SetNillableRenewalDate sets the "renewal_date" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableRenewalDate(v *time.Time) *SubscriptionUpdate {
	if v != nil {
		_u.SetRenewalDate(*v)
	}
	return _u
}

// ClearRenewalDate clears the value of the "renewal_date" field.
func (_u *SubscriptionUpdate) ClearRenewalDate() *SubscriptionUpdate {
	_u.mutation.ClearRenewalDate()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SubscriptionUpdate) SetAmount(v float64) *SubscriptionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableAmount(v *float64) *SubscriptionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SubscriptionUpdate) AddAmount(v float64) *SubscriptionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *SubscriptionUpdate) ClearAmount() *SubscriptionUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *SubscriptionUpdate) SetCurrency(v string) *SubscriptionUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCurrency(v *string) *SubscriptionUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *SubscriptionUpdate) ClearCurrency() *SubscriptionUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *SubscriptionUpdate) SetConfidenceScore(v subscription.ConfidenceScore) *SubscriptionUpdate {
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableConfidenceScore(v *subscription.ConfidenceScore) *SubscriptionUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubscriptionUpdate) SetStatus(v subscription.Status) *SubscriptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableStatus(v *subscription.Status) *SubscriptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastDetectedAt sets the "last_detected_at" field.
func (_u *SubscriptionUpdate) SetLastDetectedAt(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetLastDetectedAt(v)
	return _u
}

// SetNillableLastDetectedAt sets the "last_detected_at" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableLastDetectedAt(v *time.Time) *SubscriptionUpdate {
	if v != nil {
		_u.SetLastDetectedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubscriptionUpdate) SetCreatedAt(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCreatedAt(v *time.Time) *SubscriptionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubscriptionUpdate) SetUpdatedAt(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *SubscriptionUpdate) SetVendor(v *Vendor) *SubscriptionUpdate {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (_u *SubscriptionUpdate) Mutation() *SubscriptionMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *SubscriptionUpdate) ClearVendor() *SubscriptionUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubscriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubscriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := subscription.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Subscription.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Seats(); ok {
		if err := subscription.SeatsValidator(v); err != nil {
			return &ValidationError{Name: "seats", err: fmt.Errorf(`ent: validator failed for field "Subscription.seats": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillingCycle(); ok {
		if err := subscription.BillingCycleValidator(v); err != nil {
			return &ValidationError{Name: "billing_cycle", err: fmt.Errorf(`ent: validator failed for field "Subscription.billing_cycle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := subscription.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Subscription.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := subscription.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Subscription.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subscription.status": %w`, err)}
		}
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subscription.vendor"`)
	}
	return nil
}

func (_u *SubscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscription.Table, subscription.Columns, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(subscription.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(subscription.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(subscription.FieldPlan, field.TypeString, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(subscription.FieldPlan, field.TypeString)
	}
	if value, ok := _u.mutation.Seats(); ok {
		_spec.SetField(subscription.FieldSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeats(); ok {
		_spec.AddField(subscription.FieldSeats, field.TypeInt, value)
	}
	if _u.mutation.SeatsCleared() {
		_spec.ClearField(subscription.FieldSeats, field.TypeInt)
	}
	if value, ok := _u.mutation.BillingCycle(); ok {
		_spec.SetField(subscription.FieldBillingCycle, field.TypeEnum, value)
	}
	if _u.mutation.BillingCycleCleared() {
		_spec.ClearField(subscription.FieldBillingCycle, field.TypeEnum)
	}
	if value, ok := _u.mutation.RenewalDate(); ok {
		_spec.SetField(subscription.FieldRenewalDate, field.TypeTime, value)
	}
	if _u.mutation.RenewalDateCleared() {
		_spec.ClearField(subscription.FieldRenewalDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(subscription.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(subscription.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(subscription.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(subscription.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(subscription.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(subscription.FieldConfidenceScore, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastDetectedAt(); ok {
		_spec.SetField(subscription.FieldLastDetectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(subscription.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscription.VendorTable,
			Columns: []string{subscription.VendorColumn},
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
			Table:   subscription.VendorTable,
			Columns: []string{subscription.VendorColumn},
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
			err = &NotFoundError{subscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubscriptionUpdateOne is the builder for updating a single Subscription entity.
type SubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubscriptionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SubscriptionUpdateOne) SetUserID(v uuid.UUID) *SubscriptionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableUserID(v *uuid.UUID) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *SubscriptionUpdateOne) SetVendorID(v uuid.UUID) *SubscriptionUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableVendorID(v *uuid.UUID) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SubscriptionUpdateOne) SetSource(v subscription.Source) *SubscriptionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableSource(v *subscription.Source) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *SubscriptionUpdateOne) SetPlan(v string) *SubscriptionUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillablePlan(v *string) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *SubscriptionUpdateOne) ClearPlan() *SubscriptionUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetSeats sets the "seats" field.
func (_u *SubscriptionUpdateOne) SetSeats(v int) *SubscriptionUpdateOne {
	_u.mutation.ResetSeats()
	_u.mutation.SetSeats(v)
	return _u
}

// SetNillableSeats sets the "seats" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableSeats(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetSeats(*v)
	}
	return _u
}

// AddSeats adds value to the "seats" field.
func (_u *SubscriptionUpdateOne) AddSeats(v int) *SubscriptionUpdateOne {
	_u.mutation.AddSeats(v)
	return _u
}

// ClearSeats clears the value of the "seats" field.
func (_u *SubscriptionUpdateOne) ClearSeats() *SubscriptionUpdateOne {
	_u.mutation.ClearSeats()
	return _u
}

// SetBillingCycle sets the "billing_cycle" field.
func (_u *SubscriptionUpdateOne) SetBillingCycle(v subscription.BillingCycle) *SubscriptionUpdateOne {
	_u.mutation.SetBillingCycle(v)
	return _u
}

// SetNillableBillingCycle sets the "billing_cycle" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableBillingCycle(v *subscription.BillingCycle) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetBillingCycle(*v)
	}
	return _u
}

// ClearBillingCycle clears the value of the "billing_cycle" field.
func (_u *SubscriptionUpdateOne) ClearBillingCycle() *SubscriptionUpdateOne {
	_u.mutation.ClearBillingCycle()
	return _u
}

// SetRenewalDate sets the "renewal_date" field.
func (_u *SubscriptionUpdateOne) SetRenewalDate(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetRenewalDate(v)
	return _u
}

// SetNillableRenewalDate sets the "renewal_date" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableRenewalDate(v *time.Time) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetRenewalDate(*v)
	}
	return _u
}

// ClearRenewalDate clears the value of the "renewal_date" field.
func (_u *SubscriptionUpdateOne) ClearRenewalDate() *SubscriptionUpdateOne {
	_u.mutation.ClearRenewalDate()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *SubscriptionUpdateOne) SetAmount(v float64) *SubscriptionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableAmount(v *float64) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *SubscriptionUpdateOne) AddAmount(v float64) *SubscriptionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *SubscriptionUpdateOne) ClearAmount() *SubscriptionUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *SubscriptionUpdateOne) SetCurrency(v string) *SubscriptionUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCurrency(v *string) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *SubscriptionUpdateOne) ClearCurrency() *SubscriptionUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *SubscriptionUpdateOne) SetConfidenceScore(v subscription.ConfidenceScore) *SubscriptionUpdateOne {
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableConfidenceScore(v *subscription.ConfidenceScore) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubscriptionUpdateOne) SetStatus(v subscription.Status) *SubscriptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableStatus(v *subscription.Status) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastDetectedAt sets the "last_detected_at" field.
func (_u *SubscriptionUpdateOne) SetLastDetectedAt(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetLastDetectedAt(v)
	return _u
}

// SetNillableLastDetectedAt sets the "last_detected_at" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableLastDetectedAt(v *time.Time) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetLastDetectedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubscriptionUpdateOne) SetCreatedAt(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCreatedAt(v *time.Time) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubscriptionUpdateOne) SetUpdatedAt(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *SubscriptionUpdateOne) SetVendor(v *Vendor) *SubscriptionUpdateOne {
	return _u.SetVendorID(v.ID)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (_u *SubscriptionUpdateOne) Mutation() *SubscriptionMutation {
	return _u.mutation
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *SubscriptionUpdateOne) ClearVendor() *SubscriptionUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// Where appends a list predicates to the SubscriptionUpdate builder.
func (_u *SubscriptionUpdateOne) Where(ps ...predicate.Subscription) *SubscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubscriptionUpdateOne) Select(field string, fields ...string) *SubscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subscription entity.
func (_u *SubscriptionUpdateOne) Save(ctx context.Context) (*Subscription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionUpdateOne) SaveX(ctx context.Context) *Subscription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubscriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := subscription.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Subscription.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Seats(); ok {
		if err := subscription.SeatsValidator(v); err != nil {
			return &ValidationError{Name: "seats", err: fmt.Errorf(`ent: validator failed for field "Subscription.seats": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillingCycle(); ok {
		if err := subscription.BillingCycleValidator(v); err != nil {
			return &ValidationError{Name: "billing_cycle", err: fmt.Errorf(`ent: validator failed for field "Subscription.billing_cycle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := subscription.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Subscription.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := subscription.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Subscription.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subscription.status": %w`, err)}
		}
	}
	if _u.mutation.VendorCleared() && len(_u.mutation.VendorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subscription.vendor"`)
	}
	return nil
}

func (_u *SubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *Subscription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscription.Table, subscription.Columns, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscription.FieldID)
		for _, f := range fields {
			if !subscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subscription.FieldID {
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
		_spec.SetField(subscription.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(subscription.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(subscription.FieldPlan, field.TypeString, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(subscription.FieldPlan, field.TypeString)
	}
	if value, ok := _u.mutation.Seats(); ok {
		_spec.SetField(subscription.FieldSeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeats(); ok {
		_spec.AddField(subscription.FieldSeats, field.TypeInt, value)
	}
	if _u.mutation.SeatsCleared() {
		_spec.ClearField(subscription.FieldSeats, field.TypeInt)
	}
	if value, ok := _u.mutation.BillingCycle(); ok {
		_spec.SetField(subscription.FieldBillingCycle, field.TypeEnum, value)
	}
	if _u.mutation.BillingCycleCleared() {
		_spec.ClearField(subscription.FieldBillingCycle, field.TypeEnum)
	}
	if value, ok := _u.mutation.RenewalDate(); ok {
		_spec.SetField(subscription.FieldRenewalDate, field.TypeTime, value)
	}
	if _u.mutation.RenewalDateCleared() {
		_spec.ClearField(subscription.FieldRenewalDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(subscription.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(subscription.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(subscription.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(subscription.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(subscription.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(subscription.FieldConfidenceScore, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastDetectedAt(); ok {
		_spec.SetField(subscription.FieldLastDetectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(subscription.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VendorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscription.VendorTable,
			Columns: []string{subscription.VendorColumn},
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
			Table:   subscription.VendorTable,
			Columns: []string{subscription.VendorColumn},
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
	_node = &Subscription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
