// Code generated by ent, DO NOT EDIT.

package subscription

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the subscription type in the database.
	Label = "subscription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldVendorID holds the string denoting the vendor_id field in the database.
	FieldVendorID = "vendor_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldSeats holds the string denoting the seats field in the database.
	FieldSeats = "seats"
	// FieldBillingCycle holds the string denoting the billing_cycle field in the database.
	FieldBillingCycle = "billing_cycle"
	// FieldRenewalDate holds the string denoting the renewal_date field in the database.
	FieldRenewalDate = "renewal_date"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastDetectedAt holds the string denoting the last_detected_at field in the database.
	FieldLastDetectedAt = "last_detected_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeVendor holds the string denoting the vendor edge name in mutations.
	EdgeVendor = "vendor"
	// Table holds the table name of the subscription in the database.
	Table = "subscriptions"
	// VendorTable is the table that holds the vendor relation/edge.
	VendorTable = "subscriptions"
	// VendorInverseTable is the table name for the Vendor entity.
	// It exists in this package in order to avoid circular dependency with the "vendor" package.
	VendorInverseTable = "vendors"
	// VendorColumn is the table column denoting the vendor relation/edge.
	VendorColumn = "vendor_id"
)

// Columns holds all SQL columns for subscription fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldVendorID,
	FieldSource,
	FieldPlan,
	FieldSeats,
	FieldBillingCycle,
	FieldRenewalDate,
	FieldAmount,
	FieldCurrency,
	FieldConfidenceScore,
	FieldStatus,
	FieldLastDetectedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SeatsValidator is a validator for the "seats" field. It is called by the builders before save.
	SeatsValidator func(int) error
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultLastDetectedAt holds the default value on creation for the "last_detected_at" field.
	DefaultLastDetectedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceGmail  Source = "gmail"
	SourceCsv    Source = "csv"
	SourceManual Source = "manual"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceGmail, SourceCsv, SourceManual:
		return nil
	default:
		return fmt.Errorf("subscription: invalid enum value for source field: %q", s)
	}
}

// BillingCycle defines the type for the "billing_cycle" enum field.
type BillingCycle string

// BillingCycle values.
const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

func (bc BillingCycle) String() string {
	return string(bc)
}

// BillingCycleValidator is a validator for the "billing_cycle" field enum values. It is called by the builders before save.
func BillingCycleValidator(bc BillingCycle) error {
	switch bc {
	case BillingCycleMonthly, BillingCycleYearly:
		return nil
	default:
		return fmt.Errorf("subscription: invalid enum value for billing_cycle field: %q", bc)
	}
}

// ConfidenceScore defines the type for the "confidence_score" enum field.
type ConfidenceScore string

// ConfidenceScoreLow is the default value of the ConfidenceScore enum.
const DefaultConfidenceScore = ConfidenceScoreLow

// ConfidenceScore values.
const (
	ConfidenceScoreLow    ConfidenceScore = "low"
	ConfidenceScoreMedium ConfidenceScore = "medium"
	ConfidenceScoreHigh   ConfidenceScore = "high"
)

func (cs ConfidenceScore) String() string {
	return string(cs)
}

// ConfidenceScoreValidator is a validator for the "confidence_score" field enum values. It is called by the builders before save.
func ConfidenceScoreValidator(cs ConfidenceScore) error {
	switch cs {
	case ConfidenceScoreLow, ConfidenceScoreMedium, ConfidenceScoreHigh:
		return nil
	default:
		return fmt.Errorf("subscription: invalid enum value for confidence_score field: %q", cs)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusPending   Status = "pending"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCancelled, StatusPending:
		return nil
	default:
		return fmt.Errorf("subscription: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Subscription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByVendorID orders the results by the vendor_id field.
func ByVendorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByPlan orders the results by the plan field.
func ByPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlan, opts...).ToFunc()
}

// BySeats orders the results by the seats field.
func BySeats(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeats, opts...).ToFunc()
}

// ByBillingCycle orders the results by the billing_cycle field.
func ByBillingCycle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillingCycle, opts...).ToFunc()
}

// ByRenewalDate orders the results by the renewal_date field.
func ByRenewalDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenewalDate, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastDetectedAt orders the results by the last_detected_at field.
func ByLastDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDetectedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByVendorField orders the results by vendor field.
func ByVendorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVendorStep(), sql.OrderByField(field, opts...))
	}
}
func newVendorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VendorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VendorTable, VendorColumn),
	)
}
