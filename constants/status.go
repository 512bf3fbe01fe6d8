package constants

// SubscriptionStatus is the canonical status for rows in subscriptions.
type SubscriptionStatus string

// Stable values (store these exact strings in DB).
const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionPending   SubscriptionStatus = "pending"
)

// Source tags how a subscription was detected; part of its uniqueness key.
type Source string

const (
	SourceGmail  Source = "gmail"
	SourceCSV    Source = "csv"
	SourceManual Source = "manual"
)

// VendorType drives the negotiation workflow.
type VendorType string

const (
	VendorFixedPlan  VendorType = "FIXED_PLAN"
	VendorNegotiable VendorType = "NEGOTIABLE"
)

// Confidence reflects how many independent signals (amount, renewal date, plan)
// backed a detection.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// BillingCycle values as stored; empty string means "not stated".
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// Frequency buckets inferred from a transaction date series.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnual    Frequency = "annual"
	FrequencyOneTime   Frequency = "one-time"
)

func (s SubscriptionStatus) String() string { return string(s) }
func (s Source) String() string             { return string(s) }
func (v VendorType) String() string         { return string(v) }
func (c Confidence) String() string         { return string(c) }
func (f Frequency) String() string          { return string(f) }
