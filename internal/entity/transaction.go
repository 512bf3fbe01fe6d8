package entity

import "time"

// Transaction is one normalized row from a CSV upload. Immutable once created.
type Transaction struct {
	Date                 time.Time `json:"date"`
	VendorName           string    `json:"vendor_name"`
	NormalizedVendorName string    `json:"normalized_vendor_name"`
	Amount               float64   `json:"amount"`
	RawDescription       string    `json:"raw_description"`
	IsSaaS               bool      `json:"is_saas"`
	Category             string    `json:"category,omitempty"`
}

// VendorSummary aggregates transactions sharing a normalized vendor name.
// Recomputed per upload; the basis for the vendor upsert.
type VendorSummary struct {
	VendorName           string    `json:"vendor_name"`
	NormalizedVendorName string    `json:"normalized_vendor_name"`
	TotalAmount          float64   `json:"total_amount"`
	TransactionCount     int       `json:"transaction_count"`
	AverageAmount        float64   `json:"average_amount"`
	MinAmount            float64   `json:"min_amount"`
	MaxAmount            float64   `json:"max_amount"`
	LatestAmount         float64   `json:"latest_amount"`
	FirstDate            time.Time `json:"first_date"`
	LastDate             time.Time `json:"last_date"`
	IsSaaS               bool      `json:"is_saas"`
	Category             string    `json:"category,omitempty"`
}
