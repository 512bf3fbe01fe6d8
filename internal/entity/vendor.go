package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/subtally/subtally/constants"
)

// Vendor represents a canonical vendor for data transfer between layers.
// Identity is the normalized name; domain is a secondary lookup key.
type Vendor struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	NormalizedName string               `json:"normalized_name"`
	Domain         string               `json:"domain,omitempty"`
	Category       string               `json:"category"`
	VendorType     constants.VendorType `json:"vendor_type"`
	IsSaaS         bool                 `json:"is_saas"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
