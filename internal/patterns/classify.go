package patterns

import (
	"context"
	"strings"

	"github.com/subtally/subtally/constants"
)

// VendorTypeStore looks up a previously stored classification. Implemented by
// the vendor repository; kept as an interface so classification stays testable
// without a database.
type VendorTypeStore interface {
	VendorTypeByName(ctx context.Context, normalizedName string) (constants.VendorType, bool, error)
}

// Classify decides whether a vendor is negotiable using the full priority
// chain: stored classification, curated fixed-plan list, curated negotiable
// list, category keywords, then the NEGOTIABLE default (assume negotiation is
// possible unless proven otherwise). Store errors fall through to the
// heuristic chain rather than failing the caller.
func Classify(ctx context.Context, store VendorTypeStore, name, category string) constants.VendorType {
	if store != nil {
		if vt, ok, err := store.VendorTypeByName(ctx, NormalizeVendorName(name)); err == nil && ok {
			return vt
		}
	}
	return ClassifySync(name, category)
}

// ClassifySync is the no-I/O variant for contexts that cannot await storage.
func ClassifySync(name, category string) constants.VendorType {
	lower := strings.ToLower(name)
	for _, brand := range fixedPlanBrands {
		if strings.Contains(lower, brand) {
			return constants.VendorFixedPlan
		}
	}
	for _, brand := range negotiableBrands {
		if strings.Contains(lower, brand) {
			return constants.VendorNegotiable
		}
	}
	if _, ok := negotiableCategories[strings.ToLower(strings.TrimSpace(category))]; ok {
		return constants.VendorNegotiable
	}
	return constants.VendorNegotiable
}
