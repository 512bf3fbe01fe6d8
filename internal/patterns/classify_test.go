package patterns

import (
	"context"
	"errors"
	"testing"

	"github.com/subtally/subtally/constants"
)

type stubTypeStore struct {
	vt  constants.VendorType
	ok  bool
	err error
}

func (s stubTypeStore) VendorTypeByName(context.Context, string) (constants.VendorType, bool, error) {
	return s.vt, s.ok, s.err
}

func TestClassifySync(t *testing.T) {
	tests := []struct {
		name     string
		vendor   string
		category string
		want     constants.VendorType
	}{
		{"fixed-plan brand", "Netflix", "Entertainment", constants.VendorFixedPlan},
		{"fixed-plan brand case insensitive", "NETFLIX INC", "", constants.VendorFixedPlan},
		{"negotiable brand", "Salesforce", "CRM", constants.VendorNegotiable},
		{"negotiable category", "Acme Secure", "Security", constants.VendorNegotiable},
		{"default is negotiable", "Some Unknown Tool", "Design", constants.VendorNegotiable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySync(tt.vendor, tt.category); got != tt.want {
				t.Errorf("ClassifySync(%q, %q) = %s, want %s", tt.vendor, tt.category, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	// stored classification wins over every heuristic
	got := Classify(ctx, stubTypeStore{vt: constants.VendorFixedPlan, ok: true}, "Salesforce", "CRM")
	if got != constants.VendorFixedPlan {
		t.Errorf("stored classification ignored: got %s", got)
	}

	// store miss falls through to the heuristics
	got = Classify(ctx, stubTypeStore{}, "Netflix", "")
	if got != constants.VendorFixedPlan {
		t.Errorf("store miss: got %s, want FIXED_PLAN", got)
	}

	// store error must not fail the caller
	got = Classify(ctx, stubTypeStore{err: errors.New("db down")}, "Netflix", "")
	if got != constants.VendorFixedPlan {
		t.Errorf("store error: got %s, want FIXED_PLAN", got)
	}

	// nil store is the offline path
	got = Classify(ctx, nil, "Spotify", "")
	if got != constants.VendorFixedPlan {
		t.Errorf("nil store: got %s, want FIXED_PLAN", got)
	}
}
