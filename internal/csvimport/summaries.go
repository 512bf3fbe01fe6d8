package csvimport

import (
	"sort"
	"time"

	"github.com/subtally/subtally/internal/entity"
)

// CalculateVendorSummaries groups transactions by normalized vendor name and
// computes per-vendor aggregates. One SaaS-looking transaction taints the
// whole vendor as SaaS; the category is the first non-empty one seen. Output
// is sorted by total spend descending; consumers rely on this for "top
// vendors" views.
func CalculateVendorSummaries(txs []entity.Transaction) []entity.VendorSummary {
	groups := make(map[string][]entity.Transaction)
	order := make([]string, 0)
	for _, tx := range txs {
		key := tx.NormalizedVendorName
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], tx)
	}

	summaries := make([]entity.VendorSummary, 0, len(groups))
	for _, key := range order {
		group := groups[key]
		s := entity.VendorSummary{
			VendorName:           group[0].VendorName,
			NormalizedVendorName: key,
			TransactionCount:     len(group),
			FirstDate:            group[0].Date,
			LastDate:             group[0].Date,
			MinAmount:            group[0].Amount,
			MaxAmount:            group[0].Amount,
			LatestAmount:         group[0].Amount,
		}
		for _, tx := range group {
			s.TotalAmount += tx.Amount
			if tx.Date.Before(s.FirstDate) {
				s.FirstDate = tx.Date
			}
			if !tx.Date.Before(s.LastDate) {
				s.LastDate = tx.Date
				s.LatestAmount = tx.Amount
			}
			if tx.Amount < s.MinAmount {
				s.MinAmount = tx.Amount
			}
			if tx.Amount > s.MaxAmount {
				s.MaxAmount = tx.Amount
			}
			if tx.IsSaaS {
				s.IsSaaS = true
			}
			if s.Category == "" && tx.Category != "" {
				s.Category = tx.Category
			}
		}
		s.AverageAmount = s.TotalAmount / float64(len(group))
		summaries = append(summaries, s)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalAmount > summaries[j].TotalAmount
	})
	return summaries
}

// DateSeries extracts one vendor's transaction dates for handoff to the
// renewal estimator.
func DateSeries(txs []entity.Transaction, normalizedVendorName string) []time.Time {
	var out []time.Time
	for _, tx := range txs {
		if tx.NormalizedVendorName == normalizedVendorName {
			out = append(out, tx.Date)
		}
	}
	return out
}
