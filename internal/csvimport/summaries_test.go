package csvimport

import (
	"testing"
	"time"

	"github.com/subtally/subtally/internal/entity"
)

func tx(date string, vendor string, amount float64, saas bool, category string) entity.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return entity.Transaction{
		Date:                 d,
		VendorName:           vendor,
		NormalizedVendorName: vendor, // already normalized in these fixtures
		Amount:               amount,
		IsSaaS:               saas,
		Category:             category,
	}
}

func TestCalculateVendorSummaries(t *testing.T) {
	txs := []entity.Transaction{
		tx("2024-01-10", "figma", 15, true, ""),
		tx("2024-03-10", "figma", 18, false, "Design"),
		tx("2024-02-10", "figma", 15, true, ""),
		tx("2024-01-20", "grocer", 84, false, ""),
	}

	sums := CalculateVendorSummaries(txs)
	if len(sums) != 2 {
		t.Fatalf("summaries = %d, want 2", len(sums))
	}

	// sorted by total spend descending
	if sums[0].NormalizedVendorName != "grocer" {
		t.Errorf("top vendor = %s, want grocer (84 > 48)", sums[0].NormalizedVendorName)
	}

	f := sums[1]
	if f.TransactionCount != 3 {
		t.Errorf("count = %d, want 3", f.TransactionCount)
	}
	if f.TotalAmount != 48 {
		t.Errorf("total = %v, want 48", f.TotalAmount)
	}
	if f.AverageAmount != 16 {
		t.Errorf("average = %v, want 16", f.AverageAmount)
	}
	if f.MinAmount != 15 || f.MaxAmount != 18 {
		t.Errorf("min/max = %v/%v, want 15/18", f.MinAmount, f.MaxAmount)
	}
	if f.LatestAmount != 18 {
		t.Errorf("latest = %v, want 18 (from the most recent charge)", f.LatestAmount)
	}
	if f.FirstDate.Format("2006-01-02") != "2024-01-10" || f.LastDate.Format("2006-01-02") != "2024-03-10" {
		t.Errorf("date range = %s..%s", f.FirstDate.Format("2006-01-02"), f.LastDate.Format("2006-01-02"))
	}
	if !f.IsSaaS {
		t.Error("one SaaS transaction must taint the vendor as SaaS")
	}
	if f.Category != "Design" {
		t.Errorf("category = %q, want first non-empty (Design)", f.Category)
	}
}

func TestCalculateVendorSummariesEmpty(t *testing.T) {
	if got := CalculateVendorSummaries(nil); len(got) != 0 {
		t.Errorf("empty input: got %d summaries", len(got))
	}
}

func TestDateSeries(t *testing.T) {
	txs := []entity.Transaction{
		tx("2024-01-10", "figma", 15, true, ""),
		tx("2024-01-20", "grocer", 84, false, ""),
		tx("2024-02-10", "figma", 15, true, ""),
	}
	dates := DateSeries(txs, "figma")
	if len(dates) != 2 {
		t.Fatalf("dates = %d, want 2", len(dates))
	}
	if dates[0].Format("2006-01-02") != "2024-01-10" {
		t.Errorf("first date = %s", dates[0].Format("2006-01-02"))
	}
	if got := DateSeries(txs, "unknown"); len(got) != 0 {
		t.Errorf("unknown vendor: got %d dates", len(got))
	}
}
