package csvimport

import (
	"errors"
	"strings"
	"testing"

	"github.com/subtally/subtally/internal/common"
)

func TestParse(t *testing.T) {
	csv := strings.Join([]string{
		"Date,Description,Amount",
		"2024-01-15,RECURRING PAYMENT NOTION LABS 88421,$10.00",
		"2024-02-15,RECURRING PAYMENT NOTION LABS 88421,$10.00",
		"2024-02-16,WHOLEFDS MARKET 10293,$84.12",
		"2024-02-17,PENDING AUTH HOLD,$0.00",
		"bad-date,MYSTERY CHARGE,$5.00",
	}, "\n")

	res, err := Parse(csv, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.TotalRows != 5 {
		t.Errorf("TotalRows = %d, want 5", res.TotalRows)
	}
	// zero-amount row skipped silently, bad-date row recorded as an error
	if len(res.Transactions) != 3 {
		t.Fatalf("transactions = %d, want 3", len(res.Transactions))
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "unparseable date") {
		t.Errorf("errors = %v, want one unparseable-date error", res.Errors)
	}

	tx := res.Transactions[0]
	if tx.VendorName != "Notion Labs" {
		t.Errorf("vendor = %q, want Notion Labs (prefix and reference stripped, title-cased)", tx.VendorName)
	}
	if tx.NormalizedVendorName != "notion labs" {
		t.Errorf("normalized = %q, want notion labs", tx.NormalizedVendorName)
	}
	if !tx.IsSaaS {
		t.Error("notion row should be flagged SaaS")
	}
	if tx.Amount != 10 {
		t.Errorf("amount = %v, want 10", tx.Amount)
	}
	if res.SaaSCount != 2 {
		t.Errorf("SaaSCount = %d, want 2", res.SaaSCount)
	}

	grocery := res.Transactions[2]
	if grocery.IsSaaS {
		t.Error("grocery row should not be flagged SaaS")
	}
}

func TestParseVendorColumnPreferred(t *testing.T) {
	csv := strings.Join([]string{
		"Transaction Date,Merchant,Transaction Amount,Category",
		"01/15/2024,Figma,(15.00),Design",
	}, "\n")

	res, err := Parse(csv, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(res.Transactions))
	}
	tx := res.Transactions[0]
	if tx.VendorName != "Figma" {
		t.Errorf("vendor = %q, want Figma (explicit column wins)", tx.VendorName)
	}
	if tx.Amount != 15 {
		t.Errorf("amount = %v, want 15 (accounting negative taken absolute)", tx.Amount)
	}
	if tx.Category != "Design" {
		t.Errorf("category = %q, want Design", tx.Category)
	}
	if tx.Date.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("date = %s, want 2024-01-15", tx.Date.Format("2006-01-02"))
	}
}

func TestParseMissingColumns(t *testing.T) {
	csv := "Date,Description\n2024-01-15,Notion"
	res, err := Parse(csv, nil)
	if err == nil {
		t.Fatal("expected error for missing amount column")
	}
	if !errors.Is(err, common.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if len(res.Transactions) != 0 {
		t.Errorf("structural failure must produce zero transactions, got %d", len(res.Transactions))
	}
	if len(res.Errors) == 0 {
		t.Error("structural failure should be recorded in Errors")
	}
}

func TestParseNoDataRows(t *testing.T) {
	_, err := Parse("Date,Description,Amount", nil)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("header-only CSV: err = %v, want ErrInvalidInput", err)
	}
}

func TestParseRowErrorCap(t *testing.T) {
	rows := []string{"Date,Description,Amount"}
	for i := 0; i < 25; i++ {
		rows = append(rows, "not-a-date,Something,$5.00")
	}
	res, err := Parse(strings.Join(rows, "\n"), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Errors) != 10 {
		t.Errorf("errors = %d, want cap of 10", len(res.Errors))
	}
	if res.TotalRows != 25 {
		t.Errorf("TotalRows = %d, want 25", res.TotalRows)
	}
}
