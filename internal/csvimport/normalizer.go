// Package csvimport maps arbitrary bank/card CSV exports onto the canonical
// transaction schema and aggregates them into per-vendor summaries.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/subtally/subtally/internal/common"
	"github.com/subtally/subtally/internal/entity"
	"github.com/subtally/subtally/internal/patterns"
	"github.com/subtally/subtally/internal/textparse"
)

// Result is the outcome of one CSV upload. Row-level problems are recorded in
// Errors (truncated, see maxRowErrors); they never fail the batch.
type Result struct {
	Transactions []entity.Transaction `json:"transactions"`
	Errors       []string             `json:"errors"`
	TotalRows    int                  `json:"total_rows"`
	SaaSCount    int                  `json:"saas_count"`
}

// maxRowErrors caps the retained row-level error list to keep payloads bounded.
const maxRowErrors = 10

// Candidate header names per logical column. Matched exact (case-insensitive)
// first, then by substring.
var columnCandidates = map[string][]string{
	"date":        {"date", "transaction date", "trans date", "posted date", "posting date"},
	"description": {"description", "memo", "details", "narrative", "transaction details"},
	"amount":      {"amount", "debit", "charge", "value", "transaction amount"},
	"vendor":      {"vendor", "merchant", "payee", "name"},
	"category":    {"category", "type"},
}

var (
	// Processor noise commonly prefixed to card descriptions.
	reDescPrefix = regexp.MustCompile(`(?i)^(pos |debit |credit |ach |checkcard |purchase |online payment |recurring payment |payment to |sq \*|tst\*|paypal \*|pp\*|amzn mktp )`)
	// Trailing reference numbers, store codes, and date stamps.
	reDescRef = regexp.MustCompile(`(\s+#?\d{4,}|\s+x{2,}\d+|\s+\d{2}/\d{2})+\s*$`)

	titleCaser = cases.Title(language.English)
)

// Parse normalizes raw CSV text into transactions. Missing required columns
// (date, amount, and one of description/vendor) are fatal: the returned error
// wraps common.ErrValidation and Result carries zero transactions.
func Parse(raw string, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	res := &Result{}

	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("malformed CSV: %v", err))
		return res, common.NewAppError("CSV_PARSE", "malformed CSV", common.ErrInvalidInput)
	}
	if len(records) < 2 {
		res.Errors = append(res.Errors, "CSV has no data rows")
		return res, common.NewAppError("CSV_PARSE", "no data rows", common.ErrInvalidInput)
	}

	cols := resolveColumns(records[0])
	if err := requireColumns(cols); err != nil {
		res.Errors = append(res.Errors, err.Error())
		logger.Warn("csv.columns.missing", "headers", records[0], "error", err)
		return res, err
	}

	rows := records[1:]
	res.TotalRows = len(rows)

	for i, row := range rows {
		tx, rowErr := parseRow(row, cols)
		if rowErr != nil {
			if len(res.Errors) < maxRowErrors {
				res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+2, rowErr))
			}
			continue
		}
		if tx == nil {
			// zero amount: not a real charge
			continue
		}
		if tx.IsSaaS {
			res.SaaSCount++
		}
		res.Transactions = append(res.Transactions, *tx)
	}

	logger.Info("csv.parse.ok",
		"total_rows", res.TotalRows,
		"parsed", len(res.Transactions),
		"saas", res.SaaSCount,
		"row_errors", len(res.Errors),
	)
	return res, nil
}

// resolveColumns maps logical field names to header indexes.
func resolveColumns(header []string) map[string]int {
	cols := make(map[string]int)
	lowered := make([]string, len(header))
	for i, h := range header {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for field, candidates := range columnCandidates {
		// exact match first
		for _, cand := range candidates {
			for i, h := range lowered {
				if h == cand {
					cols[field] = i
				}
			}
			if _, ok := cols[field]; ok {
				break
			}
		}
		if _, ok := cols[field]; ok {
			continue
		}
		// substring fallback
		for _, cand := range candidates {
			for i, h := range lowered {
				if strings.Contains(h, cand) {
					cols[field] = i
					break
				}
			}
			if _, ok := cols[field]; ok {
				break
			}
		}
	}
	return cols
}

func requireColumns(cols map[string]int) error {
	var missing []string
	if _, ok := cols["date"]; !ok {
		missing = append(missing, "date")
	}
	if _, ok := cols["amount"]; !ok {
		missing = append(missing, "amount")
	}
	_, hasDesc := cols["description"]
	_, hasVendor := cols["vendor"]
	if !hasDesc && !hasVendor {
		missing = append(missing, "description or vendor")
	}
	if len(missing) > 0 {
		return common.NewAppError("CSV_COLUMNS",
			"missing required columns: "+strings.Join(missing, ", "),
			common.ErrValidation)
	}
	return nil
}

// parseRow converts one record. A nil transaction with nil error means the row
// was skipped as a zero-amount non-charge.
func parseRow(row []string, cols map[string]int) (*entity.Transaction, error) {
	cell := func(field string) string {
		idx, ok := cols[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, ok := textparse.ParseDate(cell("date"))
	if !ok {
		return nil, fmt.Errorf("unparseable date %q", cell("date"))
	}

	amount := textparse.ParseAmount(cell("amount"))
	if amount == 0 {
		return nil, nil
	}

	description := cell("description")
	vendorName := extractVendorName(cell("vendor"), description)
	if vendorName == "" {
		return nil, fmt.Errorf("no vendor name in row")
	}

	category := cell("category")
	isSaaS := patterns.IsSaaSSubscription(description) || patterns.IsSaaSSubscription(vendorName)

	return &entity.Transaction{
		Date:                 date,
		VendorName:           vendorName,
		NormalizedVendorName: patterns.NormalizeVendorName(vendorName),
		Amount:               amount,
		RawDescription:       description,
		IsSaaS:               isSaaS,
		Category:             category,
	}, nil
}

// extractVendorName prefers the explicit vendor column, then a cleaned
// title-cased description, then a registry match on the raw description.
func extractVendorName(vendorCol, description string) string {
	if vendorCol != "" {
		return vendorCol
	}
	if cleaned := cleanDescription(description); cleaned != "" {
		return cleaned
	}
	if m, ok := patterns.DetectSaaSVendor(description); ok {
		return m.Name
	}
	return ""
}

func cleanDescription(description string) string {
	s := strings.TrimSpace(description)
	if s == "" {
		return ""
	}
	s = reDescPrefix.ReplaceAllString(s, "")
	s = reDescRef.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(s))
}
