// Package extract is the deterministic fallback for subscription field
// extraction: ordered regex attempts per field, used when the LLM provider
// fails or is unavailable. Like the provider, it never infers a value that is
// not explicitly present in the text.
package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/subtally/subtally/internal/llm"
	"github.com/subtally/subtally/internal/textparse"
)

// Each field is an explicit ordered strategy list; first non-nil result wins.
// Keeping the priority policy as data makes it testable strategy-by-strategy.

var reVendorSubject = regexp.MustCompile(`^([A-Z][\w.+-]*(?:\s+[A-Z][\w.+-]*)*?)\s+(?:Billing|Subscription|Plan|Renewal)\b`)

var planStrategies = []*regexp.Regexp{
	regexp.MustCompile(`Plan:\s*([A-Za-z][\w -]*?)(?:\s+Seats:|\s*[\r\n]|$)`),
	regexp.MustCompile(`(?i)your\s+([A-Za-z][\w -]*?)\s+plan`),
	regexp.MustCompile(`\b([A-Z][\w-]*\s+(?:Pro|Team|Business|Enterprise|Premium|Plus|Standard))\b`),
}

var reSeats = regexp.MustCompile(`Seats:\s*(\d+)`)

// Billing-cycle tokens in priority order: yearly wins over monthly when both
// appear (an annual invoice often mentions the monthly equivalent price).
var cycleStrategies = []struct {
	tokens []string
	cycle  string
}{
	{[]string{"yearly", "annual", "per year", "/yr", "/year"}, "yearly"},
	{[]string{"monthly", "per month", "/mo", "/month"}, "monthly"},
}

var dateStrategies = []*regexp.Regexp{
	regexp.MustCompile(`(?i)renew(?:s|al)?(?:\s+date)?(?:\s+on|:)?\s*(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(?i)renew(?:s|al)?(?:\s+date)?(?:\s+on|:)?\s*(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`(?i)(?:renew(?:s|al)?(?:\s+date)?(?:\s+on|:)?|next\s+(?:billing|charge)\s+date:?)\s*([A-Z][a-z]+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
}

var monthNameLayouts = []string{"January 2, 2006", "January 2 2006"}

var amountStrategies = []*regexp.Regexp{
	regexp.MustCompile(`([$€£])\s?(\d[\d,]*(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)\b(USD|EUR|GBP)\s?(\d[\d,]*(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d{1,2})?)\s?(USD|EUR|GBP)\b`),
}

var symbolCurrency = map[string]string{"$": "USD", "€": "EUR", "£": "GBP"}

// Extract runs every field strategy over subject+body. Returns nil when no
// field at all was found; downstream must treat that as "no signal", distinct
// from an empty-but-present record.
func Extract(subject, body string, logger *slog.Logger) *llm.SubscriptionFields {
	if logger == nil {
		logger = slog.Default()
	}
	text := subject + "\n" + body

	fields := llm.SubscriptionFields{}
	found := false

	if m := reVendorSubject.FindStringSubmatch(strings.TrimSpace(subject)); m != nil {
		fields.VendorName = strings.TrimSpace(m[1])
		found = true
	}

	for _, re := range planStrategies {
		if m := re.FindStringSubmatch(text); m != nil {
			plan := strings.TrimSpace(m[1])
			fields.Plan = &plan
			found = true
			break
		}
	}

	if m := reSeats.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			fields.Seats = &n
			found = true
		}
	}

	lower := strings.ToLower(text)
	for _, s := range cycleStrategies {
		for _, tok := range s.tokens {
			if strings.Contains(lower, tok) {
				fields.BillingCycle = s.cycle
				found = true
				break
			}
		}
		if fields.BillingCycle != "" {
			break
		}
	}

	for _, re := range dateStrategies {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if d, ok := parseAnyDate(m[1]); ok {
			fields.RenewalDate = d.Format("2006-01-02")
			found = true
			break
		}
	}

	for _, re := range amountStrategies {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		cur, numStr := m[1], m[2]
		if c, ok := symbolCurrency[cur]; ok {
			cur = c
		}
		// third strategy captures the number first
		if startsWithDigit(cur) {
			cur, numStr = numStr, cur
		}
		if amt := textparse.ParseAmount(numStr); amt > 0 {
			fields.Amount = &amt
			fields.Currency = strings.ToUpper(cur)
			found = true
			break
		}
	}

	if !found {
		logger.Info("extract.fallback.no_signal")
		return nil
	}

	switch fields.SignalCount() {
	case 3:
		fields.Confidence = "high"
	case 2:
		fields.Confidence = "medium"
	default:
		fields.Confidence = "low"
	}

	logger.Info("extract.fallback.ok",
		"vendor", fields.VendorName,
		"signals", fields.SignalCount(),
		"confidence", fields.Confidence,
	)
	return &fields
}

func parseAnyDate(s string) (time.Time, bool) {
	if d, ok := textparse.ParseDate(s); ok {
		return d, true
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	for _, layout := range monthNameLayouts {
		if d, err := time.Parse(layout, cleaned); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
