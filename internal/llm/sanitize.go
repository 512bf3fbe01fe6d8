package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
)

// StripCodeFences removes a markdown code fence wrapping a JSON payload.
// Providers routinely wrap structured output in ```json ... ``` despite
// instructions; the parser must tolerate it.
func StripCodeFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line (```json)
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

// NormalizeAndSanitizeJSON cleans a provider response so it can validate:
//   - drops explicit nulls and empty strings (null means "not stated")
//   - renames known synonyms (vendor -> vendor_name, cycle -> billing_cycle)
//   - coerces numeric strings for amount/seats
//   - lowercases billing_cycle and confidence
//   - removes unknown keys (additionalProperties = false friendliness)
//
// It only ever drops or reshapes, never fills a field the model did not
// produce.
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to our schema
	renamed("vendor", "vendor_name")
	renamed("name", "vendor_name")
	renamed("domain", "vendor_domain")
	renamed("cycle", "billing_cycle")
	renamed("price", "amount")
	renamed("renewal", "renewal_date")

	// 2) drop nulls/empties for every field
	for k, v := range maps.Clone(m) {
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	// 3) coerce numeric strings
	if v, ok := m["amount"].(string); ok {
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%f", &f); err == nil {
			m["amount"] = f
		} else {
			delete(m, "amount")
			dropped = append(dropped, "amount(type)")
		}
	}
	if v, ok := m["seats"].(string); ok {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d", &n); err == nil {
			m["seats"] = n
		} else {
			delete(m, "seats")
			dropped = append(dropped, "seats(type)")
		}
	}
	if v, ok := m["seats"].(float64); ok {
		m["seats"] = int(v)
	}

	// 4) normalize enums
	if v, ok := m["billing_cycle"].(string); ok {
		cycle := strings.ToLower(strings.TrimSpace(v))
		switch cycle {
		case "monthly", "yearly":
			m["billing_cycle"] = cycle
		case "annual", "annually":
			m["billing_cycle"] = "yearly"
		default:
			delete(m, "billing_cycle")
			dropped = append(dropped, "billing_cycle(enum)")
		}
	}
	if v, ok := m["confidence"].(string); ok {
		m["confidence"] = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := m["currency"].(string); ok {
		m["currency"] = strings.ToUpper(strings.TrimSpace(v))
	}

	// 5) remove unknown keys
	allowed := map[string]struct{}{
		"vendor_name": {}, "vendor_domain": {}, "plan": {}, "seats": {},
		"billing_cycle": {}, "renewal_date": {}, "amount": {}, "currency": {},
		"confidence": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
