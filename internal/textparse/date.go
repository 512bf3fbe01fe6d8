package textparse

import (
	"strings"
	"time"
)

// Layouts tried in order; ISO first, then the US slash form.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
}

// ParseDate parses a calendar date from a cell or extracted field. Returns
// false on failure; callers must reject the row rather than defaulting to
// "now".
func ParseDate(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
