package textparse

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain", "45.00", 45},
		{"dollar sign", "$45.00", 45},
		{"euro sign", "€12.50", 12.5},
		{"currency code", "USD 99", 99},
		{"thousands separator", "1,234.50", 1234.5},
		{"accounting negative", "(1,234.50)", 1234.5},
		{"leading minus", "-12.00", 12},
		{"zero", "$0.00", 0},
		{"empty", "", 0},
		{"garbage", "n/a", 0},
		{"currency only", "$", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAmountStrict(t *testing.T) {
	d, ok := ParseAmountStrict("(1,234.50)")
	if !ok {
		t.Fatal("ParseAmountStrict((1,234.50)) not ok")
	}
	if got := d.String(); got != "-1234.5" {
		t.Errorf("accounting sign: got %s, want -1234.5", got)
	}

	if _, ok := ParseAmountStrict("n/a"); ok {
		t.Error("ParseAmountStrict(n/a) should fail")
	}

	// a genuine zero parses; the lenient wrapper is what maps it to "skip"
	d, ok = ParseAmountStrict("0.00")
	if !ok || !d.IsZero() {
		t.Errorf("ParseAmountStrict(0.00) = %v, %v; want zero, true", d, ok)
	}
}
