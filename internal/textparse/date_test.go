package textparse

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantYMD  string
	}{
		{"iso", "2024-01-15", true, "2024-01-15"},
		{"rfc3339", "2024-01-15T10:30:00Z", true, "2024-01-15"},
		{"us slash", "01/15/2024", true, "2024-01-15"},
		{"us slash short", "1/5/2024", true, "2024-01-05"},
		{"whitespace", "  2024-01-15  ", true, "2024-01-15"},
		{"empty", "", false, ""},
		{"invalid month", "2024-13-01", false, ""},
		{"garbage", "yesterday", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && d.Format("2006-01-02") != tt.wantYMD {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, d.Format("2006-01-02"), tt.wantYMD)
			}
		})
	}
}
