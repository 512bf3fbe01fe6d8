package scanner

import (
	"strings"
	"testing"
)

func TestIsSubscriptionEmail(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want bool
	}{
		{"subject keyword", Message{Subject: "Your invoice from Figma"}, true},
		{"body keyword", Message{Subject: "Hi", Body: "your subscription will auto-renew"}, true},
		{"snippet keyword", Message{Subject: "Hi", Snippet: "Payment received"}, true},
		{"case insensitive", Message{Subject: "RENEWAL NOTICE"}, true},
		{"no keywords", Message{Subject: "Lunch tomorrow?", Body: "See you at noon"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSubscriptionEmail(&tt.msg); got != tt.want {
				t.Errorf("IsSubscriptionEmail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripHTML(t *testing.T) {
	in := `<html><head><style>.x{color:red}</style></head>
<body><p>Your plan renews on <b>2024-07-01</b></p><script>track()</script>
<div>Total: &#36;96.00</div></body></html>`

	got := StripHTML(in)
	if want := "Your plan renews on 2024-07-01"; !strings.Contains(got, want) {
		t.Errorf("StripHTML missing %q in %q", want, got)
	}
	if !strings.Contains(got, "Total: $96.00") {
		t.Errorf("entity not decoded: %q", got)
	}
	if strings.Contains(got, "track()") || strings.Contains(got, "color:red") {
		t.Errorf("script/style leaked: %q", got)
	}
}
