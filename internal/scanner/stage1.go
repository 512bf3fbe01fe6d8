package scanner

import "strings"

// Stage-1 keywords. Case-insensitive substring match over subject, snippet,
// and body; any hit marks the message subscription-related. Recall-biased:
// stage 2 is the precision filter.
var subscriptionKeywords = []string{
	"renewal",
	"renew",
	"invoice",
	"billing",
	"receipt",
	"subscription",
	"payment",
	"charge",
	"charged",
	"your plan",
	"plan upgrade",
	"trial ending",
	"trial expires",
	"auto-renew",
	"license",
}

// IsSubscriptionEmail is the stage-1 classifier.
func IsSubscriptionEmail(msg *Message) bool {
	haystack := strings.ToLower(msg.Subject + "\n" + msg.Snippet + "\n" + msg.Body)
	for _, kw := range subscriptionKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
