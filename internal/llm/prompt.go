package llm

import "strings"

// bodyLimit caps how much email body we ship to the provider.
const bodyLimit = 4000

// BuildSystemPrompt composes the system message. The null-over-guess rule is
// stated here too, but the real enforcement is the schema + sanitize pass.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a SaaS subscription parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract only values explicitly present in the email text.",
		"If a field is not stated, output null for it. Never infer or invent values.",
		"Use ISO-8601 dates (YYYY-MM-DD) for renewal_date.",
		"billing_cycle must be exactly 'monthly' or 'yearly', or null when the text does not say.",
		"Currency must be a 3-letter ISO 4217 code or null.",
		"Set confidence to low, medium, or high based on how many of amount, renewal_date, and plan you found.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages one email for extraction.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	b.WriteString("From: ")
	b.WriteString(strings.TrimSpace(req.Sender))
	b.WriteString("\nSubject: ")
	b.WriteString(strings.TrimSpace(req.Subject))
	b.WriteString("\n\nBody:\n")
	body := strings.TrimSpace(req.Body)
	if len(body) > bodyLimit {
		b.WriteString(body[:bodyLimit])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(body)
	}
	return b.String()
}
