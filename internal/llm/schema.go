package llm

// BuildSubscriptionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. We pass it to the provider as a structured-output constraint
// and also use it locally to validate the response. All domain fields are
// nullable on purpose: "not stated" must be representable, never guessed.
func BuildSubscriptionJSONSchema() map[string]any {
	nullableString := func() map[string]any {
		return map[string]any{"type": []string{"string", "null"}}
	}

	props := map[string]any{
		"vendor_name":   nullableString(),
		"vendor_domain": nullableString(),
		"plan":          nullableString(),
		"seats":         map[string]any{"type": []string{"integer", "null"}, "minimum": 1},
		"billing_cycle": map[string]any{"type": []string{"string", "null"}, "enum": []any{"monthly", "yearly", nil}},
		"renewal_date":  map[string]any{"type": []string{"string", "null"}, "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"amount":        map[string]any{"type": []string{"number", "null"}, "minimum": 0},
		"currency":      map[string]any{"type": []string{"string", "null"}, "minLength": 3, "maxLength": 3},
		"confidence":    map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"confidence"},
	}
}
