package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/subtally/subtally/internal/llm"
	"github.com/subtally/subtally/internal/retry"
)

// ExtractSubscription implements llm.FieldExtractor using text-only
// chat/completions. The raw model content is fence-stripped, sanitized, and
// validated against the subscription schema before unmarshalling; any failure
// surfaces as an error so the caller can fall back to the regex extractor.
func (c *Client) ExtractSubscription(ctx context.Context, req llm.ExtractRequest) (llm.SubscriptionFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"subject_len", len(req.Subject),
		"body_len", len(req.Body),
	)

	schema := llm.BuildSubscriptionJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildSystemPrompt()},
			{"role": "user", "content": llm.BuildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	var raw []byte
	err := retry.Do(ctx, c.cfg.Retry, func(ctx context.Context) error {
		var status int
		var sendErr error
		raw, status, sendErr = llm.PostJSON(ctx, c.httpClient, endpoint, c.cfg.APIKey, body, c.log)
		return retry.WithStatus(sendErr, status)
	})
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SubscriptionFields{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SubscriptionFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices", "req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SubscriptionFields{}, raw, fmt.Errorf("no choices in openai response")
	}

	content := llm.StripCodeFences([]byte(cc.Choices[0].Message.Content))

	cleaned, dropped, err := llm.NormalizeAndSanitizeJSON(content, c.log)
	if err != nil {
		c.log.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SubscriptionFields{}, content, fmt.Errorf("sanitize failed: %w", err)
	}
	if len(dropped) > 0 {
		c.log.Warn("llm.extract.sanitize_applied", "req_id", rid, "dropped", dropped)
	}

	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SubscriptionFields{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.SubscriptionFields
	if err := json.Unmarshal(cleaned, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SubscriptionFields{}, cleaned, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"vendor", out.VendorName,
		"billing_cycle", out.BillingCycle,
		"renewal_date", out.RenewalDate,
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, cleaned, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
