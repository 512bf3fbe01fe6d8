package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostJSON(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	raw, status, err := PostJSON(context.Background(), srv.Client(), srv.URL, "sk-test", map[string]any{"model": "m"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if status != 200 {
		t.Errorf("status = %d", status)
	}
	if string(raw) != `{"ok":true}` {
		t.Errorf("raw = %s", raw)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if string(gotBody) != `{"model":"m"}` {
		t.Errorf("request body = %s", gotBody)
	}
}

func TestPostJSONNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limit"}`))
	}))
	defer srv.Close()

	raw, status, err := PostJSON(context.Background(), srv.Client(), srv.URL, "", nil, nil)
	if err == nil {
		t.Fatal("expected error for 429")
	}
	if status != 429 {
		t.Errorf("status = %d, want 429 for retry classification", status)
	}
	if string(raw) != `{"error":"rate limit"}` {
		t.Errorf("error body must be returned: %s", raw)
	}
}

func TestPostJSONNoBearerHeader(t *testing.T) {
	var gotAuth string
	var seen bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, seen = r.Header["Authorization"]
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, _, err := PostJSON(context.Background(), srv.Client(), srv.URL, "", nil, nil); err != nil {
		t.Fatal(err)
	}
	if seen || gotAuth != "" {
		t.Errorf("empty bearer must not set an Authorization header, got %q", gotAuth)
	}
}
