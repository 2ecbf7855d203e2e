package openai_provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateReturnsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("auth header = %q", got)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hello there"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewClient("key", "gpt-4o-mini", 0.2, 256, 2*time.Second)
	c.baseURL = srv.URL

	res, err := c.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Text != "hello there" || res.Blocked {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGenerateContentFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":""},"finish_reason":"content_filter"}]}`))
	}))
	defer srv.Close()

	c := NewClient("key", "gpt-4o-mini", 0.2, 256, 2*time.Second)
	c.baseURL = srv.URL

	res, err := c.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !res.Blocked || res.Text != "" {
		t.Fatalf("expected blocked result, got %+v", res)
	}
}

func TestGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("key", "gpt-4o-mini", 0.2, 256, 2*time.Second)
	c.baseURL = srv.URL

	if _, err := c.Generate(context.Background(), "hi"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}
