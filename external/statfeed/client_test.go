package statfeed

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/drewburchfield/gridiron/internal/platform/logging"
	"github.com/drewburchfield/gridiron/internal/platform/resilience"
)

func newTestClient(url string, retries int) *Client {
	return NewClient(ClientConfig{
		URL:            url,
		Timeout:        2 * time.Second,
		MaxRetries:     retries,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, logging.NewNop())
}

func TestFetchDocument(t *testing.T) {
	t.Parallel()

	const doc = `<fbgame><venue/><team vh="V"/><team vh="H"/></fbgame>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	body, err := client.FetchDocument(t.Context())
	if err != nil {
		t.Fatalf("FetchDocument: %v", err)
	}
	if string(body) != doc {
		t.Fatalf("body = %q, want document", body)
	}
}

func TestFetchDocument_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "read error", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`<fbgame/>`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 3)
	if _, err := client.FetchDocument(t.Context()); err != nil {
		t.Fatalf("FetchDocument: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("server calls = %d, want 3", got)
	}
}

func TestFetchDocument_NoRetryOnClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 3)
	if _, err := client.FetchDocument(t.Context()); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("server calls = %d, want 1 (no retry)", got)
	}
}

func TestFetchDocument_ExhaustedRetries(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "read error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 1)
	if _, err := client.FetchDocument(t.Context()); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
}

func TestFetchDocument_URLNotConfigured(t *testing.T) {
	t.Parallel()

	client := newTestClient("", 0)
	if _, err := client.FetchDocument(t.Context()); err == nil {
		t.Fatal("expected error for missing URL")
	}
}
