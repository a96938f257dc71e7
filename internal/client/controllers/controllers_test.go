package controllers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"dimec-inventory/internal/client/api"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

// alwaysConfirm approves every destructive prompt.
type alwaysConfirm struct{}

func (alwaysConfirm) Confirm(string) bool { return true }

// neverConfirm declines every destructive prompt.
type neverConfirm struct{}

func (neverConfirm) Confirm(string) bool { return false }

type fixedToken struct{}

func (fixedToken) Token() string { return "test-token" }

type noopSession struct{}

func (noopSession) Invalidate() bool { return false }

// newAPIClient wires an api.Client against a test server.
func newAPIClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return api.New(srv.URL, fixedToken{}, noopSession{}, nil, logger)
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func failingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Internal server error"}`))
	}
}
