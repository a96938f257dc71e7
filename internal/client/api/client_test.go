package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"dimec-inventory/internal/core/domain"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

// fakeSession mirrors the once-only invalidation contract of the real
// session store.
type fakeSession struct {
	mu    sync.Mutex
	valid bool
}

func (s *fakeSession) Invalidate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	was := s.valid
	s.valid = false
	return was
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func newTestClient(serverURL, token string) (*Client, *fakeSession, *atomic.Int32) {
	session := &fakeSession{valid: token != ""}
	var expirations atomic.Int32
	c := New(serverURL, staticToken(token), session, func() {
		expirations.Add(1)
	}, testLogger())
	return c, session, &expirations
}

func TestBearerAndRequestIDAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, _, _ := newTestClient(srv.URL, "abc123")
	if _, err := client.Products(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID not attached")
	}
}

func TestNoBearerWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"token":"t","type":"Bearer","userId":1,"name":"n","email":"e","role":"ADMIN"}`))
	}))
	defer srv.Close()

	client, _, _ := newTestClient(srv.URL, "")
	if _, err := client.Login(context.Background(), domain.Credentials{Email: "e", Password: "p"}); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestValidationErrorsJoinedDeterministically(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":{"quantity":"Quantity must be at least 1","name":"Name is required"}}`))
	}))
	defer srv.Close()

	client, _, _ := newTestClient(srv.URL, "tok")
	_, err := client.CreateProduct(context.Background(), domain.ProductInput{})
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Kind != domain.FailureValidation {
		t.Errorf("Kind = %v", apiErr.Kind)
	}
	// Keys sort as name < quantity regardless of response order.
	want := "Name is required, Quantity must be at least 1"
	if apiErr.Message != want {
		t.Errorf("Message = %q, want %q", apiErr.Message, want)
	}
}

func TestBadRequestWithMessageOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Insufficient stock"}`))
	}))
	defer srv.Close()

	client, _, _ := newTestClient(srv.URL, "tok")
	_, err := client.CreateIssuance(context.Background(), domain.IssuanceInput{})

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Insufficient stock" {
		t.Errorf("err = %v", err)
	}
}

func TestUnauthorizedInvalidatesExactlyOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	client, session, expirations := newTestClient(srv.URL, "stale")

	const calls = 8
	var wg sync.WaitGroup
	wg.Add(calls)
	for i := 0; i < calls; i++ {
		go func() {
			defer wg.Done()
			_, err := client.Products(context.Background())
			if !domain.IsAuthFailure(err) {
				t.Errorf("err = %v, want auth failure", err)
			}
		}()
	}
	wg.Wait()

	if got := expirations.Load(); got != 1 {
		t.Errorf("expiry callback ran %d times, want 1", got)
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.valid {
		t.Error("session still valid after 401")
	}
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product not found"}`))
	}))
	defer srv.Close()

	client, _, _ := newTestClient(srv.URL, "tok")
	_, err := client.Product(context.Background(), 99)

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Kind != domain.FailureNotFound || apiErr.Message != "Product not found" {
		t.Errorf("err = %v", apiErr)
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	client, _, _ := newTestClient(srv.URL, "tok")
	_, err := client.Products(context.Background())

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Kind != domain.FailureNetwork {
		t.Errorf("Kind = %v, want network", apiErr.Kind)
	}
}

func TestSingleAttemptNoRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	client, _, _ := newTestClient(srv.URL, "tok")
	_, err := client.Products(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1", got)
	}
}

func TestJoinFieldErrors(t *testing.T) {
	got := joinFieldErrors(map[string]string{
		"c": "third",
		"a": "first",
		"b": "second",
	})
	want := "first, second, third"
	if got != want {
		t.Errorf("joinFieldErrors = %q, want %q", got, want)
	}
}
