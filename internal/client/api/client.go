// Package api is the typed HTTP client for the inventory service. It
// attaches the bearer token, classifies failures, and reacts to
// rejected tokens exactly once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"dimec-inventory/internal/core/domain"
)

// TokenSource supplies the current bearer token. An empty string means
// the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Invalidator drops the session after the server rejects its token.
// It reports whether this call performed the transition, so that
// several concurrent 401s trigger the expiry reaction only once.
type Invalidator interface {
	Invalidate() bool
}

// Client wraps net/http with the service's wire contract. Every call
// is a single attempt; failures are never retried here.
type Client struct {
	baseURL     string
	http        *http.Client
	tokens      TokenSource
	invalidator Invalidator
	onExpired   func()
	logger      *slog.Logger
}

// New creates a client for the given base URL (including the /api
// prefix). onExpired runs at most once per session, when the first 401
// invalidates it.
func New(baseURL string, tokens TokenSource, invalidator Invalidator, onExpired func(), logger *slog.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: 15 * time.Second},
		tokens:      tokens,
		invalidator: invalidator,
		onExpired:   onExpired,
		logger:      logger,
	}
}

// do performs one request. body is JSON-encoded when non-nil; the
// response body is decoded into out when non-nil and the status is 2xx.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all. Transient and permanent causes are
		// indistinguishable here, so no retry.
		c.logger.Warn("request failed", "method", method, "path", path, "error", err)
		return &domain.APIError{Kind: domain.FailureNetwork, Message: "Cannot reach the server"}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &domain.APIError{Kind: domain.FailureServer, Status: resp.StatusCode,
				Message: "Malformed server response"}
		}
		return nil
	}

	return c.classify(resp)
}

// classify maps an error response to an APIError per the wire
// contract: 400 carries {"errors": {...}} or {"message"}, everything
// else carries {"message"}.
func (c *Client) classify(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if c.invalidator.Invalidate() && c.onExpired != nil {
			c.onExpired()
		}
		return &domain.APIError{Kind: domain.FailureAuth, Status: resp.StatusCode,
			Message: extractMessage(data, "Your session has expired. Please log in again.")}

	case http.StatusBadRequest:
		var v struct {
			Errors  map[string]string `json:"errors"`
			Message string            `json:"message"`
		}
		json.Unmarshal(data, &v)
		msg := v.Message
		if len(v.Errors) > 0 {
			msg = joinFieldErrors(v.Errors)
		}
		if msg == "" {
			msg = "Invalid request"
		}
		return &domain.APIError{Kind: domain.FailureValidation, Status: resp.StatusCode, Message: msg}

	case http.StatusNotFound:
		return &domain.APIError{Kind: domain.FailureNotFound, Status: resp.StatusCode,
			Message: extractMessage(data, "Not found")}

	default:
		return &domain.APIError{Kind: domain.FailureServer, Status: resp.StatusCode,
			Message: extractMessage(data, "Request failed")}
	}
}

// joinFieldErrors flattens a field->message map deterministically:
// keys sorted, messages joined with ", ".
func joinFieldErrors(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, errs[k])
	}
	return strings.Join(msgs, ", ")
}

func extractMessage(data []byte, fallback string) string {
	var v struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &v); err == nil && v.Message != "" {
		return v.Message
	}
	return fallback
}
