package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInsufficientStock  = errors.New("insufficient stock")
)

// FailureKind classifies a failed API call on the client side.
type FailureKind int

const (
	// FailureAuth is a 401: the session is no longer valid.
	FailureAuth FailureKind = iota
	// FailureValidation is a 400 carrying a field->message map.
	FailureValidation
	// FailureNotFound is a 404.
	FailureNotFound
	// FailureServer is any other 4xx/5xx.
	FailureServer
	// FailureNetwork means no response was received at all. The client
	// cannot tell transient from permanent, so it is handled like a
	// server failure and never retried.
	FailureNetwork
)

func (k FailureKind) String() string {
	switch k {
	case FailureAuth:
		return "auth"
	case FailureValidation:
		return "validation"
	case FailureNotFound:
		return "not_found"
	case FailureServer:
		return "server"
	case FailureNetwork:
		return "network"
	}
	return "unknown"
}

// APIError is the failure handed to controllers by the HTTP client
// wrapper. Message is always human-readable; for validation failures
// it is the joined field messages.
type APIError struct {
	Kind    FailureKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsAuthFailure reports whether err is a 401-class APIError.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == FailureAuth
}

// FailureMessage extracts the user-facing message from an API call
// error, falling back to the plain error text.
func FailureMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
