// Package controllers holds the per-screen state machines of the
// terminal client. Each controller owns its data, tracks a
// load-lifecycle state, and serializes fetches so a stale response can
// never overwrite a newer one.
package controllers

import "errors"

// State is the load lifecycle of a screen.
type State int

const (
	// Idle means nothing has been fetched yet.
	Idle State = iota
	// Loading means a fetch is in flight.
	Loading
	// Loaded means the last fetch succeeded and data is current.
	Loaded
	// LoadFailed means the last fetch failed; Err holds the message.
	LoadFailed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load_failed"
	}
	return "unknown"
}

// Notifier receives one-line user-facing notifications. Controllers
// emit at most one notification per operation.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ErrNothingToExport is returned by report exports when the loaded
// data set is empty.
var ErrNothingToExport = errors.New("nothing to export")
