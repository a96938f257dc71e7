// Package session holds the client's authenticated identity and
// persists it across restarts.
package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"dimec-inventory/internal/core/domain"
)

// fileShape is the on-disk layout. The token lives next to the user
// snapshot so a restart resumes the same session without a new login.
type fileShape struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

type userPart struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Store owns the current session. All access goes through the mutex;
// the zero value of current means logged out.
type Store struct {
	mu      sync.Mutex
	path    string
	current *domain.Session
	logger  *slog.Logger
}

// NewStore creates a store persisting to the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Restore loads a previously persisted session. A missing or malformed
// file yields the logged-out state, never an error surfaced to the
// user; a corrupt file is removed so it cannot shadow future logins.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	// Both halves must be present: a token without its user snapshot
	// would restore an identity-less session.
	var f fileShape
	if err := json.Unmarshal(data, &f); err != nil || f.Token == "" || f.User == (userPart{}) {
		s.logger.Warn("discarding malformed session file", "path", s.path)
		os.Remove(s.path)
		return
	}

	s.current = &domain.Session{
		UserID: f.User.UserID,
		Name:   f.User.Name,
		Email:  f.User.Email,
		Role:   domain.Role(f.User.Role),
		Token:  f.Token,
	}
}

// Login installs a fresh session from a successful login response and
// persists it.
func (s *Store) Login(result domain.LoginResult) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &domain.Session{
		UserID: result.UserID,
		Name:   result.Name,
		Email:  result.Email,
		Role:   domain.Role(result.Role),
		Token:  result.Token,
	}
	s.persistLocked()

	copy := *s.current
	return &copy
}

// Logout clears the session and removes the persisted file. Calling it
// while already logged out is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove session file", "error", err)
	}
}

// Invalidate drops the session in response to a rejected token. It
// reports whether this call performed the authenticated-to-logged-out
// transition, so that concurrent 401s produce exactly one reaction.
func (s *Store) Invalidate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false
	}
	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove session file", "error", err)
	}
	return true
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Store) Current() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	copy := *s.current
	return &copy
}

// Token implements the token source used by the HTTP client. Empty
// means no Authorization header is attached.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// persistLocked writes the session file with owner-only permissions.
// Callers hold s.mu.
func (s *Store) persistLocked() {
	f := fileShape{
		Token: s.current.Token,
		User: userPart{
			UserID: s.current.UserID,
			Name:   s.current.Name,
			Email:  s.current.Email,
			Role:   string(s.current.Role),
		},
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode session", "error", err)
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		os.MkdirAll(dir, 0o700)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
	}
}
