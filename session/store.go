// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
)

var ErrIncompleteSession = errors.New("login requires both token and identity")

// Session is an immutable snapshot of the store. Identity and Token are
// always both present or both absent; IsAuthenticated derives from them and
// is never stored independently.
type Session struct {
	Identity  *models.Identity
	Token     string
	IsLoading bool
}

// IsAuthenticated reports whether the snapshot holds a full identity+token
// pair.
func (s Session) IsAuthenticated() bool {
	return s.Identity != nil && s.Token != ""
}

// Persister is the durable backing for the session. Load returns
// ("", nil, nil) when nothing is persisted.
type Persister interface {
	Load() (token string, identity *models.Identity, err error)
	Save(token string, identity *models.Identity) error
	Clear() error
}

// Store is the single source of truth for "who is logged in". It is
// process-wide: one operator per console. Only Restore, Login and Logout
// mutate it, each atomically.
type Store struct {
	mu        sync.Mutex
	identity  *models.Identity
	token     string
	loading   bool
	restored  bool
	persister Persister
	onLogout  func()
}

// NewStore creates a store in the Resolving state. onLogout is the
// redirect-to-login signal; it fires at most once per Logout call and may
// be nil.
func NewStore(p Persister, onLogout func()) *Store {
	return &Store{
		loading:   true,
		persister: p,
		onLogout:  onLogout,
	}
}

// Restore loads the persisted session. Any persistence failure, including
// a malformed identity, degrades to "not authenticated" and discards the
// stored values; startup is never blocked by a broken session row. The
// loading flag is cleared exactly once, on the first call.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return
	}
	s.restored = true
	s.loading = false

	token, identity, err := s.persister.Load()
	if err != nil {
		slog.Warn("discarding unreadable persisted session", "error", err)
		if clearErr := s.persister.Clear(); clearErr != nil {
			slog.Warn("failed to clear persisted session", "error", clearErr)
		}
		return
	}
	if token == "" && identity == nil {
		return
	}
	if token == "" || identity == nil {
		// Half a pair is as unusable as a corrupt row; leaving it behind
		// would re-trip this path on every start
		slog.Warn("discarding partial persisted session")
		if clearErr := s.persister.Clear(); clearErr != nil {
			slog.Warn("failed to clear persisted session", "error", clearErr)
		}
		return
	}

	s.token = token
	s.identity = identity
	slog.Info("session restored", "user", identity.Email)
}

// Login sets the session to authenticated atomically and persists it.
// The in-memory state is updated even when persistence fails; the error is
// returned so the caller knows persistence was best-effort.
func (s *Store) Login(token string, identity *models.Identity) error {
	if token == "" || identity == nil {
		return ErrIncompleteSession
	}

	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.mu.Unlock()

	if err := s.persister.Save(token, identity); err != nil {
		return fmt.Errorf("session active but not persisted: %w", err)
	}
	return nil
}

// Logout clears the session atomically, erases the persisted values and
// fires the redirect signal. A late-arriving API completion after this
// point cannot re-authenticate: nothing but Login writes the pair back.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.identity = nil
	signal := s.onLogout
	s.mu.Unlock()

	err := s.persister.Clear()

	if signal != nil {
		signal()
	}

	if err != nil {
		return fmt.Errorf("session cleared but persisted copy remains: %w", err)
	}
	return nil
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Session{Identity: s.identity, Token: s.token, IsLoading: s.loading}
}

// IsAuthenticated is derived, never stored.
func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated()
}

// Token returns the current bearer token, "" while logged out. Shaped to
// plug straight into apiclient.New.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
