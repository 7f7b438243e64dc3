// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skillshare-academy/skillshare/api"
)

// Sentinel errors for the outcomes callers branch on with inline UI
// messages. Everything else (validation errors, transport failures)
// passes through wrapped so api.IsValidation and api.ErrorMessage
// still work on it.
var (
	// ErrInvalidCredentials is returned by Login on a 401.
	ErrInvalidCredentials = errors.New("session: invalid email or password")

	// ErrAccountExists is returned by Register on a 400.
	ErrAccountExists = errors.New("session: an account with this email already exists")
)

// Config holds the dependencies for creating a Store.
type Config struct {
	// Client is the backend API client. Required.
	Client *api.Client
	// TokenPath is where the token is persisted. If empty,
	// DefaultTokenPath() is used.
	TokenPath string
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Store is the single source of truth for authentication state. It
// has exactly one writer role (its own methods) and many readers; all
// state transitions happen under one mutex and watchers are notified
// after each transition.
type Store struct {
	client    *api.Client
	tokenPath string
	logger    *slog.Logger

	mu      sync.Mutex
	token   string
	user    *api.User
	loading bool

	// epoch increments on every authentication transition (initialize,
	// login, register auto-auth, logout). A profile fetch dispatched
	// under an older epoch must not apply: the session it belongs to
	// no longer exists. Within one epoch, profile responses apply in
	// arrival order — last response wins.
	epoch uint64

	initialized bool

	watchers      map[int]func()
	nextWatcherID int
}

// New creates a Store. The store starts in the loading state; callers
// must run Initialize once before consulting Authenticated.
func New(config Config) (*Store, error) {
	if config.Client == nil {
		return nil, fmt.Errorf("session: Client is required")
	}

	tokenPath := config.TokenPath
	if tokenPath == "" {
		tokenPath = DefaultTokenPath()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		client:    config.Client,
		tokenPath: tokenPath,
		logger:    logger,
		loading:   true,
		watchers:  make(map[int]func()),
	}, nil
}

// Initialize rehydrates the session from the persisted token. It runs
// once per process: a second call is a no-op. Whatever happens — no
// token, a valid token, a rejected token, an unreachable backend —
// Initialize settles loading to false exactly once before returning.
//
// A token the backend rejects (any non-2xx on the profile fetch) or
// that cannot be verified (network failure) is treated as invalid:
// both the persisted and the in-memory token are cleared together and
// the session starts unauthenticated.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true
	s.mu.Unlock()

	defer s.settle()

	token, err := loadToken(s.tokenPath)
	if err != nil {
		// Unreadable session file: start unauthenticated rather than
		// wedge the whole application.
		s.logger.Warn("session file unreadable, starting unauthenticated", "error", err)
		return nil
	}
	if token == "" {
		return nil
	}

	user, err := s.client.Me(ctx, token)
	if err != nil {
		s.logger.Info("persisted token rejected, clearing session", "error", err)
		if clearErr := clearToken(s.tokenPath); clearErr != nil {
			s.logger.Warn("clearing persisted token failed", "error", clearErr)
		}
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.epoch++
	s.mu.Unlock()

	s.logger.Info("session rehydrated", "email", user.Email)
	return nil
}

// settle flips loading to false and notifies watchers. Runs exactly
// once per store lifetime because Initialize runs exactly once.
func (s *Store) settle() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// Login authenticates and, on success, stores the token (memory and
// session file) and the user profile together. On failure nothing is
// mutated: a 401 returns ErrInvalidCredentials, a 422 passes the
// backend's validation message through, and a network failure passes
// the transport error through.
func (s *Store) Login(ctx context.Context, email, password string) error {
	response, err := s.client.Login(ctx, email, password)
	if err != nil {
		if api.IsUnauthorized(err) {
			return ErrInvalidCredentials
		}
		return err
	}

	s.adopt(response.Token, &response.User)
	return nil
}

// Register creates an account. Policy: when the backend issues a
// token in the 201 response, the store auto-authenticates exactly as
// if the user had logged in, and Register returns true. When the
// backend issues no token, the store is left untouched and Register
// returns false — the caller routes the user to the login flow.
// A 400 returns ErrAccountExists; a 422 passes the backend's
// validation message through.
func (s *Store) Register(ctx context.Context, name, email, password string) (bool, error) {
	response, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		if api.IsDuplicate(err) {
			return false, ErrAccountExists
		}
		return false, err
	}

	if response.Token == "" {
		return false, nil
	}

	s.adopt(response.Token, &response.User)
	return true, nil
}

// adopt installs a fresh token and profile as one transition and
// persists the token. A persistence failure is logged but does not
// fail the login — the session works for this process and the user
// just logs in again next time.
func (s *Store) adopt(token string, user *api.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.epoch++
	s.mu.Unlock()

	if err := saveToken(s.tokenPath, token); err != nil {
		s.logger.Warn("persisting token failed", "error", err)
	}
	s.notify()
}

// Logout notifies the backend best-effort, then unconditionally
// clears the token, the profile, and the session file. A backend or
// file failure never leaves the process logged in.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token != "" {
		if err := s.client.Logout(ctx, token); err != nil {
			s.logger.Warn("backend logout failed, clearing local session anyway", "error", err)
		}
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.epoch++
	s.mu.Unlock()

	if err := clearToken(s.tokenPath); err != nil {
		s.logger.Warn("clearing persisted token failed", "error", err)
	}
	s.notify()
}

// RefreshUser re-fetches the profile with the existing token. On
// success the profile is replaced — unless the session changed while
// the request was in flight, in which case the stale response is
// discarded. On failure the session is left untouched (a refresh
// failure is soft, not a re-authentication event) and the error is
// returned for the caller's display logic.
//
// Safe to call repeatedly and concurrently: within one session,
// whichever response arrives last wins.
func (s *Store) RefreshUser(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	dispatchEpoch := s.epoch
	s.mu.Unlock()

	if token == "" {
		return fmt.Errorf("session: not authenticated")
	}

	user, err := s.client.Me(ctx, token)
	if err != nil {
		s.logger.Warn("profile refresh failed", "error", err)
		return err
	}

	s.mu.Lock()
	if s.epoch != dispatchEpoch {
		// Logged out or re-authenticated while this request was in
		// flight. Dropping the response keeps the invariant that the
		// profile always belongs to the current token.
		s.mu.Unlock()
		s.logger.Debug("discarding stale profile response")
		return nil
	}
	s.user = user
	s.mu.Unlock()

	s.notify()
	return nil
}

// Token returns the current token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the current profile, or nil. Callers must treat the
// result as read-only.
func (s *Store) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Authenticated reports whether a token is present. Derived, never
// stored.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Loading reports whether the initial rehydration is still running.
// True only between New and the end of Initialize.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Watch registers a callback invoked after every state transition
// (initialize settle, login, register auto-auth, logout, profile
// refresh). The callback runs outside the store lock and must not
// block for long. The returned cancel function unregisters it.
func (s *Store) Watch(callback func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextWatcherID
	s.nextWatcherID++
	s.watchers[id] = callback
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

// notify invokes all watchers outside the lock.
func (s *Store) notify() {
	s.mu.Lock()
	callbacks := make([]func(), 0, len(s.watchers))
	for _, callback := range s.watchers {
		callbacks = append(callbacks, callback)
	}
	s.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}
