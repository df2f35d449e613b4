// Package session owns the authenticated identity and is the sole
// authorization source of truth for the portal. The lifecycle is
// Unknown → (restore) → Authenticated | Anonymous; once Anonymous, only a
// fresh login or registration success transitions back.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bpohire/portal/internal/credstore"
	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/repository"
)

type State string

const (
	// StateUnknown holds until Restore has completed. Route decisions must
	// not be made while in it.
	StateUnknown       State = "UNKNOWN"
	StateAuthenticated State = "AUTHENTICATED"
	StateAnonymous     State = "ANONYMOUS"
)

// Snapshot is a point-in-time read of the session for route decisions.
type Snapshot struct {
	State    State
	Identity *domain.Identity
}

// Result is the caller-facing outcome of login/register: either OK, or a
// human-readable message with the prior state left untouched.
type Result struct {
	OK      bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type Store struct {
	mu       sync.Mutex
	state    State
	identity *domain.Identity

	repo  *repository.Repository
	creds credstore.Store
}

func NewStore(repo *repository.Repository, creds credstore.Store) *Store {
	return &Store{
		state: StateUnknown,
		repo:  repo,
		creds: creds,
	}
}

// Restore is the single blocking bootstrap step: it resolves a persisted
// credential into Authenticated or Anonymous before any route decision is
// made. Any verification failure, network or rejection, discards the token.
func (s *Store) Restore(ctx context.Context) {
	token, err := s.creds.Token()
	if err != nil {
		slog.Error("failed to read persisted credential", "error", err)
		s.setAnonymous()
		return
	}
	if token == "" {
		s.setAnonymous()
		return
	}

	identity, err := s.repo.Verify(ctx)
	if err != nil {
		// A 401 already cleared the store via the transport policy; clear
		// again anyway so transport failures end up in the same place.
		slog.Info("stored credential rejected, starting anonymous", "error", err)
		if clearErr := s.creds.Clear(); clearErr != nil {
			slog.Error("failed to discard credential", "error", clearErr)
		}
		s.setAnonymous()
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.identity = identity
	s.mu.Unlock()
}

func (s *Store) Login(ctx context.Context, email, password string) Result {
	resp, err := s.repo.Login(ctx, email, password)
	if err != nil {
		return failure(err, "Login failed")
	}
	return s.adopt(resp, "Login failed")
}

func (s *Store) Register(ctx context.Context, payload repository.RegisterPayload, kind domain.AccountKind) Result {
	if !kind.Valid() {
		return Result{OK: false, Message: "unknown account kind"}
	}
	resp, err := s.repo.Register(ctx, payload, kind)
	if err != nil {
		return failure(err, "Registration failed")
	}
	return s.adopt(resp, "Registration failed")
}

// adopt persists the credential and installs the identity as one step, so a
// failed persist never leaves a half-authenticated session.
func (s *Store) adopt(resp *repository.AuthResponse, fallback string) Result {
	if resp.Token == "" || !resp.Role.Valid() {
		return Result{OK: false, Message: fallback}
	}

	identity := resp.Identity
	if err := s.creds.SetToken(resp.Token); err != nil {
		slog.Error("failed to persist credential", "error", err)
		return Result{OK: false, Message: fallback}
	}
	if err := s.creds.SetSnapshot(&identity); err != nil {
		// The snapshot is a display hint; losing it is not a login failure.
		slog.Warn("failed to persist identity snapshot", "error", err)
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.identity = &identity
	s.mu.Unlock()

	return Result{OK: true}
}

// InjectIdentity installs an already-known identity, e.g. after a
// registration redirect where the payload is in hand. Unlike the usual
// login path it skips the network, but it still enforces the identity
// invariants instead of accepting an arbitrary object.
func (s *Store) InjectIdentity(identity domain.Identity, token string) error {
	if !identity.Role.Valid() {
		return fmt.Errorf("inject identity: invalid role %q", identity.Role)
	}
	if token == "" {
		return errors.New("inject identity: empty credential token")
	}

	if err := s.creds.SetToken(token); err != nil {
		return fmt.Errorf("inject identity: %w", err)
	}
	if err := s.creds.SetSnapshot(&identity); err != nil {
		slog.Warn("failed to persist identity snapshot", "error", err)
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.identity = &identity
	s.mu.Unlock()

	return nil
}

// Logout clears the persisted credential and the in-memory identity
// unconditionally. It never fails: a storage error is logged, the session
// still goes Anonymous.
func (s *Store) Logout() {
	if err := s.creds.Clear(); err != nil {
		slog.Error("failed to clear persisted credential", "error", err)
	}
	s.setAnonymous()
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.identity = nil
	s.mu.Unlock()
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot copies the current state and identity so callers never observe a
// transition mid-read.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{State: s.state}
	if s.identity != nil {
		identity := *s.identity
		snap.Identity = &identity
	}
	return snap
}

func (s *Store) Identity() *domain.Identity {
	return s.Snapshot().Identity
}

// The predicates are recomputed from the live identity on every call, never
// cached.

func (s *Store) IsAuthenticated() bool { return s.Snapshot().Identity != nil }

func (s *Store) IsCandidate() bool { return s.hasRole(domain.RoleCandidate) }
func (s *Store) IsEmployer() bool  { return s.hasRole(domain.RoleEmployer) }
func (s *Store) IsAdmin() bool     { return s.hasRole(domain.RoleAdmin) }

func (s *Store) hasRole(role domain.Role) bool {
	identity := s.Snapshot().Identity
	return identity != nil && identity.Role == role
}

// ExpiryHint reports when the stored credential is expected to lapse, when
// the token carries that information. Display only.
func (s *Store) ExpiryHint() (time.Time, bool) {
	token, err := s.creds.Token()
	if err != nil || token == "" {
		return time.Time{}, false
	}
	return credstore.ExpiryHint(token)
}

// failure maps an operation error to the caller-facing shape: the backend's
// message when it sent one, the generic fallback otherwise. Transport and
// rejection failures surface identically; the distinction stays in the logs.
func failure(err error, fallback string) Result {
	apiErr := &domain.APIError{}
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		slog.Info("backend rejected credentials", "status", apiErr.Status)
		return Result{OK: false, Message: apiErr.Message}
	}
	slog.Warn("auth operation failed", "error", err)
	return Result{OK: false, Message: fallback}
}
