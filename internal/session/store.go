package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"botilleria/internal/domain"
)

// Slot is the durable storage collaborator holding one visitor's
// envelope. Load returns domain.ErrNotFound when nothing was stored.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}

// IdentityEvent is a pushed notification from the auth backend. A nil
// or email-less User means signed out.
type IdentityEvent struct {
	User *domain.UserSession
}

// Store holds the visitor's authentication session. State is restored
// from the slot at construction and written back after every
// mutation. A missing, unreadable or too-new envelope silently
// degrades to the default signed-out state.
type Store struct {
	mu     sync.Mutex
	state  domain.SessionState
	slot   Slot
	logger *log.Logger
	subs   []func(domain.SessionState)
}

func NewStore(ctx context.Context, slot Slot, logger *log.Logger) *Store {
	s := &Store{slot: slot, logger: logger}
	raw, err := slot.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// First visit, defaults stand.
	case err != nil:
		logger.Printf("load session envelope: %v (using defaults)", err)
	default:
		state, err := DecodeEnvelope(raw)
		if err != nil {
			logger.Printf("decode session envelope: %v (using defaults)", err)
			break
		}
		// Re-establish the invariant in case of hand-edited storage.
		state.IsAuthenticated = state.User != nil
		s.state = state
	}
	return s
}

// Subscribe registers fn to be called with the new state after every
// mutation. Callbacks run outside the store lock.
func (s *Store) Subscribe(fn func(domain.SessionState)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// SetUser replaces the signed-in user. IsAuthenticated tracks whether
// user is non-nil; the initialization flag is untouched.
func (s *Store) SetUser(ctx context.Context, user *domain.UserSession) {
	s.mu.Lock()
	s.state.User = user
	s.state.IsAuthenticated = user != nil
	s.finish(ctx)
}

// Logout clears the user. The initialization flag is untouched: once
// the first identity check completed, it stays completed.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.finish(ctx)
}

// SetAuthInitialized marks the first identity check as done.
// Idempotent; it never flips back to false.
func (s *Store) SetAuthInitialized(ctx context.Context) {
	s.mu.Lock()
	s.state.IsAuthInitialized = true
	s.finish(ctx)
}

// ApplyIdentity is the single reducer for pushed identity events.
// Whenever an event arrives, before, during or after any user action,
// it is authoritative: a user with an email signs the session in,
// anything else signs it out, and the initialization flag is set
// afterwards. Applying the same event twice is harmless.
func (s *Store) ApplyIdentity(ctx context.Context, ev IdentityEvent) {
	if ev.User != nil && ev.User.Email != "" {
		s.SetUser(ctx, ev.User)
	} else {
		s.Logout(ctx)
	}
	s.SetAuthInitialized(ctx)
}

// State returns the current session state. The returned User is a
// copy.
func (s *Store) State() domain.SessionState {
	s.mu.Lock()
	state := s.stateLocked()
	s.mu.Unlock()
	return state
}

func (s *Store) stateLocked() domain.SessionState {
	state := s.state
	if state.User != nil {
		u := *state.User
		state.User = &u
	}
	return state
}

// finish persists the state, releases the lock and notifies
// subscribers. Callers must hold s.mu. A persist failure is logged and
// the in-memory state stands; the next mutation retries the write.
func (s *Store) finish(ctx context.Context) {
	state := s.stateLocked()
	subs := make([]func(domain.SessionState), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	payload, err := EncodeEnvelope(state)
	if err != nil {
		s.logger.Printf("encode session envelope: %v", err)
	} else if err := s.slot.Save(ctx, payload); err != nil {
		s.logger.Printf("persist session envelope: %v", err)
	}

	for _, fn := range subs {
		fn(state)
	}
}
