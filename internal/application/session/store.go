package session

import (
	"errors"
	"fmt"
	"sync"

	"locadora/internal/domain/identity"
)

// ErrSessionNotFound is returned by a Repository when no session is persisted
var ErrSessionNotFound = errors.New("session not found")

// Repository persists the token and identity pair between runs. The pair is
// written and cleared as a unit: the client never holds one without the other.
type Repository interface {
	Save(token string, id identity.Identity) error
	Load() (string, identity.Identity, error)
	Clear() error
}

type subscriber struct {
	id int
	fn func(*identity.Identity)
}

// Store is the single holder of the current authenticated identity. It is
// constructed once in main and handed to the guards, the request transport
// and the session service; tests build isolated instances.
type Store struct {
	mu      sync.Mutex
	repo    Repository
	current *identity.Identity
	token   string
	subs    []subscriber
	nextID  int
}

// NewStore creates a session store over the given persistence
func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Current returns a copy of the current identity, or nil when no one is
// authenticated. Never blocks on I/O.
func (s *Store) Current() *identity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Token returns the current raw bearer token, or the empty string
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Set replaces the current identity and token. The pair is persisted before
// any subscriber is notified, so a subscriber reading storage from its
// callback always sees the value it was notified about. A rejected identity
// leaves both the store and storage untouched.
//
// Set and Clear are serialized: emissions arrive in call order. Subscriber
// callbacks run inside that critical section and must not call back into the
// store.
func (s *Store) Set(id identity.Identity, token string) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(token, id); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.current = &id
	s.token = token
	s.emit()
	return nil
}

// Clear removes the identity and token from the store and from storage, then
// notifies subscribers with nil. Clearing an already-empty store is a no-op
// transition but still emits, keeping subscriber sequences aligned with the
// calls that produced them.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.current = nil
	s.token = ""
	s.emit()
	return nil
}

// Subscribe registers fn to observe the session. It is invoked immediately
// with the value held at subscription time, then once per later transition,
// in the order the transitions occurred, until the returned cancel function
// is called. Cancelling affects no other subscriber and no store state.
func (s *Store) Subscribe(fn func(*identity.Identity)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	fn(s.snapshot())
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// snapshot copies the current identity; callers must hold mu
func (s *Store) snapshot() *identity.Identity {
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// emit notifies every subscriber in registration order; callers must hold mu
func (s *Store) emit() {
	for _, sub := range s.subs {
		sub.fn(s.snapshot())
	}
}
