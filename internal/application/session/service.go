package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"locadora/internal/application/guard"
	"locadora/internal/domain/identity"
)

// API is the slice of the backend the session service depends on
type API interface {
	Login(ctx context.Context, req identity.LoginRequest) (identity.AuthResponse, error)
	Register(ctx context.Context, req identity.RegisterRequest) (identity.AuthResponse, error)
	RegisterCliente(ctx context.Context, req identity.RegisterRequest) (identity.AuthResponse, error)
	RegisterFuncionario(ctx context.Context, req identity.RegisterRequest) (identity.AuthResponse, error)
	Profile(ctx context.Context) (identity.Profile, error)
}

// Service defines the session lifecycle: it is the only writer of store
// transitions.
type Service interface {
	Login(ctx context.Context, req identity.LoginRequest) (identity.Identity, error)
	Register(ctx context.Context, req identity.RegisterRequest) (identity.Identity, error)
	RegisterCliente(ctx context.Context, req identity.RegisterRequest) (identity.Identity, error)
	RegisterFuncionario(ctx context.Context, req identity.RegisterRequest) (identity.Identity, error)
	ReloadProfile(ctx context.Context) (identity.Profile, error)
	Logout() string
	Hydrate() error
	IsAuthenticated() bool
}

type service struct {
	api   API
	store *Store
	repo  Repository
	now   func() time.Time
}

// NewService creates the session service over the backend API, the session
// store and its persistence.
func NewService(api API, store *Store, repo Repository) Service {
	return &service{api: api, store: store, repo: repo, now: time.Now}
}

func (s *service) Login(ctx context.Context, req identity.LoginRequest) (identity.Identity, error) {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return identity.Identity{}, err
	}

	id := resp.ToIdentity()
	if err := s.store.Set(id, resp.Token); err != nil {
		return identity.Identity{}, fmt.Errorf("store login session: %w", err)
	}
	return id, nil
}

func (s *service) Register(ctx context.Context, req identity.RegisterRequest) (identity.Identity, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return identity.Identity{}, err
	}

	id := resp.ToIdentity()
	if err := s.store.Set(id, resp.Token); err != nil {
		return identity.Identity{}, fmt.Errorf("store registration session: %w", err)
	}
	return id, nil
}

// RegisterCliente creates a customer account on behalf of a staff member. The
// caller's own session is left untouched; the server enforces the staff
// requirement.
func (s *service) RegisterCliente(ctx context.Context, req identity.RegisterRequest) (identity.Identity, error) {
	resp, err := s.api.RegisterCliente(ctx, req)
	if err != nil {
		return identity.Identity{}, err
	}
	return resp.ToIdentity(), nil
}

// RegisterFuncionario creates a staff account; same contract as RegisterCliente
func (s *service) RegisterFuncionario(ctx context.Context, req identity.RegisterRequest) (identity.Identity, error) {
	resp, err := s.api.RegisterFuncionario(ctx, req)
	if err != nil {
		return identity.Identity{}, err
	}
	return resp.ToIdentity(), nil
}

// ReloadProfile fetches the authenticated user's profile and replaces the
// stored identity wholesale, keeping the current token.
func (s *service) ReloadProfile(ctx context.Context) (identity.Profile, error) {
	p, err := s.api.Profile(ctx)
	if err != nil {
		return identity.Profile{}, err
	}
	if err := s.store.Set(p.ToIdentity(), s.store.Token()); err != nil {
		return identity.Profile{}, fmt.Errorf("store reloaded profile: %w", err)
	}
	return p, nil
}

// Logout clears the session unconditionally and returns the route the caller
// should navigate to. Logout never fails: a persistence error at this point
// cannot be acted on, and the in-memory session is gone either way.
func (s *service) Logout() string {
	_ = s.store.Clear()
	return guard.RouteHome
}

// Hydrate restores a persisted session at startup without contacting the
// backend. A missing pair is not an error; an expired or undecodable token
// drops the stale state.
func (s *service) Hydrate() error {
	token, id, err := s.repo.Load()
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("load persisted session: %w", err)
	}

	if identity.IsExpired(token, s.now()) {
		if err := s.repo.Clear(); err != nil {
			return fmt.Errorf("drop stale session: %w", err)
		}
		return nil
	}

	if err := s.store.Set(id, token); err != nil {
		// A persisted identity the store rejects is stale state, same as an
		// expired token: drop it and start unauthenticated.
		if errors.Is(err, identity.ErrInvalidIdentity) {
			if clearErr := s.repo.Clear(); clearErr != nil {
				return fmt.Errorf("drop invalid session: %w", clearErr)
			}
			return nil
		}
		return err
	}
	return nil
}

// IsAuthenticated reports whether a live token backs the current session
func (s *service) IsAuthenticated() bool {
	token := s.store.Token()
	return token != "" && !identity.IsExpired(token, s.now())
}
