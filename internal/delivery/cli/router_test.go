package cli

import (
	"context"
	"testing"

	"locadora/internal/application/guard"
	"locadora/internal/application/session"
	"locadora/internal/domain/identity"
)

type memRepo struct {
	token   string
	id      identity.Identity
	present bool
}

func (m *memRepo) Save(token string, id identity.Identity) error {
	m.token, m.id, m.present = token, id, true
	return nil
}

func (m *memRepo) Load() (string, identity.Identity, error) {
	if !m.present {
		return "", identity.Identity{}, session.ErrSessionNotFound
	}
	return m.token, m.id, nil
}

func (m *memRepo) Clear() error {
	m.present = false
	return nil
}

func testRouter(store *session.Store) (*Router, *string) {
	var ran string
	record := func(name string) Screen {
		return func(ctx context.Context) error {
			ran = name
			return nil
		}
	}

	r := NewRouter(store)
	r.Handle(guard.RouteHome, guard.CustomerArea, record("home"))
	r.Handle(guard.RoutePerfil, guard.CustomerArea, record("perfil"))
	r.Handle(guard.RouteAdminHome, guard.StaffOnly, record("admin"))
	return r, &ran
}

func TestRouterAllowsCustomer(t *testing.T) {
	t.Parallel()
	store := session.NewStore(&memRepo{})
	store.Set(identity.Identity{ID: 1, Nome: "Ana"}, "tok")
	router, ran := testRouter(store)

	if err := router.Navigate(context.Background(), guard.RoutePerfil); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if *ran != "perfil" {
		t.Errorf("screen: got %q, want %q", *ran, "perfil")
	}
}

func TestRouterRedirectsCustomerFromAdmin(t *testing.T) {
	t.Parallel()
	store := session.NewStore(&memRepo{})
	store.Set(identity.Identity{ID: 1, Nome: "Ana"}, "tok")
	router, ran := testRouter(store)

	if err := router.Navigate(context.Background(), guard.RouteAdminHome); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if *ran != "home" {
		t.Errorf("denied admin navigation landed on %q, want %q", *ran, "home")
	}
}

func TestRouterRedirectsStaffFromCustomerArea(t *testing.T) {
	t.Parallel()
	store := session.NewStore(&memRepo{})
	store.Set(identity.Identity{ID: 2, Nome: "Bia", IsFuncionario: true}, "tok")
	router, ran := testRouter(store)

	if err := router.Navigate(context.Background(), guard.RoutePerfil); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if *ran != "admin" {
		t.Errorf("staff navigation landed on %q, want %q", *ran, "admin")
	}
}

func TestRouterAnonymousReachesPublicRoutes(t *testing.T) {
	t.Parallel()
	store := session.NewStore(&memRepo{})
	router, ran := testRouter(store)

	if err := router.Navigate(context.Background(), guard.RouteHome); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if *ran != "home" {
		t.Errorf("anonymous home: got %q", *ran)
	}

	if err := router.Navigate(context.Background(), guard.RouteAdminHome); err != nil {
		t.Fatalf("Navigate admin: %v", err)
	}
	if *ran != "home" {
		t.Errorf("anonymous admin navigation landed on %q, want %q", *ran, "home")
	}
}

func TestRouterUnknownRouteFallsThroughToHome(t *testing.T) {
	t.Parallel()
	store := session.NewStore(&memRepo{})
	router, ran := testRouter(store)

	if err := router.Navigate(context.Background(), "nope/nothing"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if *ran != "home" {
		t.Errorf("unknown route landed on %q, want %q", *ran, "home")
	}
}
