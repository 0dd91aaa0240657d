package cli

import (
	"context"
	"fmt"

	"locadora/internal/application/guard"
	"locadora/internal/application/session"
	"locadora/internal/domain/identity"
)

// Screen renders one route
type Screen func(ctx context.Context) error

// Guard is a navigation guard as seen by the router
type Guard func(current *identity.Identity) guard.Decision

type route struct {
	guard  Guard
	screen Screen
}

// Router resolves a route name to its screen, consulting the route's guard
// first. Guard denials redirect silently: they are navigation policy, not
// user errors. The router performs the redirects the guards decide, so the
// guards themselves stay pure.
type Router struct {
	store  *session.Store
	routes map[string]route
}

// NewRouter creates a router reading identity from the given store
func NewRouter(store *session.Store) *Router {
	return &Router{store: store, routes: make(map[string]route)}
}

// Handle registers a screen under a route name; g may be nil for ungated routes
func (r *Router) Handle(name string, g Guard, screen Screen) {
	r.routes[name] = route{guard: g, screen: screen}
}

// Navigate runs the screen for name, following guard redirects. Unknown
// routes fall through to home, like the original's wildcard route. No screen
// runs until its guard has allowed the navigation.
func (r *Router) Navigate(ctx context.Context, name string) error {
	// Guard chains are one hop in practice; anything longer is a table bug.
	const maxRedirects = 4

	for i := 0; i < maxRedirects; i++ {
		rt, ok := r.routes[name]
		if !ok {
			if name == guard.RouteHome {
				return fmt.Errorf("route table has no home route")
			}
			name = guard.RouteHome
			continue
		}

		if rt.guard != nil {
			if d := rt.guard(r.store.Current()); !d.Allowed {
				name = d.RedirectTo
				continue
			}
		}
		return rt.screen(ctx)
	}
	return fmt.Errorf("redirect loop while navigating to %q", name)
}
