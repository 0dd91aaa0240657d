package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"locadora/internal/application/guard"
	"locadora/internal/application/session"
	"locadora/internal/domain/identity"
	"locadora/internal/infrastructure/api"
)

// App wires the screens to the session service and the API client
type App struct {
	store   *session.Store
	session session.Service
	api     *api.Client
	in      *bufio.Reader
	out     io.Writer
}

// NewApp creates the screen layer
func NewApp(store *session.Store, svc session.Service, client *api.Client, in io.Reader, out io.Writer) *App {
	return &App{
		store:   store,
		session: svc,
		api:     client,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Router builds the navigation table: public login/cadastro, customer-gated
// home/perfil/veiculos/veiculo and the staff-gated admin subtree.
func (a *App) Router() *Router {
	r := NewRouter(a.store)

	r.Handle(guard.RouteLogin, guard.CustomerArea, a.loginScreen)
	r.Handle(guard.RouteCadastro, guard.CustomerArea, a.cadastroScreen)
	r.Handle(guard.RouteHome, guard.CustomerArea, a.homeScreen)
	r.Handle(guard.RoutePerfil, guard.CustomerArea, a.perfilScreen)
	r.Handle(guard.RouteVeiculos, guard.CustomerArea, a.veiculosScreen)
	r.Handle(guard.RouteVeiculo, guard.CustomerArea, a.veiculoScreen)
	r.Handle(guard.RouteAdminHome, guard.StaffOnly, a.adminHomeScreen)
	r.Handle(guard.RouteAdminUsuarios, guard.StaffOnly, a.adminUsuariosScreen)
	r.Handle(guard.RouteAdminUsuariosNovo, guard.StaffOnly, a.adminUsuariosNovoScreen)

	return r
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(label string) string {
	a.printf("%s: ", label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *App) promptInt64(label string) (int64, error) {
	value := a.prompt(label)
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", value)
	}
	return n, nil
}

func (a *App) confirm(label string) bool {
	answer := strings.ToLower(a.prompt(label + " [s/n]"))
	return answer == "s" || answer == "sim"
}

// sessionRejected handles the server invalidating our token mid-session: a
// 401 or 403 on an authenticated call forces a logout so client state
// resynchronizes with the server.
func (a *App) sessionRejected(err error) bool {
	if errors.Is(err, identity.ErrUnauthorized) || errors.Is(err, identity.ErrForbidden) {
		a.printf("Sessão expirada ou inválida. Faça login novamente.\n")
		a.session.Logout()
		return true
	}
	return false
}
