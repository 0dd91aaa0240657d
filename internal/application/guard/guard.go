package guard

import "locadora/internal/domain/identity"

// Route names for the application's navigation table
const (
	RouteHome              = "home"
	RouteLogin             = "login"
	RouteCadastro          = "cadastro"
	RoutePerfil            = "perfil"
	RouteVeiculos          = "veiculos"
	RouteVeiculo           = "veiculo"
	RouteAdminHome         = "admin/home"
	RouteAdminUsuarios     = "admin/usuarios"
	RouteAdminUsuariosNovo = "admin/usuarios/novo"
)

// Decision is the outcome of a guard. Guards never navigate themselves; on a
// denial the caller follows RedirectTo. Denials are silent navigation policy,
// not user errors.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow permits the navigation
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny blocks the navigation and sends the caller to another route
func Deny(redirectTo string) Decision {
	return Decision{RedirectTo: redirectTo}
}

// StaffOnly gates the admin subtree: only an authenticated staff identity may
// enter; everyone else is sent to the public home.
func StaffOnly(current *identity.Identity) Decision {
	if current == nil || !current.IsFuncionario {
		return Deny(RouteHome)
	}
	return Allow()
}

// CustomerArea keeps staff accounts on their own panel. Unauthenticated users
// pass: login and cadastro live inside this area.
func CustomerArea(current *identity.Identity) Decision {
	if current != nil && current.IsFuncionario {
		return Deny(RouteAdminHome)
	}
	return Allow()
}
