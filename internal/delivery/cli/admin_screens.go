package cli

import (
	"context"
	"strings"

	"locadora/internal/domain/identity"
)

// adminHomeScreen is the staff panel: fleet overview and availability toggling
func (a *App) adminHomeScreen(ctx context.Context) error {
	a.printf("== Painel do funcionário ==\n")

	vehicles, err := a.api.Vehicles(ctx)
	if err != nil {
		if a.sessionRejected(err) {
			return nil
		}
		a.printf("Erro ao listar frota: %v\n", err)
		return nil
	}

	for _, v := range vehicles {
		a.printVehicle(v)
	}

	if !a.confirm("Alterar disponibilidade de um veículo?") {
		return nil
	}

	id, err := a.promptInt64("ID do veículo")
	if err != nil {
		a.printf("%v\n", err)
		return nil
	}
	disponivel := a.confirm("Disponível para locação?")

	v, err := a.api.SetVehicleAvailability(ctx, id, disponivel)
	if err != nil {
		if a.sessionRejected(err) {
			return nil
		}
		a.printf("Erro ao alterar disponibilidade: %v\n", err)
		return nil
	}

	a.printf("Veículo #%d atualizado:\n", v.ID)
	a.printVehicle(v)
	return nil
}

// adminUsuariosScreen lists every account with role and status, then lets the
// staff member edit a record or flip its active flag.
func (a *App) adminUsuariosScreen(ctx context.Context) error {
	users, err := a.api.Users(ctx)
	if err != nil {
		if a.sessionRejected(err) {
			return nil
		}
		a.printf("Erro ao listar usuários: %v\n", err)
		return nil
	}

	a.printf("== Usuários ==\n")
	for _, u := range users {
		role := "cliente"
		if u.IsFuncionario {
			role = "funcionário"
		}
		status := "ativo"
		if !u.Ativo {
			status = "inativo"
		}
		a.printf("#%d %s <%s> [%s, %s]\n", u.ID, u.Nome, u.Email, role, status)
	}

	switch strings.ToLower(a.prompt("Ação [editar/desativar/ativar] (vazio para nenhuma)")) {
	case "editar":
		a.editUser(ctx, users)
	case "desativar":
		a.setUserActive(ctx, false)
	case "ativar":
		a.setUserActive(ctx, true)
	}
	return nil
}

// editUser edits an account in place: empty answers keep the listed values
func (a *App) editUser(ctx context.Context, users []identity.Profile) {
	id, err := a.promptInt64("ID do usuário")
	if err != nil {
		a.printf("%v\n", err)
		return
	}

	var current *identity.Profile
	for i := range users {
		if users[i].ID == id {
			current = &users[i]
			break
		}
	}
	if current == nil {
		a.printf("Usuário #%d não encontrado.\n", id)
		return
	}

	p := *current
	if nome := a.prompt("Nome (vazio mantém)"); nome != "" {
		p.Nome = nome
	}
	if email := a.prompt("Email (vazio mantém)"); email != "" {
		p.Email = email
	}
	if telefone := a.prompt("Telefone (vazio mantém)"); telefone != "" {
		p.Telefone = telefone
	}

	updated, err := a.api.UpdateUser(ctx, id, p)
	if err != nil {
		if a.sessionRejected(err) {
			return
		}
		a.printf("Erro ao atualizar usuário: %v\n", err)
		return
	}
	a.printf("Usuário #%d atualizado.\n", updated.ID)
}

func (a *App) setUserActive(ctx context.Context, active bool) {
	id, err := a.promptInt64("ID do usuário")
	if err != nil {
		a.printf("%v\n", err)
		return
	}

	if active {
		err = a.api.ActivateUser(ctx, id)
	} else {
		err = a.api.DeactivateUser(ctx, id)
	}
	if err != nil {
		if a.sessionRejected(err) {
			return
		}
		a.printf("Erro ao alterar status do usuário: %v\n", err)
		return
	}

	if active {
		a.printf("Usuário #%d ativado.\n", id)
	} else {
		a.printf("Usuário #%d desativado.\n", id)
	}
}

// adminUsuariosNovoScreen creates a staff or customer account on behalf of
// the logged-in staff member. Their own session stays as is.
func (a *App) adminUsuariosNovoScreen(ctx context.Context) error {
	a.printf("== Novo usuário ==\n")

	req := a.promptRegister()
	asStaff := a.confirm("Criar como funcionário?")

	var err error
	if asStaff {
		_, err = a.session.RegisterFuncionario(ctx, req)
	} else {
		_, err = a.session.RegisterCliente(ctx, req)
	}
	if err != nil {
		if a.sessionRejected(err) {
			return nil
		}
		a.printf("Erro ao criar usuário: %v\n", err)
		return nil
	}

	a.printf("Usuário %s criado.\n", req.Nome)
	return nil
}
