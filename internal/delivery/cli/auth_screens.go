package cli

import (
	"context"
	"errors"

	"locadora/internal/domain/identity"
)

// loginScreen authenticates and reports the panel the user landed on.
// Authentication failures render a message and leave the user free to retry;
// they never redirect.
func (a *App) loginScreen(ctx context.Context) error {
	a.printf("== Login ==\n")

	req := identity.LoginRequest{
		Email: a.prompt("Email"),
		Senha: a.prompt("Senha"),
	}

	id, err := a.session.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			a.printf("Email ou senha incorretos.\n")
		case errors.Is(err, identity.ErrNetwork):
			a.printf("Não foi possível contatar o servidor. Tente novamente.\n")
		default:
			a.printf("Falha no login: %v\n", err)
		}
		return nil
	}

	a.printf("Bem-vindo, %s!\n", id.Nome)
	if id.IsFuncionario {
		a.printf("Acesse o painel com: locadora admin/home\n")
	}
	return nil
}

// cadastroScreen registers a new customer account and logs it in
func (a *App) cadastroScreen(ctx context.Context) error {
	a.printf("== Cadastro ==\n")

	req := a.promptRegister()

	id, err := a.session.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrValidation):
			a.printf("Cadastro recusado: %v\n", err)
		case errors.Is(err, identity.ErrNetwork):
			a.printf("Não foi possível contatar o servidor. Tente novamente.\n")
		default:
			a.printf("Falha no cadastro: %v\n", err)
		}
		return nil
	}

	a.printf("Cadastro concluído. Bem-vindo, %s!\n", id.Nome)
	return nil
}

func (a *App) promptRegister() identity.RegisterRequest {
	req := identity.RegisterRequest{
		Nome:     a.prompt("Nome"),
		CPF:      a.prompt("CPF"),
		Email:    a.prompt("Email"),
		Senha:    a.prompt("Senha"),
		Telefone: a.prompt("Telefone"),
	}
	if a.confirm("Informar endereço?") {
		req.Endereco = a.promptEndereco()
	}
	return req
}

func (a *App) promptEndereco() *identity.Endereco {
	return &identity.Endereco{
		CEP:         a.prompt("CEP"),
		Logradouro:  a.prompt("Logradouro"),
		Numero:      a.prompt("Número"),
		Complemento: a.prompt("Complemento"),
		Bairro:      a.prompt("Bairro"),
		Cidade:      a.prompt("Cidade"),
		Estado:      a.prompt("Estado (UF)"),
	}
}
