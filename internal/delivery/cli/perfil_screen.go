package cli

import (
	"context"
	"strings"

	"locadora/internal/domain/rental"
)

// perfilScreen shows the authenticated user's profile, rental history and
// spending statistics, and lets the user manage rentals or edit the address.
func (a *App) perfilScreen(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		a.printf("Você precisa estar logado para ver o perfil.\n")
		return a.loginScreen(ctx)
	}

	p, err := a.session.ReloadProfile(ctx)
	if err != nil {
		if a.sessionRejected(err) {
			return nil
		}
		a.printf("Erro ao carregar perfil: %v\n", err)
		return nil
	}

	a.printf("== Perfil ==\n")
	a.printf("Nome:     %s\n", p.Nome)
	a.printf("Email:    %s\n", p.Email)
	a.printf("CPF:      %s\n", p.CPF)
	a.printf("Telefone: %s\n", p.Telefone)
	if p.Endereco != nil {
		e := p.Endereco
		a.printf("Endereço: %s, %s - %s, %s/%s (%s)\n",
			e.Logradouro, e.Numero, e.Bairro, e.Cidade, e.Estado, e.CEP)
	} else {
		a.printf("Endereço: não informado\n")
	}

	a.showEstatisticas(ctx)
	a.manageLocacoes(ctx)

	if a.confirm("Atualizar endereço?") {
		if err := a.api.UpdateEndereco(ctx, *a.promptEndereco()); err != nil {
			if a.sessionRejected(err) {
				return nil
			}
			a.printf("Erro ao atualizar endereço: %v\n", err)
		} else {
			a.printf("Endereço atualizado.\n")
		}
	}

	return nil
}

// showEstatisticas prints the spending report, falling back to a client-side
// recomputation when the backend reports zero spend against a non-empty
// history.
func (a *App) showEstatisticas(ctx context.Context) {
	stats, err := a.api.Statistics(ctx)
	if err != nil {
		a.printf("Estatísticas indisponíveis: %v\n", err)
		return
	}

	history, err := a.api.RentalHistory(ctx)
	if err != nil {
		a.printf("Histórico indisponível: %v\n", err)
		history = nil
	}

	stats, reconciled := rental.ReconcileStatistics(stats, history)

	a.printf("== Estatísticas ==\n")
	a.printf("Locações:    %d (%d ativas, %d finalizadas)\n",
		stats.TotalLocacoes, stats.LocacoesAtivas, stats.LocacoesFinalizadas)
	a.printf("Total gasto: R$ %.2f", stats.ValorTotalGasto)
	if reconciled {
		a.printf(" (recalculado a partir do histórico)")
	}
	a.printf("\n")

	if len(history) > 0 && a.confirm("Mostrar histórico de locações?") {
		for _, r := range history {
			a.printRental(r)
		}
	}
}

// manageLocacoes lists the user's rentals under a chosen filter and, for the
// active ones, offers to finish or cancel a rental.
func (a *App) manageLocacoes(ctx context.Context) {
	filtro := strings.ToLower(a.prompt("Listar locações [todas/ativas/finalizadas] (vazio para pular)"))

	var (
		rentals []rental.Rental
		err     error
	)
	switch filtro {
	case "todas":
		rentals, err = a.api.MyRentals(ctx)
	case "ativas":
		rentals, err = a.api.MyActiveRentals(ctx)
	case "finalizadas":
		rentals, err = a.api.MyFinishedRentals(ctx)
	default:
		return
	}
	if err != nil {
		if a.sessionRejected(err) {
			return
		}
		a.printf("Erro ao listar locações: %v\n", err)
		return
	}
	if len(rentals) == 0 {
		a.printf("Nenhuma locação encontrada.\n")
		return
	}
	for _, r := range rentals {
		a.printRental(r)
	}

	if filtro == "finalizadas" {
		return
	}

	switch strings.ToLower(a.prompt("Ação [finalizar/cancelar] (vazio para nenhuma)")) {
	case "finalizar":
		a.finalizeRental(ctx)
	case "cancelar":
		a.cancelRental(ctx)
	}
}

// finalizeRental finishes an active rental and puts its vehicle back on the
// available fleet. The backend does not flip the vehicle by itself; the
// return desk restores availability right after finishing.
func (a *App) finalizeRental(ctx context.Context) {
	id, err := a.promptInt64("ID da locação")
	if err != nil {
		a.printf("%v\n", err)
		return
	}

	r, err := a.api.FinishRental(ctx, id)
	if err != nil {
		if a.sessionRejected(err) {
			return
		}
		a.printf("Erro ao finalizar locação: %v\n", err)
		return
	}

	if r.Veiculo.ID != 0 {
		if _, err := a.api.SetVehicleAvailability(ctx, r.Veiculo.ID, true); err != nil {
			a.printf("Locação #%d finalizada, mas o veículo não pôde ser liberado: %v\n", r.ID, err)
			return
		}
	}
	a.printf("Locação #%d finalizada. Veículo devolvido à frota.\n", r.ID)
}

func (a *App) cancelRental(ctx context.Context) {
	id, err := a.promptInt64("ID da locação")
	if err != nil {
		a.printf("%v\n", err)
		return
	}

	r, err := a.api.CancelRental(ctx, id)
	if err != nil {
		if a.sessionRejected(err) {
			return
		}
		a.printf("Erro ao cancelar locação: %v\n", err)
		return
	}
	a.printf("Locação #%d cancelada.\n", r.ID)
}

func (a *App) printRental(r rental.Rental) {
	a.printf("#%d %s → %s  %s %s  R$ %.2f  [%s]\n",
		r.ID, r.DataRetirada, r.DataDevolucao,
		r.Veiculo.Marca, r.Veiculo.Modelo, r.ValorTotal, r.Status)
}
