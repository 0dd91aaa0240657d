package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"locadora/internal/domain/rental"
	"locadora/internal/domain/vehicle"
)

const dateLayout = "2006-01-02"

// homeScreen is the customer landing page
func (a *App) homeScreen(ctx context.Context) error {
	if current := a.store.Current(); current != nil {
		a.printf("Olá, %s.\n", current.Nome)
		if resumo, err := a.api.RentalSummary(ctx); err == nil && resumo.Ativas > 0 {
			a.printf("Você tem %d locação(ões) ativa(s). Veja o perfil para gerenciá-las.\n", resumo.Ativas)
		}
	} else {
		a.printf("Bem-vindo à locadora. Use 'login' ou 'cadastro' para começar.\n")
	}

	vehicles, err := a.api.AvailableVehicles(ctx)
	if err != nil {
		a.printf("Veículos indisponíveis no momento: %v\n", err)
		return nil
	}
	a.printf("%d veículos disponíveis para locação. Use 'veiculos' para pesquisar.\n", len(vehicles))
	return nil
}

// veiculosScreen lists available vehicles, optionally filtered by category
func (a *App) veiculosScreen(ctx context.Context) error {
	a.printf("== Veículos ==\n")

	var (
		vehicles []vehicle.Vehicle
		err      error
	)
	if categoria := a.prompt("Categoria (vazio para todas)"); categoria != "" {
		vehicles, err = a.api.VehiclesByCategory(ctx, vehicle.Categoria(categoria))
	} else {
		vehicles, err = a.api.AvailableVehicles(ctx)
	}
	if err != nil {
		a.printf("Erro ao listar veículos: %v\n", err)
		return nil
	}

	for _, v := range vehicles {
		a.printVehicle(v)
	}
	a.printf("Use 'veiculo' para detalhes e locação.\n")
	return nil
}

// veiculoScreen shows one vehicle and walks an authenticated customer through
// booking it: interval validation and price preview happen locally before
// anything is sent to the backend.
func (a *App) veiculoScreen(ctx context.Context) error {
	id, err := a.promptInt64("ID do veículo")
	if err != nil {
		a.printf("%v\n", err)
		return nil
	}

	v, err := a.api.Vehicle(ctx, id)
	if err != nil {
		a.printf("Erro ao carregar veículo: %v\n", err)
		return nil
	}
	a.printVehicle(v)

	if !v.Disponivel {
		return nil
	}
	if !a.session.IsAuthenticated() {
		a.printf("Faça login para alugar este veículo.\n")
		return nil
	}
	if !a.confirm("Alugar este veículo?") {
		return nil
	}

	return a.bookVehicle(ctx, v)
}

func (a *App) bookVehicle(ctx context.Context, v vehicle.Vehicle) error {
	retrieval, err := a.promptDate("Data de retirada (AAAA-MM-DD)")
	if err != nil {
		a.printf("%v\n", err)
		return nil
	}
	devolution, err := a.promptDate("Data de devolução (AAAA-MM-DD)")
	if err != nil {
		a.printf("%v\n", err)
		return nil
	}

	if err := rental.ValidateInterval(retrieval, devolution, time.Now()); err != nil {
		switch {
		case errors.Is(err, rental.ErrRetrievalInPast):
			a.printf("A data de retirada não pode ser no passado.\n")
		case errors.Is(err, rental.ErrReturnNotAfterRetrieval):
			a.printf("A data de devolução deve ser posterior à data de retirada.\n")
		default:
			a.printf("Datas inválidas: %v\n", err)
		}
		return nil
	}

	days, total := rental.ComputeTotal(retrieval, devolution, v.ValorDiaria)
	a.printf("%d diária(s) × R$ %.2f = R$ %.2f\n", days, v.ValorDiaria, total)
	if !a.confirm("Confirmar locação?") {
		return nil
	}

	req := rental.RentalCreate{
		VeiculoID:     v.ID,
		DataRetirada:  retrieval.Format(dateLayout),
		DataDevolucao: devolution.Format(dateLayout),
		Observacoes:   a.prompt("Observações (opcional)"),
	}

	r, err := a.api.CreateRental(ctx, req)
	if err != nil {
		if a.sessionRejected(err) {
			return nil
		}
		a.printf("Erro ao criar locação: %v\n", err)
		return nil
	}

	a.printf("Locação #%d confirmada. Total: R$ %.2f\n", r.ID, r.ValorTotal)
	return nil
}

func (a *App) promptDate(label string) (time.Time, error) {
	value := a.prompt(label)
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida: %q", value)
	}
	return t, nil
}

func (a *App) printVehicle(v vehicle.Vehicle) {
	status := "disponível"
	if !v.Disponivel {
		status = "indisponível"
	}
	a.printf("#%d %s %s (%d) [%s] R$ %.2f/dia — %s\n",
		v.ID, v.Marca, v.Modelo, v.Ano, v.Categoria, v.ValorDiaria, status)
}
