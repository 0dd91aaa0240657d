package rental

import "locadora/internal/domain/vehicle"

// Status represents the lifecycle state of a rental
type Status string

const (
	StatusAtiva      Status = "ATIVA"
	StatusFinalizada Status = "FINALIZADA"
	StatusCancelada  Status = "CANCELADA"
)

// User is the simplified user record embedded in a rental
type User struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// Rental represents a booked rental as served by the backend
type Rental struct {
	ID            int64           `json:"id"`
	DataRetirada  string          `json:"dataRetirada"`
	DataDevolucao string          `json:"dataDevolucao"`
	Observacoes   string          `json:"observacoes,omitempty"`
	ValorTotal    float64         `json:"valorTotal"`
	Status        Status          `json:"status"`
	Veiculo       vehicle.Vehicle `json:"veiculo"`
	Usuario       User            `json:"usuario"`
}

// RentalCreate is the payload for booking a vehicle
type RentalCreate struct {
	VeiculoID     int64  `json:"veiculoId"`
	DataRetirada  string `json:"dataRetirada"`
	DataDevolucao string `json:"dataDevolucao"`
	Observacoes   string `json:"observacoes,omitempty"`
}

// Summary aggregates the authenticated user's rentals by status
type Summary struct {
	Total           int     `json:"total"`
	Ativas          int     `json:"ativas"`
	Finalizadas     int     `json:"finalizadas"`
	Canceladas      int     `json:"canceladas"`
	ValorTotalGasto float64 `json:"valorTotalGasto"`
}

// Statistics is the spending report served by GET /usuarios/estatisticas
type Statistics struct {
	TotalLocacoes       int     `json:"totalLocacoes"`
	LocacoesAtivas      int     `json:"locacoesAtivas"`
	LocacoesFinalizadas int     `json:"locacoesFinalizadas"`
	ValorTotalGasto     float64 `json:"valorTotalGasto"`
}
