package vehicle

// Categoria represents the rental category of a vehicle
type Categoria string

const (
	CategoriaEconomico     Categoria = "Econômico"
	CategoriaIntermediario Categoria = "Intermediário"
	CategoriaSUV           Categoria = "SUV"
	CategoriaLuxo          Categoria = "Luxo"
	CategoriaEsportivo     Categoria = "Esportivo"
)

// Vehicle represents a vehicle in the rental fleet
type Vehicle struct {
	ID          int64     `json:"id"`
	Modelo      string    `json:"modelo"`
	Marca       string    `json:"marca"`
	Placa       string    `json:"placa"`
	Ano         int       `json:"ano"`
	Categoria   Categoria `json:"categoria"`
	ValorDiaria float64   `json:"valorDiaria"`
	Disponivel  bool      `json:"disponivel"`
	Descricao   string    `json:"descricao"`
}

// VehicleCreate is the payload for creating or updating a vehicle
type VehicleCreate struct {
	Modelo      string    `json:"modelo"`
	Marca       string    `json:"marca"`
	Placa       string    `json:"placa"`
	Ano         int       `json:"ano"`
	Categoria   Categoria `json:"categoria"`
	ValorDiaria float64   `json:"valorDiaria"`
	Descricao   string    `json:"descricao"`
}
