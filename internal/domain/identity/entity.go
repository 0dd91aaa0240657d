package identity

// Identity is the client-side record of the authenticated user: the minimal
// set of fields the rest of the application needs to render screens and make
// navigation decisions.
type Identity struct {
	ID            int64  `json:"id"`
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	IsFuncionario bool   `json:"isFuncionario"`
}

// Validate checks that the identity can back a session
func (i Identity) Validate() error {
	if i.ID == 0 {
		return ErrInvalidIdentity
	}
	return nil
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Endereco is the address sub-record used by registration and the profile
type Endereco struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Nome     string    `json:"nome"`
	CPF      string    `json:"cpf"`
	Email    string    `json:"email"`
	Senha    string    `json:"senha"`
	Telefone string    `json:"telefone"`
	Endereco *Endereco `json:"endereco,omitempty"`
}

// AuthResponse is the backend's answer to a successful login or registration
type AuthResponse struct {
	Token         string `json:"token"`
	Tipo          string `json:"tipo"`
	ID            int64  `json:"id"`
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	IsFuncionario bool   `json:"isFuncionario"`
	ExpiresIn     int64  `json:"expiresIn"`
}

// ToIdentity derives the session identity from an auth response
func (r AuthResponse) ToIdentity() Identity {
	return Identity{
		ID:            r.ID,
		Nome:          r.Nome,
		Email:         r.Email,
		IsFuncionario: r.IsFuncionario,
	}
}

// Profile is the full user record served by GET /usuarios/perfil
type Profile struct {
	ID             int64     `json:"id"`
	IsFuncionario  bool      `json:"isFuncionario"`
	Nome           string    `json:"nome"`
	CPF            string    `json:"cpf"`
	Email          string    `json:"email"`
	Telefone       string    `json:"telefone"`
	DataNascimento *string   `json:"dataNascimento"`
	Endereco       *Endereco `json:"endereco"`
	Ativo          bool      `json:"ativo"`
}

// ToIdentity reduces a profile to the session identity
func (p Profile) ToIdentity() Identity {
	return Identity{
		ID:            p.ID,
		Nome:          p.Nome,
		Email:         p.Email,
		IsFuncionario: p.IsFuncionario,
	}
}
