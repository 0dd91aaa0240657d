package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"locadora/internal/application/session"
	"locadora/internal/domain/identity"
	"locadora/internal/infrastructure/api"
)

func freshToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// newScreenApp builds an App over a real session service and API client,
// backed by the given handler and reading scripted answers from input.
func newScreenApp(t *testing.T, handler http.Handler, id identity.Identity, token, input string) (*App, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	repo := &memRepo{}
	store := session.NewStore(repo)
	if err := store.Set(id, token); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	client := api.NewClient(srv.URL, 5*time.Second, store)
	svc := session.NewService(client, store, repo)

	out := &bytes.Buffer{}
	return NewApp(store, svc, client, strings.NewReader(input), out), out
}

func TestPerfilFinalizeReturnsVehicleToFleet(t *testing.T) {
	t.Parallel()

	var finished bool
	var availability string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /usuarios/perfil", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(identity.Profile{ID: 1, Nome: "Ana", Email: "ana@example.com", Ativo: true})
	})
	mux.HandleFunc("GET /usuarios/estatisticas", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalLocacoes":1,"locacoesAtivas":1,"valorTotalGasto":300}`))
	})
	mux.HandleFunc("GET /usuarios/locacoes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":5,"status":"ATIVA","valorTotal":300,"veiculo":{"id":9}}]`))
	})
	mux.HandleFunc("GET /locacoes/minhas/ativas", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":5,"status":"ATIVA","valorTotal":300,"veiculo":{"id":9}}]`))
	})
	mux.HandleFunc("PATCH /locacoes/5/finalizar", func(w http.ResponseWriter, r *http.Request) {
		finished = true
		w.Write([]byte(`{"id":5,"status":"FINALIZADA","veiculo":{"id":9}}`))
	})
	mux.HandleFunc("PATCH /veiculos/9/disponibilidade", func(w http.ResponseWriter, r *http.Request) {
		availability = r.URL.Query().Get("disponivel")
		w.Write([]byte(`{"id":9,"disponivel":true}`))
	})

	// Answers: skip the history listing, list active rentals, finish #5,
	// skip the address edit.
	input := "n\nativas\nfinalizar\n5\nn\n"
	app, out := newScreenApp(t, mux,
		identity.Identity{ID: 1, Nome: "Ana", Email: "ana@example.com"}, freshToken(t), input)

	if err := app.perfilScreen(context.Background()); err != nil {
		t.Fatalf("perfilScreen: %v", err)
	}
	if !finished {
		t.Error("rental was not finished")
	}
	if availability != "true" {
		t.Errorf("vehicle availability after return: got %q, want %q", availability, "true")
	}
	if !strings.Contains(out.String(), "finalizada") {
		t.Errorf("output missing confirmation:\n%s", out.String())
	}
}

func TestAdminUsuariosDeactivate(t *testing.T) {
	t.Parallel()

	var deactivated bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /usuarios", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":3,"nome":"Carlos","email":"carlos@example.com","ativo":true}]`))
	})
	mux.HandleFunc("PATCH /usuarios/3/desativar", func(w http.ResponseWriter, r *http.Request) {
		deactivated = true
		w.WriteHeader(http.StatusNoContent)
	})

	app, out := newScreenApp(t, mux,
		identity.Identity{ID: 2, Nome: "Bia", IsFuncionario: true}, "tok", "desativar\n3\n")

	if err := app.adminUsuariosScreen(context.Background()); err != nil {
		t.Fatalf("adminUsuariosScreen: %v", err)
	}
	if !deactivated {
		t.Error("user was not deactivated")
	}
	if !strings.Contains(out.String(), "desativado") {
		t.Errorf("output missing confirmation:\n%s", out.String())
	}
}

func TestAdminUsuariosEditKeepsUnansweredFields(t *testing.T) {
	t.Parallel()

	var sent identity.Profile
	mux := http.NewServeMux()
	mux.HandleFunc("GET /usuarios", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]identity.Profile{
			{ID: 3, Nome: "Carlos", Email: "carlos@example.com", Telefone: "11999990000", Ativo: true},
		})
	})
	mux.HandleFunc("PUT /usuarios/3", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		json.NewEncoder(w).Encode(sent)
	})

	// New name, empty answers keep email and phone.
	app, _ := newScreenApp(t, mux,
		identity.Identity{ID: 2, Nome: "Bia", IsFuncionario: true}, "tok", "editar\n3\nCarlos Silva\n\n\n")

	if err := app.adminUsuariosScreen(context.Background()); err != nil {
		t.Fatalf("adminUsuariosScreen: %v", err)
	}
	if sent.Nome != "Carlos Silva" {
		t.Errorf("nome: got %q, want %q", sent.Nome, "Carlos Silva")
	}
	if sent.Email != "carlos@example.com" || sent.Telefone != "11999990000" {
		t.Errorf("unanswered fields changed: got %+v", sent)
	}
	if !sent.Ativo {
		t.Error("active flag dropped on edit")
	}
}

func TestAdminUsuariosActivate(t *testing.T) {
	t.Parallel()

	var activated bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /usuarios", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":3,"nome":"Carlos","email":"carlos@example.com","ativo":false}]`))
	})
	mux.HandleFunc("PATCH /usuarios/3/ativar", func(w http.ResponseWriter, r *http.Request) {
		activated = true
		w.WriteHeader(http.StatusNoContent)
	})

	app, out := newScreenApp(t, mux,
		identity.Identity{ID: 2, Nome: "Bia", IsFuncionario: true}, "tok", "ativar\n3\n")

	if err := app.adminUsuariosScreen(context.Background()); err != nil {
		t.Fatalf("adminUsuariosScreen: %v", err)
	}
	if !activated {
		t.Error("user was not reactivated")
	}
	if !strings.Contains(out.String(), "ativado") {
		t.Errorf("output missing confirmation:\n%s", out.String())
	}
}
