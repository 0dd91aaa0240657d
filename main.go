package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"locadora/internal/application/guard"
	"locadora/internal/application/session"
	"locadora/internal/delivery/cli"
	"locadora/internal/infrastructure/api"
	"locadora/internal/infrastructure/config"
	"locadora/internal/infrastructure/database"
	"locadora/internal/infrastructure/repository"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: locadora [route]\n\nRoutes: home, login, cadastro, perfil, veiculos, veiculo, admin/home, admin/usuarios, admin/usuarios/novo\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Initialize local state
	db, err := database.New(cfg.StateDBPath)
	if err != nil {
		log.Fatal("Failed to open state database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize session core
	repo := repository.NewSessionRepository(db)
	store := session.NewStore(repo)
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, store)
	svc := session.NewService(client, store, repo)

	// Hydration runs before the router exists, so guards never observe a
	// pre-hydration nil for a persisted session.
	if err := svc.Hydrate(); err != nil {
		log.Fatal("Failed to restore session:", err)
	}

	app := cli.NewApp(store, svc, client, os.Stdin, os.Stdout)

	routeName := guard.RouteHome
	if flag.Arg(0) != "" {
		routeName = flag.Arg(0)
	}
	if routeName == "logout" {
		routeName = svc.Logout()
		fmt.Println("Sessão encerrada.")
	}

	if err := app.Router().Navigate(context.Background(), routeName); err != nil {
		log.Fatal(err)
	}
}
