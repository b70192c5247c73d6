package server

import (
	"fmt"
	"net/http"

	"cityscope/config"
	"cityscope/internal"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupDatabase(cfg *config.Config) (*internal.Database, error) {
	database, err := internal.NewDatabaseConnection(cfg.Database.Driver, cfg.Database.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

func SetupServer(cfg *config.Config) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	return server, router
}
