package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cityscope/config"
	"cityscope/config/server"
	"cityscope/internal/client"
	"cityscope/internal/handler"
	"cityscope/internal/notifier"
	"cityscope/internal/ports"
	"cityscope/internal/repository"
	"cityscope/internal/security"
	"cityscope/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/lib/pq"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database, err := server.SetupDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	httpServer, router := server.SetupServer(cfg)

	tokenManager := security.NewTokenManager(&cfg.JWT)
	userRepository := repository.NewUserRepository(database)
	savedCityRepository := repository.NewSavedCityRepository(database)

	var signupNotifier ports.NotifierInterface
	if cfg.Webhook.URL != "" {
		signupNotifier = notifier.NewWebhook(&cfg.Webhook)
	}

	authenticationService := service.NewAuthenticationService(userRepository, tokenManager, signupNotifier)
	savedCityService := service.NewSavedCityService(savedCityRepository)

	httpClient := client.NewHTTPClient(cfg.External.TimeoutDuration())
	geoNames := client.NewGeoNames(&cfg.External, httpClient)
	openWeather := client.NewOpenWeather(&cfg.External, httpClient)
	openTripMap := client.NewOpenTripMap(&cfg.External, httpClient)
	newsAPI := client.NewNewsAPI(&cfg.External, httpClient)

	authenticationHandler := handler.NewAuthenticationHandler(
		authenticationService, tokenManager.AccessTTL(), tokenManager.RefreshTTL(), cfg.IsProduction())
	cityHandler := handler.NewCityHandler(geoNames)
	weatherHandler := handler.NewWeatherHandler(openWeather)
	otherHandler := handler.NewOtherHandler(openTripMap, newsAPI)
	savedCityHandler := handler.NewSavedCityHandler(savedCityService)

	authenticate := security.JWTMiddleware(tokenManager)

	router.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("Weather backend API is running"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Use(httprate.Limit(
			1000,
			15*time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(handler.TooManyRequests),
		))

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", authenticationHandler.Register)
			r.Post("/login", authenticationHandler.Login)
			r.Post("/logout", authenticationHandler.Logout)
			r.Post("/refresh-token", authenticationHandler.RefreshToken)
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/profile", authenticationHandler.Profile)
			})
		})

		r.Route("/cities", func(r chi.Router) {
			r.Get("/", cityHandler.Search)
			r.Get("/nearby", cityHandler.Nearby)
		})

		r.Route("/weather", func(r chi.Router) {
			r.Get("/current", weatherHandler.Current)
			r.Get("/forecast", weatherHandler.Forecast)
		})

		r.Route("/other", func(r chi.Router) {
			r.Get("/attractions", otherHandler.AttractionsNearby)
			r.Get("/news", otherHandler.TopHeadlines)
		})

		r.Route("/savedCities", func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/", savedCityHandler.List)
			r.Post("/", savedCityHandler.Add)
			r.Delete("/{id}", savedCityHandler.Remove)
		})
	})

	runServer(ctx, httpServer)
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("server listening on " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("received signal %v, shutting down", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("failed to shut down server: %v", err)
	} else {
		log.Println("server stopped")
	}
}
