package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-typed-routes/internal/auth"
	"github.com/MKhiriev/go-typed-routes/internal/config"
	"github.com/MKhiriev/go-typed-routes/internal/handler"
	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/server"
	"github.com/MKhiriev/go-typed-routes/internal/service"
	"github.com/MKhiriev/go-typed-routes/internal/store"
	"github.com/MKhiriev/go-typed-routes/internal/tracing"
	"github.com/MKhiriev/go-typed-routes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-typed-routes").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithLevel(cfg.App.Name, cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("exporter", cfg.Tracing.Exporter).Msg("received configs")

	tracerProvider, shutdownTracing, err := tracing.InitProvider(cfg.Tracing, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating tracer provider")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Err(err).Msg("error shutting down tracer provider")
		}
	}()

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}
	services, err := service.NewServices(store.NewStorages(), models.NewAppBuildInfo(version, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, auth.NewAuthenticator(cfg.Auth), tracerProvider, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
