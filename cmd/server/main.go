package main

import (
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/handler"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/server"
	"github.com/MKhiriev/chiro-hub/internal/service"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/internal/workers"
	"github.com/MKhiriev/chiro-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("chiro-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("chiro-server", cfg.Log.Level)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("db_configured", cfg.Storage.DB.IsConfigured()).
		Bool("lead_store_configured", cfg.Storage.Leads.RedisURL != "").
		Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(storages.Connector, cfg.Workers, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
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
