package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/chiro-hub/internal/adapter"
	"github.com/MKhiriev/chiro-hub/internal/audit"
	"github.com/MKhiriev/chiro-hub/internal/client"
	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/service"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/internal/tui"
	"github.com/MKhiriev/chiro-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		return 2
	}

	if len(args) > 0 && args[0] == "version" {
		printBuildInfo()
		return 0
	}

	log := logger.NewClientLogger("chiro-client", cfg.LogFile, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create client storages")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("close client storages")
		}
	}()

	auditor := audit.NewHelper(storages, adapter.NewHTTPIPLookup(cfg.Audit, log), cfg.Audit, cfg.App, log)
	services := service.NewClientServices(storages, serverAdapter, auditor, cfg.App, log)
	ui := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	if err = client.NewApp(services, ui, log).Run(ctx, args); err != nil {
		return 1
	}
	return 0
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
