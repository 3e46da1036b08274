package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-id-keeper/internal/adapter"
	"github.com/MKhiriev/go-id-keeper/internal/client"
	"github.com/MKhiriev/go-id-keeper/internal/config"
	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/internal/service"
	"github.com/MKhiriev/go-id-keeper/internal/store"
	"github.com/MKhiriev/go-id-keeper/internal/tui"
	"github.com/MKhiriev/go-id-keeper/models"
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
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("idkeeper", cfg.Log.File, cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages := store.NewStorages(ctx, cfg.Storage, cfg.App.TargetName, log)
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	ui := tui.New(os.Stdin, os.Stdout, os.Stderr, log)
	terminator := adapter.NewProcessTerminator(cfg.Process.TerminateTimeout, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services := service.NewServices(storages, terminator, ui, cfg.App, buildInfo, log)

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Str("command", cfg.Command).Msg("command failed")
		return 1
	}

	return 0
}
