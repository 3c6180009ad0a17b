package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-invoice-gateway/internal/adapter"
	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/handler"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/metrics"
	"github.com/MKhiriev/go-invoice-gateway/internal/server"
	"github.com/MKhiriev/go-invoice-gateway/internal/service"
	"github.com/MKhiriev/go-invoice-gateway/internal/store"
	"github.com/MKhiriev/go-invoice-gateway/internal/tracing"
	"github.com/MKhiriev/go-invoice-gateway/internal/validators"
	"github.com/MKhiriev/go-invoice-gateway/internal/workers"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	bootLog := logger.NewLogger("invoice-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	fileOpts := logger.FileOptions{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Level:      cfg.Logging.Level,
	}
	log := logger.NewFileLogger("invoice-gateway", fileOpts)
	defer log.Close()

	fileOpts.Path = cfg.Logging.AuditFile
	auditLog := logger.NewAuditLogger(fileOpts)
	defer auditLog.Close()

	log.Debug().
		Str("backend_url", cfg.Backend.URL).
		Str("backend_db", cfg.Backend.Database).
		Str("address", cfg.Server.HTTPAddress).
		Str("payment_policy", cfg.App.PaymentPolicy).
		Strs("allowed_sources", cfg.App.AllowedSources).
		Msg("received configs")

	shutdownTracing := tracing.Setup(cfg.Tracing, "invoice-gateway", buildInfo.Version, log)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Err(err).Msg("error flushing spans")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	m := metrics.New()

	backends, err := adapter.NewBackendFactoryFromConfig(cfg.Backend, m)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend factory")
	}

	services, err := service.NewServices(backends, storages, *cfg, buildInfo, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, handler.Deps{
		Validator:   validators.NewRequestValidator(cfg.App.AllowedSources),
		Metrics:     m,
		AuditLogger: auditLog,
	}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(cfg.Workers, backends, m, log).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
