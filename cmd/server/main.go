// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/cinefilter/internal/api"
	"github.com/tomtom215/cinefilter/internal/catalog"
	"github.com/tomtom215/cinefilter/internal/config"
	"github.com/tomtom215/cinefilter/internal/database"
	"github.com/tomtom215/cinefilter/internal/logging"
	"github.com/tomtom215/cinefilter/internal/metrics"
	"github.com/tomtom215/cinefilter/internal/supervisor"
	"github.com/tomtom215/cinefilter/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// storeProbeInterval is how often the data layer pings the store.
const storeProbeInterval = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_driver", cfg.Database.Driver).
		Msg("Starting Cinefilter")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Cinefilter stopped with error")
	}

	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedSampleData {
		logging.Info().Msg("Sample data seeding enabled (DB_SEED_SAMPLE_DATA=true)")
		if err := db.SeedSampleData(context.Background(), time.Now()); err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
	}

	metrics.AppInfo.WithLabelValues(version, runtime.Version(), db.Driver()).Set(1)

	catalogSvc := catalog.NewService(db, catalog.Config{
		DomesticCountryCode: cfg.Catalog.DomesticCountryCode,
		OptionsCacheTTL:     cfg.Catalog.OptionsCacheTTL,
	})
	defer catalogSvc.Close()

	engine, err := initRecommend(cfg, db)
	if err != nil {
		return err
	}
	defer engine.Close()

	handler := api.NewHandler(catalogSvc, engine, db)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)), cfg.Server.Timeout)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddDataService(services.NewStoreProbeService(db, storeProbeInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			serveErr = fmt.Errorf("supervisor tree: %w", err)
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	return serveErr
}
