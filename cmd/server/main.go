// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/pet-haven/internal/adapter"
	"github.com/MKhiriev/pet-haven/internal/config"
	"github.com/MKhiriev/pet-haven/internal/handler"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/server"
	"github.com/MKhiriev/pet-haven/internal/service"
	"github.com/MKhiriev/pet-haven/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const closeTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	printBuildInfo()

	log := logger.NewLogger("pet-haven-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	// linker-injected version wins over the default
	if cfg.App.Version == "dev" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Info().
		Str("env", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Str("db", cfg.Storage.DB.Name).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectMongo(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			log.Err(err).Msg("error closing database connection")
		}
	}()

	if err = db.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating indexes")
	}

	storages := store.NewStorages(db, log)

	gateway, err := adapter.NewStripeGateway(cfg.Adapter.Payment, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating payment gateway")
	}

	services, err := service.NewServices(storages, gateway, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
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
