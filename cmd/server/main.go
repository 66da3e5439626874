// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package main

import (
	"context"
	"fmt"

	"github.com/wicket-proxy/wicket/internal/cache"
	"github.com/wicket-proxy/wicket/internal/config"
	internalhttp "github.com/wicket-proxy/wicket/internal/handler/http"
	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/server"
	"github.com/wicket-proxy/wicket/internal/service"
	"github.com/wicket-proxy/wicket/internal/store"
	"github.com/wicket-proxy/wicket/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("wicket-proxy")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("proxiedHost", cfg.Proxy.ProxiedHost).
		Bool("websocketMode", cfg.Proxy.WebsocketMode).
		Strs("allowedHosts", cfg.Proxy.AllowedHosts).
		Str("listen", cfg.Server.HTTPAddress).
		Msg("received configs")

	if cfg.App.SigningSecret == "" {
		log.Warn().Msg("SIGNING_SECRET is empty: tokens are signed with an empty key. *DO NOT RUN THIS IN PRODUCTION!!!*")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.DSN(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to user store")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	sessions, err := cache.NewRedisCache(ctx, cfg.RedisAddr(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to session cache")
	}

	storages := store.NewStorages(db)
	services := service.NewServices(storages, sessions, cfg, log)

	handler, err := internalhttp.NewHandler(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http handler")
	}

	srv, err := server.NewServer(handler, cfg.Server, log)
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
