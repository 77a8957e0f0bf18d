// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-keeper/internal/adapter"
	"github.com/MKhiriev/go-feed-keeper/internal/client"
	"github.com/MKhiriev/go-feed-keeper/internal/config"
	handler "github.com/MKhiriev/go-feed-keeper/internal/handler/http"
	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/server"
	"github.com/MKhiriev/go-feed-keeper/internal/service"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
	"github.com/MKhiriev/go-feed-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("feed-keeper")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	feeds, err := adapter.NewHTTPFeedService(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create feed adapter")
	}

	localStorage, err := store.NewLocalStorage(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(*cfg, localStorage, feeds, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	srv, err := server.NewServer(handler.NewHandler(services, log), cfg.Server, log)
	if err != nil && !errors.Is(err, server.ErrNoServersAreCreated) {
		log.Fatal().Err(err).Msg("create status server")
	}

	app, err := client.NewApp(services, localStorage, srv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
