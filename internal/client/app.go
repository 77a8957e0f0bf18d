// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/server"
	"github.com/MKhiriev/go-feed-keeper/internal/service"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
	"github.com/MKhiriev/go-feed-keeper/internal/workers"
)

type App struct {
	services   *service.ClientServices
	localStore store.LocalStorage
	workers    *workers.Workers

	logger *logger.Logger
}

// NewApp assembles the application. srv may be nil when the status API is
// disabled.
func NewApp(services *service.ClientServices, localStore store.LocalStorage, srv server.Server, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncJob == nil {
		return nil, fmt.Errorf("client app: %w", errNoSyncJob)
	}

	w := workers.NewWorkers(services.SyncJob)
	if srv != nil {
		w.Add(srv)
	}

	return &App{
		services:   services,
		localStore: localStore,
		workers:    w,
		logger:     logger,
	}, nil
}

// Run blocks until ctx is done, a stop signal arrives or a worker fails.
// The local storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().
		Str("version", a.services.AppInfoService.GetAppVersion(ctx)).
		Msg("client started")

	runErr := a.workers.Run(ctx)

	if err := a.localStore.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to close local storage")
	}

	if runErr != nil {
		return fmt.Errorf("client run: %w", runErr)
	}

	a.logger.Info().Msg("client stopped gracefully")
	return nil
}
