// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-feed-keeper/internal/adapter"
	"github.com/MKhiriev/go-feed-keeper/internal/config"
	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
	"github.com/MKhiriev/go-feed-keeper/internal/workers"
	"github.com/MKhiriev/go-feed-keeper/models"
)

type ClientServices struct {
	AppInfoService   AppInfoService
	LocalDataService LocalDataService
	SyncService      ClientSyncService
	SyncJob          ClientSyncJob
}

func NewClientServices(cfg config.ClientConfig, localStore store.LocalStorage, feeds adapter.FeedService, logger *logger.Logger) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	syncSvc := NewSyncAllOrchestrator(feeds, localStore, workers.NewPool(cfg.Workers.PoolSize), logger)

	account := models.Account{ID: cfg.App.AccountID, UserID: cfg.App.UserID}
	creds := models.Credentials{Type: models.CredentialsOAuthAccessToken, Username: cfg.App.UserID, Secret: cfg.App.AccessToken}

	return &ClientServices{
		AppInfoService:   appInfo,
		LocalDataService: NewLocalDataService(localStore, account, logger),
		SyncService:      syncSvc,
		SyncJob:          NewClientSyncJob(syncSvc, localStore, account, creds, cfg.Workers.SyncInterval, logger),
	}, nil
}
