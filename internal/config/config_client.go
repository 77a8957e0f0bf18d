// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

type ClientApp struct {
	AccountID   string
	UserID      string
	AccessToken string
	Version     string
}

type ClientAdapter struct {
	// HTTPAddress is the feed API base URL.
	HTTPAddress       string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	PageSize          int
}

type ClientDB struct {
	Driver string
	DSN    string
}

type ClientStorage struct {
	DB ClientDB
}

type ClientWorkers struct {
	SyncInterval time.Duration
	PoolSize     int
}

type ClientServer struct {
	// HTTPAddress is empty when the status API is disabled.
	HTTPAddress string
}

// ClientConfig is the validated configuration of the sync client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Server  ClientServer
}

// GetClientConfig loads every source, applies defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			AccountID:   cfg.App.AccountID,
			UserID:      cfg.App.UserID,
			AccessToken: cfg.App.AccessToken,
			Version:     cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:       cfg.Adapter.HTTPAddress,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			RequestsPerSecond: cfg.Adapter.RequestsPerSecond,
			PageSize:          cfg.Adapter.PageSize,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			PoolSize:     cfg.Workers.PoolSize,
		},
		Server: ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
	}
}
