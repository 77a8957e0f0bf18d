// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

func (cfg *ClientConfig) validate() error {
	var errs []error

	if cfg.App.AccountID == "" || cfg.App.UserID == "" || cfg.App.AccessToken == "" {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if err := cfg.Adapter.validate(); err != nil {
		errs = append(errs, err)
	}

	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: empty DSN for driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.PoolSize <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	if cfg.Server.HTTPAddress != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Server.HTTPAddress); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err))
		}
	}

	return errors.Join(errs...)
}

func (a ClientAdapter) validate() error {
	u, err := url.Parse(a.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: bad feed API address %q", ErrInvalidAdapterConfigs, a.HTTPAddress)
	}

	if a.RequestTimeout <= 0 || a.PageSize <= 0 || a.RequestsPerSecond < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
