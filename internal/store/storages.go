// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed-keeper/internal/config"
	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/utils"
)

// NewLocalStorage opens the storage selected by cfg.Driver. SQL drivers are
// migrated before the storage is returned; for the memory driver cfg.DSN is
// the snapshot file path (MemoryPath or empty keeps it off disk).
func NewLocalStorage(ctx context.Context, cfg config.ClientDB, logger *logger.Logger) (LocalStorage, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating local storage...")

	ids := utils.NewUUIDGenerator()

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryLocalStorage(cfg.DSN, ids)
	case config.DriverSQLite, "":
		db, err = NewConnectSQLite(ctx, cfg, logger)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLLocalStorage(db, ids), nil
}
