// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported local storage drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
	DriverMemory   = "memory"
)

// StructuredConfig is the merged raw configuration before validation.
type StructuredConfig struct {
	// App identifies the account being synced and the credentials for it.
	App App `envPrefix:"APP_"`

	// Storage selects the local database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server configures the optional local status API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the remote feed API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers configures the scheduled sync job and the fetch pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

type App struct {
	// AccountID is the local account the synced data belongs to.
	// Env: APP_ACCOUNT_ID
	AccountID string `env:"ACCOUNT_ID"`

	// UserID is the remote user id used to build stream ids such as
	// "user/<id>/category/global.all".
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// AccessToken is the OAuth access token sent as a bearer token.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

type Server struct {
	// HTTPAddress is where the status API listens, "host:port".
	// Empty disables the API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

type DB struct {
	// Driver is one of sqlite3, pgx or memory.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string, a file path for sqlite3. For the memory
	// driver it is an optional JSON snapshot file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

type Adapter struct {
	// HTTPAddress is the base URL of the feed API (e.g. "https://cloud.feedly.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestsPerSecond throttles outbound requests. Zero means the default.
	// Env: ADAPTER_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`

	// PageSize is the "count" sent with stream requests.
	// Env: ADAPTER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

type Workers struct {
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// PoolSize is the number of page fetches allowed in flight at once.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// Defaults filled in for every field no source has set.
const (
	DefaultAdapterAddress    = "https://cloud.feedly.com"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultRequestsPerSecond = 4
	DefaultPageSize          = 1000
	DefaultSyncInterval      = 15 * time.Minute
	DefaultPoolSize          = 4
	DefaultDSN               = "feed-keeper.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: DefaultDSN}},
		Adapter: Adapter{
			HTTPAddress:       DefaultAdapterAddress,
			RequestTimeout:    DefaultRequestTimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
			PageSize:          DefaultPageSize,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
			PoolSize:     DefaultPoolSize,
		},
	}
}

// GetStructuredConfig loads and merges every source.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
