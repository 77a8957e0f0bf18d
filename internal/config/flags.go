// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a "host:port" listen address usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads configuration from command-line arguments.
//
// Flags:
//
//	-a status API listen address in format [host]:[port]
//	-r feed API base URL
//	-driver local storage driver (sqlite3, pgx, memory)
//	-d database DSN
//	-c/-config json file path with configs
//	-account local account id
//	-user remote user id
//	-token access token
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rps outbound requests per second
//	-page-size stream page size
//	-sync-interval interval between scheduled syncs (e.g., "15m")
//	-pool-size concurrent page fetches
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("feed-keeper", flag.ContinueOnError)

	var (
		serverAddress  NetAddress
		cfg            StructuredConfig
		jsonConfigPath string
	)

	fs.Var(&serverAddress, "a", "Status API address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "r", "", "Feed API base URL")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Local storage driver: sqlite3, pgx or memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.AccountID, "account", "", "Local account id")
	fs.StringVar(&cfg.App.UserID, "user", "", "Remote user id")
	fs.StringVar(&cfg.App.AccessToken, "token", "", "Access token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.Adapter.RequestsPerSecond, "rps", 0, "Outbound requests per second")
	fs.IntVar(&cfg.Adapter.PageSize, "page-size", 0, "Stream page size")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Interval between scheduled syncs (e.g., 15m)")
	fs.IntVar(&cfg.Workers.PoolSize, "pool-size", 0, "Concurrent page fetches")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.JSONFilePath = jsonConfigPath

	return &cfg, nil
}

// String returns "host:port", or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host must be an IP, "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
