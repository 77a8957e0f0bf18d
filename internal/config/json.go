// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	App struct {
		AccountID   string `json:"account_id"`
		UserID      string `json:"user_id"`
		AccessToken string `json:"access_token"`
		Version     string `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		RequestsPerSecond float64  `json:"requests_per_second"`
		PageSize          int      `json:"page_size"`
	} `json:"adapter"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
		PoolSize     int      `json:"pool_size"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AccountID:   jsonCfg.App.AccountID,
			UserID:      jsonCfg.App.UserID,
			AccessToken: jsonCfg.App.AccessToken,
			Version:     jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Adapter: Adapter{
			HTTPAddress:       jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			RequestsPerSecond: jsonCfg.Adapter.RequestsPerSecond,
			PageSize:          jsonCfg.Adapter.PageSize,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
			PoolSize:     jsonCfg.Workers.PoolSize,
		},
	}

	return cfg, nil
}

// Duration unmarshals from "1h"-style strings or from nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
