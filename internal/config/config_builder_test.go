// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func builderWithArgs(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := builderWithArgs().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := builderWithArgs()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := builderWithArgs()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", UserID: "u-1"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "u-1", cfg.App.UserID)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_ACCOUNT_ID", "acc-env")
	t.Setenv("WORKERS_POOL_SIZE", "8")

	b := builderWithArgs().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "acc-env", b.configs[0].App.AccountID)
	assert.Equal(t, 8, b.configs[0].Workers.PoolSize)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := builderWithArgs("-no-such-flag").withFlags()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := builderWithArgs()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"user_id": "json-user"},
	})

	b := builderWithArgs()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-user", b.configs[1].App.UserID)
}

func TestWithJSON_FirstPathWins(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := builderWithArgs()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := builderWithArgs()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_SkipsWhenErrorAlreadySet(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	b := builderWithArgs()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.Len(t, b.configs, 1)
}

func TestBuilder_PriorityEnvFlagsJSONDefaults(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"account_id": "json-acc", "user_id": "json-user", "access_token": "json-token"},
		"workers": map[string]any{"pool_size": 2},
	})
	t.Setenv("APP_ACCOUNT_ID", "env-acc")

	cfg, err := builderWithArgs("-c", path, "-user", "flag-user").
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-acc", cfg.App.AccountID)
	assert.Equal(t, "flag-user", cfg.App.UserID)
	assert.Equal(t, "json-token", cfg.App.AccessToken)
	assert.Equal(t, 2, cfg.Workers.PoolSize)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultPageSize, cfg.Adapter.PageSize)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}
