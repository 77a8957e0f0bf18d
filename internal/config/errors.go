// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by GetClientConfig.
var (
	// ErrInvalidAdapterConfigs: missing or malformed feed API URL, non-positive
	// timeout or page size, negative rate.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: unknown driver or empty DSN for a SQL driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs: account id, remote user id or access token missing.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs: non-positive sync interval or pool size.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs: status API address is not "host:port".
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
