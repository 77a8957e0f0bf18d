// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads go-feed-keeper settings.
//
// Values come from environment variables, command-line flags and an optional
// JSON file. Sources are merged field by field: a non-zero value from an
// earlier source is kept, so the effective priority is
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetClientConfig] returns the validated view used by the sync client.
package config
