// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client application runtime.
//
// It runs the scheduled sync job and, when configured, the local status
// API as workers of one process, and stops them together on SIGINT, SIGTERM
// or SIGQUIT.
package client
