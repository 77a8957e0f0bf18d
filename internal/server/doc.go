// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the local status API.
//
// The server is a workers.Worker: it serves until its context is cancelled
// and then shuts down gracefully, so the client application can run it next
// to the scheduled sync job.
package server
