// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs long-lived background workers and bounds concurrent
// short jobs.
//
// Workers groups the long-lived components of the client (the scheduled
// sync job, the status server) so the application can start them together
// and wait for all of them. Pool limits how many remote page fetches are in
// flight at once across every sync stage.
package workers

import "context"

// Worker is a long-lived background component.
//
// Run blocks until ctx is cancelled or the worker finishes on its own and
// returns the error that stopped it, nil on a clean shutdown.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
