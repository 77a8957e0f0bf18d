// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-keeper/internal/progress"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// SyncRun is one invocation of the orchestrator. It is safe for concurrent
// use.
type SyncRun struct {
	ID        string
	AccountID string
	StartedAt time.Time

	tracker *progress.Tracker
	cancel  context.CancelFunc
	done    chan struct{}

	mu         sync.Mutex
	state      models.RunState
	err        error
	reports    []models.StageReport
	finishedAt *time.Time
	onComplete func(err error)
	onFinish   func()
}

func newSyncRun(id string, req models.SyncRequest, now time.Time) *SyncRun {
	return &SyncRun{
		ID:         id,
		AccountID:  req.Account.ID,
		StartedAt:  now,
		tracker:    progress.NewTracker(),
		cancel:     func() {},
		done:       make(chan struct{}),
		state:      models.RunIdle,
		onComplete: req.OnComplete,
		onFinish:   req.OnFinish,
	}
}

// Cancel requests cancellation. Stages stop at their next page boundary.
func (r *SyncRun) Cancel() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	cancel()
}

// Done is closed after the run reached a terminal state and released its
// resources.
func (r *SyncRun) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the run finishes or ctx is done. It returns nil for a
// completed run, ErrCancelled for a cancelled one and the failure cause
// otherwise.
func (r *SyncRun) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *SyncRun) State() models.RunState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err returns the outcome of a finished run: nil, ErrCancelled or the first
// failure cause.
func (r *SyncRun) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *SyncRun) Progress() *progress.Tracker {
	return r.tracker
}

// Reports returns the stage reports recorded so far, in completion order.
func (r *SyncRun) Reports() []models.StageReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.reports)
}

// Status is a snapshot of the run for status endpoints.
func (r *SyncRun) Status() models.SyncStatus {
	snap := r.tracker.Snapshot()

	r.mu.Lock()
	defer r.mu.Unlock()

	started := r.StartedAt
	status := models.SyncStatus{
		State:      r.state,
		RunID:      r.ID,
		Pending:    snap.Pending,
		InFlight:   snap.InFlight,
		StartedAt:  &started,
		FinishedAt: r.finishedAt,
		Stages:     slices.Clone(r.reports),
	}
	if r.err != nil {
		status.LastError = r.err.Error()
	}
	return status
}

func (r *SyncRun) setRunning(cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = models.RunRunning
	r.cancel = cancel
}

func (r *SyncRun) addReport(report models.StageReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
}

// finish moves the run to its terminal state and fires the callbacks. The
// completion callback is cleared first, so it can fire at most once and
// never for a cancelled run.
func (r *SyncRun) finish(cancelled bool, cause error, now time.Time) {
	r.mu.Lock()
	if r.state.Terminal() {
		r.mu.Unlock()
		return
	}

	var result error
	switch {
	case cancelled:
		r.state = models.RunCancelled
		r.err = ErrCancelled
	case cause != nil:
		r.state = models.RunFailed
		r.err = cause
		result = cause
	default:
		r.state = models.RunCompleted
	}
	r.finishedAt = &now

	onComplete, onFinish := r.onComplete, r.onFinish
	r.onComplete, r.onFinish = nil, nil
	cancel := r.cancel
	state := r.state
	r.mu.Unlock()

	r.tracker.Drain()
	cancel()

	if onComplete != nil && state != models.RunCancelled {
		onComplete(result)
	}
	if onFinish != nil {
		onFinish()
	}
	close(r.done)
}
