// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// DefaultSyncInterval is used when Start gets a non-positive interval.
const DefaultSyncInterval = 15 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	localStore  store.LocalStorage
	account     models.Account
	creds       models.Credentials
	interval    time.Duration
	now         func() time.Time

	mu      sync.Mutex
	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	current *SyncRun

	// saving tracks watermark writes of finished runs
	saving sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a job that syncs account with creds. The job is
// idle until Start, Run or SyncNow is called.
func NewClientSyncJob(syncService ClientSyncService, localStore store.LocalStorage, account models.Account, creds models.Credentials, interval time.Duration, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		localStore:  localStore,
		account:     account,
		creds:       creds,
		interval:    interval,
		now:         time.Now,
		baseCtx:     context.Background(),
		logger:      logger,
	}
}

// Run implements workers.Worker. It syncs once right away, then on the
// schedule.
func (j *clientSyncJob) Run(ctx context.Context) error {
	j.Start(ctx, j.interval)
	if _, err := j.SyncNow(ctx); err != nil {
		j.logger.Warn().
			Err(err).
			Str("func", "clientSyncJob.Run").
			Msg("initial sync was not started")
	}

	<-ctx.Done()
	j.Stop()
	return nil
}

// Start implements ClientSyncJob. Runs started by the schedule or by SyncNow
// afterwards are cancelled together with ctx.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.baseCtx = jobCtx
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.SyncNow(jobCtx); err != nil {
					j.logger.Debug().
						Err(err).
						Str("func", "clientSyncJob.Start").
						Msg("scheduled sync was not started")
				}
			}
		}
	}()
}

// Stop implements ClientSyncJob.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	run := j.current
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()

	if run != nil {
		run.Cancel()
		<-run.Done()
	}

	j.mu.Lock()
	j.saving.Wait()
	j.mu.Unlock()
}

// SyncNow implements ClientSyncJob. ctx only bounds reading the watermark;
// the run itself lives until it finishes or the job is stopped.
func (j *clientSyncJob) SyncNow(ctx context.Context) (*SyncRun, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.current != nil && !j.current.State().Terminal() {
		return nil, ErrSyncInProgress
	}
	j.saving.Wait()

	state, err := j.localStore.SyncState(ctx, j.account.ID)
	if err != nil {
		return nil, mapStoreError(fmt.Errorf("read sync state: %w", err))
	}

	startedAt := j.now()
	run := j.syncService.StartSync(j.baseCtx, j.account, j.creds, state.LastSuccessfulFetchStart)
	j.current = run

	j.saving.Add(1)
	go j.persistWatermark(run, startedAt)

	return run, nil
}

// persistWatermark stores startedAt as the new watermark once run completes.
func (j *clientSyncJob) persistWatermark(run *SyncRun, startedAt time.Time) {
	defer j.saving.Done()

	<-run.Done()
	if run.State() != models.RunCompleted {
		return
	}

	state := models.SyncState{AccountID: j.account.ID, LastSuccessfulFetchStart: &startedAt}
	if err := j.localStore.SaveSyncState(context.Background(), state); err != nil {
		j.logger.Err(err).
			Str("func", "clientSyncJob.persistWatermark").
			Str("run_id", run.ID).
			Msg("failed to save sync watermark")
	}
}

// CancelCurrent implements ClientSyncJob.
func (j *clientSyncJob) CancelCurrent() error {
	j.mu.Lock()
	run := j.current
	j.mu.Unlock()

	if run == nil || run.State().Terminal() {
		return ErrNoActiveSync
	}

	j.syncService.Cancel(run)
	return nil
}

// Status implements ClientSyncJob.
func (j *clientSyncJob) Status(ctx context.Context) models.SyncStatus {
	j.mu.Lock()
	run := j.current
	j.mu.Unlock()

	status := models.SyncStatus{State: models.RunIdle}
	if run != nil {
		status = run.Status()
	}

	state, err := j.localStore.SyncState(ctx, j.account.ID)
	if err != nil && !errors.Is(err, context.Canceled) {
		j.logger.Warn().
			Err(err).
			Str("func", "clientSyncJob.Status").
			Msg("failed to read sync state")
	}
	status.LastSuccessfulFetchStart = state.LastSuccessfulFetchStart

	return status
}
