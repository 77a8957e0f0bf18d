// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feed-keeper/models"
)

// ClientSyncService starts and cancels sync runs.
type ClientSyncService interface {
	// StartSync starts a run for account and returns at once. A nil
	// lastSuccessfulFetchStartDate fetches the article stream in full.
	StartSync(ctx context.Context, account models.Account, creds models.Credentials, lastSuccessfulFetchStartDate *time.Time) *SyncRun

	// Cancel cancels run. Cancelling a finished run is a no-op.
	Cancel(run *SyncRun)
}

// ClientSyncJob drives sync runs for one account, on a schedule and on
// demand.
type ClientSyncJob interface {
	// Start launches a goroutine that starts a run every interval (15 minutes
	// when interval is not positive). A previously started schedule is
	// stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop stops the schedule, cancels the active run and waits for both.
	Stop()

	// SyncNow starts a run unless one is active, in which case it returns
	// ErrSyncInProgress.
	SyncNow(ctx context.Context) (*SyncRun, error)

	// CancelCurrent cancels the active run or returns ErrNoActiveSync.
	CancelCurrent() error

	// Status describes the active or the last run.
	Status(ctx context.Context) models.SyncStatus

	// Run syncs once, starts the schedule and blocks until ctx is done.
	Run(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// LocalDataService serves the locally stored account data and records user
// changes that the next sync run sends upstream.
type LocalDataService interface {
	Feeds(ctx context.Context) ([]models.Feed, error)

	// RenameFeed sets the display name of a feed. An empty name restores the
	// remote title.
	RenameFeed(ctx context.Context, feedID, name string) error

	// QueueStatusMarks queues read/unread and star changes.
	QueueStatusMarks(ctx context.Context, marks ...models.PendingMark) error
}
