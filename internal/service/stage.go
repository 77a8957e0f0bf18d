// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-feed-keeper/internal/adapter"
	"github.com/MKhiriev/go-feed-keeper/internal/progress"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
	"github.com/MKhiriev/go-feed-keeper/internal/workers"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// Stage names as they appear in reports and logs.
const (
	StagePendingMarks    = "pending_status_marks"
	StageCollections     = "collections"
	StageContentsAll     = "contents_global_all"
	StageContentsSaved   = "contents_global_saved"
	StageUnreadStatus    = "unread_status"
	StageStarredStatus   = "starred_status"
	StageMissingArticles = "missing_articles"
)

// stage is one unit of a sync run, bound to one remote concern.
type stage interface {
	Name() string
	Run(ctx context.Context) error
}

// stageEnv is what every stage of a run shares.
type stageEnv struct {
	feeds   adapter.FeedService
	store   store.LocalStorage
	pool    *workers.Pool
	tracker *progress.Tracker

	account models.Account
	creds   models.Credentials
}

// page runs one remote round-trip as a pool job and accounts for it in the
// tracker. A throttled feed service is waited on before the slot is taken.
// A page that never gets a slot is retired as well.
func (e *stageEnv) page(ctx context.Context, fn func(ctx context.Context) error) error {
	e.tracker.AddTasks(1)
	defer e.tracker.TaskCompleted()

	if t, ok := e.feeds.(adapter.Throttler); ok {
		if err := t.Wait(ctx); err != nil {
			return err
		}
	}

	return e.pool.Do(ctx, func(ctx context.Context) error {
		e.tracker.TaskStarted()
		return fn(ctx)
	})
}
