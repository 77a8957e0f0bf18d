// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the local copy of an account's feeds, articles and
// status sets.
//
// [LocalStorage] has two implementations: a SQL one (SQLite by default,
// PostgreSQL for shared installs) built with squirrel and migrated with
// goose, and an in-memory one that can snapshot itself to a JSON file.
// Both serialize writes per entity set, so concurrent sync stages touching
// different sets never wait on each other.
package store

import (
	"context"

	"github.com/MKhiriev/go-feed-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// LocalStorage is the local side of a sync run. Every entity is scoped by
// account id.
type LocalStorage interface {
	// UpsertFeedsAndFolders makes the stored taxonomy equal to taxonomy.
	// Feeds and folders missing from it are removed; surviving feeds keep
	// their EditedName.
	UpsertFeedsAndFolders(ctx context.Context, accountID string, taxonomy models.Taxonomy) error

	// UpsertArticles inserts or updates articles by id. It never deletes.
	UpsertArticles(ctx context.Context, accountID string, articles ...models.Article) error

	// ReconcileStatus makes the stored kind set equal to remoteIDs and
	// returns exactly what changed.
	ReconcileStatus(ctx context.Context, accountID string, kind models.StatusKind, remoteIDs []string) (models.StatusDelta, error)

	// QueuePendingStatusMarks appends local status changes to the outbound
	// queue. Missing ids and timestamps are filled in.
	QueuePendingStatusMarks(ctx context.Context, accountID string, marks ...models.PendingMark) error

	// DrainPendingStatusMarks returns the queued marks oldest first and
	// removes them from the queue.
	DrainPendingStatusMarks(ctx context.Context, accountID string) ([]models.PendingMark, error)

	// RenameFeed sets the user-owned display name of a feed.
	RenameFeed(ctx context.Context, accountID, feedID, editedName string) error

	Feeds(ctx context.Context, accountID string) ([]models.Feed, error)
	Folders(ctx context.Context, accountID string) ([]models.Folder, error)
	ArticleIDs(ctx context.Context, accountID string) ([]string, error)
	StatusIDs(ctx context.Context, accountID string, kind models.StatusKind) ([]string, error)

	// MissingArticleIDs returns the subset of ids with no stored article.
	MissingArticleIDs(ctx context.Context, accountID string, ids []string) ([]string, error)

	SyncState(ctx context.Context, accountID string) (models.SyncState, error)
	SaveSyncState(ctx context.Context, state models.SyncState) error

	Close() error
}

// ErrorClassificator tells transient database failures from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
