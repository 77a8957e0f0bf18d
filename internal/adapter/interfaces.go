// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote feed-aggregation API.
//
// [FeedService] hides the wire protocol from the sync stages. The HTTP
// implementation ([NewHTTPFeedService]) speaks the Feedly cloud API v3 over
// resty, paces requests with a token bucket exposed as a [Throttler] and maps HTTP failures to the
// sentinel errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-feed-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/feed_service_mock.go -package=mock

// FeedService is the remote side of a sync run. Every method authenticates
// with the given credentials snapshot and aborts when ctx is cancelled.
type FeedService interface {
	// GetCollections returns the folder/feed taxonomy of the account.
	GetCollections(ctx context.Context, creds models.Credentials) ([]models.RemoteCollection, error)

	// GetStreamContents returns one page of full entries of a stream.
	GetStreamContents(ctx context.Context, creds models.Credentials, req models.StreamRequest) (models.RemoteStreamContents, error)

	// GetStreamIDs returns one page of entry IDs of a stream.
	GetStreamIDs(ctx context.Context, creds models.Credentials, req models.StreamRequest) (models.RemoteStreamIDs, error)

	// MarkArticles applies action to every entry in ids. Applying the same
	// action twice is harmless.
	MarkArticles(ctx context.Context, creds models.Credentials, ids []string, action models.MarkAction) error

	// GetEntries fetches full entries by ID. Unknown IDs are left out of the
	// result.
	GetEntries(ctx context.Context, creds models.Credentials, ids []string) ([]models.RemoteStreamItem, error)
}

// Throttler is implemented by feed services that pace their own requests.
// Callers wait on it before each request and before taking a worker slot,
// so the slot only covers the round-trip.
type Throttler interface {
	Wait(ctx context.Context) error
}
