// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-feed-keeper/internal/adapter"
	"github.com/MKhiriev/go-feed-keeper/models"
)

func TestCollectionsToTaxonomy_MergesFeedsAcrossFolders(t *testing.T) {
	taxonomy := collectionsToTaxonomy(initialSyncFixture().collections)

	assert.Len(t, taxonomy.Folders, 2)
	assert.Len(t, taxonomy.Feeds, 3)
	assert.Equal(t, []string{"user/u1/category/tech", "user/u1/category/news"}, taxonomy.Feeds[1].FolderIDs)
	assert.Equal(t, "https://b.example/rss", taxonomy.Feeds[1].URL)
	assert.Equal(t, "https://b.example", taxonomy.Feeds[1].HomePageURL)
}

func TestCollectionsToTaxonomy_Empty(t *testing.T) {
	taxonomy := collectionsToTaxonomy(nil)

	assert.NotNil(t, taxonomy.Folders)
	assert.NotNil(t, taxonomy.Feeds)
	assert.Empty(t, taxonomy.Feeds)
}

func TestStreamItemsToArticles(t *testing.T) {
	published := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	items := []models.RemoteStreamItem{
		{ID: ""},
		{
			ID:        "a1",
			Title:     "Hello",
			Content:   "<p>hi</p>",
			Summary:   "hi",
			Author:    "ann",
			URL:       "https://a.example/1",
			Origin:    models.RemoteOrigin{StreamID: "feed/https://a.example/rss"},
			Published: &published,
		},
	}

	articles := streamItemsToArticles(items)

	assert.Equal(t, []models.Article{{
		ID:          "a1",
		FeedID:      "feed/https://a.example/rss",
		Title:       "Hello",
		ContentHTML: "<p>hi</p>",
		Summary:     "hi",
		URL:         "https://a.example/1",
		Author:      "ann",
		PublishedAt: &published,
	}}, articles)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "unauthorized", in: adapter.ErrUnauthorized, want: ErrUnauthorized},
		{name: "rate limited", in: fmt.Errorf("get: %w", adapter.ErrRateLimited), want: ErrRateLimited},
		{name: "transport", in: adapter.ErrTransport, want: ErrTransport},
		{name: "server", in: adapter.ErrServer, want: ErrRemote},
		{name: "unknown", in: errors.New("weird"), want: ErrRemote},
		{name: "cancelled", in: fmt.Errorf("get: %w", context.Canceled), want: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}

func TestMapStoreError(t *testing.T) {
	assert.NoError(t, mapStoreError(nil))

	err := mapStoreError(errors.New("disk full"))
	assert.ErrorIs(t, err, ErrLocalStorage)

	err = mapStoreError(context.DeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrLocalStorage)
}
