// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// maxEntriesPerRequest is the largest id list sent in one entries request.
const maxEntriesPerRequest = 500

// missingArticlesStage fetches the articles referenced by the status sets
// that are not stored yet, e.g. unread entries older than the watermark.
type missingArticlesStage struct {
	*stageEnv
}

func (s *missingArticlesStage) Name() string { return StageMissingArticles }

func (s *missingArticlesStage) Run(ctx context.Context) error {
	referenced := make([]string, 0)
	for _, kind := range []models.StatusKind{models.StatusUnread, models.StatusStarred} {
		ids, err := s.store.StatusIDs(ctx, s.account.ID, kind)
		if err != nil {
			return mapStoreError(fmt.Errorf("read %s set: %w", kind, err))
		}
		referenced = append(referenced, ids...)
	}

	missing, err := s.store.MissingArticleIDs(ctx, s.account.ID, referenced)
	if err != nil {
		return mapStoreError(fmt.Errorf("find missing articles: %w", err))
	}
	if len(missing) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for chunk := range slices.Chunk(missing, maxEntriesPerRequest) {
		g.Go(func() error {
			return s.fetch(gctx, chunk)
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "missingArticlesStage.Run").
		Int("missing", len(missing)).
		Msg("missing articles fetched")
	return nil
}

func (s *missingArticlesStage) fetch(ctx context.Context, ids []string) error {
	var items []models.RemoteStreamItem
	err := s.page(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.feeds.GetEntries(ctx, s.creds, ids)
		return err
	})
	if err != nil {
		return mapAdapterError(fmt.Errorf("get entries: %w", err))
	}

	if err = s.store.UpsertArticles(ctx, s.account.ID, streamItemsToArticles(items)...); err != nil {
		return mapStoreError(fmt.Errorf("store fetched articles: %w", err))
	}
	return nil
}
