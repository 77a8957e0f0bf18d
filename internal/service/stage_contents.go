// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// contentsStage pages through an article stream and upserts every page as
// it arrives.
type contentsStage struct {
	*stageEnv

	name      string
	streamID  string
	newerThan *time.Time
}

func (s *contentsStage) Name() string { return s.name }

func (s *contentsStage) Run(ctx context.Context) error {
	req := models.StreamRequest{StreamID: s.streamID, NewerThan: s.newerThan}
	total := 0

	err := paginate(ctx, func(ctx context.Context, continuation string) (string, error) {
		req.Continuation = continuation

		var page models.RemoteStreamContents
		err := s.page(ctx, func(ctx context.Context) error {
			var err error
			page, err = s.feeds.GetStreamContents(ctx, s.creds, req)
			return err
		})
		if err != nil {
			return "", mapAdapterError(fmt.Errorf("get stream contents %s: %w", s.streamID, err))
		}

		articles := streamItemsToArticles(page.Items)
		if err = s.store.UpsertArticles(ctx, s.account.ID, articles...); err != nil {
			return "", mapStoreError(fmt.Errorf("store articles: %w", err))
		}
		total += len(articles)

		return page.Continuation, nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "contentsStage.Run").
		Str("stream_id", s.streamID).
		Bool("incremental", s.newerThan != nil).
		Int("articles", total).
		Msg("stream contents synced")
	return nil
}

// paginate calls fetch with the continuation returned by the previous call
// until it is empty. ctx is checked before every page.
func paginate(ctx context.Context, fetch func(ctx context.Context, continuation string) (string, error)) error {
	continuation := ""
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := fetch(ctx, continuation)
		if err != nil {
			return err
		}
		if next == "" {
			return nil
		}
		if next == continuation {
			return fmt.Errorf("%w: continuation %q did not advance", ErrRemote, next)
		}
		continuation = next
	}
}
