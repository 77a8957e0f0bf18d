// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
	"github.com/MKhiriev/go-feed-keeper/models"
)

type localDataService struct {
	localStore store.LocalStorage
	accountID  string

	logger *logger.Logger
}

func NewLocalDataService(localStore store.LocalStorage, account models.Account, logger *logger.Logger) LocalDataService {
	return &localDataService{
		localStore: localStore,
		accountID:  account.ID,
		logger:     logger,
	}
}

func (s *localDataService) Feeds(ctx context.Context) ([]models.Feed, error) {
	feeds, err := s.localStore.Feeds(ctx, s.accountID)
	if err != nil {
		return nil, mapStoreError(fmt.Errorf("list feeds: %w", err))
	}
	return feeds, nil
}

func (s *localDataService) RenameFeed(ctx context.Context, feedID, name string) error {
	if strings.TrimSpace(feedID) == "" {
		return fmt.Errorf("%w: empty feed id", ErrInvalidDataProvided)
	}

	if err := s.localStore.RenameFeed(ctx, s.accountID, feedID, strings.TrimSpace(name)); err != nil {
		return mapStoreError(fmt.Errorf("rename feed %s: %w", feedID, err))
	}

	logger.FromContextOr(ctx, s.logger).Info().
		Str("func", "localDataService.RenameFeed").
		Str("feed_id", feedID).
		Msg("feed renamed")
	return nil
}

func (s *localDataService) QueueStatusMarks(ctx context.Context, marks ...models.PendingMark) error {
	if len(marks) == 0 {
		return fmt.Errorf("%w: no marks", ErrInvalidDataProvided)
	}
	for _, m := range marks {
		if m.ArticleID == "" || !m.Action.Valid() {
			return fmt.Errorf("%w: mark %q for article %q", ErrInvalidDataProvided, m.Action, m.ArticleID)
		}
	}

	if err := s.localStore.QueuePendingStatusMarks(ctx, s.accountID, marks...); err != nil {
		return mapStoreError(fmt.Errorf("queue marks: %w", err))
	}
	return nil
}
