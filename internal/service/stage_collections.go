// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// collectionsStage mirrors the remote folder and feed taxonomy.
type collectionsStage struct {
	*stageEnv
}

func (s *collectionsStage) Name() string { return StageCollections }

func (s *collectionsStage) Run(ctx context.Context) error {
	var collections []models.RemoteCollection
	err := s.page(ctx, func(ctx context.Context) error {
		var err error
		collections, err = s.feeds.GetCollections(ctx, s.creds)
		return err
	})
	if err != nil {
		return mapAdapterError(fmt.Errorf("get collections: %w", err))
	}

	taxonomy := collectionsToTaxonomy(collections)
	if err = s.store.UpsertFeedsAndFolders(ctx, s.account.ID, taxonomy); err != nil {
		return mapStoreError(fmt.Errorf("store taxonomy: %w", err))
	}

	logger.FromContext(ctx).Debug().
		Str("func", "collectionsStage.Run").
		Int("folders", len(taxonomy.Folders)).
		Int("feeds", len(taxonomy.Feeds)).
		Msg("taxonomy synced")
	return nil
}
