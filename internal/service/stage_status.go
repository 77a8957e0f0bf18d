// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// statusStage collects a remote id stream to exhaustion and makes the local
// status set of kind equal to it. Nothing is written unless every page
// arrived.
type statusStage struct {
	*stageEnv

	name       string
	kind       models.StatusKind
	streamID   string
	unreadOnly bool
}

func (s *statusStage) Name() string { return s.name }

func (s *statusStage) Run(ctx context.Context) error {
	req := models.StreamRequest{StreamID: s.streamID, UnreadOnly: s.unreadOnly}
	ids := make([]string, 0)

	err := paginate(ctx, func(ctx context.Context, continuation string) (string, error) {
		req.Continuation = continuation

		var page models.RemoteStreamIDs
		err := s.page(ctx, func(ctx context.Context) error {
			var err error
			page, err = s.feeds.GetStreamIDs(ctx, s.creds, req)
			return err
		})
		if err != nil {
			return "", mapAdapterError(fmt.Errorf("get stream ids %s: %w", s.streamID, err))
		}

		ids = append(ids, page.IDs...)
		return page.Continuation, nil
	})
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	delta, err := s.store.ReconcileStatus(ctx, s.account.ID, s.kind, ids)
	if err != nil {
		return mapStoreError(fmt.Errorf("reconcile %s: %w", s.kind, err))
	}

	logger.FromContext(ctx).Debug().
		Str("func", "statusStage.Run").
		Str("kind", string(s.kind)).
		Int("remote", len(ids)).
		Int("added", len(delta.Added)).
		Int("removed", len(delta.Removed)).
		Msg("status set reconciled")
	return nil
}
