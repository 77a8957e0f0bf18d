// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// maxMarkIDsPerRequest is the largest id list sent in one markers request.
const maxMarkIDsPerRequest = 1000

// markActionOrder fixes the order in which action groups are sent.
var markActionOrder = []models.MarkAction{
	models.MarkRead,
	models.MarkUnread,
	models.MarkStarred,
	models.MarkUnstarred,
}

// pendingMarksStage flushes locally queued status changes upstream so that
// the status stages do not overwrite them with stale remote state.
type pendingMarksStage struct {
	*stageEnv
}

func (s *pendingMarksStage) Name() string { return StagePendingMarks }

func (s *pendingMarksStage) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	marks, err := s.store.DrainPendingStatusMarks(ctx, s.account.ID)
	if err != nil {
		return mapStoreError(fmt.Errorf("drain pending marks: %w", err))
	}
	if len(marks) == 0 {
		return nil
	}

	batches := batchMarks(coalesceMarks(marks))

	for i, b := range batches {
		err = s.page(ctx, func(ctx context.Context) error {
			return s.feeds.MarkArticles(ctx, s.creds, b.articleIDs(), b.action)
		})
		if err != nil {
			s.requeue(ctx, batches[i:])
			return mapAdapterError(fmt.Errorf("send %s marks: %w", b.action, err))
		}
	}

	log.Debug().
		Str("func", "pendingMarksStage.Run").
		Int("queued", len(marks)).
		Int("requests", len(batches)).
		Msg("pending marks flushed")
	return nil
}

// requeue puts unsent marks back. It runs even when ctx is cancelled.
func (s *pendingMarksStage) requeue(ctx context.Context, batches []markBatch) {
	unsent := make([]models.PendingMark, 0)
	for _, b := range batches {
		unsent = append(unsent, b.marks...)
	}

	if err := s.store.QueuePendingStatusMarks(context.WithoutCancel(ctx), s.account.ID, unsent...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingMarksStage.requeue").
			Int("marks", len(unsent)).
			Msg("failed to re-queue unsent marks")
	}
}

// coalesceMarks keeps the latest mark per article and status kind. marks
// must be ordered oldest first; the result keeps that order.
func coalesceMarks(marks []models.PendingMark) []models.PendingMark {
	type key struct {
		articleID string
		kind      models.StatusKind
	}

	latest := make(map[key]int, len(marks))
	for i, m := range marks {
		latest[key{m.ArticleID, m.Action.Kind()}] = i
	}

	out := make([]models.PendingMark, 0, len(latest))
	for i, m := range marks {
		if latest[key{m.ArticleID, m.Action.Kind()}] == i {
			out = append(out, m)
		}
	}
	return out
}

type markBatch struct {
	action models.MarkAction
	marks  []models.PendingMark
}

func (b markBatch) articleIDs() []string {
	ids := make([]string, 0, len(b.marks))
	for _, m := range b.marks {
		ids = append(ids, m.ArticleID)
	}
	return ids
}

// batchMarks groups marks by action and splits every group into requests of
// at most maxMarkIDsPerRequest ids.
func batchMarks(marks []models.PendingMark) []markBatch {
	byAction := make(map[models.MarkAction][]models.PendingMark)
	for _, m := range marks {
		byAction[m.Action] = append(byAction[m.Action], m)
	}

	batches := make([]markBatch, 0)
	for _, action := range markActionOrder {
		for chunk := range slices.Chunk(byAction[action], maxMarkIDsPerRequest) {
			batches = append(batches, markBatch{action: action, marks: chunk})
		}
	}
	return batches
}
