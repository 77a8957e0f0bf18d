// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-feed-keeper/internal/adapter"
	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/mock"
	"github.com/MKhiriev/go-feed-keeper/internal/workers"
	"github.com/MKhiriev/go-feed-keeper/models"
)

type callbacks struct {
	completed atomic.Int64
	finished  atomic.Int64
	lastErr   atomic.Value
}

func (c *callbacks) request(last *time.Time) models.SyncRequest {
	return models.SyncRequest{
		Account:                      testAccount,
		Credentials:                  testCreds,
		LastSuccessfulFetchStartDate: last,
		OnComplete: func(err error) {
			c.completed.Add(1)
			if err != nil {
				c.lastErr.Store(err)
			}
		},
		OnFinish: func() { c.finished.Add(1) },
	}
}

func (c *callbacks) err() error {
	err, _ := c.lastErr.Load().(error)
	return err
}

func stageOutcomes(run *SyncRun) map[string]models.StageOutcome {
	out := make(map[string]models.StageOutcome)
	for _, r := range run.Reports() {
		out[r.Stage] = r.Outcome
	}
	return out
}

var allStages = []string{
	StagePendingMarks,
	StageCollections,
	StageContentsAll,
	StageContentsSaved,
	StageUnreadStatus,
	StageStarredStatus,
	StageMissingArticles,
}

// ── end to end ───────────────────────────────────────────────────────────────

func TestSyncAllOrchestrator_InitialSync(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	localStore := newTestStore(t)
	cb := &callbacks{}

	run := newTestOrchestrator(feeds, localStore).Start(context.Background(), cb.request(nil))
	require.NoError(t, waitRun(t, run))

	assert.Equal(t, models.RunCompleted, run.State())
	assert.Equal(t, int64(1), cb.completed.Load())
	assert.Equal(t, int64(1), cb.finished.Load())
	assert.NoError(t, cb.err())

	snap := snapshotStore(t, localStore)
	assert.Equal(t, []models.Folder{
		{ID: "user/u1/category/news", Name: "News"},
		{ID: "user/u1/category/tech", Name: "Tech"},
	}, snap.Folders)

	require.Len(t, snap.Feeds, 3)
	assert.Equal(t, "feed/https://b.example/rss", snap.Feeds[1].ID)
	assert.ElementsMatch(t, []string{"user/u1/category/tech", "user/u1/category/news"}, snap.Feeds[1].FolderIDs)
	assert.Equal(t, "https://a.example/rss", snap.Feeds[0].URL)

	assert.Equal(t, []string{"a1", "a2", "b1", "c1", "c2", "s1"}, snap.Articles)
	assert.Equal(t, []string{"a1", "b1", "c2"}, snap.Unread)
	assert.Equal(t, []string{"b1", "s1"}, snap.Starred)

	outcomes := stageOutcomes(run)
	for _, name := range allStages {
		assert.Equal(t, models.StageSucceeded, outcomes[name], name)
	}

	// every stored article was already streamed
	assert.Zero(t, feeds.log.count("GetEntries"))
}

func TestSyncAllOrchestrator_ChangeStatuses(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	localStore := newTestStore(t)
	orchestrator := newTestOrchestrator(feeds, localStore)

	require.NoError(t, waitRun(t, orchestrator.Start(context.Background(), (&callbacks{}).request(nil))))
	before := snapshotStore(t, localStore)

	changed := changeStatusesFixture()
	feeds.setStatuses(changed.unread, changed.starred)

	require.NoError(t, waitRun(t, orchestrator.Start(context.Background(), (&callbacks{}).request(nil))))
	after := snapshotStore(t, localStore)

	assert.Equal(t, []string{"a2", "c2"}, after.Unread)
	assert.Equal(t, []string{"s1"}, after.Starred)
	assert.Equal(t, before.Articles, after.Articles)
	assert.Equal(t, before.Feeds, after.Feeds)
	assert.Equal(t, before.Folders, after.Folders)
}

func TestSyncAllOrchestrator_Idempotent(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	localStore := newTestStore(t)
	orchestrator := newTestOrchestrator(feeds, localStore)

	require.NoError(t, waitRun(t, orchestrator.Start(context.Background(), (&callbacks{}).request(nil))))
	first := snapshotStore(t, localStore)

	require.NoError(t, waitRun(t, orchestrator.Start(context.Background(), (&callbacks{}).request(nil))))
	second := snapshotStore(t, localStore)

	assert.Equal(t, first, second)
}

func TestSyncAllOrchestrator_StatusConvergence(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	localStore := newTestStore(t)

	// stale local state: x and y are unknown remotely, c2 is missing
	_, err := localStore.ReconcileStatus(context.Background(), testAccount.ID, models.StatusUnread, []string{"a1", "b1", "x"})
	require.NoError(t, err)
	_, err = localStore.ReconcileStatus(context.Background(), testAccount.ID, models.StatusStarred, []string{"y"})
	require.NoError(t, err)

	run := newTestOrchestrator(feeds, localStore).Start(context.Background(), (&callbacks{}).request(nil))
	require.NoError(t, waitRun(t, run))

	snap := snapshotStore(t, localStore)
	assert.Equal(t, []string{"a1", "b1", "c2"}, snap.Unread)
	assert.Equal(t, []string{"b1", "s1"}, snap.Starred)
}

func TestSyncAllOrchestrator_IncrementalFetchesMissingArticles(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	localStore := newTestStore(t)
	watermark := fixtureBase.Add(3 * time.Hour)

	run := newTestOrchestrator(feeds, localStore).Start(context.Background(), (&callbacks{}).request(&watermark))
	require.NoError(t, waitRun(t, run))

	snap := snapshotStore(t, localStore)
	// a1 is unread but older than the watermark, a2 is neither
	assert.Equal(t, []string{"a1", "b1", "c1", "c2", "s1"}, snap.Articles)
	assert.Equal(t, 1, feeds.log.count("GetEntries"))
}

// ── ordering ─────────────────────────────────────────────────────────────────

func TestSyncAllOrchestrator_CollectionsStoredBeforeArticleStreams(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	localStore := &recordingStore{LocalStorage: newTestStore(t), log: feeds.log}

	run := newTestOrchestrator(feeds, localStore).Start(context.Background(), (&callbacks{}).request(nil))
	require.NoError(t, waitRun(t, run))

	events := feeds.log.list()
	stored := slices.Index(events, "taxonomy stored")
	require.GreaterOrEqual(t, stored, 0)

	for i, e := range events {
		if e == "GetStreamContents:"+models.GlobalAllStreamID(testUserID) ||
			e == "GetStreamIDs:"+models.GlobalAllStreamID(testUserID) ||
			e == "GetEntries" {
			assert.Greater(t, i, stored, "%s requested before the taxonomy was stored", e)
		}
	}
	assert.Less(t, slices.Index(events, "GetCollections"), stored)
}

func TestSyncAllOrchestrator_PendingMarksSentFirst(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	localStore := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, localStore.QueuePendingStatusMarks(ctx, testAccount.ID,
		models.PendingMark{ArticleID: "a1", Action: models.MarkRead, QueuedAt: base},
		models.PendingMark{ArticleID: "a1", Action: models.MarkUnread, QueuedAt: base.Add(time.Second)},
		models.PendingMark{ArticleID: "c1", Action: models.MarkStarred, QueuedAt: base},
	))

	run := newTestOrchestrator(feeds, localStore).Start(ctx, (&callbacks{}).request(nil))
	require.NoError(t, waitRun(t, run))

	assert.Empty(t, feeds.sentMarks(models.MarkRead))
	assert.Equal(t, []string{"a1"}, feeds.sentMarks(models.MarkUnread))
	assert.Equal(t, []string{"c1"}, feeds.sentMarks(models.MarkStarred))

	events := feeds.log.list()
	assert.Less(t, slices.Index(events, "MarkArticles:markUnread"), slices.Index(events, "GetCollections"))

	left, err := localStore.DrainPendingStatusMarks(ctx, testAccount.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

// ── progress ─────────────────────────────────────────────────────────────────

func TestSyncAllOrchestrator_ProgressCompletes(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	feeds.pageSize = 1
	localStore := newTestStore(t)

	run := newTestOrchestrator(feeds, localStore).Start(context.Background(), (&callbacks{}).request(nil))

	updates, unsubscribe := run.Progress().Subscribe()
	defer unsubscribe()

	require.NoError(t, waitRun(t, run))

	assert.True(t, run.Progress().IsComplete())
	assert.Equal(t, 0, run.Progress().Snapshot().Outstanding())

	select {
	case snap := <-updates:
		assert.GreaterOrEqual(t, snap.Pending, 0)
		assert.GreaterOrEqual(t, snap.InFlight, 0)
	default:
	}

	status := run.Status()
	assert.Equal(t, models.RunCompleted, status.State)
	assert.Zero(t, status.Pending)
	assert.Zero(t, status.InFlight)
	assert.Len(t, status.Stages, len(allStages))
	require.NotNil(t, status.FinishedAt)
}

// ── cancellation ─────────────────────────────────────────────────────────────

func TestSyncAllOrchestrator_CancelledBeforeStart_NoRemoteCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations: any remote call fails the test
	feeds := mock.NewMockFeedService(ctrl)
	localStore := newTestStore(t)
	cb := &callbacks{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	orchestrator := NewSyncAllOrchestrator(feeds, localStore, workers.NewPool(2), logger.Nop())
	run := orchestrator.Start(ctx, cb.request(nil))

	err := waitRun(t, run)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, models.RunCancelled, run.State())
	assert.Zero(t, cb.completed.Load(), "OnComplete must not fire for a cancelled run")
	assert.Equal(t, int64(1), cb.finished.Load())
	assert.True(t, run.Progress().IsComplete())

	for _, name := range allStages {
		assert.Equal(t, models.StageSkipped, stageOutcomes(run)[name], name)
	}
}

func TestSyncAllOrchestrator_CancelDuringFirstStage_NoRemoteCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedService(ctrl)
	cb := &callbacks{}

	entered := make(chan struct{})
	localStore := &recordingStore{
		LocalStorage: newTestStore(t),
		log:          &eventLog{},
		beforeDrain: func(ctx context.Context) {
			close(entered)
			<-ctx.Done()
		},
	}

	orchestrator := NewSyncAllOrchestrator(feeds, localStore, workers.NewPool(2), logger.Nop())
	run := orchestrator.Start(context.Background(), cb.request(nil))

	<-entered
	orchestrator.Cancel(run)

	assert.ErrorIs(t, waitRun(t, run), ErrCancelled)
	assert.Zero(t, cb.completed.Load())
	assert.Equal(t, int64(1), cb.finished.Load())

	outcomes := stageOutcomes(run)
	assert.Equal(t, models.StageCancelled, outcomes[StagePendingMarks])
	assert.Equal(t, models.StageSkipped, outcomes[StageCollections])
	assert.Equal(t, models.StageSkipped, outcomes[StageMissingArticles])
}

func TestSyncAllOrchestrator_CancelAfterFinish_NoOp(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	orchestrator := newTestOrchestrator(feeds, newTestStore(t))
	cb := &callbacks{}

	run := orchestrator.Start(context.Background(), cb.request(nil))
	require.NoError(t, waitRun(t, run))

	orchestrator.Cancel(run)
	orchestrator.Cancel(nil)

	assert.Equal(t, models.RunCompleted, run.State())
	assert.Equal(t, int64(1), cb.completed.Load())
	assert.Equal(t, int64(1), cb.finished.Load())
}

// ── failures ─────────────────────────────────────────────────────────────────

func TestSyncAllOrchestrator_StageFailure_FailsRun(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	feeds.setFailure("GetStreamIDs", adapter.ErrUnauthorized)
	cb := &callbacks{}

	run := newTestOrchestrator(feeds, newTestStore(t)).Start(context.Background(), cb.request(nil))
	err := waitRun(t, run)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, models.RunFailed, run.State())
	assert.Equal(t, int64(1), cb.completed.Load())
	assert.ErrorIs(t, cb.err(), ErrUnauthorized)
	assert.Equal(t, int64(1), cb.finished.Load())
	assert.True(t, run.Progress().IsComplete())

	outcomes := stageOutcomes(run)
	assert.Equal(t, models.StageSucceeded, outcomes[StageCollections])
	assert.Equal(t, models.StageSkipped, outcomes[StageMissingArticles])
	assert.Zero(t, feeds.log.count("GetEntries"))
}

func TestSyncAllOrchestrator_PendingMarksFailure_AbortsAndRequeues(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	feeds.setFailure("MarkArticles", adapter.ErrTransport)
	localStore := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, localStore.QueuePendingStatusMarks(ctx, testAccount.ID,
		models.PendingMark{ArticleID: "a1", Action: models.MarkRead},
		models.PendingMark{ArticleID: "b1", Action: models.MarkUnstarred},
	))

	run := newTestOrchestrator(feeds, localStore).Start(ctx, (&callbacks{}).request(nil))
	err := waitRun(t, run)

	assert.ErrorIs(t, err, ErrTransport)
	assert.Zero(t, feeds.log.count("GetCollections"))

	left, err := localStore.DrainPendingStatusMarks(ctx, testAccount.ID)
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.ElementsMatch(t, []string{"a1", "b1"}, []string{left[0].ArticleID, left[1].ArticleID})
}

func TestSyncAllOrchestrator_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	localStore := mock.NewMockLocalStorage(ctrl)
	localStore.EXPECT().
		DrainPendingStatusMarks(gomock.Any(), testAccount.ID).
		Return(nil, errors.New("database is locked"))

	feeds := mock.NewMockFeedService(ctrl)
	cb := &callbacks{}

	orchestrator := NewSyncAllOrchestrator(feeds, localStore, workers.NewPool(1), logger.Nop())
	err := waitRun(t, orchestrator.Start(context.Background(), cb.request(nil)))

	assert.ErrorIs(t, err, ErrLocalStorage)
	assert.ErrorIs(t, cb.err(), ErrLocalStorage)
}

func TestSyncAllOrchestrator_StartSync(t *testing.T) {
	feeds := newFakeFeed(initialSyncFixture())
	localStore := newTestStore(t)

	var svc ClientSyncService = newTestOrchestrator(feeds, localStore)
	run := svc.StartSync(context.Background(), testAccount, testCreds, nil)

	require.NoError(t, waitRun(t, run))
	assert.Equal(t, testAccount.ID, run.AccountID)
	assert.NotEmpty(t, run.ID)
}
