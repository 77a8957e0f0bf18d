// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-feed-keeper/internal/adapter"
	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
	"github.com/MKhiriev/go-feed-keeper/internal/utils"
	"github.com/MKhiriev/go-feed-keeper/internal/workers"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// SyncAllOrchestrator runs the sync pipeline of one account:
//
//  1. pending status marks are flushed upstream;
//  2. the folder and feed taxonomy is mirrored;
//  3. both article streams and both status sets are synced concurrently;
//  4. articles referenced by the status sets but not stored are fetched.
//
// A failing phase skips the following ones. Writes that already happened
// are kept: every stage converges, so the next successful run repairs them.
type SyncAllOrchestrator struct {
	feeds adapter.FeedService
	store store.LocalStorage
	pool  *workers.Pool
	ids   utils.IDGenerator
	now   func() time.Time

	logger *logger.Logger
}

func NewSyncAllOrchestrator(feeds adapter.FeedService, localStore store.LocalStorage, pool *workers.Pool, logger *logger.Logger) *SyncAllOrchestrator {
	if pool == nil {
		pool = workers.NewPool(workers.DefaultPoolSize)
	}

	return &SyncAllOrchestrator{
		feeds:  feeds,
		store:  localStore,
		pool:   pool,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

// StartSync implements ClientSyncService.
func (o *SyncAllOrchestrator) StartSync(ctx context.Context, account models.Account, creds models.Credentials, lastSuccessfulFetchStartDate *time.Time) *SyncRun {
	return o.Start(ctx, models.SyncRequest{
		Account:                      account,
		Credentials:                  creds,
		LastSuccessfulFetchStartDate: lastSuccessfulFetchStartDate,
	})
}

// Start launches a run and returns at once. Cancelling ctx cancels the run.
func (o *SyncAllOrchestrator) Start(ctx context.Context, req models.SyncRequest) *SyncRun {
	run := newSyncRun(o.ids.Generate(), req, o.now())

	runCtx, cancel := context.WithCancel(ctx)
	run.setRunning(cancel)

	log := o.logger.ForRun(run.ID, req.Account.ID)
	runCtx = log.WithContext(runCtx)

	env := &stageEnv{
		feeds:   o.feeds,
		store:   o.store,
		pool:    o.pool,
		tracker: run.tracker,
		account: req.Account,
		creds:   req.Credentials,
	}
	phases := o.plan(env, req)

	stages := 0
	for _, p := range phases {
		stages += len(p)
	}
	run.tracker.AddTasks(stages)

	log.Info().
		Str("func", "SyncAllOrchestrator.Start").
		Bool("incremental", req.LastSuccessfulFetchStartDate != nil).
		Int("stages", stages).
		Msg("sync run started")

	go o.execute(runCtx, run, phases)

	return run
}

// Cancel cancels run. It is a no-op for nil or finished runs.
func (o *SyncAllOrchestrator) Cancel(run *SyncRun) {
	if run != nil {
		run.Cancel()
	}
}

// plan returns the stages of a run grouped in phases. Stages of one phase
// run concurrently; phases run in order.
func (o *SyncAllOrchestrator) plan(env *stageEnv, req models.SyncRequest) [][]stage {
	userID := req.Account.UserID

	return [][]stage{
		{&pendingMarksStage{stageEnv: env}},
		{&collectionsStage{stageEnv: env}},
		{
			&contentsStage{
				stageEnv:  env,
				name:      StageContentsAll,
				streamID:  models.GlobalAllStreamID(userID),
				newerThan: req.LastSuccessfulFetchStartDate,
			},
			&contentsStage{
				stageEnv: env,
				name:     StageContentsSaved,
				streamID: models.GlobalSavedStreamID(userID),
			},
			&statusStage{
				stageEnv:   env,
				name:       StageUnreadStatus,
				kind:       models.StatusUnread,
				streamID:   models.GlobalAllStreamID(userID),
				unreadOnly: true,
			},
			&statusStage{
				stageEnv: env,
				name:     StageStarredStatus,
				kind:     models.StatusStarred,
				streamID: models.GlobalSavedStreamID(userID),
			},
		},
		{&missingArticlesStage{stageEnv: env}},
	}
}

func (o *SyncAllOrchestrator) execute(ctx context.Context, run *SyncRun, phases [][]stage) {
	log := logger.FromContext(ctx)

	var cause error
	for _, phase := range phases {
		if cause != nil || ctx.Err() != nil {
			o.skip(run, phase)
			continue
		}
		cause = o.runPhase(ctx, run, phase)
	}

	cancelled := ctx.Err() != nil
	run.finish(cancelled, cause, o.now())

	event := log.Info()
	switch run.State() {
	case models.RunFailed:
		event = log.Error().Err(cause)
	case models.RunCancelled:
		event = log.Warn()
	}
	event.
		Str("func", "SyncAllOrchestrator.execute").
		Str("state", string(run.State())).
		Dur("took", o.now().Sub(run.StartedAt)).
		Msg("sync run finished")
}

// runPhase runs the stages of a phase concurrently. The first failure
// cancels the others and is returned.
func (o *SyncAllOrchestrator) runPhase(ctx context.Context, run *SyncRun, phase []stage) error {
	if len(phase) == 1 {
		return o.runStage(ctx, run, phase[0])
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, st := range phase {
		g.Go(func() error {
			return o.runStage(gctx, run, st)
		})
	}
	return g.Wait()
}

func (o *SyncAllOrchestrator) runStage(ctx context.Context, run *SyncRun, st stage) error {
	if err := ctx.Err(); err != nil {
		run.tracker.TaskCompleted()
		run.addReport(models.StageReport{Stage: st.Name(), Outcome: models.StageCancelled})
		return err
	}

	run.tracker.TaskStarted()
	defer run.tracker.TaskCompleted()

	started := o.now()
	err := st.Run(ctx)

	report := models.StageReport{
		Stage:    st.Name(),
		Outcome:  models.StageSucceeded,
		Duration: o.now().Sub(started),
	}
	switch {
	case err == nil:
	case ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		report.Outcome = models.StageCancelled
	default:
		report.Outcome = models.StageFailed
		report.Error = err.Error()
	}
	run.addReport(report)

	logger.FromContext(ctx).Debug().
		Str("func", "SyncAllOrchestrator.runStage").
		Str("stage", report.Stage).
		Str("outcome", string(report.Outcome)).
		Dur("took", report.Duration).
		Msg("stage finished")

	return err
}

// skip retires the progress units of stages that will never start.
func (o *SyncAllOrchestrator) skip(run *SyncRun, phase []stage) {
	for _, st := range phase {
		run.tracker.TaskCompleted()
		run.addReport(models.StageReport{Stage: st.Name(), Outcome: models.StageSkipped})
	}
}
