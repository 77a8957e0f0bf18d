// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/service"
	"github.com/MKhiriev/go-feed-keeper/models"
)

type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

// stubSyncJob implements service.ClientSyncJob with canned answers.
type stubSyncJob struct {
	status    models.SyncStatus
	syncErr   error
	cancelErr error

	syncCalls   int
	cancelCalls int
}

func (s *stubSyncJob) Start(context.Context, time.Duration) {}
func (s *stubSyncJob) Stop()                                {}
func (s *stubSyncJob) Run(context.Context) error            { return nil }

func (s *stubSyncJob) SyncNow(context.Context) (*service.SyncRun, error) {
	s.syncCalls++
	if s.syncErr != nil {
		return nil, s.syncErr
	}
	s.status.State = models.RunRunning
	return nil, nil
}

func (s *stubSyncJob) CancelCurrent() error {
	s.cancelCalls++
	return s.cancelErr
}

func (s *stubSyncJob) Status(context.Context) models.SyncStatus {
	return s.status
}

// stubLocalData implements service.LocalDataService in memory.
type stubLocalData struct {
	feeds []models.Feed
	err   error

	renamed map[string]string
	queued  []models.PendingMark
}

func (s *stubLocalData) Feeds(context.Context) ([]models.Feed, error) {
	return s.feeds, s.err
}

func (s *stubLocalData) RenameFeed(_ context.Context, feedID, name string) error {
	if s.err != nil {
		return s.err
	}
	if s.renamed == nil {
		s.renamed = make(map[string]string)
	}
	s.renamed[feedID] = name
	return nil
}

func (s *stubLocalData) QueueStatusMarks(_ context.Context, marks ...models.PendingMark) error {
	if s.err != nil {
		return s.err
	}
	s.queued = append(s.queued, marks...)
	return nil
}

type testHandler struct {
	*Handler
	job  *stubSyncJob
	data *stubLocalData
}

func newTestHandler() *testHandler {
	job := &stubSyncJob{status: models.SyncStatus{State: models.RunIdle}}
	data := &stubLocalData{}

	return &testHandler{
		Handler: NewHandler(&service.ClientServices{
			AppInfoService:   &stubAppInfoService{version: "1.2.3"},
			LocalDataService: data,
			SyncJob:          job,
		}, logger.Nop()),
		job:  job,
		data: data,
	}
}
