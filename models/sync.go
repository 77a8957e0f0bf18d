// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncRequest carries everything a single sync run needs from its caller.
type SyncRequest struct {
	// Account is the local account being synchronised.
	Account Account

	// Credentials is the snapshot used for every remote call of the run.
	Credentials Credentials

	// LastSuccessfulFetchStartDate is the incremental watermark. When nil the
	// article stream is fetched in full.
	LastSuccessfulFetchStartDate *time.Time

	// OnComplete is invoked exactly once with nil (success) or the failure
	// cause. It is never invoked for a cancelled run.
	OnComplete func(err error)

	// OnFinish is invoked once after the run released its resources,
	// regardless of the outcome.
	OnFinish func()
}

// RunState is the lifecycle state of a sync run.
type RunState string

const (
	RunIdle      RunState = "idle"
	RunRunning   RunState = "running"
	RunCompleted RunState = "completed"
	RunCancelled RunState = "cancelled"
	RunFailed    RunState = "failed"
)

// Terminal reports whether s is a final state.
func (s RunState) Terminal() bool {
	return s == RunCompleted || s == RunCancelled || s == RunFailed
}

// StageOutcome is the terminal result of one stage of a run.
type StageOutcome string

const (
	StageSucceeded StageOutcome = "succeeded"
	StageFailed    StageOutcome = "failed"
	StageCancelled StageOutcome = "cancelled"
	StageSkipped   StageOutcome = "skipped"
)

// StageReport describes how a stage of a run ended.
type StageReport struct {
	Stage    string        `json:"stage"`
	Outcome  StageOutcome  `json:"outcome"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// SyncState is the persisted per-account sync bookkeeping.
type SyncState struct {
	AccountID string `json:"account_id"`

	// LastSuccessfulFetchStart is the start time of the last run that
	// completed successfully; nil before the first one.
	LastSuccessfulFetchStart *time.Time `json:"last_successful_fetch_start,omitempty"`
}

// SyncStatus is a point-in-time view of the sync driver, served by the local
// status API.
type SyncStatus struct {
	State      RunState      `json:"state"`
	RunID      string        `json:"run_id,omitempty"`
	Pending    int           `json:"pending"`
	InFlight   int           `json:"in_flight"`
	StartedAt  *time.Time    `json:"started_at,omitempty"`
	FinishedAt *time.Time    `json:"finished_at,omitempty"`
	LastError  string        `json:"last_error,omitempty"`
	Stages     []StageReport `json:"stages,omitempty"`

	LastSuccessfulFetchStart *time.Time `json:"last_successful_fetch_start,omitempty"`
}
