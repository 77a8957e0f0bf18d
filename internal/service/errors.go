// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Failure causes reported by a sync run.
var (
	ErrUnauthorized = errors.New("feed service rejected the credentials")
	ErrRateLimited  = errors.New("feed service rate limit exceeded")
	ErrTransport    = errors.New("feed service is unreachable")
	ErrRemote       = errors.New("feed service request failed")
	ErrLocalStorage = errors.New("local storage failure")
)

// ErrCancelled is the outcome of a cancelled run. It is never passed to the
// completion callback.
var ErrCancelled = errors.New("sync run was cancelled")

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrSyncInProgress        = errors.New("sync is already in progress")
	ErrNoActiveSync          = errors.New("no sync is running")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
