// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrFeedNotFound is returned by RenameFeed for an unknown feed.
	ErrFeedNotFound = errors.New("feed was not found")

	// ErrInvalidMarkAction is returned when a queued mark carries an
	// unknown action.
	ErrInvalidMarkAction = errors.New("invalid mark action")

	// ErrUnknownDriver is returned by NewLocalStorage for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrTransient marks failures that may succeed when retried later
	// (lock contention, lost connection).
	ErrTransient = errors.New("transient storage failure")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRows         = errors.New("failed to scan rows")
)
