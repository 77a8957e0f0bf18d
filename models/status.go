// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StatusKind names one of the per-account article ID sets that a sync keeps
// equal to the remote state.
type StatusKind string

const (
	StatusUnread  StatusKind = "unread"
	StatusStarred StatusKind = "starred"
)

// MarkAction is a status mutation sent to the remote service.
type MarkAction string

const (
	MarkRead      MarkAction = "markRead"
	MarkUnread    MarkAction = "markUnread"
	MarkStarred   MarkAction = "markStarred"
	MarkUnstarred MarkAction = "markUnstarred"
)

// Kind returns the status set the action changes.
func (a MarkAction) Kind() StatusKind {
	switch a {
	case MarkStarred, MarkUnstarred:
		return StatusStarred
	default:
		return StatusUnread
	}
}

// Valid reports whether a is one of the known actions.
func (a MarkAction) Valid() bool {
	switch a {
	case MarkRead, MarkUnread, MarkStarred, MarkUnstarred:
		return true
	}
	return false
}

// PendingMark is a status change made locally that has not been sent to the
// remote service yet.
type PendingMark struct {
	// ID uniquely identifies the queue entry.
	ID string `json:"id"`

	// ArticleID is the entry the action applies to.
	ArticleID string `json:"article_id"`

	// Action is the mutation to send.
	Action MarkAction `json:"action"`

	// QueuedAt orders entries: for the same article and status kind the
	// latest entry wins.
	QueuedAt time.Time `json:"queued_at"`
}

// StatusDelta is the outcome of reconciling a local status set against a
// remote one.
type StatusDelta struct {
	// Added holds IDs that were missing locally and have been added.
	Added []string `json:"added"`

	// Removed holds IDs that were present locally but not remotely.
	Removed []string `json:"removed"`
}

// Empty reports whether the reconcile changed nothing.
func (d StatusDelta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}
