// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Article is a locally stored stream item. Articles are keyed by the
// canonical remote entry ID and are never deleted by a sync.
type Article struct {
	// ID is the canonical remote entry identifier.
	ID string `json:"id"`

	// FeedID references the [Feed] the article originates from.
	FeedID string `json:"feed_id"`

	Title       string `json:"title"`
	ContentHTML string `json:"content_html,omitempty"`
	Summary     string `json:"summary,omitempty"`
	URL         string `json:"url,omitempty"`
	Author      string `json:"author,omitempty"`

	// PublishedAt is the publication time reported by the origin feed.
	PublishedAt *time.Time `json:"published_at,omitempty"`

	// UpdatedAt is the last time the remote service saw the entry change.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
