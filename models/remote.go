// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Global stream labels every remote account has.
const (
	GlobalAllCategory = "global.all"
	GlobalSavedTag    = "global.saved"
)

// GlobalAllStreamID returns the stream of every article of userID.
func GlobalAllStreamID(userID string) string {
	return fmt.Sprintf("user/%s/category/%s", userID, GlobalAllCategory)
}

// GlobalSavedStreamID returns the stream of the starred ("saved for later")
// articles of userID.
func GlobalSavedStreamID(userID string) string {
	return fmt.Sprintf("user/%s/tag/%s", userID, GlobalSavedTag)
}

// StreamRequest describes one page request against a remote stream.
type StreamRequest struct {
	// StreamID is the remote stream resource ID.
	StreamID string

	// Continuation is the cursor returned by the previous page; empty for the
	// first page.
	Continuation string

	// NewerThan limits the stream to entries newer than the watermark. Nil
	// means the full stream.
	NewerThan *time.Time

	// UnreadOnly limits the stream to unread entries.
	UnreadOnly bool

	// Count is the page size hint. Zero lets the adapter decide.
	Count int
}

// RemoteFeed is a feed entry inside a [RemoteCollection].
type RemoteFeed struct {
	ID      string
	FeedURL string
	Title   string
	Website string
}

// RemoteCollection is a remote folder with the feeds filed under it.
type RemoteCollection struct {
	ID    string
	Label string
	Feeds []RemoteFeed
}

// RemoteOrigin points a stream item back to the feed it came from.
type RemoteOrigin struct {
	StreamID string
	Title    string
	HTMLURL  string
}

// RemoteStreamItem is an article as delivered in a stream contents page.
type RemoteStreamItem struct {
	ID        string
	Title     string
	Content   string
	Summary   string
	Author    string
	URL       string
	Origin    RemoteOrigin
	Published *time.Time
	Updated   *time.Time
}

// RemoteStreamContents is one page of a stream contents fetch.
type RemoteStreamContents struct {
	Items []RemoteStreamItem

	// Continuation is empty on the last page.
	Continuation string
}

// RemoteStreamIDs is one page of a stream IDs fetch.
type RemoteStreamIDs struct {
	IDs []string

	// Continuation is empty on the last page.
	Continuation string
}
