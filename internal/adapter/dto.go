// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-feed-keeper/models"
)

// Wire format of the feed API. Only the fields the sync uses are decoded.

type collectionDTO struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Feeds []feedDTO `json:"feeds"`
}

type feedDTO struct {
	ID      string `json:"id"`
	FeedID  string `json:"feedId"`
	Title   string `json:"title"`
	Website string `json:"website"`
}

type streamContentsDTO struct {
	ID           string     `json:"id"`
	Items        []entryDTO `json:"items"`
	Continuation string     `json:"continuation"`
}

type streamIDsDTO struct {
	IDs          []string `json:"ids"`
	Continuation string   `json:"continuation"`
}

type contentDTO struct {
	Content string `json:"content"`
}

type linkDTO struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

type originDTO struct {
	StreamID string `json:"streamId"`
	Title    string `json:"title"`
	HTMLURL  string `json:"htmlUrl"`
}

type entryDTO struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Content      *contentDTO `json:"content"`
	Summary      *contentDTO `json:"summary"`
	Author       string      `json:"author"`
	CanonicalURL string      `json:"canonicalUrl"`
	Alternate    []linkDTO   `json:"alternate"`
	Origin       *originDTO  `json:"origin"`
	// Published and Updated are Unix milliseconds.
	Published int64 `json:"published"`
	Updated   int64 `json:"updated"`
}

type markersDTO struct {
	Action   string   `json:"action"`
	Type     string   `json:"type"`
	EntryIDs []string `json:"entryIds"`
}

type entriesRequestDTO struct {
	IDs []string `json:"ids"`
}

const markerTypeEntries = "entries"

// markerActions maps local actions to the markers endpoint vocabulary.
var markerActions = map[models.MarkAction]string{
	models.MarkRead:      "markAsRead",
	models.MarkUnread:    "keepUnread",
	models.MarkStarred:   "markAsSaved",
	models.MarkUnstarred: "markAsUnsaved",
}

func (d collectionDTO) toModel() models.RemoteCollection {
	c := models.RemoteCollection{
		ID:    d.ID,
		Label: d.Label,
		Feeds: make([]models.RemoteFeed, 0, len(d.Feeds)),
	}
	for _, f := range d.Feeds {
		c.Feeds = append(c.Feeds, f.toModel())
	}
	return c
}

func (d feedDTO) toModel() models.RemoteFeed {
	id := d.ID
	if id == "" {
		id = d.FeedID
	}
	return models.RemoteFeed{
		ID:      id,
		FeedURL: strings.TrimPrefix(id, "feed/"),
		Title:   d.Title,
		Website: d.Website,
	}
}

func (d entryDTO) toModel() models.RemoteStreamItem {
	item := models.RemoteStreamItem{
		ID:        d.ID,
		Title:     d.Title,
		Author:    d.Author,
		URL:       d.url(),
		Published: millisToTime(d.Published),
		Updated:   millisToTime(d.Updated),
	}
	if d.Content != nil {
		item.Content = d.Content.Content
	}
	if d.Summary != nil {
		item.Summary = d.Summary.Content
	}
	if d.Origin != nil {
		item.Origin = models.RemoteOrigin{
			StreamID: d.Origin.StreamID,
			Title:    d.Origin.Title,
			HTMLURL:  d.Origin.HTMLURL,
		}
	}
	return item
}

// url prefers the canonical link, then the first html alternate.
func (d entryDTO) url() string {
	if d.CanonicalURL != "" {
		return d.CanonicalURL
	}
	for _, l := range d.Alternate {
		if l.Type == "" || strings.Contains(l.Type, "html") {
			return l.Href
		}
	}
	return ""
}

func toEntryModels(entries []entryDTO) []models.RemoteStreamItem {
	items := make([]models.RemoteStreamItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.toModel())
	}
	return items
}

func millisToTime(ms int64) *time.Time {
	if ms <= 0 {
		return nil
	}
	t := time.UnixMilli(ms).UTC()
	return &t
}
