// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-feed-keeper/internal/utils"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// normalizeTaxonomy merges duplicate folders and feeds (the last occurrence
// wins, folder memberships are united) and drops memberships pointing to
// folders that are not part of the taxonomy.
func normalizeTaxonomy(t models.Taxonomy) models.Taxonomy {
	folderIdx := make(map[string]int, len(t.Folders))
	folders := make([]models.Folder, 0, len(t.Folders))
	for _, f := range t.Folders {
		if i, ok := folderIdx[f.ID]; ok {
			folders[i] = f
			continue
		}
		folderIdx[f.ID] = len(folders)
		folders = append(folders, f)
	}

	feedIdx := make(map[string]int, len(t.Feeds))
	feeds := make([]models.Feed, 0, len(t.Feeds))
	for _, f := range t.Feeds {
		if i, ok := feedIdx[f.ID]; ok {
			merged := append(feeds[i].FolderIDs, f.FolderIDs...)
			feeds[i] = f
			feeds[i].FolderIDs = merged
			continue
		}
		feedIdx[f.ID] = len(feeds)
		f.FolderIDs = slices.Clone(f.FolderIDs)
		feeds = append(feeds, f)
	}

	for i := range feeds {
		ids := feeds[i].FolderIDs[:0]
		for _, id := range feeds[i].FolderIDs {
			if _, ok := folderIdx[id]; ok {
				ids = append(ids, id)
			}
		}
		slices.Sort(ids)
		feeds[i].FolderIDs = slices.Compact(ids)
	}

	return models.Taxonomy{Folders: folders, Feeds: feeds}
}

// dedupeArticles keeps the last occurrence of every id.
func dedupeArticles(articles []models.Article) []models.Article {
	idx := make(map[string]int, len(articles))
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if i, ok := idx[a.ID]; ok {
			out[i] = a
			continue
		}
		idx[a.ID] = len(out)
		out = append(out, a)
	}
	return out
}

// uniqueSorted returns the distinct non-empty ids in ascending order.
func uniqueSorted(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// diffSorted returns the elements of a missing from b and of b missing
// from a. Both inputs must be sorted and free of duplicates.
func diffSorted(a, b []string) (onlyA, onlyB []string) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			onlyA = append(onlyA, a[i])
			i++
		default:
			onlyB = append(onlyB, b[j])
			j++
		}
	}
	onlyA = append(onlyA, a[i:]...)
	onlyB = append(onlyB, b[j:]...)
	return onlyA, onlyB
}

// prepareMarks validates marks and fills in missing ids and timestamps.
func prepareMarks(marks []models.PendingMark, gen utils.IDGenerator, now time.Time) ([]models.PendingMark, error) {
	out := make([]models.PendingMark, 0, len(marks))
	for _, m := range marks {
		if !m.Action.Valid() || m.ArticleID == "" {
			return nil, ErrInvalidMarkAction
		}
		if m.ID == "" {
			m.ID = gen.Generate()
		}
		if m.QueuedAt.IsZero() {
			m.QueuedAt = now
		}
		m.QueuedAt = m.QueuedAt.UTC()
		out = append(out, m)
	}
	return out, nil
}

func sortMarks(marks []models.PendingMark) {
	slices.SortStableFunc(marks, func(a, b models.PendingMark) int {
		if c := a.QueuedAt.Compare(b.QueuedAt); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
