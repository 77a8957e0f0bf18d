// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-feed-keeper/models"
)

const feedIDPrefix = "feed/"

// collectionsToTaxonomy turns the remote collections into folders and feeds.
// A feed listed in several collections is filed under all of them.
func collectionsToTaxonomy(collections []models.RemoteCollection) models.Taxonomy {
	taxonomy := models.Taxonomy{
		Folders: make([]models.Folder, 0, len(collections)),
		Feeds:   make([]models.Feed, 0),
	}

	feedIdx := make(map[string]int)
	for _, c := range collections {
		taxonomy.Folders = append(taxonomy.Folders, models.Folder{ID: c.ID, Name: c.Label})

		for _, rf := range c.Feeds {
			if i, ok := feedIdx[rf.ID]; ok {
				taxonomy.Feeds[i].FolderIDs = append(taxonomy.Feeds[i].FolderIDs, c.ID)
				continue
			}
			feedIdx[rf.ID] = len(taxonomy.Feeds)
			taxonomy.Feeds = append(taxonomy.Feeds, remoteFeedToFeed(rf, c.ID))
		}
	}

	return taxonomy
}

func remoteFeedToFeed(rf models.RemoteFeed, folderID string) models.Feed {
	url := rf.FeedURL
	if url == "" {
		url = strings.TrimPrefix(rf.ID, feedIDPrefix)
	}

	return models.Feed{
		ID:          rf.ID,
		URL:         url,
		Title:       rf.Title,
		HomePageURL: rf.Website,
		FolderIDs:   []string{folderID},
	}
}

func streamItemToArticle(item models.RemoteStreamItem) models.Article {
	return models.Article{
		ID:          item.ID,
		FeedID:      item.Origin.StreamID,
		Title:       item.Title,
		ContentHTML: item.Content,
		Summary:     item.Summary,
		URL:         item.URL,
		Author:      item.Author,
		PublishedAt: item.Published,
		UpdatedAt:   item.Updated,
	}
}

func streamItemsToArticles(items []models.RemoteStreamItem) []models.Article {
	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		articles = append(articles, streamItemToArticle(item))
	}
	return articles
}
