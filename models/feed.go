// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Folder is a named group of feeds (a remote "collection").
type Folder struct {
	// ID is the remote collection identifier, e.g. "user/<id>/category/tech".
	ID string `json:"id"`

	// Name is the folder label shown to the user.
	Name string `json:"name"`
}

// Feed is a single subscription. A feed may belong to several folders.
type Feed struct {
	// ID is the remote feed identifier, e.g. "feed/https://example.com/rss".
	ID string `json:"id"`

	// URL is the address of the feed document.
	URL string `json:"url"`

	// Title is the name reported by the remote service.
	Title string `json:"title"`

	// HomePageURL is the website the feed belongs to.
	HomePageURL string `json:"home_page_url,omitempty"`

	// EditedName is a user-chosen display name. It is local metadata: a
	// taxonomy sync never overwrites it.
	EditedName string `json:"edited_name,omitempty"`

	// FolderIDs lists the folders the feed is filed under.
	FolderIDs []string `json:"folder_ids,omitempty"`
}

// Taxonomy is the complete feed/folder tree of an account as reported by
// the remote service in one collections fetch.
type Taxonomy struct {
	Folders []Folder `json:"folders"`
	Feeds   []Feed   `json:"feeds"`
}
