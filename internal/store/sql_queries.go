// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-feed-keeper/models"
)

// maxRowsPerStatement keeps multi-row statements well below the bind
// parameter limits of SQLite and PostgreSQL.
const maxRowsPerStatement = 200

const (
	tableFolders      = "folders"
	tableFeeds        = "feeds"
	tableFeedFolders  = "feed_folders"
	tableArticles     = "articles"
	tableStatuses     = "article_statuses"
	tablePendingMarks = "pending_status_marks"
	tableSyncState    = "sync_state"
)

func buildUpsertFoldersQuery(b sq.StatementBuilderType, accountID string, folders []models.Folder) sq.InsertBuilder {
	q := b.Insert(tableFolders).Columns("account_id", "id", "name")
	for _, f := range folders {
		q = q.Values(accountID, f.ID, f.Name)
	}
	return q.Suffix("ON CONFLICT (account_id, id) DO UPDATE SET name = excluded.name")
}

// buildUpsertFeedsQuery never touches edited_name: it belongs to the user.
func buildUpsertFeedsQuery(b sq.StatementBuilderType, accountID string, feeds []models.Feed) sq.InsertBuilder {
	q := b.Insert(tableFeeds).Columns("account_id", "id", "url", "title", "home_page_url")
	for _, f := range feeds {
		q = q.Values(accountID, f.ID, f.URL, f.Title, f.HomePageURL)
	}
	return q.Suffix("ON CONFLICT (account_id, id) DO UPDATE SET " +
		"url = excluded.url, title = excluded.title, home_page_url = excluded.home_page_url")
}

type feedFolder struct {
	feedID   string
	folderID string
}

func buildInsertFeedFoldersQuery(b sq.StatementBuilderType, accountID string, links []feedFolder) sq.InsertBuilder {
	q := b.Insert(tableFeedFolders).Columns("account_id", "feed_id", "folder_id")
	for _, l := range links {
		q = q.Values(accountID, l.feedID, l.folderID)
	}
	return q.Suffix("ON CONFLICT DO NOTHING")
}

// buildDeleteAbsentQuery deletes the account's rows of table whose column
// value is not in keep. An empty keep deletes every row of the account.
func buildDeleteAbsentQuery(b sq.StatementBuilderType, table, column, accountID string, keep []string) sq.DeleteBuilder {
	q := b.Delete(table).Where(sq.Eq{"account_id": accountID})
	if len(keep) > 0 {
		q = q.Where(sq.NotEq{column: keep})
	}
	return q
}

func buildDeleteAccountRowsQuery(b sq.StatementBuilderType, table, accountID string) sq.DeleteBuilder {
	return b.Delete(table).Where(sq.Eq{"account_id": accountID})
}

func buildSelectFoldersQuery(b sq.StatementBuilderType, accountID string) sq.SelectBuilder {
	return b.Select("id", "name").
		From(tableFolders).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("id")
}

func buildSelectFeedsQuery(b sq.StatementBuilderType, accountID string) sq.SelectBuilder {
	return b.Select("id", "url", "title", "home_page_url", "edited_name").
		From(tableFeeds).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("id")
}

func buildSelectFeedFoldersQuery(b sq.StatementBuilderType, accountID string) sq.SelectBuilder {
	return b.Select("feed_id", "folder_id").
		From(tableFeedFolders).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("feed_id", "folder_id")
}

func buildRenameFeedQuery(b sq.StatementBuilderType, accountID, feedID, editedName string) sq.UpdateBuilder {
	return b.Update(tableFeeds).
		Set("edited_name", editedName).
		Where(sq.Eq{"account_id": accountID, "id": feedID})
}

func buildUpsertArticlesQuery(b sq.StatementBuilderType, accountID string, articles []models.Article) sq.InsertBuilder {
	q := b.Insert(tableArticles).Columns(
		"account_id", "id", "feed_id", "title", "content_html",
		"summary", "url", "author", "published_at", "updated_at",
	)
	for _, a := range articles {
		q = q.Values(accountID, a.ID, a.FeedID, a.Title, a.ContentHTML,
			a.Summary, a.URL, a.Author, utcOrNil(a.PublishedAt), utcOrNil(a.UpdatedAt))
	}
	return q.Suffix("ON CONFLICT (account_id, id) DO UPDATE SET " +
		"feed_id = excluded.feed_id, title = excluded.title, content_html = excluded.content_html, " +
		"summary = excluded.summary, url = excluded.url, author = excluded.author, " +
		"published_at = excluded.published_at, updated_at = excluded.updated_at")
}

func buildSelectArticleIDsQuery(b sq.StatementBuilderType, accountID string, within []string) sq.SelectBuilder {
	q := b.Select("id").
		From(tableArticles).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("id")
	if within != nil {
		q = q.Where(sq.Eq{"id": within})
	}
	return q
}

func buildSelectStatusIDsQuery(b sq.StatementBuilderType, accountID string, kind models.StatusKind) sq.SelectBuilder {
	return b.Select("article_id").
		From(tableStatuses).
		Where(sq.Eq{"account_id": accountID, "kind": string(kind)}).
		OrderBy("article_id")
}

func buildInsertStatusesQuery(b sq.StatementBuilderType, accountID string, kind models.StatusKind, ids []string) sq.InsertBuilder {
	q := b.Insert(tableStatuses).Columns("account_id", "kind", "article_id")
	for _, id := range ids {
		q = q.Values(accountID, string(kind), id)
	}
	return q
}

func buildDeleteStatusesQuery(b sq.StatementBuilderType, accountID string, kind models.StatusKind, ids []string) sq.DeleteBuilder {
	return b.Delete(tableStatuses).
		Where(sq.Eq{"account_id": accountID, "kind": string(kind)}).
		Where(sq.Eq{"article_id": ids})
}

func buildInsertPendingMarksQuery(b sq.StatementBuilderType, accountID string, marks []models.PendingMark) sq.InsertBuilder {
	q := b.Insert(tablePendingMarks).Columns("id", "account_id", "article_id", "action", "queued_at")
	for _, m := range marks {
		q = q.Values(m.ID, accountID, m.ArticleID, string(m.Action), m.QueuedAt.UTC())
	}
	return q
}

func buildSelectPendingMarksQuery(b sq.StatementBuilderType, accountID string) sq.SelectBuilder {
	return b.Select("id", "article_id", "action", "queued_at").
		From(tablePendingMarks).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("queued_at", "id")
}

func buildDeletePendingMarksQuery(b sq.StatementBuilderType, accountID string, ids []string) sq.DeleteBuilder {
	return b.Delete(tablePendingMarks).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Eq{"id": ids})
}

func buildSelectSyncStateQuery(b sq.StatementBuilderType, accountID string) sq.SelectBuilder {
	return b.Select("last_successful_fetch_start").
		From(tableSyncState).
		Where(sq.Eq{"account_id": accountID})
}

func buildUpsertSyncStateQuery(b sq.StatementBuilderType, state models.SyncState) sq.InsertBuilder {
	return b.Insert(tableSyncState).
		Columns("account_id", "last_successful_fetch_start").
		Values(state.AccountID, utcOrNil(state.LastSuccessfulFetchStart)).
		Suffix("ON CONFLICT (account_id) DO UPDATE SET last_successful_fetch_start = excluded.last_successful_fetch_start")
}

func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
