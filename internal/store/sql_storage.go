// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-keeper/internal/utils"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// entityLocks serializes writers per entity set.
type entityLocks struct {
	taxonomy  sync.Mutex
	articles  sync.Mutex
	statuses  sync.Mutex
	marks     sync.Mutex
	syncState sync.Mutex
}

type sqlLocalStorage struct {
	*DB
	locks entityLocks
	ids   utils.IDGenerator
	now   func() time.Time
}

func NewSQLLocalStorage(db *DB, ids utils.IDGenerator) LocalStorage {
	return &sqlLocalStorage{
		DB:  db,
		ids: ids,
		now: time.Now,
	}
}

func (s *sqlLocalStorage) UpsertFeedsAndFolders(ctx context.Context, accountID string, taxonomy models.Taxonomy) error {
	log := s.log(ctx)
	taxonomy = normalizeTaxonomy(taxonomy)

	folderIDs := make([]string, 0, len(taxonomy.Folders))
	for _, f := range taxonomy.Folders {
		folderIDs = append(folderIDs, f.ID)
	}
	feedIDs := make([]string, 0, len(taxonomy.Feeds))
	links := make([]feedFolder, 0, len(taxonomy.Feeds))
	for _, f := range taxonomy.Feeds {
		feedIDs = append(feedIDs, f.ID)
		for _, folderID := range f.FolderIDs {
			links = append(links, feedFolder{feedID: f.ID, folderID: folderID})
		}
	}

	s.locks.taxonomy.Lock()
	defer s.locks.taxonomy.Unlock()

	b := s.builder()
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.exec(ctx, tx, buildDeleteAccountRowsQuery(b, tableFeedFolders, accountID)); err != nil {
			return err
		}
		if _, err := s.exec(ctx, tx, buildDeleteAbsentQuery(b, tableFolders, "id", accountID, folderIDs)); err != nil {
			return err
		}
		if _, err := s.exec(ctx, tx, buildDeleteAbsentQuery(b, tableFeeds, "id", accountID, feedIDs)); err != nil {
			return err
		}

		for part := range slices.Chunk(taxonomy.Folders, maxRowsPerStatement) {
			if _, err := s.exec(ctx, tx, buildUpsertFoldersQuery(b, accountID, part)); err != nil {
				return err
			}
		}
		for part := range slices.Chunk(taxonomy.Feeds, maxRowsPerStatement) {
			if _, err := s.exec(ctx, tx, buildUpsertFeedsQuery(b, accountID, part)); err != nil {
				return err
			}
		}
		for part := range slices.Chunk(links, maxRowsPerStatement) {
			if _, err := s.exec(ctx, tx, buildInsertFeedFoldersQuery(b, accountID, part)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlLocalStorage.UpsertFeedsAndFolders").
			Str("account_id", accountID).
			Str("class", s.classify(err)).
			Msg("failed to store taxonomy")
		return fmt.Errorf("failed to store taxonomy: %w", err)
	}

	log.Debug().
		Str("func", "sqlLocalStorage.UpsertFeedsAndFolders").
		Int("folders", len(taxonomy.Folders)).
		Int("feeds", len(taxonomy.Feeds)).
		Msg("taxonomy stored")
	return nil
}

func (s *sqlLocalStorage) UpsertArticles(ctx context.Context, accountID string, articles ...models.Article) error {
	articles = dedupeArticles(articles)
	if len(articles) == 0 {
		return nil
	}

	log := s.log(ctx)

	s.locks.articles.Lock()
	defer s.locks.articles.Unlock()

	b := s.builder()
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for part := range slices.Chunk(articles, maxRowsPerStatement) {
			if _, err := s.exec(ctx, tx, buildUpsertArticlesQuery(b, accountID, part)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlLocalStorage.UpsertArticles").
			Str("account_id", accountID).
			Int("count", len(articles)).
			Str("class", s.classify(err)).
			Msg("failed to upsert articles")
		return fmt.Errorf("failed to upsert articles: %w", err)
	}

	return nil
}

func (s *sqlLocalStorage) ReconcileStatus(ctx context.Context, accountID string, kind models.StatusKind, remoteIDs []string) (models.StatusDelta, error) {
	log := s.log(ctx)
	remote := uniqueSorted(remoteIDs)

	s.locks.statuses.Lock()
	defer s.locks.statuses.Unlock()

	var delta models.StatusDelta
	b := s.builder()
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		local, err := s.queryStrings(ctx, tx, buildSelectStatusIDsQuery(b, accountID, kind))
		if err != nil {
			return err
		}
		slices.Sort(local)

		delta.Removed, delta.Added = diffSorted(local, remote)

		for part := range slices.Chunk(delta.Removed, maxRowsPerStatement) {
			if _, err = s.exec(ctx, tx, buildDeleteStatusesQuery(b, accountID, kind, part)); err != nil {
				return err
			}
		}
		for part := range slices.Chunk(delta.Added, maxRowsPerStatement) {
			if _, err = s.exec(ctx, tx, buildInsertStatusesQuery(b, accountID, kind, part)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlLocalStorage.ReconcileStatus").
			Str("account_id", accountID).
			Str("kind", string(kind)).
			Str("class", s.classify(err)).
			Msg("failed to reconcile status set")
		return models.StatusDelta{}, fmt.Errorf("failed to reconcile %s status: %w", kind, err)
	}

	return delta, nil
}

func (s *sqlLocalStorage) QueuePendingStatusMarks(ctx context.Context, accountID string, marks ...models.PendingMark) error {
	marks, err := prepareMarks(marks, s.ids, s.now())
	if err != nil {
		return err
	}
	if len(marks) == 0 {
		return nil
	}

	log := s.log(ctx)

	s.locks.marks.Lock()
	defer s.locks.marks.Unlock()

	b := s.builder()
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		for part := range slices.Chunk(marks, maxRowsPerStatement) {
			if _, err := s.exec(ctx, tx, buildInsertPendingMarksQuery(b, accountID, part)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlLocalStorage.QueuePendingStatusMarks").
			Str("account_id", accountID).
			Msg("failed to queue pending marks")
		return fmt.Errorf("failed to queue pending marks: %w", err)
	}

	return nil
}

func (s *sqlLocalStorage) DrainPendingStatusMarks(ctx context.Context, accountID string) ([]models.PendingMark, error) {
	log := s.log(ctx)

	s.locks.marks.Lock()
	defer s.locks.marks.Unlock()

	var marks []models.PendingMark
	b := s.builder()
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		marks, err = s.selectPendingMarks(ctx, tx, accountID)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(marks))
		for _, m := range marks {
			ids = append(ids, m.ID)
		}
		for part := range slices.Chunk(ids, maxRowsPerStatement) {
			if _, err = s.exec(ctx, tx, buildDeletePendingMarksQuery(b, accountID, part)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlLocalStorage.DrainPendingStatusMarks").
			Str("account_id", accountID).
			Msg("failed to drain pending marks")
		return nil, fmt.Errorf("failed to drain pending marks: %w", err)
	}

	return marks, nil
}

func (s *sqlLocalStorage) selectPendingMarks(ctx context.Context, tx *sql.Tx, accountID string) ([]models.PendingMark, error) {
	query, args, err := buildSelectPendingMarksQuery(s.builder(), accountID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	marks := make([]models.PendingMark, 0)
	for rows.Next() {
		var (
			m      models.PendingMark
			action string
		)
		if err = rows.Scan(&m.ID, &m.ArticleID, &action, &m.QueuedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		m.Action = models.MarkAction(action)
		m.QueuedAt = m.QueuedAt.UTC()
		marks = append(marks, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	sortMarks(marks)
	return marks, nil
}

func (s *sqlLocalStorage) RenameFeed(ctx context.Context, accountID, feedID, editedName string) error {
	s.locks.taxonomy.Lock()
	defer s.locks.taxonomy.Unlock()

	affected, err := s.exec(ctx, s.DB, buildRenameFeedQuery(s.builder(), accountID, feedID, editedName))
	if err != nil {
		s.log(ctx).Err(err).
			Str("func", "sqlLocalStorage.RenameFeed").
			Str("feed_id", feedID).
			Msg("failed to rename feed")
		return fmt.Errorf("failed to rename feed: %w", err)
	}
	if affected == 0 {
		return ErrFeedNotFound
	}

	return nil
}

func (s *sqlLocalStorage) Feeds(ctx context.Context, accountID string) ([]models.Feed, error) {
	feeds, err := s.selectFeeds(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// rows of the first query are closed by now: SQLite runs on a single
	// connection
	links, err := s.selectFeedFolders(ctx, accountID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(feeds))
	for i, f := range feeds {
		byID[f.ID] = i
	}
	for _, l := range links {
		if i, ok := byID[l.feedID]; ok {
			feeds[i].FolderIDs = append(feeds[i].FolderIDs, l.folderID)
		}
	}

	return feeds, nil
}

func (s *sqlLocalStorage) selectFeeds(ctx context.Context, accountID string) ([]models.Feed, error) {
	query, args, err := buildSelectFeedsQuery(s.builder(), accountID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	feeds := make([]models.Feed, 0)
	for rows.Next() {
		var f models.Feed
		if err = rows.Scan(&f.ID, &f.URL, &f.Title, &f.HomePageURL, &f.EditedName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		feeds = append(feeds, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return feeds, nil
}

func (s *sqlLocalStorage) selectFeedFolders(ctx context.Context, accountID string) ([]feedFolder, error) {
	query, args, err := buildSelectFeedFoldersQuery(s.builder(), accountID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	links := make([]feedFolder, 0)
	for rows.Next() {
		var l feedFolder
		if err = rows.Scan(&l.feedID, &l.folderID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		links = append(links, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return links, nil
}

func (s *sqlLocalStorage) Folders(ctx context.Context, accountID string) ([]models.Folder, error) {
	query, args, err := buildSelectFoldersQuery(s.builder(), accountID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0)
	for rows.Next() {
		var f models.Folder
		if err = rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		folders = append(folders, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func (s *sqlLocalStorage) ArticleIDs(ctx context.Context, accountID string) ([]string, error) {
	return s.queryStrings(ctx, s.DB, buildSelectArticleIDsQuery(s.builder(), accountID, nil))
}

func (s *sqlLocalStorage) StatusIDs(ctx context.Context, accountID string, kind models.StatusKind) ([]string, error) {
	return s.queryStrings(ctx, s.DB, buildSelectStatusIDsQuery(s.builder(), accountID, kind))
}

func (s *sqlLocalStorage) MissingArticleIDs(ctx context.Context, accountID string, ids []string) ([]string, error) {
	wanted := uniqueSorted(ids)

	present := make([]string, 0, len(wanted))
	for part := range slices.Chunk(wanted, maxRowsPerStatement) {
		found, err := s.queryStrings(ctx, s.DB, buildSelectArticleIDsQuery(s.builder(), accountID, part))
		if err != nil {
			return nil, fmt.Errorf("failed to look up articles: %w", err)
		}
		present = append(present, found...)
	}
	slices.Sort(present)

	missing, _ := diffSorted(wanted, present)
	return missing, nil
}

func (s *sqlLocalStorage) SyncState(ctx context.Context, accountID string) (models.SyncState, error) {
	state := models.SyncState{AccountID: accountID}

	query, args, err := buildSelectSyncStateQuery(s.builder(), accountID).ToSql()
	if err != nil {
		return state, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var last sql.NullTime
	err = s.QueryRowContext(ctx, query, args...).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return state, nil
	}
	if err != nil {
		return state, s.wrapErr(ErrExecutingQuery, err)
	}

	if last.Valid {
		t := last.Time.UTC()
		state.LastSuccessfulFetchStart = &t
	}
	return state, nil
}

func (s *sqlLocalStorage) SaveSyncState(ctx context.Context, state models.SyncState) error {
	s.locks.syncState.Lock()
	defer s.locks.syncState.Unlock()

	if _, err := s.exec(ctx, s.DB, buildUpsertSyncStateQuery(s.builder(), state)); err != nil {
		s.log(ctx).Err(err).
			Str("func", "sqlLocalStorage.SaveSyncState").
			Str("account_id", state.AccountID).
			Msg("failed to save sync state")
		return fmt.Errorf("failed to save sync state: %w", err)
	}
	return nil
}

func (s *sqlLocalStorage) Close() error {
	return s.DB.Close()
}
