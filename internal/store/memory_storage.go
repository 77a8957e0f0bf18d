// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-keeper/internal/utils"
	"github.com/MKhiriev/go-feed-keeper/models"
)

// MemoryPath is the DSN that keeps the memory store off disk.
const MemoryPath = ":memory:"

type memoryAccount struct {
	Folders   map[string]models.Folder       `json:"folders"`
	Feeds     map[string]models.Feed         `json:"feeds"`
	Articles  map[string]models.Article      `json:"articles"`
	Statuses  map[models.StatusKind][]string `json:"statuses"`
	Marks     []models.PendingMark           `json:"marks"`
	LastFetch *time.Time                     `json:"last_successful_fetch_start,omitempty"`
}

func newMemoryAccount() *memoryAccount {
	return &memoryAccount{
		Folders:  make(map[string]models.Folder),
		Feeds:    make(map[string]models.Feed),
		Articles: make(map[string]models.Article),
		Statuses: make(map[models.StatusKind][]string),
	}
}

type memoryPersistedState struct {
	Accounts map[string]*memoryAccount `json:"accounts"`
}

// memoryLocalStorage keeps everything in maps and, unless path is
// MemoryPath, rewrites a JSON snapshot after every mutation.
type memoryLocalStorage struct {
	path     string
	inMemory bool

	locks entityLocks

	// mu guards the accounts map and the snapshot file
	mu       sync.RWMutex
	accounts map[string]*memoryAccount

	ids utils.IDGenerator
	now func() time.Time
}

func NewMemoryLocalStorage(path string, ids utils.IDGenerator) (LocalStorage, error) {
	if path == "" {
		path = MemoryPath
	}

	s := &memoryLocalStorage{
		path:     path,
		inMemory: path == MemoryPath,
		accounts: make(map[string]*memoryAccount),
		ids:      ids,
		now:      time.Now,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *memoryLocalStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st memoryPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}

	for id, acc := range st.Accounts {
		fresh := newMemoryAccount()
		maps.Copy(fresh.Folders, acc.Folders)
		maps.Copy(fresh.Feeds, acc.Feeds)
		maps.Copy(fresh.Articles, acc.Articles)
		maps.Copy(fresh.Statuses, acc.Statuses)
		fresh.Marks = acc.Marks
		fresh.LastFetch = acc.LastFetch
		s.accounts[id] = fresh
	}

	return nil
}

// persist must be called with s.mu held.
func (s *memoryLocalStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(memoryPersistedState{Accounts: s.accounts}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}

	return nil
}

// update runs fn on the account under the write lock and persists the result.
func (s *memoryLocalStorage) update(accountID string, fn func(acc *memoryAccount) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		acc = newMemoryAccount()
		s.accounts[accountID] = acc
	}

	if err := fn(acc); err != nil {
		return err
	}
	return s.persist()
}

// view runs fn on the account under the read lock. Unknown accounts are
// passed as empty.
func (s *memoryLocalStorage) view(accountID string, fn func(acc *memoryAccount)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		acc = newMemoryAccount()
	}
	fn(acc)
}

func (s *memoryLocalStorage) UpsertFeedsAndFolders(ctx context.Context, accountID string, taxonomy models.Taxonomy) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	taxonomy = normalizeTaxonomy(taxonomy)

	s.locks.taxonomy.Lock()
	defer s.locks.taxonomy.Unlock()

	return s.update(accountID, func(acc *memoryAccount) error {
		folders := make(map[string]models.Folder, len(taxonomy.Folders))
		for _, f := range taxonomy.Folders {
			folders[f.ID] = f
		}

		feeds := make(map[string]models.Feed, len(taxonomy.Feeds))
		for _, f := range taxonomy.Feeds {
			f.EditedName = ""
			if old, ok := acc.Feeds[f.ID]; ok {
				f.EditedName = old.EditedName
			}
			feeds[f.ID] = f
		}

		acc.Folders = folders
		acc.Feeds = feeds
		return nil
	})
}

func (s *memoryLocalStorage) UpsertArticles(ctx context.Context, accountID string, articles ...models.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	articles = dedupeArticles(articles)
	if len(articles) == 0 {
		return nil
	}

	s.locks.articles.Lock()
	defer s.locks.articles.Unlock()

	return s.update(accountID, func(acc *memoryAccount) error {
		for _, a := range articles {
			a.PublishedAt = utcPtr(a.PublishedAt)
			a.UpdatedAt = utcPtr(a.UpdatedAt)
			acc.Articles[a.ID] = a
		}
		return nil
	})
}

func (s *memoryLocalStorage) ReconcileStatus(ctx context.Context, accountID string, kind models.StatusKind, remoteIDs []string) (models.StatusDelta, error) {
	if err := ctx.Err(); err != nil {
		return models.StatusDelta{}, err
	}
	remote := uniqueSorted(remoteIDs)

	s.locks.statuses.Lock()
	defer s.locks.statuses.Unlock()

	var delta models.StatusDelta
	err := s.update(accountID, func(acc *memoryAccount) error {
		delta.Removed, delta.Added = diffSorted(acc.Statuses[kind], remote)
		acc.Statuses[kind] = remote
		return nil
	})
	if err != nil {
		return models.StatusDelta{}, fmt.Errorf("failed to reconcile %s status: %w", kind, err)
	}

	return delta, nil
}

func (s *memoryLocalStorage) QueuePendingStatusMarks(ctx context.Context, accountID string, marks ...models.PendingMark) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	marks, err := prepareMarks(marks, s.ids, s.now())
	if err != nil {
		return err
	}
	if len(marks) == 0 {
		return nil
	}

	s.locks.marks.Lock()
	defer s.locks.marks.Unlock()

	return s.update(accountID, func(acc *memoryAccount) error {
		acc.Marks = append(acc.Marks, marks...)
		sortMarks(acc.Marks)
		return nil
	})
}

func (s *memoryLocalStorage) DrainPendingStatusMarks(ctx context.Context, accountID string) ([]models.PendingMark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.locks.marks.Lock()
	defer s.locks.marks.Unlock()

	marks := make([]models.PendingMark, 0)
	err := s.update(accountID, func(acc *memoryAccount) error {
		marks = append(marks, acc.Marks...)
		acc.Marks = nil
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to drain pending marks: %w", err)
	}

	sortMarks(marks)
	return marks, nil
}

func (s *memoryLocalStorage) RenameFeed(ctx context.Context, accountID, feedID, editedName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.locks.taxonomy.Lock()
	defer s.locks.taxonomy.Unlock()

	return s.update(accountID, func(acc *memoryAccount) error {
		f, ok := acc.Feeds[feedID]
		if !ok {
			return ErrFeedNotFound
		}
		f.EditedName = editedName
		acc.Feeds[feedID] = f
		return nil
	})
}

func (s *memoryLocalStorage) Feeds(_ context.Context, accountID string) ([]models.Feed, error) {
	var feeds []models.Feed
	s.view(accountID, func(acc *memoryAccount) {
		feeds = make([]models.Feed, 0, len(acc.Feeds))
		for _, id := range slices.Sorted(maps.Keys(acc.Feeds)) {
			f := acc.Feeds[id]
			f.FolderIDs = slices.Clone(f.FolderIDs)
			feeds = append(feeds, f)
		}
	})
	return feeds, nil
}

func (s *memoryLocalStorage) Folders(_ context.Context, accountID string) ([]models.Folder, error) {
	var folders []models.Folder
	s.view(accountID, func(acc *memoryAccount) {
		folders = make([]models.Folder, 0, len(acc.Folders))
		for _, id := range slices.Sorted(maps.Keys(acc.Folders)) {
			folders = append(folders, acc.Folders[id])
		}
	})
	return folders, nil
}

func (s *memoryLocalStorage) ArticleIDs(_ context.Context, accountID string) ([]string, error) {
	var ids []string
	s.view(accountID, func(acc *memoryAccount) {
		ids = slices.Sorted(maps.Keys(acc.Articles))
	})
	if ids == nil {
		ids = make([]string, 0)
	}
	return ids, nil
}

func (s *memoryLocalStorage) StatusIDs(_ context.Context, accountID string, kind models.StatusKind) ([]string, error) {
	ids := make([]string, 0)
	s.view(accountID, func(acc *memoryAccount) {
		ids = append(ids, acc.Statuses[kind]...)
	})
	return ids, nil
}

func (s *memoryLocalStorage) MissingArticleIDs(_ context.Context, accountID string, ids []string) ([]string, error) {
	missing := make([]string, 0)
	s.view(accountID, func(acc *memoryAccount) {
		for _, id := range uniqueSorted(ids) {
			if _, ok := acc.Articles[id]; !ok {
				missing = append(missing, id)
			}
		}
	})
	return missing, nil
}

func (s *memoryLocalStorage) SyncState(_ context.Context, accountID string) (models.SyncState, error) {
	state := models.SyncState{AccountID: accountID}
	s.view(accountID, func(acc *memoryAccount) {
		if acc.LastFetch != nil {
			t := *acc.LastFetch
			state.LastSuccessfulFetchStart = &t
		}
	})
	return state, nil
}

func (s *memoryLocalStorage) SaveSyncState(ctx context.Context, state models.SyncState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.locks.syncState.Lock()
	defer s.locks.syncState.Unlock()

	return s.update(state.AccountID, func(acc *memoryAccount) error {
		acc.LastFetch = utcPtr(state.LastSuccessfulFetchStart)
		return nil
	})
}

func (s *memoryLocalStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
