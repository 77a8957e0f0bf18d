// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
	"github.com/MKhiriev/go-feed-keeper/internal/utils"
	"github.com/MKhiriev/go-feed-keeper/internal/workers"
	"github.com/MKhiriev/go-feed-keeper/models"
)

const testUserID = "u1"

var (
	testAccount = models.Account{ID: "acc-1", UserID: testUserID}
	testCreds   = models.Credentials{Type: models.CredentialsOAuthAccessToken, Secret: "token"}
)

// eventLog is an ordered, concurrency-safe list of named events.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(e string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.events)
}

func (l *eventLog) count(prefix string) int {
	n := 0
	for _, e := range l.list() {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// fakeFeed serves a fixed remote state, paginated by pageSize.
type fakeFeed struct {
	mu          sync.Mutex
	collections []models.RemoteCollection
	allItems    []models.RemoteStreamItem
	savedItems  []models.RemoteStreamItem
	extra       []models.RemoteStreamItem
	unread      []string
	starred     []string
	pageSize    int

	// fail maps a method name to the error it returns
	fail  map[string]error
	marks map[models.MarkAction][]string
	log   *eventLog
}

func newFakeFeed(f fixture) *fakeFeed {
	return &fakeFeed{
		collections: f.collections,
		allItems:    f.allItems,
		savedItems:  f.savedItems,
		extra:       f.extra,
		unread:      f.unread,
		starred:     f.starred,
		pageSize:    2,
		fail:        make(map[string]error),
		marks:       make(map[models.MarkAction][]string),
		log:         &eventLog{},
	}
}

func (f *fakeFeed) failure(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fail[method]
}

func (f *fakeFeed) setFailure(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[method] = err
}

func (f *fakeFeed) setStatuses(unread, starred []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unread, f.starred = unread, starred
}

func (f *fakeFeed) sentMarks(action models.MarkAction) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.marks[action])
}

func (f *fakeFeed) GetCollections(_ context.Context, _ models.Credentials) ([]models.RemoteCollection, error) {
	f.log.add("GetCollections")
	if err := f.failure("GetCollections"); err != nil {
		return nil, err
	}
	return slices.Clone(f.collections), nil
}

func (f *fakeFeed) GetStreamContents(_ context.Context, _ models.Credentials, req models.StreamRequest) (models.RemoteStreamContents, error) {
	f.log.add("GetStreamContents:" + req.StreamID)
	if err := f.failure("GetStreamContents"); err != nil {
		return models.RemoteStreamContents{}, err
	}

	var items []models.RemoteStreamItem
	switch req.StreamID {
	case models.GlobalAllStreamID(testUserID):
		items = f.allItems
	case models.GlobalSavedStreamID(testUserID):
		items = f.savedItems
	}

	if req.NewerThan != nil {
		items = slices.DeleteFunc(slices.Clone(items), func(it models.RemoteStreamItem) bool {
			return it.Published == nil || !it.Published.After(*req.NewerThan)
		})
	}

	page, next := pageOf(items, req.Continuation, f.pageSize)
	return models.RemoteStreamContents{Items: page, Continuation: next}, nil
}

func (f *fakeFeed) GetStreamIDs(_ context.Context, _ models.Credentials, req models.StreamRequest) (models.RemoteStreamIDs, error) {
	f.log.add("GetStreamIDs:" + req.StreamID)
	if err := f.failure("GetStreamIDs"); err != nil {
		return models.RemoteStreamIDs{}, err
	}

	f.mu.Lock()
	var ids []string
	switch {
	case req.StreamID == models.GlobalAllStreamID(testUserID) && req.UnreadOnly:
		ids = slices.Clone(f.unread)
	case req.StreamID == models.GlobalSavedStreamID(testUserID):
		ids = slices.Clone(f.starred)
	}
	f.mu.Unlock()

	page, next := pageOf(ids, req.Continuation, f.pageSize)
	return models.RemoteStreamIDs{IDs: page, Continuation: next}, nil
}

func (f *fakeFeed) MarkArticles(_ context.Context, _ models.Credentials, ids []string, action models.MarkAction) error {
	f.log.add("MarkArticles:" + string(action))
	if err := f.failure("MarkArticles"); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.marks[action] = append(f.marks[action], ids...)
	return nil
}

func (f *fakeFeed) GetEntries(_ context.Context, _ models.Credentials, ids []string) ([]models.RemoteStreamItem, error) {
	f.log.add("GetEntries")
	if err := f.failure("GetEntries"); err != nil {
		return nil, err
	}

	known := slices.Concat(f.allItems, f.savedItems, f.extra)
	out := make([]models.RemoteStreamItem, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(known, func(it models.RemoteStreamItem) bool { return it.ID == id })
		if i >= 0 {
			out = append(out, known[i])
		}
	}
	return out, nil
}

func pageOf[T any](all []T, continuation string, size int) ([]T, string) {
	start := 0
	if continuation != "" {
		start, _ = strconv.Atoi(continuation)
	}
	end := min(start+size, len(all))
	if start >= end {
		return []T{}, ""
	}

	next := ""
	if end < len(all) {
		next = strconv.Itoa(end)
	}
	return slices.Clone(all[start:end]), next
}

// recordingStore logs taxonomy writes and can block queue draining.
type recordingStore struct {
	store.LocalStorage
	log *eventLog

	beforeDrain func(ctx context.Context)
}

func (s *recordingStore) UpsertFeedsAndFolders(ctx context.Context, accountID string, taxonomy models.Taxonomy) error {
	err := s.LocalStorage.UpsertFeedsAndFolders(ctx, accountID, taxonomy)
	s.log.add("taxonomy stored")
	return err
}

func (s *recordingStore) DrainPendingStatusMarks(ctx context.Context, accountID string) ([]models.PendingMark, error) {
	if s.beforeDrain != nil {
		s.beforeDrain(ctx)
	}
	return s.LocalStorage.DrainPendingStatusMarks(ctx, accountID)
}

type fixture struct {
	collections []models.RemoteCollection
	allItems    []models.RemoteStreamItem
	savedItems  []models.RemoteStreamItem
	extra       []models.RemoteStreamItem
	unread      []string
	starred     []string
}

func item(id, feedID string, published time.Time) models.RemoteStreamItem {
	return models.RemoteStreamItem{
		ID:        id,
		Title:     "title " + id,
		Content:   "<p>" + id + "</p>",
		URL:       "https://example.com/" + id,
		Origin:    models.RemoteOrigin{StreamID: feedID},
		Published: &published,
	}
}

var fixtureBase = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

// initialSyncFixture: two folders, three feeds (one filed twice), five
// articles in the main stream, one older starred article only in the saved
// stream.
func initialSyncFixture() fixture {
	tech := "user/u1/category/tech"
	news := "user/u1/category/news"

	return fixture{
		collections: []models.RemoteCollection{
			{ID: tech, Label: "Tech", Feeds: []models.RemoteFeed{
				{ID: "feed/https://a.example/rss", Title: "A"},
				{ID: "feed/https://b.example/rss", FeedURL: "https://b.example/rss", Title: "B", Website: "https://b.example"},
			}},
			{ID: news, Label: "News", Feeds: []models.RemoteFeed{
				{ID: "feed/https://b.example/rss", FeedURL: "https://b.example/rss", Title: "B", Website: "https://b.example"},
				{ID: "feed/https://c.example/rss", Title: "C"},
			}},
		},
		allItems: []models.RemoteStreamItem{
			item("a1", "feed/https://a.example/rss", fixtureBase.Add(1*time.Hour)),
			item("a2", "feed/https://a.example/rss", fixtureBase.Add(2*time.Hour)),
			item("b1", "feed/https://b.example/rss", fixtureBase.Add(3*time.Hour)),
			item("c1", "feed/https://c.example/rss", fixtureBase.Add(4*time.Hour)),
			item("c2", "feed/https://c.example/rss", fixtureBase.Add(5*time.Hour)),
		},
		savedItems: []models.RemoteStreamItem{
			item("b1", "feed/https://b.example/rss", fixtureBase.Add(3*time.Hour)),
			item("s1", "feed/https://c.example/rss", fixtureBase.Add(-240*time.Hour)),
		},
		unread:  []string{"a1", "b1", "c2"},
		starred: []string{"b1", "s1"},
	}
}

// changeStatusesFixture is initialSyncFixture with different status sets.
func changeStatusesFixture() fixture {
	f := initialSyncFixture()
	f.unread = []string{"a2", "c2"}
	f.starred = []string{"s1"}
	return f
}

func newTestStore(t *testing.T) store.LocalStorage {
	t.Helper()
	s, err := store.NewMemoryLocalStorage(store.MemoryPath, utils.NewUUIDGenerator())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestOrchestrator(feeds *fakeFeed, s store.LocalStorage) *SyncAllOrchestrator {
	return NewSyncAllOrchestrator(feeds, s, workers.NewPool(2), logger.Nop())
}

func waitRun(t *testing.T, run *SyncRun) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	select {
	case <-run.Done():
	case <-ctx.Done():
		t.Fatal("sync run did not finish")
	}
	return run.Wait(ctx)
}

type localSnapshot struct {
	Folders  []models.Folder
	Feeds    []models.Feed
	Articles []string
	Unread   []string
	Starred  []string
}

func snapshotStore(t *testing.T, s store.LocalStorage) localSnapshot {
	t.Helper()
	ctx := context.Background()

	var (
		snap localSnapshot
		err  error
	)
	snap.Folders, err = s.Folders(ctx, testAccount.ID)
	require.NoError(t, err)
	snap.Feeds, err = s.Feeds(ctx, testAccount.ID)
	require.NoError(t, err)
	snap.Articles, err = s.ArticleIDs(ctx, testAccount.ID)
	require.NoError(t, err)
	snap.Unread, err = s.StatusIDs(ctx, testAccount.ID, models.StatusUnread)
	require.NoError(t, err)
	snap.Starred, err = s.StatusIDs(ctx, testAccount.ID, models.StatusStarred)
	require.NoError(t, err)
	return snap
}
