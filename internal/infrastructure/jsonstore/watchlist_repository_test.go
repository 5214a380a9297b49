package jsonstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

func newTestEntry(t *testing.T, userID string, contentType model.ContentType) *model.WatchlistEntry {
	t.Helper()

	entry, err := model.NewWatchlistEntry(userID, uuid.New(), contentType)
	if err != nil {
		t.Fatalf("NewWatchlistEntry failed: %v", err)
	}
	return entry
}

func TestWatchlistRepository_Create(t *testing.T) {
	repo := NewWatchlistRepository(newTestStore(t))
	ctx := context.Background()

	entry := newTestEntry(t, "user-1", model.ContentTypeMovie)
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	entries, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != entry.ID {
		t.Errorf("ID = %v, want %v", entries[0].ID, entry.ID)
	}
	if !entries[0].Matches(entry.UserID, entry.ContentID, entry.ContentType) {
		t.Errorf("stored triple does not match: %+v", entries[0])
	}
}

func TestWatchlistRepository_Create_Duplicate(t *testing.T) {
	repo := NewWatchlistRepository(newTestStore(t))
	ctx := context.Background()

	entry := newTestEntry(t, "user-1", model.ContentTypeMovie)
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Same triple, fresh ID: still a duplicate.
	dup := &model.WatchlistEntry{
		ID:          uuid.New(),
		UserID:      entry.UserID,
		ContentID:   entry.ContentID,
		ContentType: entry.ContentType,
		AddedAt:     time.Now(),
	}
	if err := repo.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}

	entries, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("store must still contain exactly one matching entry, got %d", len(entries))
	}
}

func TestWatchlistRepository_Create_SameContentDifferentType(t *testing.T) {
	repo := NewWatchlistRepository(newTestStore(t))
	ctx := context.Background()

	contentID := uuid.New()
	movie, _ := model.NewWatchlistEntry("user-1", contentID, model.ContentTypeMovie)
	show, _ := model.NewWatchlistEntry("user-1", contentID, model.ContentTypeTVShow)

	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("Create movie failed: %v", err)
	}
	// The triple includes the type, so the same ID under another type is
	// a distinct entry.
	if err := repo.Create(ctx, show); err != nil {
		t.Fatalf("Create tvshow failed: %v", err)
	}
}

func TestWatchlistRepository_Create_ConcurrentSameTriple(t *testing.T) {
	repo := NewWatchlistRepository(newTestStore(t))
	ctx := context.Background()

	userID := "user-1"
	contentID := uuid.New()

	const attempts = 10
	errCh := make(chan error, attempts)

	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry, err := model.NewWatchlistEntry(userID, contentID, model.ContentTypeMovie)
			if err != nil {
				errCh <- err
				return
			}
			errCh <- repo.Create(ctx, entry)
		}()
	}
	wg.Wait()
	close(errCh)

	var successes, duplicates int
	for err := range errCh {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, repository.ErrDuplicateEntry):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != 1 {
		t.Errorf("expected exactly 1 successful create, got %d", successes)
	}
	if duplicates != attempts-1 {
		t.Errorf("expected %d duplicate rejections, got %d", attempts-1, duplicates)
	}

	entries, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly 1 stored entry, got %d", len(entries))
	}
}

func TestWatchlistRepository_Delete(t *testing.T) {
	repo := NewWatchlistRepository(newTestStore(t))
	ctx := context.Background()

	entry := newTestEntry(t, "user-1", model.ContentTypeMovie)
	other := newTestEntry(t, "user-1", model.ContentTypeTVShow)
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, entry.UserID, entry.ContentID, entry.ContentType); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	entries, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(entries))
	}
	if entries[0].ID != other.ID {
		t.Errorf("wrong entry removed: remaining %v", entries[0].ID)
	}
}

func TestWatchlistRepository_Delete_NotFound(t *testing.T) {
	repo := NewWatchlistRepository(newTestStore(t))
	ctx := context.Background()

	entry := newTestEntry(t, "user-1", model.ContentTypeMovie)
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := repo.Delete(ctx, "user-1", uuid.New(), model.ContentTypeMovie)
	if !errors.Is(err, repository.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	// The failed delete must not change the store.
	entries, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected store unchanged with 1 entry, got %d", len(entries))
	}
}

func TestWatchlistRepository_ListByUser_OrderAndIsolation(t *testing.T) {
	store := newTestStore(t)
	repo := NewWatchlistRepository(store)
	ctx := context.Background()

	// Write records with controlled timestamps: t1 < t2 < t3.
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := range 3 {
		entry := &model.WatchlistEntry{
			ID:          uuid.New(),
			UserID:      "user-1",
			ContentID:   uuid.New(),
			ContentType: model.ContentTypeMovie,
			AddedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids = append(ids, entry.ID)
	}

	// Another user's entry must never leak into the listing.
	stranger := newTestEntry(t, "user-2", model.ContentTypeMovie)
	if err := repo.Create(ctx, stranger); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	entries, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Most recently added first: t3, t2, t1.
	want := []uuid.UUID{ids[2], ids[1], ids[0]}
	for i, entry := range entries {
		if entry.ID != want[i] {
			t.Errorf("position %d = %v, want %v", i, entry.ID, want[i])
		}
	}
}

func TestWatchlistRepository_ListByUser_Empty(t *testing.T) {
	repo := NewWatchlistRepository(newTestStore(t))

	entries, err := repo.ListByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty slice, got %d entries", len(entries))
	}
}
