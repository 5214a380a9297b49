package jsonstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

// WatchlistCollection is the file holding all users' watchlist entries.
const WatchlistCollection = "mylist.json"

// entryRecord is the on-disk shape of a watchlist entry.
type entryRecord struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	ContentID   string `json:"contentId"`
	ContentType string `json:"contentType"`
	AddedAt     string `json:"addedAt"`
}

// WatchlistRepository implements repository.WatchlistRepository on top of the
// JSON file store. Uniqueness of the (userID, contentID, contentType) triple
// is checked and the append performed inside a single Replace cycle, so
// concurrent adds for the same triple cannot both pass the duplicate check.
type WatchlistRepository struct {
	store *Store
}

// NewWatchlistRepository creates a file-backed WatchlistRepository.
func NewWatchlistRepository(store *Store) *WatchlistRepository {
	return &WatchlistRepository{store: store}
}

// Create persists a new entry, rejecting duplicates of the triple.
func (r *WatchlistRepository) Create(ctx context.Context, entry *model.WatchlistEntry) error {
	record := toRecord(entry)

	err := Replace(r.store, WatchlistCollection, func(records []entryRecord) ([]entryRecord, error) {
		for _, existing := range records {
			if existing.UserID == record.UserID &&
				existing.ContentID == record.ContentID &&
				existing.ContentType == record.ContentType {
				return nil, repository.ErrDuplicateEntry
			}
		}
		return append(records, record), nil
	})
	if err != nil {
		if err == repository.ErrDuplicateEntry {
			return err
		}
		return fmt.Errorf("create watchlist entry: %w", err)
	}
	return nil
}

// Delete removes the entry matching the triple, replacing the collection
// without it.
func (r *WatchlistRepository) Delete(ctx context.Context, userID string, contentID uuid.UUID, contentType model.ContentType) error {
	id := contentID.String()

	err := Replace(r.store, WatchlistCollection, func(records []entryRecord) ([]entryRecord, error) {
		filtered := make([]entryRecord, 0, len(records))
		for _, rec := range records {
			if rec.UserID == userID && rec.ContentID == id && rec.ContentType == contentType.String() {
				continue
			}
			filtered = append(filtered, rec)
		}
		if len(filtered) == len(records) {
			return nil, repository.ErrEntryNotFound
		}
		return filtered, nil
	})
	if err != nil {
		if err == repository.ErrEntryNotFound {
			return err
		}
		return fmt.Errorf("delete watchlist entry: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's entries ordered by AddedAt descending.
// Entries with equal timestamps keep their insertion order.
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID string) ([]*model.WatchlistEntry, error) {
	records, err := Find(r.store, WatchlistCollection, func(rec entryRecord) bool {
		return rec.UserID == userID
	})
	if err != nil {
		return nil, fmt.Errorf("list watchlist entries: %w", err)
	}

	entries := make([]*model.WatchlistEntry, 0, len(records))
	for _, rec := range records {
		entry, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("decode watchlist entry %s: %w", rec.ID, err)
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AddedAt.After(entries[j].AddedAt)
	})

	return entries, nil
}

func toRecord(entry *model.WatchlistEntry) entryRecord {
	return entryRecord{
		ID:          entry.ID.String(),
		UserID:      entry.UserID,
		ContentID:   entry.ContentID.String(),
		ContentType: entry.ContentType.String(),
		AddedAt:     entry.AddedAt.Format(time.RFC3339Nano),
	}
}

func fromRecord(rec entryRecord) (*model.WatchlistEntry, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("parse entry ID: %w", err)
	}
	contentID, err := uuid.Parse(rec.ContentID)
	if err != nil {
		return nil, fmt.Errorf("parse content ID: %w", err)
	}
	addedAt, err := time.Parse(time.RFC3339Nano, rec.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("parse addedAt: %w", err)
	}

	return &model.WatchlistEntry{
		ID:          id,
		UserID:      rec.UserID,
		ContentID:   contentID,
		ContentType: model.ContentType(rec.ContentType),
		AddedAt:     addedAt,
	}, nil
}

// Compile-time verification that WatchlistRepository implements repository.WatchlistRepository.
var _ repository.WatchlistRepository = (*WatchlistRepository)(nil)
