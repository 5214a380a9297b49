package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ottstream/mylist/internal/domain/model"
)

// WatchlistRepository defines persistence for watchlist entries.
// Implementations are provided by the infrastructure layer (JSON file store
// or PostgreSQL) and must enforce uniqueness of the
// (userID, contentID, contentType) triple atomically.
type WatchlistRepository interface {
	// Create persists a new entry.
	// Returns ErrDuplicateEntry if an entry with the same triple exists.
	Create(ctx context.Context, entry *model.WatchlistEntry) error

	// Delete removes the entry matching the triple.
	// Returns ErrEntryNotFound if no such entry exists.
	Delete(ctx context.Context, userID string, contentID uuid.UUID, contentType model.ContentType) error

	// ListByUser retrieves all entries belonging to a user, ordered by
	// AddedAt descending with insertion order as the tie-break.
	// Returns an empty slice if the user has no entries.
	ListByUser(ctx context.Context, userID string) ([]*model.WatchlistEntry, error)
}
