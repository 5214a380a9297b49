package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

// Schema expected by this repository:
//
//	CREATE TABLE watchlist_entries (
//	    id           uuid PRIMARY KEY,
//	    user_id      text NOT NULL,
//	    content_id   uuid NOT NULL,
//	    content_type text NOT NULL,
//	    added_at     timestamptz NOT NULL,
//	    UNIQUE (user_id, content_id, content_type)
//	);
//
// The unique constraint is the serialization point for concurrent adds; the
// repository never needs a read-check-append cycle.

// DBTX is an interface that abstracts pgxpool.Pool and pgx.Tx for testability.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WatchlistRepository implements repository.WatchlistRepository using PostgreSQL.
type WatchlistRepository struct {
	db DBTX
}

// NewWatchlistRepository creates a new WatchlistRepository instance.
func NewWatchlistRepository(db DBTX) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Create persists a new watchlist entry. A unique-constraint violation on the
// triple maps to ErrDuplicateEntry.
func (r *WatchlistRepository) Create(ctx context.Context, entry *model.WatchlistEntry) error {
	const query = `
		INSERT INTO watchlist_entries (id, user_id, content_id, content_type, added_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.ContentID,
		entry.ContentType.String(),
		entry.AddedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create watchlist entry: %w", err)
	}

	return nil
}

// Delete removes the entry matching the triple.
func (r *WatchlistRepository) Delete(ctx context.Context, userID string, contentID uuid.UUID, contentType model.ContentType) error {
	const query = `
		DELETE FROM watchlist_entries
		WHERE user_id = $1 AND content_id = $2 AND content_type = $3
	`

	tag, err := r.db.Exec(ctx, query, userID, contentID, contentType.String())
	if err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// ListByUser retrieves all entries belonging to a user, most recent first.
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID string) ([]*model.WatchlistEntry, error) {
	const query = `
		SELECT id, user_id, content_id, content_type, added_at
		FROM watchlist_entries
		WHERE user_id = $1
		ORDER BY added_at DESC, id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*model.WatchlistEntry, 0)
	for rows.Next() {
		var (
			entry       model.WatchlistEntry
			contentType string
		)
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.ContentID, &contentType, &entry.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		entry.ContentType = model.ContentType(contentType)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist entries: %w", err)
	}

	return entries, nil
}

// Compile-time verification that WatchlistRepository implements repository.WatchlistRepository.
var _ repository.WatchlistRepository = (*WatchlistRepository)(nil)
