package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContentType discriminates between the two kinds of catalog records a
// watchlist entry can reference.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeTVShow ContentType = "tvshow"
)

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeMovie, ContentTypeTVShow:
		return true
	default:
		return false
	}
}

func (t ContentType) String() string {
	return string(t)
}

// WatchlistEntry records one user's intent to track one piece of content.
// Entries are immutable after creation; the (UserID, ContentID, ContentType)
// triple is unique among stored entries, not the ID.
type WatchlistEntry struct {
	ID          uuid.UUID
	UserID      string
	ContentID   uuid.UUID
	ContentType ContentType
	AddedAt     time.Time
}

var (
	ErrEmptyUserID        = errors.New("user ID cannot be empty")
	ErrInvalidContentID   = errors.New("content ID cannot be nil")
	ErrInvalidContentType = errors.New("content type must be movie or tvshow")
)

// NewWatchlistEntry creates a watchlist entry with a fresh identifier and the
// current timestamp.
func NewWatchlistEntry(userID string, contentID uuid.UUID, contentType ContentType) (*WatchlistEntry, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if contentID == uuid.Nil {
		return nil, ErrInvalidContentID
	}
	if !contentType.IsValid() {
		return nil, ErrInvalidContentType
	}

	return &WatchlistEntry{
		ID:          uuid.New(),
		UserID:      userID,
		ContentID:   contentID,
		ContentType: contentType,
		AddedAt:     time.Now(),
	}, nil
}

// Matches reports whether the entry belongs to the given uniqueness triple.
func (e *WatchlistEntry) Matches(userID string, contentID uuid.UUID, contentType ContentType) bool {
	return e.UserID == userID && e.ContentID == contentID && e.ContentType == contentType
}
