package repository

import "errors"

var (
	// ErrEntryNotFound is returned when a watchlist entry cannot be found.
	ErrEntryNotFound = errors.New("entry not found in list")

	// ErrDuplicateEntry is returned when an entry with the same
	// (userID, contentID, contentType) triple already exists.
	ErrDuplicateEntry = errors.New("entry already exists in list")

	// ErrContentNotFound is returned when the referenced content has no
	// catalog record.
	ErrContentNotFound = errors.New("content not found")

	// ErrUserNotFound is returned when a user cannot be found in the user
	// directory.
	ErrUserNotFound = errors.New("user not found")
)
