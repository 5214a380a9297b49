package repository

import (
	"context"

	"github.com/ottstream/mylist/internal/domain/model"
)

// UserDirectory defines read-only access to the user account store.
type UserDirectory interface {
	// FindByUsername retrieves a user account by username.
	// Returns ErrUserNotFound if no such account exists.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
