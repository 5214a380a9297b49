package jsonstore

import (
	"context"
	"fmt"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

// UsersCollection is the file holding user accounts.
const UsersCollection = "users.json"

// UserDirectory implements repository.UserDirectory over the JSON file store.
type UserDirectory struct {
	store *Store
}

// NewUserDirectory creates a file-backed user directory.
func NewUserDirectory(store *Store) *UserDirectory {
	return &UserDirectory{store: store}
}

// FindByUsername retrieves a user account by username.
func (d *UserDirectory) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := ReadAll[model.User](d.store, UsersCollection)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// Compile-time verification that UserDirectory implements repository.UserDirectory.
var _ repository.UserDirectory = (*UserDirectory)(nil)
