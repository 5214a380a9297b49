package jsonstore

import (
	"context"
	"errors"
	"testing"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

func TestUserDirectory_FindByUsername(t *testing.T) {
	store := newTestStore(t)
	users := []model.User{
		{ID: "u1", Username: "demo", Email: "demo@example.com", Password: "secret"},
		{ID: "u2", Username: "movie_buff", Email: "buff@example.com", Password: "hunter2"},
	}
	if err := WriteAll(store, UsersCollection, users); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	dir := NewUserDirectory(store)

	user, err := dir.FindByUsername(context.Background(), "movie_buff")
	if err != nil {
		t.Fatalf("FindByUsername failed: %v", err)
	}
	if user.ID != "u2" {
		t.Errorf("ID = %q, want u2", user.ID)
	}

	_, err = dir.FindByUsername(context.Background(), "nobody")
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
