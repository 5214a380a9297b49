package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

// mockWatchlistRepository provides a configurable mock for WatchlistRepository.
type mockWatchlistRepository struct {
	createFn     func(ctx context.Context, entry *model.WatchlistEntry) error
	deleteFn     func(ctx context.Context, userID string, contentID uuid.UUID, contentType model.ContentType) error
	listByUserFn func(ctx context.Context, userID string) ([]*model.WatchlistEntry, error)
}

func (m *mockWatchlistRepository) Create(ctx context.Context, entry *model.WatchlistEntry) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}

func (m *mockWatchlistRepository) Delete(ctx context.Context, userID string, contentID uuid.UUID, contentType model.ContentType) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, contentID, contentType)
	}
	return nil
}

func (m *mockWatchlistRepository) ListByUser(ctx context.Context, userID string) ([]*model.WatchlistEntry, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []*model.WatchlistEntry{}, nil
}

// mockContentCatalog provides a configurable mock for ContentCatalog.
type mockContentCatalog struct {
	resolveFn func(ctx context.Context, contentID uuid.UUID, contentType model.ContentType) (*model.Content, error)
	moviesFn  func(ctx context.Context) ([]model.Movie, error)
	tvShowsFn func(ctx context.Context) ([]model.TVShow, error)
}

func (m *mockContentCatalog) Resolve(ctx context.Context, contentID uuid.UUID, contentType model.ContentType) (*model.Content, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, contentID, contentType)
	}
	return model.MovieContent(&model.Movie{ID: contentID.String(), Title: "stub"}), nil
}

func (m *mockContentCatalog) Movies(ctx context.Context) ([]model.Movie, error) {
	if m.moviesFn != nil {
		return m.moviesFn(ctx)
	}
	return []model.Movie{}, nil
}

func (m *mockContentCatalog) TVShows(ctx context.Context) ([]model.TVShow, error) {
	if m.tvShowsFn != nil {
		return m.tvShowsFn(ctx)
	}
	return []model.TVShow{}, nil
}

// mockListCache provides a configurable mock for ListCache.
type mockListCache struct {
	getFn          func(ctx context.Context, key string) ([]byte, error)
	setFn          func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deletePrefixFn func(ctx context.Context, prefix string) error
	clearFn        func(ctx context.Context) error
}

func (m *mockListCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockListCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockListCache) DeletePrefix(ctx context.Context, prefix string) error {
	if m.deletePrefixFn != nil {
		return m.deletePrefixFn(ctx, prefix)
	}
	return nil
}

func (m *mockListCache) Clear(ctx context.Context) error {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	return nil
}

// mockUserDirectory provides a configurable mock for UserDirectory.
type mockUserDirectory struct {
	findByUsernameFn func(ctx context.Context, username string) (*model.User, error)
}

func (m *mockUserDirectory) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, repository.ErrUserNotFound
}
