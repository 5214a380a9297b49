package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
	"github.com/ottstream/mylist/internal/infrastructure/cache"
	"github.com/ottstream/mylist/internal/infrastructure/metrics"
)

// cacheKeyPrefix namespaces list cache keys.
// Full key format: mylist:{userID}:{page}:{limit}
const cacheKeyPrefix = "mylist:"

// Pagination defaults and bounds enforced by the HTTP boundary and reused by
// the seed tooling.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 1000
)

// AddInput contains the input parameters for adding an entry.
type AddInput struct {
	UserID      string
	ContentID   uuid.UUID
	ContentType model.ContentType
}

// RemoveInput contains the input parameters for removing an entry.
type RemoveInput struct {
	UserID      string
	ContentID   uuid.UUID
	ContentType model.ContentType
}

// ListInput contains the input parameters for a paginated list read.
type ListInput struct {
	UserID string
	Page   int
	Limit  int
}

// ListItem is one watchlist entry hydrated with its catalog record.
type ListItem struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	ContentID   string            `json:"contentId"`
	ContentType model.ContentType `json:"contentType"`
	AddedAt     time.Time         `json:"addedAt"`
	Content     *model.Content    `json:"content"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListOutput is the fully-materialized paginated list response. It is also
// the value cached verbatim under the list cache key.
type ListOutput struct {
	Data       []ListItem `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// MyListService defines the business logic for watchlist membership.
type MyListService interface {
	// Add validates the referenced content exists and creates a watchlist
	// entry. Returns repository.ErrContentNotFound if the content has no
	// catalog record and repository.ErrDuplicateEntry if the
	// (userID, contentID, contentType) triple is already present.
	Add(ctx context.Context, input AddInput) (*model.WatchlistEntry, error)

	// Remove deletes the entry matching the triple.
	// Returns repository.ErrEntryNotFound if no such entry exists.
	Remove(ctx context.Context, input RemoveInput) error

	// List returns one page of the user's entries, most recently added
	// first, each hydrated with its catalog record.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// MyListServiceConfig holds configuration for MyListService.
type MyListServiceConfig struct {
	// CacheTTL is the TTL for cached list pages.
	CacheTTL time.Duration
}

// DefaultMyListServiceConfig returns the default configuration.
func DefaultMyListServiceConfig() MyListServiceConfig {
	return MyListServiceConfig{
		CacheTTL: 5 * time.Minute,
	}
}

type myListService struct {
	repo    repository.WatchlistRepository
	catalog repository.ContentCatalog
	cache   cache.ListCache
	sfGroup singleflight.Group

	cacheTTL time.Duration
}

// NewMyListService creates a new MyListService instance.
func NewMyListService(
	repo repository.WatchlistRepository,
	catalog repository.ContentCatalog,
	listCache cache.ListCache,
	cfg MyListServiceConfig,
) MyListService {
	return &myListService{
		repo:     repo,
		catalog:  catalog,
		cache:    listCache,
		cacheTTL: cfg.CacheTTL,
	}
}

// Add creates a watchlist entry after validating the referenced content.
func (s *myListService) Add(ctx context.Context, input AddInput) (*model.WatchlistEntry, error) {
	if _, err := s.catalog.Resolve(ctx, input.ContentID, input.ContentType); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, repository.ErrContentNotFound
		}
		return nil, fmt.Errorf("validate content: %w", err)
	}

	entry, err := model.NewWatchlistEntry(input.UserID, input.ContentID, input.ContentType)
	if err != nil {
		return nil, err
	}

	// The repository enforces triple uniqueness atomically; no separate
	// duplicate check happens here.
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	metrics.StoreOperationsTotal.WithLabelValues(metrics.StoreOpCreate, metrics.CollectionMyList).Inc()
	s.invalidateUserCache(ctx, input.UserID)

	return entry, nil
}

// Remove deletes the entry matching the triple and invalidates the user's
// cached pages.
func (s *myListService) Remove(ctx context.Context, input RemoveInput) error {
	if err := s.repo.Delete(ctx, input.UserID, input.ContentID, input.ContentType); err != nil {
		return err
	}

	metrics.StoreOperationsTotal.WithLabelValues(metrics.StoreOpDelete, metrics.CollectionMyList).Inc()
	s.invalidateUserCache(ctx, input.UserID)

	return nil
}

// List returns one page of the user's watchlist with hydrated content.
// Uses singleflight to prevent cache stampede on concurrent identical reads.
func (s *myListService) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	key := s.cacheKey(input)

	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.listWithCache(ctx, key, input)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}
	return result.(*ListOutput), nil
}

// listWithCache implements the cache-aside pattern for a single list page.
func (s *myListService) listWithCache(ctx context.Context, key string, input ListInput) (*ListOutput, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("cache get failed, falling back to store",
			"key", key,
			"error", err,
		)
	}

	if data != nil {
		var cached ListOutput
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		slog.Warn("discarding undecodable cache entry", "key", key)
	}

	output, err := s.assembleList(ctx, input)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(output)
	if err != nil {
		return nil, fmt.Errorf("encode list response: %w", err)
	}
	if err := s.cache.Set(ctx, key, encoded, s.cacheTTL); err != nil {
		slog.Warn("failed to cache list response",
			"key", key,
			"error", err,
		)
	}

	return output, nil
}

// assembleList reads the user's entries, paginates, and hydrates the page.
func (s *myListService) assembleList(ctx context.Context, input ListInput) (*ListOutput, error) {
	entries, err := s.repo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	metrics.StoreOperationsTotal.WithLabelValues(metrics.StoreOpList, metrics.CollectionMyList).Inc()

	total := len(entries)
	totalPages := (total + input.Limit - 1) / input.Limit

	// Page and limit are never clamped against totalPages: a page beyond
	// range yields an empty data slice with true totals.
	offset := (input.Page - 1) * input.Limit
	end := offset + input.Limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	data := make([]ListItem, 0, end-offset)
	for _, entry := range entries[offset:end] {
		content, err := s.catalog.Resolve(ctx, entry.ContentID, entry.ContentType)
		if err != nil {
			if errors.Is(err, repository.ErrContentNotFound) {
				// The entry outlived its catalog record. Skip it rather
				// than failing the page; totals still count it.
				slog.Warn("skipping orphaned watchlist entry",
					"entry_id", entry.ID,
					"content_id", entry.ContentID,
					"content_type", entry.ContentType,
				)
				continue
			}
			return nil, fmt.Errorf("hydrate entry %s: %w", entry.ID, err)
		}

		data = append(data, ListItem{
			ID:          entry.ID.String(),
			UserID:      entry.UserID,
			ContentID:   entry.ContentID.String(),
			ContentType: entry.ContentType,
			AddedAt:     entry.AddedAt,
			Content:     content,
		})
	}

	return &ListOutput{
		Data: data,
		Pagination: Pagination{
			Page:       input.Page,
			Limit:      input.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// cacheKey builds the cache key for a list read.
func (s *myListService) cacheKey(input ListInput) string {
	return fmt.Sprintf("%s%s:%d:%d", cacheKeyPrefix, input.UserID, input.Page, input.Limit)
}

// invalidateUserCache drops every cached page for the user. Invalidation
// failure is logged but never fails the write that triggered it; the cache is
// a disposable view.
func (s *myListService) invalidateUserCache(ctx context.Context, userID string) {
	prefix := cacheKeyPrefix + userID + ":"
	if err := s.cache.DeletePrefix(ctx, prefix); err != nil {
		slog.Warn("failed to invalidate list cache",
			"user_id", userID,
			"error", err,
		)
	}
}
