package usecase

import (
	"context"
	"fmt"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

// ContentPage is one page of catalog records, each carrying its contentType
// discriminant.
type ContentPage struct {
	Data       []model.Content `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// ContentService exposes read-only, paginated views of the content catalog.
type ContentService interface {
	// ListMovies returns one page of the movie catalog.
	ListMovies(ctx context.Context, page, limit int) (*ContentPage, error)

	// ListTVShows returns one page of the TV show catalog.
	ListTVShows(ctx context.Context, page, limit int) (*ContentPage, error)

	// ListAll returns one page of the combined catalog, movies first.
	ListAll(ctx context.Context, page, limit int) (*ContentPage, error)
}

type contentService struct {
	catalog repository.ContentCatalog
}

// NewContentService creates a new ContentService instance.
func NewContentService(catalog repository.ContentCatalog) ContentService {
	return &contentService{catalog: catalog}
}

func (s *contentService) ListMovies(ctx context.Context, page, limit int) (*ContentPage, error) {
	movies, err := s.catalog.Movies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	items := make([]model.Content, 0, len(movies))
	for i := range movies {
		items = append(items, *model.MovieContent(&movies[i]))
	}
	return paginateContent(items, page, limit), nil
}

func (s *contentService) ListTVShows(ctx context.Context, page, limit int) (*ContentPage, error) {
	shows, err := s.catalog.TVShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tvshows: %w", err)
	}

	items := make([]model.Content, 0, len(shows))
	for i := range shows {
		items = append(items, *model.TVShowContent(&shows[i]))
	}
	return paginateContent(items, page, limit), nil
}

func (s *contentService) ListAll(ctx context.Context, page, limit int) (*ContentPage, error) {
	movies, err := s.catalog.Movies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	shows, err := s.catalog.TVShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	items := make([]model.Content, 0, len(movies)+len(shows))
	for i := range movies {
		items = append(items, *model.MovieContent(&movies[i]))
	}
	for i := range shows {
		items = append(items, *model.TVShowContent(&shows[i]))
	}
	return paginateContent(items, page, limit), nil
}

func paginateContent(items []model.Content, page, limit int) *ContentPage {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	offset := (page - 1) * limit
	end := offset + limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	return &ContentPage{
		Data: items[offset:end],
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
