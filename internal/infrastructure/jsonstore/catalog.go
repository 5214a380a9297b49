package jsonstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
)

// Catalog collection files. Read-only from this service's point of view.
const (
	MoviesCollection  = "movies.json"
	TVShowsCollection = "tvshows.json"
)

// Catalog implements repository.ContentCatalog over the JSON file store.
// Date fields are normalized from their stored string form on read by
// model.Date.
type Catalog struct {
	store *Store
}

// NewCatalog creates a file-backed content catalog.
func NewCatalog(store *Store) *Catalog {
	return &Catalog{store: store}
}

// Resolve fetches the catalog record with the given ID and type.
func (c *Catalog) Resolve(ctx context.Context, contentID uuid.UUID, contentType model.ContentType) (*model.Content, error) {
	id := contentID.String()

	switch contentType {
	case model.ContentTypeMovie:
		movies, err := c.Movies(ctx)
		if err != nil {
			return nil, err
		}
		for i := range movies {
			if movies[i].ID == id {
				return model.MovieContent(&movies[i]), nil
			}
		}
	case model.ContentTypeTVShow:
		shows, err := c.TVShows(ctx)
		if err != nil {
			return nil, err
		}
		for i := range shows {
			if shows[i].ID == id {
				return model.TVShowContent(&shows[i]), nil
			}
		}
	default:
		return nil, fmt.Errorf("unknown content type %q", contentType)
	}

	return nil, repository.ErrContentNotFound
}

// Movies returns all movie records in the catalog.
func (c *Catalog) Movies(ctx context.Context) ([]model.Movie, error) {
	movies, err := ReadAll[model.Movie](c.store, MoviesCollection)
	if err != nil {
		return nil, fmt.Errorf("read movie catalog: %w", err)
	}
	return movies, nil
}

// TVShows returns all TV show records in the catalog.
func (c *Catalog) TVShows(ctx context.Context) ([]model.TVShow, error) {
	shows, err := ReadAll[model.TVShow](c.store, TVShowsCollection)
	if err != nil {
		return nil, fmt.Errorf("read tvshow catalog: %w", err)
	}
	return shows, nil
}

// Compile-time verification that Catalog implements repository.ContentCatalog.
var _ repository.ContentCatalog = (*Catalog)(nil)
