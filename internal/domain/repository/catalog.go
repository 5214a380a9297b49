package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ottstream/mylist/internal/domain/model"
)

// ContentCatalog defines read-only access to the content catalog. The catalog
// is owned by an external collaborator; this service never writes to it.
type ContentCatalog interface {
	// Resolve fetches the catalog record with the given ID and type.
	// Returns ErrContentNotFound if no matching record exists.
	Resolve(ctx context.Context, contentID uuid.UUID, contentType model.ContentType) (*model.Content, error)

	// Movies returns all movie records.
	Movies(ctx context.Context) ([]model.Movie, error)

	// TVShows returns all TV show records.
	TVShows(ctx context.Context) ([]model.TVShow, error)
}
