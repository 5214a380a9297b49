package handler

import (
	"context"
	"net/http"

	"github.com/ottstream/mylist/internal/usecase"
)

// ContentHandler serves read-only catalog listings.
type ContentHandler struct {
	svc usecase.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc usecase.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// Movies handles GET /v1/content/movies
func (h *ContentHandler) Movies(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.ListMovies)
}

// TVShows handles GET /v1/content/tvshows
func (h *ContentHandler) TVShows(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.ListTVShows)
}

// All handles GET /v1/content
func (h *ContentHandler) All(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.ListAll)
}

func (h *ContentHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, page, limit int) (*usecase.ContentPage, error),
) {
	page, limit, err := parsePagination(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_pagination", err.Error())
		return
	}

	result, err := list(r.Context(), page, limit)
	if err != nil {
		Error(w, http.StatusInternalServerError, "internal_error", "Failed to fetch content")
		return
	}

	JSON(w, http.StatusOK, result)
}
