package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/domain/repository"
	"github.com/ottstream/mylist/internal/usecase"
)

// Request/Response types

type MutateListRequest struct {
	ContentID   string `json:"contentId"`
	ContentType string `json:"contentType"`
}

type EntryResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	ContentID   string `json:"contentId"`
	ContentType string `json:"contentType"`
	AddedAt     string `json:"addedAt"`
}

// MyListHandler handles watchlist HTTP requests.
type MyListHandler struct {
	svc usecase.MyListService
}

// NewMyListHandler creates a new MyListHandler.
func NewMyListHandler(svc usecase.MyListService) *MyListHandler {
	return &MyListHandler{svc: svc}
}

// Add handles POST /v1/users/{userID}/mylist
func (h *MyListHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	input, ok := h.decodeMutation(w, r, userID)
	if !ok {
		return
	}

	entry, err := h.svc.Add(r.Context(), usecase.AddInput(input))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, EntryResponse{
		ID:          entry.ID.String(),
		UserID:      entry.UserID,
		ContentID:   entry.ContentID.String(),
		ContentType: entry.ContentType.String(),
		AddedAt:     entry.AddedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Remove handles DELETE /v1/users/{userID}/mylist
func (h *MyListHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	input, ok := h.decodeMutation(w, r, userID)
	if !ok {
		return
	}

	if err := h.svc.Remove(r.Context(), usecase.RemoveInput(input)); err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("%s removed from your list", input.ContentType),
	})
}

// List handles GET /v1/users/{userID}/mylist
func (h *MyListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	page, limit, err := parsePagination(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_pagination", err.Error())
		return
	}

	output, err := h.svc.List(r.Context(), usecase.ListInput{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, output)
}

// mutationInput is the validated body of an add or remove request.
type mutationInput struct {
	UserID      string
	ContentID   uuid.UUID
	ContentType model.ContentType
}

// decodeMutation validates the shared add/remove request shape. On failure it
// writes the 400 response and returns ok=false; no service call happens.
func (h *MyListHandler) decodeMutation(w http.ResponseWriter, r *http.Request, userID string) (mutationInput, bool) {
	var req MutateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return mutationInput{}, false
	}

	if req.ContentID == "" {
		Error(w, http.StatusBadRequest, "invalid_content_id", "Content ID is required")
		return mutationInput{}, false
	}
	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_content_id", "Content ID must be a valid UUID")
		return mutationInput{}, false
	}

	if req.ContentType == "" {
		Error(w, http.StatusBadRequest, "invalid_content_type", "Content type is required")
		return mutationInput{}, false
	}
	contentType := model.ContentType(req.ContentType)
	if !contentType.IsValid() {
		Error(w, http.StatusBadRequest, "invalid_content_type", "Content type must be movie or tvshow")
		return mutationInput{}, false
	}

	return mutationInput{
		UserID:      userID,
		ContentID:   contentID,
		ContentType: contentType,
	}, true
}

func (h *MyListHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrContentNotFound):
		Error(w, http.StatusNotFound, "content_not_found", "Referenced content was not found in the catalog")
	case errors.Is(err, repository.ErrDuplicateEntry):
		Error(w, http.StatusConflict, "duplicate_entry", "Item already exists in your list")
	case errors.Is(err, repository.ErrEntryNotFound):
		Error(w, http.StatusNotFound, "entry_not_found", "Item not found in your list")
	case errors.Is(err, model.ErrEmptyUserID):
		Error(w, http.StatusBadRequest, "invalid_user_id", "User ID is required")
	default:
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
