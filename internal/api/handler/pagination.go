package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ottstream/mylist/internal/usecase"
)

var (
	errBadPage  = errors.New("Page must be a positive integer")
	errBadLimit = errors.New("Limit must be an integer between 1 and 1000")
)

// parsePagination reads page and limit query parameters, applying defaults
// (page 1, limit 20) and bounds (page >= 1, 1 <= limit <= 1000). Violations
// fail before any service call.
func parsePagination(r *http.Request) (page, limit int, err error) {
	page = usecase.DefaultPage
	limit = usecase.DefaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, errBadPage
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > usecase.MaxLimit {
			return 0, 0, errBadLimit
		}
	}

	return page, limit, nil
}
