package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/PajaGos/To-Do-REST-API/internal/api/shared"
	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/redact"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts a positive integer ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID if valid
//   - (0, error): A validation error wrapping domain.ErrInvalidID otherwise
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}
	return id, nil
}

// handlePathID is getPathID that writes the 400 response itself.
// The boolean is false when a response has been written.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string, log *slog.Logger) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		log.Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// decodeAndValidate reads the JSON body into req and validates it, writing a
// 400 response on failure. The boolean is false when a response has been written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		log.Debug("invalid request format", slog.String("error", redact.Error(err)))
		message := "Invalid request format"
		if errors.Is(err, domain.ErrInvalidPriority) {
			message = GetSafeErrorMessage(domain.ErrInvalidPriority)
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// parseTaskQuery reads the filter, sort and paging parameters of a task
// listing. Missing parameters take their defaults; unknown sort fields are
// ignored.
func parseTaskQuery(r *http.Request) (store.TaskQuery, error) {
	values := r.URL.Query()
	q := store.TaskQuery{
		CategoryName: strings.TrimSpace(values.Get("category")),
		SortBy:       store.ParseTaskSortField(values.Get("sort_by")),
		Descending:   strings.EqualFold(strings.TrimSpace(values.Get("sort_order")), "desc"),
		PageNumber:   store.DefaultPageNumber,
		PageSize:     store.DefaultPageSize,
	}

	if raw := values.Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return q, domain.NewValidationError("user_id", "must be a positive integer", domain.ErrInvalidID)
		}
		q.UserID = &id
	}

	if raw := values.Get("page_number"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, domain.NewValidationError("page_number", "must be a positive integer", nil)
		}
		q.PageNumber = n
	}

	if raw := values.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > store.MaxPageSize {
			return q, domain.NewValidationError("page_size",
				fmt.Sprintf("must be between 1 and %d", store.MaxPageSize), nil)
		}
		q.PageSize = n
	}

	return q, nil
}

// resourceLocation is the URL of a resource created by a POST to the
// collection at r's path.
func resourceLocation(r *http.Request, id int64) string {
	return strings.TrimSuffix(r.URL.Path, "/") + "/" + strconv.FormatInt(id, 10)
}
