package readinglist

import (
	"errors"
	"net/http"
	"strings"

	"cafedeslettres/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type upsertRequest struct {
	Status string `json:"status" validate:"required,oneof=want_to_read reading finished"`
	Rating *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

// Upsert handles PUT /v1/me/books/{bookID}. The body replaces the entry, so
// a missing or null rating clears a previous one.
func (h *HTTPHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	bookID, ok := httpx.PathUUID(w, r, "bookID")
	if !ok {
		return
	}

	var req upsertRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.service.Upsert(r.Context(), userID, bookID, Status(req.Status), req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookNotFound):
			httpx.NotFound(w, r, "Book not found")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidRating):
			httpx.BadRequest(w, r, err.Error())
		default:
			httpx.InternalError(w, r)
		}
		return
	}
	httpx.JSONSuccess(w, r, entry, nil)
}

// List handles GET /v1/me/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	status := Status(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))))

	entries, err := h.service.List(r.Context(), userID, status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			httpx.BadRequest(w, r, "status must be one of: want_to_read reading finished")
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, entries, map[string]any{"total": len(entries)})
}

// Remove handles DELETE /v1/me/books/{bookID}
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	bookID, ok := httpx.PathUUID(w, r, "bookID")
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), userID, bookID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w, r, "Book is not on your shelf")
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONNoContent(w)
}
