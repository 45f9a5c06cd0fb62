package review

import (
	"errors"
	"net/http"

	"cafedeslettres/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

// ListByBook handles GET /v1/books/{id}/reviews
func (h *HTTPHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := httpx.PathUUID(w, r, "id")
	if !ok {
		return
	}
	page := httpx.ParsePage(r, 20, 100)

	items, total, err := h.service.ListByBook(r.Context(), bookID, page.Size, page.Offset())
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, items, httpx.PageMeta(page, total))
}

// Create handles POST /v1/books/{id}/reviews
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	bookID, ok := httpx.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req createRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	rv, err := h.service.Create(r.Context(), userID, bookID, req.Content, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyContent):
			httpx.ValidationFailed(w, r, []httpx.ErrorDetail{{Field: "content", Message: "content is required"}})
		case errors.Is(err, ErrInvalidRating):
			httpx.ValidationFailed(w, r, []httpx.ErrorDetail{{Field: "rating", Message: "rating must be between 1 and 5"}})
		case errors.Is(err, ErrBookNotFound):
			httpx.NotFound(w, r, "Book not found")
		default:
			httpx.InternalError(w, r)
		}
		return
	}
	httpx.JSONCreated(w, r, rv)
}

// Delete handles DELETE /v1/reviews/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	id, ok := httpx.PathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w, r, "Review not found")
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONNoContent(w)
}
