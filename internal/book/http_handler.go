package book

import (
	"errors"
	"net/http"
	"strings"

	"cafedeslettres/internal/httpx"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /v1/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := httpx.ParsePage(r, defaultPageSize, maxPageSize)

	var categories []string
	for _, v := range query["categories"] {
		categories = append(categories, strings.Split(v, ",")...)
	}
	categories = append(categories, query["category"]...)

	params := Query{
		Search:     query.Get("search"),
		Categories: categories,
		Sort:       ParseSort(query.Get("sort")),
		Limit:      page.Size,
		Offset:     page.Offset(),
	}

	books, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, books, httpx.PageMeta(page, total))
}

// Get handles GET /v1/books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathUUID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w, r, "Book not found")
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Categories handles GET /v1/books/categories
func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.Categories(r.Context())
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, cats, nil)
}

// Recommendations handles GET /v1/books/recommendations
func (h *HTTPHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.Recommendations(r.Context(), 6)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, books, nil)
}
