package goal

import (
	"errors"
	"net/http"
	"strconv"

	"cafedeslettres/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type setRequest struct {
	TargetBooks int `json:"target_books" validate:"required,min=1,max=1000"`
}

func pathYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1900 || year > 9999 {
		httpx.BadRequest(w, r, "Invalid year")
		return 0, false
	}
	return year, true
}

// Get handles GET /v1/me/goals/{year}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	year, ok := pathYear(w, r)
	if !ok {
		return
	}

	g, err := h.service.Get(r.Context(), userID, year)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w, r, "No reading goal for this year")
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, g, nil)
}

// Set handles PUT /v1/me/goals/{year}
func (h *HTTPHandler) Set(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	year, ok := pathYear(w, r)
	if !ok {
		return
	}

	var req setRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	g, err := h.service.Set(r.Context(), userID, year, req.TargetBooks)
	if err != nil {
		if errors.Is(err, ErrInvalidTarget) || errors.Is(err, ErrInvalidYear) {
			httpx.BadRequest(w, r, err.Error())
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, g, nil)
}
