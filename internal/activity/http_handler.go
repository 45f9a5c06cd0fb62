package activity

import (
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

// ListMine handles GET /v1/me/activities
func (h *HTTPHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.service.ListRecent(r.Context(), userID, limit)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, items, nil)
}
