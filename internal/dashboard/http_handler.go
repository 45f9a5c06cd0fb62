package dashboard

import (
	"net/http"

	"cafedeslettres/internal/httpx"
	"cafedeslettres/internal/platform/logging"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Get handles GET /v1/me/dashboard
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}

	d, err := h.service.Get(r.Context(), userID)
	if err != nil {
		logging.FromContext(r.Context()).WithError(err).Error("load dashboard")
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, d, nil)
}
