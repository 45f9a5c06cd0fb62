package event

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

type registrationResponse struct {
	EventID    string `json:"event_id"`
	Registered bool   `json:"registered"`
}

// List handles GET /v1/events
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	when := ParseWhen(r.URL.Query().Get("when"))

	events, err := h.service.List(r.Context(), when)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, events, map[string]any{"when": when, "total": len(events)})
}

// Register handles POST /v1/events/{id}/registrations
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	eventID, ok := httpx.PathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Register(r.Context(), userID, eventID); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyRegistered):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_REGISTERED", "already registered", nil)
		case errors.Is(err, ErrNotFound):
			httpx.NotFound(w, r, "Event not found")
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Unable to register for the event", nil)
		}
		return
	}
	httpx.JSONCreated(w, r, registrationResponse{EventID: eventID, Registered: true})
}

// Unregister handles DELETE /v1/events/{id}/registrations
func (h *HTTPHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	eventID, ok := httpx.PathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Unregister(r.Context(), userID, eventID); err != nil {
		if errors.Is(err, ErrNotRegistered) {
			httpx.NotFound(w, r, "Not registered for this event")
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONNoContent(w)
}
