package club

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
	Name         string  `json:"name" validate:"required,max=120"`
	Abbreviation string  `json:"abbreviation" validate:"omitempty,max=5"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
}

type membershipResponse struct {
	ClubID   string `json:"club_id"`
	IsMember bool   `json:"is_member"`
}

// List handles GET /v1/clubs
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	f := Filter{
		Search: query.Get("search"),
		Tab:    ParseTab(query.Get("tab")),
		UserID: httpx.UserIDFrom(r),
	}
	if f.Tab == TabMy && f.UserID == "" {
		httpx.Unauthorized(w, r)
		return
	}

	clubs, err := h.service.List(r.Context(), f)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, clubs, map[string]any{"total": len(clubs)})
}

// Create handles POST /v1/clubs
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}

	var req createRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.service.Create(r.Context(), userID, req.Name, req.Abbreviation, req.Description)
	if err != nil {
		if errors.Is(err, ErrInvalidClub) {
			httpx.ValidationFailed(w, r, []httpx.ErrorDetail{{Field: "name", Message: "name is required"}})
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONCreated(w, r, c)
}

// Join handles POST /v1/clubs/{id}/members
func (h *HTTPHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	clubID, ok := httpx.PathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Join(r.Context(), userID, clubID); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyMember):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_MEMBER", "Already a member of this club", nil)
		case errors.Is(err, ErrNotFound):
			httpx.NotFound(w, r, "Club not found")
		default:
			httpx.InternalError(w, r)
		}
		return
	}
	httpx.JSONCreated(w, r, membershipResponse{ClubID: clubID, IsMember: true})
}

// Leave handles DELETE /v1/clubs/{id}/members
func (h *HTTPHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}
	clubID, ok := httpx.PathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Leave(r.Context(), userID, clubID); err != nil {
		if errors.Is(err, ErrNotMember) {
			httpx.NotFound(w, r, "Not a member of this club")
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONNoContent(w)
}

// ListMine handles GET /v1/me/clubs
func (h *HTTPHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}

	clubs, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, clubs, nil)
}
