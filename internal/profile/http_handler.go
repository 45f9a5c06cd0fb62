package profile

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

// GetOwnProfile handles GET /v1/me/profile
// @Summary Get own profile
// @Description Get the authenticated member's profile, creating it on first access
// @Tags profiles
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/me/profile [get]
func (h *HTTPHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}

	p, err := h.service.Get(r.Context(), userID)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, p, nil)
}

// UpdateProfile handles PATCH /v1/me/profile
// @Summary Update own profile
// @Description Partially update display name, avatar and membership type
// @Tags profiles
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateCommand true "Profile update request"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/me/profile [patch]
func (h *HTTPHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.Unauthorized(w, r)
		return
	}

	var cmd UpdateCommand
	if !httpx.DecodeAndValidate(w, r, &cmd) {
		return
	}

	p, err := h.service.Update(r.Context(), userID, cmd)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDisplayName), errors.Is(err, ErrInvalidAvatarURL), errors.Is(err, ErrInvalidMembership):
			httpx.BadRequest(w, r, err.Error())
		default:
			httpx.InternalError(w, r)
		}
		return
	}
	httpx.JSONSuccess(w, r, p, nil)
}
