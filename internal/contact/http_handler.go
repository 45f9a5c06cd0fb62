package contact

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

type submitRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   string  `json:"email" validate:"required,email,max=254"`
	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,max=5000"`
}

// Submit handles POST /v1/contact
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	m := &Message{Name: req.Name, Email: req.Email, Subject: req.Subject, Body: req.Message}
	if err := h.service.Submit(r.Context(), httpx.UserIDFrom(r), m); err != nil {
		if errors.Is(err, ErrIncomplete) {
			httpx.BadRequest(w, r, "Veuillez remplir tous les champs obligatoires.")
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONCreated(w, r, m)
}
