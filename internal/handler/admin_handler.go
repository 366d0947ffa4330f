package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"orbi-food/internal/auth"
	"orbi-food/internal/model"
	"orbi-food/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler serves login and the shop/menu mutations. Every mutation
// answers {ok:true} once its statement has run, whether or not a row matched.
type AdminHandler struct {
	service service.AdminService
	auth    auth.Authenticator
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, authenticator auth.Authenticator, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		auth:    authenticator,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, model.ErrInvalidBody, h.logger)
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{Token: token})
}

// CreateShop handles POST /api/admin/shops.
func (h *AdminHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	h.respond(w, h.service.CreateShop(r.Context(), body))
}

// UpdateShop handles PUT /api/admin/shops/{id}.
func (h *AdminHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	h.respond(w, h.service.UpdateShop(r.Context(), r.PathValue("id"), body))
}

// DeleteShop handles DELETE /api/admin/shops/{id}.
func (h *AdminHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.service.DeleteShop(r.Context(), r.PathValue("id")))
}

// CreateMenuItem handles POST /api/admin/menus/{shopId}.
func (h *AdminHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	h.respond(w, h.service.CreateMenuItem(r.Context(), r.PathValue("shopId"), body))
}

// UpdateMenuItem handles PUT /api/admin/menus/{shopId}/{menuId}.
func (h *AdminHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	h.respond(w, h.service.UpdateMenuItem(r.Context(), r.PathValue("shopId"), r.PathValue("menuId"), body))
}

// DeleteMenuItem handles DELETE /api/admin/menus/{shopId}/{menuId}.
func (h *AdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.service.DeleteMenuItem(r.Context(), r.PathValue("shopId"), r.PathValue("menuId")))
}

func (h *AdminHandler) respond(w http.ResponseWriter, err error) {
	if err != nil {
		respondError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, model.OKResponse{OK: true})
}
