package handler

import (
	"net/http"

	"orbi-food/internal/model"
	"orbi-food/internal/service"

	"github.com/rs/zerolog"
)

// PublicHandler serves the unauthenticated directory reads.
type PublicHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(service service.CatalogService, logger zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		service: service,
		logger:  logger.With().Str("handler", "public").Logger(),
	}
}

// Categories handles GET /api/public/categories.
func (h *PublicHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeCached(w, listingMaxAge, model.CategoriesResponse{Categories: categories})
}

// Shops handles GET /api/public/shops.
func (h *PublicHandler) Shops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListShops(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeCached(w, listingMaxAge, model.ShopsResponse{Shops: shops})
}

// Zones handles GET /api/public/zones. The stored document is sent as is.
func (h *PublicHandler) Zones(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetZones(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeCached(w, zonesMaxAge, doc)
}

// Menu handles GET /api/public/menus/{shopId}. The response is a bare array.
func (h *PublicHandler) Menu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenu(r.Context(), r.PathValue("shopId"))
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeCached(w, listingMaxAge, items)
}
