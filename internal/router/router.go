package router

import (
	"net/http"

	"orbi-food/internal/auth"
	"orbi-food/internal/handler"
	"orbi-food/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	publicHandler *handler.PublicHandler,
	adminHandler *handler.AdminHandler,
	authenticator auth.Authenticator,
	allowedOrigins []string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	})

	// Public reads
	mux.HandleFunc("GET /api/public/categories", publicHandler.Categories)
	mux.HandleFunc("GET /api/public/shops", publicHandler.Shops)
	mux.HandleFunc("GET /api/public/zones", publicHandler.Zones)
	mux.HandleFunc("GET /api/public/menus/{shopId}", publicHandler.Menu)

	// Admin
	mux.HandleFunc("POST /api/admin/login", adminHandler.Login)

	adminOnly := middleware.AdminOnly(authenticator, logger)
	admin := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, adminOnly(h))
	}

	admin("POST /api/admin/shops", adminHandler.CreateShop)
	admin("PUT /api/admin/shops/{id}", adminHandler.UpdateShop)
	admin("DELETE /api/admin/shops/{id}", adminHandler.DeleteShop)
	admin("POST /api/admin/menus/{shopId}", adminHandler.CreateMenuItem)
	admin("PUT /api/admin/menus/{shopId}/{menuId}", adminHandler.UpdateMenuItem)
	admin("DELETE /api/admin/menus/{shopId}/{menuId}", adminHandler.DeleteMenuItem)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(allowedOrigins, logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
