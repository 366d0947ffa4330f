package middleware

import (
	"errors"
	"net/http"

	"orbi-food/internal/auth"
	"orbi-food/internal/handler"
	"orbi-food/internal/model"

	"github.com/rs/zerolog"
)

// AdminOnly rejects requests that do not carry a valid admin bearer token.
func AdminOnly(authenticator auth.Authenticator, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := authenticator.Authorize(r.Header.Get("Authorization"))
			if err == nil {
				next.ServeHTTP(w, r)
				return
			}

			var domainErr *model.DomainError
			if !errors.As(err, &domainErr) {
				logger.Error().Err(err).Str("path", r.URL.Path).Msg("authorization failed")
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			logger.Warn().
				Str("path", r.URL.Path).
				Str("reason", domainErr.Message).
				Msg("admin request rejected")
			writeError(w, handler.StatusFor(domainErr), domainErr.Message)
		})
	}
}
