package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"orbi-food/internal/model"

	"github.com/rs/zerolog"
)

// Client cache lifetimes advertised on public responses.
const (
	listingMaxAge = 60
	zonesMaxAge   = 300
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to report to the client.
		return
	}
}

// writeCached writes a 200 JSON response with a public Cache-Control hint.
func writeCached(w http.ResponseWriter, maxAge int, data any) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
	writeJSON(w, http.StatusOK, data)
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Warn().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// respondError maps err onto the HTTP error taxonomy. Domain errors keep
// their message; anything else is logged and reported as a generic 500.
func respondError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: "internal server error"})
		return
	}

	writeError(w, StatusFor(domainErr), domainErr.Message, logger)
}

// StatusFor returns the HTTP status for a domain error code.
func StatusFor(err *model.DomainError) int {
	switch err.Code {
	case model.ErrCodeInvalidJSON, model.ErrCodeMissingField:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody reads a loosely typed JSON object. An empty body or a JSON null
// is treated as {}; numbers are kept as json.Number.
func decodeBody(r *http.Request) (model.Body, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body model.Body
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Body{}, nil
		}
		return nil, model.ErrInvalidBody
	}

	if body == nil {
		body = model.Body{}
	}
	return body, nil
}
