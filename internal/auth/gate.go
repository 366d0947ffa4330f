package auth

import (
	"fmt"
	"strings"

	"orbi-food/internal/model"

	"github.com/rs/zerolog"
)

const bearerPrefix = "Bearer "

// Authenticator issues and checks admin credentials. Handlers and middleware
// depend on this interface only.
type Authenticator interface {
	// Login exchanges the admin password for a signed token.
	Login(password string) (string, error)

	// Authorize checks the raw Authorization header of an admin request.
	Authorize(authorizationHeader string) error
}

// Gate is the shared-secret Authenticator: one password, one role.
type Gate struct {
	verifier PasswordVerifier
	tokens   *TokenService
	logger   zerolog.Logger
}

// NewGate creates a gate from a password verifier and a token service.
func NewGate(verifier PasswordVerifier, tokens *TokenService, logger zerolog.Logger) *Gate {
	return &Gate{
		verifier: verifier,
		tokens:   tokens,
		logger:   logger.With().Str("component", "auth-gate").Logger(),
	}
}

// Login returns a 7-day admin token when password matches.
func (g *Gate) Login(password string) (string, error) {
	if password == "" {
		return "", model.ErrPasswordRequired
	}

	if !g.verifier.Verify(password) {
		g.logger.Warn().Msg("admin login rejected")
		return "", model.ErrWrongPassword
	}

	token, err := g.tokens.Issue(RoleAdmin)
	if err != nil {
		g.logger.Error().Err(err).Msg("failed to issue admin token")
		return "", fmt.Errorf("failed to issue admin token: %w", err)
	}

	g.logger.Info().Msg("admin token issued")
	return token, nil
}

// Authorize accepts only "Bearer <token>" headers carrying a valid, unexpired
// admin token.
func (g *Gate) Authorize(authorizationHeader string) error {
	token, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok || token == "" {
		return model.ErrMissingToken
	}

	claims, err := g.tokens.Parse(token)
	if err != nil {
		g.logger.Debug().Err(err).Msg("admin token rejected")
		return model.ErrInvalidToken
	}

	if claims.Role != RoleAdmin {
		g.logger.Warn().Str("role", claims.Role).Msg("token role is not admin")
		return model.ErrForbidden
	}

	return nil
}
