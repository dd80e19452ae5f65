package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

// Guard verifies bearer tokens and checks the caller's current role.
type Guard struct {
	tokens ports.TokenService
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewGuard(tokens ports.TokenService, users ports.UserRepository, logger zerolog.Logger) *Guard {
	return &Guard{tokens: tokens, users: users, logger: logger}
}

// Authenticate decodes token. Expired and malformed tokens both yield
// domain.ErrUnauthenticated.
func (g *Guard) Authenticate(token string) (*ports.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := g.tokens.Verify(token)
	if err != nil {
		g.logger.Debug().Err(err).Msg("token rejected")
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	return claims, nil
}

// Authorize re-reads the caller's role from the user store. The role carried
// in claims is ignored.
func (g *Guard) Authorize(ctx context.Context, claims *ports.Claims) error {
	if claims == nil {
		return domain.ErrUnauthenticated
	}
	user, err := g.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("%w: lookup user: %w", domain.ErrInternal, err)
	}
	if !user.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
