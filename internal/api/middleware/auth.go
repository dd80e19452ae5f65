package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

// ClaimsKey is the echo context key holding the caller's *ports.Claims.
const ClaimsKey = "claims"

// ClaimsFrom returns the claims stored by Authenticate, or nil.
func ClaimsFrom(c echo.Context) *ports.Claims {
	claims, _ := c.Get(ClaimsKey).(*ports.Claims)
	return claims
}

// Authenticate validates the bearer token and injects its claims into context.
func Authenticate(guard ports.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				recordDecision(decisionUnauthenticated)
				return domain.ErrUnauthenticated
			}

			claims, err := guard.Authenticate(token)
			if err != nil {
				recordDecision(decisionUnauthenticated)
				return err
			}

			c.Set(ClaimsKey, claims)
			c.Set("user_id", claims.UserID)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
