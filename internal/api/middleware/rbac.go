package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/unilink/campus-api/internal/api/metrics"
	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

const (
	decisionAllowed         = "allowed"
	decisionUnauthenticated = "unauthenticated"
	decisionForbidden       = "forbidden"
	decisionError           = "error"
)

// RequireAdmin lets the request through only when the authenticated caller
// is currently an administrator. It must run after Authenticate.
func RequireAdmin(guard ports.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := guard.Authorize(c.Request().Context(), ClaimsFrom(c))
			switch {
			case err == nil:
				recordDecision(decisionAllowed)
				return next(c)
			case errors.Is(err, domain.ErrUnauthenticated):
				recordDecision(decisionUnauthenticated)
			case errors.Is(err, domain.ErrForbidden):
				recordDecision(decisionForbidden)
			default:
				recordDecision(decisionError)
			}
			return err
		}
	}
}

func recordDecision(decision string) {
	metrics.GuardDecisionsTotal.WithLabelValues(decision).Inc()
}
