package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unilink/campus-api/internal/api/middleware"
	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

// ctxClaims returns the claims injected by the Authenticate middleware.
// Absent claims mean the route was mounted without it; reject with 401.
func ctxClaims(c echo.Context) (*ports.Claims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return claims, nil
}

// bindAndValidate decodes the request body into req and runs the struct
// validator registered on the echo instance.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
