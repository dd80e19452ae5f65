package handler

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unilink/campus-api/internal/api/metrics"
	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

type LocationHandler struct {
	directory ports.LocationDirectory
}

func NewLocationHandler(directory ports.LocationDirectory) *LocationHandler {
	return &LocationHandler{directory: directory}
}

// List handles GET /api/locations.
//
// @Summary      Query campus locations
// @Tags         locations
// @Produce      json
// @Param        q          query     string  false  "Case-insensitive text filter"
// @Param        category   query     string  false  "Academic, Dining, Landmark, Entrance, Healthcare or All"
// @Param        lat        query     number  false  "Device latitude"
// @Param        lng        query     number  false  "Device longitude"
// @Param        radius_km  query     number  false  "Radius for the nearby view"
// @Param        view       query     string  false  "all (default) or nearby"
// @Success      200        {object}  locationListResponse
// @Failure      400        {object}  errorResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c echo.Context) error {
	q, err := parseLocationQuery(c)
	if err != nil {
		return err
	}

	originSource := "default"
	if q.Origin != nil {
		originSource = "device"
	}
	metrics.LocationQueriesTotal.WithLabelValues(string(q.View), originSource).Inc()

	return c.JSON(http.StatusOK, toLocationList(h.directory.Query(q), q.Origin))
}

// Get handles GET /api/locations/:id.
//
// @Summary      Get a campus location
// @Tags         locations
// @Produce      json
// @Param        id   path      string  true  "Location id"
// @Success      200  {object}  locationResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) Get(c echo.Context) error {
	loc, err := h.directory.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, locationResponse{Location: loc})
}

// Categories handles GET /api/locations/categories.
//
// @Summary      List location categories
// @Tags         locations
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/locations/categories [get]
func (h *LocationHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{Categories: h.directory.Categories()})
}

func parseLocationQuery(c echo.Context) (ports.LocationQuery, error) {
	var (
		lat, lng, radius float64
		view, category   string
		q                ports.LocationQuery
	)
	err := echo.QueryParamsBinder(c).
		FailFast(true).
		String("q", &q.Text).
		String("category", &category).
		String("view", &view).
		Float64("lat", &lat).
		Float64("lng", &lng).
		Float64("radius_km", &radius).
		BindError()
	if err != nil {
		return q, fmt.Errorf("%w: lat, lng and radius_km must be numbers", domain.ErrValidation)
	}

	hasLat, hasLng := c.QueryParam("lat") != "", c.QueryParam("lng") != ""
	switch {
	case hasLat != hasLng:
		return q, fmt.Errorf("%w: lat and lng must be given together", domain.ErrValidation)
	case hasLat:
		if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return q, fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
		}
		q.Origin = &domain.Coordinates{Lat: lat, Lng: lng}
	}

	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return q, fmt.Errorf("%w: radius_km must be a non-negative number", domain.ErrValidation)
	}
	q.RadiusKm = radius

	switch v := ports.LocationView(strings.ToLower(strings.TrimSpace(view))); v {
	case "", ports.ViewAll:
		q.View = ports.ViewAll
	case ports.ViewNearby:
		q.View = ports.ViewNearby
	default:
		return q, fmt.Errorf("%w: view must be all or nearby", domain.ErrValidation)
	}

	q.Category = domain.LocationCategory(strings.TrimSpace(category))
	if !knownCategory(q.Category) {
		return q, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, q.Category)
	}
	return q, nil
}

func knownCategory(c domain.LocationCategory) bool {
	if c == "" || c == domain.CategoryAll {
		return true
	}
	for _, known := range domain.LocationCategories {
		if c == known {
			return true
		}
	}
	return false
}
