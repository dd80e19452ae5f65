package service

import (
	"sort"
	"strings"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

// DefaultRadiusKm is the nearby radius used when a query does not set one.
const DefaultRadiusKm = 1.0

// LocationDirectory answers map queries over a fixed set of locations.
// It is read-only after construction and safe for concurrent use.
type LocationDirectory struct {
	locations     []domain.Location
	center        domain.Coordinates
	defaultRadius float64
}

// NewLocationDirectory builds a directory over locations in the given order.
// A non-positive defaultRadius falls back to DefaultRadiusKm.
func NewLocationDirectory(locations []domain.Location, center domain.Coordinates, defaultRadius float64) *LocationDirectory {
	if defaultRadius <= 0 {
		defaultRadius = DefaultRadiusKm
	}
	return &LocationDirectory{
		locations:     append([]domain.Location(nil), locations...),
		center:        center,
		defaultRadius: defaultRadius,
	}
}

// NewCampusDirectory returns the directory seeded with the KNUST campus.
func NewCampusDirectory(defaultRadius float64) *LocationDirectory {
	return NewLocationDirectory(domain.CampusLocations(), domain.DefaultCampusCenter, defaultRadius)
}

// All returns every location in seed order.
func (d *LocationDirectory) All() []domain.Location {
	return append([]domain.Location(nil), d.locations...)
}

func (d *LocationDirectory) Get(id string) (domain.Location, error) {
	for _, l := range d.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Location{}, domain.ErrNotFound
}

// Categories returns the concrete categories in display order.
func (d *LocationDirectory) Categories() []domain.LocationCategory {
	return append([]domain.LocationCategory(nil), domain.LocationCategories...)
}

// Nearby returns locations within radiusKm of origin, closest first.
// Equal distances keep seed order.
func (d *LocationDirectory) Nearby(origin domain.Coordinates, radiusKm float64) []domain.Location {
	return locationsOf(d.collect(&origin, radiusKm, "", "", ports.ViewNearby))
}

// Search matches query case-insensitively against title, description and
// category. A blank query matches nothing.
func (d *LocationDirectory) Search(query string) []domain.Location {
	query = strings.TrimSpace(query)
	out := []domain.Location{}
	if query == "" {
		return out
	}
	for _, l := range d.locations {
		if matchesText(l, query) {
			out = append(out, l)
		}
	}
	return out
}

// FilterByCategory returns locations in category. CategoryAll returns all.
func (d *LocationDirectory) FilterByCategory(category domain.LocationCategory) []domain.Location {
	out := []domain.Location{}
	for _, l := range d.locations {
		if category == domain.CategoryAll || l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

// Query applies the active filters as a conjunction and orders the result
// for the requested view.
func (d *LocationDirectory) Query(q ports.LocationQuery) []ports.LocationResult {
	origin := q.Origin
	if origin == nil && q.View == ports.ViewNearby {
		c := d.center
		origin = &c
	}
	radius := q.RadiusKm
	if radius <= 0 {
		radius = d.defaultRadius
	}
	return d.collect(origin, radius, strings.TrimSpace(q.Text), q.Category, q.View)
}

func (d *LocationDirectory) collect(origin *domain.Coordinates, radius float64, text string, category domain.LocationCategory, view ports.LocationView) []ports.LocationResult {
	results := []ports.LocationResult{}
	for _, l := range d.locations {
		if text != "" && !matchesText(l, text) {
			continue
		}
		if category != "" && category != domain.CategoryAll && l.Category != category {
			continue
		}

		r := ports.LocationResult{Location: l}
		if origin != nil {
			dist := domain.DistanceKm(*origin, l.Coordinates)
			if view == ports.ViewNearby && dist > radius {
				continue
			}
			r.DistanceKm = &dist
		}
		results = append(results, r)
	}

	if origin != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	}
	return results
}

func matchesText(l domain.Location, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Description), q) ||
		strings.Contains(strings.ToLower(string(l.Category)), q)
}

func locationsOf(results []ports.LocationResult) []domain.Location {
	out := make([]domain.Location, len(results))
	for i, r := range results {
		out[i] = r.Location
	}
	return out
}
