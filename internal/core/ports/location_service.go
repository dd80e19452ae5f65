package ports

import "github.com/unilink/campus-api/internal/core/domain"

// LocationView selects the ordering of a location query.
type LocationView string

const (
	ViewAll    LocationView = "all"
	ViewNearby LocationView = "nearby"
)

// LocationQuery combines the map screen's filters. Origin is nil when the
// device position is unknown. Text and Category are inactive when empty
// (Category is also inactive for "All"). RadiusKm only applies to ViewNearby.
type LocationQuery struct {
	Origin   *domain.Coordinates
	RadiusKm float64
	Text     string
	Category domain.LocationCategory
	View     LocationView
}

// LocationResult pairs a location with its distance from the query origin.
// DistanceKm is nil when no origin was known.
type LocationResult struct {
	Location   domain.Location
	DistanceKm *float64
}

type LocationDirectory interface {
	All() []domain.Location
	Get(id string) (domain.Location, error)
	Categories() []domain.LocationCategory
	Nearby(origin domain.Coordinates, radiusKm float64) []domain.Location
	Search(query string) []domain.Location
	FilterByCategory(category domain.LocationCategory) []domain.Location
	Query(q LocationQuery) []LocationResult
}
