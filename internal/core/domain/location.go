package domain

import "math"

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// LocationCategory groups points of interest on the campus map.
type LocationCategory string

const (
	CategoryAcademic   LocationCategory = "Academic"
	CategoryDining     LocationCategory = "Dining"
	CategoryLandmark   LocationCategory = "Landmark"
	CategoryEntrance   LocationCategory = "Entrance"
	CategoryHealthcare LocationCategory = "Healthcare"

	// CategoryAll is the filter value that matches every category.
	CategoryAll LocationCategory = "All"
)

// LocationCategories lists the concrete categories in display order.
var LocationCategories = []LocationCategory{
	CategoryAcademic,
	CategoryDining,
	CategoryLandmark,
	CategoryEntrance,
	CategoryHealthcare,
}

// Coordinates represents a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a named point of interest on campus.
type Location struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    LocationCategory `json:"category"`
	Coordinates Coordinates      `json:"coordinates"`
	OpenHours   string           `json:"open_hours"`
	Facilities  []string         `json:"facilities"`
	WalkingTime string           `json:"walking_time"`
	Rating      float64          `json:"rating"`
}

// DistanceKm returns the great-circle distance between a and b using the
// haversine formula.
func DistanceKm(a, b Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push h a hair above 1 for antipodal points.
	h = math.Min(1, h)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
