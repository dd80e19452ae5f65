package domain

import (
	"math"
	"testing"
)

func campusPoints() []Coordinates {
	points := []Coordinates{DefaultCampusCenter}
	for _, loc := range CampusLocations() {
		points = append(points, loc.Coordinates)
	}
	return points
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	for _, p := range campusPoints() {
		if d := DistanceKm(p, p); d != 0 {
			t.Fatalf("expected 0 for %+v, got %v", p, d)
		}
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := campusPoints()
	for _, a := range points {
		for _, b := range points {
			if diff := math.Abs(DistanceKm(a, b) - DistanceKm(b, a)); diff > 1e-6 {
				t.Fatalf("distance %+v -> %+v differs from reverse by %v", a, b, diff)
			}
		}
	}
}

func TestDistanceKm_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinates
		want float64
	}{
		{"one degree of latitude", Coordinates{Lat: 0, Lng: 0}, Coordinates{Lat: 1, Lng: 0}, 111.195},
		{"antipodal", Coordinates{Lat: 0, Lng: 0}, Coordinates{Lat: 0, Lng: 180}, math.Pi * EarthRadiusKm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceKm(tt.a, tt.b); math.Abs(got-tt.want) > 0.01 {
				t.Fatalf("expected %.3f km, got %.3f", tt.want, got)
			}
		})
	}
}
