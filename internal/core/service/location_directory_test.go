package service

import (
	"errors"
	"math"
	"testing"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

func ids(locs []domain.Location) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.ID
	}
	return out
}

func sameIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func mustLocation(t *testing.T, d *LocationDirectory, id string) domain.Location {
	t.Helper()
	l, err := d.Get(id)
	if err != nil {
		t.Fatalf("Get(%q): %v", id, err)
	}
	return l
}

func TestLocationDirectory_NearbyMainLibrary(t *testing.T) {
	d := NewCampusDirectory(0)
	library := mustLocation(t, d, "main-library")

	got := ids(d.Nearby(library.Coordinates, 1))
	want := []string{
		"main-library",
		"great-hall",
		"senate-building",
		"college-of-engineering",
		"republic-hall-dining",
		"knust-hospital",
	}
	if !sameIDs(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLocationDirectory_NearbyRadiusInclusive(t *testing.T) {
	d := NewCampusDirectory(0)
	library := mustLocation(t, d, "main-library")
	hall := mustLocation(t, d, "great-hall")

	exact := domain.DistanceKm(library.Coordinates, hall.Coordinates)
	got := ids(d.Nearby(library.Coordinates, exact))
	if !sameIDs(got, []string{"main-library", "great-hall"}) {
		t.Fatalf("expected boundary point to be included, got %v", got)
	}

	if got := d.Nearby(library.Coordinates, 0); len(got) != 1 || got[0].ID != "main-library" {
		t.Fatalf("expected only the origin at radius 0, got %v", ids(got))
	}
}

func TestLocationDirectory_NearbyStableTies(t *testing.T) {
	p := domain.Coordinates{Lat: 6.6700, Lng: -1.5600}
	d := NewLocationDirectory([]domain.Location{
		{ID: "b", Coordinates: p},
		{ID: "far", Coordinates: domain.Coordinates{Lat: 6.6800, Lng: -1.5600}},
		{ID: "a", Coordinates: p},
	}, p, 5)

	got := ids(d.Nearby(p, 5))
	if !sameIDs(got, []string{"b", "a", "far"}) {
		t.Fatalf("expected ties in input order, got %v", got)
	}
}

func TestLocationDirectory_Search(t *testing.T) {
	d := NewCampusDirectory(0)

	if got := ids(d.Search("library")); !sameIDs(got, []string{"main-library"}) {
		t.Fatalf("expected only main-library, got %v", got)
	}
	if got := ids(d.Search("LIBRARY")); !sameIDs(got, []string{"main-library"}) {
		t.Fatalf("expected case-insensitive match, got %v", got)
	}
	if got := d.Search(""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty result for empty query, got %v", got)
	}
	if got := d.Search("   "); len(got) != 0 {
		t.Fatalf("expected empty result for blank query, got %v", ids(got))
	}
	if got := ids(d.Search("healthcare")); !sameIDs(got, []string{"knust-hospital"}) {
		t.Fatalf("expected category match, got %v", got)
	}
	if got := ids(d.Search("hostels")); !sameIDs(got, []string{"ayeduase-gate"}) {
		t.Fatalf("expected description match, got %v", got)
	}
}

func TestLocationDirectory_FilterByCategory(t *testing.T) {
	d := NewCampusDirectory(0)

	if got := ids(d.FilterByCategory(domain.CategoryEntrance)); !sameIDs(got, []string{"ayeduase-gate", "main-entrance"}) {
		t.Fatalf("unexpected entrances: %v", got)
	}
	if got := d.FilterByCategory(domain.CategoryAll); len(got) != len(d.All()) {
		t.Fatalf("expected All to pass everything, got %d", len(got))
	}
	if got := d.FilterByCategory("Parking"); len(got) != 0 {
		t.Fatalf("expected no match, got %v", ids(got))
	}
}

func TestLocationDirectory_QueryConjunction(t *testing.T) {
	d := NewCampusDirectory(0)
	library := mustLocation(t, d, "main-library")

	res := d.Query(ports.LocationQuery{
		Origin:   &library.Coordinates,
		RadiusKm: 1,
		Text:     "hall",
		Category: domain.CategoryLandmark,
		View:     ports.ViewNearby,
	})
	if len(res) != 1 || res[0].Location.ID != "great-hall" {
		t.Fatalf("expected only great-hall, got %+v", res)
	}
	if res[0].DistanceKm == nil || math.Abs(*res[0].DistanceKm-0.0968) > 0.001 {
		t.Fatalf("unexpected distance: %v", res[0].DistanceKm)
	}
}

func TestLocationDirectory_QueryAllView(t *testing.T) {
	d := NewCampusDirectory(0)

	res := d.Query(ports.LocationQuery{View: ports.ViewAll})
	if len(res) != len(d.All()) || res[0].Location.ID != "main-library" || res[len(res)-1].Location.ID != "main-entrance" {
		t.Fatalf("expected seed order without origin, got %d results", len(res))
	}
	if res[0].DistanceKm != nil {
		t.Fatalf("expected no distance without origin")
	}

	gate := mustLocation(t, d, "main-entrance")
	res = d.Query(ports.LocationQuery{Origin: &gate.Coordinates, View: ports.ViewAll})
	if len(res) != len(d.All()) {
		t.Fatalf("radius must not apply to the all view, got %d", len(res))
	}
	if res[0].Location.ID != "main-entrance" {
		t.Fatalf("expected distance order with origin, got %s first", res[0].Location.ID)
	}
	for i := 1; i < len(res); i++ {
		if *res[i].DistanceKm < *res[i-1].DistanceKm {
			t.Fatalf("results not sorted by distance at %d", i)
		}
	}
}

func TestLocationDirectory_QueryNearbyDefaults(t *testing.T) {
	d := NewCampusDirectory(0)

	res := d.Query(ports.LocationQuery{View: ports.ViewNearby})
	if len(res) == 0 {
		t.Fatalf("expected results around the campus centre")
	}
	for _, r := range res {
		if r.DistanceKm == nil || *r.DistanceKm > DefaultRadiusKm {
			t.Fatalf("expected every result within the default radius, got %+v", r)
		}
	}

	wide := d.Query(ports.LocationQuery{View: ports.ViewNearby, RadiusKm: 10})
	if len(wide) != len(d.All()) {
		t.Fatalf("expected everything within 10km, got %d", len(wide))
	}
}

func TestLocationDirectory_Get(t *testing.T) {
	d := NewCampusDirectory(0)
	if _, err := d.Get("nowhere"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLocationDirectory_AllIsCopy(t *testing.T) {
	d := NewCampusDirectory(0)
	all := d.All()
	all[0].Title = "changed"
	if d.All()[0].Title == "changed" {
		t.Fatalf("All must not expose internal state")
	}
}
