package client

import "time"

// Coordinates is a point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultCampusCenter is the map origin when the device position is unknown.
var DefaultCampusCenter = Coordinates{Lat: 6.67460, Lng: -1.57160}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Message   string    `json:"message"`
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Kind selects a feed. Values match the admin route segments.
type Kind string

const (
	Posts       Kind = "posts"
	News        Kind = "news"
	Internships Kind = "internships"
)

type ContentRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Category    string   `json:"category,omitempty"`
	Deadline    string   `json:"deadline,omitempty"`
	Link        string   `json:"link,omitempty"`
}

type Content struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Author      string     `json:"author,omitempty"`
	Company     string     `json:"company,omitempty"`
	Location    string     `json:"location,omitempty"`
	Skills      []string   `json:"skills,omitempty"`
	Category    string     `json:"category,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Link        string     `json:"link,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type Stats struct {
	Posts       int64 `json:"posts"`
	Internships int64 `json:"internships"`
	News        int64 `json:"news"`
	Users       int64 `json:"users"`
}

type Location struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	OpenHours   string      `json:"open_hours"`
	Facilities  []string    `json:"facilities"`
	WalkingTime string      `json:"walking_time"`
	Rating      float64     `json:"rating"`
	DistanceKm  *float64    `json:"distance_km,omitempty"`
}

// LocationQuery mirrors the map screen filters. A nil Origin sends no
// coordinates; Nearby selects the nearby view.
type LocationQuery struct {
	Origin   *Coordinates
	RadiusKm float64
	Text     string
	Category string
	Nearby   bool
}

type LocationList struct {
	Count   int          `json:"count"`
	Origin  *Coordinates `json:"origin,omitempty"`
	Results []Location   `json:"results"`
}
