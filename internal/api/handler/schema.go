package handler

import (
	"time"

	"github.com/unilink/campus-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	IsAdmin   bool        `json:"is_admin"`
	CreatedAt time.Time   `json:"created_at"`
}

type authResponse struct {
	Message   string       `json:"message"`
	User      userResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// --- Content ---

// contentRequest accepts the union of post, news and internship fields.
// Category and Type are synonyms; the dashboard sends "type" for posts and
// internships and "category" for news.
type contentRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Author      string   `json:"author"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Deadline    string   `json:"deadline"`
	Link        string   `json:"link"       validate:"omitempty,url"`
}

type contentResponse struct {
	ID          string             `json:"id"`
	Kind        domain.ContentKind `json:"kind"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Author      string             `json:"author,omitempty"`
	Company     string             `json:"company,omitempty"`
	Location    string             `json:"location,omitempty"`
	Skills      []string           `json:"skills,omitempty"`
	Category    string             `json:"category,omitempty"`
	Deadline    *time.Time         `json:"deadline,omitempty"`
	Link        string             `json:"link,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	PublishedAt *time.Time         `json:"published_at,omitempty"`
}

type statsResponse struct {
	Posts       int64 `json:"posts"`
	Internships int64 `json:"internships"`
	News        int64 `json:"news"`
	Users       int64 `json:"users"`
}

// --- Locations ---

type locationResponse struct {
	domain.Location
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type locationListResponse struct {
	Count   int                 `json:"count"`
	Origin  *domain.Coordinates `json:"origin,omitempty"`
	Results []locationResponse  `json:"results"`
}

type categoriesResponse struct {
	Categories []domain.LocationCategory `json:"categories"`
}
