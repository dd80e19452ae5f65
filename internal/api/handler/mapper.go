package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

// --- Request → Service input ---

var deadlineLayouts = []string{time.RFC3339, "2006-01-02"}

func toContentInput(req contentRequest) (ports.ContentInput, error) {
	in := ports.ContentInput{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		Company:     req.Company,
		Location:    req.Location,
		Skills:      req.Skills,
		Category:    req.Category,
		Link:        req.Link,
	}
	if in.Category == "" {
		in.Category = req.Type
	}

	if d := strings.TrimSpace(req.Deadline); d != "" {
		deadline, err := parseDeadline(d)
		if err != nil {
			return ports.ContentInput{}, err
		}
		in.Deadline = &deadline
	}
	return in, nil
}

func parseDeadline(s string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: deadline must be YYYY-MM-DD or RFC 3339", domain.ErrValidation)
}

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt,
	}
}

func toAuthResponse(message string, res *ports.AuthResult) authResponse {
	return authResponse{
		Message:   message,
		User:      toUserResponse(res.User),
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	}
}

func toContentResponse(c *domain.Content) contentResponse {
	resp := contentResponse{
		ID:          c.ID,
		Kind:        c.Kind,
		Title:       c.Title,
		Description: c.Description,
		Author:      c.Author,
		Company:     c.Company,
		Location:    c.Location,
		Skills:      c.Skills,
		Category:    c.Category,
		Deadline:    c.Deadline,
		Link:        c.Link,
		CreatedAt:   c.CreatedAt,
	}
	if c.Kind == domain.KindNews {
		published := c.CreatedAt
		resp.PublishedAt = &published
	}
	return resp
}

func toContentList(items []*domain.Content) []contentResponse {
	out := make([]contentResponse, len(items))
	for i, c := range items {
		out[i] = toContentResponse(c)
	}
	return out
}

func toLocationList(results []ports.LocationResult, origin *domain.Coordinates) locationListResponse {
	out := make([]locationResponse, len(results))
	for i, r := range results {
		out[i] = locationResponse{Location: r.Location, DistanceKm: r.DistanceKm}
	}
	return locationListResponse{Count: len(out), Origin: origin, Results: out}
}

func toStatsResponse(s *ports.ContentStats) statsResponse {
	return statsResponse{
		Posts:       s.Posts,
		Internships: s.Internships,
		News:        s.News,
		Users:       s.Users,
	}
}
