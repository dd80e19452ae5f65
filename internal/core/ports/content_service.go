package ports

import (
	"context"
	"time"

	"github.com/unilink/campus-api/internal/core/domain"
)

// ContentInput holds the writable fields of a feed item.
type ContentInput struct {
	Title       string
	Description string
	Author      string
	Company     string
	Location    string
	Skills      []string
	Category    string
	Deadline    *time.Time
	Link        string
}

// ContentStats feeds the admin dashboard counters.
type ContentStats struct {
	Posts       int64
	Internships int64
	News        int64
	Users       int64
}

type ContentService interface {
	Create(ctx context.Context, kind domain.ContentKind, input ContentInput) (*domain.Content, error)
	List(ctx context.Context, kind domain.ContentKind) ([]*domain.Content, error)
	Get(ctx context.Context, kind domain.ContentKind, id string) (*domain.Content, error)
	Update(ctx context.Context, kind domain.ContentKind, id string, input ContentInput) (*domain.Content, error)
	Delete(ctx context.Context, kind domain.ContentKind, id string) error
	Stats(ctx context.Context) (*ContentStats, error)
}
