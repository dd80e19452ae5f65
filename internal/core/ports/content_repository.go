package ports

import (
	"context"

	"github.com/unilink/campus-api/internal/core/domain"
)

// ContentRepository persists feed items. List returns items newest first.
// Missing items yield domain.ErrNotFound.
type ContentRepository interface {
	Create(ctx context.Context, item *domain.Content) error
	List(ctx context.Context, kind domain.ContentKind) ([]*domain.Content, error)
	FindByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.Content, error)
	Update(ctx context.Context, item *domain.Content) error
	Delete(ctx context.Context, kind domain.ContentKind, id string) error
	Count(ctx context.Context, kind domain.ContentKind) (int64, error)
}
