package ports

import (
	"context"

	"github.com/unilink/campus-api/internal/core/domain"
)

// UserRepository defines user persistence. Implementations return
// domain.ErrUserNotFound for missing users and domain.ErrDuplicateEmail when
// the unique email constraint rejects an insert.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	SetRole(ctx context.Context, id string, role domain.Role) error
	Count(ctx context.Context) (int64, error)
}
