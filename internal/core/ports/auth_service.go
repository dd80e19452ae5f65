package ports

import (
	"context"
	"time"

	"github.com/unilink/campus-api/internal/core/domain"
)

// RegisterInput carries the fields of a sign-up request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned by successful register and login calls.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// LoginLimiter throttles repeated failed logins per email.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// Guard is the two-step gate in front of admin routes.
type Guard interface {
	Authenticate(token string) (*Claims, error)
	Authorize(ctx context.Context, claims *Claims) error
}
