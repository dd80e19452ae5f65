package ports

import (
	"time"

	"github.com/unilink/campus-api/internal/core/domain"
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID    string
	Email     string
	Name      string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// PasswordHasher wraps a salted adaptive hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify never fails; a mismatch or unreadable hash yields false.
	Verify(plaintext, hash string) bool
}

// TokenService issues and verifies signed session tokens. Verify returns
// domain.ErrTokenExpired or domain.ErrTokenMalformed.
type TokenService interface {
	Issue(claims Claims, ttl time.Duration) (string, error)
	Verify(token string) (*Claims, error)
}
