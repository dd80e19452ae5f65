package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

// DefaultTokenTTL applies to every token issued by the service.
const DefaultTokenTTL = 7 * 24 * time.Hour

const (
	minPasswordLength = 6
	// bcrypt only accepts passwords up to 72 bytes.
	maxPasswordLength = 72
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	limiter  ports.LoginLimiter
	tokenTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// AuthOption customises an AuthService.
type AuthOption func(*AuthService)

// WithLoginLimiter enables failed-login throttling.
func WithLoginLimiter(l ports.LoginLimiter) AuthOption {
	return func(s *AuthService) { s.limiter = l }
}

// WithTokenTTL overrides DefaultTokenTTL. Non-positive values are ignored.
func WithTokenTTL(ttl time.Duration) AuthOption {
	return func(s *AuthService) {
		if ttl > 0 {
			s.tokenTTL = ttl
		}
	}
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger, opts ...AuthOption) *AuthService {
	s := &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: DefaultTokenTTL,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := domain.NormalizeEmail(input.Email)
	if err := validateRegistration(name, email, input.Password); err != nil {
		return nil, err
	}

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("%w: lookup user: %w", domain.ErrInternal, err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %w", domain.ErrInternal, err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleStandard,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: create user: %w", domain.ErrInternal, err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: lookup user: %w", domain.ErrInternal, err)
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("reset login attempts")
		}
	}

	return s.issue(user)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("record failed login")
	}
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	now := s.now()
	token, err := s.tokens.Issue(ports.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: issue token: %w", domain.ErrInternal, err)
	}
	return &ports.AuthResult{User: user, Token: token, ExpiresAt: now.Add(s.tokenTTL)}, nil
}

func validateRegistration(name, email, password string) error {
	switch {
	case name == "" || email == "" || password == "":
		return fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	case !emailPattern.MatchString(email):
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	case len(password) < minPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	case len(password) > maxPasswordLength:
		return fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, maxPasswordLength)
	}
	return nil
}
