package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
	"github.com/unilink/campus-api/internal/infrastructure/security"
)

func newTestAuthService(repo *stubUserRepo, opts ...AuthOption) (*AuthService, *stubTokens) {
	tokens := &stubTokens{}
	return NewAuthService(repo, stubHasher{}, tokens, zerolog.Nop(), opts...), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newTestAuthService(repo)

	res, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "  Kwame Mensah ",
		Email:    " Kwame@KNUST.edu.gh ",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.User.Email != "kwame@knust.edu.gh" {
		t.Fatalf("expected normalized email, got %q", res.User.Email)
	}
	if res.User.Name != "Kwame Mensah" {
		t.Fatalf("expected trimmed name, got %q", res.User.Name)
	}
	if res.User.Role != domain.RoleStandard {
		t.Fatalf("expected standard role, got %s", res.User.Role)
	}
	if res.User.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if res.User.ID == "" || res.Token == "" {
		t.Fatalf("expected id and token, got %+v", res)
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one insert, got %d", repo.creates)
	}
	if len(tokens.ttls) != 1 || tokens.ttls[0] != DefaultTokenTTL {
		t.Fatalf("expected one token with default ttl, got %v", tokens.ttls)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input ports.RegisterInput
	}{
		{"missing name", ports.RegisterInput{Name: "  ", Email: "a@b.co", Password: "secret1"}},
		{"missing email", ports.RegisterInput{Name: "Ama", Email: "", Password: "secret1"}},
		{"missing password", ports.RegisterInput{Name: "Ama", Email: "a@b.co", Password: ""}},
		{"bad email", ports.RegisterInput{Name: "Ama", Email: "not-an-email", Password: "secret1"}},
		{"email without tld", ports.RegisterInput{Name: "Ama", Email: "ama@knust", Password: "secret1"}},
		{"short password", ports.RegisterInput{Name: "Ama", Email: "a@b.co", Password: "12345"}},
		{"password over 72 bytes", ports.RegisterInput{Name: "Ama", Email: "a@b.co", Password: strings.Repeat("p", 73)}},
		{"multibyte password over 72 bytes", ports.RegisterInput{Name: "Ama", Email: "a@b.co", Password: strings.Repeat("é", 37)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubUserRepo()
			svc, _ := newTestAuthService(repo)
			if _, err := svc.Register(context.Background(), tc.input); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if repo.creates != 0 {
				t.Fatalf("expected no insert")
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	first, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Ama", Email: "ama@knust.edu.gh", Password: "secret1"})
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterInput{Name: "Impostor", Email: "AMA@knust.edu.gh ", Password: "other-pass"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	stored, err := repo.FindByID(context.Background(), first.User.ID)
	if err != nil {
		t.Fatalf("first user missing: %v", err)
	}
	if stored.Name != "Ama" || stored.PasswordHash != "hashed:secret1" {
		t.Fatalf("first registration was modified: %+v", stored)
	}
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection refused")
	svc, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Ama", Email: "ama@knust.edu.gh", Password: "secret1"})
	if !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubHasher{hashErr: errors.New("boom")}, &stubTokens{}, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Ama", Email: "ama@knust.edu.gh", Password: "secret1"})
	if !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestAuthService_RegisterThenLogin_RoleClaim(t *testing.T) {
	repo := newStubUserRepo()
	tokens := security.NewJWTService("test-secret", "unilink")
	svc := NewAuthService(repo, security.NewBcryptHasher(security.MinBcryptCost), tokens, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Efua", Email: "efua@knust.edu.gh", Password: "passw0rd"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "Efua@KNUST.edu.gh", "passw0rd")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := tokens.Verify(res.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != res.User.Role || claims.Role != domain.RoleStandard {
		t.Fatalf("expected role %s in token, got %s", res.User.Role, claims.Role)
	}
	if claims.UserID != res.User.ID {
		t.Fatalf("expected sub %s, got %s", res.User.ID, claims.UserID)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != DefaultTokenTTL {
		t.Fatalf("expected ttl %v, got %v", DefaultTokenTTL, got)
	}
}

func TestAuthService_Register_LongestPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, security.NewBcryptHasher(security.MinBcryptCost), security.NewJWTService("test-secret", "unilink"), zerolog.Nop())
	password := strings.Repeat("p", 72)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Kofi", Email: "kofi@knust.edu.gh", Password: password}); err != nil {
		t.Fatalf("expected a 72 byte password to register, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "kofi@knust.edu.gh", password); err != nil {
		t.Fatalf("expected login with a 72 byte password, got %v", err)
	}
}

func TestAuthService_Login_IdenticalFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Yaw", Email: "yaw@knust.edu.gh", Password: "goodpass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "yaw@knust.edu.gh", "badpass")
	_, unknown := svc.Login(context.Background(), "ghost@knust.edu.gh", "goodpass")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("failures must be indistinguishable: %q vs %q", wrongPass, unknown)
	}
}

func TestAuthService_Login_LimiterBlocks(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter()
	limiter.allowFn = func(string) (bool, error) { return false, nil }
	svc, _ := newTestAuthService(repo, WithLoginLimiter(limiter))

	if _, err := svc.Login(context.Background(), "yaw@knust.edu.gh", "goodpass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_LimiterBookkeeping(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter()
	svc, _ := newTestAuthService(repo, WithLoginLimiter(limiter))

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Yaw", Email: "yaw@knust.edu.gh", Password: "goodpass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _ = svc.Login(context.Background(), "yaw@knust.edu.gh", "badpass")
	_, _ = svc.Login(context.Background(), "YAW@knust.edu.gh", "badpass")
	if limiter.failures["yaw@knust.edu.gh"] != 2 {
		t.Fatalf("expected 2 recorded failures, got %d", limiter.failures["yaw@knust.edu.gh"])
	}

	if _, err := svc.Login(context.Background(), "yaw@knust.edu.gh", "goodpass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if limiter.resets["yaw@knust.edu.gh"] != 1 {
		t.Fatalf("expected counter reset after success")
	}
}

func TestAuthService_Login_LimiterOutageIgnored(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter()
	limiter.allowFn = func(string) (bool, error) { return false, errors.New("redis down") }
	svc, _ := newTestAuthService(repo, WithLoginLimiter(limiter))

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Yaw", Email: "yaw@knust.edu.gh", Password: "goodpass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "yaw@knust.edu.gh", "goodpass"); err != nil {
		t.Fatalf("expected login to proceed when limiter fails, got %v", err)
	}
}

func TestAuthService_WithTokenTTL(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newTestAuthService(repo, WithTokenTTL(24*time.Hour), WithTokenTTL(0))

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Yaw", Email: "yaw@knust.edu.gh", Password: "goodpass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if tokens.ttls[0] != 24*time.Hour {
		t.Fatalf("expected 24h ttl, got %v", tokens.ttls[0])
	}
}
