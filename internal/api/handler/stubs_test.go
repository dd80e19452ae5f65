package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/unilink/campus-api/internal/api/middleware"
	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

type stubContentService struct {
	createFn func(ctx context.Context, kind domain.ContentKind, input ports.ContentInput) (*domain.Content, error)
	listFn   func(ctx context.Context, kind domain.ContentKind) ([]*domain.Content, error)
	getFn    func(ctx context.Context, kind domain.ContentKind, id string) (*domain.Content, error)
	updateFn func(ctx context.Context, kind domain.ContentKind, id string, input ports.ContentInput) (*domain.Content, error)
	deleteFn func(ctx context.Context, kind domain.ContentKind, id string) error
	statsFn  func(ctx context.Context) (*ports.ContentStats, error)
}

func (s *stubContentService) Create(ctx context.Context, kind domain.ContentKind, input ports.ContentInput) (*domain.Content, error) {
	return s.createFn(ctx, kind, input)
}

func (s *stubContentService) List(ctx context.Context, kind domain.ContentKind) ([]*domain.Content, error) {
	return s.listFn(ctx, kind)
}

func (s *stubContentService) Get(ctx context.Context, kind domain.ContentKind, id string) (*domain.Content, error) {
	return s.getFn(ctx, kind, id)
}

func (s *stubContentService) Update(ctx context.Context, kind domain.ContentKind, id string, input ports.ContentInput) (*domain.Content, error) {
	return s.updateFn(ctx, kind, id, input)
}

func (s *stubContentService) Delete(ctx context.Context, kind domain.ContentKind, id string) error {
	return s.deleteFn(ctx, kind, id)
}

func (s *stubContentService) Stats(ctx context.Context) (*ports.ContentStats, error) {
	return s.statsFn(ctx)
}

// newJSONContext builds a context with the package validator installed.
func newJSONContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withClaims(c echo.Context, claims *ports.Claims) echo.Context {
	c.Set(middleware.ClaimsKey, claims)
	return c
}
