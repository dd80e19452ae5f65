package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	findErr error // if set, FindByEmail and FindByID return this error
	creates int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.creates++
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

type stubContentRepo struct {
	items     map[string]*domain.Content
	createErr error // if set, Create and List return this error
	countErr  error
}

func newStubContentRepo() *stubContentRepo {
	return &stubContentRepo{items: make(map[string]*domain.Content)}
}

func (r *stubContentRepo) Create(_ context.Context, c *domain.Content) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *stubContentRepo) List(_ context.Context, kind domain.ContentKind) ([]*domain.Content, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	var out []*domain.Content
	for _, c := range r.items {
		if c.Kind == kind {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubContentRepo) FindByID(_ context.Context, kind domain.ContentKind, id string) (*domain.Content, error) {
	c, ok := r.items[id]
	if !ok || c.Kind != kind {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubContentRepo) Update(_ context.Context, c *domain.Content) error {
	existing, ok := r.items[c.ID]
	if !ok || existing.Kind != c.Kind {
		return domain.ErrNotFound
	}
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *stubContentRepo) Delete(_ context.Context, kind domain.ContentKind, id string) error {
	c, ok := r.items[id]
	if !ok || c.Kind != kind {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubContentRepo) Count(_ context.Context, kind domain.ContentKind) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	var n int64
	for _, c := range r.items {
		if c.Kind == kind {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Security stubs
// ---------------------------------------------------------------------------

// stubHasher avoids bcrypt's cost in service tests.
type stubHasher struct {
	hashErr error
}

func (h stubHasher) Hash(plain string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plain, nil
}

func (h stubHasher) Verify(plain, hash string) bool {
	return strings.TrimPrefix(hash, "hashed:") == plain && strings.HasPrefix(hash, "hashed:")
}

type stubTokens struct {
	verifyFn func(token string) (*ports.Claims, error)
	issued   []ports.Claims
	ttls     []time.Duration
}

func (s *stubTokens) Issue(c ports.Claims, ttl time.Duration) (string, error) {
	s.issued = append(s.issued, c)
	s.ttls = append(s.ttls, ttl)
	return "token-for-" + c.UserID, nil
}

func (s *stubTokens) Verify(token string) (*ports.Claims, error) {
	if s.verifyFn != nil {
		return s.verifyFn(token)
	}
	return nil, domain.ErrTokenMalformed
}

type stubLimiter struct {
	allowFn  func(email string) (bool, error)
	failures map[string]int
	resets   map[string]int
}

func newStubLimiter() *stubLimiter {
	return &stubLimiter{failures: map[string]int{}, resets: map[string]int{}}
}

func (l *stubLimiter) Allow(_ context.Context, email string) (bool, error) {
	if l.allowFn != nil {
		return l.allowFn(email)
	}
	return true, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	l.resets[email]++
	return nil
}
