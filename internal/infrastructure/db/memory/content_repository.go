package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/unilink/campus-api/internal/core/domain"
)

// ContentRepository is a process-local content store. Items are kept in
// insertion order so that equal timestamps list the later insert first.
type ContentRepository struct {
	mu    sync.RWMutex
	items []*domain.Content
}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{}
}

func (r *ContentRepository) Create(_ context.Context, c *domain.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, cloneContent(c))
	return nil
}

func (r *ContentRepository) List(_ context.Context, kind domain.ContentKind) ([]*domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Content{}
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].Kind == kind {
			out = append(out, cloneContent(r.items[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ContentRepository) FindByID(_ context.Context, kind domain.ContentKind, id string) (*domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(kind, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	return cloneContent(r.items[i]), nil
}

func (r *ContentRepository) Update(_ context.Context, c *domain.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(c.Kind, c.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items[i] = cloneContent(c)
	return nil
}

func (r *ContentRepository) Delete(_ context.Context, kind domain.ContentKind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(kind, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *ContentRepository) Count(_ context.Context, kind domain.ContentKind) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, c := range r.items {
		if c.Kind == kind {
			n++
		}
	}
	return n, nil
}

func (r *ContentRepository) indexOf(kind domain.ContentKind, id string) int {
	for i, c := range r.items {
		if c.ID == id && c.Kind == kind {
			return i
		}
	}
	return -1
}

func cloneContent(c *domain.Content) *domain.Content {
	clone := *c
	clone.Skills = append([]string(nil), c.Skills...)
	if c.Deadline != nil {
		d := *c.Deadline
		clone.Deadline = &d
	}
	return &clone
}
