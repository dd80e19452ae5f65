package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

type ContentService struct {
	repo   ports.ContentRepository
	users  ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewContentService(repo ports.ContentRepository, users ports.UserRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{
		repo:   repo,
		users:  users,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new item of kind with a generated id and timestamp.
func (s *ContentService) Create(ctx context.Context, kind domain.ContentKind, input ports.ContentInput) (*domain.Content, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown content kind %q", domain.ErrValidation, kind)
	}
	item := &domain.Content{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: s.now(),
	}
	if err := applyInput(item, input); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to create content")
		return nil, fmt.Errorf("%w: create %s: %w", domain.ErrInternal, kind, err)
	}

	s.logger.Info().Str("kind", string(kind)).Str("id", item.ID).Msg("content created")
	return item, nil
}

// List returns every item of kind, newest first.
func (s *ContentService) List(ctx context.Context, kind domain.ContentKind) ([]*domain.Content, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown content kind %q", domain.ErrValidation, kind)
	}
	items, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", domain.ErrInternal, kind, err)
	}
	if items == nil {
		items = []*domain.Content{}
	}
	return items, nil
}

func (s *ContentService) Get(ctx context.Context, kind domain.ContentKind, id string) (*domain.Content, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	item, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, translateRepoErr(err, "get", kind)
	}
	return item, nil
}

// Update replaces the writable fields of an existing item. The id, kind and
// creation time are preserved.
func (s *ContentService) Update(ctx context.Context, kind domain.ContentKind, id string, input ports.ContentInput) (*domain.Content, error) {
	item, err := s.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	updated := &domain.Content{
		ID:        item.ID,
		Kind:      item.Kind,
		CreatedAt: item.CreatedAt,
	}
	if err := applyInput(updated, input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, translateRepoErr(err, "update", kind)
	}

	s.logger.Info().Str("kind", string(kind)).Str("id", id).Msg("content updated")
	return updated, nil
}

func (s *ContentService) Delete(ctx context.Context, kind domain.ContentKind, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		return translateRepoErr(err, "delete", kind)
	}
	s.logger.Info().Str("kind", string(kind)).Str("id", id).Msg("content deleted")
	return nil
}

// Stats counts every content kind plus registered users.
func (s *ContentService) Stats(ctx context.Context) (*ports.ContentStats, error) {
	counts := make(map[domain.ContentKind]int64, len(domain.ContentKinds))
	for _, kind := range domain.ContentKinds {
		n, err := s.repo.Count(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("%w: count %s: %w", domain.ErrInternal, kind, err)
		}
		counts[kind] = n
	}

	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count users: %w", domain.ErrInternal, err)
	}

	return &ports.ContentStats{
		Posts:       counts[domain.KindPost],
		Internships: counts[domain.KindInternship],
		News:        counts[domain.KindNews],
		Users:       users,
	}, nil
}

func applyInput(item *domain.Content, input ports.ContentInput) error {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return fmt.Errorf("%w: title and description are required", domain.ErrValidation)
	}

	item.Title = title
	item.Description = description
	item.Category = strings.TrimSpace(input.Category)

	switch item.Kind {
	case domain.KindPost:
		item.Author = strings.TrimSpace(input.Author)
	case domain.KindInternship:
		item.Company = strings.TrimSpace(input.Company)
		item.Location = strings.TrimSpace(input.Location)
		item.Skills = cleanSkills(input.Skills)
		item.Link = strings.TrimSpace(input.Link)
		if input.Deadline != nil {
			d := input.Deadline.UTC()
			item.Deadline = &d
		}
	}
	return nil
}

func cleanSkills(skills []string) []string {
	var out []string
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func translateRepoErr(err error, op string, kind domain.ContentKind) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %s %s: %w", domain.ErrInternal, op, kind, err)
}
