package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unilink/campus-api/internal/core/domain"
)

// ContentRepository stores every content kind in the content_items table.
type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

const contentColumns = `id, kind, title, description, author, company, location, skills, category, deadline, link, created_at`

func (r *ContentRepository) Create(ctx context.Context, c *domain.Content) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO content_items (`+contentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, c.ID, string(c.Kind), c.Title, c.Description, c.Author, c.Company, c.Location,
		skillsParam(c.Skills), c.Category, c.Deadline, c.Link, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert %s: %w", c.Kind, err)
	}
	return nil
}

// List returns all items of kind, newest first.
func (r *ContentRepository) List(ctx context.Context, kind domain.ContentKind) ([]*domain.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+contentColumns+`
		FROM content_items
		WHERE kind = $1
		ORDER BY created_at DESC
	`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	var items []*domain.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return items, nil
}

func (r *ContentRepository) FindByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+contentColumns+`
		FROM content_items
		WHERE id = $1 AND kind = $2
	`, id, string(kind))
	c, err := scanContent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", kind, err)
	}
	return c, nil
}

func (r *ContentRepository) Update(ctx context.Context, c *domain.Content) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE content_items
		SET title = $3, description = $4, author = $5, company = $6, location = $7,
		    skills = $8, category = $9, deadline = $10, link = $11
		WHERE id = $1 AND kind = $2
	`, c.ID, string(c.Kind), c.Title, c.Description, c.Author, c.Company, c.Location,
		skillsParam(c.Skills), c.Category, c.Deadline, c.Link)
	if err != nil {
		return fmt.Errorf("update %s: %w", c.Kind, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, kind domain.ContentKind, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM content_items WHERE id = $1 AND kind = $2`, id, string(kind))
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContentRepository) Count(ctx context.Context, kind domain.ContentKind) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM content_items WHERE kind = $1`, string(kind)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}

func scanContent(row pgx.Row) (*domain.Content, error) {
	var (
		c    domain.Content
		kind string
	)
	err := row.Scan(&c.ID, &kind, &c.Title, &c.Description, &c.Author, &c.Company, &c.Location,
		&c.Skills, &c.Category, &c.Deadline, &c.Link, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.Kind = domain.ContentKind(kind)
	c.CreatedAt = c.CreatedAt.UTC()
	if c.Deadline != nil {
		d := c.Deadline.UTC()
		c.Deadline = &d
	}
	if len(c.Skills) == 0 {
		c.Skills = nil
	}
	return &c, nil
}

// skillsParam keeps the NOT NULL skills column satisfied for empty input.
func skillsParam(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
