package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

type contentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository returns a Postgres-backed implementation of ContentRepository.
func NewContentRepository(pool *pgxpool.Pool) repository.ContentRepository {
	return &contentRepository{pool: pool}
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*domain.WebsiteContent, error) {
	const query = `
	SELECT id, type, COALESCE(title, ''), COALESCE(content, ''), COALESCE(image_url, ''),
	       is_active, created_at, updated_at
	FROM website_content
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanContent(row)
}

func (r *contentRepository) List(ctx context.Context, filter repository.ContentFilter) ([]domain.WebsiteContent, error) {
	const query = `
	SELECT id, type, COALESCE(title, ''), COALESCE(content, ''), COALESCE(image_url, ''),
	       is_active, created_at, updated_at
	FROM website_content
	WHERE ($1 = '' OR type = $1)
	  AND (NOT $2 OR is_active)
	ORDER BY created_at DESC
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.Type, filter.ActiveOnly, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.WebsiteContent
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *contentRepository) Create(ctx context.Context, content *domain.WebsiteContent) (*domain.WebsiteContent, error) {
	if content == nil {
		return nil, domain.ErrInvalidPayload
	}
	if content.ID == "" {
		content.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO website_content (id, type, title, content, image_url, is_active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		content.ID,
		content.Type,
		nullable(content.Title),
		nullable(content.Content),
		nullable(content.ImageURL),
		content.IsActive,
	).Scan(&content.CreatedAt, &content.UpdatedAt); err != nil {
		return nil, err
	}

	return content, nil
}

func (r *contentRepository) Update(ctx context.Context, content *domain.WebsiteContent) error {
	if content == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE website_content
	SET type = $2,
		title = $3,
		content = $4,
		image_url = $5,
		is_active = $6,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		content.ID,
		content.Type,
		nullable(content.Title),
		nullable(content.Content),
		nullable(content.ImageURL),
		content.IsActive,
	).Scan(&content.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrContentNotFound
		}
		return err
	}

	return nil
}

func (r *contentRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `
	UPDATE website_content
	SET is_active = $2, updated_at = NOW()
	WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func (r *contentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM website_content WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func scanContent(row interface {
	Scan(dest ...interface{}) error
}) (*domain.WebsiteContent, error) {
	var content domain.WebsiteContent
	if err := row.Scan(
		&content.ID,
		&content.Type,
		&content.Title,
		&content.Content,
		&content.ImageURL,
		&content.IsActive,
		&content.CreatedAt,
		&content.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}
