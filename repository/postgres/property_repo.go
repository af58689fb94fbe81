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

type propertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository returns a Postgres-backed implementation of PropertyRepository.
func NewPropertyRepository(pool *pgxpool.Pool) repository.PropertyRepository {
	return &propertyRepository{pool: pool}
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	const query = `
	SELECT id, name, COALESCE(description, ''), price, location, COALESCE(area, ''),
	       type, status, COALESCE(images, '{}'), COALESCE(virtual_tour_url, ''),
	       bedrooms, bathrooms, sqft, created_at, updated_at
	FROM properties
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanProperty(row)
}

func (r *propertyRepository) List(ctx context.Context, filter repository.PropertyFilter) ([]domain.Property, error) {
	const query = `
	SELECT id, name, COALESCE(description, ''), price, location, COALESCE(area, ''),
	       type, status, COALESCE(images, '{}'), COALESCE(virtual_tour_url, ''),
	       bedrooms, bathrooms, sqft, created_at, updated_at
	FROM properties
	WHERE ($1 = '' OR type = $1)
	  AND ($2 = '' OR status = $2)
	ORDER BY created_at DESC
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.Type, filter.Status, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *property)
	}
	return properties, rows.Err()
}

func (r *propertyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count)
	return count, err
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	if property == nil {
		return nil, domain.ErrInvalidPayload
	}
	if property.ID == "" {
		property.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO properties (id, name, description, price, location, area, type, status,
	                        images, virtual_tour_url, bedrooms, bathrooms, sqft)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		property.ID,
		property.Name,
		nullable(property.Description),
		property.Price,
		property.Location,
		nullable(property.Area),
		property.Type,
		property.Status,
		property.Images,
		nullable(property.VirtualTourURL),
		property.Bedrooms,
		property.Bathrooms,
		property.Sqft,
	).Scan(&property.CreatedAt, &property.UpdatedAt); err != nil {
		return nil, err
	}

	return property, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *domain.Property) error {
	if property == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE properties
	SET name = $2,
		description = $3,
		price = $4,
		location = $5,
		area = $6,
		type = $7,
		status = $8,
		images = $9,
		virtual_tour_url = $10,
		bedrooms = $11,
		bathrooms = $12,
		sqft = $13,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		property.ID,
		property.Name,
		nullable(property.Description),
		property.Price,
		property.Location,
		nullable(property.Area),
		property.Type,
		property.Status,
		property.Images,
		nullable(property.VirtualTourURL),
		property.Bedrooms,
		property.Bathrooms,
		property.Sqft,
	).Scan(&property.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPropertyNotFound
		}
		return err
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func scanProperty(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Property, error) {
	var property domain.Property

	if err := row.Scan(
		&property.ID,
		&property.Name,
		&property.Description,
		&property.Price,
		&property.Location,
		&property.Area,
		&property.Type,
		&property.Status,
		&property.Images,
		&property.VirtualTourURL,
		&property.Bedrooms,
		&property.Bathrooms,
		&property.Sqft,
		&property.CreatedAt,
		&property.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}

	return &property, nil
}
