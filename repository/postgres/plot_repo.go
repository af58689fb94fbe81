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

type plotRepository struct {
	pool *pgxpool.Pool
}

// NewPlotRepository returns a Postgres-backed implementation of PlotRepository.
func NewPlotRepository(pool *pgxpool.Pool) repository.PlotRepository {
	return &plotRepository{pool: pool}
}

func (r *plotRepository) GetByID(ctx context.Context, id string) (*domain.Plot, error) {
	const query = `
	SELECT id, plot_number, area, size, price, status, location,
	       COALESCE(description, ''), COALESCE(images, '{}'), created_at, updated_at
	FROM plots
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanPlot(row)
}

func (r *plotRepository) List(ctx context.Context, filter repository.PlotFilter) ([]domain.Plot, error) {
	const query = `
	SELECT id, plot_number, area, size, price, status, location,
	       COALESCE(description, ''), COALESCE(images, '{}'), created_at, updated_at
	FROM plots
	WHERE ($1 = '' OR status = $1)
	ORDER BY plot_number
	LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, filter.Status, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plots []domain.Plot
	for rows.Next() {
		plot, err := scanPlot(rows)
		if err != nil {
			return nil, err
		}
		plots = append(plots, *plot)
	}
	return plots, rows.Err()
}

func (r *plotRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM plots`).Scan(&count)
	return count, err
}

func (r *plotRepository) Create(ctx context.Context, plot *domain.Plot) (*domain.Plot, error) {
	if plot == nil {
		return nil, domain.ErrInvalidPayload
	}
	if plot.ID == "" {
		plot.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO plots (id, plot_number, area, size, price, status, location, description, images)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		plot.ID,
		plot.PlotNumber,
		plot.Area,
		plot.Size,
		plot.Price,
		plot.Status,
		plot.Location,
		nullable(plot.Description),
		plot.Images,
	).Scan(&plot.CreatedAt, &plot.UpdatedAt); err != nil {
		return nil, err
	}

	return plot, nil
}

func (r *plotRepository) Update(ctx context.Context, plot *domain.Plot) error {
	if plot == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE plots
	SET plot_number = $2,
		area = $3,
		size = $4,
		price = $5,
		status = $6,
		location = $7,
		description = $8,
		images = $9,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		plot.ID,
		plot.PlotNumber,
		plot.Area,
		plot.Size,
		plot.Price,
		plot.Status,
		plot.Location,
		nullable(plot.Description),
		plot.Images,
	).Scan(&plot.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPlotNotFound
		}
		return err
	}

	return nil
}

func (r *plotRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM plots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlotNotFound
	}
	return nil
}

func scanPlot(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Plot, error) {
	var plot domain.Plot

	if err := row.Scan(
		&plot.ID,
		&plot.PlotNumber,
		&plot.Area,
		&plot.Size,
		&plot.Price,
		&plot.Status,
		&plot.Location,
		&plot.Description,
		&plot.Images,
		&plot.CreatedAt,
		&plot.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlotNotFound
		}
		return nil, err
	}

	return &plot, nil
}
