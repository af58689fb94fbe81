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

type siteVisitRepository struct {
	pool *pgxpool.Pool
}

// NewSiteVisitRepository returns a Postgres-backed implementation of SiteVisitRepository.
func NewSiteVisitRepository(pool *pgxpool.Pool) repository.SiteVisitRepository {
	return &siteVisitRepository{pool: pool}
}

func (r *siteVisitRepository) GetByID(ctx context.Context, id string) (*domain.SiteVisit, error) {
	const query = `
	SELECT id, COALESCE(plot_id::text, ''), COALESCE(property_id::text, ''),
	       client_name, client_email, client_phone,
	       preferred_date::text, preferred_time, COALESCE(message, ''), status,
	       created_at, updated_at
	FROM site_visits
	WHERE id = $1
	`
	var visit domain.SiteVisit
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&visit.ID,
		&visit.PlotID,
		&visit.PropertyID,
		&visit.ClientName,
		&visit.ClientEmail,
		&visit.ClientPhone,
		&visit.PreferredDate,
		&visit.PreferredTime,
		&visit.Message,
		&visit.Status,
		&visit.CreatedAt,
		&visit.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVisitNotFound
		}
		return nil, err
	}
	return &visit, nil
}

func (r *siteVisitRepository) ListWithRelations(ctx context.Context, filter repository.VisitFilter) ([]domain.VisitWithRelations, error) {
	const query = `
	SELECT v.id, COALESCE(v.plot_id::text, ''), COALESCE(v.property_id::text, ''),
	       v.client_name, v.client_email, v.client_phone,
	       v.preferred_date::text, v.preferred_time, COALESCE(v.message, ''), v.status,
	       v.created_at, v.updated_at,
	       p.name, pl.plot_number
	FROM site_visits v
	LEFT JOIN properties p ON p.id = v.property_id
	LEFT JOIN plots pl ON pl.id = v.plot_id
	WHERE ($1 = '' OR v.status = $1)
	ORDER BY v.created_at DESC
	LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, filter.Status, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []domain.VisitWithRelations
	for rows.Next() {
		var v domain.VisitWithRelations
		var propertyName, plotNumber *string

		if err := rows.Scan(
			&v.ID,
			&v.PlotID,
			&v.PropertyID,
			&v.ClientName,
			&v.ClientEmail,
			&v.ClientPhone,
			&v.PreferredDate,
			&v.PreferredTime,
			&v.Message,
			&v.Status,
			&v.CreatedAt,
			&v.UpdatedAt,
			&propertyName,
			&plotNumber,
		); err != nil {
			return nil, err
		}

		if propertyName != nil {
			v.Property = &domain.PropertySummary{ID: v.PropertyID, Name: *propertyName}
		}
		if plotNumber != nil {
			v.Plot = &domain.PlotSummary{ID: v.PlotID, PlotNumber: *plotNumber}
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (r *siteVisitRepository) ListContacts(ctx context.Context) ([]domain.ContactRecord, error) {
	const query = `
	SELECT client_name, client_email, client_phone, created_at
	FROM site_visits
	`
	return queryContacts(ctx, r.pool, query)
}

func (r *siteVisitRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM site_visits`).Scan(&count)
	return count, err
}

func (r *siteVisitRepository) Create(ctx context.Context, visit *domain.SiteVisit) (*domain.SiteVisit, error) {
	if visit == nil {
		return nil, domain.ErrInvalidPayload
	}
	if visit.ID == "" {
		visit.ID = uuid.NewString()
	}
	if visit.Status == "" {
		visit.Status = domain.VisitStatusPending
	}

	const query = `
	INSERT INTO site_visits (id, plot_id, property_id, client_name, client_email, client_phone,
	                         preferred_date, preferred_time, message, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		visit.ID,
		nullable(visit.PlotID),
		nullable(visit.PropertyID),
		visit.ClientName,
		visit.ClientEmail,
		visit.ClientPhone,
		visit.PreferredDate,
		visit.PreferredTime,
		nullable(visit.Message),
		visit.Status,
	).Scan(&visit.CreatedAt, &visit.UpdatedAt); err != nil {
		return nil, err
	}

	return visit, nil
}

func (r *siteVisitRepository) UpdateStatus(ctx context.Context, id, status string) error {
	const query = `
	UPDATE site_visits
	SET status = $2, updated_at = NOW()
	WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVisitNotFound
	}
	return nil
}
