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

type receiptRepository struct {
	pool *pgxpool.Pool
}

// NewReceiptRepository returns a Postgres-backed implementation of ReceiptRepository.
func NewReceiptRepository(pool *pgxpool.Pool) repository.ReceiptRepository {
	return &receiptRepository{pool: pool}
}

func (r *receiptRepository) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	const query = `
	SELECT id, client_name, client_email, client_phone,
	       COALESCE(property_id::text, ''), COALESCE(plot_id::text, ''),
	       amount, payment_method, transaction_id, receipt_date::text,
	       created_at, updated_at
	FROM receipts
	WHERE id = $1
	`
	var receipt domain.Receipt
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&receipt.ID,
		&receipt.ClientName,
		&receipt.ClientEmail,
		&receipt.ClientPhone,
		&receipt.PropertyID,
		&receipt.PlotID,
		&receipt.Amount,
		&receipt.PaymentMethod,
		&receipt.TransactionID,
		&receipt.ReceiptDate,
		&receipt.CreatedAt,
		&receipt.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReceiptNotFound
		}
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) ListWithRelations(ctx context.Context, filter repository.ReceiptFilter) ([]domain.ReceiptWithRelations, error) {
	const query = `
	SELECT rc.id, rc.client_name, rc.client_email, rc.client_phone,
	       COALESCE(rc.property_id::text, ''), COALESCE(rc.plot_id::text, ''),
	       rc.amount, rc.payment_method, rc.transaction_id, rc.receipt_date::text,
	       rc.created_at, rc.updated_at,
	       p.name, pl.plot_number
	FROM receipts rc
	LEFT JOIN properties p ON p.id = rc.property_id
	LEFT JOIN plots pl ON pl.id = rc.plot_id
	ORDER BY rc.created_at DESC
	LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.ReceiptWithRelations
	for rows.Next() {
		var rec domain.ReceiptWithRelations
		var propertyName, plotNumber *string

		if err := rows.Scan(
			&rec.ID,
			&rec.ClientName,
			&rec.ClientEmail,
			&rec.ClientPhone,
			&rec.PropertyID,
			&rec.PlotID,
			&rec.Amount,
			&rec.PaymentMethod,
			&rec.TransactionID,
			&rec.ReceiptDate,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&propertyName,
			&plotNumber,
		); err != nil {
			return nil, err
		}

		if propertyName != nil {
			rec.Property = &domain.PropertySummary{ID: rec.PropertyID, Name: *propertyName}
		}
		if plotNumber != nil {
			rec.Plot = &domain.PlotSummary{ID: rec.PlotID, PlotNumber: *plotNumber}
		}
		receipts = append(receipts, rec)
	}
	return receipts, rows.Err()
}

func (r *receiptRepository) ListContacts(ctx context.Context) ([]domain.ContactRecord, error) {
	const query = `
	SELECT client_name, client_email, client_phone, created_at
	FROM receipts
	`
	return queryContacts(ctx, r.pool, query)
}

func (r *receiptRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM receipts`).Scan(&count)
	return count, err
}

func (r *receiptRepository) Create(ctx context.Context, receipt *domain.Receipt) (*domain.Receipt, error) {
	if receipt == nil {
		return nil, domain.ErrInvalidPayload
	}
	if receipt.ID == "" {
		receipt.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO receipts (id, client_name, client_email, client_phone, property_id, plot_id,
	                      amount, payment_method, transaction_id, receipt_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		receipt.ID,
		receipt.ClientName,
		receipt.ClientEmail,
		receipt.ClientPhone,
		nullable(receipt.PropertyID),
		nullable(receipt.PlotID),
		receipt.Amount,
		receipt.PaymentMethod,
		receipt.TransactionID,
		receipt.ReceiptDate,
	).Scan(&receipt.CreatedAt, &receipt.UpdatedAt); err != nil {
		return nil, err
	}

	return receipt, nil
}
