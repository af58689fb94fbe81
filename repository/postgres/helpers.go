package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eliteprops/backend/domain"
)

// nullable converts empty strings to NULL parameters so optional foreign keys
// and text columns stay NULL instead of empty.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}

// queryContacts runs a contact projection (client_name, client_email,
// client_phone, created_at) shared by the visit and receipt repositories.
func queryContacts(ctx context.Context, pool *pgxpool.Pool, query string) ([]domain.ContactRecord, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.ContactRecord
	for rows.Next() {
		var c domain.ContactRecord
		if err := rows.Scan(&c.Name, &c.Email, &c.Phone, &c.Timestamp); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
