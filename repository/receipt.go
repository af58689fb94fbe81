package repository

import (
	"context"

	"github.com/eliteprops/backend/domain"
)

type ReceiptFilter struct {
	Limit  int
	Offset int
}

type ReceiptRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	ListWithRelations(ctx context.Context, filter ReceiptFilter) ([]domain.ReceiptWithRelations, error)
	// ListContacts projects every receipt into a contact record for aggregation.
	ListContacts(ctx context.Context) ([]domain.ContactRecord, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, receipt *domain.Receipt) (*domain.Receipt, error)
}
