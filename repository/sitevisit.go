package repository

import (
	"context"

	"github.com/eliteprops/backend/domain"
)

type VisitFilter struct {
	Status string
	Limit  int
	Offset int
}

type SiteVisitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SiteVisit, error)
	// ListWithRelations resolves the optional property/plot relation per row,
	// newest first.
	ListWithRelations(ctx context.Context, filter VisitFilter) ([]domain.VisitWithRelations, error)
	// ListContacts projects every visit into a contact record for aggregation.
	ListContacts(ctx context.Context) ([]domain.ContactRecord, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, visit *domain.SiteVisit) (*domain.SiteVisit, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
