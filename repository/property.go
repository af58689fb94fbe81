package repository

import (
	"context"

	"github.com/eliteprops/backend/domain"
)

type PropertyFilter struct {
	Type   string
	Status string
	Limit  int
	Offset int
}

type PropertyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]domain.Property, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, property *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id string) error
}
