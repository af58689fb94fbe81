package repository

import (
	"context"

	"github.com/eliteprops/backend/domain"
)

type PlotFilter struct {
	Status string
	Limit  int
	Offset int
}

type PlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Plot, error)
	List(ctx context.Context, filter PlotFilter) ([]domain.Plot, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, plot *domain.Plot) (*domain.Plot, error)
	Update(ctx context.Context, plot *domain.Plot) error
	Delete(ctx context.Context, id string) error
}
