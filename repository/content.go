package repository

import (
	"context"

	"github.com/eliteprops/backend/domain"
)

type ContentFilter struct {
	Type       string
	ActiveOnly bool
	Limit      int
	Offset     int
}

type ContentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WebsiteContent, error)
	List(ctx context.Context, filter ContentFilter) ([]domain.WebsiteContent, error)
	Create(ctx context.Context, content *domain.WebsiteContent) (*domain.WebsiteContent, error)
	Update(ctx context.Context, content *domain.WebsiteContent) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
