package usecase

import (
	"context"

	"github.com/eliteprops/backend/domain"
)

// SubmissionBuffer abstracts the offline buffer so use cases stay storage-agnostic.
type SubmissionBuffer interface {
	BufferVisit(ctx context.Context, visit *domain.SiteVisit) error
}
