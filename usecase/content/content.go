package content

import (
	"context"

	"go.uber.org/zap"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

// UseCase manages editable website content blocks. The public site only ever
// sees active entries; the back office manages the full set.
type UseCase struct {
	contents repository.ContentRepository
	logger   *zap.Logger
}

func New(contents repository.ContentRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{contents: contents, logger: logger}
}

// ListPublic returns only active content, optionally narrowed by type.
func (uc *UseCase) ListPublic(ctx context.Context, contentType string) ([]domain.WebsiteContent, error) {
	if contentType != "" && !domain.ValidContentType(contentType) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown content type")
	}
	return uc.contents.List(ctx, repository.ContentFilter{Type: contentType, ActiveOnly: true})
}

// ListAll returns every content entry regardless of active state.
func (uc *UseCase) ListAll(ctx context.Context, filter repository.ContentFilter) ([]domain.WebsiteContent, error) {
	if filter.Type != "" && !domain.ValidContentType(filter.Type) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown content type")
	}
	return uc.contents.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.WebsiteContent, error) {
	return uc.contents.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, content *domain.WebsiteContent) (*domain.WebsiteContent, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	created, err := uc.contents.Create(ctx, content)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("content created", zap.String("content_id", created.ID), zap.String("type", created.Type))
	return created, nil
}

func (uc *UseCase) Update(ctx context.Context, content *domain.WebsiteContent) (*domain.WebsiteContent, error) {
	if content == nil || content.ID == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "content id is required")
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if _, err := uc.contents.GetByID(ctx, content.ID); err != nil {
		return nil, err
	}
	if err := uc.contents.Update(ctx, content); err != nil {
		return nil, err
	}
	return uc.contents.GetByID(ctx, content.ID)
}

// SetActive toggles a content entry's visibility on the public site.
func (uc *UseCase) SetActive(ctx context.Context, id string, active bool) (*domain.WebsiteContent, error) {
	if _, err := uc.contents.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.contents.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	uc.logger.Info("content visibility updated", zap.String("content_id", id), zap.Bool("active", active))
	return uc.contents.GetByID(ctx, id)
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.contents.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("content deleted", zap.String("content_id", id))
	return nil
}

func validateContent(content *domain.WebsiteContent) error {
	if content == nil {
		return domain.ErrInvalidPayload
	}
	if !domain.ValidContentType(content.Type) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown content type")
	}
	if content.Title == "" && content.Content == "" && content.ImageURL == "" {
		return domain.NewError(domain.ErrCodeInvalid, "content entry cannot be empty")
	}
	return nil
}
