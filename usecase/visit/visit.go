package visit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
	"github.com/eliteprops/backend/usecase"
)

// UseCase handles site visit scheduling from the public form and status
// management from the back office.
type UseCase struct {
	visits repository.SiteVisitRepository
	buffer usecase.SubmissionBuffer
	logger *zap.Logger
}

func New(visits repository.SiteVisitRepository, buffer usecase.SubmissionBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{visits: visits, buffer: buffer, logger: logger}
}

// Schedule validates and stores a public visit request. Every new request
// starts out pending. When the database is unreachable the request is parked
// in the local buffer so the public form never loses a submission.
func (uc *UseCase) Schedule(ctx context.Context, visit *domain.SiteVisit) (*domain.SiteVisit, error) {
	if err := validateVisit(visit); err != nil {
		return nil, err
	}
	visit.Status = domain.VisitStatusPending

	created, err := uc.visits.Create(ctx, visit)
	if err == nil {
		uc.logger.Info("site visit scheduled",
			zap.String("visit_id", created.ID),
			zap.String("client_email", created.ClientEmail))
		return created, nil
	}
	if domain.IsDomainError(err, domain.ErrCodeInvalid) || uc.buffer == nil {
		return nil, err
	}

	uc.logger.Warn("visit create failed, buffering submission", zap.Error(err))
	visit.CreatedAt = time.Now()
	if bufErr := uc.buffer.BufferVisit(ctx, visit); bufErr != nil {
		uc.logger.Error("failed to buffer visit submission", zap.Error(bufErr))
		return nil, err
	}
	return visit, nil
}

func (uc *UseCase) List(ctx context.Context, filter repository.VisitFilter) ([]domain.VisitWithRelations, error) {
	if filter.Status != "" && !domain.ValidVisitStatus(filter.Status) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown visit status")
	}
	return uc.visits.ListWithRelations(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.SiteVisit, error) {
	return uc.visits.GetByID(ctx, id)
}

// UpdateStatus transitions a visit to a new status. Any persisted status is a
// legal target; there is no transition graph to enforce.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) (*domain.SiteVisit, error) {
	if !domain.ValidVisitStatus(status) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown visit status")
	}
	if _, err := uc.visits.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.visits.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	uc.logger.Info("visit status updated", zap.String("visit_id", id), zap.String("status", status))
	return uc.visits.GetByID(ctx, id)
}

func validateVisit(visit *domain.SiteVisit) error {
	if visit == nil {
		return domain.ErrInvalidPayload
	}
	if visit.ClientName == "" {
		return domain.NewError(domain.ErrCodeInvalid, "client name is required")
	}
	if visit.ClientEmail == "" {
		return domain.NewError(domain.ErrCodeInvalid, "client email is required")
	}
	if visit.ClientPhone == "" {
		return domain.NewError(domain.ErrCodeInvalid, "client phone is required")
	}
	if visit.PreferredDate == "" {
		return domain.NewError(domain.ErrCodeInvalid, "preferred date is required")
	}
	if _, err := time.Parse("2006-01-02", visit.PreferredDate); err != nil {
		return domain.NewError(domain.ErrCodeInvalid, "preferred date must be formatted YYYY-MM-DD")
	}
	if visit.PreferredTime == "" {
		return domain.NewError(domain.ErrCodeInvalid, "preferred time is required")
	}
	return nil
}
