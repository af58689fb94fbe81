package dashboard

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

const recentVisitLimit = 5

// Stats is the back office landing page payload.
type Stats struct {
	Properties   int                         `json:"properties"`
	Plots        int                         `json:"plots"`
	SiteVisits   int                         `json:"site_visits"`
	Receipts     int                         `json:"receipts"`
	RecentVisits []domain.VisitWithRelations `json:"recent_visits"`
}

type UseCase struct {
	properties repository.PropertyRepository
	plots      repository.PlotRepository
	visits     repository.SiteVisitRepository
	receipts   repository.ReceiptRepository
	logger     *zap.Logger
}

func New(
	properties repository.PropertyRepository,
	plots repository.PlotRepository,
	visits repository.SiteVisitRepository,
	receipts repository.ReceiptRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		properties: properties,
		plots:      plots,
		visits:     visits,
		receipts:   receipts,
		logger:     logger,
	}
}

// Overview gathers the four entity counts plus the latest visit requests in
// parallel. Reads are independent snapshots, not one transaction.
func (uc *UseCase) Overview(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Properties, err = uc.properties.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Plots, err = uc.plots.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.SiteVisits, err = uc.visits.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Receipts, err = uc.receipts.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.RecentVisits, err = uc.visits.ListWithRelations(gctx, repository.VisitFilter{Limit: recentVisitLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if stats.RecentVisits == nil {
		stats.RecentVisits = []domain.VisitWithRelations{}
	}
	return stats, nil
}
