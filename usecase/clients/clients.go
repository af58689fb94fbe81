package clients

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

// UseCase derives the client roster from site visits and receipts. There is no
// clients table; the roster is recomputed from the two sources on every read.
type UseCase struct {
	visits   repository.SiteVisitRepository
	receipts repository.ReceiptRepository
	logger   *zap.Logger
}

func New(visits repository.SiteVisitRepository, receipts repository.ReceiptRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{visits: visits, receipts: receipts, logger: logger}
}

// Roster fetches both contact sources concurrently and folds them into the
// deduplicated client list. The two reads are independent snapshots; a failure
// on either side fails the whole read so the caller can degrade explicitly.
func (uc *UseCase) Roster(ctx context.Context) ([]domain.ClientSummary, error) {
	var visitContacts, receiptContacts []domain.ContactRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visitContacts, err = uc.visits.ListContacts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		receiptContacts, err = uc.receipts.ListContacts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("client roster source read failed", zap.Error(err))
		return nil, err
	}

	return domain.AggregateClients(visitContacts, receiptContacts), nil
}
