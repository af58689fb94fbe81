package receipt

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/internal/render"
	"github.com/eliteprops/backend/repository"
)

// UseCase manages payment receipts and their PDF exports. Receipts are
// write-once records; the only mutation path is creation.
type UseCase struct {
	receipts repository.ReceiptRepository
	company  domain.CompanyInfo
	logger   *zap.Logger

	// export is swappable in tests.
	export func(render.Document) ([]byte, error)
	// exporting guards against overlapping PDF exports of the same receipt.
	exporting sync.Map
}

func New(receipts repository.ReceiptRepository, company domain.CompanyInfo, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		receipts: receipts,
		company:  company,
		logger:   logger,
		export:   render.ExportPDF,
	}
}

func (uc *UseCase) Create(ctx context.Context, receipt *domain.Receipt) (*domain.Receipt, error) {
	if err := validateReceipt(receipt); err != nil {
		return nil, err
	}
	if receipt.ReceiptDate == "" {
		receipt.ReceiptDate = time.Now().Format("2006-01-02")
	}
	created, err := uc.receipts.Create(ctx, receipt)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("receipt created",
		zap.String("receipt_id", created.ID),
		zap.String("transaction_id", created.TransactionID),
		zap.String("amount", created.Amount.String()))
	return created, nil
}

func (uc *UseCase) List(ctx context.Context, filter repository.ReceiptFilter) ([]domain.ReceiptWithRelations, error) {
	return uc.receipts.ListWithRelations(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Receipt, error) {
	return uc.receipts.GetByID(ctx, id)
}

// Document builds the renderable receipt layout without exporting it.
func (uc *UseCase) Document(ctx context.Context, id string) (*render.Document, error) {
	receipt, err := uc.receipts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := render.BuildDocument(*receipt, uc.company)
	return &doc, nil
}

// ExportPDF renders the receipt into a single-page PDF. At most one export per
// receipt runs at a time; a second caller gets ErrExportInProgress instead of
// queueing behind the first.
func (uc *UseCase) ExportPDF(ctx context.Context, id string) (string, []byte, error) {
	if _, busy := uc.exporting.LoadOrStore(id, struct{}{}); busy {
		return "", nil, domain.ErrExportInProgress
	}
	defer uc.exporting.Delete(id)

	receipt, err := uc.receipts.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	doc := render.BuildDocument(*receipt, uc.company)
	data, err := uc.export(doc)
	if err != nil {
		uc.logger.Error("receipt export failed", zap.String("receipt_id", id), zap.Error(err))
		return "", nil, domain.WrapError(domain.ErrCodeInternal, "failed to generate PDF, please try again", err)
	}

	uc.logger.Info("receipt exported",
		zap.String("receipt_id", id),
		zap.Int("pdf_bytes", len(data)))
	return render.Filename(receipt.TransactionID), data, nil
}

func validateReceipt(receipt *domain.Receipt) error {
	if receipt == nil {
		return domain.ErrInvalidPayload
	}
	if receipt.ClientName == "" {
		return domain.NewError(domain.ErrCodeInvalid, "client name is required")
	}
	if receipt.ClientEmail == "" {
		return domain.NewError(domain.ErrCodeInvalid, "client email is required")
	}
	if receipt.ClientPhone == "" {
		return domain.NewError(domain.ErrCodeInvalid, "client phone is required")
	}
	if !receipt.Amount.IsPositive() {
		return domain.NewError(domain.ErrCodeInvalid, "amount must be greater than zero")
	}
	if !domain.ValidPaymentMethod(receipt.PaymentMethod) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown payment method")
	}
	if receipt.TransactionID == "" {
		return domain.NewError(domain.ErrCodeInvalid, "transaction id is required")
	}
	if receipt.ReceiptDate != "" {
		if _, err := time.Parse("2006-01-02", receipt.ReceiptDate); err != nil {
			return domain.NewError(domain.ErrCodeInvalid, "receipt date must be formatted YYYY-MM-DD")
		}
	}
	return nil
}
