package receipt

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/internal/render"
	"github.com/eliteprops/backend/repository"
)

type fakeReceiptRepo struct {
	receipts map[string]*domain.Receipt
	created  []*domain.Receipt
}

func newFakeReceiptRepo(receipts ...*domain.Receipt) *fakeReceiptRepo {
	repo := &fakeReceiptRepo{receipts: make(map[string]*domain.Receipt)}
	for _, r := range receipts {
		repo.receipts[r.ID] = r
	}
	return repo
}

func (f *fakeReceiptRepo) GetByID(_ context.Context, id string) (*domain.Receipt, error) {
	if r, ok := f.receipts[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, domain.ErrReceiptNotFound
}

func (f *fakeReceiptRepo) ListWithRelations(context.Context, repository.ReceiptFilter) ([]domain.ReceiptWithRelations, error) {
	return nil, nil
}

func (f *fakeReceiptRepo) ListContacts(context.Context) ([]domain.ContactRecord, error) {
	return nil, nil
}

func (f *fakeReceiptRepo) Count(context.Context) (int, error) {
	return len(f.receipts), nil
}

func (f *fakeReceiptRepo) Create(_ context.Context, receipt *domain.Receipt) (*domain.Receipt, error) {
	cp := *receipt
	cp.ID = "generated"
	f.created = append(f.created, &cp)
	f.receipts[cp.ID] = &cp
	return &cp, nil
}

func testCompany() domain.CompanyInfo {
	return domain.CompanyInfo{Name: "Elite Properties", Contact: "+254 700 000 000", Address: "Nairobi, Kenya"}
}

func validReceipt() *domain.Receipt {
	return &domain.Receipt{
		ID:            "r-1",
		ClientName:    "Jane Doe",
		ClientEmail:   "jane@example.com",
		ClientPhone:   "+254 711 222 333",
		Amount:        decimal.NewFromInt(150000),
		PaymentMethod: domain.PaymentMethodMobileMoney,
		TransactionID: "TXN-001",
		ReceiptDate:   "2025-03-17",
	}
}

func TestCreateValidation(t *testing.T) {
	uc := New(newFakeReceiptRepo(), testCompany(), zap.NewNop())

	cases := []struct {
		name   string
		mutate func(*domain.Receipt)
	}{
		{"missing client name", func(r *domain.Receipt) { r.ClientName = "" }},
		{"missing client email", func(r *domain.Receipt) { r.ClientEmail = "" }},
		{"missing client phone", func(r *domain.Receipt) { r.ClientPhone = "" }},
		{"zero amount", func(r *domain.Receipt) { r.Amount = decimal.Zero }},
		{"negative amount", func(r *domain.Receipt) { r.Amount = decimal.NewFromInt(-5) }},
		{"unknown payment method", func(r *domain.Receipt) { r.PaymentMethod = "barter" }},
		{"missing transaction id", func(r *domain.Receipt) { r.TransactionID = "" }},
		{"malformed date", func(r *domain.Receipt) { r.ReceiptDate = "17/03/2025" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validReceipt()
			tc.mutate(r)
			_, err := uc.Create(context.Background(), r)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
}

func TestCreateDefaultsReceiptDate(t *testing.T) {
	repo := newFakeReceiptRepo()
	uc := New(repo, testCompany(), zap.NewNop())

	r := validReceipt()
	r.ReceiptDate = ""
	created, err := uc.Create(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), created.ReceiptDate)
}

func TestExportPDFBusyFlag(t *testing.T) {
	repo := newFakeReceiptRepo(validReceipt())
	uc := New(repo, testCompany(), zap.NewNop())

	started := make(chan struct{})
	release := make(chan struct{})
	var startOnce sync.Once
	uc.export = func(render.Document) ([]byte, error) {
		startOnce.Do(func() { close(started) })
		<-release
		return []byte("%PDF-"), nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, _, firstErr = uc.ExportPDF(context.Background(), "r-1")
	}()

	<-started
	_, _, err := uc.ExportPDF(context.Background(), "r-1")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)

	// The slot frees up once the first export returns.
	name, data, err := uc.ExportPDF(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "receipt-TXN-001.pdf", name)
	assert.NotEmpty(t, data)
}

func TestExportPDFFailureReleasesSlot(t *testing.T) {
	repo := newFakeReceiptRepo(validReceipt())
	uc := New(repo, testCompany(), zap.NewNop())

	uc.export = func(render.Document) ([]byte, error) {
		return nil, errors.New("font load failed")
	}
	_, _, err := uc.ExportPDF(context.Background(), "r-1")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))

	uc.export = func(render.Document) ([]byte, error) { return []byte("%PDF-"), nil }
	_, _, err = uc.ExportPDF(context.Background(), "r-1")
	assert.NoError(t, err)
}

func TestExportPDFUnknownReceipt(t *testing.T) {
	uc := New(newFakeReceiptRepo(), testCompany(), zap.NewNop())
	_, _, err := uc.ExportPDF(context.Background(), "missing")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
