package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

type fakeVisitSource struct {
	repository.SiteVisitRepository
	contacts []domain.ContactRecord
	err      error
}

func (f *fakeVisitSource) ListContacts(context.Context) ([]domain.ContactRecord, error) {
	return f.contacts, f.err
}

type fakeReceiptSource struct {
	repository.ReceiptRepository
	contacts []domain.ContactRecord
	err      error
}

func (f *fakeReceiptSource) ListContacts(context.Context) ([]domain.ContactRecord, error) {
	return f.contacts, f.err
}

func TestRosterMergesBothSources(t *testing.T) {
	earlier := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	later := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)

	visits := &fakeVisitSource{contacts: []domain.ContactRecord{
		{Name: "Jane Doe", Email: "Jane@Example.com", Phone: "0711", Timestamp: later},
	}}
	receipts := &fakeReceiptSource{contacts: []domain.ContactRecord{
		{Name: "J. Doe", Email: "jane@example.com", Phone: "0722", Timestamp: earlier},
		{Name: "Sam Otieno", Email: "sam@example.com", Phone: "0733", Timestamp: later},
	}}

	roster, err := New(visits, receipts, zap.NewNop()).Roster(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 2)

	// Visit record was folded first, so its display values win.
	assert.Equal(t, "Jane Doe", roster[0].Name)
	assert.Equal(t, "Jane@Example.com", roster[0].Email)
	assert.Equal(t, earlier, roster[0].FirstContactAt)
	assert.Equal(t, 1, roster[0].VisitCount)
	assert.Equal(t, 1, roster[0].ReceiptCount)

	assert.Equal(t, "Sam Otieno", roster[1].Name)
	assert.Equal(t, 0, roster[1].VisitCount)
	assert.Equal(t, 1, roster[1].ReceiptCount)
}

func TestRosterFailsWhenASourceFails(t *testing.T) {
	visits := &fakeVisitSource{err: errors.New("connection refused")}
	receipts := &fakeReceiptSource{}

	roster, err := New(visits, receipts, zap.NewNop()).Roster(context.Background())
	assert.Error(t, err)
	assert.Nil(t, roster)
}

func TestRosterEmptySources(t *testing.T) {
	roster, err := New(&fakeVisitSource{}, &fakeReceiptSource{}, zap.NewNop()).Roster(context.Background())
	require.NoError(t, err)
	assert.Empty(t, roster)
}
