package visit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

type fakeVisitRepo struct {
	repository.SiteVisitRepository
	visits    map[string]*domain.SiteVisit
	createErr error
	created   []*domain.SiteVisit
	statuses  map[string]string
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{
		visits:   make(map[string]*domain.SiteVisit),
		statuses: make(map[string]string),
	}
}

func (f *fakeVisitRepo) GetByID(_ context.Context, id string) (*domain.SiteVisit, error) {
	if v, ok := f.visits[id]; ok {
		cp := *v
		if status, moved := f.statuses[id]; moved {
			cp.Status = status
		}
		return &cp, nil
	}
	return nil, domain.ErrVisitNotFound
}

func (f *fakeVisitRepo) Create(_ context.Context, visit *domain.SiteVisit) (*domain.SiteVisit, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *visit
	cp.ID = "v-created"
	f.created = append(f.created, &cp)
	f.visits[cp.ID] = &cp
	return &cp, nil
}

func (f *fakeVisitRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.statuses[id] = status
	return nil
}

type fakeBuffer struct {
	buffered []*domain.SiteVisit
	err      error
}

func (f *fakeBuffer) BufferVisit(_ context.Context, visit *domain.SiteVisit) error {
	if f.err != nil {
		return f.err
	}
	f.buffered = append(f.buffered, visit)
	return nil
}

func validVisit() *domain.SiteVisit {
	return &domain.SiteVisit{
		ClientName:    "Jane Doe",
		ClientEmail:   "jane@example.com",
		ClientPhone:   "0711222333",
		PreferredDate: "2025-04-02",
		PreferredTime: "10:00",
	}
}

func TestScheduleValidation(t *testing.T) {
	uc := New(newFakeVisitRepo(), nil, zap.NewNop())

	cases := []struct {
		name   string
		mutate func(*domain.SiteVisit)
	}{
		{"missing name", func(v *domain.SiteVisit) { v.ClientName = "" }},
		{"missing email", func(v *domain.SiteVisit) { v.ClientEmail = "" }},
		{"missing phone", func(v *domain.SiteVisit) { v.ClientPhone = "" }},
		{"missing date", func(v *domain.SiteVisit) { v.PreferredDate = "" }},
		{"malformed date", func(v *domain.SiteVisit) { v.PreferredDate = "02-04-2025" }},
		{"missing time", func(v *domain.SiteVisit) { v.PreferredTime = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := validVisit()
			tc.mutate(v)
			_, err := uc.Schedule(context.Background(), v)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
}

func TestScheduleForcesPendingStatus(t *testing.T) {
	repo := newFakeVisitRepo()
	uc := New(repo, nil, zap.NewNop())

	v := validVisit()
	v.Status = domain.VisitStatusConfirmed
	created, err := uc.Schedule(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, domain.VisitStatusPending, created.Status)
}

func TestScheduleBuffersWhenStoreUnavailable(t *testing.T) {
	repo := newFakeVisitRepo()
	repo.createErr = domain.WrapError(domain.ErrCodeInternal, "database unavailable", nil)
	buf := &fakeBuffer{}
	uc := New(repo, buf, zap.NewNop())

	v := validVisit()
	result, err := uc.Schedule(context.Background(), v)
	require.NoError(t, err)
	require.Len(t, buf.buffered, 1)
	assert.Equal(t, domain.VisitStatusPending, result.Status)
	assert.Empty(t, repo.created)
}

func TestScheduleReturnsCreateErrorWhenBufferFails(t *testing.T) {
	repo := newFakeVisitRepo()
	repo.createErr = domain.WrapError(domain.ErrCodeInternal, "database unavailable", nil)
	uc := New(repo, &fakeBuffer{err: domain.WrapError(domain.ErrCodeInternal, "bucket closed", nil)}, zap.NewNop())

	_, err := uc.Schedule(context.Background(), validVisit())
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeVisitRepo()
	uc := New(repo, nil, zap.NewNop())

	created, err := uc.Schedule(context.Background(), validVisit())
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), created.ID, domain.VisitStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.VisitStatusConfirmed, updated.Status)

	_, err = uc.UpdateStatus(context.Background(), created.ID, "rescheduled")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.UpdateStatus(context.Background(), "missing", domain.VisitStatusCancelled)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
