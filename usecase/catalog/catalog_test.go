package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

type fakePropertyRepo struct {
	repository.PropertyRepository
	properties map[string]*domain.Property
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id string) (*domain.Property, error) {
	if p, ok := f.properties[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrPropertyNotFound
}

func (f *fakePropertyRepo) Create(_ context.Context, property *domain.Property) (*domain.Property, error) {
	cp := *property
	cp.ID = "created"
	f.properties[cp.ID] = &cp
	return &cp, nil
}

type fakePlotRepo struct {
	repository.PlotRepository
}

func newUseCase() (*UseCase, *fakePropertyRepo) {
	props := &fakePropertyRepo{properties: make(map[string]*domain.Property)}
	return New(props, &fakePlotRepo{}, zap.NewNop()), props
}

func validProperty() *domain.Property {
	return &domain.Property{
		Name:     "Sunset Villas",
		Location: "Kilimani, Nairobi",
		Price:    decimal.NewFromInt(12500000),
		Type:     domain.PropertyTypeApartment,
	}
}

func TestCreatePropertyValidation(t *testing.T) {
	uc, _ := newUseCase()

	cases := []struct {
		name   string
		mutate func(*domain.Property)
	}{
		{"missing name", func(p *domain.Property) { p.Name = "" }},
		{"missing location", func(p *domain.Property) { p.Location = "" }},
		{"unknown type", func(p *domain.Property) { p.Type = "castle" }},
		{"unknown status", func(p *domain.Property) { p.Status = "pending" }},
		{"negative price", func(p *domain.Property) { p.Price = decimal.NewFromInt(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProperty()
			tc.mutate(p)
			_, err := uc.CreateProperty(context.Background(), p)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
}

func TestCreatePropertyDefaultsStatus(t *testing.T) {
	uc, _ := newUseCase()

	created, err := uc.CreateProperty(context.Background(), validProperty())
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusAvailable, created.Status)
}

func TestUpdatePropertyRequiresExistingRow(t *testing.T) {
	uc, _ := newUseCase()

	p := validProperty()
	p.ID = "missing"
	_, err := uc.UpdateProperty(context.Background(), p)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestListPropertiesRejectsUnknownFilter(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.ListProperties(context.Background(), repository.PropertyFilter{Type: "castle"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
