package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

// UseCase manages the property and plot listings behind both the public
// marketing pages and the admin back office.
type UseCase struct {
	properties repository.PropertyRepository
	plots      repository.PlotRepository
	logger     *zap.Logger
}

func New(properties repository.PropertyRepository, plots repository.PlotRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{properties: properties, plots: plots, logger: logger}
}

func (uc *UseCase) ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]domain.Property, error) {
	if filter.Type != "" && !domain.ValidPropertyType(filter.Type) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown property type")
	}
	if filter.Status != "" && !domain.ValidListingStatus(filter.Status) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown listing status")
	}
	return uc.properties.List(ctx, filter)
}

func (uc *UseCase) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return uc.properties.GetByID(ctx, id)
}

func (uc *UseCase) CreateProperty(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	if err := validateProperty(property); err != nil {
		return nil, err
	}
	if property.Status == "" {
		property.Status = domain.ListingStatusAvailable
	}
	created, err := uc.properties.Create(ctx, property)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("property created", zap.String("property_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (uc *UseCase) UpdateProperty(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	if property.ID == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "property id is required")
	}
	if err := validateProperty(property); err != nil {
		return nil, err
	}
	if _, err := uc.properties.GetByID(ctx, property.ID); err != nil {
		return nil, err
	}
	if err := uc.properties.Update(ctx, property); err != nil {
		return nil, err
	}
	return uc.properties.GetByID(ctx, property.ID)
}

func (uc *UseCase) DeleteProperty(ctx context.Context, id string) error {
	if err := uc.properties.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("property deleted", zap.String("property_id", id))
	return nil
}

func (uc *UseCase) ListPlots(ctx context.Context, filter repository.PlotFilter) ([]domain.Plot, error) {
	if filter.Status != "" && !domain.ValidListingStatus(filter.Status) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown listing status")
	}
	return uc.plots.List(ctx, filter)
}

func (uc *UseCase) GetPlot(ctx context.Context, id string) (*domain.Plot, error) {
	return uc.plots.GetByID(ctx, id)
}

func (uc *UseCase) CreatePlot(ctx context.Context, plot *domain.Plot) (*domain.Plot, error) {
	if err := validatePlot(plot); err != nil {
		return nil, err
	}
	if plot.Status == "" {
		plot.Status = domain.ListingStatusAvailable
	}
	created, err := uc.plots.Create(ctx, plot)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("plot created", zap.String("plot_id", created.ID), zap.String("plot_number", created.PlotNumber))
	return created, nil
}

func (uc *UseCase) UpdatePlot(ctx context.Context, plot *domain.Plot) (*domain.Plot, error) {
	if plot.ID == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "plot id is required")
	}
	if err := validatePlot(plot); err != nil {
		return nil, err
	}
	if _, err := uc.plots.GetByID(ctx, plot.ID); err != nil {
		return nil, err
	}
	if err := uc.plots.Update(ctx, plot); err != nil {
		return nil, err
	}
	return uc.plots.GetByID(ctx, plot.ID)
}

func (uc *UseCase) DeletePlot(ctx context.Context, id string) error {
	if err := uc.plots.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("plot deleted", zap.String("plot_id", id))
	return nil
}

func validateProperty(property *domain.Property) error {
	if property == nil {
		return domain.ErrInvalidPayload
	}
	if property.Name == "" {
		return domain.NewError(domain.ErrCodeInvalid, "property name is required")
	}
	if property.Location == "" {
		return domain.NewError(domain.ErrCodeInvalid, "property location is required")
	}
	if !domain.ValidPropertyType(property.Type) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown property type")
	}
	if property.Status != "" && !domain.ValidListingStatus(property.Status) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown listing status")
	}
	if property.Price.IsNegative() {
		return domain.NewError(domain.ErrCodeInvalid, "property price cannot be negative")
	}
	return nil
}

func validatePlot(plot *domain.Plot) error {
	if plot == nil {
		return domain.ErrInvalidPayload
	}
	if plot.PlotNumber == "" {
		return domain.NewError(domain.ErrCodeInvalid, "plot number is required")
	}
	if plot.Location == "" {
		return domain.NewError(domain.ErrCodeInvalid, "plot location is required")
	}
	if plot.Status != "" && !domain.ValidListingStatus(plot.Status) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown listing status")
	}
	if plot.Price.IsNegative() {
		return domain.NewError(domain.ErrCodeInvalid, "plot price cannot be negative")
	}
	return nil
}
