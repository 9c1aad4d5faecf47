package catalog

import (
	"context"
	"fmt"

	"drivio/models"
	"drivio/services/fleet"

	"go.uber.org/zap"
)

// DiscoveryService drives the storefront car browsing flow: fetch from the
// fleet API, normalize, filter, sort.
type DiscoveryService interface {
	SearchCars(ctx context.Context, state models.FilterState, query, sortKey string) ([]models.CanonicalCar, error)
	GetCar(ctx context.Context, id int) (*models.CanonicalCar, error)
	FeatureChecklist(ctx context.Context, state models.FilterState, query string) ([]models.FeatureDefinition, error)
}

// DefaultDiscoveryService implements DiscoveryService.
type DefaultDiscoveryService struct {
	Fleet  fleet.API
	Logger *zap.Logger
}

// SearchCars fetches the relevant upstream collection, normalizes it and runs
// the filter/sort pipeline. Filtering and sorting are pure and reentrant;
// only the upstream fetch can fail, and that failure surfaces to the caller
// so the storefront can show a retry-capable error state.
func (s *DefaultDiscoveryService) SearchCars(ctx context.Context, state models.FilterState, query, sortKey string) ([]models.CanonicalCar, error) {
	raw, err := s.fetch(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to load cars: %w", err)
	}
	cars := FilterCars(NormalizeAll(raw), state, query)
	return SortCars(cars, sortKey), nil
}

// GetCar fetches and normalizes a single car record.
func (s *DefaultDiscoveryService) GetCar(ctx context.Context, id int) (*models.CanonicalCar, error) {
	raw, err := s.Fleet.CarByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load car %d: %w", id, err)
	}
	car := Normalize(*raw)
	return &car, nil
}

// FeatureChecklist returns the feature definitions worth showing for the
// current filtered set. The feature predicate itself is excluded from the
// candidate filter so unselected features can still qualify.
func (s *DefaultDiscoveryService) FeatureChecklist(ctx context.Context, state models.FilterState, query string) ([]models.FeatureDefinition, error) {
	raw, err := s.fetch(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to load cars: %w", err)
	}
	candidateState := state
	candidateState.Features = nil
	candidates := FilterCars(NormalizeAll(raw), candidateState, query)
	return AvailableFeatures(candidates, state.Features), nil
}

// fetch picks the narrowest upstream listing endpoint for the filter state.
// The full predicate set is still applied locally afterwards.
func (s *DefaultDiscoveryService) fetch(ctx context.Context, state models.FilterState) ([]models.RawCar, error) {
	switch {
	case state.Category != "" && state.Category != models.FilterAll:
		return s.Fleet.CarsByCategory(ctx, state.Category)
	case state.Location != "" && state.Location != models.FilterAll:
		return s.Fleet.CarsByLocation(ctx, state.Location)
	default:
		return s.Fleet.AvailableCars(ctx)
	}
}
