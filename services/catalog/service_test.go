package catalog

import (
	"context"
	"errors"
	"testing"

	"drivio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFleet struct {
	available  []models.RawCar
	byCategory map[string][]models.RawCar
	byLocation map[string][]models.RawCar
	err        error

	lastCall string
}

func (s *stubFleet) AvailableCars(context.Context) ([]models.RawCar, error) {
	s.lastCall = "available"
	return s.available, s.err
}

func (s *stubFleet) CarsByCategory(_ context.Context, category string) ([]models.RawCar, error) {
	s.lastCall = "category"
	return s.byCategory[category], s.err
}

func (s *stubFleet) CarsByLocation(_ context.Context, location string) ([]models.RawCar, error) {
	s.lastCall = "location"
	return s.byLocation[location], s.err
}

func (s *stubFleet) CarByID(_ context.Context, id int) (*models.RawCar, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.available {
		if s.available[i].ID == id {
			return &s.available[i], nil
		}
	}
	return nil, errors.New("no such car")
}

func (s *stubFleet) CreateBooking(context.Context, models.BookingIntent) (*models.BookingRecord, error) {
	return nil, errors.New("not implemented")
}

func (s *stubFleet) ListBookings(context.Context, string) ([]models.BookingRecord, error) {
	return nil, errors.New("not implemented")
}

func (s *stubFleet) CancelBooking(context.Context, string) (*models.BookingRecord, error) {
	return nil, errors.New("not implemented")
}

func newDiscovery(fleet *stubFleet) *DefaultDiscoveryService {
	return &DefaultDiscoveryService{Fleet: fleet, Logger: zap.NewNop()}
}

func TestSearchCarsEndpointSelection(t *testing.T) {
	fleet := &stubFleet{
		available:  []models.RawCar{{ID: 100, Name: "A", DailyRate: 100}},
		byCategory: map[string][]models.RawCar{"suv": {{ID: 101, Name: "B", Category: "suv", DailyRate: 100}}},
		byLocation: map[string][]models.RawCar{"Miami": {{ID: 102, Name: "C", Location: models.StringList{"Miami"}, DailyRate: 100}}},
	}
	svc := newDiscovery(fleet)
	ctx := context.Background()

	_, err := svc.SearchCars(ctx, models.DefaultFilterState(), "", models.SortRecommended)
	require.NoError(t, err)
	assert.Equal(t, "available", fleet.lastCall)

	state := models.DefaultFilterState()
	state.Category = "suv"
	cars, err := svc.SearchCars(ctx, state, "", models.SortRecommended)
	require.NoError(t, err)
	assert.Equal(t, "category", fleet.lastCall)
	require.Len(t, cars, 1)
	assert.Equal(t, 101, cars[0].ID)

	state = models.DefaultFilterState()
	state.Location = "Miami"
	cars, err = svc.SearchCars(ctx, state, "", models.SortRecommended)
	require.NoError(t, err)
	assert.Equal(t, "location", fleet.lastCall)
	require.Len(t, cars, 1)
}

func TestSearchCarsSurfacesUpstreamFailure(t *testing.T) {
	svc := newDiscovery(&stubFleet{err: errors.New("connection refused")})

	_, err := svc.SearchCars(context.Background(), models.DefaultFilterState(), "", models.SortRecommended)
	assert.Error(t, err)
}

func TestSearchCarsAppliesPipeline(t *testing.T) {
	fleet := &stubFleet{available: []models.RawCar{
		{ID: 100, Name: "Budget Hatch", DailyRate: 60},
		{ID: 101, Name: "Mid Sedan", DailyRate: 150},
		{ID: 102, Name: "Grand Tourer", DailyRate: 800},
	}}
	svc := newDiscovery(fleet)

	state := models.DefaultFilterState()
	state.PriceRange = [2]float64{100, 500}
	cars, err := svc.SearchCars(context.Background(), state, "", models.SortPriceLow)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Mid Sedan", cars[0].Name)
}

func TestFeatureChecklistIgnoresOwnFeaturePredicate(t *testing.T) {
	fleet := &stubFleet{available: []models.RawCar{
		{ID: 100, Name: "Connected Car", DailyRate: 100, Bluetooth: true},
		{ID: 101, Name: "Sun Car", DailyRate: 100, Description: "panoramic sunroof"},
	}}
	svc := newDiscovery(fleet)

	state := models.DefaultFilterState()
	state.Features = []string{"bluetooth"}
	features, err := svc.FeatureChecklist(context.Background(), state, "")
	require.NoError(t, err)

	ids := make([]string, 0, len(features))
	for _, def := range features {
		ids = append(ids, def.ID)
	}
	// The sunroof car does not match the selected bluetooth filter but still
	// keeps sunroof on the checklist.
	assert.Contains(t, ids, "bluetooth")
	assert.Contains(t, ids, "sunroof")
}

func TestGetCarNormalizes(t *testing.T) {
	fleet := &stubFleet{available: []models.RawCar{{ID: 2, DailyRate: 300}}}
	svc := newDiscovery(fleet)

	car, err := svc.GetCar(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Range Rover Sport", car.Name)
}
