package catalog

import (
	"testing"

	"drivio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() models.FilterState {
	return models.DefaultFilterState()
}

func TestFilterCarsFeatureUnionSemantics(t *testing.T) {
	carX := models.CanonicalCar{ID: 1, Name: "Car X", Price: 100, Bluetooth: true}
	carY := models.CanonicalCar{ID: 2, Name: "Car Y", Price: 100, Description: "bluetooth connectivity included"}
	carZ := models.CanonicalCar{ID: 3, Name: "Car Z", Price: 100}
	carSunroof := models.CanonicalCar{ID: 4, Name: "Car W", Price: 100, Features: []string{"Sunroof"}}

	state := testState()
	state.Features = []string{"bluetooth"}
	got := FilterCars([]models.CanonicalCar{carX, carY, carZ}, state, "")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)

	// Selecting two features returns the union: a car matching only one of
	// them still appears.
	state.Features = []string{"bluetooth", "sunroof"}
	got = FilterCars([]models.CanonicalCar{carX, carSunroof, carZ}, state, "")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
}

func TestFilterCarsPriceBoundaries(t *testing.T) {
	cheap := models.CanonicalCar{ID: 1, Price: 99.99}
	exact := models.CanonicalCar{ID: 2, Price: 200.00}
	mid := models.CanonicalCar{ID: 3, Price: 150}

	state := testState()
	state.PriceRange = [2]float64{100, 200}
	got := FilterCars([]models.CanonicalCar{cheap, exact, mid}, state, "")
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestFilterCarsLocationAndCategory(t *testing.T) {
	miami := models.CanonicalCar{ID: 1, Price: 100, Category: "suv", Location: models.StringList{"Miami"}}
	multi := models.CanonicalCar{ID: 2, Price: 100, Category: "sports", Location: models.StringList{"New York", "Miami"}}
	vegas := models.CanonicalCar{ID: 3, Price: 100, Category: "suv", Location: models.StringList{"Las Vegas"}}
	cars := []models.CanonicalCar{miami, multi, vegas}

	state := testState()
	state.Location = "miami"
	got := FilterCars(cars, state, "")
	require.Len(t, got, 2)

	state.Category = "suv"
	got = FilterCars(cars, state, "")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// "all" skips both predicates.
	got = FilterCars(cars, testState(), "")
	assert.Len(t, got, 3)

	// Partial location values match by substring.
	state = testState()
	state.Location = "New"
	got = FilterCars(cars, state, "")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestSortCarsStableAndPure(t *testing.T) {
	input := []models.CanonicalCar{
		{ID: 1, Price: 300, Rating: 4.2},
		{ID: 2, Price: 100, Rating: 4.9},
		{ID: 3, Price: 200, Rating: 4.2},
	}
	snapshot := make([]models.CanonicalCar, len(input))
	copy(snapshot, input)

	recommended := SortCars(input, models.SortRecommended)
	assert.Equal(t, input, recommended)

	low := SortCars(input, models.SortPriceLow)
	for i := 1; i < len(low); i++ {
		assert.LessOrEqual(t, low[i-1].Price, low[i].Price)
	}

	high := SortCars(input, models.SortPriceHigh)
	assert.Equal(t, 1, high[0].ID)

	rating := SortCars(input, models.SortRating)
	assert.Equal(t, 2, rating[0].ID)
	// Stable: equal ratings keep their upstream order.
	assert.Equal(t, 1, rating[1].ID)
	assert.Equal(t, 3, rating[2].ID)

	// Input never mutated by any sort.
	assert.Equal(t, snapshot, input)
}

func TestAvailableFeatures(t *testing.T) {
	// Empty candidate set falls back to the full catalog.
	got := AvailableFeatures(nil, nil)
	assert.Len(t, got, len(AllFeatures()))

	cars := []models.CanonicalCar{
		{ID: 1, Bluetooth: true},
	}
	got = AvailableFeatures(cars, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "bluetooth", got[0].ID)

	// Already-selected features stay listed even without a matching car.
	got = AvailableFeatures(cars, []string{"sunroof"})
	ids := make([]string, 0, len(got))
	for _, def := range got {
		ids = append(ids, def.ID)
	}
	assert.Contains(t, ids, "sunroof")
	assert.Contains(t, ids, "bluetooth")
}
