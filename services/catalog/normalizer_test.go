package catalog

import (
	"testing"

	"drivio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSeedIdentityWins(t *testing.T) {
	raw := models.RawCar{ID: 2, Name: "ignored upstream name", Category: "ignored", DailyRate: 420}

	car := Normalize(raw)
	assert.Equal(t, "Range Rover Sport", car.Name)
	assert.Equal(t, "suv", car.Category)
	assert.NotEmpty(t, car.Image)
	assert.Equal(t, 420.0, car.Price)
}

func TestNormalizeUnknownIDUsesRawFields(t *testing.T) {
	raw := models.RawCar{ID: 500, Name: "Custom GT", Category: "sports", DailyRate: 199}

	car := Normalize(raw)
	assert.Equal(t, "Custom GT", car.Name)
	assert.Equal(t, "sports", car.Category)
	assert.Equal(t, defaultCarImage, car.Image)
}

func TestNormalizeDefaultsMissingDailyRate(t *testing.T) {
	for _, rate := range []float64{0, -10} {
		car := Normalize(models.RawCar{ID: 500, DailyRate: rate})
		assert.Equal(t, float64(defaultDailyRate), car.Price)
	}
	assert.GreaterOrEqual(t, Normalize(models.RawCar{ID: 500}).Price, 0.0)
}

func TestNormalizeStableLocation(t *testing.T) {
	raw := models.RawCar{ID: 7, DailyRate: 100}

	first := Normalize(raw)
	second := Normalize(raw)
	require.Len(t, first.Location, 1)
	assert.Equal(t, first.Location, second.Location)
	assert.Equal(t, fallbackLocations[7%len(fallbackLocations)], first.Location[0])

	// Upstream-provided locations pass through untouched.
	raw.Location = models.StringList{"Berlin"}
	assert.Equal(t, models.StringList{"Berlin"}, Normalize(raw).Location)
}

func TestNormalizeDerivesFeatures(t *testing.T) {
	raw := models.RawCar{
		ID:        500,
		DailyRate: 100,
		Specifications: models.CarSpecifications{
			Transmission: "Automatic",
			Seats:        4,
		},
		AirConditioning: true,
		Bluetooth:       true,
		GPS:             true,
		USB:             true,
	}

	car := Normalize(raw)
	assert.Equal(t, []string{
		"Automatic", "4 seats", "Air conditioning", "GPS Navigation", "Bluetooth", "USB Port",
	}, car.Features)

	seen := make(map[string]int)
	for _, f := range car.Features {
		seen[f]++
		assert.Equal(t, 1, seen[f], "duplicate feature %q", f)
	}
}
