package booking

import (
	"testing"

	"drivio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintDeterministic(t *testing.T) {
	intent := models.BookingIntent{
		UserID:    "user-1",
		CarID:     "7",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-14",
	}

	a, err := Fingerprint(intent)
	require.NoError(t, err)
	b, err := Fingerprint(intent)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "user-1|7|2026-09-10|2026-09-14", a)

	// Unrelated fields do not affect the fingerprint.
	intent.TotalPrice = 9999
	intent.PickupLocation = "elsewhere"
	c, err := Fingerprint(intent)
	require.NoError(t, err)
	assert.Equal(t, a, c)

	// Different dates mean a different logical booking.
	intent.EndDate = "2026-09-15"
	d, err := Fingerprint(intent)
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}

func TestFingerprintRequiresIdentity(t *testing.T) {
	_, err := Fingerprint(models.BookingIntent{CarID: "7"})
	assert.ErrorIs(t, err, ErrInvalidIdentity)

	_, err = Fingerprint(models.BookingIntent{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidIdentity)
}
