package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCarListAcceptedShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"id":1,"name":"Car A"},{"id":2,"name":"Car B"}]`},
		{"success envelope", `{"success":true,"data":[{"id":1,"name":"Car A"},{"id":2,"name":"Car B"}]}`},
		{"data-only envelope", `{"data":[{"id":1,"name":"Car A"},{"id":2,"name":"Car B"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cars, err := decodeCarList([]byte(tt.body))
			require.NoError(t, err)
			require.Len(t, cars, 2)
			assert.Equal(t, 1, cars[0].ID)
			assert.Equal(t, "Car B", cars[1].Name)
		})
	}
}

func TestDecodeCarListFailures(t *testing.T) {
	_, err := decodeCarList([]byte(`{"success":false,"message":"maintenance window"}`))
	assert.ErrorIs(t, err, ErrRemoteFailure)

	for _, body := range []string{`"nope"`, `{"unrelated":true}`, `{"data":"not-a-list"}`} {
		_, err := decodeCarList([]byte(body))
		assert.ErrorIs(t, err, ErrUnexpectedFormat, "body: %s", body)
	}
}

func TestDecodeCarSingle(t *testing.T) {
	car, err := decodeCar([]byte(`{"id":3,"name":"Car C","daily_rate":120}`))
	require.NoError(t, err)
	assert.Equal(t, 3, car.ID)

	car, err = decodeCar([]byte(`{"success":true,"data":{"id":4,"location":["Miami","Chicago"]}}`))
	require.NoError(t, err)
	assert.Equal(t, 4, car.ID)
	assert.Len(t, car.Location, 2)

	// Location as a plain string is tolerated too.
	car, err = decodeCar([]byte(`{"data":{"id":5,"location":"Miami","specifications":{"seats":4,"doors":2}}}`))
	require.NoError(t, err)
	assert.Len(t, car.Location, 1)
	assert.Equal(t, 4, car.Specifications.Seats)
	assert.Equal(t, 2, car.Specifications.Doors)

	_, err = decodeCar([]byte(`{"data":{}}`))
	assert.ErrorIs(t, err, ErrUnexpectedFormat)
}

func TestDecodeBookingEnvelopes(t *testing.T) {
	rec, err := decodeBooking([]byte(`{"success":true,"data":{"id":"b-1","user_id":"u-1","status":"confirmed"}}`))
	require.NoError(t, err)
	assert.Equal(t, "b-1", rec.ID)

	_, err = decodeBooking([]byte(`{"success":false,"message":"car unavailable"}`))
	assert.ErrorIs(t, err, ErrRemoteFailure)

	recs, err := decodeBookingList([]byte(`{"success":true,"data":[{"id":"b-1"},{"id":"b-2"}]}`))
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
