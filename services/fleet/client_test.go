package fleet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"drivio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRESTClient(srv.URL, 2*time.Second, zap.NewNop())
}

func TestRESTClientCarListing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cars/available":
			w.Write([]byte(`[{"id":1,"daily_rate":100}]`))
		case "/cars/category/luxury":
			w.Write([]byte(`{"success":true,"data":[{"id":2},{"id":3}]}`))
		case "/cars/location/Miami":
			w.Write([]byte(`{"data":[{"id":4}]}`))
		case "/cars/4":
			w.Write([]byte(`{"success":true,"data":{"id":4,"name":"Car D"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	cars, err := client.AvailableCars(ctx)
	require.NoError(t, err)
	assert.Len(t, cars, 1)

	cars, err = client.CarsByCategory(ctx, "luxury")
	require.NoError(t, err)
	assert.Len(t, cars, 2)

	cars, err = client.CarsByLocation(ctx, "Miami")
	require.NoError(t, err)
	assert.Len(t, cars, 1)

	car, err := client.CarByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Car D", car.Name)
}

func TestRESTClientNon2xxIsRemoteFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))

	_, err := client.AvailableCars(context.Background())
	assert.ErrorIs(t, err, ErrRemoteFailure)

	_, err = client.CreateBooking(context.Background(), models.BookingIntent{UserID: "u-1", CarID: "1"})
	assert.ErrorIs(t, err, ErrRemoteFailure)
}

func TestRESTClientBookingFlow(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/bookings":
			var intent models.BookingIntent
			require.NoError(t, json.NewDecoder(r.Body).Decode(&intent))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data": models.BookingRecord{
					ID:         "b-1",
					UserID:     intent.UserID,
					CarID:      intent.CarID,
					TotalPrice: intent.TotalPrice,
					Status:     models.BookingConfirmed,
				},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/bookings":
			assert.Equal(t, "u-1", r.URL.Query().Get("user_id"))
			w.Write([]byte(`{"success":true,"data":[{"id":"b-1"}]}`))
		case r.Method == http.MethodPut && r.URL.Path == "/bookings/b-1/cancel":
			w.Write([]byte(`{"success":true,"data":{"id":"b-1","status":"cancelled"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	rec, err := client.CreateBooking(ctx, models.BookingIntent{UserID: "u-1", CarID: "7", TotalPrice: 500})
	require.NoError(t, err)
	assert.Equal(t, "b-1", rec.ID)
	assert.Equal(t, 500.0, rec.TotalPrice)

	recs, err := client.ListBookings(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	cancelled, err := client.CancelBooking(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
}
