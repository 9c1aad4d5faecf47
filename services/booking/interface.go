package booking

import (
	"context"

	"drivio/models"
)

// BookingService is the consistency layer between the storefront and the
// remote booking API. Creation is idempotent per fingerprint and degrades to
// a local fallback record when the remote API is unreachable; the only
// caller-visible error on the create path is a malformed identity.
type BookingService interface {
	CreateBooking(ctx context.Context, intent models.BookingIntent) (*models.BookingRecord, error)
	FetchUserBookings(ctx context.Context, userID string) []models.BookingRecord
	UpdateBookingStatus(ctx context.Context, userID, id string, status models.BookingStatus) (*models.BookingRecord, error)
}

// ReconcileEnqueuer schedules a background replay of local fallback bookings
// against the remote API. Enqueue failures are best-effort; the fallback
// record already exists either way.
type ReconcileEnqueuer interface {
	EnqueueReconcile(userID string) error
}
