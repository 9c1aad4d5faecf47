package bookingcache

import (
	"context"

	"drivio/models"
)

// SessionCache is the short-lived fingerprint store used as the fast-path
// dedup check for booking creation. Entries expire on their own; a miss is
// returned as (nil, nil).
type SessionCache interface {
	Get(ctx context.Context, fingerprint string) (*models.BookingRecord, error)
	Set(ctx context.Context, fingerprint string, record models.BookingRecord) error
	Delete(ctx context.Context, fingerprint string) error
}

// DurableCache is the long-lived local booking store written when the remote
// booking API is unreachable. Records are kept per user and replaced
// wholesale on write.
type DurableCache interface {
	GetAll(ctx context.Context, userID string) ([]models.BookingRecord, error)
	SetAll(ctx context.Context, userID string, records []models.BookingRecord) error
}
