package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"drivio/database/repository/bookingcache"
	"drivio/models"
	"drivio/services/fleet"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService. The live list mirrors the
// booking set currently visible to storefront sessions; the mutex serializes
// all cache writes so no two invocations interleave them. Dedup across
// separate processes is not guaranteed (accepted limitation: the session
// cache is the de-facto race arbiter within one process only).
type DefaultBookingService struct {
	Fleet    fleet.API
	Session  bookingcache.SessionCache
	Durable  bookingcache.DurableCache
	Enqueuer ReconcileEnqueuer
	Logger   *zap.Logger

	mu   sync.Mutex
	live []models.BookingRecord
}

// CreateBooking resolves a booking intent to exactly one record:
// a session-cache hit, an equivalent live record, a fresh remote booking, or
// a local fallback. Every remote failure degrades to the fallback path; the
// call returns an error only when the fingerprint cannot be computed.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, intent models.BookingIntent) (*models.BookingRecord, error) {
	fp, err := Fingerprint(intent)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Fast path: session cache. If the cached record was since removed from
	// the live list, the cached entry itself is still the answer.
	cached, cerr := s.Session.Get(ctx, fp)
	if cerr != nil {
		s.Logger.Warn("session cache lookup failed, treating as miss", zap.Error(cerr))
	} else if cached != nil {
		if liveRec := s.findLive(cached.ID); liveRec != nil {
			return liveRec, nil
		}
		return cached, nil
	}

	// Guard against rapid double-submission: an equivalent non-cancelled
	// record for the same user in the live list short-circuits the remote
	// call. Matching without the user would hand one user's booking to
	// another when both want the same car and dates.
	for i := range s.live {
		rec := s.live[i]
		if rec.UserID == intent.UserID && rec.CarID == intent.CarID &&
			rec.StartDate == intent.StartDate && rec.EndDate == intent.EndDate &&
			rec.Status != models.BookingCancelled {
			s.cacheFingerprint(ctx, fp, rec)
			return &rec, nil
		}
	}

	remote, rerr := s.Fleet.CreateBooking(ctx, intent)
	if rerr == nil && remote != nil {
		s.cacheFingerprint(ctx, fp, *remote)
		s.live = append(s.live, *remote)
		rec := *remote
		return &rec, nil
	}
	s.Logger.Warn("remote booking create failed, writing local fallback",
		zap.String("fingerprint", fp), zap.Error(rerr))

	local := newLocalRecord(intent)
	s.live = append(s.live, local)
	s.appendDurable(ctx, intent.UserID, local)
	s.cacheFingerprint(ctx, fp, local)
	if s.Enqueuer != nil {
		if qerr := s.Enqueuer.EnqueueReconcile(intent.UserID); qerr != nil {
			s.Logger.Warn("failed to enqueue booking reconciliation", zap.Error(qerr))
		}
	}
	return &local, nil
}

// FetchUserBookings returns the best-available booking list for the user.
// When the remote listing succeeds it is authoritative: records present in
// both sources keep the remote version, durable local-only records are
// appended. On remote failure the durable cache is the answer. Never errors
// outward.
func (s *DefaultBookingService) FetchUserBookings(ctx context.Context, userID string) []models.BookingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	remote, err := s.Fleet.ListBookings(ctx, userID)
	if err != nil {
		s.Logger.Warn("remote booking listing failed, serving durable cache",
			zap.String("user_id", userID), zap.Error(err))
		locals, derr := s.Durable.GetAll(ctx, userID)
		if derr != nil {
			s.Logger.Error("durable cache read failed", zap.Error(derr))
			return []models.BookingRecord{}
		}
		s.replaceLive(userID, locals)
		return locals
	}

	merged := make([]models.BookingRecord, len(remote))
	copy(merged, remote)
	seen := make(map[string]struct{}, len(remote))
	for _, rec := range remote {
		seen[rec.ID] = struct{}{}
	}
	if locals, derr := s.Durable.GetAll(ctx, userID); derr == nil {
		for _, rec := range locals {
			if _, ok := seen[rec.ID]; !ok {
				merged = append(merged, rec)
			}
		}
	} else {
		s.Logger.Warn("durable cache read failed during merge", zap.Error(derr))
	}

	s.replaceLive(userID, merged)
	return merged
}

// UpdateBookingStatus transitions a booking's status. "cancelled" is the only
// remote-supported transition; everything else is a local-only operation.
// A remote failure degrades to a local mutation of both the live list and the
// durable cache so the visible state stays self-consistent.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, userID, id string, status models.BookingStatus) (*models.BookingRecord, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if status == models.BookingCancelled {
		remote, err := s.Fleet.CancelBooking(ctx, id)
		if err == nil && remote != nil {
			s.applyRecord(ctx, userID, *remote)
			rec := *remote
			return &rec, nil
		}
		s.Logger.Warn("remote cancel failed, applying status locally",
			zap.String("booking_id", id), zap.Error(err))
	}

	return s.updateLocal(ctx, userID, id, status)
}

func (s *DefaultBookingService) updateLocal(ctx context.Context, userID, id string, status models.BookingStatus) (*models.BookingRecord, error) {
	now := time.Now().UTC()
	var updated *models.BookingRecord

	for i := range s.live {
		if s.live[i].ID == id {
			s.live[i].Status = status
			s.live[i].UpdatedAt = now
			rec := s.live[i]
			updated = &rec
			break
		}
	}

	locals, derr := s.Durable.GetAll(ctx, userID)
	if derr != nil {
		s.Logger.Warn("durable cache read failed during status update", zap.Error(derr))
	} else {
		changed := false
		for i := range locals {
			if locals[i].ID == id {
				locals[i].Status = status
				locals[i].UpdatedAt = now
				rec := locals[i]
				if updated == nil {
					updated = &rec
				}
				changed = true
			}
		}
		if changed {
			if werr := s.Durable.SetAll(ctx, userID, locals); werr != nil {
				s.Logger.Warn("durable cache write failed during status update", zap.Error(werr))
			}
		}
	}

	if updated == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	return updated, nil
}

// applyRecord syncs a remote-authoritative record into the live list and the
// durable cache.
func (s *DefaultBookingService) applyRecord(ctx context.Context, userID string, rec models.BookingRecord) {
	for i := range s.live {
		if s.live[i].ID == rec.ID {
			s.live[i] = rec
		}
	}
	locals, derr := s.Durable.GetAll(ctx, userID)
	if derr != nil {
		s.Logger.Warn("durable cache read failed during sync", zap.Error(derr))
		return
	}
	changed := false
	for i := range locals {
		if locals[i].ID == rec.ID {
			locals[i] = rec
			changed = true
		}
	}
	if changed {
		if werr := s.Durable.SetAll(ctx, userID, locals); werr != nil {
			s.Logger.Warn("durable cache write failed during sync", zap.Error(werr))
		}
	}
}

func (s *DefaultBookingService) findLive(id string) *models.BookingRecord {
	for i := range s.live {
		if s.live[i].ID == id {
			rec := s.live[i]
			return &rec
		}
	}
	return nil
}

func (s *DefaultBookingService) replaceLive(userID string, records []models.BookingRecord) {
	kept := s.live[:0]
	for _, rec := range s.live {
		if rec.UserID != userID {
			kept = append(kept, rec)
		}
	}
	s.live = append(kept, records...)
}

func (s *DefaultBookingService) cacheFingerprint(ctx context.Context, fp string, rec models.BookingRecord) {
	if err := s.Session.Set(ctx, fp, rec); err != nil {
		s.Logger.Warn("session cache write failed", zap.String("fingerprint", fp), zap.Error(err))
	}
}

func (s *DefaultBookingService) appendDurable(ctx context.Context, userID string, rec models.BookingRecord) {
	locals, err := s.Durable.GetAll(ctx, userID)
	if err != nil {
		s.Logger.Warn("durable cache read failed, writing single record", zap.Error(err))
		locals = nil
	}
	locals = append(locals, rec)
	if err := s.Durable.SetAll(ctx, userID, locals); err != nil {
		s.Logger.Error("durable cache write failed, fallback record not persisted", zap.Error(err))
	}
}

// newLocalRecord synthesizes a fallback booking from an intent. Fallbacks are
// born confirmed so the storefront never blocks on backend unavailability.
func newLocalRecord(intent models.BookingIntent) models.BookingRecord {
	now := time.Now().UTC()
	return models.BookingRecord{
		ID:              models.LocalIDPrefix + uuid.New().String(),
		UserID:          intent.UserID,
		CarID:           intent.CarID,
		StartDate:       intent.StartDate,
		EndDate:         intent.EndDate,
		TotalDays:       intent.TotalDays,
		PickupLocation:  intent.PickupLocation,
		DropoffLocation: intent.DropoffLocation,
		Options:         intent.Options,
		OptionsPrice:    intent.OptionsPrice,
		TotalPrice:      intent.TotalPrice,
		Status:          models.BookingConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
