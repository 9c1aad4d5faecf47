package booking

import "errors"

// ErrInvalidIdentity is returned when a booking intent is missing the user or
// car identity needed to compute its fingerprint. This is a programmer error,
// not a runtime condition, and is never retried.
var ErrInvalidIdentity = errors.New("booking intent missing user or car identity")

// ErrBookingNotFound is returned by status updates targeting an id that is in
// neither the live list nor the durable cache.
var ErrBookingNotFound = errors.New("booking not found")

// ErrInvalidStatus is returned for status values outside the known lifecycle.
var ErrInvalidStatus = errors.New("unsupported booking status")
