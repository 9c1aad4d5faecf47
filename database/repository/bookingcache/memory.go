package bookingcache

import (
	"context"
	"sync"

	"drivio/models"
)

// MemorySessionCache is an in-process SessionCache used in tests and as a
// last-ditch stand-in when redis is not configured.
type MemorySessionCache struct {
	mu      sync.Mutex
	entries map[string]models.BookingRecord
}

func NewMemorySessionCache() *MemorySessionCache {
	return &MemorySessionCache{entries: make(map[string]models.BookingRecord)}
}

func (c *MemorySessionCache) Get(_ context.Context, fingerprint string) (*models.BookingRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.entries[fingerprint]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (c *MemorySessionCache) Set(_ context.Context, fingerprint string, record models.BookingRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fingerprint] = record
	return nil
}

func (c *MemorySessionCache) Delete(_ context.Context, fingerprint string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, fingerprint)
	return nil
}

// MemoryDurableCache is an in-process DurableCache keyed by user id.
type MemoryDurableCache struct {
	mu     sync.Mutex
	byUser map[string][]models.BookingRecord
}

func NewMemoryDurableCache() *MemoryDurableCache {
	return &MemoryDurableCache{byUser: make(map[string][]models.BookingRecord)}
}

func (c *MemoryDurableCache) GetAll(_ context.Context, userID string) ([]models.BookingRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := make([]models.BookingRecord, len(c.byUser[userID]))
	copy(records, c.byUser[userID])
	return records, nil
}

func (c *MemoryDurableCache) SetAll(_ context.Context, userID string, records []models.BookingRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := make([]models.BookingRecord, len(records))
	copy(stored, records)
	c.byUser[userID] = stored
	return nil
}
