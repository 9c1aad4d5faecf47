package bookingcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"drivio/models"

	"github.com/go-redis/redis/v8"
)

// RedisSessionCache stores fingerprint entries as JSON blobs under
// "booking_{fingerprint}" keys with a TTL.
type RedisSessionCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionCache returns a session cache backed by the given client.
func NewRedisSessionCache(client *redis.Client, ttl time.Duration) *RedisSessionCache {
	return &RedisSessionCache{Client: client, TTL: ttl}
}

func sessionKey(fingerprint string) string {
	return fmt.Sprintf("booking_%s", fingerprint)
}

func (c *RedisSessionCache) Get(ctx context.Context, fingerprint string) (*models.BookingRecord, error) {
	data, err := c.Client.Get(ctx, sessionKey(fingerprint)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session cache get failed: %w", err)
	}
	var rec models.BookingRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("session cache entry corrupt: %w", err)
	}
	return &rec, nil
}

func (c *RedisSessionCache) Set(ctx context.Context, fingerprint string, record models.BookingRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal booking record: %w", err)
	}
	if err := c.Client.Set(ctx, sessionKey(fingerprint), data, c.TTL).Err(); err != nil {
		return fmt.Errorf("session cache set failed: %w", err)
	}
	return nil
}

func (c *RedisSessionCache) Delete(ctx context.Context, fingerprint string) error {
	if err := c.Client.Del(ctx, sessionKey(fingerprint)).Err(); err != nil {
		return fmt.Errorf("session cache delete failed: %w", err)
	}
	return nil
}
