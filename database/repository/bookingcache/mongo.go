package bookingcache

import (
	"context"
	"fmt"

	"drivio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDurableCache persists fallback booking records in a "user_bookings"
// collection, one document per record.
type MongoDurableCache struct {
	Coll *mongo.Collection
}

// NewMongoDurableCache returns a durable cache over the user_bookings
// collection of the given database.
func NewMongoDurableCache(db *mongo.Database) *MongoDurableCache {
	return &MongoDurableCache{Coll: db.Collection("user_bookings")}
}

func (c *MongoDurableCache) GetAll(ctx context.Context, userID string) ([]models.BookingRecord, error) {
	cursor, err := c.Coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("durable cache query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("durable cache decode failed: %w", err)
	}
	return records, nil
}

func (c *MongoDurableCache) SetAll(ctx context.Context, userID string, records []models.BookingRecord) error {
	if _, err := c.Coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("durable cache clear failed: %w", err)
	}
	if len(records) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(records))
	for _, rec := range records {
		docs = append(docs, rec)
	}
	if _, err := c.Coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("durable cache write failed: %w", err)
	}
	return nil
}
