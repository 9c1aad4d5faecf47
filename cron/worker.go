package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"drivio/config"
	"drivio/database/repository/bookingcache"
	"drivio/models"
	"drivio/services/fleet"
	"drivio/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReconcileWorker runs the async reconciliation worker in background. It
// replays local fallback bookings against the remote API once it is reachable
// again; remote always wins for records that exist in both sources.
func InitReconcileWorker(fleetAPI fleet.API, durable bookingcache.DurableCache) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReconcile, handleReconcileTask(fleetAPI, durable))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReconcileTask(fleetAPI fleet.API, durable bookingcache.DurableCache) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReconcilePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReconcileHandler] invalid payload: %v", err)
			return err
		}

		records, err := durable.GetAll(ctx, p.UserID)
		if err != nil {
			return fmt.Errorf("durable cache read failed: %w", err)
		}

		var replayed, failed int
		changed := false
		for i := range records {
			rec := records[i]
			if !rec.IsLocal() || rec.Status == models.BookingCancelled {
				continue
			}
			remote, cerr := fleetAPI.CreateBooking(ctx, intentFromRecord(rec))
			if cerr != nil || remote == nil {
				failed++
				continue
			}
			// Remote record replaces the local one.
			records[i] = *remote
			changed = true
			replayed++
		}

		if changed {
			if werr := durable.SetAll(ctx, p.UserID, records); werr != nil {
				return fmt.Errorf("durable cache write failed: %w", werr)
			}
		}

		log.Printf("[ReconcileHandler] user=%s replayed=%d failed=%d", p.UserID, replayed, failed)
		if failed > 0 {
			// Let asynq retry the remainder later.
			return fmt.Errorf("%d fallback bookings still unreconciled", failed)
		}
		return nil
	}
}

func intentFromRecord(rec models.BookingRecord) models.BookingIntent {
	return models.BookingIntent{
		UserID:          rec.UserID,
		CarID:           rec.CarID,
		StartDate:       rec.StartDate,
		EndDate:         rec.EndDate,
		TotalDays:       rec.TotalDays,
		PickupLocation:  rec.PickupLocation,
		DropoffLocation: rec.DropoffLocation,
		Options:         rec.Options,
		OptionsPrice:    rec.OptionsPrice,
		TotalPrice:      rec.TotalPrice,
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReconcileWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
