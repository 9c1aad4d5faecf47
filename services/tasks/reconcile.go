package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingReconcile = "booking:reconcile"

// ReconcilePayload identifies whose fallback bookings to replay.
type ReconcilePayload struct {
	UserID string `json:"user_id"`
}

// NewReconcileTask builds a reconciliation task scheduled after the given
// delay, giving the remote API a window to come back before the first replay.
func NewReconcileTask(userID string, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReconcilePayload{UserID: userID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReconcile, b)
	opts := []asynq.Option{asynq.ProcessIn(delay), asynq.MaxRetry(10)}

	return task, opts, nil
}

// Enqueuer schedules reconciliation tasks on the asynq queue. It satisfies
// the booking service's ReconcileEnqueuer.
type Enqueuer struct {
	Client *asynq.Client
	Delay  time.Duration
}

func NewEnqueuer(client *asynq.Client, delay time.Duration) *Enqueuer {
	return &Enqueuer{Client: client, Delay: delay}
}

func (e *Enqueuer) EnqueueReconcile(userID string) error {
	task, opts, err := NewReconcileTask(userID, e.Delay)
	if err != nil {
		return err
	}
	_, err = e.Client.Enqueue(task, opts...)
	return err
}
