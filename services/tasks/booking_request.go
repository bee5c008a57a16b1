package tasks

import (
	"encoding/json"
	"time"

	"crownbeauty/models"

	"github.com/hibiken/asynq"
)

const TypeBookingRequest = "booking:request"

// BookingRequestQueue is the asynq queue booking requests travel on.
const BookingRequestQueue = "bookings"

func NewBookingRequestTask(payload models.BookingRequestPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingRequest, b)
	opts := []asynq.Option{
		asynq.Queue(BookingRequestQueue),
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	// The reference doubles as task id so a retried submit never queues twice.
	if ref := payload.Summary.Reference; ref != "" {
		opts = append(opts, asynq.TaskID(ref))
	}

	return task, opts, nil
}
