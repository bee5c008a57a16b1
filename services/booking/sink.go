package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"crownbeauty/models"
	"crownbeauty/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RequestSink receives finalized booking requests. Transmitting them to the
// salon is the sink's job; the wizard only collects.
type RequestSink interface {
	Name() string
	Deliver(ctx context.Context, sessionID string, summary models.BookingSummary) error
}

// LogSink records the request in the service log and nothing else.
type LogSink struct {
	Logger *zap.Logger
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Deliver(_ context.Context, sessionID string, summary models.BookingSummary) error {
	s.Logger.Info("booking request received",
		zap.String("sessionID", sessionID),
		zap.String("reference", summary.Reference),
		zap.String("service", summary.ServiceName),
		zap.Int("day", summary.Day),
		zap.String("time", summary.Time),
		zap.String("technician", summary.Technician),
		zap.Int("total", summary.Total),
	)
	return nil
}

// Enqueuer is the subset of *asynq.Client the queue sink needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueSink hands the request to the booking-request worker through asynq.
type QueueSink struct {
	Client Enqueuer
	Logger *zap.Logger
}

func (s *QueueSink) Name() string { return "queue" }

func (s *QueueSink) Deliver(ctx context.Context, sessionID string, summary models.BookingSummary) error {
	task, opts, err := tasks.NewBookingRequestTask(models.BookingRequestPayload{
		SessionID: sessionID,
		Summary:   summary,
	})
	if err != nil {
		return fmt.Errorf("failed to build booking request task: %w", err)
	}
	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue booking request: %w", err)
	}
	s.Logger.Debug("booking request queued",
		zap.String("taskID", info.ID),
		zap.String("reference", summary.Reference),
	)
	return nil
}

// DecodeBookingRequest unpacks a queued booking request payload.
func DecodeBookingRequest(data []byte) (models.BookingRequestPayload, error) {
	var p models.BookingRequestPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("invalid booking request payload: %w", err)
	}
	return p, nil
}
