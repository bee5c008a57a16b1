package cron

import (
	"context"
	"fmt"
	"time"

	"crownbeauty/config"
	"crownbeauty/services/booking"
	"crownbeauty/services/tasks"
	"crownbeauty/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection shared by the queue sink and the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitBookingRequestWorker runs the booking request worker in the
// background and returns its server so the caller can shut it down.
func InitBookingRequestWorker(logger *zap.Logger, metrics *utils.Metrics) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				tasks.BookingRequestQueue: 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingRequest, HandleBookingRequest(logger, metrics))

	go func() {
		logger.Info("Starting booking request worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("booking request worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("booking request worker gave up; requests stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleBookingRequest records a queued booking request for the salon's
// inbox. Malformed payloads are dropped without retry.
func HandleBookingRequest(logger *zap.Logger, metrics *utils.Metrics) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := booking.DecodeBookingRequest(task.Payload())
		if err != nil {
			logger.Error("dropping booking request", zap.Error(err))
			metrics.ObserveSubmission("worker", "invalid")
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		s := p.Summary
		logger.Info("booking request for the salon inbox",
			zap.String("reference", s.Reference),
			zap.String("sessionID", p.SessionID),
			zap.String("category", s.CategoryTitle),
			zap.String("service", s.ServiceName),
			zap.Int("day", s.Day),
			zap.String("time", s.Time),
			zap.String("technician", s.Technician),
			zap.Int("addOns", len(s.AddOns)),
			zap.String("total", s.TotalLabel),
			zap.String("contactName", s.Contact.Name),
			zap.String("contactPhone", s.Contact.Phone),
		)
		metrics.ObserveSubmission("worker", "processed")
		return nil
	}
}
