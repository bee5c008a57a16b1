package booking

import (
	"context"
	"errors"
	"testing"

	"crownbeauty/models"
	"crownbeauty/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: tasks.BookingRequestQueue}, nil
}

func TestLogSinkLogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := &LogSink{Logger: zap.New(core)}

	err := sink.Deliver(context.Background(), "s1", models.BookingSummary{Reference: "r1", Total: 95})
	require.NoError(t, err)
	assert.Equal(t, "log", sink.Name())
	assert.Equal(t, 1, logs.FilterMessage("booking request received").Len())
}

func TestQueueSinkEnqueuesDecodablePayload(t *testing.T) {
	enq := &fakeEnqueuer{}
	sink := &QueueSink{Client: enq, Logger: zap.NewNop()}

	err := sink.Deliver(context.Background(), "s1", models.BookingSummary{Reference: "r1", Total: 95})
	require.NoError(t, err)
	require.Len(t, enq.tasks, 1)
	assert.Equal(t, tasks.TypeBookingRequest, enq.tasks[0].Type())

	p, err := DecodeBookingRequest(enq.tasks[0].Payload())
	require.NoError(t, err)
	assert.Equal(t, "s1", p.SessionID)
	assert.Equal(t, 95, p.Summary.Total)
}

func TestQueueSinkWrapsEnqueueError(t *testing.T) {
	boom := errors.New("redis down")
	sink := &QueueSink{Client: &fakeEnqueuer{err: boom}, Logger: zap.NewNop()}

	err := sink.Deliver(context.Background(), "s1", models.BookingSummary{})
	assert.ErrorIs(t, err, boom)
}

func TestDecodeBookingRequestRejectsGarbage(t *testing.T) {
	_, err := DecodeBookingRequest([]byte("not json"))
	assert.Error(t, err)
}
