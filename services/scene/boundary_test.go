package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsolate(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	assert.True(t, Isolate(logger, "hand", func() error { return nil }))
	assert.False(t, Isolate(logger, "hand", func() error { return ErrAssetUnavailable }))
	assert.False(t, Isolate(logger, "hand", func() error { panic("webgl context lost") }))
	assert.False(t, Isolate(nil, "hand", func() error { return errors.New("boom") }))

	assert.Equal(t, 1, logs.FilterMessage("scene component disabled").Len())
	assert.Equal(t, 1, logs.FilterMessage("scene component panicked").Len())
}
