package scene

import (
	"fmt"

	"go.uber.org/zap"
)

// Isolate runs fn and contains any failure it produces, panics included.
// It returns false when the caller should render nothing for component.
func Isolate(logger *zap.Logger, component string, fn func() error) (ok bool) {
	if logger == nil {
		logger = zap.NewNop()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("scene component panicked",
				zap.String("component", component),
				zap.String("panic", fmt.Sprint(r)),
			)
			ok = false
		}
	}()

	if err := fn(); err != nil {
		logger.Warn("scene component disabled",
			zap.String("component", component),
			zap.Error(err),
		)
		return false
	}
	return true
}
