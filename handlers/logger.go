package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLogger returns the logger the request middleware stored in the
// context, or fallback when there is none.
func requestLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	if fallback == nil {
		return zap.NewNop()
	}
	return fallback
}
