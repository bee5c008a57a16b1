package middleware

import (
	"github.com/gin-gonic/gin"
)

// getClientIP keys rate limiting and request logs. X-Forwarded-For and
// X-Real-IP are honoured only when the socket peer is a proxy the engine
// trusts (gin.Engine.SetTrustedProxies); otherwise the socket address wins.
func getClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return c.Request.RemoteAddr
}
