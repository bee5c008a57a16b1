package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newEngine returns an engine that trusts only the given proxies.
func newEngine(t *testing.T, trusted []string) *gin.Engine {
	t.Helper()
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(trusted))
	return r
}

// request sends GET /ping from the socket address remote, with an optional
// X-Forwarded-For header.
func request(r *gin.Engine, remote, forwarded string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remote
	if forwarded != "" {
		req.Header.Set("X-Forwarded-For", forwarded)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(t, nil)
	r.Use(RateLimitMiddleware(4))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, request(r, "10.0.0.1:5000", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(r, "10.0.0.1:5001", "").Code)
	assert.Equal(t, http.StatusOK, request(r, "10.0.0.2:5000", "").Code, "limits are per client")
}

func TestRateLimitIgnoresRotatedForwardedFor(t *testing.T) {
	r := newEngine(t, nil)
	r.Use(RateLimitMiddleware(4))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	ok, limited := 0, 0
	for i := 0; i < 50; i++ {
		w := request(r, "203.0.113.9:1234", fmt.Sprintf("198.51.100.%d", i))
		if w.Code == http.StatusOK {
			ok++
		} else {
			limited++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 49, limited)
}

func TestRateLimitHonoursTrustedProxy(t *testing.T) {
	r := newEngine(t, []string{"10.0.0.0/8"})
	r.Use(RateLimitMiddleware(4))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, request(r, "10.0.0.1:5000", "198.51.100.1").Code)
	assert.Equal(t, http.StatusOK, request(r, "10.0.0.1:5000", "198.51.100.2").Code, "the proxy forwards distinct clients")
	assert.Equal(t, http.StatusTooManyRequests, request(r, "10.0.0.1:5000", "198.51.100.1").Code)
}

func TestRateLimiterStoreEvictsIdleClients(t *testing.T) {
	clock := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(60)
	store.now = func() time.Time { return clock }
	store.lastSweep = clock

	store.getLimiter("198.51.100.1")
	store.getLimiter("198.51.100.2")
	assert.Equal(t, 2, store.size())

	clock = clock.Add(limiterIdleTTL / 2)
	store.getLimiter("198.51.100.2")

	clock = clock.Add(limiterIdleTTL / 2)
	store.getLimiter("198.51.100.3")
	assert.Equal(t, 2, store.size(), "the client idle for the full TTL is dropped")
}

func TestRateLimiterStoreIsBounded(t *testing.T) {
	clock := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(60)
	store.now = func() time.Time { return clock }
	store.lastSweep = clock
	store.maxSize = 3

	first := store.getLimiter("198.51.100.1")
	for i := 2; i <= 10; i++ {
		clock = clock.Add(time.Second)
		store.getLimiter(fmt.Sprintf("198.51.100.%d", i))
	}
	assert.Equal(t, 3, store.size())

	clock = clock.Add(time.Second)
	assert.NotSame(t, first, store.getLimiter("198.51.100.1"), "the oldest client was evicted")
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name    string
		trusted []string
		headers map[string]string
		remote  string
		want    string
	}{
		{"untrusted forwarded", nil, map[string]string{"X-Forwarded-For": "203.0.113.7"}, "192.0.2.9:4431", "192.0.2.9"},
		{"untrusted real ip", nil, map[string]string{"X-Real-IP": "198.51.100.4"}, "192.0.2.9:4431", "192.0.2.9"},
		{"trusted forwarded", []string{"10.0.0.0/8"}, map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "10.0.0.1:5000", "203.0.113.7"},
		{"ipv6 remote", nil, nil, "[2001:db8::1]:443", "2001:db8::1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, engine := gin.CreateTestContext(w)
			require.NoError(t, engine.SetTrustedProxies(tc.trusted))
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, getClientIP(c))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newEngine(t, nil)
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	request(r, "10.0.0.1:5000", "")
	request(r, "10.0.0.1:5000", "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 2, logs.FilterMessage("request served").Len())
	assert.Equal(t, 1, logs.FilterMessage("request rejected").Len())
}
