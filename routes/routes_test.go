package routes

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"crownbeauty/handlers"
	"crownbeauty/services/scene"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	hb := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(nil, logger),
		Content: handlers.NewContentHandler(nil, "https://crownnails.co.nz", logger),
		Scene:   handlers.NewSceneHandler(scene.NewHandModel(filepath.Join(t.TempDir(), "none.glb")), 0, nil, logger, nil),
	}

	r := gin.New()
	RegisterRoutes(r, hb, Options{AllowedOrigins: []string{"https://crownnails.co.nz"}, MaxRequestsPerMin: 60, Logger: logger})

	registered := map[string]bool{}
	for _, info := range r.Routes() {
		registered[info.Method+" "+info.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"GET /metrics",
		"GET /robots.txt",
		"GET /sitemap.xml",
		"GET /api/content/site",
		"GET /api/content/categories",
		"GET /api/content/testimonials",
		"GET /api/content/gallery",
		"GET /api/content/structured-data",
		"GET /api/booking/options",
		"POST /api/booking/session",
		"GET /api/booking/session/:sessionID",
		"DELETE /api/booking/session/:sessionID",
		"POST /api/booking/session/:sessionID/events",
		"POST /api/booking/session/:sessionID/submit",
		"POST /api/booking/session/:sessionID/reset",
		"GET /api/scene/ws",
		"GET /api/scene/keyframes",
		"GET /api/scene/pose",
		"GET /api/scene/model",
	} {
		assert.True(t, registered[want], want)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	req.Header.Set("Origin", "https://crownnails.co.nz")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://crownnails.co.nz", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAllowsAny(t *testing.T) {
	assert.True(t, allowsAny(nil))
	assert.True(t, allowsAny([]string{"https://a.example", "*"}))
	assert.False(t, allowsAny([]string{"https://a.example"}))
}

func TestRegisterRoutesIgnoresForwardedForWithoutTrustedProxies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	hb := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(nil, logger),
		Content: handlers.NewContentHandler(nil, "https://crownnails.co.nz", logger),
		Scene:   handlers.NewSceneHandler(scene.NewHandModel(filepath.Join(t.TempDir(), "none.glb")), 0, nil, logger, nil),
	}
	r := gin.New()
	RegisterRoutes(r, hb, Options{MaxRequestsPerMin: 4, Logger: logger})

	codes := make([]int, 0, 3)
	for _, forwarded := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		req.Header.Set("X-Forwarded-For", forwarded)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}
