package routes

import (
	"time"

	"crownbeauty/handlers"
	"crownbeauty/middleware"
	"crownbeauty/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options carries the router settings taken from config.
type Options struct {
	AllowedOrigins    []string
	TrustedProxies    []string
	MaxRequestsPerMin int
	Logger            *zap.Logger
}

// RegisterHealthRoute registers the health and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterContentRoutes registers the landing page content and crawler files.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/robots.txt", hb.Content.GetRobots)
	r.GET("/sitemap.xml", hb.Content.GetSitemap)

	contentGroup := r.Group("/api/content")
	{
		contentGroup.GET("/site", hb.Content.GetSiteSettings)
		contentGroup.GET("/categories", hb.Content.GetServiceCategories)
		contentGroup.GET("/testimonials", hb.Content.GetTestimonials)
		contentGroup.GET("/gallery", hb.Content.GetGallery)
		contentGroup.GET("/structured-data", hb.Content.GetStructuredData)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/options", hb.Booking.GetOptions)
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		bookingGroup.POST("/session/:sessionID/events", hb.Booking.ApplyEvent)
		bookingGroup.POST("/session/:sessionID/submit", hb.Booking.Submit)
		bookingGroup.POST("/session/:sessionID/reset", hb.Booking.Reset)
	}
}

// RegisterSceneRoutes registers the hand scene endpoints.
func RegisterSceneRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sceneGroup := r.Group("/api/scene")
	{
		sceneGroup.GET("/ws", hb.Scene.ServeWS)
		sceneGroup.GET("/keyframes", hb.Scene.GetKeyframes)
		sceneGroup.GET("/pose", hb.Scene.GetPose)
		sceneGroup.GET("/model", hb.Scene.GetModel)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = utils.GetLogger()
	}

	// Forwarding headers only name the client when they come from a trusted proxy.
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		logger.Warn("invalid trusted proxies, trusting none", zap.Strings("proxies", opts.TrustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if allowsAny(opts.AllowedOrigins) {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = opts.AllowedOrigins
	}
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestLogger(logger))
	r.Use(utils.ErrorHandler())
	if opts.MaxRequestsPerMin > 0 {
		r.Use(middleware.RateLimitMiddleware(opts.MaxRequestsPerMin))
	}

	RegisterHealthRoute(r)
	RegisterContentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSceneRoutes(r, hb)
}

func allowsAny(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
