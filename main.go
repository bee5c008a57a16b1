// File: crownbeauty/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crownbeauty/config"
	"crownbeauty/cron"
	"crownbeauty/database"
	contentRepo "crownbeauty/database/repository/content"
	"crownbeauty/handlers"
	"crownbeauty/routes"
	"crownbeauty/services/booking"
	"crownbeauty/services/content"
	"crownbeauty/services/scene"
	"crownbeauty/services/storage"
	"crownbeauty/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	metrics := utils.GetMetrics()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.InitRedis()
	if err := database.InitDB(logger); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// repositories.
	repo := contentRepo.NewMongoContentRepo(database.Database())
	if err := repo.EnsureIndexes(); err != nil {
		logger.Warn("main: failed to ensure content indexes", zap.Error(err))
	}

	// services.
	var media storage.MediaService
	if cfg.CloudinaryCloudName != "" {
		cld, err := storage.NewCloudinaryMediaService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary media service: %v", err)
		}
		media = cld
	} else {
		logger.Info("main: Cloudinary not configured, serving gallery from the site")
		media = storage.StaticMediaService{BaseURL: cfg.SiteURL}
	}

	contentService := content.NewContentService(repo, utils.GetCacheClient(), cfg.ContentCacheTTL(),
		media, cfg.SiteURL, utils.ComponentLogger("content"), metrics)
	if cfg.SeedContent {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := contentService.SeedDefaults(ctx); err != nil {
			logger.Error("main: failed to seed default content", zap.Error(err))
		}
		cancel()
	}

	var (
		sink        booking.RequestSink
		queueClient *asynq.Client
		worker      *asynq.Server
	)
	switch cfg.BookingSink {
	case "queue":
		queueClient = asynq.NewClient(cron.QueueRedisOpt())
		sink = &booking.QueueSink{Client: queueClient, Logger: logger}
		worker = cron.InitBookingRequestWorker(utils.ComponentLogger("worker"), metrics)
	default:
		sink = &booking.LogSink{Logger: logger}
	}
	logger.Info("main: booking requests go to sink", zap.String("sink", sink.Name()))

	wizardConfig := booking.DefaultWizardConfig()
	if cfg.CurrencySymbol != "" {
		wizardConfig.CurrencySymbol = cfg.CurrencySymbol
	}
	bookingService := booking.NewBookingSessionService(utils.GetSessionClient(), contentService, wizardConfig,
		sink, cfg.SessionTTL(), utils.ComponentLogger("booking"), metrics)

	handModel := scene.NewHandModel(cfg.HandModelPath)
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Content: handlers.NewContentHandler(contentService, cfg.SiteURL, logger),
		Scene:   handlers.NewSceneHandler(handModel, cfg.SceneFrameRate, cfg.Origins(), utils.ComponentLogger("scene"), metrics),
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.HealthCheckInterval,
		[]*redis.Client{utils.GetSessionClient(), utils.GetCacheClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	routes.RegisterRoutes(router, handlerBundle, routes.Options{
		AllowedOrigins:    cfg.Origins(),
		TrustedProxies:    cfg.TrustedProxyList(),
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
		Logger:            logger,
	})

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	stopMonitor()
	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}
	utils.CloseRedis()

	logger.Sugar().Info("main: server stopped gracefully")
	_ = logger.Sync()
}
