package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/study-planner/internal/client"
	"github.com/noah-isme/study-planner/internal/handler"
	"github.com/noah-isme/study-planner/internal/handoff"
	"github.com/noah-isme/study-planner/internal/middleware"
	"github.com/noah-isme/study-planner/internal/service"
	"github.com/noah-isme/study-planner/internal/state"
	"github.com/noah-isme/study-planner/pkg/cache"
	"github.com/noah-isme/study-planner/pkg/config"
	"github.com/noah-isme/study-planner/pkg/logger"
	corsmiddleware "github.com/noah-isme/study-planner/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/study-planner/pkg/middleware/requestid"
	"github.com/noah-isme/study-planner/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "error", err)
	}

	metricsSvc := service.NewMetricsService()
	plannerSvc := service.NewPlannerService(service.PlannerServiceParams{
		Client:  client.New(cfg.Scheduler, logr),
		Store:   state.NewTimetableStore(),
		Inbox:   buildInbox(cfg, logr),
		Files:   exportStore,
		Signer:  storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL),
		Metrics: metricsSvc,
		Logger:  logr,
		Config: service.PlannerConfig{
			APIPrefix:         cfg.APIPrefix,
			DefaultDailyHours: cfg.Planner.DefaultDailyHours,
		},
	})

	plannerHandler := handler.NewPlannerHandler(plannerSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	planner := api.Group("/planner")
	planner.POST("/generate", plannerHandler.Generate)
	planner.POST("/generate/variant", plannerHandler.GenerateVariant)
	planner.POST("/reschedule", plannerHandler.Reschedule)
	planner.POST("/save", plannerHandler.Save)
	planner.POST("/export", plannerHandler.Export)
	planner.GET("/export/:token", plannerHandler.Download)
	planner.POST("/restore", plannerHandler.Restore)
	planner.GET("/views", plannerHandler.Views)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("planner starting", "addr", addr, "env", cfg.Env, "scheduler", cfg.Scheduler.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("planner failed", "error", err)
	}
}

// buildInbox prefers the Redis-backed handoff inbox and falls back to the
// in-memory one when Redis is unreachable, so the planner still runs in a
// bare development environment.
func buildInbox(cfg *config.Config, logr *zap.Logger) handoff.Inbox {
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, handoff inbox runs in-memory", zap.Error(err))
		return handoff.NewMemoryInbox()
	}
	return handoff.NewRedisInbox(redisClient, cfg.Handoff.Key)
}
