package handler

import (
	"task_tracker/internal/middleware"
	"task_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterConfig carries everything NewRouter wires together. DB and Registry
// are optional; without them /health and /metrics are not mounted.
type RouterConfig struct {
	AuthService service.AuthService
	TaskService service.TaskService
	DB          Pinger
	Registry    *prometheus.Registry
	Log         *zap.Logger
}

// NewRouter builds the gin engine with middleware and all routes under /api/v1.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(cfg.Log))
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS())

	if cfg.Registry != nil {
		metrics := middleware.NewMetrics(cfg.Registry)
		router.Use(metrics.Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}
	if cfg.DB != nil {
		router.GET("/health", NewHealthHandler(cfg.DB, cfg.Log).Health)
	}

	authHandler := NewAuthHandler(cfg.AuthService, cfg.Log)
	taskHandler := NewTaskHandler(cfg.TaskService, cfg.Log)

	jwtAuthMW := middleware.JWTAuthMiddleware(cfg.AuthService, cfg.Log)
	instructorMW := middleware.RequireInstructor()

	apiGroup := router.Group("/api/v1")
	authHandler.RegisterAuthRoutes(apiGroup)
	taskHandler.RegisterTaskRoutes(apiGroup, jwtAuthMW, instructorMW)

	return router
}
