package handler

import (
	"log/slog"

	"github.com/flipword/api/internal/auth"
	"github.com/flipword/api/internal/middleware"
	"github.com/flipword/api/internal/ratelimit"
	"github.com/flipword/api/internal/render"
	"github.com/flipword/api/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries everything the HTTP surface needs. LoginLimiter may
// be nil. The revalidate endpoint is only mounted when RevalidateSecret is
// set.
type RouterConfig struct {
	Repo         TopicsRepository
	Pages        *render.PageCache
	Verifier     *auth.CredentialVerifier
	Sessions     *auth.SessionService
	Validator    *validator.Validator
	LoginLimiter *ratelimit.Limiter
	SecureCookie bool
	// RevalidateSecret guards POST /api/revalidate.
	RevalidateSecret string
	Logger           *slog.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/health", Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	topicHandler := NewTopicHandler(cfg.Repo, cfg.Pages, cfg.Logger)
	authHandler := NewAuthHandler(cfg.Verifier, cfg.Sessions, cfg.Validator, cfg.SecureCookie, cfg.Logger)
	adminHandler := NewAdminHandler(cfg.Repo, cfg.Validator, cfg.Logger)
	exportHandler := NewExportHandler(cfg.Repo, cfg.Logger)

	api := r.Group("/api")
	{
		api.GET("/topics", topicHandler.List)
		api.GET("/topics/:slug", topicHandler.Get)

		api.POST("/admin/login", middleware.RateLimit(cfg.LoginLimiter, "login", cfg.Logger), authHandler.Login)
		api.POST("/admin/logout", authHandler.Logout)

		if cfg.RevalidateSecret != "" {
			api.POST("/revalidate", NewRevalidateHandler(cfg.Pages, cfg.RevalidateSecret, cfg.Logger).Revalidate)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminMiddleware(cfg.Sessions, cfg.Logger))
		{
			admin.GET("/session", authHandler.Session)

			admin.GET("/topics", adminHandler.ListTopics)
			admin.POST("/topics", adminHandler.UpsertTopic)
			admin.PUT("/topics", adminHandler.ReplaceDocument)
			admin.GET("/topics/:slug", adminHandler.GetTopic)
			admin.DELETE("/topics/:slug", adminHandler.DeleteTopic)

			admin.GET("/export", exportHandler.Export)
		}
	}

	return r
}
