package main

import (
	"context"
	"flag"
	"log"

	"github.com/flipword/api/internal/app"
	"github.com/flipword/api/internal/auth"
	"github.com/flipword/api/internal/config"
	"github.com/flipword/api/internal/handler"
	"github.com/flipword/api/internal/ratelimit"
	"github.com/flipword/api/internal/render"
	"github.com/flipword/api/internal/store"
	"github.com/flipword/api/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	// Load .env file if exists
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := app.NewLogger(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	if cfg.Admin.JWTSecret == "" {
		log.Printf("Warning: ADMIN_JWT_SECRET is not set, admin login is disabled")
	}
	if cfg.Admin.AllowInsecureDefaultPassword {
		log.Printf("Warning: insecure default admin password is enabled, do not expose this instance")
	}

	if err := validator.RegisterGin(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}
	v, err := validator.New()
	if err != nil {
		log.Fatalf("Failed to build validator: %v", err)
	}

	// Dial up front so the limiter can share a Redis connection. A failed
	// dial leaves the server running from memory.
	connector := app.NewConnector(cfg, logger)
	defer connector.Reset()

	var loginLimiter *ratelimit.Limiter
	if rs, ok := connector.Store(context.Background()).(*store.RedisStore); ok {
		loginLimiter = ratelimit.NewLimiter(ratelimit.NewRedisStorage(rs.Client()), cfg.LoginRateLimit, cfg.LoginRateWindow)
	} else {
		log.Printf("Login rate limiting disabled: backing store is not Redis")
	}

	pages := render.NewPageCache(cfg.PageCacheTTL)
	repo := app.NewRepository(cfg, connector, logger, pages)

	r := handler.NewRouter(handler.RouterConfig{
		Repo:             repo,
		Pages:            pages,
		Verifier:         auth.NewCredentialVerifier(app.Credentials(cfg)),
		Sessions:         auth.NewSessionService(cfg.Admin.JWTSecret),
		Validator:        v,
		LoginLimiter:     loginLimiter,
		SecureCookie:     cfg.IsProduction(),
		RevalidateSecret: cfg.RevalidateSecret,
		Logger:           logger,
	})

	log.Printf("API server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
