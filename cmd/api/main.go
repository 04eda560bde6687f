package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"leadcrm/internal/config"
	"leadcrm/internal/database"
	"leadcrm/internal/middleware"
	"leadcrm/internal/modules/auth"
	"leadcrm/internal/modules/lead"
	"leadcrm/internal/modules/note"
	"leadcrm/internal/modules/notification"
	jwtsvc "leadcrm/internal/pkg/jwt"
	"leadcrm/internal/pkg/logger"
	"leadcrm/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("APP_CONFIG"))
	if err != nil {
		panic(err)
	}

	log, syncLog := logging(cfg)
	defer syncLog()

	db, err := database.Connect(cfg.DB.DSN)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWT.Secret, cfg.TokenTTL())

	hub := notification.NewHub()

	notifService := notification.NewService(notifRepo, userRepo, hub)
	notifHandler := notification.NewHandler(notifService)
	wsHandler := notification.NewWSHandler(hub, j)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	leadService := lead.NewService(leadRepo, notifService, log)
	leadHandler := lead.NewHandler(leadService)

	noteService := note.NewService(noteRepo, leadRepo)
	noteHandler := note.NewHandler(noteService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		authHandler.RegisterPublicRoutes(authGroup, middleware.RateLimitPerIP(rate.Limit(1), 5))

		authProtected := api.Group("/auth")
		authProtected.Use(middleware.Auth(j))
		authHandler.RegisterProtectedRoutes(authProtected)

		authAdmin := api.Group("/auth")
		authAdmin.Use(middleware.Auth(j), middleware.AdminOnly())
		authHandler.RegisterAdminRoutes(authAdmin)

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			leadHandler.RegisterRoutes(protected)
			noteHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
		}
	}

	r.GET("/ws/notifications", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.App.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.App.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr()), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func logging(cfg *config.Config) (*zap.Logger, func()) {
	return logger.Build(logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Enable:     cfg.Log.File != "",
			Filename:   cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		},
	})
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		c.AllowAllOrigins = true
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "X-Request-ID")
	return c
}
