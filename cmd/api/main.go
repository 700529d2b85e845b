package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/cache"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/config"
	dbpkg "github.com/BruksfildServices01/sorriso-perfeito/internal/db"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/routes"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/scheduler"
)

func main() {
	cfg := config.Load()
	log := setupLogger(cfg.LogLevel)

	ctx := context.Background()

	// ------------------------------
	// Database (database mode only)
	// ------------------------------
	var db *gorm.DB
	if cfg.UsesDatabase() {
		var err error
		db, err = dbpkg.NewDB(cfg.DBUrl, log)
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
	}

	// ------------------------------
	// Session store
	// ------------------------------
	var store scheduler.Store = scheduler.NewMemoryStore(cfg.SessionTTL)
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to Redis: %v", err)
		}
		defer client.Close()
		store = scheduler.NewRedisStore(client, cfg.SessionTTL)
		log.Info("Redis connected successfully")
	} else {
		log.Warn("REDIS_URL not set, scheduling sessions are kept in memory")
	}

	tr, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		log.Fatalf("failed to load translations: %v", err)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	flushAudit, err := routes.RegisterRoutes(r, routes.Deps{
		Config:     cfg,
		Log:        log,
		DB:         db,
		Store:      store,
		Translator: tr,
	})
	if err != nil {
		log.Fatalf("failed to register routes: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":         cfg.Addr(),
			"booking_mode": cfg.BookingMode,
			"timezone":     cfg.ClinicTimezone,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	flushAudit()

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	log.Info("server shutdown complete")
}

func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
