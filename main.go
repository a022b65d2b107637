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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/payroll-app/cache"
	"github.com/yeremiapane/payroll-app/config"
	"github.com/yeremiapane/payroll-app/hub"
	"github.com/yeremiapane/payroll-app/models"
	"github.com/yeremiapane/payroll-app/router"
	"github.com/yeremiapane/payroll-app/services"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Warn(".env file not found, using process environment")
	}

	cfg := config.Load()
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if cfg.SkipMigrations {
		utils.InfoLogger.Info("SKIP_MIGRATIONS=true, AutoMigrate skipped")
	} else {
		autoMigrate(db)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	rdb, err := config.ConnectRedis(sigCtx, cfg.RedisAddress)
	if err != nil {
		utils.LogError("main", "main", "ConnectRedis", cfg.RedisAddress, err)
	}
	if rdb == nil {
		utils.InfoLogger.Info("Redis not configured, dashboard cache kept in process")
	}
	store := cache.New(rdb)

	live := hub.New()
	monitor := services.NewDashboardMonitor(services.NewPayrollService(db), live, cfg.DashboardPush)
	if err := monitor.Start(); err != nil {
		utils.LogError("main", "main", "DashboardMonitor.Start", cfg.DashboardPush, err)
	}

	r := router.SetupRouter(db, live, store, router.Options{
		CORSOrigins:     cfg.CORSOrigins,
		DashboardTTL:    cfg.DashboardTTL,
		RateLimitPerSec: cfg.RateLimitPerSec,
		RateLimitBurst:  cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		utils.Info(logrus.Fields{"port": cfg.Port, "driver": cfg.DBDriver}).Info("listening")
		serverErrCh <- srv.ListenAndServe()
	}()

	select {
	case <-sigCtx.Done():
		utils.InfoLogger.Info("shutdown signal received")
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError("main", "main", "ListenAndServe", nil, err)
		}
	}

	shutdown(srv, monitor, live, rdb, db)
}

func autoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(models.All()...); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Info("AutoMigrate completed.")
}

func shutdown(srv *http.Server, monitor *services.DashboardMonitor, live *hub.Hub, rdb *redis.Client, db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	monitor.Stop()
	live.Close()

	if err := srv.Shutdown(ctx); err != nil {
		utils.LogError("main", "shutdown", "http", nil, err)
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			utils.LogError("main", "shutdown", "redis", nil, err)
		}
	}
	if err := config.CloseDB(db); err != nil {
		utils.LogError("main", "shutdown", "database", nil, err)
	}
	utils.InfoLogger.Info("server stopped")
}
