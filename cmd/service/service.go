// @title        Expense Tracker API
// @version      1.0
// @description  個人記帳服務的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式為 "Bearer <token>"
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-tracker/internal/api"
	"expense-tracker/internal/cache"
	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/logger"
	"expense-tracker/internal/router"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "expense-tracker/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	notifyContext   = signal.NotifyContext
	exitFunc        = os.Exit
)

// ipExtractor 未設定 proxy 時只看連線來源；否則只採信 proxy 轉發的 X-Forwarded-For
func ipExtractor(trusted []string) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{echo.TrustLoopback(false), echo.TrustLinkLocal(false), echo.TrustPrivateNet(false)}
	for _, cidr := range trusted {
		if _, ipNet, err := net.ParseCIDR(cidr); err == nil {
			opts = append(opts, echo.TrustIPRange(ipNet))
		}
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

// newServer 組裝 echo：中介層順序為 request id → 請求日誌 → recover → CORS
func newServer(cfg *config.Config, log *slog.Logger, db database.DB, rdb cache.Cache) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.IPExtractor = ipExtractor(cfg.TrustedProxies)
	e.Validator = api.NewValidator()
	e.JSONSerializer = api.StrictJSONSerializer{}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logger.RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	router.Setup(e, db, rdb, router.Options{
		LoginRateLimit:  cfg.LoginRateLimit,
		LoginRateWindow: cfg.LoginRateWindow,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

func run() error {
	cfg := loadConfig()
	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Component: logger.ComponentApp})
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := newPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns:        int32(cfg.DBMaxConns),
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	// Redis 為選用；未設定時登入節流與快取健康檢查都會略過
	var rdb cache.Cache
	if cfg.RedisEnabled() {
		client, err := newRedisClient(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer client.Close()
		rdb = client
	} else {
		log.Info("redis not configured, login throttle disabled")
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	e := newServer(cfg, log, db, rdb)

	start := startServer
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr())
		errCh <- start(e, cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", logger.FieldError, err.Error())
		exitFunc(1)
	}
}
