package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	orderbookapp "github.com/orderbook/backend/internal/application/orderbook"
	"github.com/orderbook/backend/internal/infrastructure/config"
	"github.com/orderbook/backend/internal/infrastructure/logger"
	"github.com/orderbook/backend/internal/infrastructure/persistence"
	"github.com/orderbook/backend/internal/interfaces/http/handler"
	"github.com/orderbook/backend/internal/interfaces/http/middleware"
	"github.com/orderbook/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting orderbook backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Database.SlowQueryThreshold),
		logger.WithIgnoreRecordNotFoundError(!cfg.Database.LogRecordNotFound),
	)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	dispatchRepo := persistence.NewGormDispatchRepository(db.DB)
	referenceRepo := persistence.NewGormReferenceListRepository(db.DB)

	// Application services
	orderService := orderbookapp.NewOrderService(
		orderRepo, dispatchRepo, referenceRepo,
		cfg.Orderbook.GSTRate, cfg.Orderbook.RecentOrdersLimit,
	)
	dispatchService := orderbookapp.NewDispatchService(orderRepo, dispatchRepo)
	pivotService := orderbookapp.NewPivotService(orderRepo)
	referenceService := orderbookapp.NewReferenceListService(referenceRepo)

	// HTTP handlers
	orderHandler := handler.NewOrderHandler(orderService)
	dispatchHandler := handler.NewDispatchHandler(dispatchService)
	pivotHandler := handler.NewPivotHandler(pivotService)
	referenceHandler := handler.NewReferenceHandler(referenceService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging, CORS
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))

	// Health endpoints live outside the versioned API
	systemHandler.RegisterSystemRoutes(engine)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(orderHandler).
		Register(dispatchHandler).
		Register(pivotHandler).
		Register(referenceHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
