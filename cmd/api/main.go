package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/salamtec/inventory-service/config"
	authH "github.com/salamtec/inventory-service/internal/auth/handler"
	authRepoPkg "github.com/salamtec/inventory-service/internal/auth/repository"
	authUCPkg "github.com/salamtec/inventory-service/internal/auth/usecase"
	ledgerH "github.com/salamtec/inventory-service/internal/ledger/handler"
	ledgerRepoPkg "github.com/salamtec/inventory-service/internal/ledger/repository"
	ledgerUCPkg "github.com/salamtec/inventory-service/internal/ledger/usecase"
	notifH "github.com/salamtec/inventory-service/internal/notification/handler"
	notifRepoPkg "github.com/salamtec/inventory-service/internal/notification/repository"
	notifUCPkg "github.com/salamtec/inventory-service/internal/notification/usecase"
	reportH "github.com/salamtec/inventory-service/internal/report/handler"
	reportUCPkg "github.com/salamtec/inventory-service/internal/report/usecase"
	"github.com/salamtec/inventory-service/internal/server"
	"github.com/salamtec/inventory-service/internal/storage"
	"github.com/salamtec/inventory-service/internal/storage/jsonfile"
	"github.com/salamtec/inventory-service/internal/storage/sqlite"
	"github.com/salamtec/inventory-service/pkg/logger"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Open Document Store
	var (
		store storage.Store
		err   error
	)
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err = sqlite.New(cfg.Storage.SQLitePath, cfg.Storage.LockTimeout)
	case "jsonfile":
		store, err = jsonfile.New(cfg.Storage.DataDir, cfg.Storage.LockTimeout)
	default:
		log.Fatalf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		appLogger.Fatal("Could not open document store", zap.Error(err))
	}
	defer store.Close()
	appLogger.Info("Document store ready", zap.String("driver", cfg.Storage.Driver))

	// 4. Initialize Repositories
	ledgerRepo := ledgerRepoPkg.NewDocRepository(store)
	notifRepo := notifRepoPkg.NewDocRepository(store)
	authRepo := authRepoPkg.NewDocRepository(store)

	// 5. Initialize UseCases
	notifUC := notifUCPkg.NewNotificationUseCase(notifRepo, appLogger)
	ledgerUC := ledgerUCPkg.NewLedgerUseCase(ledgerRepo, notifUC, appLogger)
	reportUC := reportUCPkg.NewReportUseCase(ledgerRepo, appLogger)
	authUC := authUCPkg.NewAuthUseCase(authRepo, appLogger, cfg.JWT.SecretKey, cfg.JWT.TokenTTL)

	// 6. Initialize Handlers and Router
	router := server.NewRouter(server.RouterConfig{
		AppEnv:              cfg.Server.AppEnv,
		JWTSecret:           cfg.JWT.SecretKey,
		AuthHandler:         authH.NewAuthHandler(authUC, appLogger),
		StockHandler:        ledgerH.NewStockHandler(ledgerUC, appLogger),
		ReportHandler:       reportH.NewReportHandler(reportUC, appLogger),
		NotificationHandler: notifH.NewNotificationHandler(notifUC, appLogger),
	})

	srv := &http.Server{
		Addr:              cfg.Server.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", cfg.Server.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("server shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
