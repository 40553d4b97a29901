package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"warehouse/packages/common/config"
	"warehouse/packages/common/logger"
	"warehouse/packages/infrastructure/DB"
	"warehouse/packages/infrastructure/cache"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

var appLogger = logger.NewSource("APP", logger.Default)

func Start(Router *echo.Echo) {
	stop := make(chan os.Signal, 1)

	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		err := Router.Start(":" + config.HTTP.Port)
		if !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", err.Error(), nil)
		}
	}()

	printAppInfo()

	sig := <-stop

	println()
	appLogger.Info(sig.String()+" signal received, shutting down...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Router.Shutdown(ctx); err != nil {
		appLogger.Error("Failed to stop HTTP server", err.Error(), nil)
	} else {
		appLogger.Info("HTTP server stopped", nil)
	}

	Shutdown()
}

func Shutdown() {
	appLogger.Info("Shutting down...", nil)

	if err := DB.Database.Disconnect(); err != nil {
		appLogger.Error("Failed to disconnect from DB", err.Error(), nil)
	}

	if err := cache.Client.Close(); err != nil {
		appLogger.Error("Failed to disconnect from cache", err.Error(), nil)
	}

	sentry.Flush(2 * time.Second)

	appLogger.Info("Shut down", nil)

	if err := logger.Default.Stop(); err != nil {
		logger.NewSource("APP", logger.Stderr).Error("Failed to stop logger", err.Error(), nil)
	}
}

func printAppInfo() {
	fmt.Print(`
  __      __                _
  \ \    / /_ _ _ _ ___ ___| |_  ___ _  _ ___ ___
   \ \/\/ / _' | '_/ -_)___| ' \/ _ \ || (_-</ -_)
    \_/\_/\__,_|_| \___|   |_||_\___/\_,_/__/\___|

`)

	fmt.Println("  Warehouse operations backend")

	fmt.Printf("  Listening on port: %s\n", config.HTTP.Port)
	fmt.Printf("  Query time zone: %s\n\n", config.Query.TimeZone)

	if config.Debug.Enabled {
		appLogger.Warning("Debug mode enabled.", nil)
		print("\n\n")
	}
}
