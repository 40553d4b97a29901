package app

import (
	"warehouse/packages/common/config"
	"warehouse/packages/common/logger"
	"warehouse/packages/infrastructure/DB"
	"warehouse/packages/infrastructure/cache"
	"warehouse/packages/presentation/api/http/router"

	"github.com/labstack/echo/v4"
)

func StartInit() {
	// All init logs will be shown anyway
	if err := logger.Default.NewForwarding(logger.Stdout); err != nil {
		panic(err.Error())
	}
}

func EndInit() {
	if !config.App.ShowLogs && !*Args.ShowLogs {
		if err := logger.Default.RemoveForwarding(logger.Stdout); err != nil {
			panic(err.Error())
		}
	}
}

func InitDefault() {
	config.Init(*Args.ConfigPath)

	if *Args.Debug {
		config.Debug.Enabled = true
	}

	logger.Debug.Store(config.Debug.Enabled)
	logger.Trace.Store(config.App.TraceLogsEnabled || *Args.TraceLogs)

	if err := logger.Default.Start(config.App.LogsDir); err != nil {
		appLogger.Fatal("Failed to start logger", err.Error(), nil)
	}
}

func InitConnections() {
	appLogger.Info("Initializing connections...", nil)

	cache.Client.Connect()
	DB.Database.Connect()

	appLogger.Info("Initializing connections: OK", nil)
}

func InitRouter() *echo.Echo {
	appLogger.Info("Initializing router...", nil)

	Router := router.Create(DB.Database)

	appLogger.Info("Initializing router: OK", nil)

	return Router
}
