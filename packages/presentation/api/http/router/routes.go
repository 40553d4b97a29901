package router

import (
	"net/http"
	"warehouse/packages/common/config"
	"warehouse/packages/common/logger"
	"warehouse/packages/core/employee"
	"warehouse/packages/core/order"
	"warehouse/packages/core/product"
	"warehouse/packages/infrastructure/cache"
	"warehouse/packages/infrastructure/manager"
	CacheController "warehouse/packages/presentation/api/http/controllers/cache"
	EmployeeController "warehouse/packages/presentation/api/http/controllers/employee"
	HealthController "warehouse/packages/presentation/api/http/controllers/health"
	OrderController "warehouse/packages/presentation/api/http/controllers/order"
	ProductController "warehouse/packages/presentation/api/http/controllers/product"
	mw "warehouse/packages/presentation/api/http/middleware"
	"warehouse/packages/presentation/api/http/request"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var log = logger.NewSource("ROUTER", logger.Default)

const rootPath = ""

type store interface {
	Ping() error
	employee.Repository
	order.Repository
	product.Repository
}

// Returns true if error reporting was enabled.
func initSentry() bool {
	if config.Secret.SentryDSN == "" {
		log.Warning("SENTRY_DSN isn't set, error reporting disabled", nil)
		return false
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.Secret.SentryDSN,
		EnableTracing:    true,
		TracesSampleRate: config.Sentry.TraceSampleRate,
		Debug:            config.Debug.Enabled,
		ServerName:       "warehouse",
		AttachStacktrace: true,
	}); err != nil {
		log.Panic("Sentry initialization failed", err.Error(), nil)
	}

	return true
}

// Config must be initialized before calling this function.
func Create(db store) *echo.Echo {
	loc := config.Query.Location()

	employees := EmployeeController.New(manager.NewEmployee(db, db, loc))
	orders := OrderController.New(manager.NewOrder(db, db, db, loc))
	products := ProductController.New(manager.NewProduct(db))
	health := HealthController.New(db)
	caches := CacheController.New(cache.Client)

	router := echo.New()

	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = handleHttpError
	router.JSONSerializer = serializer{}
	router.Binder = &binder{}

	cors := middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: config.HTTP.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodDelete,
		},
	}

	router.Use(middleware.Recover())
	router.Use(mw.SecurityHeaders)
	router.Use(middleware.BodyLimit(config.HTTP.BodyLimit))
	router.Use(middleware.CORSWithConfig(cors))
	router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	router.Use(request.Middleware)
	router.Use(mw.CheckOrigin(config.HTTP.AllowedOrigins))
	router.Use(mw.Metrics)
	if initSentry() {
		router.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	if config.Debug.Enabled {
		router.Use(middleware.Logger())
	}

	searchLimiter := mw.RateLimiter(config.HTTP.SearchRateLimit, config.HTTP.SearchRateBurst)

	router.GET("/healthz", health.Check, mw.NoCache)
	router.GET("/metrics", mw.MetricsHandler(), mw.NoCache)

	employeeGroup := router.Group("/employees")

	employeeGroup.GET(rootPath, employees.GetAll)
	employeeGroup.GET("/search", employees.Search, mw.Sensivity(mw.DefaultEndpoint), searchLimiter)
	employeeGroup.GET("/date/:date", employees.WorkingOn)
	employeeGroup.GET("/pickers/available", employees.AvailablePickers, mw.NoCache)
	employeeGroup.GET("/:id", employees.GetByID)

	orderGroup := router.Group("/orders", mw.NoCache)

	orderGroup.GET(rootPath, orders.GetAll)
	orderGroup.POST(rootPath, orders.Create, mw.Sensivity(mw.SensitiveEndpoint), searchLimiter)
	orderGroup.GET("/search", orders.Search, mw.Sensivity(mw.DefaultEndpoint), searchLimiter)
	orderGroup.POST("/search", orders.SearchBody, mw.Sensivity(mw.DefaultEndpoint), searchLimiter)
	orderGroup.GET("/month/:month/sales", orders.MonthlySales)
	orderGroup.GET("/month/:month/most-expensive", orders.MostExpensive)
	orderGroup.GET("/status/:status", orders.ByStatus)
	orderGroup.GET("/status/:status/oldest", orders.OldestByStatus)
	orderGroup.GET("/:id", orders.GetByID)

	productGroup := router.Group("/products")

	productGroup.GET(rootPath, products.GetAll)
	productGroup.GET("/:id", products.GetByID)

	// There is no authentication, so cache can be dropped only in debug mode
	if config.Debug.Enabled {
		cacheGroup := router.Group("/cache", mw.NoCache, mw.Sensivity(mw.SensitiveEndpoint), searchLimiter)

		cacheGroup.DELETE(rootPath, caches.Drop)
		cacheGroup.DELETE("/:entity", caches.DropEntity)
	}

	return router
}
