package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"
	"warehouse/packages/presentation/api/http/request"
	"warehouse/packages/presentation/api/http/response"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func rateLimiterIdentifierExtractor(ctx echo.Context) (string, error) {
	return ctx.RealIP(), nil
}

func rateLimiterDenyHandler(retryAfter time.Duration) func(ctx echo.Context, id string, err error) error {
	seconds := int(math.Ceil(retryAfter.Seconds()))

	return func(ctx echo.Context, id string, err error) error {
		ctx.Response().Header().Set("Retry-After", strconv.Itoa(seconds))

		reqMeta := request.GetMetadata(ctx)

		switch GetSensivity(ctx) {
		case InsignificantEndpoint:
			log.Trace("Request blocked by rate limiter", reqMeta)
		case DefaultEndpoint:
			log.Info("Request blocked by rate limiter", reqMeta)
		case SensitiveEndpoint:
			log.Warning("Request blocked by rate limiter", reqMeta)
		}

		return ctx.JSON(
			http.StatusTooManyRequests,
			response.Message{
				Message: "Too many requests",
			},
		)
	}
}

// Limits requests from a single IP to 'limit' per second with bursts up to 'burst'.
//
// Endpoint sensivity must be set before this middleware is applied.
func RateLimiter(limit float64, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(limit),
			Burst:     burst,
			ExpiresIn: time.Minute * 3,
		}),
		DenyHandler:         rateLimiterDenyHandler(time.Duration(float64(time.Second) / limit)),
		IdentifierExtractor: rateLimiterIdentifierExtractor,
	})
}
