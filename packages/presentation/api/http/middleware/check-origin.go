package middleware

import (
	"net/http"
	"slices"
	"warehouse/packages/presentation/api/http/request"

	"github.com/labstack/echo/v4"
)

// Rejects state-changing requests sent from origins which aren't allowed.
// Requests without Origin header (e.g. from CLI tools) are passed.
func CheckOrigin(allowedOrigins []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			if req.Method == http.MethodGet || req.Method == http.MethodHead {
				return next(ctx)
			}

			origin := req.Header.Get("Origin")

			if origin != "" && !slices.Contains(allowedOrigins, origin) {
				log.Error("Invalid request origin", "Origin isn't allowed: "+origin, request.GetMetadata(ctx))
				return echo.NewHTTPError(
					http.StatusForbidden,
					"Invalid origin",
				)
			}

			return next(ctx)
		}
	}
}
