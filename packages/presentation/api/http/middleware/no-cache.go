package middleware

import "github.com/labstack/echo/v4"

var noCacheHeaders = [...][2]string{
	{echo.HeaderCacheControl, "no-store, max-age=0"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

// Forbids clients and proxies from storing the response.
// Applied to reports and other data that changes with every new order.
func NoCache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		h := ctx.Response().Header()
		for _, kv := range noCacheHeaders {
			h.Set(kv[0], kv[1])
		}
		return next(ctx)
	}
}
