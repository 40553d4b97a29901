package request

import (
	"fmt"
	"warehouse/packages/common/logger"
	"warehouse/packages/common/validation"
	transport "warehouse/packages/presentation/api/http"

	"github.com/labstack/echo/v4"
)

const metaKey = "req_meta"

func newMeta(ctx echo.Context) logger.Meta {
	req := ctx.Request()

	meta := logger.Meta{
		"addr":       req.RemoteAddr,
		"method":     req.Method,
		"path":       req.URL.Path,
		"user_agent": req.UserAgent(),
	}

	// Set by echo's RequestID middleware, which must be applied before this one
	if id := ctx.Response().Header().Get(echo.HeaderXRequestID); validation.UUID(id) == nil {
		meta["request_id"] = id
	}

	return meta
}

// This middleware must be applied to the router
// for the all functions in this package to work correctly.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ctx.Set(metaKey, newMeta(ctx))

		return next(ctx)
	}
}

// Retrieves metadata from the context.
// Will panic if request.Middleware wasn't applied to the router.
func GetMetadata(ctx echo.Context) logger.Meta {
	switch m := ctx.Get(metaKey).(type) {
	case logger.Meta:
		return m
	case nil:
		transport.Logger.Panic(
			"Failed to get metadata from context",
			"Request meta wasn't set (check if middleware applied correctly)",
			newMeta(ctx),
		)
		return nil
	default:
		transport.Logger.Panic(
			"Failed to get metadata from context",
			fmt.Sprintf("Request meta has invalid type. Expected logger.Meta, but got %T", m),
			newMeta(ctx),
		)
		return nil
	}
}

// Same as GetMetadata, but builds metadata from the request if it wasn't set.
func GetMetadataOrNew(ctx echo.Context) logger.Meta {
	if m, ok := ctx.Get(metaKey).(logger.Meta); ok {
		return m
	}
	return newMeta(ctx)
}
