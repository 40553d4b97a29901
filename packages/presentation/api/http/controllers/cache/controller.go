package cachecontroller

import (
	"net/http"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/infrastructure/cache"
	controller "warehouse/packages/presentation/api/http/controllers"
	"warehouse/packages/presentation/api/http/request"

	"github.com/labstack/echo/v4"
)

type dropper interface {
	FlushAll() *Error.Status
	DeletePattern(pattern string) *Error.Status
}

type Controller struct {
	cache dropper
}

func New(c dropper) *Controller {
	return &Controller{cache: c}
}

// Drops whole cache.
func (c *Controller) Drop(ctx echo.Context) error {
	if err := c.cache.FlushAll(); err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	controller.Logger.Info("Cache dropped", request.GetMetadata(ctx))

	return ctx.NoContent(http.StatusNoContent)
}

// Drops cached records of single entity: employee, order or product.
func (c *Controller) DropEntity(ctx echo.Context) error {
	entity := ctx.Param("entity")

	prefix, ok := cache.EntityKeyPrefix[entity]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown entity: "+entity)
	}

	if err := c.cache.DeletePattern(prefix + "*"); err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	controller.Logger.Info("Cache of "+entity+" dropped", request.GetMetadata(ctx))

	return ctx.NoContent(http.StatusNoContent)
}
