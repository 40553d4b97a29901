package healthcontroller

import (
	"net/http"
	controller "warehouse/packages/presentation/api/http/controllers"
	"warehouse/packages/presentation/api/http/request"

	"github.com/labstack/echo/v4"
)

type pinger interface {
	Ping() error
}

type Controller struct {
	db pinger
}

func New(db pinger) *Controller {
	return &Controller{db: db}
}

// Responds with 503 if DB is unreachable.
func (c *Controller) Check(ctx echo.Context) error {
	if err := c.db.Ping(); err != nil {
		controller.Logger.Error("Health check failed", err.Error(), request.GetMetadata(ctx))
		return ctx.NoContent(http.StatusServiceUnavailable)
	}

	return ctx.String(http.StatusOK, "OK")
}
