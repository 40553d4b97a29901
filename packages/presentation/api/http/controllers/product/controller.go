package productcontroller

import (
	"warehouse/packages/infrastructure/manager"
	controller "warehouse/packages/presentation/api/http/controllers"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	manager *manager.Product
}

func New(m *manager.Product) *Controller {
	return &Controller{manager: m}
}

func (c *Controller) GetAll(ctx echo.Context) error {
	products, err := c.manager.All()
	return controller.Respond(ctx, products, err)
}

func (c *Controller) GetByID(ctx echo.Context) error {
	p, err := c.manager.ByID(ctx.Param("id"))
	return controller.RespondData(ctx, p, err)
}
