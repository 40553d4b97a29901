package ordercontroller

import (
	"io"
	"net/http"
	"strconv"
	"warehouse/packages/infrastructure/manager"
	controller "warehouse/packages/presentation/api/http/controllers"
	"warehouse/packages/presentation/api/http/request"
	"warehouse/packages/presentation/api/http/response"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	manager *manager.Order
}

func New(m *manager.Order) *Controller {
	return &Controller{manager: m}
}

func (c *Controller) GetAll(ctx echo.Context) error {
	orders, err := c.manager.All()
	return controller.Respond(ctx, orders, err)
}

func (c *Controller) GetByID(ctx echo.Context) error {
	o, err := c.manager.ByID(ctx.Param("id"))
	return controller.RespondData(ctx, o, err)
}

// Query params: 'filter' - JSON array of predicates, 'sort' - optional JSON sort object.
func (c *Controller) Search(ctx echo.Context) error {
	orders, err := c.manager.Search(ctx.QueryParam("filter"), ctx.QueryParam("sort"))
	return controller.Respond(ctx, orders, err)
}

// Same as Search, but query is sent as {"action", "filter", "sort"} body.
func (c *Controller) SearchBody(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		controller.Logger.Error("Failed to read request body", err.Error(), request.GetMetadata(ctx))
		return response.FailedToReadRequestBody
	}

	orders, e := c.manager.SearchBody(body)
	return controller.Respond(ctx, orders, e)
}

func (c *Controller) MonthlySales(ctx echo.Context) error {
	sales, err := c.manager.MonthlySales(ctx.Param("month"))
	return controller.Respond(ctx, sales, err)
}

func (c *Controller) MostExpensive(ctx echo.Context) error {
	month := ctx.Param("month")

	o, err := c.manager.MostExpensive(month)
	return controller.RespondOrMessage(ctx, o, err, "No orders in "+month)
}

func (c *Controller) ByStatus(ctx echo.Context) error {
	orders, err := c.manager.ByStatus(ctx.Param("status"))
	return controller.Respond(ctx, orders, err)
}

func (c *Controller) OldestByStatus(ctx echo.Context) error {
	status := ctx.Param("status")

	o, err := c.manager.OldestByStatus(status)
	return controller.RespondOrMessage(ctx, o, err, "No orders with status "+status)
}

func (c *Controller) Create(ctx echo.Context) error {
	var body createBody

	if err := controller.BindAndValidate(ctx, &body); err != nil {
		return err
	}

	o, err := c.manager.Create(body)
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	controller.Logger.Info("Order #"+strconv.Itoa(o.Number)+" placed", request.GetMetadata(ctx))

	return ctx.JSON(http.StatusCreated, o)
}
