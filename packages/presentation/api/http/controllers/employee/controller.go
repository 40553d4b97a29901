package employeecontroller

import (
	"net/http"
	"warehouse/packages/infrastructure/manager"
	controller "warehouse/packages/presentation/api/http/controllers"
	"warehouse/packages/presentation/api/http/response"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	manager *manager.Employee
}

func New(m *manager.Employee) *Controller {
	return &Controller{manager: m}
}

func (c *Controller) GetAll(ctx echo.Context) error {
	employees, err := c.manager.All()
	return controller.Respond(ctx, employees, err)
}

func (c *Controller) GetByID(ctx echo.Context) error {
	e, err := c.manager.ByID(ctx.Param("id"))
	return controller.RespondData(ctx, e, err)
}

// Query param 'filter' must be a JSON array of predicates.
func (c *Controller) Search(ctx echo.Context) error {
	employees, err := c.manager.Search(ctx.QueryParam("filter"))
	return controller.Respond(ctx, employees, err)
}

func (c *Controller) WorkingOn(ctx echo.Context) error {
	date := ctx.Param("date")

	employees, err := c.manager.WorkingOn(date)
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	if len(employees) == 0 {
		return ctx.JSON(http.StatusOK, response.Message{
			Message: "No employee works on " + date,
		})
	}

	return ctx.JSON(http.StatusOK, employees)
}

func (c *Controller) AvailablePickers(ctx echo.Context) error {
	pickers, err := c.manager.AvailablePickers()
	return controller.Respond(ctx, pickers, err)
}
