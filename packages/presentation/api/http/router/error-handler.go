package router

import (
	"net/http"
	Error "warehouse/packages/common/errors"
	controller "warehouse/packages/presentation/api/http/controllers"
	"warehouse/packages/presentation/api/http/request"

	"github.com/labstack/echo/v4"
)

func handleHttpError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	switch e := err.(type) {
	case *echo.HTTPError:
		code = e.Code
		if msg, ok := e.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	case *Error.Status:
		code = e.Status()
		message = e.Error()
	}

	status := http.StatusText(code)

	reqMeta := request.GetMetadataOrNew(ctx)

	if code >= http.StatusInternalServerError {
		controller.Logger.Error(message, err.Error(), reqMeta)
	} else {
		controller.Logger.Debug(status+": "+message, reqMeta)
	}

	if ctx.Request().Method == http.MethodHead {
		ctx.NoContent(code)
		return
	}

	ctx.JSON(code, map[string]string{
		"error":   status,
		"message": message,
	})
}
