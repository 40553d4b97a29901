package controller

import (
	"net/http"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/common/logger"
	"warehouse/packages/presentation/api/http/request"
	"warehouse/packages/presentation/api/http/response"

	"github.com/labstack/echo/v4"
)

var Logger = logger.NewSource("CONTROLLER", logger.Default)

type Validator interface {
	Validate() error
}

func BindAndValidate[T Validator](ctx echo.Context, dest T) error {
	reqMeta := request.GetMetadata(ctx)

	Logger.Trace("Binding and validating request...", reqMeta)

	if err := ctx.Bind(dest); err != nil {
		Logger.Error("Failed to bind request", err.Error(), reqMeta)
		return err
	}

	if err := dest.Validate(); err != nil {
		Logger.Error("Request validation failed", err.Error(), reqMeta)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	Logger.Trace("Binding and validating request: OK", reqMeta)

	return nil
}

// Responds with result of the operation or converts its error to *echo.HTTPError.
func Respond[T any](ctx echo.Context, result T, err *Error.Status) error {
	if err != nil {
		return ConvertErrorStatusToHTTP(err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// Same as Respond, but wraps result into response.Data.
func RespondData[T any](ctx echo.Context, result T, err *Error.Status) error {
	if err != nil {
		return ConvertErrorStatusToHTTP(err)
	}
	return ctx.JSON(http.StatusOK, response.OK(result))
}

// Responds with result or, if it's nil, with message.
func RespondOrMessage[T any](ctx echo.Context, result *T, err *Error.Status, message string) error {
	if err != nil {
		return ConvertErrorStatusToHTTP(err)
	}
	if result == nil {
		Logger.Debug(message, request.GetMetadata(ctx))
		return ctx.JSON(http.StatusOK, response.Message{Message: message})
	}
	return ctx.JSON(http.StatusOK, result)
}
