package router

import (
	"io"
	"warehouse/packages/presentation/api/http/response"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

type binder struct{}

// Binds only request body, path and query params are read by controllers.
func (b *binder) Bind(i any, ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return response.FailedToReadRequestBody
	}

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, i); err != nil {
		return response.FailedToDecodeRequestBody
	}

	return nil
}
