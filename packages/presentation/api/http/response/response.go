package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Message struct {
	Message string `json:"message"`
}

// Wrapper for single entity responses
type Data[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

func OK[T any](data T) Data[T] {
	return Data[T]{Status: "OK", Data: data}
}

var FailedToReadRequestBody = echo.NewHTTPError(
	http.StatusBadRequest,
	"Failed to read request body",
)

var FailedToDecodeRequestBody = echo.NewHTTPError(
	http.StatusBadRequest,
	"Failed to decode request body",
)
