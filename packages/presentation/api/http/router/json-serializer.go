package router

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

type serializer struct{}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (serializer) Serialize(c echo.Context, v any, indent string) error {
	enc := json.NewEncoder(c.Response())

	if indent != "" {
		enc.SetIndent("", indent)
	}

	return enc.Encode(v)
}

func (serializer) Deserialize(c echo.Context, v any) error {
	return json.NewDecoder(c.Request().Body).Decode(v)
}
