package middleware

import (
	"fmt"
	"warehouse/packages/presentation/api/http/request"

	"github.com/labstack/echo/v4"
)

// How much attention blocked or failed requests to the endpoint deserve in logs.
type EndpointSensivity int

const (
	InsignificantEndpoint EndpointSensivity = iota
	DefaultEndpoint
	SensitiveEndpoint
)

func (s EndpointSensivity) String() string {
	switch s {
	case InsignificantEndpoint:
		return "insignificant"
	case DefaultEndpoint:
		return "default"
	case SensitiveEndpoint:
		return "sensitive"
	}
	return fmt.Sprintf("EndpointSensivity(%d)", int(s))
}

func (s EndpointSensivity) Validate() error {
	if s < InsignificantEndpoint || s > SensitiveEndpoint {
		return fmt.Errorf("unknown endpoint sensivity: %d", int(s))
	}
	return nil
}

const sensivityKey = "endpoint_sensivity"

// Panics on unknown sensivity, so misconfigured routes fail at startup.
func Sensivity(s EndpointSensivity) echo.MiddlewareFunc {
	if err := s.Validate(); err != nil {
		log.Panic("Failed to set endpoint sensivity", err.Error(), nil)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Set(sensivityKey, s)
			return next(ctx)
		}
	}
}

// Falls back to DefaultEndpoint if Sensivity middleware wasn't applied.
func GetSensivity(ctx echo.Context) EndpointSensivity {
	if s, ok := ctx.Get(sensivityKey).(EndpointSensivity); ok {
		return s
	}

	log.Debug("Endpoint sensivity isn't set, using default", request.GetMetadataOrNew(ctx))

	return DefaultEndpoint
}
