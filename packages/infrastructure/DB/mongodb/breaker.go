package mongodb

import (
	"context"
	"time"
	Error "warehouse/packages/common/errors"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Shared by all store calls: if DB is down there are no reasons to query any collection.
var breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
	Name:        "MongoDB",
	Interval:    time.Second * 10,
	Timeout:     time.Second * 20,
	MaxRequests: 10,
	// Client errors (like not found) mustn't open the breaker
	IsSuccessful: func(err error) bool {
		if ok, _ := Error.IsStatusError(err); ok {
			return true
		}
		return err == nil || errors.Is(err, mongo.ErrNoDocuments)
	},
})

// Runs fn through the circuit breaker.
func execute[T any](action string, fn func() (T, error)) (T, *Error.Status) {
	var zero T

	dbLogger.Trace(action+"...", nil)

	v, err := breaker.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		return zero, convertError(action, err)
	}

	dbLogger.Trace(action+": OK", nil)

	return v.(T), nil
}

// Converts driver error to the *Error.Status and logs it.
func convertError(action string, err error) *Error.Status {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return Error.StatusNotFound
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		dbLogger.Error(action+" blocked by circuit breaker", err.Error(), nil)
		return Error.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		dbLogger.Error(action+" timed out", err.Error(), nil)
		return Error.StatusTimeout
	}

	if ok, e := Error.IsStatusError(err); ok {
		return e
	}

	dbLogger.Error(action+" failed", errors.Wrap(err, action).Error(), nil)

	return Error.StatusInternalError
}
