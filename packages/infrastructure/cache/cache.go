package cache

import (
	"warehouse/packages/common/encoding/json"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/infrastructure/cache/redis"
)

type client interface {
	Connect()
	Close() *Error.Status

	// Returns cached value and true on hit
	Get(key string) (string, bool)
	Set(key string, value any) *Error.Status
	Delete(keys ...string) *Error.Status
	FlushAll() *Error.Status
	DeletePattern(pattern string) *Error.Status
}

// Until Connect() is called all operations are no-op and every Get is a miss.
var Client client = redis.New()

// Returns decoded cached value and true on hit.
// Value that can't be decoded is treated as miss and removed from cache.
func GetDecoded[T any](key string) (T, bool) {
	var zero T

	raw, hit := Client.Get(key)
	if !hit {
		return zero, false
	}

	v, err := json.DecodeString[T](raw)
	if err != nil {
		Client.Delete(key)
		return zero, false
	}

	return v, true
}

// Encodes value as JSON and caches it.
func EncodeAndSet(key string, value any) *Error.Status {
	raw, err := json.EncodeToString(value)
	if err != nil {
		return Error.StatusInternalError
	}

	return Client.Set(key, raw)
}
