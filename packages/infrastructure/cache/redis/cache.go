package redis

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"warehouse/packages/common/config"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/common/logger"

	"github.com/redis/go-redis/v9"
)

var cacheLogger = logger.NewSource("CACHE", logger.Default)

type driver struct {
	client           *redis.Client
	isConnected      bool
	operationTimeout time.Duration
	ttl              time.Duration
}

func New() *driver {
	return new(driver)
}

// Connects using config and secrets, panics on failure.
func (d *driver) Connect() {
	err := d.connect(
		&redis.Options{
			Addr:        config.Secret.CacheURI,
			Password:    config.Secret.CachePassword,
			DB:          config.Secret.CacheDB,
			ReadTimeout: config.Cache.SocketTimeout(),
		},
		config.Cache.OperationTimeout(),
		config.Cache.TTL(),
	)
	if err != nil {
		cacheLogger.Panic("Cache connection failed", err.Error(), nil)
	}
}

func (d *driver) connect(opt *redis.Options, operationTimeout time.Duration, ttl time.Duration) error {
	if d.isConnected {
		return fmt.Errorf("connection already established")
	}

	cacheLogger.Info("Connecting to cache...", nil)

	d.client = redis.NewClient(opt)
	d.operationTimeout = operationTimeout
	d.ttl = ttl

	ctx, cancel := d.timeoutContext()
	defer cancel()

	if err := d.client.Ping(ctx).Err(); err != nil {
		return err
	}

	cacheLogger.Info("Connecting to cache: OK", nil)

	d.isConnected = true

	return nil
}

func (d *driver) Close() *Error.Status {
	if !d.isConnected {
		return Error.NewStatusError(
			"connection not established",
			http.StatusInternalServerError,
		)
	}

	cacheLogger.Info("Disconnecting from cache...", nil)

	if err := d.client.Close(); err != nil {
		return Error.NewStatusError(
			err.Error(),
			http.StatusInternalServerError,
		)
	}

	cacheLogger.Info("Disconnecting from cache: OK", nil)

	d.isConnected = false

	return nil
}

func (d *driver) timeoutContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.operationTimeout)
}

// timeout is x5 of timeoutContext
func (d *driver) longTimeoutContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.operationTimeout*5)
}

// Logs given action and error.
// Returns err converted to *Error.Status.
func logAndConvert(action string, err error) *Error.Status {
	if err != nil {
		if err == context.DeadlineExceeded {
			cacheLogger.Error(
				"Request failed",
				"TIMEOUT: "+action,
				nil,
			)
		} else {
			cacheLogger.Error(
				"Request failed",
				"Failed to "+action+": "+err.Error(),
				nil,
			)
		}
		return Error.StatusInternalError
	}

	cacheLogger.Trace(action, nil)

	return nil
}

// Returns false on miss. Also returns false if cache isn't connected.
func (d *driver) Get(key string) (string, bool) {
	if !d.isConnected {
		return "", false
	}

	ctx, cancel := d.timeoutContext()
	defer cancel()

	cachedData, err := d.client.Get(ctx, key).Result()
	if err == redis.Nil {
		cacheLogger.Trace("Miss: "+key, nil)
		return "", false
	}

	return cachedData, logAndConvert("Get: "+key, err) == nil
}

// go-redis driver can handle only this types:
// string, bool, []byte, int, int64, float64, time.Time
//
// encode value before calling Set if it doesn't belong to any of this types
// (like structs, hashmaps, slices etc)
func (d *driver) Set(key string, value any) *Error.Status {
	if !d.isConnected {
		return nil
	}

	switch value.(type) {
	case string, bool, []byte, int, int64, float64, time.Time:
	default:
		err := Error.NewStatusError(
			fmt.Sprintf("invalid cache value type: %T", value),
			http.StatusInternalServerError,
		)
		return logAndConvert("Set: "+key, err)
	}

	ctx, cancel := d.timeoutContext()
	defer cancel()

	err := d.client.Set(ctx, key, value, d.ttl).Err()

	return logAndConvert("Set: "+key, err)
}

func (d *driver) Delete(keys ...string) *Error.Status {
	if !d.isConnected {
		return nil
	}

	ctx, cancel := d.timeoutContext()
	defer cancel()

	err := d.client.Unlink(ctx, keys...).Err()

	return logAndConvert("Delete: "+strings.Join(keys, ","), err)
}

func (d *driver) FlushAll() *Error.Status {
	if !d.isConnected {
		return nil
	}

	ctx, cancel := d.timeoutContext()
	defer cancel()

	err := d.client.FlushAll(ctx).Err()

	return logAndConvert("Flush All", err)
}

const deletePatternAction = "Delete Pattern: "

func (d *driver) DeletePattern(pattern string) *Error.Status {
	if !d.isConnected {
		return nil
	}

	var cursor uint64
	var keys []string
	var err error

	ctx, cancel := d.longTimeoutContext()
	defer cancel()

	for {
		if err := ctx.Err(); err != nil {
			return logAndConvert(deletePatternAction+pattern, err)
		}

		keys, cursor, err = d.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return logAndConvert(deletePatternAction+pattern, fmt.Errorf("error scanning keys: %w", err))
		}

		if len(keys) > 0 {
			pipeline := d.client.Pipeline()

			for _, key := range keys {
				pipeline.Unlink(ctx, key)
			}

			if _, err = pipeline.Exec(ctx); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return logAndConvert(deletePatternAction+pattern, ctxErr)
				}
				return logAndConvert(deletePatternAction+pattern, fmt.Errorf("error deleting keys: %w", err))
			}

			cacheLogger.Trace("Deleted "+strconv.Itoa(len(keys))+" keys with pattern: "+pattern, nil)
		}

		if cursor == 0 {
			return logAndConvert(deletePatternAction+pattern, nil)
		}
	}
}
