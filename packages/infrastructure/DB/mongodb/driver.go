package mongodb

import (
	"context"
	"warehouse/packages/common/config"
	"warehouse/packages/common/logger"
)

var dbLogger = logger.NewSource("DB", logger.Default)

type mongodb struct {
	connector
	employeeSeeker
	productSeeker
	orderRepository
}

var driver *mongodb

func InitDriver() *mongodb {
	driver = new(mongodb)

	return driver
}

func queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.DB.QueryTimeout())
}
