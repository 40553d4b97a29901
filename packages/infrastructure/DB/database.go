package DB

import (
	"warehouse/packages/core/employee"
	"warehouse/packages/core/order"
	"warehouse/packages/core/product"
	"warehouse/packages/infrastructure/DB/mongodb"
)

type database interface {
	connector
	employee.Repository
	order.Repository
	product.Repository
}

type connector interface {
	Connect()
	Disconnect() error
	Ping() error
}

// Implements all entities "Repository" interfaces
var Database database = mongodb.InitDriver()
