package order

import (
	Error "warehouse/packages/common/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	seeker

	// Inserts order and returns it with assigned id.
	// Picker must be an employee with role Picker, driver (if specified) - employee with role Driver.
	InsertOrder(o *Order) (*Order, *Error.Status)
}

type seeker interface {
	FindAllOrders() ([]*Order, *Error.Status)

	FindOrderByID(id primitive.ObjectID) (*Order, *Error.Status)

	// Returns 0 if there are no orders
	MaxOrderNumber() (int, *Error.Status)
}
