package employee

import (
	Error "warehouse/packages/common/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	FindAllEmployees() ([]*Employee, *Error.Status)

	FindEmployeeByID(id primitive.ObjectID) (*Employee, *Error.Status)
}
