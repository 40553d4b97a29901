package mongodb

import (
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/employee"
	"warehouse/packages/infrastructure/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type employeeSeeker struct {
	//
}

func (_ *employeeSeeker) FindAllEmployees() ([]*employee.Employee, *Error.Status) {
	return findAll[employee.Employee](driver.employeeCollection, "employee")
}

func (_ *employeeSeeker) FindEmployeeByID(id primitive.ObjectID) (*employee.Employee, *Error.Status) {
	return findByID[employee.Employee](driver.employeeCollection, "employee", cache.EmployeeById, id)
}
