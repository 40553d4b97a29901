// In-memory implementation of the entity repositories, used in tests.
package dbtest

import (
	"sync"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/employee"
	"warehouse/packages/core/order"
	"warehouse/packages/core/product"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mut       sync.RWMutex
	Employees []*employee.Employee
	Orders    []*order.Order
	Products  []*product.Product
	// If set, returned from every call
	Err *Error.Status
	// If set, returned from Ping
	PingErr error
}

func (s *Store) Connect() {}

func (s *Store) Disconnect() error {
	return nil
}

func (s *Store) Ping() error {
	return s.PingErr
}

func findByID[T any](s *Store, records []T, id primitive.ObjectID, getID func(T) primitive.ObjectID) (T, *Error.Status) {
	var zero T

	if s.Err != nil {
		return zero, s.Err
	}

	for _, r := range records {
		if getID(r) == id {
			return r, nil
		}
	}

	return zero, Error.StatusNotFound
}

func (s *Store) FindAllEmployees() ([]*employee.Employee, *Error.Status) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return s.Employees, nil
}

func (s *Store) FindEmployeeByID(id primitive.ObjectID) (*employee.Employee, *Error.Status) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return findByID(s, s.Employees, id, func(e *employee.Employee) primitive.ObjectID { return e.ID })
}

func (s *Store) FindAllOrders() ([]*order.Order, *Error.Status) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return s.Orders, nil
}

func (s *Store) FindOrderByID(id primitive.ObjectID) (*order.Order, *Error.Status) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return findByID(s, s.Orders, id, func(o *order.Order) primitive.ObjectID { return o.ID })
}

func (s *Store) MaxOrderNumber() (int, *Error.Status) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	if s.Err != nil {
		return 0, s.Err
	}

	highest := 0
	for _, o := range s.Orders {
		if o.Number > highest {
			highest = o.Number
		}
	}
	return highest, nil
}

func (s *Store) InsertOrder(o *order.Order) (*order.Order, *Error.Status) {
	s.mut.Lock()
	defer s.mut.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	inserted := *o
	inserted.ID = primitive.NewObjectID()
	s.Orders = append(s.Orders, &inserted)

	return &inserted, nil
}

func (s *Store) FindAllProducts() ([]*product.Product, *Error.Status) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products, nil
}

func (s *Store) FindProductByID(id primitive.ObjectID) (*product.Product, *Error.Status) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return findByID(s, s.Products, id, func(p *product.Product) primitive.ObjectID { return p.ID })
}
