package manager

import (
	"strconv"
	"time"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/employee"
	"warehouse/packages/core/filter"
	"warehouse/packages/core/order"
	"warehouse/packages/core/query"
	filterparser "warehouse/packages/infrastructure/parsers/filter"
)

type Employee struct {
	employees employee.Repository
	orders    order.Repository
	query     *query.Interpreter[*employee.Employee]
}

func NewEmployee(employees employee.Repository, orders order.Repository, loc *time.Location) *Employee {
	return &Employee{
		employees: employees,
		orders:    orders,
		query:     query.New(employee.Schema, loc),
	}
}

func (m *Employee) All() ([]*employee.Employee, *Error.Status) {
	return m.employees.FindAllEmployees()
}

func (m *Employee) ByID(rawID string) (*employee.Employee, *Error.Status) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	return m.employees.FindEmployeeByID(id)
}

// Filters employees using JSON array of predicates.
func (m *Employee) Search(rawFilter string) ([]*employee.Employee, *Error.Status) {
	predicates, err := filterparser.ParseFilter(rawFilter)
	if err != nil {
		return nil, err
	}

	employees, err := m.employees.FindAllEmployees()
	if err != nil {
		return nil, err
	}

	return m.query.Filter(employees, predicates)
}

// Returns employees which have a shift starting on the specified date (YYYY-MM-DD).
func (m *Employee) WorkingOn(date string) ([]*employee.Employee, *Error.Status) {
	if _, err := time.ParseInLocation(time.DateOnly, date, m.query.Location()); err != nil {
		return nil, Error.InvalidDate
	}

	employees, err := m.employees.FindAllEmployees()
	if err != nil {
		return nil, err
	}

	return m.query.Filter(employees, []filter.Predicate{
		{Value: date, Operator: filter.SameDate},
	})
}

// Returns pickers without open orders.
func (m *Employee) AvailablePickers() ([]*employee.Employee, *Error.Status) {
	employees, err := m.employees.FindAllEmployees()
	if err != nil {
		return nil, err
	}

	orders, err := m.orders.FindAllOrders()
	if err != nil {
		return nil, err
	}

	return availablePickers(employees, orders, m.query)
}

func pickers(employees []*employee.Employee, q *query.Interpreter[*employee.Employee]) ([]*employee.Employee, *Error.Status) {
	role := string(employee.RoleProperty)

	return q.Filter(employees, []filter.Predicate{
		{Key: &role, Value: string(employee.Picker), Operator: filter.Equal},
	})
}

func availablePickers(
	employees []*employee.Employee,
	orders []*order.Order,
	q *query.Interpreter[*employee.Employee],
) ([]*employee.Employee, *Error.Status) {
	all, err := pickers(employees, q)
	if err != nil {
		return nil, err
	}

	busy := make(map[string]bool)
	for _, o := range orders {
		if o.Status.IsOpen() {
			busy[o.Picker.Hex()] = true
		}
	}

	available := make([]*employee.Employee, 0, len(all))
	for _, p := range all {
		if !busy[p.ID.Hex()] {
			available = append(available, p)
		}
	}

	log.Trace("Available pickers: "+strconv.Itoa(len(available))+"/"+strconv.Itoa(len(all)), nil)

	return available, nil
}
