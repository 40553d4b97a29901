package manager

import (
	"math/rand/v2"
	"strconv"
	"time"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/employee"
	"warehouse/packages/core/filter"
	"warehouse/packages/core/order"
	"warehouse/packages/core/product"
	"warehouse/packages/core/query"
	filterparser "warehouse/packages/infrastructure/parsers/filter"
)

type Order struct {
	orders    order.Repository
	employees employee.Repository
	products  product.Repository
	query     *query.Interpreter[*order.Detailed]
	staff     *query.Interpreter[*employee.Employee]
	// Returns random number in [0, n)
	random func(n int) int
}

func NewOrder(
	orders order.Repository,
	employees employee.Repository,
	products product.Repository,
	loc *time.Location,
) *Order {
	return &Order{
		orders:    orders,
		employees: employees,
		products:  products,
		query:     query.New(order.Schema, loc),
		staff:     query.New(employee.Schema, loc),
		random:    rand.IntN,
	}
}

type MonthlySales struct {
	Month  string            `json:"month"`
	Orders []*order.Detailed `json:"orders"`
	Total  float64           `json:"total"`
}

// Requested product
type Item struct {
	Name   string `json:"name" validate:"required"`
	Amount int    `json:"amount"`
}

func (m *Order) All() ([]*order.Order, *Error.Status) {
	return m.orders.FindAllOrders()
}

func (m *Order) ByID(rawID string) (*order.Order, *Error.Status) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	return m.orders.FindOrderByID(id)
}

// Returns all orders with populated products
func (m *Order) detailed() ([]*order.Detailed, *Error.Status) {
	orders, err := m.orders.FindAllOrders()
	if err != nil {
		return nil, err
	}

	products, err := m.products.FindAllProducts()
	if err != nil {
		return nil, err
	}

	return order.PopulateAll(orders, product.Catalogue(products)), nil
}

func (m *Order) run(q *filter.Query) ([]*order.Detailed, *Error.Status) {
	orders, err := m.detailed()
	if err != nil {
		return nil, err
	}

	return m.query.Run(orders, q)
}

// Filters and sorts orders using JSON from URL query.
func (m *Order) Search(rawFilter string, rawSort string) ([]*order.Detailed, *Error.Status) {
	q, err := filterparser.Parse(rawFilter, rawSort)
	if err != nil {
		return nil, err
	}

	return m.run(q)
}

// Same as Search, but query is read from the request body.
func (m *Order) SearchBody(body []byte) ([]*order.Detailed, *Error.Status) {
	q, err := filterparser.ParseBody(body)
	if err != nil {
		return nil, err
	}

	return m.run(q)
}

func validateMonth(month string) *Error.Status {
	if _, err := time.Parse("2006-01", month); err != nil {
		return Error.InvalidMonth
	}
	return nil
}

func monthQuery(month string, sort *filter.Sort, action filter.Action) *filter.Query {
	return &filter.Query{
		Action:  action,
		Filters: []filter.Predicate{{Value: month, Operator: filter.SameMonth}},
		Sort:    sort,
	}
}

// Returns orders placed in the month (YYYY-MM) sorted by time and sum of their totals.
func (m *Order) MonthlySales(month string) (*MonthlySales, *Error.Status) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	orders, err := m.run(monthQuery(
		month,
		&filter.Sort{Key: filter.TimestampSortKey, Direction: filter.Ascending},
		filter.ListAction,
	))
	if err != nil {
		return nil, err
	}

	var total float64
	for _, o := range orders {
		total += o.Total()
	}

	return &MonthlySales{
		Month:  month,
		Orders: orders,
		Total:  total,
	}, nil
}

// Returns order with the highest total in the month or nil if there are no orders.
func (m *Order) MostExpensive(month string) (*order.Detailed, *Error.Status) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	orders, err := m.run(monthQuery(
		month,
		&filter.Sort{Key: filter.TotalSortKey, Direction: filter.Descending},
		filter.FindAction,
	))
	if err != nil {
		return nil, err
	}

	return first(orders), nil
}

func statusQuery(status order.Status, sort *filter.Sort, action filter.Action) *filter.Query {
	key := string(order.StatusProperty)

	return &filter.Query{
		Action:  action,
		Filters: []filter.Predicate{{Key: &key, Value: string(status), Operator: filter.Equal}},
		Sort:    sort,
	}
}

func (m *Order) ByStatus(status string) ([]*order.Detailed, *Error.Status) {
	if !order.Status(status).IsValid() {
		return nil, Error.InvalidStatus
	}

	return m.run(statusQuery(order.Status(status), nil, filter.ListAction))
}

// Returns the earliest order with the status or nil if there are no such orders.
func (m *Order) OldestByStatus(status string) (*order.Detailed, *Error.Status) {
	if !order.Status(status).IsValid() {
		return nil, Error.InvalidStatus
	}

	orders, err := m.run(statusQuery(
		order.Status(status),
		&filter.Sort{Key: filter.TimestampSortKey, Direction: filter.Ascending},
		filter.FindAction,
	))
	if err != nil {
		return nil, err
	}

	return first(orders), nil
}

func first(orders []*order.Detailed) *order.Detailed {
	if len(orders) == 0 {
		return nil
	}
	return orders[0]
}

// Creates new order and assigns random picker to it.
//
// Picker is chosen among pickers without open orders,
// if all pickers are busy then among all pickers.
//
// Reads and insert aren't atomic, so concurrent calls may produce orders with the same number.
func (m *Order) Create(items []Item) (*order.Order, *Error.Status) {
	log.Trace("Creating order...", nil)

	if len(items) == 0 {
		return nil, Error.EmptyOrder
	}

	products, err := m.products.FindAllProducts()
	if err != nil {
		return nil, err
	}

	lines := make([]order.Item, len(items))

	for i, item := range items {
		if item.Amount <= 0 {
			return nil, Error.InvalidAmount
		}

		p, ok := product.FindByName(products, item.Name)
		if !ok {
			log.Error("Failed to create order", "Unknown product: "+item.Name, nil)
			return nil, Error.UnknownProduct
		}

		lines[i] = order.Item{Product: p.ID, Amount: item.Amount}
	}

	picker, err := m.pickPicker()
	if err != nil {
		return nil, err
	}

	maxNumber, err := m.orders.MaxOrderNumber()
	if err != nil {
		return nil, err
	}

	o, err := m.orders.InsertOrder(order.New(maxNumber+1, picker.ID, lines))
	if err != nil {
		return nil, err
	}

	log.Info("Order #"+strconv.Itoa(o.Number)+" created, picker: "+picker.Name, nil)

	return o, nil
}

func (m *Order) pickPicker() (*employee.Employee, *Error.Status) {
	employees, err := m.employees.FindAllEmployees()
	if err != nil {
		return nil, err
	}

	orders, err := m.orders.FindAllOrders()
	if err != nil {
		return nil, err
	}

	pool, err := availablePickers(employees, orders, m.staff)
	if err != nil {
		return nil, err
	}

	if len(pool) == 0 {
		if pool, err = pickers(employees, m.staff); err != nil {
			return nil, err
		}
	}

	if len(pool) == 0 {
		log.Error("Failed to create order", "There are no pickers", nil)
		return nil, Error.NoPickerAvailable
	}

	return pool[m.random(len(pool))], nil
}
