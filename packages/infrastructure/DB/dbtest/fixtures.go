package dbtest

import (
	"time"
	"warehouse/packages/core/employee"
	"warehouse/packages/core/order"
	"warehouse/packages/core/product"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func Date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Alice has an open order, Bob doesn't, Dave is the only driver.
var (
	Alice = &employee.Employee{
		ID:   primitive.NewObjectID(),
		Name: "Alice",
		Role: employee.Picker,
		Schedule: []employee.Shift{
			{Start: Date("2024-03-01T09:00:00Z"), End: Date("2024-03-01T17:00:00Z")},
		},
	}
	Bob = &employee.Employee{
		ID:   primitive.NewObjectID(),
		Name: "Bob",
		Role: employee.Picker,
		Schedule: []employee.Shift{
			{Start: Date("2024-03-02T09:00:00Z"), End: Date("2024-03-02T17:00:00Z")},
		},
	}
	Dave = &employee.Employee{
		ID:   primitive.NewObjectID(),
		Name: "Dave",
		Role: employee.Driver,
		Schedule: []employee.Shift{
			{Start: Date("2024-03-01T12:00:00Z"), End: Date("2024-03-01T20:00:00Z")},
		},
	}

	Tape  = &product.Product{ID: primitive.NewObjectID(), Name: "Tape", Price: 2}
	Drill = &product.Product{ID: primitive.NewObjectID(), Name: "Drill", Price: 120}
)

// Creates store with fixture employees, products and three orders:
//
//	#1 Placed, 2024-03-01, Alice, 1 drill
//	#2 Done,   2024-03-05, Bob and Dave, 100 tapes
//	#3 Done,   2024-02-20, Bob, 1 tape
//
// Orders are created on every call, so tests may modify them.
func New() *Store {
	return &Store{
		Employees: []*employee.Employee{Alice, Bob, Dave},
		Products:  []*product.Product{Tape, Drill},
		Orders: []*order.Order{
			{
				ID:       primitive.NewObjectID(),
				Number:   1,
				Picker:   Alice.ID,
				Status:   order.Placed,
				Time:     Date("2024-03-01T10:00:00Z"),
				Products: []order.Item{{Product: Drill.ID, Amount: 1}},
			},
			{
				ID:       primitive.NewObjectID(),
				Number:   2,
				Picker:   Bob.ID,
				Driver:   &Dave.ID,
				Status:   order.Done,
				Time:     Date("2024-03-05T10:00:00Z"),
				Products: []order.Item{{Product: Tape.ID, Amount: 100}},
			},
			{
				ID:       primitive.NewObjectID(),
				Number:   3,
				Picker:   Bob.ID,
				Status:   order.Done,
				Time:     Date("2024-02-20T10:00:00Z"),
				Products: []order.Item{{Product: Tape.ID, Amount: 1}},
			},
		},
	}
}
