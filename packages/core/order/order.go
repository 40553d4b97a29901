package order

import (
	"time"
	"warehouse/packages/core"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Property core.EntityProperty

const (
	IdProperty        Property = "_id"
	NumberProperty    Property = "orderNumber"
	ProductsProperty  Property = "products"
	PickerProperty    Property = "picker"
	DriverProperty    Property = "driver"
	StatusProperty    Property = "status"
	TimestampProperty Property = "timestamp"
)

type Status string

const (
	Placed          Status = "Order placed"
	SearchingDriver Status = "Searching driver"
	Delivered       Status = "Delivered"
	Done            Status = "Done"
)

func (s Status) IsValid() bool {
	switch s {
	case Placed, SearchingDriver, Delivered, Done:
		return true
	}
	return false
}

// Order is open until it's handed over to the driver
func (s Status) IsOpen() bool {
	return s == Placed
}

type Item struct {
	Product primitive.ObjectID `bson:"id" json:"id"`
	Amount  int                `bson:"amount" json:"amount"`
}

type Order struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Number   int                 `bson:"orderNumber" json:"orderNumber"`
	Products []Item              `bson:"products" json:"products"`
	Picker   primitive.ObjectID  `bson:"picker" json:"picker"`
	Driver   *primitive.ObjectID `bson:"driver" json:"driver"`
	Status   Status              `bson:"status" json:"status"`
	Time     time.Time           `bson:"timestamp" json:"timestamp"`
}

// Creates new order with default status and current timestamp.
func New(number int, picker primitive.ObjectID, products []Item) *Order {
	return &Order{
		Number:   number,
		Products: products,
		Picker:   picker,
		Driver:   nil,
		Status:   Placed,
		Time:     time.Now(),
	}
}
