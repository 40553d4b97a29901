package order

import (
	"math"
	"time"
	"warehouse/packages/core/product"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Line item with resolved product.
// Product is nil if it can't be found in the catalogue.
type DetailedItem struct {
	ID      primitive.ObjectID `json:"id"`
	Product *product.Product   `json:"product,omitempty"`
	Amount  int                `json:"amount"`
}

// Order with populated products
type Detailed struct {
	ID       primitive.ObjectID  `json:"_id"`
	Number   int                 `json:"orderNumber"`
	Products []DetailedItem      `json:"products"`
	Picker   primitive.ObjectID  `json:"picker"`
	Driver   *primitive.ObjectID `json:"driver"`
	Status   Status              `json:"status"`
	Time     time.Time           `json:"timestamp"`
}

func Populate(o *Order, catalogue map[primitive.ObjectID]*product.Product) *Detailed {
	items := make([]DetailedItem, len(o.Products))

	for i, item := range o.Products {
		items[i] = DetailedItem{
			ID:      item.Product,
			Product: catalogue[item.Product],
			Amount:  item.Amount,
		}
	}

	return &Detailed{
		ID:       o.ID,
		Number:   o.Number,
		Products: items,
		Picker:   o.Picker,
		Driver:   o.Driver,
		Status:   o.Status,
		Time:     o.Time,
	}
}

func PopulateAll(orders []*Order, catalogue map[primitive.ObjectID]*product.Product) []*Detailed {
	out := make([]*Detailed, len(orders))
	for i, o := range orders {
		out[i] = Populate(o, catalogue)
	}
	return out
}

// Minimum unit price over populated items.
// Returns +Inf if there are no populated items.
func (d *Detailed) MinPrice() float64 {
	lowest := math.Inf(1)
	for _, item := range d.Products {
		if item.Product != nil && item.Product.Price < lowest {
			lowest = item.Product.Price
		}
	}
	return lowest
}

// Sum of price * amount over populated items
func (d *Detailed) Total() float64 {
	var total float64
	for _, item := range d.Products {
		if item.Product != nil {
			total += item.Product.Price * float64(item.Amount)
		}
	}
	return total
}
