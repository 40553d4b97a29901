package product

import (
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Property core.EntityProperty

const (
	IdProperty       Property = "_id"
	NameProperty     Property = "name"
	PriceProperty    Property = "price"
	WeightProperty   Property = "weight"
	LocationProperty Property = "location"
)

type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Weight   float64            `bson:"weight" json:"weight"`
	Location primitive.ObjectID `bson:"location" json:"location"`
}

type Repository interface {
	FindAllProducts() ([]*Product, *Error.Status)

	FindProductByID(id primitive.ObjectID) (*Product, *Error.Status)
}

// Index products by id
func Catalogue(products []*Product) map[primitive.ObjectID]*Product {
	m := make(map[primitive.ObjectID]*Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}

// Returns first product with specified name
func FindByName(products []*Product, name string) (*Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}
