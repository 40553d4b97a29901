package mongodb

import (
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/product"
	"warehouse/packages/infrastructure/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type productSeeker struct {
	//
}

func (_ *productSeeker) FindAllProducts() ([]*product.Product, *Error.Status) {
	return findAll[product.Product](driver.productCollection, "product")
}

func (_ *productSeeker) FindProductByID(id primitive.ObjectID) (*product.Product, *Error.Status) {
	return findByID[product.Product](driver.productCollection, "product", cache.ProductById, id)
}
