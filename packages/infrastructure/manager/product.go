package manager

import (
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/product"
)

type Product struct {
	products product.Repository
}

func NewProduct(products product.Repository) *Product {
	return &Product{products: products}
}

func (m *Product) All() ([]*product.Product, *Error.Status) {
	return m.products.FindAllProducts()
}

func (m *Product) ByID(rawID string) (*product.Product, *Error.Status) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	return m.products.FindProductByID(id)
}
