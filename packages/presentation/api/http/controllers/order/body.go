package ordercontroller

import (
	"errors"
	"warehouse/packages/infrastructure/manager"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Requested products: [{"name": "Tape", "amount": 2}, ...]
type createBody []manager.Item

func (b createBody) Validate() error {
	if len(b) == 0 {
		return errors.New("order must contain at least one product")
	}

	for _, item := range b {
		if err := validate.Struct(item); err != nil {
			return errors.New("each product must have a name")
		}
	}

	return nil
}
