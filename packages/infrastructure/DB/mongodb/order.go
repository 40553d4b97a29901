package mongodb

import (
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/employee"
	"warehouse/packages/core/order"
	"warehouse/packages/infrastructure/cache"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderRepository struct {
	//
}

func (_ *orderRepository) FindAllOrders() ([]*order.Order, *Error.Status) {
	return findAll[order.Order](driver.orderCollection, "order")
}

func (_ *orderRepository) FindOrderByID(id primitive.ObjectID) (*order.Order, *Error.Status) {
	return findByID[order.Order](driver.orderCollection, "order", cache.OrderById, id)
}

func (_ *orderRepository) MaxOrderNumber() (int, *Error.Status) {
	return execute("Finding max order number", func() (int, error) {
		ctx, cancel := queryContext()
		defer cancel()

		opts := options.FindOne().
			SetSort(bson.D{{Key: string(order.NumberProperty), Value: -1}}).
			SetProjection(bson.D{{Key: string(order.NumberProperty), Value: 1}})

		var last order.Order

		err := driver.orderCollection.FindOne(ctx, bson.D{}, opts).Decode(&last)
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}

		return last.Number, nil
	})
}

// Must be called before inserting order.
func validateReferences(o *order.Order, employees employee.Repository) *Error.Status {
	picker, err := employees.FindEmployeeByID(o.Picker)
	if err != nil {
		if err == Error.StatusNotFound {
			return Error.InvalidReference
		}
		return err
	}
	if picker.Role != employee.Picker {
		return Error.InvalidReference
	}

	if o.Driver == nil {
		return nil
	}

	assignee, err := employees.FindEmployeeByID(*o.Driver)
	if err != nil {
		if err == Error.StatusNotFound {
			return Error.InvalidReference
		}
		return err
	}
	if assignee.Role != employee.Driver {
		return Error.InvalidReference
	}

	return nil
}

func (_ *orderRepository) InsertOrder(o *order.Order) (*order.Order, *Error.Status) {
	if !o.Status.IsValid() {
		return nil, Error.InvalidStatus
	}

	if err := validateReferences(o, driver); err != nil {
		dbLogger.Error("Order validation failed", err.Error(), nil)
		return nil, err
	}

	return execute("Inserting order", func() (*order.Order, error) {
		ctx, cancel := queryContext()
		defer cancel()

		res, err := driver.orderCollection.InsertOne(ctx, o)
		if err != nil {
			return nil, err
		}

		inserted := *o
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			inserted.ID = id
		}

		return &inserted, nil
	})
}
