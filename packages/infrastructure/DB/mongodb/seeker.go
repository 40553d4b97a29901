package mongodb

import (
	Error "warehouse/packages/common/errors"
	"warehouse/packages/infrastructure/cache"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func findAll[T any](collection *mongo.Collection, entity string) ([]*T, *Error.Status) {
	return execute("Finding all "+entity+"s", func() ([]*T, error) {
		ctx, cancel := queryContext()
		defer cancel()

		cur, err := collection.Find(ctx, bson.D{})
		if err != nil {
			return nil, err
		}

		out := []*T{}
		if err := cur.All(ctx, &out); err != nil {
			return nil, err
		}

		return out, nil
	})
}

// Read-through cache: cached value is returned if there is one,
// otherwise document is loaded from DB and cached.
func findByID[T any](collection *mongo.Collection, entity string, keyBase string, id primitive.ObjectID) (*T, *Error.Status) {
	cacheKey := keyBase + id.Hex()

	if cached, hit := cache.GetDecoded[T](cacheKey); hit {
		return &cached, nil
	}

	doc, err := execute("Finding "+entity+" "+id.Hex(), func() (*T, error) {
		ctx, cancel := queryContext()
		defer cancel()

		doc := new(T)
		if err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(doc); err != nil {
			return nil, err
		}

		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	cache.EncodeAndSet(cacheKey, doc)

	return doc, nil
}
