// Query orchestration: fetches collections, runs queries over them and builds reports.
package manager

import (
	Error "warehouse/packages/common/errors"
	"warehouse/packages/common/logger"
	"warehouse/packages/common/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var log = logger.NewSource("MANAGER", logger.Default)

func parseID(rawID string) (primitive.ObjectID, *Error.Status) {
	id, err := validation.ObjectID(rawID)
	if err != nil {
		return primitive.NilObjectID, err.ToStatus(Error.MissingIdentifier, Error.InvalidIdentifier)
	}
	return id, nil
}
