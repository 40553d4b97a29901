package validation

import (
	"strings"
	Error "warehouse/packages/common/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Returns parsed id if 'v' is valid hex-encoded ObjectID,
// otherwise returns either Error.NoValue or Error.InvalidValue.
func ObjectID(v string) (primitive.ObjectID, *Error.Validation) {
	if strings.ReplaceAll(v, " ", "") == "" {
		return primitive.NilObjectID, Error.NoValue
	}

	id, err := primitive.ObjectIDFromHex(v)
	if err != nil {
		return primitive.NilObjectID, Error.InvalidValue
	}

	return id, nil
}
