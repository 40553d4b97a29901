package json

import (
	"warehouse/packages/common/encoding"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func DecodeString[T any](input string) (T, error) {
	var result T

	if err := json.UnmarshalFromString(input, &result); err != nil {
		encoding.Log.Error("Failed to decode JSON", err.Error(), nil)

		return result, err
	}

	return result, nil
}

func EncodeToString(v any) (string, error) {
	s, err := json.MarshalToString(v)
	if err != nil {
		encoding.Log.Error("Failed to encode JSON", err.Error(), nil)

		return "", err
	}

	return s, nil
}
