package query

import (
	"slices"
	"time"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/filter"
)

// Returns value of the record's attribute.
// Strings are returned as string, numbers as float64, instants as time.Time.
type Field[T any] func(record T) any

// Half-open time window, bounds are exclusive for the Available operator.
type Window struct {
	Start time.Time
	End   time.Time
}

// Describes which attributes of T can be referenced in queries and how to read them.
//
// Schema is static: it's built once per entity and never changes,
// hence it can be safely shared between goroutines.
type Schema[T any] struct {
	Entity string
	// Keys that can be used in filters
	FilterKeys []string
	// Genuine attributes of the entity
	Fields map[string]Field[T]
	// Returns instants which are compared by date operators.
	// key is empty if predicate has no key.
	Instants func(record T, key string) []time.Time
	// Returns windows used by Available operator, may be nil.
	Windows func(record T) []Window
	// Numeric sort keys
	SortKeys map[filter.SortKey]func(record T) float64
}

// Returns Error.UnknownFilterKey if key isn't allowed in filters
// or isn't a genuine attribute of the entity.
func (s *Schema[T]) ValidateFilterKey(key string) *Error.Status {
	if !slices.Contains(s.FilterKeys, key) {
		return Error.UnknownFilterKey
	}
	if _, ok := s.Fields[key]; !ok {
		return Error.UnknownFilterKey
	}
	return nil
}

func (s *Schema[T]) ValidateSortKey(key filter.SortKey) *Error.Status {
	if _, ok := s.SortKeys[key]; !ok {
		return Error.UnknownSortKey
	}
	return nil
}

// Returns instant stored in the specified field, if field holds a time.
// Helper for building Schema.Instants.
func FieldInstant[T any](s *Schema[T], record T, key string) []time.Time {
	field, ok := s.Fields[key]
	if !ok {
		return nil
	}
	if t, ok := field(record).(time.Time); ok {
		return []time.Time{t}
	}
	return nil
}
