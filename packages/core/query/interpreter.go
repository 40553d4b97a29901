// Filter and sort interpreter, evaluates queries over in-memory collections.
package query

import (
	"time"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/common/logger"
	"warehouse/packages/core/filter"
)

var Log = logger.NewSource("QUERY", logger.Default)

// Interpreter holds no mutable state and can be shared between goroutines.
type Interpreter[T any] struct {
	schema   *Schema[T]
	location *time.Location
}

// Date buckets (SameDate, SameMonth, SameYear) are computed in loc.
// If loc is nil, then time.Local is used.
func New[T any](schema *Schema[T], loc *time.Location) *Interpreter[T] {
	if loc == nil {
		loc = time.Local
	}
	return &Interpreter[T]{
		schema:   schema,
		location: loc,
	}
}

func (i *Interpreter[T]) Location() *time.Location {
	return i.location
}

// Applies predicates one by one, output of each predicate is input of the next one.
//
// Predicate key is validated right before predicate is applied,
// so error may be returned after some of the predicates were already evaluated.
// In this case no records are returned.
func (i *Interpreter[T]) Filter(records []T, predicates []filter.Predicate) ([]T, *Error.Status) {
	Log.Trace("Filtering "+i.schema.Entity+" records...", nil)

	out := records

	for _, p := range predicates {
		var err *Error.Status

		out, err = i.apply(out, p)
		if err != nil {
			return nil, err
		}
	}

	Log.Trace("Filtering "+i.schema.Entity+" records: OK", nil)

	return out, nil
}

// Filters and sorts records. If q.Action is filter.FindAction, then
// only first record is returned.
func (i *Interpreter[T]) Run(records []T, q *filter.Query) ([]T, *Error.Status) {
	out, err := i.Filter(records, q.Filters)
	if err != nil {
		return nil, err
	}

	// Filter may return input slice as is, it must not be reordered
	if len(q.Filters) == 0 {
		out = append([]T(nil), out...)
	}

	if err := i.Sort(out, q.Sort); err != nil {
		return nil, err
	}

	if q.Action == filter.FindAction && len(out) > 1 {
		out = out[:1]
	}

	return out, nil
}
