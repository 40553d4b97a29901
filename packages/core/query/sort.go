package query

import (
	"cmp"
	"slices"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/filter"
)

// Sorts records in place. Sort is stable, ties keep their previous order.
// Unknown direction leaves records as they are.
func (i *Interpreter[T]) Sort(records []T, sort *filter.Sort) *Error.Status {
	if sort == nil {
		return nil
	}

	if err := i.schema.ValidateSortKey(sort.Key); err != nil {
		Log.Error("Invalid sort key in "+i.schema.Entity+" query", "key: "+string(sort.Key), nil)
		return err
	}

	key := i.schema.SortKeys[sort.Key]

	switch sort.Direction {
	case filter.Ascending:
		slices.SortStableFunc(records, func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		})
	case filter.Descending:
		slices.SortStableFunc(records, func(a, b T) int {
			return cmp.Compare(key(b), key(a))
		})
	default:
		Log.Debug("Unknown sort direction '"+string(sort.Direction)+"', order unchanged", nil)
	}

	return nil
}
